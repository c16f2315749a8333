// Package install runs installation steps against a generated document.
//
// A run loads the template, hands one sections.Editor to every enabled step
// in order, renders the result and persists it atomically when it differs
// from the current target.
package install

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/filesystem"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/arthur-debert/wpconf/pkg/sections"
	"github.com/arthur-debert/wpconf/pkg/steps"
	"github.com/arthur-debert/wpconf/pkg/steps/wpconfig"
	"github.com/google/uuid"
)

// Options controls a single run
type Options struct {
	// DryRun renders and diffs without writing the target.
	DryRun bool
	// FromTarget edits the existing target instead of the template. Blocks
	// written by earlier runs with different settings are kept.
	FromTarget bool
}

// StepResult is the outcome of one step
type StepResult struct {
	Name    string `json:"name" yaml:"name"`
	Status  string `json:"status" yaml:"status"`
	Skipped bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Report describes what a run did
type Report struct {
	RunID      string               `json:"run_id" yaml:"run_id"`
	Source     string               `json:"source" yaml:"source"`
	Target     string               `json:"target" yaml:"target"`
	DryRun     bool                 `json:"dry_run" yaml:"dry_run"`
	Steps      []StepResult         `json:"steps" yaml:"steps"`
	Stats      sections.Stats       `json:"stats" yaml:"stats"`
	Operations []sections.Operation `json:"operations" yaml:"operations"`
	Changed    bool                 `json:"changed" yaml:"changed"`
	Written    bool                 `json:"written" yaml:"written"`
	Diff       *Diff                `json:"diff,omitempty" yaml:"diff,omitempty"`

	// Output is the rendered document
	Output string `json:"-" yaml:"-"`
}

// DefaultRegistry returns the registry of built-in steps
func DefaultRegistry() (*steps.Registry, error) {
	return steps.NewRegistry(wpconfig.New())
}

// Runner executes enabled steps and persists the result
type Runner struct {
	store    *filesystem.Store
	registry *steps.Registry
}

// NewRunner creates a runner writing through store
func NewRunner(store *filesystem.Store, registry *steps.Registry) *Runner {
	return &Runner{store: store, registry: registry}
}

// Run performs one installation run
func (r *Runner) Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	report := &Report{
		RunID:  uuid.NewString(),
		Target: cfg.Target,
		DryRun: opts.DryRun,
	}
	logger := logging.GetLogger("install").With().Str("run", report.RunID).Logger()
	done := logging.LogOperationStart(logger, "install")
	defer done()

	enabled, err := r.registry.Resolve(cfg.Steps.Enabled)
	if err != nil {
		return report, err
	}

	syntax, err := markers.SyntaxByName(cfg.Syntax)
	if err != nil {
		return report, errors.Wrap(err, errors.ErrConfigValid, "invalid syntax")
	}

	source, text, existing, err := r.loadSource(cfg, opts)
	if err != nil {
		return report, err
	}
	report.Source = source
	logger.Debug().Str("source", source).Str("target", cfg.Target).Msg("Document source selected")

	doc, err := sections.Load(text, syntax)
	if err != nil {
		if we, ok := err.(*errors.WpconfError); ok {
			return report, we.WithDetail("path", source)
		}
		return report, err
	}

	for _, step := range enabled {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := step.Name()
		if !step.Allowed(cfg) {
			logger.Info().Str("step", name).Msg("Step not allowed, skipping")
			report.Steps = append(report.Steps, StepResult{Name: name, Status: steps.Success.String(), Skipped: true})
			continue
		}

		status, err := step.Run(ctx, cfg, doc)
		report.Steps = append(report.Steps, StepResult{Name: name, Status: status.String(), Message: stepMessage(step, status)})
		if err != nil {
			logger.Error().Err(err).Str("step", name).Msg(step.Error())
			if we, ok := err.(*errors.WpconfError); ok {
				return report, we.WithDetail("step", name)
			}
			return report, errors.Wrapf(err, errors.ErrStepFailed, "step %s failed", name).WithDetail("step", name)
		}
		if status != steps.Success {
			logger.Error().Str("step", name).Msg(step.Error())
			return report, errors.New(errors.ErrStepFailed, step.Error()).WithDetail("step", name)
		}
		logger.Info().Str("step", name).Msg(step.Success())
	}

	report.Output = doc.Render()
	report.Stats = doc.Stats()
	report.Operations = doc.Operations()
	report.Changed = report.Output != existing

	if opts.DryRun {
		report.Diff = LineDiff(existing, report.Output)
		logger.Info().Bool("changed", report.Changed).Msg("Dry run, target not written")
		return report, nil
	}

	if !report.Changed {
		logger.Info().Str("target", cfg.Target).Msg("Target up to date")
		return report, nil
	}

	if err := r.store.Fs().MkdirAll(filepath.Dir(cfg.Target), 0755); err != nil {
		return report, errors.Wrap(err, errors.ErrPersistFailure, "cannot create target directory").
			WithDetail("path", filepath.Dir(cfg.Target))
	}
	if err := r.store.WriteAtomic(ctx, cfg.Target, []byte(report.Output), 0644); err != nil {
		return report, err
	}
	report.Written = true

	logger.Info().
		Str("target", cfg.Target).
		Int("inserted", report.Stats.Inserted).
		Int("skipped", report.Stats.Skipped).
		Int("deleted", report.Stats.Deleted).
		Msg("Target written")
	return report, nil
}

// loadSource returns the document to edit and the current target content
func (r *Runner) loadSource(cfg *config.Config, opts Options) (source, text, existing string, err error) {
	exists, err := r.store.Exists(cfg.Target)
	if err != nil {
		return "", "", "", errors.Wrap(err, errors.ErrTemplateRead, "cannot stat target").WithDetail("path", cfg.Target)
	}
	if exists {
		data, err := r.store.ReadFile(cfg.Target)
		if err != nil {
			return "", "", "", errors.Wrap(err, errors.ErrTemplateRead, "cannot read target").WithDetail("path", cfg.Target)
		}
		existing = string(data)
		if opts.FromTarget {
			return cfg.Target, existing, existing, nil
		}
	}

	data, err := r.store.ReadFile(cfg.Template)
	if err != nil {
		return "", "", "", errors.Wrap(err, errors.ErrTemplateRead, "cannot read template").WithDetail("path", cfg.Template)
	}
	return cfg.Template, string(data), existing, nil
}

func stepMessage(step steps.Step, status steps.Status) string {
	if status == steps.Success {
		return step.Success()
	}
	return step.Error()
}
