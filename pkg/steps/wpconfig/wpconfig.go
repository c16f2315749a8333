// Package wpconfig is the installation step that adapts a WP Starter
// wp-config.php: Symfony Dotenv boots the environment, an always-included
// constants file is loaded, the env cache is skipped in development and the
// theme registration and admin color sections are removed.
package wpconfig

import (
	"context"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/arthur-debert/wpconf/pkg/sections"
	"github.com/arthur-debert/wpconf/pkg/steps"
)

// StepName is the identifier used in steps.enabled
const StepName = "wp-config"

// Section names in the WP Starter template
const (
	SectionAutoload        = "AUTOLOAD"
	SectionEnvVariables    = "ENV_VARIABLES"
	SectionBeforeBootstrap = "BEFORE_BOOTSTRAP"
	SectionThemesRegister  = "THEMES_REGISTER"
	SectionAdminColor      = "ADMIN_COLOR"
)

// Step edits wp-config.php sections
type Step struct{}

// New creates the step
func New() *Step {
	return &Step{}
}

// Name returns the unique name of this step
func (s *Step) Name() string {
	return StepName
}

// Allowed always returns true; the step applies to every project
func (s *Step) Allowed(*config.Config) bool {
	return true
}

// Success returns the message shown after a successful run
func (s *Step) Success() string {
	return StepName + " applied successfully."
}

// Error returns the message shown after a failed run
func (s *Step) Error() string {
	return StepName + " failed."
}

// Run applies the step's plan
func (s *Step) Run(ctx context.Context, cfg *config.Config, doc steps.Sections) (steps.Status, error) {
	logger := logging.GetLogger("steps.wpconfig")

	opts, err := OptionsFrom(cfg)
	if err != nil {
		return steps.Failure, err
	}

	ops, err := Plan(opts)
	if err != nil {
		return steps.Failure, err
	}

	logger.Debug().
		Str("env_rel_dir", opts.EnvRelDir).
		Str("constants_dir", opts.ConstantsDir).
		Int("operations", len(ops)).
		Msg("Applying wp-config plan")

	if err := doc.Apply(ops...); err != nil {
		return steps.Failure, err
	}
	return steps.Success, nil
}

// Plan returns the step's operations in the order they must be applied
func Plan(opts Options) ([]sections.Operation, error) {
	dotenv, err := DotenvPayload(opts)
	if err != nil {
		return nil, err
	}
	constants, err := ConstantsPayload(opts)
	if err != nil {
		return nil, err
	}

	return []sections.Operation{
		sections.Append(SectionAutoload, dotenv),
		sections.Prepend(SectionEnvVariables, constants),
		sections.Append(SectionBeforeBootstrap, SkipCachePayload()),
		sections.DeleteIfPresent(SectionThemesRegister),
		sections.DeleteIfPresent(SectionAdminColor),
	}, nil
}
