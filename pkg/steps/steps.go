// Package steps defines installation steps and how the host selects them.
//
// A step receives the run's section handle, issues operations through it
// and reports a Status. Steps never reach the editor any other way: the
// host owns one editor per run and passes it to each step in turn.
package steps

import (
	"context"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/sections"
)

// Status is the outcome a step reports to the host
type Status int

const (
	// Success means the step issued all of its operations
	Success Status = iota
	// Failure means the step could not complete; the run stops
	Failure
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Sections is the editing handle a step receives
type Sections interface {
	Append(name, payload string) error
	Prepend(name, payload string) error
	Delete(name string) error
	DeleteIfPresent(name string) (bool, error)
	Apply(ops ...sections.Operation) error
}

// Step is one installation step
type Step interface {
	// Name is the identifier used in steps.enabled
	Name() string

	// Allowed reports whether the step applies to this configuration
	Allowed(cfg *config.Config) bool

	// Run issues the step's operations against doc
	Run(ctx context.Context, cfg *config.Config, doc Sections) (Status, error)

	// Success and Error are the messages shown for each outcome
	Success() string
	Error() string
}

var _ Sections = (*sections.Editor)(nil)
