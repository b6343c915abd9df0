package runner

import (
	"advent/pkg/input"
	"advent/pkg/logging"
	"advent/pkg/registry"
)

// Option configures a DefaultRunner.
type Option func(*DefaultRunner)

// WithRegistry sets the problem registry used by the runner.
func WithRegistry(reg registry.Registry) Option {
	return func(r *DefaultRunner) {
		r.registry = reg
	}
}

// WithInputs sets the input store the runner reads from.
func WithInputs(store *input.Store) Option {
	return func(r *DefaultRunner) {
		r.inputs = store
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) Option {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}
