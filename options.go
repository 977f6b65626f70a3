package telecomtest

import (
	"github.com/MocaRafee/android-packages-services-Telecomm/config"
	"github.com/MocaRafee/android-packages-services-Telecomm/logging"
)

// Option configures an Environment at construction time.
type Option func(*Environment)

// WithConfig replaces the environment-variable-derived configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Environment) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger attaches a logger. The default logger discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Environment) {
		if logger != nil {
			e.logger = logger
			e.loggerSet = true
		}
	}
}

// WithResourceLookup injects a resource-value lookup consulted before the
// per-test overrides set through SetResource.
func WithResourceLookup(lookup func(id int) (string, bool)) Option {
	return func(e *Environment) {
		e.resourceLookup = lookup
	}
}

// WithSystemServiceLocator injects a locator consulted before the built-in
// audio/telephony set.
func WithSystemServiceLocator(locator func(name string) (interface{}, bool)) Option {
	return func(e *Environment) {
		e.serviceLocator = locator
	}
}

// WithSystemService pre-registers a named system service, replacing the
// built-in stand-in for that name if one exists.
func WithSystemService(name string, service interface{}) Option {
	return func(e *Environment) {
		e.systemServices[name] = service
	}
}

// WithFilesDir pins the scratch directory instead of creating a temp dir on
// first use.
func WithFilesDir(dir string) Option {
	return func(e *Environment) {
		e.filesDir = dir
	}
}
