package ports

import "go.trai.ch/vitelink/internal/core/domain"

// ConfigLoader defines the interface for loading resolution options.
type ConfigLoader interface {
	// Load discovers and reads the configuration starting from the given
	// working directory. A missing config file is not an error; defaults
	// are returned instead.
	Load(cwd string) (domain.Options, error)
}
