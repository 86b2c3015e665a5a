package ports

import "go.trai.ch/vitelink/internal/core/domain"

// ManifestLoader defines the interface for loading the bundler manifest.
type ManifestLoader interface {
	// Load reads the manifest at the given path and returns the chunk index.
	// Implementations may cache by modification time; a manifest is parsed
	// at most once per on-disk version.
	Load(path string) (*domain.Manifest, error)
}
