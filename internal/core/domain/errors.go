package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestUnreadable is returned when the manifest file does not exist or cannot be read.
	ErrManifestUnreadable = zerr.New("manifest unreadable")

	// ErrManifestMalformed is returned when the manifest cannot be decoded or a chunk is missing its file field.
	ErrManifestMalformed = zerr.New("manifest malformed")

	// ErrEntryNotFound is returned when a requested entry name has no chunk in the manifest.
	ErrEntryNotFound = zerr.New("entry not found in manifest")

	// ErrNotAnEntryPoint is returned when a requested name resolves to a chunk that is not an entry point.
	ErrNotAnEntryPoint = zerr.New("chunk is not an entry point")

	// ErrMissingImport is returned when a chunk statically imports a name absent from the manifest.
	ErrMissingImport = zerr.New("static import missing from manifest")

	// ErrNoEntriesSpecified is returned when no entry points are given to the render command.
	ErrNoEntriesSpecified = zerr.New("no entries specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
