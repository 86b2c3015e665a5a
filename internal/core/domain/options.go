package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "vitelink.yaml"

	// ManifestFileName is the conventional location of the bundler manifest
	// relative to the build output directory.
	ManifestFileName = ".vite/manifest.json"

	// ClientPath is the dev-server client bootstrap module, resolved against
	// the base path in dev mode.
	ClientPath = "@vite/client"

	// DefaultBase is the base URL prefix used when none is configured.
	DefaultBase = "/"
)

// PreloadRule is one extension registration from the configuration file.
type PreloadRule struct {
	Ext  string
	MIME string
	As   string
}

// Options are the construction parameters for tag resolution.
type Options struct {
	// Dev selects the dev-server code path: entries are emitted raw behind
	// the client bootstrap tag and the manifest is never consulted.
	Dev bool

	// Manifest is the path of the manifest file. Required when Dev is false.
	Manifest string

	// Base is the URL path prefix for all emitted asset URLs.
	// It is expected to end in "/".
	Base string

	// PreloadImages and PreloadFonts enable the bulk extension registrations.
	PreloadImages bool
	PreloadFonts  bool

	// PreloadRules are additional per-extension registrations.
	PreloadRules []PreloadRule
}

// Merge overlays non-zero fields of o2 onto o and returns the result.
// Boolean fields are ORed: a flag can enable but never disable a file setting.
func (o Options) Merge(o2 Options) Options {
	if o2.Manifest != "" {
		o.Manifest = o2.Manifest
	}
	if o2.Base != "" {
		o.Base = o2.Base
	}
	o.Dev = o.Dev || o2.Dev
	o.PreloadImages = o.PreloadImages || o2.PreloadImages
	o.PreloadFonts = o.PreloadFonts || o2.PreloadFonts
	o.PreloadRules = append(o.PreloadRules, o2.PreloadRules...)
	return o
}
