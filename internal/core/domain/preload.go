package domain

// PreloadType is a registered (MIME type, preload-as) pair for one file
// extension, controlling which asset kinds receive preload tags.
type PreloadType struct {
	MIME string
	As   string
}

// PreloadTypes maps file extensions (no leading dot) to preload rules.
// It starts empty and is mutated only by explicit registration before
// resolution begins; during resolution it is read-only. Callers sharing a
// registry across goroutines must finish configuration before first use.
type PreloadTypes struct {
	types map[string]PreloadType
}

// NewPreloadTypes creates a new empty registry.
func NewPreloadTypes() *PreloadTypes {
	return &PreloadTypes{
		types: make(map[string]PreloadType),
	}
}

// Register adds a preload rule for the given extension.
// Values are not validated; a later registration replaces an earlier one.
func (p *PreloadTypes) Register(ext, mime, as string) {
	p.types[ext] = PreloadType{MIME: mime, As: as}
}

// RegisterImages registers preload rules for common image extensions.
func (p *PreloadTypes) RegisterImages() {
	p.Register("avif", "image/avif", "image")
	p.Register("gif", "image/gif", "image")
	p.Register("jpg", "image/jpeg", "image")
	p.Register("jpeg", "image/jpeg", "image")
	p.Register("png", "image/png", "image")
	p.Register("svg", "image/svg+xml", "image")
	p.Register("webp", "image/webp", "image")
}

// RegisterFonts registers preload rules for common font extensions.
func (p *PreloadTypes) RegisterFonts() {
	p.Register("otf", "font/otf", "font")
	p.Register("ttf", "font/ttf", "font")
	p.Register("woff", "font/woff", "font")
	p.Register("woff2", "font/woff2", "font")
}

// Lookup returns the rule registered for the extension.
func (p *PreloadTypes) Lookup(ext string) (PreloadType, bool) {
	t, ok := p.types[ext]
	return t, ok
}

// Len returns the number of registered extensions.
func (p *PreloadTypes) Len() int {
	return len(p.types)
}

// Clone returns an independent copy of the registry.
func (p *PreloadTypes) Clone() *PreloadTypes {
	clone := NewPreloadTypes()
	for ext, t := range p.types {
		clone.types[ext] = t
	}
	return clone
}
