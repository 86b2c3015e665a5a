// Package app implements the application layer for vitelink.
package app

import (
	"context"
	"encoding/binary"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vitelink/internal/core/domain"
	"go.trai.ch/vitelink/internal/core/ports"
	"go.trai.ch/vitelink/internal/engine/emitter"
	"go.trai.ch/vitelink/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App is the facade over manifest loading, closure resolution and tag
// emission. It owns the preload type registry and memoizes resolved tag
// streams: resolution is a pure function of the manifest content, the
// options and the registry, so identical calls are served from cache.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestLoader
	logger       ports.Logger
	tracer       ports.Tracer

	mu         sync.Mutex
	types      *domain.PreloadTypes
	generation uint64
	memo       map[uint64]domain.Tags
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestLoader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		logger:       log,
		tracer:       tracer,
		types:        domain.NewPreloadTypes(),
		memo:         make(map[uint64]domain.Tags),
	}
}

// RegisterPreloadType registers a preload rule for the given extension.
func (a *App) RegisterPreloadType(ext, mime, as string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.types.Register(ext, mime, as)
	a.generation++
}

// RegisterImageTypes registers preload rules for common image extensions.
func (a *App) RegisterImageTypes() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.types.RegisterImages()
	a.generation++
}

// RegisterFontTypes registers preload rules for common font extensions.
func (a *App) RegisterFontTypes() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.types.RegisterFonts()
	a.generation++
}

// Resolve produces the tag streams for the requested entry points.
// In dev mode the manifest is never consulted: the client bootstrap tag is
// followed by one raw script tag per entry, and the preload and css streams
// stay empty because the dev server injects styles itself.
func (a *App) Resolve(ctx context.Context, entries []string, overrides domain.Options) (domain.Tags, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("entries", len(entries))

	if len(entries) == 0 {
		span.RecordError(domain.ErrNoEntriesSpecified)
		return domain.Tags{}, domain.ErrNoEntriesSpecified
	}

	opts, err := a.options(overrides)
	if err != nil {
		span.RecordError(err)
		return domain.Tags{}, err
	}

	if opts.Dev {
		return devTags(entries, opts.Base), nil
	}

	m, err := a.loadManifest(ctx, opts.Manifest)
	if err != nil {
		span.RecordError(err)
		return domain.Tags{}, err
	}

	types, generation := a.effectiveTypes(opts)

	key := memoKey(m.Digest(), generation, entries, opts)
	a.mu.Lock()
	tags, hit := a.memo[key]
	a.mu.Unlock()
	if hit {
		return tags, nil
	}

	closure, err := resolver.Closure(entries, m)
	if err != nil {
		span.RecordError(err)
		return domain.Tags{}, err
	}
	span.SetAttribute("chunks", closure.Len())

	tags = emitter.Emit(closure, types, opts.Base)

	a.mu.Lock()
	a.memo[key] = tags
	a.mu.Unlock()

	return tags, nil
}

// URLFor resolves a single asset name to its public URL. Dev mode returns
// base + name without consulting the manifest.
func (a *App) URLFor(ctx context.Context, name string, overrides domain.Options) (string, error) {
	ctx, span := a.tracer.Start(ctx, "url_for")
	defer span.End()
	span.SetAttribute("name", name)

	opts, err := a.options(overrides)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	if opts.Dev {
		return opts.Base + name, nil
	}

	m, err := a.loadManifest(ctx, opts.Manifest)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	chunk, ok := m.Chunk(domain.NewInternedString(name))
	if !ok {
		err := zerr.With(domain.ErrEntryNotFound, "entry", name)
		span.RecordError(err)
		return "", err
	}

	return opts.Base + chunk.File, nil
}

// options loads the configuration and overlays the per-call overrides.
func (a *App) options(overrides domain.Options) (domain.Options, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}

	opts := cfg.Merge(overrides)
	if opts.Base == "" {
		opts.Base = domain.DefaultBase
	}
	if opts.Manifest == "" {
		opts.Manifest = domain.ManifestFileName
	}
	if !strings.HasSuffix(opts.Base, "/") {
		a.logger.Warn("base does not end in /")
	}
	return opts, nil
}

func (a *App) loadManifest(ctx context.Context, path string) (*domain.Manifest, error) {
	_, span := a.tracer.Start(ctx, "manifest.load")
	defer span.End()
	span.SetAttribute("path", path)

	m, err := a.manifests.Load(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("chunks", m.Len())
	return m, nil
}

// effectiveTypes clones the app-level registry and applies per-call
// registrations from the options, leaving the shared registry untouched.
func (a *App) effectiveTypes(opts domain.Options) (*domain.PreloadTypes, uint64) {
	a.mu.Lock()
	types := a.types.Clone()
	generation := a.generation
	a.mu.Unlock()

	if opts.PreloadImages {
		types.RegisterImages()
	}
	if opts.PreloadFonts {
		types.RegisterFonts()
	}
	for _, rule := range opts.PreloadRules {
		types.Register(rule.Ext, rule.MIME, rule.As)
	}
	return types, generation
}

func devTags(entries []string, base string) domain.Tags {
	tags := make([]string, 0, len(entries)+1)
	tags = append(tags, emitter.Script(base, domain.ClientPath))
	for _, entry := range entries {
		tags = append(tags, emitter.Script(base, entry))
	}
	return domain.Tags{JS: strings.Join(tags, "\n")}
}

// memoKey hashes everything a resolved Tags value depends on.
func memoKey(digest, generation uint64, entries []string, opts domain.Options) uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], digest)
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], generation)
	_, _ = h.Write(buf[:])

	_, _ = h.WriteString(opts.Base)
	_, _ = h.Write([]byte{0, flag(opts.PreloadImages), flag(opts.PreloadFonts)})
	for _, rule := range opts.PreloadRules {
		_, _ = h.WriteString(rule.Ext + "\x00" + rule.MIME + "\x00" + rule.As + "\x00")
	}
	for _, entry := range entries {
		_, _ = h.WriteString(entry + "\x00")
	}
	return h.Sum64()
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
