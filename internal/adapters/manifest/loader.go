// Package manifest provides the bundler manifest loader.
package manifest

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vitelink/internal/core/domain"
	"go.trai.ch/zerr"
)

// chunkDTO is the raw manifest record as serialized by the bundler.
// Booleans default to false and list fields to empty; file is required.
type chunkDTO struct {
	Src            string   `json:"src"`
	Name           string   `json:"name"`
	IsEntry        bool     `json:"isEntry"`
	IsDynamicEntry bool     `json:"isDynamicEntry"`
	File           string   `json:"file"`
	CSS            []string `json:"css"`
	Assets         []string `json:"assets"`
	Imports        []string `json:"imports"`
	DynamicImports []string `json:"dynamicImports"`
}

type cacheEntry struct {
	mtime    time.Time
	manifest *domain.Manifest
}

// Loader implements ports.ManifestLoader from a JSON manifest file.
// Parsed manifests are cached by path and invalidated on mtime change, so a
// deployed manifest is read and decoded once regardless of how many
// resolution calls follow.
type Loader struct {
	fs FileSystem

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewLoader creates a new Loader backed by the given filesystem.
func NewLoader(fsys FileSystem) *Loader {
	return &Loader{
		fs:    fsys,
		cache: make(map[string]cacheEntry),
	}
}

// Load reads and decodes the manifest at path into a chunk index.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, zerr.With(domain.ErrManifestUnreadable, "path", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.cache[path]; ok && entry.mtime.Equal(info.ModTime()) {
		return entry.manifest, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.ErrManifestUnreadable, "path", path)
	}

	m, err := decode(data, path)
	if err != nil {
		return nil, err
	}

	l.cache[path] = cacheEntry{mtime: info.ModTime(), manifest: m}
	return m, nil
}

func decode(data []byte, path string) (*domain.Manifest, error) {
	var raw map[string]chunkDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestMalformed.Error()), "path", path)
	}

	chunks := make(map[domain.InternedString]domain.Chunk, len(raw))
	for name, dto := range raw {
		if dto.File == "" {
			return nil, zerr.With(domain.ErrManifestMalformed, "chunk", name)
		}
		interned := domain.NewInternedString(name)
		chunks[interned] = domain.Chunk{
			Name:           interned,
			Src:            dto.Src,
			ChunkName:      dto.Name,
			IsEntry:        dto.IsEntry,
			IsDynamicEntry: dto.IsDynamicEntry,
			File:           dto.File,
			CSS:            dto.CSS,
			Assets:         dto.Assets,
			Imports:        domain.NewInternedStrings(dto.Imports),
			DynamicImports: domain.NewInternedStrings(dto.DynamicImports),
		}
	}

	return domain.NewManifest(chunks, xxhash.Sum64(data)), nil
}
