// Package resolver walks the static-import graph recorded in the manifest.
package resolver

import (
	"go.trai.ch/vitelink/internal/core/domain"
	"go.trai.ch/zerr"
)

// Closure collects the transitive static-import closure of the requested
// entry points. Entries are validated for existence and entry-ness; their
// dependencies are assumed consistent by the manifest contract, so a missing
// import target is fatal.
//
// The traversal is an explicit work list rather than recursion, drained per
// entry: imports are appended to the back of the queue, which yields a
// breadth-first order grouped by originating entry, so a shared dependency
// lands right after the first entry that pulls it in. The presence check runs
// before every insertion, so duplicate requests and import cycles terminate
// without re-traversal.
func Closure(entries []string, manifest *domain.Manifest) (*domain.Closure, error) {
	closure := domain.NewClosure()

	for _, entry := range entries {
		name := domain.NewInternedString(entry)
		chunk, ok := manifest.Chunk(name)
		if !ok {
			return nil, zerr.With(domain.ErrEntryNotFound, "entry", entry)
		}
		if !chunk.IsEntry {
			return nil, zerr.With(domain.ErrNotAnEntryPoint, "entry", entry)
		}
		if closure.Has(name) {
			continue
		}
		closure.Add(name, chunk)

		pending := append([]domain.InternedString(nil), chunk.Imports...)
		for len(pending) > 0 {
			next := pending[0]
			pending = pending[1:]

			if closure.Has(next) {
				continue
			}

			imported, ok := manifest.Chunk(next)
			if !ok {
				return nil, zerr.With(domain.ErrMissingImport, "chunk", next.String())
			}

			closure.Add(next, imported)
			pending = append(pending, imported.Imports...)
		}
	}

	return closure, nil
}
