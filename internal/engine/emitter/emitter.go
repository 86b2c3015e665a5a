// Package emitter derives the HTML tag streams from a resolved chunk closure.
package emitter

import (
	"fmt"
	"strings"

	"go.trai.ch/vitelink/internal/core/domain"
)

// Emit produces the three tag streams for the closure. Each stream is one
// independent pass in closure order; a chunk may contribute to all three.
// URLs are formed as base + relative path; the base is expected to already
// end in "/".
func Emit(closure *domain.Closure, types *domain.PreloadTypes, base string) domain.Tags {
	return domain.Tags{
		Preload: preloadStream(closure, types, base),
		CSS:     cssStream(closure, base),
		JS:      jsStream(closure, base),
	}
}

// preloadStream emits a module-preload link for every JS chunk file and a
// preload link for every asset whose extension carries a registered rule.
// Assets with unregistered extensions are silently skipped.
func preloadStream(closure *domain.Closure, types *domain.PreloadTypes, base string) string {
	var tags []string
	for chunk := range closure.Walk() {
		if chunk.IsJS() {
			tags = append(tags, fmt.Sprintf(`<link rel="modulepreload" href="%s%s">`, base, chunk.File))
		}
		for _, asset := range chunk.Assets {
			rule, ok := types.Lookup(extension(asset))
			if !ok {
				continue
			}
			tags = append(tags, fmt.Sprintf(`<link rel="preload" as="%s" type="%s" href="%s%s">`, rule.As, rule.MIME, base, asset))
		}
	}
	return strings.Join(tags, "\n")
}

// cssStream emits stylesheet links. A CSS entry chunk links its own file and
// its side-effect list is skipped; every other chunk links each emitted
// stylesheet in order.
func cssStream(closure *domain.Closure, base string) string {
	var tags []string
	for chunk := range closure.Walk() {
		if chunk.IsEntry && chunk.IsCSS() {
			tags = append(tags, stylesheet(base, chunk.File))
			continue
		}
		for _, css := range chunk.CSS {
			tags = append(tags, stylesheet(base, css))
		}
	}
	return strings.Join(tags, "\n")
}

// jsStream emits a module script tag per JS entry chunk. Dependencies and
// dynamic entries never produce a script tag; they are loaded by the running
// application.
func jsStream(closure *domain.Closure, base string) string {
	var tags []string
	for chunk := range closure.Walk() {
		if chunk.IsEntry && chunk.IsJS() {
			tags = append(tags, Script(base, chunk.File))
		}
	}
	return strings.Join(tags, "\n")
}

// Script formats one module script tag for the given path.
func Script(base, path string) string {
	return fmt.Sprintf(`<script type="module" src="%s%s"></script>`, base, path)
}

func stylesheet(base, path string) string {
	return fmt.Sprintf(`<link rel="stylesheet" href="%s%s">`, base, path)
}

// extension returns the substring after the last dot, or "" when the path
// has no dot.
func extension(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i+1:]
}
