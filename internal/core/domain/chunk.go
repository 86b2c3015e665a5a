// Package domain contains the core domain models for the manifest chunk graph.
package domain

import "strings"

// Chunk represents one published build artifact and its metadata, as recorded
// in the bundler manifest. It is identified by its manifest key, a logical
// chunk name that is typically a source-relative file path.
// It uses InternedString for fields that are frequently repeated to save memory.
type Chunk struct {
	Name InternedString

	// Src is the original source file. Empty for generated chunks.
	Src string
	// ChunkName is the Rollup-style chunk name. Present only for entry chunks.
	ChunkName string

	IsEntry        bool
	IsDynamicEntry bool

	// File is the path of the built artifact. Required.
	File string

	// CSS lists stylesheets emitted as a side effect of this chunk.
	CSS []string
	// Assets lists non-JS/CSS assets imported by this chunk.
	Assets []string

	// Imports lists chunks statically pulled in with this one.
	Imports []InternedString
	// DynamicImports is recorded but never traversed; dynamic chunks are
	// loaded by the running application.
	DynamicImports []InternedString
}

// IsJS reports whether the chunk's built file is a JavaScript module.
func (c Chunk) IsJS() bool {
	return strings.HasSuffix(c.File, ".js")
}

// IsCSS reports whether the chunk's built file is a stylesheet.
func (c Chunk) IsCSS() bool {
	return strings.HasSuffix(c.File, ".css")
}
