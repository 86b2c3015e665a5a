package domain

// Manifest is an immutable index of chunk name to Chunk, built once from the
// decoded manifest file. After construction it is safe for unsynchronized
// concurrent reads.
type Manifest struct {
	chunks map[InternedString]Chunk
	digest uint64
}

// NewManifest creates a Manifest from the given chunk index and content digest.
func NewManifest(chunks map[InternedString]Chunk, digest uint64) *Manifest {
	return &Manifest{
		chunks: chunks,
		digest: digest,
	}
}

// Chunk returns the chunk for the given name.
func (m *Manifest) Chunk(name InternedString) (Chunk, bool) {
	c, ok := m.chunks[name]
	return c, ok
}

// Len returns the number of chunks in the manifest.
func (m *Manifest) Len() int {
	return len(m.chunks)
}

// Digest returns the content digest of the raw manifest bytes.
// It keys caches that must be invalidated when the manifest changes.
func (m *Manifest) Digest() uint64 {
	return m.digest
}
