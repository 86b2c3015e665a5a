package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitelink/internal/core/domain"
	"go.trai.ch/vitelink/internal/engine/resolver"
	"go.trai.ch/zerr"
)

func buildManifest(t *testing.T, chunks ...domain.Chunk) *domain.Manifest {
	t.Helper()
	index := make(map[domain.InternedString]domain.Chunk, len(chunks))
	for _, c := range chunks {
		index[c.Name] = c
	}
	return domain.NewManifest(index, 0)
}

func chunk(name string, isEntry bool, imports ...string) domain.Chunk {
	return domain.Chunk{
		Name:    domain.NewInternedString(name),
		File:    "assets/" + name,
		IsEntry: isEntry,
		Imports: domain.NewInternedStrings(imports),
	}
}

func TestClosure_SingleEntry(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "shared.js"),
		chunk("shared.js", false),
	)

	c, err := resolver.Closure([]string{"main.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js", "shared.js"}, c.Names())
}

func TestClosure_TransitiveImports(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "a.js"),
		chunk("a.js", false, "b.js"),
		chunk("b.js", false, "c.js"),
		chunk("c.js", false),
	)

	c, err := resolver.Closure([]string{"main.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js", "a.js", "b.js", "c.js"}, c.Names())
}

func TestClosure_SharedDependencyDeduplicated(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "shared.js"),
		chunk("views/foo.js", true, "shared.js"),
		chunk("shared.js", false),
	)

	c, err := resolver.Closure([]string{"main.js", "views/foo.js"}, m)
	require.NoError(t, err)

	// shared.js appears once, right after the entry that first pulled it in.
	assert.Equal(t, []string{"main.js", "shared.js", "views/foo.js"}, c.Names())
}

func TestClosure_OrderFollowsEntryOrder(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "shared.js"),
		chunk("views/foo.js", true, "shared.js"),
		chunk("shared.js", false),
	)

	c, err := resolver.Closure([]string{"views/foo.js", "main.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"views/foo.js", "main.js", "shared.js"}, c.Names())

	c, err = resolver.Closure([]string{"main.js", "views/foo.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js", "shared.js", "views/foo.js"}, c.Names())
}

func TestClosure_DuplicateEntryRequestedOnce(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "shared.js"),
		chunk("shared.js", false),
	)

	once, err := resolver.Closure([]string{"main.js"}, m)
	require.NoError(t, err)

	twice, err := resolver.Closure([]string{"main.js", "main.js"}, m)
	require.NoError(t, err)

	assert.Equal(t, once.Names(), twice.Names())
}

func TestClosure_CyclicImportsTerminate(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "a.js"),
		chunk("a.js", false, "b.js"),
		chunk("b.js", false, "a.js"),
	)

	c, err := resolver.Closure([]string{"main.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js", "a.js", "b.js"}, c.Names())
}

func TestClosure_EntryNotFound(t *testing.T) {
	m := buildManifest(t, chunk("main.js", true))

	_, err := resolver.Closure([]string{"missing.js"}, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "missing.js", zErr.Metadata()["entry"])
}

func TestClosure_NotAnEntryPoint(t *testing.T) {
	m := buildManifest(t,
		chunk("main.js", true, "shared.js"),
		chunk("shared.js", false),
	)

	_, err := resolver.Closure([]string{"shared.js"}, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAnEntryPoint)
}

func TestClosure_MissingImportIsFatal(t *testing.T) {
	m := buildManifest(t, chunk("main.js", true, "gone.js"))

	_, err := resolver.Closure([]string{"main.js"}, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingImport)
}

func TestClosure_DynamicImportsNotTraversed(t *testing.T) {
	lazy := chunk("lazy.js", false)
	main := chunk("main.js", true)
	main.DynamicImports = []domain.InternedString{lazy.Name}
	m := buildManifest(t, main, lazy)

	c, err := resolver.Closure([]string{"main.js"}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js"}, c.Names())
}
