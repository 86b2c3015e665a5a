package domain

import "iter"

// Closure is the deduplicated, order-preserving set of chunks reachable from
// the requested entry points via static imports. Iteration order is discovery
// order, and that order is observable in the emitted tag streams: a shared
// dependency appears once, at the position where it was first discovered.
type Closure struct {
	order  []InternedString
	chunks map[InternedString]Chunk
}

// NewClosure creates a new empty Closure.
func NewClosure() *Closure {
	return &Closure{
		chunks: make(map[InternedString]Chunk),
	}
}

// Add inserts a chunk under the given name. Adding a name that is already
// present is a no-op; the first insertion wins.
func (c *Closure) Add(name InternedString, chunk Chunk) {
	if _, exists := c.chunks[name]; exists {
		return
	}
	c.chunks[name] = chunk
	c.order = append(c.order, name)
}

// Has reports whether the name is already part of the closure.
func (c *Closure) Has(name InternedString) bool {
	_, ok := c.chunks[name]
	return ok
}

// Len returns the number of chunks in the closure.
func (c *Closure) Len() int {
	return len(c.order)
}

// Walk returns an iterator that yields chunks in discovery order.
func (c *Closure) Walk() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for _, name := range c.order {
			if !yield(c.chunks[name]) {
				return
			}
		}
	}
}

// Names returns the chunk names in discovery order.
func (c *Closure) Names() []string {
	names := make([]string, len(c.order))
	for i, name := range c.order {
		names[i] = name.String()
	}
	return names
}
