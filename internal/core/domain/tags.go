package domain

// Tags holds the three rendered tag streams for a set of entry points.
// Preload and CSS belong in the document head, JS before the closing body.
// Each stream is its tag strings joined by newline; an empty stream is the
// empty string. Immutable once produced.
type Tags struct {
	Preload string
	CSS     string
	JS      string
}
