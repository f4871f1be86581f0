package codec

// Cursor carries array traversal state between calls.
//
// With ArrayEnd, an encoding cursor counts the elements still to write
// (the loop body runs Count times) and a decoding cursor counts elements
// read after the first. With ArrayNext, an encoding cursor holds the total
// and a decoding cursor the number of elements seen so far.
type Cursor struct {
	count int
	index int
	begun bool
}

func NewCursor(n int) *Cursor {
	return &Cursor{count: n}
}

func (c *Cursor) Count() int {
	return c.count
}

// Index is the zero-based position of the element the loop body is on.
func (c *Cursor) Index() int {
	return c.index
}
