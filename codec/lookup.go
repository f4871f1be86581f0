package codec

import (
	"strconv"

	"github.com/signadot/ij/token"
)

// Lookup positions a decoding Codec just before the value at path. Each
// path element names an object member or, when the value there is an
// array, a zero-based element index. It reports false with a nil error
// when some element is absent; what was read up to that point is
// consumed.
func Lookup(c *Codec, path ...string) (bool, error) {
	if c.dec == nil {
		return false, ErrReadOnly
	}
	for _, p := range path {
		var found bool
		var err error
		if i, aerr := strconv.Atoi(p); aerr == nil && c.dec.peek() == token.SquareOpen {
			found, err = lookupIndex(c, i)
		} else {
			found, err = lookupMember(c, p)
		}
		if !found || err != nil {
			return false, err
		}
	}
	return true, nil
}

func lookupMember(c *Codec, name string) (bool, error) {
	if err := c.ObjectBegin(); err != nil {
		return false, err
	}
	for {
		if c.Member(name) {
			return true, nil
		}
		if c.ObjectEnd() {
			return false, c.Err()
		}
	}
}

func lookupIndex(c *Codec, i int) (bool, error) {
	if err := c.ArrayBegin(); err != nil {
		return false, err
	}
	cur := NewCursor(0)
	for c.ArrayNext(cur) {
		if cur.Index() == i {
			return true, nil
		}
		if err := c.Skip(); err != nil {
			return false, err
		}
	}
	return false, c.Err()
}

// peek returns the kind of the next token without consuming it, or
// token.Unknown if there is none.
func (d *decoder) peek() token.Kind {
	s := d.lex.Snapshot()
	defer d.lex.Restore(s)
	if !d.lex.Next() {
		return token.Unknown
	}
	return d.lex.Token().Kind
}
