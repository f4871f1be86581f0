package codec

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/ij/token"
	"go.uber.org/zap"
)

type decoder struct {
	lex *token.Lexer
	// first is set on entry to a container and after a member name: the
	// next value is not preceded by a comma.
	first    bool
	status   error
	shallow  bool
	zeroCopy bool
	log      *zap.Logger
}

func (d *decoder) err() error {
	return d.lex.Err()
}

func (d *decoder) close() error {
	return d.lex.Err()
}

func (d *decoder) unexpected(format string, args ...any) {
	d.lex.Fail(&token.Error{
		Err:    token.ErrUnexpectedToken,
		Offset: d.lex.Offset(),
		Msg:    fmt.Sprintf(format, args...),
	})
}

// separate consumes the comma before a value unless it is the first in its
// container.
func (d *decoder) separate() bool {
	if !d.first {
		if !d.lex.Expect(token.Comma) {
			return false
		}
	}
	d.first = false
	return true
}

func (d *decoder) objectBegin() error {
	if !d.separate() || !d.lex.Expect(token.CurlyOpen) {
		return d.lex.Err()
	}
	d.first = true
	return nil
}

func (d *decoder) objectEnd() bool {
	d.status = nil
	if d.lex.Err() != nil {
		return true
	}
	switch d.lex.Probe(token.CurlyClose) {
	case token.Matched:
		d.first = false
		return true
	case token.Failed:
		return true
	}
	switch d.lex.Probe(token.Comma) {
	case token.Matched:
		d.status = &token.Error{Err: token.ErrMoreElements, Offset: d.lex.Offset()}
		return false
	case token.Failed:
		return true
	}

	s := d.lex.Snapshot()
	if d.lex.NextIs(token.String) {
		name := string(d.lex.Token().Bytes)
		if d.lex.NextIs(token.Colon) {
			d.lex.Release(s)
			if ce := d.log.Check(zap.DebugLevel, "skip unhandled member"); ce != nil {
				ce.Write(zap.String("name", name), zap.Bool("shallow", d.shallow))
			}
			if d.shallow {
				d.lex.Next()
			} else {
				d.skipValue()
			}
			d.first = false
			return d.lex.Err() != nil
		}
	}
	if d.lex.Err() != nil {
		d.lex.Release(s)
		return true
	}
	d.lex.Restore(s)
	d.unexpected("expected ',' or '}'")
	return true
}

func (d *decoder) member(name string) token.Outcome {
	if d.lex.Err() != nil {
		return token.Failed
	}
	if d.lex.Probe(token.Comma) == token.Failed {
		return token.Failed
	}
	s := d.lex.Snapshot()
	if d.lex.ExpectString(name) && d.lex.NextIs(token.Colon) {
		d.lex.Release(s)
		d.first = true
		return token.Matched
	}
	d.lex.Restore(s)
	return token.NotMatched
}

func (d *decoder) arrayBegin() error {
	if !d.separate() || !d.lex.Expect(token.SquareOpen) {
		return d.lex.Err()
	}
	d.first = true
	return nil
}

func (d *decoder) arrayEnd(c *Cursor) bool {
	if d.lex.Err() != nil {
		return true
	}
	switch d.lex.Probe(token.SquareClose) {
	case token.Matched:
		d.first = false
		return true
	case token.Failed:
		return true
	}
	if c != nil {
		c.count++
		c.index++
	}
	return false
}

func (d *decoder) arrayNext(c *Cursor) bool {
	if c.begun {
		c.index++
	} else {
		c.begun = true
	}
	if d.lex.Err() != nil {
		return false
	}
	switch d.lex.Probe(token.SquareClose) {
	case token.Matched:
		d.first = false
		return false
	case token.Failed:
		return false
	}
	c.count = c.index + 1
	return true
}

func (d *decoder) expectString() ([]byte, bool) {
	if !d.separate() || !d.lex.Expect(token.String) {
		return nil, false
	}
	return d.lex.Token().Bytes, true
}

func (d *decoder) str(v *string) error {
	b, ok := d.expectString()
	if !ok {
		return d.lex.Err()
	}
	if v == nil {
		return nil
	}
	if d.zeroCopy {
		d.lex.Fail(&token.Error{Err: token.ErrCopyRequired, Offset: d.lex.Offset()})
		return d.lex.Err()
	}
	*v = string(b)
	return nil
}

func (d *decoder) bytes(v *[]byte) error {
	b, ok := d.expectString()
	if !ok {
		return d.lex.Err()
	}
	if v != nil {
		*v = b
	}
	return nil
}

func (d *decoder) number(v *float64) error {
	if !d.separate() || !d.lex.Expect(token.Number) {
		return d.lex.Err()
	}
	text := d.lex.Token().Bytes
	f, ok := parseNumber(text)
	if !ok {
		d.unexpected("bad number %q", text)
		return d.lex.Err()
	}
	if v != nil {
		*v = f
	}
	return nil
}

// parseNumber converts number token text. Digit runs beyond float64 range
// give ±Inf, not an error.
func parseNumber(text []byte) (float64, bool) {
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func (d *decoder) boolean(v *bool) error {
	if !d.separate() {
		return d.lex.Err()
	}
	var b bool
	switch {
	case d.lex.NextIs(token.True):
		b = true
	case d.lex.NextIs(token.False):
	default:
		if d.lex.Err() == nil {
			d.unexpected("expected boolean")
		}
		return d.lex.Err()
	}
	if v != nil {
		*v = b
	}
	return nil
}

func (d *decoder) null() error {
	if !d.separate() || !d.lex.Expect(token.Null) {
		return d.lex.Err()
	}
	return nil
}
