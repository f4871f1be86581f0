package codec

import (
	"github.com/signadot/ij/token"
)

type encoder struct {
	w *token.Writer
	// first is set on entry to a container, before its first element.
	first bool
	// afterMember is set between a member name and its value, which takes
	// no separator of its own.
	afterMember bool
	depth       int
}

func (e *encoder) err() error {
	return e.w.Err()
}

// separate writes what goes before a value: a comma unless it is the first
// in its container, and a newline when inside one.
func (e *encoder) separate() error {
	if e.afterMember {
		e.afterMember = false
		e.first = false
		return e.w.Err()
	}
	if !e.first {
		if err := e.w.Put(','); err != nil {
			return err
		}
	}
	e.first = false
	if e.depth > 0 {
		return e.w.Newline()
	}
	return nil
}

func (e *encoder) open(c byte) error {
	if err := e.separate(); err != nil {
		return err
	}
	if err := e.w.Put(c); err != nil {
		return err
	}
	e.w.Indent()
	e.depth++
	e.first = true
	return nil
}

func (e *encoder) shut(c byte) error {
	e.w.Dedent()
	e.depth--
	e.afterMember = false
	if !e.first {
		if err := e.w.Newline(); err != nil {
			return err
		}
	}
	e.first = false
	return e.w.Put(c)
}

func (e *encoder) objectBegin() error {
	return e.open('{')
}

func (e *encoder) objectEnd() bool {
	e.shut('}')
	return true
}

func (e *encoder) member(name string) token.Outcome {
	if err := e.separate(); err != nil {
		return token.Failed
	}
	sep := ":"
	if e.w.IsPretty() {
		sep = ": "
	}
	if err := e.w.Appendf("\"%s\"%s", name, sep); err != nil {
		return token.Failed
	}
	e.afterMember = true
	return token.Matched
}

func (e *encoder) arrayBegin() error {
	return e.open('[')
}

func (e *encoder) arrayEnd(c *Cursor) bool {
	if e.w.Err() != nil {
		return true
	}
	if c != nil && c.count-1 > 0 {
		c.count--
		c.index++
		return false
	}
	e.shut(']')
	return true
}

func (e *encoder) arrayNext(c *Cursor) bool {
	if c.begun {
		c.index++
	} else {
		c.begun = true
	}
	if e.w.Err() != nil {
		return false
	}
	if c.index < c.count {
		return true
	}
	e.shut(']')
	return false
}

func (e *encoder) quoted(text []byte) error {
	if err := e.separate(); err != nil {
		return err
	}
	if err := e.w.Put('"'); err != nil {
		return err
	}
	for _, b := range text {
		if err := e.w.Put(b); err != nil {
			return err
		}
	}
	return e.w.Put('"')
}

func (e *encoder) str(v *string) error {
	if v == nil {
		return ErrNilValue
	}
	if err := e.separate(); err != nil {
		return err
	}
	if err := e.w.Put('"'); err != nil {
		return err
	}
	if err := e.w.Append(*v); err != nil {
		return err
	}
	return e.w.Put('"')
}

func (e *encoder) bytes(v *[]byte) error {
	if v == nil {
		return ErrNilValue
	}
	return e.quoted(*v)
}

func (e *encoder) number(v *float64) error {
	if v == nil {
		return ErrNilValue
	}
	if err := e.separate(); err != nil {
		return err
	}
	return e.w.Appendf("%f", *v)
}

func (e *encoder) boolean(v *bool) error {
	if v == nil {
		return ErrNilValue
	}
	if err := e.separate(); err != nil {
		return err
	}
	if *v {
		return e.w.Append("true")
	}
	return e.w.Append("false")
}

func (e *encoder) null() error {
	if err := e.separate(); err != nil {
		return err
	}
	return e.w.Append("null")
}

func (e *encoder) close() error {
	return e.w.Terminate()
}
