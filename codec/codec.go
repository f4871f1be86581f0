package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/ij/debug"
	"github.com/signadot/ij/token"
	"go.uber.org/zap"
)

// Mode selects the direction of a Codec. It is fixed at construction.
type Mode int

const (
	Encode Mode = iota
	Decode
)

func (m Mode) String() string {
	switch m {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	// ErrWriteOnly is returned by operations with no decode counterpart.
	ErrWriteOnly = errors.New("write-only operation")
	// ErrReadOnly is returned by operations with no encode counterpart.
	ErrReadOnly = errors.New("read-only operation")
	ErrNilValue = errors.New("nil value")
	ErrBadValue = errors.New("bad value type")
	ErrBadMode  = errors.New("bad mode")
)

// variant is implemented once per mode; the Codec forwards every protocol
// call to it.
type variant interface {
	objectBegin() error
	objectEnd() bool
	member(name string) token.Outcome
	arrayBegin() error
	arrayEnd(c *Cursor) bool
	arrayNext(c *Cursor) bool
	str(v *string) error
	bytes(v *[]byte) error
	number(v *float64) error
	boolean(v *bool) error
	null() error
	close() error
	err() error
}

// Codec encodes or decodes one document over a caller-supplied buffer.
// It is not safe for concurrent use.
type Codec struct {
	mode Mode
	v    variant
	enc  *encoder
	dec  *decoder
	log  *zap.Logger
}

// New creates a Codec over buf. In Decode mode the input is buf[:n], where
// n comes from WithLength or, by default, extends just past the first zero
// byte in buf.
func New(buf []byte, mode Mode, opts ...Option) (*Codec, error) {
	o := &options{cfg: DefaultConfig(), length: -1}
	for _, opt := range opts {
		opt(o)
	}
	if len(buf) == 0 {
		return nil, &token.Error{Err: token.ErrNoBuffer}
	}
	c := &Codec{mode: mode, log: o.log}
	if c.log == nil {
		c.log = debug.Logger(debug.CodecComponent)
	}
	switch mode {
	case Encode:
		wopts := []token.WriterOption{
			token.Pretty(o.cfg.Pretty),
			token.IndentWidth(o.cfg.IndentWidth),
			token.Scratch(o.cfg.Scratch),
		}
		if o.log != nil {
			wopts = append(wopts, token.WriterLogger(o.log.Named(debug.WriterComponent)))
		}
		c.enc = &encoder{w: token.NewWriter(buf, o.s, wopts...), first: true}
		c.v = c.enc
	case Decode:
		n := o.length
		if n < 0 {
			n = inputLength(buf)
		}
		if n == 0 && !o.s.CanRead() {
			return nil, &token.Error{Err: token.ErrNoInput}
		}
		var lopts []token.LexerOption
		if o.log != nil {
			lopts = append(lopts, token.LexerLogger(o.log.Named(debug.LexerComponent)))
		}
		c.dec = &decoder{
			lex:      token.NewLexer(buf, n, o.s, lopts...),
			first:    true,
			shallow:  o.cfg.ShallowSkip,
			zeroCopy: o.cfg.ZeroCopy,
			log:      c.log,
		}
		c.v = c.dec
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
	c.log.Debug("init", zap.Stringer("mode", mode), zap.Int("buf", len(buf)),
		zap.Bool("stream", o.s != nil))
	return c, nil
}

// NewEncoder is New(buf, Encode, opts...).
func NewEncoder(buf []byte, opts ...Option) (*Codec, error) {
	return New(buf, Encode, opts...)
}

// NewDecoder is New(buf, Decode, opts...).
func NewDecoder(buf []byte, opts ...Option) (*Codec, error) {
	return New(buf, Decode, opts...)
}

func inputLength(buf []byte) int {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return i + 1
	}
	return len(buf)
}

func (c *Codec) Mode() Mode {
	return c.mode
}

// Close finishes the codec. In Encode mode it terminates the output and,
// when streaming, flushes it.
func (c *Codec) Close() error {
	return c.v.close()
}

// Err returns the sticky error, if any.
func (c *Codec) Err() error {
	return c.v.err()
}

// Status returns the last non-fatal notice from ObjectEnd: an error
// wrapping token.ErrMoreElements when the object had a sibling member
// left, nil otherwise. It never affects Err.
func (c *Codec) Status() error {
	if c.dec == nil {
		return nil
	}
	return c.dec.status
}

// Output returns the encoded bytes still held in the buffer, excluding the
// terminator. It is nil in Decode mode.
func (c *Codec) Output() []byte {
	if c.enc == nil {
		return nil
	}
	return c.enc.w.Bytes()
}

// ObjectBegin writes or expects '{'.
func (c *Codec) ObjectBegin() error {
	return c.v.objectBegin()
}

// ObjectEnd closes the current object and reports whether the object is
// done. Decoding, a false result means more members remain and the caller
// should probe again. A sticky error also ends the object.
func (c *Codec) ObjectEnd() bool {
	return c.v.objectEnd()
}

// Member writes the member name, or reports whether the next member is
// named name, consuming the name if so. A comma in front of the member is
// consumed even when the name does not match.
func (c *Codec) Member(name string) bool {
	return c.v.member(name) == token.Matched
}

// ProbeMember is Member with scan failures told apart from mismatches.
func (c *Codec) ProbeMember(name string) token.Outcome {
	return c.v.member(name)
}

// ArrayBegin writes or expects '['.
func (c *Codec) ArrayBegin() error {
	return c.v.arrayBegin()
}

// ArrayEnd ends one pass of a do/while array loop and reports whether the
// array is closed. cur may be nil.
func (c *Codec) ArrayEnd(cur *Cursor) bool {
	return c.v.arrayEnd(cur)
}

// ArrayNext reports whether the loop body should handle another element,
// closing the array when it returns false.
func (c *Codec) ArrayNext(cur *Cursor) bool {
	if cur == nil {
		cur = &Cursor{}
	}
	return c.v.arrayNext(cur)
}

// String writes *v, or decodes a string into *v, copying it out of the
// buffer. v may be nil when decoding.
func (c *Codec) String(v *string) error {
	return c.v.str(v)
}

// Bytes writes *v as a string, or decodes a string into *v without
// copying. The decoded slice aliases the buffer.
func (c *Codec) Bytes(v *[]byte) error {
	return c.v.bytes(v)
}

func (c *Codec) Number(v *float64) error {
	return c.v.number(v)
}

func (c *Codec) Bool(v *bool) error {
	return c.v.boolean(v)
}

func (c *Codec) Null() error {
	return c.v.null()
}

// Any writes v by dispatching on its type. The boolean is the result of
// ObjectEnd or ArrayEnd for those types, true otherwise. Decode mode has
// no generic counterpart and returns ErrWriteOnly.
func (c *Codec) Any(v Value) (bool, error) {
	if c.mode != Encode {
		return false, ErrWriteOnly
	}
	switch v.Type {
	case TypeObjectBegin:
		return true, c.ObjectBegin()
	case TypeObjectEnd:
		return c.ObjectEnd(), c.Err()
	case TypeArrayBegin:
		return true, c.ArrayBegin()
	case TypeArrayEnd:
		return c.ArrayEnd(v.Cursor), c.Err()
	case TypeString:
		s := v.String
		return true, c.String(&s)
	case TypeNumber:
		f := v.Number
		return true, c.Number(&f)
	case TypeBool:
		b := v.Bool
		return true, c.Bool(&b)
	case TypeNull:
		return true, c.Null()
	default:
		return false, fmt.Errorf("%w: %s", ErrBadValue, v.Type)
	}
}

// Skip passes over one value. It is only meaningful when decoding.
func (c *Codec) Skip() error {
	if c.dec == nil {
		return ErrReadOnly
	}
	return c.dec.skip()
}
