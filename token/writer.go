package token

import (
	"fmt"

	"github.com/signadot/ij/debug"
	"github.com/signadot/ij/stream"
	"go.uber.org/zap"
)

const (
	DefaultIndentWidth = 2
	DefaultScratch     = 1024
)

// Writer accumulates text in a fixed buffer. When the buffer fills and a
// writable stream is attached, the buffer is flushed and reused;
// otherwise the write fails with ErrBufFull.
type Writer struct {
	buf  []byte
	cur  int
	base int64
	s    *stream.Stream

	pretty  bool
	width   int
	indent  int
	scratch []byte
	limit   int

	err error
	log *zap.Logger
}

type WriterOption func(*Writer)

// Pretty turns newlines and indentation on or off.
func Pretty(v bool) WriterOption {
	return func(w *Writer) { w.pretty = v }
}

// IndentWidth sets the number of spaces per nesting level.
func IndentWidth(n int) WriterOption {
	return func(w *Writer) {
		if n >= 0 {
			w.width = n
		}
	}
}

// Scratch bounds the rendered size of a single Appendf, terminator
// included.
func Scratch(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.limit = n
		}
	}
}

func WriterLogger(log *zap.Logger) WriterOption {
	return func(w *Writer) { w.log = log }
}

func NewWriter(buf []byte, s *stream.Stream, opts ...WriterOption) *Writer {
	w := &Writer{buf: buf, s: s, width: DefaultIndentWidth, limit: DefaultScratch}
	for _, o := range opts {
		o(w)
	}
	if w.log == nil {
		w.log = debug.Logger(debug.WriterComponent)
	}
	return w
}

func (w *Writer) fail(err error, format string, args ...any) error {
	e := newErr(err, w.Offset(), format, args...)
	w.err = e
	if ce := w.log.Check(zap.DebugLevel, "fail"); ce != nil {
		ce.Write(zap.Error(e))
	}
	return e
}

// Put appends one byte.
func (w *Writer) Put(c byte) error {
	if w.err != nil {
		return w.err
	}
	if w.cur >= len(w.buf) {
		if !w.s.CanWrite() {
			return w.fail(ErrBufFull, "%d byte buffer", len(w.buf))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if len(w.buf) == 0 {
			return w.fail(ErrBufFull, "empty buffer")
		}
	}
	w.buf[w.cur] = c
	w.cur++
	return nil
}

// Append appends text one byte at a time. A failure part way leaves the
// bytes already written in place.
func (w *Writer) Append(text string) error {
	for i := 0; i < len(text); i++ {
		if err := w.Put(text[i]); err != nil {
			return err
		}
	}
	return w.err
}

func (w *Writer) appendBytes(d []byte) error {
	for _, c := range d {
		if err := w.Put(c); err != nil {
			return err
		}
	}
	return w.err
}

// Appendf renders format into the scratch area and appends the result.
// Rendered text that would not fit in the scratch area with a terminator
// fails with ErrFormatTooLarge, however much room the buffer has.
func (w *Writer) Appendf(format string, args ...any) error {
	if w.err != nil {
		return w.err
	}
	w.scratch = fmt.Appendf(w.scratch[:0], format, args...)
	if n := len(w.scratch) + 1; n > w.limit {
		return w.fail(ErrFormatTooLarge, "%d bytes rendered, scratch holds %d", n, w.limit)
	}
	return w.appendBytes(w.scratch)
}

func (w *Writer) Indent() {
	w.indent += w.width
}

func (w *Writer) Dedent() {
	w.indent -= w.width
	if w.indent < 0 {
		w.indent = 0
	}
}

// Newline starts a new indented line. It does nothing unless pretty
// printing is on.
func (w *Writer) Newline() error {
	if !w.pretty || w.err != nil {
		return w.err
	}
	if err := w.Put('\n'); err != nil {
		return err
	}
	for i := 0; i < w.indent; i++ {
		if err := w.Put(' '); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the buffered bytes to the stream and empties the buffer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if !w.s.CanWrite() {
		return w.fail(ErrWriteFailure, "no stream to flush to")
	}
	n := w.s.Write(w.buf[:w.cur])
	if n != w.cur {
		if err := w.s.Err(); err != nil {
			return w.fail(ErrWriteFailure, "wrote %d of %d bytes: %v", n, w.cur, err)
		}
		return w.fail(ErrWriteFailure, "wrote %d of %d bytes", n, w.cur)
	}
	if ce := w.log.Check(zap.DebugLevel, "flush"); ce != nil {
		ce.Write(zap.Int64("offset", w.base), zap.Int("bytes", n))
	}
	w.base += int64(w.cur)
	w.cur = 0
	return nil
}

// Terminate ends the output. When streaming it flushes everything first.
// In either case a zero byte is stored after the text in the buffer; it
// is not part of Bytes and is never sent to the stream.
func (w *Writer) Terminate() error {
	if w.err != nil {
		return w.err
	}
	if w.s.CanWrite() {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	if w.cur >= len(w.buf) {
		return w.fail(ErrBufFull, "no room for terminator")
	}
	w.buf[w.cur] = 0
	return nil
}

// Bytes returns the buffered text not yet flushed.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.cur]
}

// Len returns the number of buffered bytes.
func (w *Writer) Len() int {
	return w.cur
}

// Offset returns the absolute output offset, flushed bytes included.
func (w *Writer) Offset() int64 {
	return w.base + int64(w.cur)
}

func (w *Writer) Err() error {
	return w.err
}

// IsPretty reports whether pretty printing is on.
func (w *Writer) IsPretty() bool {
	return w.pretty
}
