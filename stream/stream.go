package stream

import (
	"io"
)

// Stream pulls and pushes bytes for a lexer or writer. Either direction
// may be absent; a nil *Stream has neither.
type Stream struct {
	r   io.Reader
	w   io.Writer
	err error
}

// New creates a Stream over r and w. Either may be nil.
func New(r io.Reader, w io.Writer) *Stream {
	return &Stream{r: r, w: w}
}

// FromReader creates a read-only Stream.
func FromReader(r io.Reader) *Stream {
	return &Stream{r: r}
}

// FromWriter creates a write-only Stream.
func FromWriter(w io.Writer) *Stream {
	return &Stream{w: w}
}

// ReadFunc transfers at most len(p) bytes into p and returns the count.
// A count <= 0 signals end of input.
type ReadFunc func(p []byte) int

// WriteFunc transfers p and returns the count written. A count different
// from len(p) signals failure.
type WriteFunc func(p []byte) int

// Funcs creates a Stream from callbacks. Either may be nil.
func Funcs(read ReadFunc, write WriteFunc) *Stream {
	s := &Stream{}
	if read != nil {
		s.r = readFunc(read)
	}
	if write != nil {
		s.w = writeFunc(write)
	}
	return s
}

// CanRead reports whether s has a read direction.
func (s *Stream) CanRead() bool {
	return s != nil && s.r != nil
}

// CanWrite reports whether s has a write direction.
func (s *Stream) CanWrite() bool {
	return s != nil && s.w != nil
}

// Read performs a single transfer into p. It returns the number of bytes
// read; a result <= 0 means the input is exhausted (or failed, see Err).
func (s *Stream) Read(p []byte) int {
	if !s.CanRead() || len(p) == 0 {
		return 0
	}
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	if n < 0 {
		return 0
	}
	return n
}

// Write performs a single transfer of p and returns the number of bytes
// written. The caller treats any result other than len(p) as failure.
func (s *Stream) Write(p []byte) int {
	if !s.CanWrite() {
		return 0
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n
}

// Err returns the last error reported by the underlying reader or writer,
// excluding io.EOF.
func (s *Stream) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

type readFunc ReadFunc

func (f readFunc) Read(p []byte) (int, error) {
	n := f(p)
	if n <= 0 {
		return 0, io.EOF
	}
	return n, nil
}

type writeFunc WriteFunc

func (f writeFunc) Write(p []byte) (int, error) {
	n := f(p)
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
