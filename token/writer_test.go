package token

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/ij/stream"
)

func TestWriterBufFull(t *testing.T) {
	w := NewWriter(make([]byte, 2), nil)
	err := w.Append("null")
	if !errors.Is(err, ErrBufFull) {
		t.Fatalf("expected buffer full, got %v", err)
	}
	if string(w.Bytes()) != "nu" {
		t.Errorf("expected partial %q, got %q", "nu", w.Bytes())
	}
	if err := w.Put('x'); !errors.Is(err, ErrBufFull) {
		t.Errorf("expected sticky error, got %v", err)
	}
	if err := w.Newline(); !errors.Is(err, ErrBufFull) {
		t.Errorf("expected sticky error, got %v", err)
	}
}

func TestWriterFlushes(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(make([]byte, 6), stream.FromWriter(&out))
	text := `{"str1","str2","str3"}`
	if err := w.Append(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Offset() != int64(len(text)) {
		t.Errorf("expected offset %d, got %d", len(text), w.Offset())
	}
	if err := w.Terminate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != text {
		t.Errorf("expected %q, got %q", text, out.String())
	}
	if w.Len() != 0 {
		t.Errorf("expected empty buffer after final flush, got %d", w.Len())
	}
}

func TestWriterShortWrite(t *testing.T) {
	s := stream.Funcs(nil, func(p []byte) int { return len(p) - 1 })
	w := NewWriter(make([]byte, 4), s)
	err := w.Append("abcdef")
	if !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if Code(w.Err()) != "WRITE_FAILURE" {
		t.Errorf("expected WRITE_FAILURE, got %s", Code(w.Err()))
	}
}

func TestWriterFlushNeedsStream(t *testing.T) {
	w := NewWriter(make([]byte, 4), nil)
	if err := w.Flush(); !errors.Is(err, ErrWriteFailure) {
		t.Errorf("expected write failure, got %v", err)
	}
}

func TestWriterAppendf(t *testing.T) {
	w := NewWriter(make([]byte, 64), nil)
	if err := w.Appendf("%f", 123.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(w.Bytes()) != "123.100000" {
		t.Errorf("expected %q, got %q", "123.100000", w.Bytes())
	}

	w = NewWriter(make([]byte, 64), nil, Scratch(8))
	if err := w.Appendf("%f", 1.0); !errors.Is(err, ErrFormatTooLarge) {
		t.Errorf("expected format too large, got %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("expected nothing written, got %q", w.Bytes())
	}
}

func TestWriterPretty(t *testing.T) {
	w := NewWriter(make([]byte, 64), nil, Pretty(true), IndentWidth(4))
	w.Put('[')
	w.Indent()
	w.Newline()
	w.Append("1")
	w.Dedent()
	w.Newline()
	w.Put(']')
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[\n    1\n]"
	if string(w.Bytes()) != want {
		t.Errorf("expected %q, got %q", want, w.Bytes())
	}

	w = NewWriter(make([]byte, 64), nil)
	w.Indent()
	w.Newline()
	if w.Len() != 0 {
		t.Errorf("expected no output without pretty, got %q", w.Bytes())
	}
}

func TestWriterTerminate(t *testing.T) {
	buf := make([]byte, 5)
	for i := range buf {
		buf[i] = 'x'
	}
	w := NewWriter(buf, nil)
	w.Append("true")
	if err := w.Terminate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[4] != 0 || string(w.Bytes()) != "true" {
		t.Errorf("expected terminated %q, got %q", "true", buf)
	}

	w = NewWriter(make([]byte, 4), nil)
	w.Append("true")
	if err := w.Terminate(); !errors.Is(err, ErrBufFull) {
		t.Errorf("expected buffer full, got %v", err)
	}
}
