package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStreamNil(t *testing.T) {
	var s *Stream
	if s.CanRead() || s.CanWrite() {
		t.Error("nil stream should have no direction")
	}
	if n := s.Read(make([]byte, 4)); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStreamReadSingleTransfer(t *testing.T) {
	s := FromReader(strings.NewReader("abcdef"))
	if !s.CanRead() || s.CanWrite() {
		t.Fatal("expected read-only stream")
	}
	p := make([]byte, 4)
	if n := s.Read(p); n != 4 || string(p) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", p[:n])
	}
	if n := s.Read(p); n != 2 || string(p[:n]) != "ef" {
		t.Errorf("expected %q, got %q", "ef", p[:n])
	}
	if n := s.Read(p); n != 0 {
		t.Errorf("expected end of input, got %d", n)
	}
	if err := s.Err(); err != nil {
		t.Errorf("EOF should not be recorded: %v", err)
	}
}

type failingWriter struct{ max int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		return w.max, errors.New("disk full")
	}
	return len(p), nil
}

func TestStreamWriteShort(t *testing.T) {
	s := FromWriter(&failingWriter{max: 3})
	if n := s.Write([]byte("ab")); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
	if n := s.Write([]byte("abcd")); n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if s.Err() == nil {
		t.Error("expected recorded error")
	}
}

func TestStreamFuncs(t *testing.T) {
	src := []byte("xyz")
	var out bytes.Buffer
	s := Funcs(func(p []byte) int {
		n := copy(p, src)
		src = src[n:]
		return n
	}, func(p []byte) int {
		out.Write(p)
		return len(p)
	})
	p := make([]byte, 8)
	if n := s.Read(p); n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if n := s.Read(p); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	if n := s.Write([]byte("hello")); n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
	if out.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", out.String())
	}

	short := Funcs(nil, func(p []byte) int { return len(p) - 1 })
	if short.CanRead() {
		t.Error("expected write-only stream")
	}
	if n := short.Write([]byte("ab")); n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
	if short.Err() == nil {
		t.Error("expected short write error")
	}
}
