package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the encoding applied between a Stream and the
// underlying file or connection.
type Compression int

const (
	NoCompression Compression = iota
	Gzip
	Zstd
	LZ4
)

var ErrBadCompression = errors.New("bad compression")

func ParseCompression(v string) (Compression, error) {
	c, ok := map[string]Compression{
		"":     NoCompression,
		"none": NoCompression,
		"gz":   Gzip,
		"gzip": Gzip,
		"zst":  Zstd,
		"zstd": Zstd,
		"lz4":  LZ4,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadCompression, v)
}

func (c Compression) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c Compression) MarshalText() ([]byte, error) {
	switch c {
	case NoCompression:
		return []byte("none"), nil
	case Gzip:
		return []byte("gzip"), nil
	case Zstd:
		return []byte("zstd"), nil
	case LZ4:
		return []byte("lz4"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a compression>", c)
	}
}

func (c *Compression) UnmarshalText(d []byte) error {
	pc, err := ParseCompression(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// Suffix returns the file extension for c (including the dot), or "" for
// NoCompression.
func (c Compression) Suffix() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// NewReader returns a reader that decompresses r according to c. Closing
// the result releases decoder resources but does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case NoCompression:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadCompression, c)
	}
}

// NewWriter returns a writer that compresses into w according to c. The
// result must be closed to flush trailing frames; closing does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case NoCompression:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadCompression, c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
