package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrBufFull         = errors.New("buffer full")
	ErrWriteFailure    = errors.New("write failure")
	ErrFormatTooLarge  = errors.New("formatted text exceeds scratch")
	ErrEndOfInput      = errors.New("end of input")
	ErrMoreElements    = errors.New("more elements available")
	ErrNoBuffer        = errors.New("no buffer")
	ErrNoInput         = errors.New("no input method")
	ErrCopyRequired    = errors.New("copy required")
)

// Error is a codec error located at an absolute stream offset.
type Error struct {
	Err    error
	Offset int64
	Msg    string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Offset, e.Msg)
}

func newErr(err error, off int64, format string, args ...any) *Error {
	e := &Error{Err: err, Offset: off}
	if format != "" {
		e.Msg = fmt.Sprintf(format, args...)
	}
	return e
}

var codes = []struct {
	err  error
	code string
}{
	{ErrUnexpectedToken, "UNEXPECTED_TOKEN"},
	{ErrBufFull, "BUF_FULL"},
	{ErrWriteFailure, "WRITE_FAILURE"},
	{ErrFormatTooLarge, "APPENDF_BUF_TOO_SMALL"},
	{ErrEndOfInput, "END_OF_INPUT"},
	{ErrMoreElements, "MORE_ELEMENTS_AVAILABLE"},
	{ErrNoBuffer, "ARG_NO_BUF"},
	{ErrNoInput, "ARG_NO_INPUT_METHOD"},
	{ErrCopyRequired, "ARG_COPY_REQUIRED"},
}

// Code maps err to its short taxonomy name: "OK" for nil, "OTHER" for
// errors outside the taxonomy.
func Code(err error) string {
	if err == nil {
		return "OK"
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "OTHER"
}
