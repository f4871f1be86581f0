package debug

import (
	"os"
	"strconv"
)

const (
	LexerComponent  = "lexer"
	WriterComponent = "writer"
	CodecComponent  = "codec"
)

type debug struct {
	Lexer  bool
	Writer bool
	Codec  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lexer = boolEnv("IJ_DEBUG_LEXER")
	d.Writer = boolEnv("IJ_DEBUG_WRITER")
	d.Codec = boolEnv("IJ_DEBUG_CODEC")
	if boolEnv("IJ_DEBUG") {
		d.Lexer, d.Writer, d.Codec = true, true, true
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lexer() bool {
	return d.Lexer
}
func Writer() bool {
	return d.Writer
}
func Codec() bool {
	return d.Codec
}

// Enabled reports whether diagnostics are on for the named component.
func Enabled(component string) bool {
	switch component {
	case LexerComponent:
		return d.Lexer
	case WriterComponent:
		return d.Writer
	case CodecComponent:
		return d.Codec
	default:
		return false
	}
}
