package codec

import (
	"fmt"

	"github.com/signadot/ij/token"
)

// Transcode reads one value from src and writes it to dst without
// building a tree. src must be decoding and dst encoding. Numbers are
// rewritten in the encoder's fixed six-digit form.
func Transcode(dst, src *Codec) error {
	if dst.enc == nil || src.dec == nil {
		return fmt.Errorf("%w: transcode from %s to %s", ErrBadMode, src.mode, dst.mode)
	}
	d := src.dec
	if !d.separate() {
		return d.lex.Err()
	}
	if err := transcode(dst, d.lex); err != nil {
		return err
	}
	return dst.Err()
}

func transcode(dst *Codec, lex *token.Lexer) error {
	if !lex.Next() {
		return lex.Err()
	}
	tok := lex.Token()
	switch tok.Kind {
	case token.CurlyOpen:
		if err := dst.ObjectBegin(); err != nil {
			return err
		}
		for i := 0; ; i++ {
			if done, err := closing(lex, token.CurlyClose); done || err != nil {
				if err != nil {
					return err
				}
				dst.ObjectEnd()
				return dst.Err()
			}
			if i > 0 && !lex.Expect(token.Comma) {
				return lex.Err()
			}
			if !lex.Expect(token.String) {
				return lex.Err()
			}
			if !dst.Member(string(lex.Token().Bytes)) {
				return dst.Err()
			}
			if !lex.Expect(token.Colon) {
				return lex.Err()
			}
			if err := transcode(dst, lex); err != nil {
				return err
			}
		}
	case token.SquareOpen:
		if err := dst.ArrayBegin(); err != nil {
			return err
		}
		for i := 0; ; i++ {
			if done, err := closing(lex, token.SquareClose); done || err != nil {
				if err != nil {
					return err
				}
				dst.ArrayEnd(nil)
				return dst.Err()
			}
			if i > 0 && !lex.Expect(token.Comma) {
				return lex.Err()
			}
			if err := transcode(dst, lex); err != nil {
				return err
			}
		}
	case token.String:
		b := tok.Bytes
		return dst.Bytes(&b)
	case token.Number:
		f, ok := parseNumber(tok.Bytes)
		if !ok {
			lex.Fail(&token.Error{Err: token.ErrUnexpectedToken, Offset: lex.Offset(),
				Msg: fmt.Sprintf("bad number %q", tok.Bytes)})
			return lex.Err()
		}
		return dst.Number(&f)
	case token.True, token.False:
		b := tok.Kind == token.True
		return dst.Bool(&b)
	case token.Null:
		return dst.Null()
	default:
		lex.Fail(&token.Error{Err: token.ErrUnexpectedToken, Offset: lex.Offset(),
			Msg: fmt.Sprintf("expected value, got %s", tok.Kind)})
		return lex.Err()
	}
}

func closing(lex *token.Lexer, k token.Kind) (bool, error) {
	switch lex.Probe(k) {
	case token.Matched:
		return true, nil
	case token.Failed:
		return false, lex.Err()
	default:
		return false, nil
	}
}
