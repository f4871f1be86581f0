package codec

import "github.com/signadot/ij/token"

// skip passes over the next value, including its leading comma.
func (d *decoder) skip() error {
	if !d.separate() {
		return d.lex.Err()
	}
	d.skipValue()
	return d.lex.Err()
}

// skipValue consumes one value, descending through nested containers by
// counting brackets. Members and commas inside are not checked.
func (d *decoder) skipValue() {
	if !d.lex.Next() {
		return
	}
	depth := 0
	for {
		switch d.lex.Token().Kind {
		case token.CurlyOpen, token.SquareOpen:
			depth++
		case token.CurlyClose, token.SquareClose:
			depth--
		case token.Comma, token.Colon:
			if depth == 0 {
				d.unexpected("expected value, got %s", d.lex.Token().Kind)
				return
			}
		}
		if depth <= 0 {
			if depth < 0 {
				d.unexpected("unbalanced %s", d.lex.Token().Kind)
			}
			return
		}
		if !d.lex.Next() {
			return
		}
	}
}
