package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	Unknown Kind = iota
	Null
	True
	False
	String
	Number
	Comma
	Colon
	CurlyOpen
	CurlyClose
	SquareOpen
	SquareClose
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Null:
		return "Null"
	case True:
		return "True"
	case False:
		return "False"
	case String:
		return "String"
	case Number:
		return "Number"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case CurlyOpen:
		return "CurlyOpen"
	case CurlyClose:
		return "CurlyClose"
	case SquareOpen:
		return "SquareOpen"
	case SquareClose:
		return "SquareClose"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical unit. Bytes is a view into the lexer's window;
// for String tokens it excludes both quotes.
type Token struct {
	Kind  Kind
	Bytes []byte
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Bytes)
}

// Outcome is the result of a speculative match.
type Outcome int

const (
	// NotMatched means the input was well formed but did not match; the
	// lexer position is unchanged.
	NotMatched Outcome = iota
	// Matched means the token was consumed.
	Matched
	// Failed means scanning itself failed; the error is sticky.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotMatched:
		return "not-matched"
	case Matched:
		return "matched"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
