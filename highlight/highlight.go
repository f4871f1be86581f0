// Package highlight renders encoded text with terminal colours chosen by
// token kind.
package highlight

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/ij/token"
)

// Role refines a token kind by position: a string before a colon is a
// member name rather than a value.
type Role int

const (
	ValueRole Role = iota
	FieldRole
	SepRole
)

type Colorable struct {
	Kind token.Kind
	Role Role
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	sep := color.RGB(255, 0, 196).SprintfFunc()
	for _, k := range []token.Kind{token.Comma, token.Colon} {
		colors.Map[Colorable{Kind: k, Role: SepRole}] = sep
	}
	brace := color.RGB(196, 128, 128).SprintfFunc()
	for _, k := range []token.Kind{token.CurlyOpen, token.CurlyClose, token.SquareOpen, token.SquareClose} {
		colors.Map[Colorable{Kind: k, Role: SepRole}] = brace
	}
	colors.Map[Colorable{Kind: token.Number}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: token.Null}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: token.True}] = color.CyanString
	colors.Map[Colorable{Kind: token.False}] = color.CyanString
	colors.Map[Colorable{Kind: token.String}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: token.String, Role: FieldRole}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: token.Unknown}] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k token.Kind, r Role, s string) string {
	return c.Get(k, r)(s)
}

func (c *Colors) Get(k token.Kind, r Role) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Role: r}]
	if f == nil {
		return c.Default
	}
	return f
}

type span struct {
	kind       token.Kind
	start, end int
}

// Write copies src to w with every token coloured. Text between tokens
// is written unchanged, and so is any tail the lexer cannot scan.
func Write(w io.Writer, src []byte, c *Colors) error {
	buf := make([]byte, len(src)+1)
	copy(buf, src)
	lex := token.NewLexer(buf, len(buf), nil)
	var spans []span
	for lex.Next() {
		start, end := lex.Span()
		spans = append(spans, span{lex.Token().Kind, int(start), int(end)})
	}

	var sb strings.Builder
	pos := 0
	for i, sp := range spans {
		sb.Write(src[pos:sp.start])
		role := ValueRole
		switch sp.kind {
		case token.String:
			if i+1 < len(spans) && spans[i+1].kind == token.Colon {
				role = FieldRole
			}
		case token.Comma, token.Colon, token.CurlyOpen, token.CurlyClose,
			token.SquareOpen, token.SquareClose:
			role = SepRole
		}
		sb.WriteString(c.Color(sp.kind, role, string(src[sp.start:sp.end])))
		pos = sp.end
	}
	sb.Write(src[pos:])
	_, err := io.WriteString(w, sb.String())
	return err
}
