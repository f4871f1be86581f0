package token

import (
	"github.com/signadot/ij/debug"
	"github.com/signadot/ij/stream"
	"go.uber.org/zap"
)

// Lexer scans a buffer window into tokens, one token of lookahead at a
// time. The window is buf[:end]; bytes before the window start that have
// been shifted out are gone, and base records their count so offsets
// stay absolute across refills.
type Lexer struct {
	buf  []byte
	end  int
	cur  int
	base int64
	s    *stream.Stream

	kind     Kind
	tokStart int64
	tokEnd   int64
	err      error

	// pins are the absolute resume offsets of live snapshots; refills
	// never discard bytes at or after the lowest pin.
	pins []int64
	// patches are the absolute offsets of closing quotes overwritten
	// while a snapshot was live.
	patches []int64

	log *zap.Logger
}

type LexerOption func(*Lexer)

// LexerLogger sets the diagnostic logger.
func LexerLogger(log *zap.Logger) LexerOption {
	return func(l *Lexer) { l.log = log }
}

// NewLexer creates a Lexer over buf[:n]. The whole of buf is available for
// refills from s, which may be nil.
func NewLexer(buf []byte, n int, s *stream.Stream, opts ...LexerOption) *Lexer {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	l := &Lexer{buf: buf, end: n, s: s}
	for _, o := range opts {
		o(l)
	}
	if l.log == nil {
		l.log = debug.Logger(debug.LexerComponent)
	}
	return l
}

func (l *Lexer) abs(i int) int64 {
	return l.base + int64(i)
}

// Next scans the next token. It returns false when scanning fails; the
// failure is then available from Err and every later call fails the same
// way.
func (l *Lexer) Next() bool {
	if l.err != nil {
		return false
	}
	l.kind = Unknown
	for {
		l.tokStart = l.abs(l.cur)
		l.tokEnd = l.tokStart
		if l.cur >= l.end || l.buf[l.cur] == 0 {
			if !l.s.CanRead() {
				return l.fail(ErrEndOfInput, "")
			}
			l.end = l.cur
			if !l.refill() {
				return false
			}
			continue
		}
		if c := l.buf[l.cur]; c == ' ' || c == '\n' {
			l.cur++
			continue
		}
		break
	}

	switch c := l.buf[l.cur]; {
	case c == '"':
		l.kind = String
		if !l.advance() {
			return false
		}
		for l.buf[l.cur] != '"' {
			if !l.advance() {
				return false
			}
		}
		l.buf[l.cur] = 0
		if len(l.pins) > 0 {
			l.patches = append(l.patches, l.abs(l.cur))
		}
		l.cur++
	case isDigit(c) || c == '-' || c == '+':
		l.kind = Number
		if !l.advance() {
			return false
		}
		if !l.digits() {
			return false
		}
		if l.buf[l.cur] == '.' {
			if !l.advance() {
				return false
			}
			if !l.digits() {
				return false
			}
		}
	case isLetter(c):
		for isLetter(l.buf[l.cur]) {
			if !l.advance() {
				return false
			}
		}
		l.kind = keyword(l.buf[int(l.tokStart-l.base):l.cur])
	default:
		k, ok := punct(c)
		if !ok {
			return l.fail(ErrUnexpectedToken, "unexpected byte %q", c)
		}
		l.kind = k
		l.cur++
	}
	l.tokEnd = l.abs(l.cur)
	if ce := l.log.Check(zap.DebugLevel, "token"); ce != nil {
		ce.Write(zap.Stringer("kind", l.kind), zap.Int64("offset", l.tokStart),
			debug.Quote(l.Token().Bytes, 32))
	}
	return true
}

func (l *Lexer) digits() bool {
	for isDigit(l.buf[l.cur]) {
		if !l.advance() {
			return false
		}
	}
	return true
}

// advance moves past the current byte, refilling when the window is
// exhausted mid-token. On success buf[cur] is readable.
func (l *Lexer) advance() bool {
	l.cur++
	if l.cur < l.end {
		return true
	}
	if !l.s.CanRead() {
		return l.fail(ErrEndOfInput, "input ends inside %s", l.kind)
	}
	return l.refill()
}

// refill shifts the live region (the in-progress token, or the lowest
// pinned snapshot if earlier) to the start of buf and reads from the
// stream into the remainder.
func (l *Lexer) refill() bool {
	keep := int(l.tokStart - l.base)
	for _, p := range l.pins {
		if r := int(p - l.base); r < keep {
			keep = r
		}
	}
	if keep < 0 {
		keep = 0
	}
	if keep > 0 {
		copy(l.buf, l.buf[keep:l.end])
		l.base += int64(keep)
		l.cur -= keep
		l.end -= keep
	}
	if l.end >= len(l.buf) {
		if len(l.pins) > 0 && l.lowestPin() < l.tokStart {
			return l.fail(ErrBufFull, "%d bytes pinned by a snapshot at offset %d fill the %d byte buffer",
				l.end, l.lowestPin(), len(l.buf))
		}
		return l.fail(ErrBufFull, "token does not fit in %d bytes", len(l.buf))
	}
	n := l.s.Read(l.buf[l.end:])
	if n <= 0 {
		if err := l.s.Err(); err != nil {
			return l.fail(ErrEndOfInput, "%v", err)
		}
		return l.fail(ErrEndOfInput, "")
	}
	if ce := l.log.Check(zap.DebugLevel, "refill"); ce != nil {
		ce.Write(zap.Int64("base", l.base), zap.Int("kept", l.end), zap.Int("read", n))
	}
	l.end += n
	return true
}

func (l *Lexer) lowestPin() int64 {
	low := l.pins[0]
	for _, p := range l.pins[1:] {
		low = min(low, p)
	}
	return low
}

// skipSpace moves past whitespace before the next token. While no snapshot
// is live it refills as needed, so a snapshot taken next pins the token
// rather than the whitespace in front of it. Running out of input here is
// not an error; the next scan reports it.
func (l *Lexer) skipSpace() {
	for l.err == nil {
		for l.cur < l.end && (l.buf[l.cur] == ' ' || l.buf[l.cur] == '\n') {
			l.cur++
		}
		if l.cur < l.end && l.buf[l.cur] != 0 {
			return
		}
		if len(l.pins) > 0 || !l.s.CanRead() {
			return
		}
		l.end = l.cur
		start := l.tokStart
		l.tokStart = l.abs(l.cur)
		ok := l.refill()
		l.tokStart = start
		if !ok {
			l.err = nil
			return
		}
	}
}

func (l *Lexer) fail(err error, format string, args ...any) bool {
	e := newErr(err, l.abs(l.cur), format, args...)
	l.err = e
	if ce := l.log.Check(zap.DebugLevel, "fail"); ce != nil {
		ce.Write(zap.Error(e))
	}
	return false
}

// Fail registers err as the sticky error unless one is already set.
func (l *Lexer) Fail(err error) {
	if l.err != nil || err == nil {
		return
	}
	if _, ok := err.(*Error); !ok {
		err = &Error{Err: err, Offset: l.abs(l.cur)}
	}
	l.err = err
}

// Err returns the sticky error, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Token returns the current token. Its bytes are nil if a refill has
// discarded them.
func (l *Lexer) Token() Token {
	start, end := l.tokStart, l.tokEnd
	if l.kind == String && end-start >= 2 {
		start, end = start+1, end-1
	}
	if start < l.base || end > l.abs(l.end) || start > end {
		return Token{Kind: l.kind}
	}
	return Token{Kind: l.kind, Bytes: l.buf[start-l.base : end-l.base]}
}

// Span returns the absolute offsets of the current token's raw text,
// quotes included.
func (l *Lexer) Span() (start, end int64) {
	return l.tokStart, l.tokEnd
}

// Offset returns the absolute offset of the scan position.
func (l *Lexer) Offset() int64 {
	return l.abs(l.cur)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func keyword(d []byte) Kind {
	switch string(d) {
	case "null":
		return Null
	case "true":
		return True
	case "false":
		return False
	default:
		return Unknown
	}
}

func punct(c byte) (Kind, bool) {
	switch c {
	case ',':
		return Comma, true
	case ':':
		return Colon, true
	case '{':
		return CurlyOpen, true
	case '}':
		return CurlyClose, true
	case '[':
		return SquareOpen, true
	case ']':
		return SquareClose, true
	default:
		return Unknown, false
	}
}
