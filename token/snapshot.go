package token

import "go.uber.org/zap"

// Snapshot is a saved lexer state. Snapshots nest: each must be released
// or restored, innermost first. Releasing or restoring an outer snapshot
// drops any inner ones still live.
type Snapshot struct {
	cur      int64
	kind     Kind
	tokStart int64
	tokEnd   int64
	err      error
	patches  int
	depth    int
}

// Snapshot saves the lexer state and pins the start of the next token, so
// that later refills keep every byte a Restore may need to rescan.
// Whitespace in front of the token is consumed first.
func (l *Lexer) Snapshot() Snapshot {
	l.skipSpace()
	s := Snapshot{
		cur:      l.abs(l.cur),
		kind:     l.kind,
		tokStart: l.tokStart,
		tokEnd:   l.tokEnd,
		err:      l.err,
		patches:  len(l.patches),
	}
	l.pins = append(l.pins, s.cur)
	s.depth = len(l.pins)
	return s
}

// Restore rewinds the lexer to s, including its error state. Closing
// quotes overwritten since s was taken are written back so the restored
// input scans the same way again.
func (l *Lexer) Restore(s Snapshot) {
	if s.patches < len(l.patches) {
		for _, p := range l.patches[s.patches:] {
			if r := p - l.base; r >= 0 && r < int64(l.end) {
				l.buf[r] = '"'
			}
		}
		l.patches = l.patches[:s.patches]
	}
	l.pop(s)
	if s.cur < l.base {
		l.fail(ErrBufFull, "snapshot at %d was discarded", s.cur)
		return
	}
	l.cur = int(s.cur - l.base)
	l.kind = s.kind
	l.tokStart = s.tokStart
	l.tokEnd = s.tokEnd
	l.err = s.err
}

// Release discards s, keeping the current state.
func (l *Lexer) Release(s Snapshot) {
	l.pop(s)
}

func (l *Lexer) pop(s Snapshot) {
	if s.depth > 0 && s.depth <= len(l.pins) {
		l.pins = l.pins[:s.depth-1]
	}
	if len(l.pins) == 0 {
		l.patches = l.patches[:0]
	}
}

// Probe scans one token and keeps it only if it has kind k. A mismatch
// leaves the lexer as it was.
func (l *Lexer) Probe(k Kind) Outcome {
	if l.err != nil {
		return Failed
	}
	s := l.Snapshot()
	if !l.Next() {
		l.Release(s)
		return Failed
	}
	if l.kind != k {
		l.Restore(s)
		return NotMatched
	}
	l.Release(s)
	return Matched
}

// NextIs is Probe reduced to a boolean.
func (l *Lexer) NextIs(k Kind) bool {
	return l.Probe(k) == Matched
}

// Expect is like NextIs but a mismatch registers a sticky
// ErrUnexpectedToken. The position is still rolled back.
func (l *Lexer) Expect(k Kind) bool {
	if l.err != nil {
		return false
	}
	s := l.Snapshot()
	if !l.Next() {
		l.Release(s)
		return false
	}
	if l.kind == k {
		l.Release(s)
		return true
	}
	got, at := l.kind, l.tokStart
	l.Restore(s)
	l.err = newErr(ErrUnexpectedToken, at, "expected %s, got %s", k, got)
	if ce := l.log.Check(zap.DebugLevel, "expect"); ce != nil {
		ce.Write(zap.Error(l.err))
	}
	return false
}

// ExpectString matches a string token equal to str. Any failure, including
// a scan error, is rolled back completely.
func (l *Lexer) ExpectString(str string) bool {
	s := l.Snapshot()
	if !l.Expect(String) || string(l.Token().Bytes) != str {
		l.Restore(s)
		return false
	}
	l.Release(s)
	return true
}
