package codec

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ij/stream"
	"github.com/signadot/ij/token"
)

func decodeFrom(t *testing.T, in string, opts ...Option) *Codec {
	t.Helper()
	buf := make([]byte, 1024)
	copy(buf, in)
	c, err := NewDecoder(buf, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestDecodeScalars(t *testing.T) {
	if err := decodeFrom(t, "null").Null(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for in, want := range map[string]bool{"true": true, "false": false} {
		var b bool
		if err := decodeFrom(t, in).Bool(&b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b != want {
			t.Errorf("expected %v, got %v", want, b)
		}
	}
	var f float64
	if err := decodeFrom(t, "123.1").Number(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 123.1 {
		t.Errorf("expected 123.1, got %v", f)
	}
	var s string
	if err := decodeFrom(t, `"test"`).String(&s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "test" {
		t.Errorf("expected %q, got %q", "test", s)
	}
}

func TestDecodeBoolMismatch(t *testing.T) {
	var b bool
	c := decodeFrom(t, "null")
	if err := c.Bool(&b); !errors.Is(err, token.ErrUnexpectedToken) {
		t.Errorf("expected unexpected token, got %v", err)
	}
}

func TestDecodeEmptyContainers(t *testing.T) {
	c := decodeFrom(t, "[]")
	if err := c.ArrayBegin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.ArrayEnd(nil) {
		t.Error("expected array closed")
	}

	c = decodeFrom(t, "{}")
	if err := c.ObjectBegin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := 0
	for {
		n++
		if c.Member("a") {
			t.Error("unexpected member")
		}
		if c.ObjectEnd() {
			break
		}
	}
	if n != 1 || c.Err() != nil {
		t.Errorf("expected one pass without error, got %d passes, err %v", n, c.Err())
	}

	c = decodeFrom(t, "[]")
	c.ArrayBegin()
	for c.ArrayNext(nil) {
		t.Error("expected no elements")
	}
	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
}

func TestDecodeObjectStatic(t *testing.T) {
	c := decodeFrom(t, `{"1":1,"2":2}`)
	var v1, v2 float64
	c.ObjectBegin()
	if !c.Member("1") {
		t.Fatalf("expected member 1, err %v", c.Err())
	}
	c.Number(&v1)
	if !c.Member("2") {
		t.Fatalf("expected member 2, err %v", c.Err())
	}
	c.Number(&v2)
	if !c.ObjectEnd() {
		t.Error("expected object closed")
	}
	if v1 != 1 || v2 != 2 || c.Err() != nil {
		t.Errorf("expected 1, 2, got %v, %v, err %v", v1, v2, c.Err())
	}
}

func TestDecodeObjectDynamic(t *testing.T) {
	for _, in := range []string{`{"1":1,"2":2}`, `{"2":2,"1":1}`, "{\n  \"1\": 1,\n  \"2\": 2\n}"} {
		c := decodeFrom(t, in)
		var v1, v2 float64
		c.ObjectBegin()
		for {
			if c.Member("1") {
				c.Number(&v1)
			}
			if c.Member("2") {
				c.Number(&v2)
			}
			if c.ObjectEnd() {
				break
			}
		}
		if v1 != 1 || v2 != 2 || c.Err() != nil {
			t.Errorf("%q: expected 1, 2, got %v, %v, err %v", in, v1, v2, c.Err())
		}
	}
}

func TestDecodeUnhandledMembers(t *testing.T) {
	c := decodeFrom(t, `{"1":1,"2":2,"3":3}`)
	var v2 float64
	passes := 0
	c.ObjectBegin()
	for {
		if c.Member("2") {
			if err := c.Number(&v2); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		passes++
		if c.ObjectEnd() {
			break
		}
	}
	if v2 != 2 {
		t.Errorf("expected 2, got %v", v2)
	}
	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
	if passes != 4 {
		t.Errorf("expected 4 passes, got %d", passes)
	}
}

func TestDecodeMoreElementsStatus(t *testing.T) {
	c := decodeFrom(t, `{"a":1,"b":2}`)
	c.ObjectBegin()
	if !c.Member("a") {
		t.Fatalf("expected member a, err %v", c.Err())
	}
	c.Number(nil)
	if c.ObjectEnd() {
		t.Fatal("expected object to continue")
	}
	if !errors.Is(c.Status(), token.ErrMoreElements) {
		t.Errorf("expected more elements, got %v", c.Status())
	}
	if c.Err() != nil {
		t.Errorf("status must not be sticky, got %v", c.Err())
	}
	if !c.Member("b") {
		t.Fatalf("expected member b, err %v", c.Err())
	}
	c.Number(nil)
	if !c.ObjectEnd() || c.Status() != nil {
		t.Errorf("expected close with no status, got %v", c.Status())
	}
}

func TestDecodeSkipsNestedValues(t *testing.T) {
	in := `{"skip":{"x":[1,{"y":2}],"z":"w"},"more":[[],[{}]],"keep":true}`
	c := decodeFrom(t, in)
	var keep bool
	c.ObjectBegin()
	for {
		if c.Member("keep") {
			c.Bool(&keep)
		}
		if c.ObjectEnd() {
			break
		}
	}
	if !keep || c.Err() != nil {
		t.Errorf("expected keep=true, got %v, err %v", keep, c.Err())
	}
}

func TestDecodeShallowSkip(t *testing.T) {
	c := decodeFrom(t, `{"a":1,"b":true}`, WithShallowSkip())
	var b bool
	c.ObjectBegin()
	for {
		if c.Member("b") {
			c.Bool(&b)
		}
		if c.ObjectEnd() {
			break
		}
	}
	if !b || c.Err() != nil {
		t.Errorf("expected b=true, got %v, err %v", b, c.Err())
	}
}

func TestDecodeObjectEndMalformed(t *testing.T) {
	c := decodeFrom(t, `{"a" 1}`)
	c.ObjectBegin()
	if c.Member("z") {
		t.Fatal("unexpected member")
	}
	if !c.ObjectEnd() {
		t.Fatal("expected object end to give up")
	}
	if !errors.Is(c.Err(), token.ErrUnexpectedToken) {
		t.Errorf("expected unexpected token, got %v", c.Err())
	}
}

func TestProbeMember(t *testing.T) {
	c := decodeFrom(t, `{"a":1}`)
	c.ObjectBegin()
	if got := c.ProbeMember("b"); got != token.NotMatched {
		t.Errorf("expected not-matched, got %v", got)
	}
	if got := c.ProbeMember("a"); got != token.Matched {
		t.Errorf("expected matched, got %v", got)
	}

	c = decodeFrom(t, `{`)
	c.ObjectBegin()
	if got := c.ProbeMember("a"); got != token.Failed {
		t.Errorf("expected failed, got %v", got)
	}
	if !errors.Is(c.Err(), token.ErrEndOfInput) {
		t.Errorf("expected end of input, got %v", c.Err())
	}
}

func TestDecodeArrays(t *testing.T) {
	c := decodeFrom(t, "[1,2,3]")
	var got []float64
	cur := NewCursor(0)
	c.ArrayBegin()
	for {
		var f float64
		if err := c.Number(&f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, f)
		if c.ArrayEnd(cur) {
			break
		}
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if cur.Count() != 2 {
		t.Errorf("expected count 2, got %d", cur.Count())
	}

	c = decodeFrom(t, `[[1],[],[2,3]]`)
	var nested [][]float64
	outer := NewCursor(0)
	c.ArrayBegin()
	for c.ArrayNext(outer) {
		var row []float64
		c.ArrayBegin()
		for c.ArrayNext(nil) {
			var f float64
			c.Number(&f)
			row = append(row, f)
		}
		nested = append(nested, row)
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	want := [][]float64{{1}, nil, {2, 3}}
	if diff := cmp.Diff(want, nested); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if outer.Count() != 3 {
		t.Errorf("expected 3 elements, got %d", outer.Count())
	}
}

func TestDecodeEndOfInput(t *testing.T) {
	buf := make([]byte, 1024)
	copy(buf, "1.")
	c, err := NewDecoder(buf, WithLength(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Number(nil); !errors.Is(err, token.ErrEndOfInput) {
		t.Errorf("expected end of input, got %v", err)
	}

	if err := decodeFrom(t, `"test`).String(nil); !errors.Is(err, token.ErrEndOfInput) {
		t.Errorf("expected end of input, got %v", err)
	}

	c = decodeFrom(t, "[")
	c.ArrayBegin()
	if !c.ArrayEnd(nil) {
		t.Error("expected array end on error")
	}
	if token.Code(c.Err()) != "END_OF_INPUT" {
		t.Errorf("expected END_OF_INPUT, got %v", c.Err())
	}

	c = decodeFrom(t, "{")
	c.ObjectBegin()
	if !c.ObjectEnd() {
		t.Error("expected object end on error")
	}
	if token.Code(c.Err()) != "END_OF_INPUT" {
		t.Errorf("expected END_OF_INPUT, got %v", c.Err())
	}
}

func streamDecoder(t *testing.T, in string, size int, opts ...Option) *Codec {
	t.Helper()
	opts = append(opts, WithStream(stream.FromReader(strings.NewReader(in))), WithLength(0))
	c, err := NewDecoder(make([]byte, size), opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestDecodeStreamViewsAreOverwritten(t *testing.T) {
	c := streamDecoder(t, `["str1","str2","str3"]`, 8)
	var s1, s2, s3 []byte
	c.ArrayBegin()
	for _, p := range []*[]byte{&s1, &s2, &s3} {
		if err := c.Bytes(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !c.ArrayEnd(nil) {
		t.Fatalf("expected array closed, err %v", c.Err())
	}
	if string(s1) == "str1" || string(s2) == "str2" {
		t.Errorf("expected earlier views overwritten, got %q %q", s1, s2)
	}
	if string(s3) != "str3" {
		t.Errorf("expected %q, got %q", "str3", s3)
	}
}

func TestDecodeStreamCopies(t *testing.T) {
	c := streamDecoder(t, `["str1","str2","str3"]`, 8)
	var got []string
	c.ArrayBegin()
	for c.ArrayNext(nil) {
		var s string
		if err := c.String(&s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, s)
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	if diff := cmp.Diff([]string{"str1", "str2", "str3"}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeStreamObjectProbes(t *testing.T) {
	in := `{"alpha":1,"skip":[1,2,3,4,5,6],"beta":"b"}`
	c := streamDecoder(t, in, 16)
	var alpha float64
	var beta string
	c.ObjectBegin()
	for {
		if c.Member("alpha") {
			c.Number(&alpha)
		}
		if c.Member("beta") {
			c.String(&beta)
		}
		if c.ObjectEnd() {
			break
		}
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	if alpha != 1 || beta != "b" {
		t.Errorf("expected 1 and %q, got %v and %q", "b", alpha, beta)
	}
}

func TestDecodeZeroCopy(t *testing.T) {
	c := decodeFrom(t, `["a","b"]`, WithZeroCopy())
	c.ArrayBegin()
	var b []byte
	if err := c.Bytes(&b); err != nil || string(b) != "a" {
		t.Fatalf("expected %q, got %q, err %v", "a", b, err)
	}
	var s string
	if err := c.String(&s); !errors.Is(err, token.ErrCopyRequired) {
		t.Errorf("expected copy required, got %v", err)
	}
}

func TestDecodeNumberOutOfRange(t *testing.T) {
	digits := strings.Repeat("9", 400)
	tests := []struct {
		in   string
		want float64
	}{
		{digits, math.Inf(1)},
		{"-" + digits, math.Inf(-1)},
	}
	for _, tt := range tests {
		var f float64
		if err := decodeFrom(t, tt.in).Number(&f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != tt.want {
			t.Errorf("expected %v, got %v", tt.want, f)
		}
	}
	if err := decodeFrom(t, "-,").Number(nil); !errors.Is(err, token.ErrUnexpectedToken) {
		t.Errorf("expected unexpected token, got %v", err)
	}
}

func TestMemberMismatchConsumesComma(t *testing.T) {
	c := decodeFrom(t, `{"a":1,"b":2}`)
	var a, b float64
	c.ObjectBegin()
	if !c.Member("a") {
		t.Fatalf("expected member a, err %v", c.Err())
	}
	c.Number(&a)
	if c.Member("x") {
		t.Fatal("expected mismatch")
	}
	if off := c.dec.lex.Offset(); off != int64(len(`{"a":1,`)) {
		t.Errorf("expected comma consumed, offset %d", off)
	}
	if !c.Member("b") {
		t.Fatalf("expected member b, err %v", c.Err())
	}
	c.Number(&b)
	if !c.ObjectEnd() || c.Err() != nil {
		t.Fatalf("expected object closed, err %v", c.Err())
	}
	if a != 1 || b != 2 {
		t.Errorf("expected 1 and 2, got %v and %v", a, b)
	}
}

func TestDecodeStreamIndentedInput(t *testing.T) {
	pad := strings.Repeat(" ", 20)
	c := streamDecoder(t, "["+pad+"1,\n"+pad+"2\n]", 8)
	var got []float64
	c.ArrayBegin()
	for c.ArrayNext(nil) {
		var f float64
		if err := c.Number(&f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, f)
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	if diff := cmp.Diff([]float64{1, 2}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
