// Package textdiff computes line diffs between two encoded documents.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line. Each distinct line is mapped to a
// rune so the character differ works on whole lines.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLines(lineMap, runeMap, from)
	toRunes := mapLines(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			res = append(res, Line{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

func mapLines(m map[string]rune, im map[rune]string, text string) []rune {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// stay clear of surrogates, which do not survive the
				// differ's string round trip
				r += 0x800
			}
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

// Changed reports whether lines contains any insertion or deletion.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Write prints lines with a one-character op prefix, colouring
// insertions and deletions.
func Write(w io.Writer, lines []Line) error {
	for _, ln := range lines {
		text := ln.Op.Prefix() + ln.Text
		switch ln.Op {
		case Delete:
			text = color.RedString("%s", text)
		case Insert:
			text = color.GreenString("%s", text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
