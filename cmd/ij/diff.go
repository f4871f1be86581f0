package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ij/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := canonical(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := canonical(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	lines := textdiff.Lines(a, b)
	if !textdiff.Changed(lines) {
		return nil
	}
	if err := textdiff.Write(cc.Out, lines); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

type bufCloser struct {
	*bytes.Buffer
}

func (bufCloser) Close() error { return nil }

// canonical returns the indented encoding of file, so that documents
// differing only in layout or number spelling compare equal.
func canonical(cfg *MainConfig, file string) (string, error) {
	in, err := cfg.open(file)
	if err != nil {
		return "", err
	}
	defer in.Close()
	buf := &bytes.Buffer{}
	if _, err := transcodeInput(cfg, &output{w: bufCloser{buf}}, in, nil, true); err != nil {
		return "", err
	}
	return buf.String(), nil
}
