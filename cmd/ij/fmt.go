package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	out, err := cfg.output(cc.Out)
	if err != nil {
		return err
	}
	defer out.Close()
	for _, file := range args {
		if err := fmtFile(cfg.MainConfig, out, file); err != nil {
			return err
		}
	}
	return out.Close()
}

func fmtFile(cfg *MainConfig, out *output, file string) error {
	in, err := cfg.open(file)
	if err != nil {
		return err
	}
	defer in.Close()
	if _, err := transcodeInput(cfg, out, in, nil, false); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
