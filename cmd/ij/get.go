package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := splitPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	out, err := cfg.output(cc.Out)
	if err != nil {
		return err
	}
	defer out.Close()
	missing := 0
	for _, file := range args {
		found, err := getFile(cfg.MainConfig, out, file, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, args[0], err)
		}
		if !found {
			missing++
		}
	}
	if err := out.Close(); err != nil {
		return err
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getFile(cfg *MainConfig, out *output, file string, path []string) (bool, error) {
	in, err := cfg.open(file)
	if err != nil {
		return false, err
	}
	defer in.Close()
	return transcodeInput(cfg, out, in, path, false)
}

// splitPath splits a dotted path. A leading '$' or '.' is allowed and "$"
// alone selects the whole document.
func splitPath(p string) ([]string, error) {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil, nil
	}
	parts := strings.Split(p, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q", p)
		}
	}
	return parts, nil
}
