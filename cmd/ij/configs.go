package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ij/codec"
	"github.com/signadot/ij/highlight"
	"github.com/signadot/ij/stream"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=pretty aliases=p desc='indent output'"`
	JSONC  bool `cli:"name=jsonc desc='accept comments and trailing commas in input'"`
	Buf    int  `cli:"name=buf desc='buffer size in bytes'"`

	Config      codec.Config
	InCompress  stream.Compression
	OutCompress stream.Compression
	Out         string
	CloseOut    func() error

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	c, err := codec.LoadConfig(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Config = c
	return v, nil
}

func (cfg *MainConfig) compressFunc(cp *stream.Compression) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		c, err := stream.ParseCompression(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*cp = c
		return c, nil
	})
}

// codecConfig merges the flags over the loaded config.
func (cfg *MainConfig) codecConfig() codec.Config {
	res := cfg.Config
	if cfg.Buf > 0 {
		res.BufferSize = cfg.Buf
	}
	if cfg.Pretty {
		res.Pretty = true
	}
	return res
}

func (cfg *MainConfig) decoder(r io.Reader) (*codec.Codec, error) {
	c := cfg.codecConfig()
	return codec.NewDecoder(c.NewBuffer(),
		codec.WithConfig(c),
		codec.WithStream(stream.FromReader(r)),
		codec.WithLength(0))
}

func (cfg *MainConfig) encoder(w io.Writer, pretty bool) (*codec.Codec, error) {
	c := cfg.codecConfig()
	c.Pretty = c.Pretty || pretty
	return codec.NewEncoder(c.NewBuffer(),
		codec.WithConfig(c),
		codec.WithStream(stream.FromWriter(w)))
}

// colors returns the colours to highlight output to w with, or nil. Unless
// -color was given, colour is used only when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *highlight.Colors {
	if cfg.Color {
		color.NoColor = false
		return highlight.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	if cfg.OutCompress != stream.NoCompression {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return highlight.NewColors()
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ExampleConfig struct {
	*MainConfig
	N int `cli:"name=n desc='number of records to encode'"`

	Example *cli.Command
}
