package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ij/codec"
	"github.com/signadot/ij/highlight"
	"github.com/signadot/ij/stream"
)

func ijMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Buf < 0 {
		return fmt.Errorf("%w: -buf must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// input is an opened argument with its decompression and comment
// stripping applied.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		errs = append(errs, in.closers[i].Close())
	}
	return errors.Join(errs...)
}

func (cfg *MainConfig) open(file string) (*input, error) {
	in := &input{}
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		in.closers = append(in.closers, f)
		r = f
	}
	zr, err := stream.NewReader(r, cfg.InCompress)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("error decompressing %s: %w", file, err)
	}
	in.closers = append(in.closers, zr)
	in.Reader = zr
	if cfg.JSONC {
		sr, err := stream.StripComments(zr)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		in.Reader = sr
	}
	return in, nil
}

// output wraps w with the output compression. Highlighted output is
// rendered in memory first, the rest streams through the encoder.
type output struct {
	w      io.WriteCloser
	colors *highlight.Colors
	closed bool
}

func (cfg *MainConfig) output(w io.Writer) (*output, error) {
	zw, err := stream.NewWriter(w, cfg.OutCompress)
	if err != nil {
		return nil, err
	}
	return &output{w: zw, colors: cfg.colors(w)}, nil
}

// Close is idempotent.
func (o *output) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	return o.w.Close()
}

// transcodeInput copies the value at path in r to out, reporting whether
// the path was found.
func transcodeInput(cfg *MainConfig, out *output, r io.Reader, path []string, pretty bool) (bool, error) {
	dec, err := cfg.decoder(r)
	if err != nil {
		return false, err
	}
	if len(path) > 0 {
		found, err := codec.Lookup(dec, path...)
		if err != nil || !found {
			return false, err
		}
	}
	var (
		w   io.Writer = out.w
		hib *bytes.Buffer
	)
	if out.colors != nil {
		hib = &bytes.Buffer{}
		w = hib
	}
	enc, err := cfg.encoder(w, pretty)
	if err != nil {
		return true, err
	}
	if err := codec.Transcode(enc, dec); err != nil {
		return true, err
	}
	if err := enc.Close(); err != nil {
		return true, err
	}
	if hib != nil {
		if err := highlight.Write(out.w, hib.Bytes(), out.colors); err != nil {
			return true, err
		}
	}
	_, err = out.w.Write([]byte{'\n'})
	return true, err
}
