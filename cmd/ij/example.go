package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ij/codec"
)

type record struct {
	Number    float64
	String    string
	Condition bool
}

func (r *record) serde(c *codec.Codec) error {
	if err := c.ObjectBegin(); err != nil {
		return err
	}
	for {
		if c.Member("number") {
			c.Number(&r.Number)
		}
		if c.Member("string") {
			c.String(&r.String)
		}
		if c.Member("condition") {
			c.Bool(&r.Condition)
		}
		if c.ObjectEnd() {
			break
		}
	}
	return c.Err()
}

func serdeRecords(rs *[]record, c *codec.Codec) error {
	if err := c.ArrayBegin(); err != nil {
		return err
	}
	cur := codec.NewCursor(len(*rs))
	for c.ArrayNext(cur) {
		if cur.Index() == len(*rs) {
			*rs = append(*rs, record{})
		}
		if err := (*rs)[cur.Index()].serde(c); err != nil {
			return err
		}
	}
	return c.Err()
}

func example(cfg *ExampleConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Example.Parse(cc, args)
	if err != nil {
		cfg.Example.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.N < 0 {
		return fmt.Errorf("%w: -n must not be negative", cli.ErrUsage)
	}
	return roundTrip(cfg.MainConfig, cc.Out, cfg.N)
}

// roundTrip encodes n records into one buffer, decodes them back from it
// and encodes the result to w.
func roundTrip(cfg *MainConfig, w io.Writer, n int) error {
	in := make([]record, n)
	for i := range in {
		in[i] = record{
			Number:    float64(i) * 1.5,
			String:    fmt.Sprintf("record %d", i),
			Condition: i%2 == 0,
		}
	}
	c := cfg.codecConfig()
	buf := c.NewBuffer()
	enc, err := codec.NewEncoder(buf, codec.WithConfig(c))
	if err != nil {
		return err
	}
	if err := serdeRecords(&in, enc); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	fmt.Fprintf(w, "encoded %d bytes\n", len(enc.Output()))

	var out []record
	dec, err := codec.NewDecoder(buf, codec.WithConfig(c))
	if err != nil {
		return err
	}
	if err := serdeRecords(&out, dec); err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	fmt.Fprintf(w, "decoded %d records\n", len(out))

	enc, err = cfg.encoder(w, false)
	if err != nil {
		return err
	}
	if err := serdeRecords(&out, enc); err != nil {
		return fmt.Errorf("error re-encoding: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}
