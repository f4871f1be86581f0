package codec

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ij/token"
)

// Config holds the tunables of a Codec. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// BufferSize is the size of buffers allocated by NewBuffer.
	BufferSize int `yaml:"bufferSize"`
	// Scratch bounds a single formatted write (numbers, member names).
	Scratch int `yaml:"scratch"`
	// IndentWidth is the number of spaces per level when pretty printing.
	IndentWidth int  `yaml:"indentWidth"`
	Pretty      bool `yaml:"pretty"`
	// ShallowSkip makes ObjectEnd skip a single token after an unhandled
	// member name instead of the whole value.
	ShallowSkip bool `yaml:"shallowSkip"`
	// ZeroCopy forbids String from copying out of the buffer; decoding a
	// string then fails with token.ErrCopyRequired and callers use Bytes.
	ZeroCopy bool `yaml:"zeroCopy"`
}

const DefaultBufferSize = 1024

func DefaultConfig() Config {
	return Config{
		BufferSize:  DefaultBufferSize,
		Scratch:     token.DefaultScratch,
		IndentWidth: token.DefaultIndentWidth,
	}
}

// NewBuffer allocates a buffer of cfg.BufferSize bytes.
func (cfg Config) NewBuffer() []byte {
	n := cfg.BufferSize
	if n <= 0 {
		n = DefaultBufferSize
	}
	return make([]byte, n)
}

// ParseConfig reads YAML over the defaults.
func ParseConfig(d []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.BufferSize < 0 || cfg.Scratch <= 0 || cfg.IndentWidth < 0 {
		return cfg, fmt.Errorf("config: sizes must be positive: %+v", cfg)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return ParseConfig(d)
}
