package codec

import (
	"github.com/signadot/ij/stream"
	"go.uber.org/zap"
)

// Option configures a Codec.
type Option func(*options)

type options struct {
	cfg    Config
	s      *stream.Stream
	length int
	log    *zap.Logger
}

// WithStream attaches a stream: decoding refills from it, encoding flushes
// to it.
func WithStream(s *stream.Stream) Option {
	return func(o *options) { o.s = s }
}

func WithPretty(v bool) Option {
	return func(o *options) { o.cfg.Pretty = v }
}

// WithLength sets the number of valid bytes at the start of the buffer
// when decoding. Without it the input ends just past the first zero byte.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithShallowSkip() Option {
	return func(o *options) { o.cfg.ShallowSkip = true }
}

func WithZeroCopy() Option {
	return func(o *options) { o.cfg.ZeroCopy = true }
}
