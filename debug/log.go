package debug

import (
	"sync"

	"go.uber.org/zap"
)

var (
	devOnce sync.Once
	dev     *zap.Logger
)

func development() *zap.Logger {
	devOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			l = zap.NewNop()
		}
		dev = l
	})
	return dev
}

// Logger returns the diagnostic logger for component. Unless the
// component's IJ_DEBUG_* variable is set it discards everything, so
// callers may log unconditionally.
func Logger(component string) *zap.Logger {
	if !Enabled(component) {
		return zap.NewNop()
	}
	return development().Named(component)
}

// Quote renders at most n bytes of b for a log field.
func Quote(b []byte, n int) zap.Field {
	if len(b) > n {
		b = b[:n]
	}
	return zap.ByteString("text", b)
}
