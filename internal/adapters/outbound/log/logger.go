package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"[snippet-canvas] "`
	UTC    bool   `config:"LOG_UTC" default:"true"`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(newLogger(il.writer(), il.Prefix, il.UTC))
	return ctx, nil
}

func (il InitLogger) writer() io.Writer {
	if il.out != nil {
		return il.out
	}
	return os.Stdout
}

// newLogger writes the prefix right before the component message, e.g.
// "2024/01/01 12:00:00 [snippet-canvas] GenerationServer: Listening on port 8080".
func newLogger(out io.Writer, prefix string, utc bool) *log.Logger {
	flags := log.LstdFlags | log.Lmsgprefix
	if utc {
		flags |= log.LUTC
	}
	return log.New(out, prefix, flags)
}
