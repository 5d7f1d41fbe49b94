// Package applog builds the process logger and scopes it per component.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gogpu/gg"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// New returns a text logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Init installs l as the process logger, the slog default, and the logger
// used by the raster library.
func Init(l *slog.Logger) {
	if l == nil {
		return
	}
	loggerPtr.Store(l)
	slog.SetDefault(l)
	gg.SetLogger(l.With(slog.String("component", "gg")))
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// WithComponent returns a logger tagged with the component name.
func WithComponent(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}
