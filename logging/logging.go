// Package logging provides component-tagged structured logging shared by
// every package in the simulator.
package logging

import (
	"io"
	"log/slog"
	"os"
)

var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)

// SetOutput makes loggers returned by later For calls write to w, using the
// text handler. Loggers already returned by For keep their previous writer.
func SetOutput(w io.Writer) {
	handler = slog.NewTextHandler(w, nil)
}

// For returns a logger tagged with the given component name, e.g.
// logging.For("simulator").Info("worker started").
func For(component string) *slog.Logger {
	return slog.New(handler).With("component", component)
}
