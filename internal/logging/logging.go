// Package logging configures the CLI's slog output: a colored
// human-readable handler on stderr, with verbosity controlled by the
// --verbose flag.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ANSI color codes.
const (
	Reset     = "\033[0m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Magenta   = "\033[35m"
	Cyan      = "\033[36m"
	White     = "\033[37m"
	BoldBlue  = "\033[1;34m"
	BoldWhite = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: Cyan,
	slog.LevelInfo:  Green,
	slog.LevelWarn:  Yellow,
	slog.LevelError: Red,
}

// ColoredHandler renders records as single colored lines. Request IDs
// logged under the "request_id" key are pulled forward for visibility.
type ColoredHandler struct {
	h   slog.Handler
	out io.Writer
}

// NewColoredHandler creates a colored handler writing to w.
func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &ColoredHandler{
		h:   slog.NewTextHandler(w, opts),
		out: w,
	}
}

func (h *ColoredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	timeStr := r.Time.Format("15:04:05.000")

	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = White
	}
	levelStr := fmt.Sprintf("%-6s", strings.ToUpper(r.Level.String()))

	var logLine strings.Builder
	logLine.WriteString(fmt.Sprintf("%s%s%s ", Magenta, timeStr, Reset))
	logLine.WriteString(fmt.Sprintf("%s%s%s ", levelColor, levelStr, Reset))

	var hasRequestID bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "request_id" && a.Value.Kind() == slog.KindString {
			logLine.WriteString(fmt.Sprintf("%s[%s]%s ", BoldBlue, a.Value.String(), Reset))
			hasRequestID = true
		}
		return true
	})

	logLine.WriteString(fmt.Sprintf("%s%s%s ", BoldWhite, r.Message, Reset))

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "request_id" || !hasRequestID {
			val := a.Value.String()
			if a.Value.Kind() == slog.KindString {
				val = fmt.Sprintf("%q", val)
			}
			logLine.WriteString(fmt.Sprintf("%s%s%s=%s ", Yellow, a.Key, Reset, val))
		}
		return true
	})

	fmt.Fprintln(h.out, logLine.String())

	return nil
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ColoredHandler{
		h:   h.h.WithAttrs(attrs),
		out: h.out,
	}
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	return &ColoredHandler{
		h:   h.h.WithGroup(name),
		out: h.out,
	}
}

// Setup installs the colored handler as the default logger. Verbose
// lowers the level to debug; otherwise warnings and errors only, so
// normal CLI output stays clean.
func Setup(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := NewColoredHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
