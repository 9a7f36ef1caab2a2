package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Prefix starts every line written by a LineHandler.
const Prefix = "[justrun]"

// LineHandler is a slog.Handler writing one short line per record:
// the prefix, the message and any attributes as key=value pairs.
// Warnings and errors are colored when the output is a terminal.
type LineHandler struct {
	sink   *lineSink
	level  slog.Leveler
	group  string
	suffix string
}

// lineSink is shared by a handler and everything derived from it.
type lineSink struct {
	mu  sync.Mutex
	out *termenv.Output
}

func (s *lineSink) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.out.WriteString(line + "\n")
	return err
}

// colorProfile picks colors only for terminals and honours NO_COLOR.
func colorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// NewLineHandler returns a LineHandler writing to w, or to stderr when w is nil.
func NewLineHandler(w io.Writer, opts *slog.HandlerOptions) *LineHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	out := termenv.NewOutput(w, termenv.WithProfile(colorProfile(w)), termenv.WithTTY(true))
	return &LineHandler{
		sink:  &lineSink{out: out},
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteByte(' ')
	if r.Level >= slog.LevelWarn && r.Level < slog.LevelError {
		b.WriteString("warning: ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.suffix)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.group, attr)
		return true
	})

	line := b.String()
	if color := levelColor(r.Level); color != nil {
		line = h.sink.out.String(line).Foreground(color).String()
	}
	return h.sink.writeLine(line)
}

// WithAttrs implements slog.Handler. The attributes are rendered once, under
// the group active at the time of the call.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	for _, attr := range attrs {
		appendAttr(&b, h.group, attr)
	}
	c := h.clone()
	c.suffix += b.String()
	return c
}

// WithGroup implements slog.Handler. Nested groups are joined with dots.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.group = qualify(h.group, name)
	return c
}

func (h *LineHandler) clone() *LineHandler {
	c := *h
	return &c
}

func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	default:
		return nil
	}
}

func appendAttr(b *strings.Builder, group string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	b.WriteString(qualify(group, attr.Key))
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
