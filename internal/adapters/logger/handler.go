package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/gaecom/arco-cli/internal/ui/output"
	"github.com/gaecom/arco-cli/internal/ui/style"
	"github.com/muesli/termenv"
)

// RunKey is the attribute key of a build run id. An ungrouped run attribute
// is printed as a faint "[id]" prefix instead of a key=value pair.
const RunKey = "run"

// PrettyHandler is a slog.Handler producing colored single-line records.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	run    string
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	levelVar := &slog.LevelVar{}
	if opts != nil && opts.Level != nil {
		levelVar.Set(opts.Level.Level())
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as "[run] icon message key=value...".
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	run := h.run
	parts := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		if h.prefix == "" && attr.Key == RunKey {
			run = attr.Value.String()
			return true
		}
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})

	var b strings.Builder
	if run != "" {
		b.WriteString(h.out.String("[" + run + "]").Faint().String())
		b.WriteByte(' ')
	}

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}
	b.WriteString(h.out.String(msg).Foreground(color).String())
	b.WriteByte('\n')

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a Handler with attrs appended under the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		if h.prefix == "" && attr.Key == RunKey {
			next.run = attr.Value.String()
			continue
		}
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return next
}

// WithGroup returns a Handler qualifying later attribute keys with name.
// Attributes added before the call keep their keys.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		run:    h.run,
		attrs:  slices.Clip(h.attrs),
		prefix: h.prefix,
	}
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// appendAttr renders attr as key=value, flattening nested groups.
func appendAttr(dst []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			dst = appendAttr(dst, inner, a)
		}
		return dst
	}
	return append(dst, prefix+attr.Key+"="+attr.Value.String())
}
