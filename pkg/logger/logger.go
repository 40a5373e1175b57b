package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type Config struct {
	Format string     `env:"LOG_FORMAT" envDefault:"json"` // Format is "json" or "text".
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`  // Level is the minimum level emitted.
}

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures logger creation.
type Option func(*options)

type options struct {
	output     io.Writer
	extractors []ContextExtractor
}

// WithOutput sets a custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithExtractors registers context extractors; nil entries are dropped.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// New creates a slog.Logger per the given configuration. Any format
// other than "text" falls back to JSON.
func New(cfg Config, opts ...Option) *slog.Logger {
	o := &options{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.extractors) > 0 {
		handler = &contextHandler{next: handler, extractors: o.extractors}
	}

	return slog.New(handler)
}

// contextHandler wraps a slog.Handler and injects attributes from
// context. Extraction runs per log call so request-scoped values are
// always fresh.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
