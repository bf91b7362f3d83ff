// Package diag is the non-fatal diagnostic side-channel of the
// option-composition engine. Nothing inside the engine aborts resolution;
// shape violations, naming conflicts, and failed lookups are reported here
// and resolution continues with a usable (possibly degraded) result. Callers
// that need hard failure inspect the sink after the fact.
package diag

import (
	"log/slog"

	"github.com/JaremyCheng/vue/pkg/errors"
)

// Handler receives every diagnostic reported to a Sink. Installing a handler
// suppresses the default slog output.
type Handler func(e *errors.Error)

// Sink collects non-fatal diagnostics during option resolution.
type Sink struct {
	handler Handler
	logger  *slog.Logger
	records []*errors.Error
}

// Option configures a Sink.
type Option func(*Sink)

// WithHandler installs a handler that replaces the default slog output.
func WithHandler(h Handler) Option {
	return func(s *Sink) { s.handler = h }
}

// WithLogger sets the logger used when no handler is installed.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sink) { s.logger = l }
}

// NewSink creates a Sink. Without options, diagnostics are logged through
// slog.Default at warn level.
func NewSink(opts ...Option) *Sink {
	s := &Sink{logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Warn records a diagnostic and forwards it to the handler or logger.
func (s *Sink) Warn(e *errors.Error) {
	s.records = append(s.records, e)
	if s.handler != nil {
		s.handler(e)
		return
	}
	attrs := make([]any, 0, 2+2*len(e.Details))
	attrs = append(attrs, "code", string(e.Code))
	for k, v := range e.Details {
		attrs = append(attrs, k, v)
	}
	s.logger.Warn(e.Message, attrs...)
}

// Warnf records a diagnostic built from a format string.
func (s *Sink) Warnf(code errors.ErrorCode, format string, args ...any) {
	s.Warn(errors.Newf(code, format, args...))
}

// Records returns every diagnostic reported so far, in order.
func (s *Sink) Records() []*errors.Error {
	return s.records
}

// Count returns the number of diagnostics reported so far.
func (s *Sink) Count() int {
	return len(s.records)
}

// Reset discards all recorded diagnostics.
func (s *Sink) Reset() {
	s.records = nil
}
