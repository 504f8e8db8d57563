package publisher

import (
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/comalice/eventaction/publisher"

type config struct {
	logger      *log.Logger
	tracer      trace.Tracer
	maxDistance int
}

func defaultConfig() config {
	return config{
		logger:      log.New(io.Discard, "", 0),
		tracer:      otel.Tracer(tracerName),
		maxDistance: 3,
	}
}

// Option configures a Publisher.
type Option func(*config)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer for notification spans. The default comes from
// the global otel TracerProvider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithTracerProvider takes the notification tracer from tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithSuggestionDistance sets the largest edit distance at which NotifyStrict
// still suggests a registered name. Zero disables suggestions.
func WithSuggestionDistance(d int) Option {
	return func(c *config) {
		if d >= 0 {
			c.maxDistance = d
		}
	}
}
