package di

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/sghaida/luckydep/di"

// Option configures a Container.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	tracer     trace.Tracer
	ctx        context.Context
}

// WithLogger sets the logger used for registration and resolution events.
// All entries are logged at debug level. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers resolution metrics on reg.
//
// Containers sharing a registerer share the same collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithTracer records a span for every provider execution.
// Defaults to a no-op tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithContext sets the context returned by Container.Context and used as the
// parent of resolution spans. It carries no cancellation semantics.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(instrumentationName),
		ctx:    context.Background(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
