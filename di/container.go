package di

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider builds the value for a key. It receives the container so it can
// invoke its own dependencies.
type Provider func(c *Container) (any, error)

// Container is the registry: a provider table plus a cache of resolved values.
//
// The *Container handed to a provider shares state with the one Invoke was
// called on; it additionally tracks which keys are being resolved so cycles
// are reported instead of recursing.
type Container struct {
	reg  *registry
	ctx  context.Context
	path []Key
}

type registry struct {
	mu        sync.RWMutex
	providers map[Key]Provider
	instances map[Key]any
	// flights maps each key to its singleflight group key.
	flights map[Key]string
	group   singleflight.Group

	log     *zap.Logger
	metrics *metrics
	tracer  trace.Tracer
}

// providerPanic carries a recovered panic value through singleflight so it can
// be re-raised unchanged in the caller.
type providerPanic struct{ value any }

func (p *providerPanic) Error() string { return "di: provider panicked" }

// New creates an empty container.
func New(opts ...Option) *Container {
	o := buildOptions(opts)
	return &Container{
		reg: &registry{
			providers: make(map[Key]Provider),
			instances: make(map[Key]any),
			flights:   make(map[Key]string),
			log:       o.logger,
			metrics:   newMetrics(o.registerer),
			tracer:    o.tracer,
		},
		ctx: o.ctx,
	}
}

// Context returns the context attached to this container view. Inside a
// provider it carries the resolution span.
func (c *Container) Context() context.Context { return c.ctx }

// WithContext returns a view of the same registry whose resolutions use ctx as
// the parent span context.
func (c *Container) WithContext(ctx context.Context) *Container {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Container{reg: c.reg, ctx: ctx, path: c.path}
}

// Provide stores p as the provider for key, replacing any previous provider.
// p is not called.
//
// If key was already resolved, the cached value keeps being returned and the
// new provider is never run.
func (c *Container) Provide(key Key, p Provider) error {
	if key.IsZero() {
		return ErrInvalidKey
	}
	if p == nil {
		return ErrNilProvider
	}
	key = key.normalize()

	r := c.reg
	r.mu.Lock()
	_, replaced := r.providers[key]
	_, resolved := r.instances[key]
	r.providers[key] = p
	if _, ok := r.flights[key]; !ok {
		r.flights[key] = strconv.Itoa(len(r.flights))
	}
	r.mu.Unlock()

	switch {
	case resolved:
		r.log.Debug("provider shadowed by resolved value", zap.Stringer("key", key))
	case replaced:
		r.log.Debug("provider replaced", zap.Stringer("key", key))
	default:
		r.log.Debug("provider registered", zap.Stringer("key", key))
	}
	return nil
}

// Invoke returns the value for key, running its provider on first use.
//
// Errors returned by the provider are passed through unchanged and nothing is
// cached, so a later Invoke runs the provider again. A panicking provider is
// treated the same way and the panic is re-raised with its original value.
func (c *Container) Invoke(key Key) (any, error) {
	if key.IsZero() {
		return nil, ErrInvalidKey
	}
	key = key.normalize()

	r := c.reg
	r.mu.RLock()
	v, cached := r.instances[key]
	flight, registered := r.flights[key]
	r.mu.RUnlock()

	if cached {
		r.metrics.count(OutcomeCached)
		return v, nil
	}
	if slices.Contains(c.path, key) {
		err := &CycleError{Path: append(slices.Clone(c.path), key)}
		r.metrics.count(OutcomeCycle)
		r.log.Debug("dependency cycle", zap.Error(err))
		return nil, err
	}
	if !registered {
		r.metrics.count(OutcomeMissing)
		return nil, &MissingProviderError{Key: key}
	}

	v, err, _ := r.group.Do(flight, func() (any, error) { return c.resolve(key) })
	if p, ok := err.(*providerPanic); ok {
		panic(p.value)
	}
	return v, err
}

// resolve runs the provider for key and caches a successful result.
// It is only called from within the key's singleflight call.
func (c *Container) resolve(key Key) (any, error) {
	r := c.reg
	r.mu.RLock()
	if v, ok := r.instances[key]; ok {
		r.mu.RUnlock()
		return v, nil
	}
	p := r.providers[key]
	r.mu.RUnlock()

	ctx, span := r.tracer.Start(c.ctx, "di.resolve", trace.WithAttributes(
		attribute.String("di.type", key.Type.String()),
		attribute.String("di.name", key.Name),
	))
	defer span.End()

	child := &Container{reg: r, ctx: ctx, path: append(slices.Clone(c.path), key)}

	start := time.Now()
	v, err := run(p, child)
	took := time.Since(start)

	if err != nil {
		if _, panicked := err.(*providerPanic); !panicked {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, err.Error())
		r.metrics.observe(OutcomeFailed, took)
		r.log.Debug("provider failed", zap.Stringer("key", key), zap.Duration("took", took), zap.Error(err))
		return nil, err
	}

	r.mu.Lock()
	r.instances[key] = v
	r.mu.Unlock()

	r.metrics.observe(OutcomeResolved, took)
	r.log.Debug("resolved", zap.Stringer("key", key), zap.Duration("took", took))
	return v, nil
}

func run(p Provider, c *Container) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, err = nil, &providerPanic{value: rec}
		}
	}()
	return p(c)
}
