package di

import (
	"sync"
	"sync/atomic"
)

// Value is a single lazily built value, independent of any Container.
//
// The factory runs on the first successful Get; later calls return the same
// value. A failing factory leaves the Value empty so the next Get retries.
// Typically the factory is a closure over other Values:
//
//	store := di.NewValueOf(func() Store { return NewFakeStore(records) })
//	svc := di.NewValueOf(func() *Service { return NewService(store.MustGet(), "Hi") })
//
// The factory must not call Get on its own Value.
type Value[T any] struct {
	mu      sync.Mutex
	factory func() (T, error)
	val     T
	ready   atomic.Bool
}

// NewValue returns a Value built by factory on first use.
func NewValue[T any](factory func() (T, error)) *Value[T] {
	if factory == nil {
		panic(ErrNilProvider)
	}
	return &Value[T]{factory: factory}
}

// NewValueOf is NewValue for a factory that cannot fail.
func NewValueOf[T any](factory func() T) *Value[T] {
	if factory == nil {
		panic(ErrNilProvider)
	}
	return NewValue(func() (T, error) { return factory(), nil })
}

// Get returns the value, building it if needed.
func (v *Value[T]) Get() (T, error) {
	if v.ready.Load() {
		return v.val, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ready.Load() {
		return v.val, nil
	}

	val, err := v.factory()
	if err != nil {
		var zero T
		return zero, err
	}
	v.val = val
	v.ready.Store(true)
	return val, nil
}

// MustGet is like Get but panics on error.
func (v *Value[T]) MustGet() T {
	val, err := v.Get()
	if err != nil {
		panic(err)
	}
	return val
}

// Ready reports whether the value has been built.
func (v *Value[T]) Ready() bool { return v.ready.Load() }
