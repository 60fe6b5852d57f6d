package di

import "reflect"

// Factory is the typed form of Provider.
type Factory[T any] func(c *Container) (T, error)

// Provide registers f under the default name for T.
//
// It panics if f is nil.
func Provide[T any](c *Container, f Factory[T]) {
	ProvideNamed(c, DefaultName, f)
}

// ProvideNamed registers f for T under name.
//
// It panics if f is nil.
func ProvideNamed[T any](c *Container, name string, f Factory[T]) {
	if f == nil {
		panic(ErrNilProvider)
	}
	// key is never zero here and f is non-nil, so Provide cannot fail.
	_ = c.Provide(NamedKeyFor[T](name), func(c *Container) (any, error) {
		return f(c)
	})
}

// ProvideValue registers an already built value for T.
func ProvideValue[T any](c *Container, v T) {
	ProvideNamed(c, DefaultName, func(*Container) (T, error) { return v, nil })
}

// ProvideNamedValue registers an already built value for T under name.
func ProvideNamedValue[T any](c *Container, name string, v T) {
	ProvideNamed(c, name, func(*Container) (T, error) { return v, nil })
}

// Invoke resolves the default-named T.
func Invoke[T any](c *Container) (T, error) {
	return InvokeNamed[T](c, DefaultName)
}

// InvokeNamed resolves T registered under name.
//
// It returns a *WrongTypeError if the value stored under the key is not a T,
// which can only happen when the key was provided through Container.Provide.
func InvokeNamed[T any](c *Container, name string) (T, error) {
	var zero T
	key := NamedKeyFor[T](name)
	raw, err := c.Invoke(key)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, &WrongTypeError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return v, nil
}

// MustInvoke is like Invoke but panics on error.
func MustInvoke[T any](c *Container) T {
	return MustInvokeNamed[T](c, DefaultName)
}

// MustInvokeNamed is like InvokeNamed but panics on error.
func MustInvokeNamed[T any](c *Container, name string) T {
	v, err := InvokeNamed[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Wrap adapts a constructor that does not need the container.
//
//	di.Provide(c, di.Wrap(NewClock))
func Wrap[T any](ctor func() T) Factory[T] {
	return func(*Container) (T, error) { return ctor(), nil }
}

// WrapErr adapts a fallible constructor that does not need the container.
func WrapErr[T any](ctor func() (T, error)) Factory[T] {
	return func(*Container) (T, error) { return ctor() }
}
