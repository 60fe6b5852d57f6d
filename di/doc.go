// Package di provides a lazy, singleton dependency registry.
//
// A Container maps a Key (a reflect.Type plus a name) to a Provider. Nothing is
// built at registration time. The first Invoke for a key runs its provider,
// caches the value and returns it; every later Invoke returns that same value.
//
// Providers receive the container as their only argument, so a provider asks
// the container for its own dependencies while it runs:
//
//	c := di.New()
//	di.ProvideNamed(c, "hello-prefix", di.Wrap(func() string { return "Hi" }))
//	di.Provide(c, func(c *di.Container) (Store, error) {
//		return NewFakeStore(map[int]string{7: "Alice"}), nil
//	})
//	di.Provide(c, func(c *di.Container) (*Service, error) {
//		store, err := di.Invoke[Store](c)
//		if err != nil {
//			return nil, err
//		}
//		prefix, err := di.InvokeNamed[string](c, "hello-prefix")
//		if err != nil {
//			return nil, err
//		}
//		return NewService(store, prefix), nil
//	})
//
//	svc := di.MustInvoke[*Service](c) // builds Store, the prefix and Service once
//
// Registration order does not matter as long as every key is provided before
// it is first invoked.
//
// Semantics worth knowing:
//   - Resolution is one-shot. Providing a key again after it was resolved is
//     allowed but has no effect; the cached value keeps winning.
//   - Failures are not memoized. A provider that returns an error (or panics)
//     leaves the key unresolved, and the next Invoke runs it again.
//   - A key requested again while its own provider is still running fails with
//     a CycleError instead of recursing forever.
//   - Containers are independent. There is no package-level registry.
//
// A Container is safe for concurrent use. Concurrent first invocations of the
// same key run the provider once and share its result.
package di
