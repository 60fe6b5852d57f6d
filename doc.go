// Package luckydep is a small dependency injection registry for Go.
//
// It provides exactly one thing: a registry that maps a (type, name) key to a
// provider, runs that provider lazily on first use, and caches the result for
// the life of the registry. Providers receive the registry itself, so they can
// resolve their own dependencies in any order.
//
// There is no reflection-based injection, no graph builder and no scopes
// beyond the process-wide singleton. Wiring stays in plain Go functions.
//
// See subpackages:
//   - di: the registry (Container), typed helpers and the lazy Value[T] cell
//   - source: ordinary factories for environment, dotenv and YAML values
//   - cmd/greet: a CLI that wires the greeting example from files and env
//   - examples/*: runnable examples
package luckydep
