package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMissingProvider is matched by MissingProviderError via errors.Is.
	ErrMissingProvider = errors.New("di: missing provider")

	// ErrCycle is matched by CycleError via errors.Is.
	ErrCycle = errors.New("di: dependency cycle")

	// ErrNilProvider is returned when Provide is called with a nil provider.
	ErrNilProvider = errors.New("di: nil provider")

	// ErrInvalidKey is returned for a key without a type.
	ErrInvalidKey = errors.New("di: invalid key")
)

// MissingProviderError is returned by Invoke when nothing is registered or
// cached for the requested key.
type MissingProviderError struct{ Key Key }

// Error implements the error interface.
func (e *MissingProviderError) Error() string {
	// Example: di: no provider for "di_test.Store@default"
	return "di: no provider for " + strconv.Quote(e.Key.String())
}

// Is reports whether target is ErrMissingProvider.
func (e *MissingProviderError) Is(target error) bool { return target == ErrMissingProvider }

// CycleError is returned by Invoke when a key is requested again while its own
// provider is still running.
//
// Path lists the keys being resolved, outermost first, ending with the key
// that closed the cycle.
type CycleError struct{ Path []Key }

// Error implements the error interface.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = k.String()
	}
	// Example: di: dependency cycle: A@default -> B@default -> A@default
	return "di: dependency cycle: " + strings.Join(parts, " -> ")
}

// Is reports whether target is ErrCycle.
func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// WrongTypeError is returned by the typed helpers when the value stored under
// a key cannot be asserted to the requested type.
type WrongTypeError struct {
	// Key is the key requested.
	Key Key

	// GotType is the dynamic type of the stored value.
	GotType string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	// Example: di: value for "string@default" has wrong type (int)
	return "di: value for " + strconv.Quote(e.Key.String()) + " has wrong type (" + e.GotType + ")"
}
