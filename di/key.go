package di

import (
	"reflect"
	"sort"
)

// DefaultName is the name used when a key is registered or invoked without one.
const DefaultName = "default"

// Key identifies a registration slot: the type a value is registered under plus
// a name. Two keys are the same slot when both parts are equal.
//
// An empty Name is treated as DefaultName everywhere.
type Key struct {
	Type reflect.Type
	Name string
}

// KeyFor returns the default-named key for T.
//
// T may be an interface type:
//
//	di.KeyFor[Store]()
func KeyFor[T any]() Key {
	return Key{Type: reflect.TypeFor[T](), Name: DefaultName}
}

// NamedKeyFor returns the key for T registered under name.
func NamedKeyFor[T any](name string) Key {
	return Key{Type: reflect.TypeFor[T](), Name: name}.normalize()
}

// String renders the key as "type@name".
func (k Key) String() string {
	k = k.normalize()
	if k.Type == nil {
		return "<nil>@" + k.Name
	}
	return k.Type.String() + "@" + k.Name
}

// IsZero reports whether the key has no type.
func (k Key) IsZero() bool { return k.Type == nil }

func (k Key) normalize() Key {
	if k.Name == "" {
		k.Name = DefaultName
	}
	return k
}

// sortKeys orders keys by type string, then name.
func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		ti, tj := keys[i].Type.String(), keys[j].Type.String()
		if ti == tj {
			return keys[i].Name < keys[j].Name
		}
		return ti < tj
	})
}
