package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sghaida/luckydep/di"
)

// Env is a snapshot of environment variables.
type Env map[string]string

// Lookup returns the variable and whether it is set.
func (e Env) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// Get returns the variable or fallback when it is unset or empty.
func (e Env) Get(name, fallback string) string {
	if v := e[name]; v != "" {
		return v
	}
	return fallback
}

// MissingEnvError is returned by RequireEnv when a variable is unset or empty.
type MissingEnvError struct{ Name string }

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	return "source: environment variable " + strconv.Quote(e.Name) + " is not set"
}

// LoadEnv returns a factory for Env. It reads the given dotenv files in order,
// later files overriding earlier ones, then overlays the process environment,
// which always wins. Files that do not exist are skipped; with no paths only
// the process environment is used.
//
// The process environment is not modified.
func LoadEnv(paths ...string) di.Factory[Env] {
	return func(*di.Container) (Env, error) {
		env := Env{}
		for _, path := range paths {
			vars, err := godotenv.Read(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("source: read dotenv %s: %w", path, err)
			}
			for k, v := range vars {
				env[k] = v
			}
		}
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				env[k] = v
			}
		}
		return env, nil
	}
}

// EnvString returns a factory for a single variable read from the registry's
// default Env, falling back when it is unset or empty.
//
// An Env must be provided under the default name.
func EnvString(name, fallback string) di.Factory[string] {
	return func(c *di.Container) (string, error) {
		env, err := di.Invoke[Env](c)
		if err != nil {
			return "", err
		}
		return env.Get(name, fallback), nil
	}
}

// RequireEnv is like EnvString but fails with *MissingEnvError when the
// variable is unset or empty.
func RequireEnv(name string) di.Factory[string] {
	return func(c *di.Container) (string, error) {
		env, err := di.Invoke[Env](c)
		if err != nil {
			return "", err
		}
		v := env.Get(name, "")
		if v == "" {
			return "", &MissingEnvError{Name: name}
		}
		return v, nil
	}
}
