package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/luckydep/di"
	"gopkg.in/yaml.v3"
)

// YAML returns a factory that decodes the file at path into a T.
//
// Decoding is strict: fields that do not exist in T are an error.
func YAML[T any](path string) di.Factory[T] {
	return func(*di.Container) (T, error) {
		var zero T
		data, err := os.ReadFile(path)
		if err != nil {
			return zero, fmt.Errorf("source: read yaml: %w", err)
		}
		v, err := decodeYAML[T](data)
		if err != nil {
			return zero, fmt.Errorf("source: decode yaml %s: %w", path, err)
		}
		return v, nil
	}
}

// YAMLBytes returns a factory that decodes data into a T.
func YAMLBytes[T any](data []byte) di.Factory[T] {
	return func(*di.Container) (T, error) {
		v, err := decodeYAML[T](data)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("source: decode yaml: %w", err)
		}
		return v, nil
	}
}

func decodeYAML[T any](data []byte) (T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to the zero value.
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return v, err
	}
	return v, nil
}
