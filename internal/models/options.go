package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeOptions fills an options struct from a loose key/value mapping. Keys the options
// struct does not declare are ignored.
func DecodeOptions[T any](values map[string]any) (T, error) {
	var opts T
	data, err := yaml.Marshal(values)
	if err != nil {
		return opts, fmt.Errorf("encode options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}
