package theme

import (
	"encoding/json"
	"fmt"
)

// Load unmarshals one embedded JSON file into T.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := themeFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", filename, err)
	}
	return out, nil
}

// MustLoad is Load for files the binary cannot run without.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
