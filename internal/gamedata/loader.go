package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load unmarshals one embedded JSON data file into T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad is Load for data the generator cannot run without; it panics on
// any error.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
