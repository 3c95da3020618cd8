// Package loader reads a JSON source file and parses its top-level array.
// Schema validation is deferred to the consuming stages.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadArray reads the file at path and parses it as a JSON array, returning
// the raw elements. Fails when the file is unreadable or is not valid JSON;
// both errors wrap the underlying os / encoding/json error.
func LoadArray(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return records, nil
}

// Load parses the file at path as an array of T. Each element is decoded
// separately so a malformed record is reported with its index.
func Load[T any](path string) ([]T, error) {
	raw, err := LoadArray(path)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return nil, fmt.Errorf("parsing %s record %d: %w", path, i, err)
		}
	}

	return out, nil
}
