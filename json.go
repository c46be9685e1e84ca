package gendb

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads the JSON file at path into *target.
func LoadJSON[T any](path string, target *T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadJSONSlice reads a JSON array file at path into a slice, one
// element per generated row; the caller feeds them to Table.AddRow.
func LoadJSONSlice[T any](path string) ([]T, error) {
	var result []T
	if err := LoadJSON(path, &result); err != nil {
		return nil, err
	}
	return result, nil
}
