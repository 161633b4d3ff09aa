package core

import (
	"encoding/json"
	"io"
)

// MarshalPaths pretty-prints matched paths as a JSON array. A nil slice is
// written as [] so consumers always get an array.
func MarshalPaths(w io.Writer, paths []string) error {
	if paths == nil {
		paths = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paths)
}

// UnmarshalPaths decodes a JSON path array, useful for ingestion tests.
func UnmarshalPaths(r io.Reader) ([]string, error) {
	var ps []string
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return nil, err
	}
	return ps, nil
}
