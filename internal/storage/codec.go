package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/lifehub/internal/models"
)

// Encode serializes the complete snapshot.
func Encode(s models.Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// DecodeFields splits a stored document into its top-level fields without
// interpreting them. A document that is not a JSON object is an error.
func DecodeFields(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("snapshot is not a JSON object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return fields, nil
}
