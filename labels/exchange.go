package labels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Export serializes cfg as indented JSON.
func Export(cfg *Configuration) ([]byte, error) {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting configuration: %w", err)
	}
	return out, nil
}

// Import parses exported text. Only the presence of a non-empty commitTypes
// object is required; other missing fields take their defaults.
func Import(data []byte) (*Configuration, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrInvalidImport)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if _, ok := probe["commitTypes"]; !ok {
		return nil, fmt.Errorf("%w: missing commitTypes", ErrInvalidImport)
	}

	var stored storedConfiguration
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if len(stored.CommitTypes) == 0 {
		return nil, fmt.Errorf("%w: commitTypes is empty", ErrInvalidImport)
	}
	types, err := normalizeTypes(stored.CommitTypes)
	if err != nil {
		return nil, err
	}
	stored.CommitTypes = types

	cfg, _ := stored.complete()
	return cfg, nil
}

// ImportAndSave parses data and, only when it is valid, replaces the stored
// configuration.
func ImportAndSave(kv KV, data []byte) (*Configuration, error) {
	cfg, err := Import(data)
	if err != nil {
		return nil, err
	}
	if err := Save(kv, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeTypes lowercases imported tokens so they can match parsed
// messages. Tokens that are still invalid, or that collide once lowercased,
// reject the import.
func normalizeTypes(in map[string]TypeStyle) (map[string]TypeStyle, error) {
	out := make(map[string]TypeStyle, len(in))
	for token, style := range in {
		lower := strings.ToLower(strings.TrimSpace(token))
		if err := ValidateToken(lower); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
		}
		if _, dup := out[lower]; dup {
			return nil, fmt.Errorf("%w: commit type %q appears more than once", ErrInvalidImport, lower)
		}
		out[lower] = style
	}
	return out, nil
}
