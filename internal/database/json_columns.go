// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package database

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/realconnect/internal/models"
)

// marshalJSONColumn encodes a value for a JSON text column. Nil and empty
// collections store as NULL so the column stays distinguishable from an
// explicit empty value.
func marshalJSONColumn(v interface{}) (*string, error) {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return nil, nil
		}
	case map[string]string:
		if len(val) == 0 {
			return nil, nil
		}
	case models.FieldVisibility:
		if val == nil {
			return nil, nil
		}
	case nil:
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON column: %w", err)
	}
	s := string(raw)
	return &s, nil
}

func unmarshalStringSlice(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON column: %w", err)
	}
	return out, nil
}

func unmarshalStringMap(raw *string) (map[string]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON column: %w", err)
	}
	return out, nil
}

func unmarshalVisibility(raw *string) (models.FieldVisibility, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out models.FieldVisibility
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode visibility column: %w", err)
	}
	return out, nil
}
