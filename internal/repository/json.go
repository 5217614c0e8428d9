package repository

import (
	"encoding/json"
	"fmt"
)

// Content list columns (answers, clues, set items) are stored as JSON
// arrays in TEXT columns so the schema stays identical across SQLite,
// PostgreSQL and MySQL.

func encodeStrings(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode list column: %w", err)
	}
	return string(raw), nil
}

func decodeStrings(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list column: %w", err)
	}
	return items, nil
}
