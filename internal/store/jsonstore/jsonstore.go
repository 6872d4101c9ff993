package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/shoplist/internal/model"
)

// JSON-backed startup list. Single file, human-readable, read once.
// Nothing is ever written back; the list lives only as long as the process.

// Load reads a JSON array of items from path.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Decode parses a JSON array of items. A null document yields an empty list.
func Decode(b []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Encode renders items the same way Load expects to read them.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
