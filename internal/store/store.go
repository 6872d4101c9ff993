// Package store provides the startup item list: the built-in sample data or
// a JSON file given on the command line.
package store

import (
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
)

// Sample returns the built-in shopping list. Each call returns a fresh slice.
func Sample() []model.Item {
	return []model.Item{
		{Name: "Noodles", Quantity: "1"},
		{Name: "Cheese", Quantity: "1"},
		{Name: "Pepper", Quantity: "2"},
		{Name: "Onions", Quantity: "4"},
		{Name: "Carrots", Quantity: "2"},
		{Name: "Tomato", Quantity: "1"},
		{Name: "Fish", Quantity: "4"},
		{Name: "Grill Sauce", Quantity: "1"},
		{Name: "Baguette", Quantity: "1"},
		{Name: "Mushrooms", Quantity: "6"},
		{Name: "Cooking Oil", Quantity: "1"},
	}
}

// Open returns the sample list when path is empty, otherwise the items in the
// JSON file at path.
func Open(path string) ([]model.Item, error) {
	if path == "" {
		return Sample(), nil
	}
	return jsonstore.Load(path)
}
