package model

// Item is one line on the shopping list.
// Quantity is free-form text ("2", "a bunch"), never parsed.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// QuantityLabel is the text shown under the name in a row.
func (i Item) QuantityLabel() string {
	return "Quantity: " + i.Quantity
}
