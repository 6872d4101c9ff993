package tui

import "github.com/idilsaglam/shoplist/internal/adapter"

// rowItem adapts a bound adapter.Row to bubbles/list.Item.
type rowItem adapter.Row

func (i rowItem) Title() string       { return i.Name }
func (i rowItem) Description() string { return i.Quantity }
func (i rowItem) FilterValue() string { return i.Name }
