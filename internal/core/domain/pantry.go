package domain

import "time"

// PantryItem is an on-hand amount of an ingredient.
// The quantity is stored as free text, like recipe rows.
type PantryItem struct {
	Ingredient   Ingredient `json:"ingredient"`
	QuantityUnit string     `json:"quantity_unit"`
	UpdatedAt    time.Time  `json:"updated_at,omitempty"`
}
