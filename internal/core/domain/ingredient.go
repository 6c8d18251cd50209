package domain

import (
	"strconv"
	"strings"
	"time"
)

// Ingredient is a named ingredient. The ID is the only identity; names are
// display text and may differ in casing or phrasing for the same ID.
type Ingredient struct {
	// ID is the stable identifier assigned by storage.
	ID int64 `json:"id"`

	// Name is the human-readable name.
	Name string `json:"name"`

	// CreatedAt is when the ingredient was first stored.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// RecipeIngredientEntry is one parsed ingredient row fed to aggregation.
type RecipeIngredientEntry struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   Quantity   `json:"quantity"`

	// Notes is free text such as "diced". Never aggregated.
	Notes string `json:"notes,omitempty"`
}

// LineQuantity is one merged bucket within an aggregated line.
type LineQuantity struct {
	Quantity

	// Count is the number of source entries folded into this bucket.
	Count int `json:"count"`
}

// String renders the bucket. Opaque buckets merged from several entries
// are prefixed with their count, e.g. "2x a pinch".
func (l LineQuantity) String() string {
	if !l.IsResolved() && l.Count > 1 {
		return strconv.Itoa(l.Count) + "x " + l.Raw
	}
	return l.Display()
}

// AggregatedLine is one ingredient on a grocery list with its merged
// quantities: one per unit family (or custom symbol), plus one per
// distinct opaque text.
type AggregatedLine struct {
	Ingredient Ingredient     `json:"ingredient"`
	Quantities []LineQuantity `json:"quantities"`

	// Notes is carried through from the first entry that had notes.
	Notes string `json:"notes,omitempty"`
}

// String renders the line as "name: qty, qty".
func (l AggregatedLine) String() string {
	parts := make([]string, len(l.Quantities))
	for i, q := range l.Quantities {
		parts[i] = q.String()
	}
	return l.Ingredient.Name + ": " + strings.Join(parts, ", ")
}
