package domain

import (
	"fmt"
	"strings"
	"time"
)

// Recipe is a complete recipe with its ingredient rows.
type Recipe struct {
	// ID is assigned by storage. Ignored on create.
	ID int64 `json:"id"`

	// Name is the recipe title.
	Name string `json:"name"`

	// Instructions are newline-separated steps. Empty when absent.
	Instructions string `json:"instructions,omitempty"`

	// Ingredients are kept in entry order.
	Ingredients []RecipeIngredient `json:"ingredients"`

	// CreatedAt is assigned by storage. Ignored on create.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// RecipeIngredient is a single ingredient row within a recipe.
type RecipeIngredient struct {
	// IngredientID references an existing ingredient. Zero means
	// "find or create by IngredientName".
	IngredientID int64 `json:"ingredient_id,omitempty"`

	// IngredientName is the display name.
	IngredientName string `json:"ingredient_name"`

	// QuantityUnit is the free-form quantity text, e.g. "2 cups".
	QuantityUnit string `json:"quantity_unit"`

	// Notes is optional free text, e.g. "diced".
	Notes string `json:"notes,omitempty"`
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	IngredientCount int       `json:"ingredient_count"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// Format renders the recipe as human-readable text.
func (r *Recipe) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recipe: %s\n", r.Name)
	fmt.Fprintf(&b, "ID: %d\n", r.ID)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	b.WriteString("\nIngredients:\n")

	for _, ing := range r.Ingredients {
		if ing.QuantityUnit == "" {
			fmt.Fprintf(&b, "  - %s", ing.IngredientName)
		} else {
			fmt.Fprintf(&b, "  - %s %s", ing.QuantityUnit, ing.IngredientName)
		}
		if ing.Notes != "" {
			fmt.Fprintf(&b, " (%s)", ing.Notes)
		}
		b.WriteByte('\n')
	}

	if r.Instructions != "" {
		fmt.Fprintf(&b, "\nInstructions:\n%s\n", r.Instructions)
	}

	return b.String()
}
