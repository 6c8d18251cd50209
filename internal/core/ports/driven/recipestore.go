package driven

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// RecipeStore persists recipes and their ingredient rows.
type RecipeStore interface {
	// Create stores a recipe and its ingredient rows atomically.
	// Rows with a zero IngredientID are matched to an existing ingredient
	// by name, or a new ingredient is created. Returns the new recipe ID.
	Create(ctx context.Context, recipe domain.Recipe) (int64, error)

	// Get retrieves a recipe with its ingredient rows in entry order.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*domain.Recipe, error)

	// List returns summaries of all recipes ordered by ID.
	List(ctx context.Context) ([]domain.RecipeSummary, error)
}
