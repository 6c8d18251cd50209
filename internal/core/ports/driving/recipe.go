package driving

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// RecipeService manages recipes.
type RecipeService interface {
	// Create validates and stores a recipe, returning it as stored.
	Create(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)

	// Get retrieves a recipe by ID.
	Get(ctx context.Context, id int64) (*domain.Recipe, error)

	// List returns all recipe summaries.
	List(ctx context.Context) ([]domain.RecipeSummary, error)
}
