package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

// Ensure RecipeStore implements the interface.
var _ driven.RecipeStore = (*RecipeStore)(nil)

// RecipeStore is an in-memory implementation of driven.RecipeStore.
// Ingredients referenced by name are found or created in the shared
// IngredientStore.
type RecipeStore struct {
	mu          sync.RWMutex
	nextID      int64
	recipes     map[int64]domain.Recipe
	ingredients *IngredientStore
}

// NewRecipeStore creates a new in-memory recipe store.
func NewRecipeStore(ingredients *IngredientStore) *RecipeStore {
	return &RecipeStore{
		nextID:      1,
		recipes:     make(map[int64]domain.Recipe),
		ingredients: ingredients,
	}
}

// Create stores a recipe and resolves its ingredients.
func (s *RecipeStore) Create(ctx context.Context, recipe domain.Recipe) (int64, error) {
	rows := make([]domain.RecipeIngredient, len(recipe.Ingredients))
	for i, ri := range recipe.Ingredients {
		if ri.IngredientID != 0 {
			ing, err := s.ingredients.Get(ctx, ri.IngredientID)
			if err != nil {
				return 0, err
			}
			ri.IngredientName = ing.Name
		} else {
			ing := s.ingredients.findOrCreate(ri.IngredientName)
			ri.IngredientID = ing.ID
		}
		rows[i] = ri
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	recipe.ID = s.nextID
	recipe.CreatedAt = time.Now()
	recipe.Ingredients = rows
	s.nextID++
	s.recipes[recipe.ID] = recipe
	return recipe.ID, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeStore) Get(_ context.Context, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	recipe.Ingredients = append([]domain.RecipeIngredient(nil), recipe.Ingredients...)
	return &recipe, nil
}

// List returns summaries of all recipes ordered by ID.
func (s *RecipeStore) List(_ context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		result = append(result, domain.RecipeSummary{
			ID:              r.ID,
			Name:            r.Name,
			IngredientCount: len(r.Ingredients),
			CreatedAt:       r.CreatedAt,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
