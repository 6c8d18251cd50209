package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
	"github.com/custodia-labs/feedme/internal/grocery"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Ensure GroceryService implements the interface.
var _ driving.GroceryService = (*GroceryService)(nil)

// GroceryService builds grocery lists from stored recipes.
type GroceryService struct {
	recipeStore driven.RecipeStore
	pantryStore driven.PantryStore
	parser      *measure.Parser
	aggregator  *grocery.Aggregator
	workers     int
}

// NewGroceryService creates a grocery service. The pantry store may be nil
// when pantry subtraction is not needed.
func NewGroceryService(
	recipeStore driven.RecipeStore,
	pantryStore driven.PantryStore,
	catalog *measure.Catalog,
) *GroceryService {
	return &GroceryService{
		recipeStore: recipeStore,
		pantryStore: pantryStore,
		parser:      measure.NewParser(catalog),
		aggregator:  grocery.NewAggregator(catalog),
	}
}

// SetWorkers sets the number of aggregation workers. Values below 2 keep
// aggregation sequential.
func (s *GroceryService) SetWorkers(n int) {
	s.workers = n
}

// Aggregate merges already-parsed entries.
func (s *GroceryService) Aggregate(entries []domain.RecipeIngredientEntry) []domain.AggregatedLine {
	return s.aggregator.Aggregate(entries)
}

// BuildList loads the requested recipes in order, parses their rows and
// aggregates them into a grocery list.
func (s *GroceryService) BuildList(ctx context.Context, req domain.GroceryRequest) (*domain.GroceryList, error) {
	if s.recipeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(req.RecipeIDs) == 0 {
		return nil, fmt.Errorf("no recipes selected: %w", domain.ErrInvalidInput)
	}
	if req.SubtractPantry && s.pantryStore == nil {
		return nil, fmt.Errorf("pantry not configured: %w", domain.ErrNotImplemented)
	}

	logger.Section("Grocery List")

	var entries []domain.RecipeIngredientEntry
	for _, id := range req.RecipeIDs {
		recipe, err := s.recipeStore.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe %d: %w", id, err)
		}
		logger.Debug("recipe %d %q: %d ingredients", recipe.ID, recipe.Name, len(recipe.Ingredients))

		for _, ri := range recipe.Ingredients {
			q := s.parser.Parse(ri.QuantityUnit)
			if !q.IsResolved() {
				logger.Debug("%s: keeping %q as text", ri.IngredientName, ri.QuantityUnit)
			}
			entries = append(entries, domain.RecipeIngredientEntry{
				Ingredient: domain.Ingredient{ID: ri.IngredientID, Name: ri.IngredientName},
				Quantity:   q,
				Notes:      ri.Notes,
			})
		}
	}

	lines, err := s.aggregator.AggregateParallel(ctx, entries, s.workers)
	if err != nil {
		return nil, err
	}
	logger.Info("aggregated %d entries into %d lines", len(entries), len(lines))

	if req.SubtractPantry {
		lines, err = s.subtractPantry(ctx, lines)
		if err != nil {
			return nil, err
		}
	}

	return &domain.GroceryList{
		ID:        uuid.NewString(),
		RecipeIDs: append([]int64(nil), req.RecipeIDs...),
		Lines:     lines,
		CreatedAt: time.Now(),
	}, nil
}

// subtractPantry removes on-hand amounts from each line.
func (s *GroceryService) subtractPantry(ctx context.Context, lines []domain.AggregatedLine) ([]domain.AggregatedLine, error) {
	items, err := s.pantryStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	onHand := make(map[int64][]domain.Quantity, len(items))
	for _, item := range items {
		q := s.parser.Parse(item.QuantityUnit)
		if !q.IsResolved() {
			logger.Warn("pantry %s: %q is not a measurable amount, ignoring", item.Ingredient.Name, item.QuantityUnit)
			continue
		}
		onHand[item.Ingredient.ID] = append(onHand[item.Ingredient.ID], q)
	}

	result := make([]domain.AggregatedLine, 0, len(lines))
	for _, line := range lines {
		have, ok := onHand[line.Ingredient.ID]
		if !ok {
			result = append(result, line)
			continue
		}
		remaining, keep := grocery.Subtract(line, have)
		if !keep {
			logger.Debug("pantry covers %s", line.Ingredient.Name)
			continue
		}
		result = append(result, remaining)
	}
	return result, nil
}
