package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

// recipeStore implements driven.RecipeStore.
type recipeStore struct {
	store *Store
}

var _ driven.RecipeStore = (*recipeStore)(nil)

// Create stores a recipe and its ingredient rows in one transaction.
func (s *recipeStore) Create(ctx context.Context, recipe domain.Recipe) (int64, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO recipes (name, instructions, created_at) VALUES (?, ?, ?)",
		recipe.Name, nullString(recipe.Instructions), now)
	if err != nil {
		return 0, fmt.Errorf("inserting recipe: %w", err)
	}
	recipeID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading recipe id: %w", err)
	}

	for _, ri := range recipe.Ingredients {
		ingredientID := ri.IngredientID
		if ingredientID == 0 {
			ingredientID, err = findOrCreateIngredient(ctx, tx, ri.IngredientName)
		} else {
			_, err = ingredientName(ctx, tx, ingredientID)
		}
		if err != nil {
			return 0, err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity_unit, notes, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, recipeID, ingredientID, ri.QuantityUnit, ri.Notes, now); err != nil {
			return 0, fmt.Errorf("inserting recipe ingredient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing recipe: %w", err)
	}
	return recipeID, nil
}

// Get retrieves a recipe with its ingredient rows in entry order.
func (s *recipeStore) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var instructions sql.NullString
	var createdAt sql.NullTime
	err := s.store.db.QueryRowContext(ctx,
		"SELECT id, name, instructions, created_at FROM recipes WHERE id = ?", id).
		Scan(&recipe.ID, &recipe.Name, &instructions, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning recipe: %w", err)
	}
	recipe.Instructions = instructions.String
	if createdAt.Valid {
		recipe.CreatedAt = createdAt.Time
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT ri.ingredient_id, i.name, ri.quantity_unit, ri.notes
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying recipe ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ri domain.RecipeIngredient
		if err := rows.Scan(&ri.IngredientID, &ri.IngredientName, &ri.QuantityUnit, &ri.Notes); err != nil {
			return nil, fmt.Errorf("scanning recipe ingredient: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe ingredients: %w", err)
	}

	return &recipe, nil
}

// List returns summaries of all recipes ordered by ID.
func (s *recipeStore) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT r.id, r.name, r.created_at, COUNT(ri.id)
		FROM recipes r
		LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.id
		GROUP BY r.id
		ORDER BY r.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var summaries []domain.RecipeSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var summary domain.RecipeSummary
		var createdAt sql.NullTime
		if err := rows.Scan(&summary.ID, &summary.Name, &createdAt, &summary.IngredientCount); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		if createdAt.Valid {
			summary.CreatedAt = createdAt.Time
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// nullString converts an empty string to NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
