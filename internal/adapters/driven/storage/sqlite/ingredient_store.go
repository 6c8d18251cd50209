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

// ingredientStore implements driven.IngredientStore.
type ingredientStore struct {
	store *Store
}

var _ driven.IngredientStore = (*ingredientStore)(nil)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Create stores a new ingredient.
func (s *ingredientStore) Create(ctx context.Context, name string) (*domain.Ingredient, error) {
	now := time.Now().UTC()
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO ingredients (name, created_at) VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, now)
	if err != nil {
		return nil, fmt.Errorf("inserting ingredient: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("inserting ingredient: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("ingredient %q: %w", name, domain.ErrAlreadyExists)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading ingredient id: %w", err)
	}
	return &domain.Ingredient{ID: id, Name: name, CreatedAt: now}, nil
}

// Get retrieves an ingredient by ID.
func (s *ingredientStore) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM ingredients WHERE id = ?", id)
	return scanIngredient(row)
}

// GetByName retrieves an ingredient by exact name.
func (s *ingredientStore) GetByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM ingredients WHERE name = ?", name)
	return scanIngredient(row)
}

// List returns all ingredients ordered by name.
func (s *ingredientStore) List(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM ingredients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ing domain.Ingredient
		var createdAt sql.NullTime
		if err := rows.Scan(&ing.ID, &ing.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		if createdAt.Valid {
			ing.CreatedAt = createdAt.Time
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func scanIngredient(row *sql.Row) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	var createdAt sql.NullTime
	if err := row.Scan(&ing.ID, &ing.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning ingredient: %w", err)
	}
	if createdAt.Valid {
		ing.CreatedAt = createdAt.Time
	}
	return &ing, nil
}

// findOrCreateIngredient returns the ID of the named ingredient, inserting
// it when missing.
func findOrCreateIngredient(ctx context.Context, q querier, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, "SELECT id FROM ingredients WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("looking up ingredient %q: %w", name, err)
	}

	res, err := q.ExecContext(ctx,
		"INSERT INTO ingredients (name, created_at) VALUES (?, ?)", name, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("inserting ingredient %q: %w", name, err)
	}
	return res.LastInsertId()
}

// ingredientName returns the name of an existing ingredient.
func ingredientName(ctx context.Context, q querier, id int64) (string, error) {
	var name string
	err := q.QueryRowContext(ctx, "SELECT name FROM ingredients WHERE id = ?", id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("ingredient %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("looking up ingredient %d: %w", id, err)
	}
	return name, nil
}
