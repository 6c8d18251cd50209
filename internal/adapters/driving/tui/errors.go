package tui

import "errors"

// ErrMissingQuantityService is returned when the quantity service is not provided.
var ErrMissingQuantityService = errors.New("tui: quantity service is required")

// ErrMissingRecipeService is returned when the recipe service is not provided.
var ErrMissingRecipeService = errors.New("tui: recipe service is required")

// ErrMissingIngredientService is returned when the ingredient service is not provided.
var ErrMissingIngredientService = errors.New("tui: ingredient service is required")
