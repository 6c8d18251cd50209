package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

var ingredientCmd = &cobra.Command{
	Use:     "ingredient",
	Aliases: []string{"ingredients"},
	Short:   "Manage ingredients",
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngredientAdd,
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ingredients",
	Args:  cobra.NoArgs,
	RunE:  runIngredientList,
}

func init() {
	ingredientCmd.AddCommand(ingredientAddCmd)
	ingredientCmd.AddCommand(ingredientListCmd)
	rootCmd.AddCommand(ingredientCmd)
}

func runIngredientAdd(cmd *cobra.Command, args []string) error {
	if ingredientService == nil {
		return errors.New("ingredient service not configured")
	}

	ing, err := ingredientService.Create(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("ingredient %q already exists", args[0])
		}
		return fmt.Errorf("failed to add ingredient: %w", err)
	}

	fmt.Fprintf(out(cmd), "Added ingredient %d: %s\n", ing.ID, ing.Name)
	return nil
}

func runIngredientList(cmd *cobra.Command, _ []string) error {
	if ingredientService == nil {
		return errors.New("ingredient service not configured")
	}

	ingredients, err := ingredientService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list ingredients: %w", err)
	}

	if len(ingredients) == 0 {
		fmt.Fprintln(out(cmd), "No ingredients found.")
		return nil
	}
	for _, ing := range ingredients {
		fmt.Fprintf(out(cmd), "  [%d] %s\n", ing.ID, ing.Name)
	}
	return nil
}

// resolveIngredient accepts an ingredient ID or name.
func resolveIngredient(ctx context.Context, ref string) (*domain.Ingredient, error) {
	if ingredientService == nil {
		return nil, errors.New("ingredient service not configured")
	}

	var (
		ing *domain.Ingredient
		err error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		ing, err = ingredientService.Get(ctx, id)
	} else {
		ing, err = ingredientService.FindByName(ctx, ref)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("ingredient %q not found", ref)
	}
	return ing, err
}
