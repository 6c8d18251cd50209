package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Track what you already have",
	Long: `Record on-hand amounts. "feedme grocery --pantry" subtracts them from
the grocery list when the units are compatible.`,
}

var pantrySetCmd = &cobra.Command{
	Use:   "set [ingredient] [quantity]",
	Short: "Set the on-hand amount of an ingredient",
	Long: `Set the on-hand amount of an ingredient, by ID or name.

Example:
  feedme pantry set flour 2 kg`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPantrySet,
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pantry contents",
	Args:  cobra.NoArgs,
	RunE:  runPantryList,
}

var pantryRemoveCmd = &cobra.Command{
	Use:   "remove [ingredient]",
	Short: "Remove an ingredient from the pantry",
	Args:  cobra.ExactArgs(1),
	RunE:  runPantryRemove,
}

func init() {
	pantryCmd.AddCommand(pantrySetCmd)
	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryRemoveCmd)
	rootCmd.AddCommand(pantryCmd)
}

func runPantrySet(cmd *cobra.Command, args []string) error {
	if pantryService == nil {
		return errors.New("pantry service not configured")
	}

	ing, err := resolveIngredient(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	item, err := pantryService.Set(cmd.Context(), ing.ID, strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("failed to update pantry: %w", err)
	}

	fmt.Fprintf(out(cmd), "Pantry: %s = %s\n", item.Ingredient.Name, item.QuantityUnit)
	return nil
}

func runPantryList(cmd *cobra.Command, _ []string) error {
	if pantryService == nil {
		return errors.New("pantry service not configured")
	}

	items, err := pantryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list pantry: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(out(cmd), "Pantry is empty.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(out(cmd), "  %s: %s\n", item.Ingredient.Name, item.QuantityUnit)
	}
	return nil
}

func runPantryRemove(cmd *cobra.Command, args []string) error {
	if pantryService == nil {
		return errors.New("pantry service not configured")
	}

	ing, err := resolveIngredient(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err := pantryService.Remove(cmd.Context(), ing.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%s is not in the pantry", ing.Name)
		}
		return fmt.Errorf("failed to remove from pantry: %w", err)
	}

	fmt.Fprintf(out(cmd), "Removed %s from the pantry\n", ing.Name)
	return nil
}
