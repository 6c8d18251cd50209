package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

var (
	groceryJSON   bool
	groceryPantry bool
)

var groceryCmd = &cobra.Command{
	Use:   "grocery [recipe-id...]",
	Short: "Build a grocery list from recipes",
	Long: `Combine the ingredients of one or more recipes into a grocery list.

Amounts in compatible units are added together: "1 cup" and "1/2 cup" of
flour become "1.5 cup". Amounts that cannot be combined are listed side by
side, and text such as "a pinch" is counted ("2x a pinch").

Use --pantry to subtract what you already have (see "feedme pantry").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGrocery,
}

func init() {
	groceryCmd.Flags().BoolVar(&groceryJSON, "json", false, "output the list as JSON")
	groceryCmd.Flags().BoolVar(&groceryPantry, "pantry", false,
		"subtract pantry amounts (default from grocery.subtract_pantry)")
	rootCmd.AddCommand(groceryCmd)
}

func runGrocery(cmd *cobra.Command, args []string) error {
	if groceryService == nil {
		return errors.New("grocery service not configured")
	}

	req := domain.GroceryRequest{SubtractPantry: groceryPantry}
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		req.RecipeIDs = append(req.RecipeIDs, id)
	}

	if !cmd.Flags().Changed("pantry") && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			req.SubtractPantry = settings.Grocery.SubtractPantry
		}
	}

	list, err := groceryService.BuildList(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to build grocery list: %w", err)
	}

	if groceryJSON {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal grocery list: %w", err)
		}
		fmt.Fprintln(out(cmd), string(data))
		return nil
	}

	if len(list.Lines) == 0 {
		fmt.Fprintln(out(cmd), "Nothing to buy.")
		return nil
	}
	fmt.Fprint(out(cmd), list.String())
	return nil
}
