package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/feedme/internal/adapters/driving/tui"
	"github.com/custodia-labs/feedme/internal/core/domain"
)

var (
	recipeName         string
	recipeIngredients  []string
	recipeInstructions string
	recipeJSON         bool
)

var recipeCmd = &cobra.Command{
	Use:     "recipe",
	Aliases: []string{"recipes"},
	Short:   "Manage recipes",
}

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe from flags",
	Long: `Add a recipe in one command. Each --ingredient takes the form
"name=quantity" or "name=quantity;notes". Unknown ingredients are created.

Example:
  feedme recipe add --name Pancakes \
    --ingredient "flour=1 1/2 cups" \
    --ingredient "milk=1 1/4 cups;warm" \
    --ingredient "eggs=1" \
    --instructions "Whisk everything. Fry in butter."`,
	Args: cobra.NoArgs,
	RunE: runRecipeAdd,
}

var recipeGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeGet,
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	Args:  cobra.NoArgs,
	RunE:  runRecipeList,
}

var recipeNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Enter a recipe interactively",
	Long: `Start a step-by-step recipe wizard: name, then each ingredient with its
quantity and notes, then the instructions one line at a time.

Press enter on an empty ingredient to move on to instructions, and on an
empty instruction to save. Esc cancels without saving.`,
	Args: cobra.NoArgs,
	RunE: runRecipeNew,
}

// isInteractive reports whether stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	recipeAddCmd.Flags().StringVar(&recipeName, "name", "", "recipe name")
	recipeAddCmd.Flags().StringArrayVarP(&recipeIngredients, "ingredient", "i", nil, `ingredient as "name=quantity[;notes]"`)
	recipeAddCmd.Flags().StringVar(&recipeInstructions, "instructions", "", "recipe instructions")
	_ = recipeAddCmd.MarkFlagRequired("name")

	recipeGetCmd.Flags().BoolVar(&recipeJSON, "json", false, "output the recipe as JSON")

	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeGetCmd)
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeNewCmd)
	rootCmd.AddCommand(recipeCmd)
}

func runRecipeAdd(cmd *cobra.Command, _ []string) error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	recipe := domain.Recipe{
		Name:         recipeName,
		Instructions: recipeInstructions,
	}
	for _, raw := range recipeIngredients {
		ri, err := parseIngredientFlag(raw)
		if err != nil {
			return err
		}
		recipe.Ingredients = append(recipe.Ingredients, ri)
	}

	created, err := recipeService.Create(cmd.Context(), recipe)
	if err != nil {
		return fmt.Errorf("failed to add recipe: %w", err)
	}

	fmt.Fprintf(out(cmd), "Added recipe %d: %s (%d ingredients)\n", created.ID, created.Name, len(created.Ingredients))
	return nil
}

// parseIngredientFlag parses "name=quantity[;notes]".
func parseIngredientFlag(spec string) (domain.RecipeIngredient, error) {
	name, rest, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return domain.RecipeIngredient{}, fmt.Errorf("invalid ingredient %q: want name=quantity[;notes]", spec)
	}
	quantity, notes, _ := strings.Cut(rest, ";")
	return domain.RecipeIngredient{
		IngredientName: name,
		QuantityUnit:   strings.TrimSpace(quantity),
		Notes:          strings.TrimSpace(notes),
	}, nil
}

func runRecipeGet(cmd *cobra.Command, args []string) error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	recipe, err := recipeService.Get(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}

	if recipeJSON {
		data, err := json.MarshalIndent(recipe, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal recipe: %w", err)
		}
		fmt.Fprintln(out(cmd), string(data))
		return nil
	}

	fmt.Fprint(out(cmd), recipe.Format())
	return nil
}

func runRecipeList(cmd *cobra.Command, _ []string) error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	recipes, err := recipeService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Fprintln(out(cmd), "No recipes found.")
		return nil
	}
	for _, r := range recipes {
		fmt.Fprintf(out(cmd), "  [%d] %s (%d ingredients)\n", r.ID, r.Name, r.IngredientCount)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func runRecipeNew(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return errors.New(`"recipe new" needs an interactive terminal; use "recipe add" instead`)
	}

	app, err := tui.NewApp(&tui.Ports{
		Quantity:   quantityService,
		Recipe:     recipeService,
		Ingredient: ingredientService,
	})
	if err != nil {
		return fmt.Errorf("failed to start recipe wizard: %w", err)
	}

	recipe, err := app.WithContext(cmd.Context()).Run()
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	if recipe == nil {
		fmt.Fprintln(out(cmd), "Cancelled.")
		return nil
	}

	fmt.Fprintf(out(cmd), "Added recipe %d: %s (%d ingredients)\n", recipe.ID, recipe.Name, len(recipe.Ingredients))
	return nil
}
