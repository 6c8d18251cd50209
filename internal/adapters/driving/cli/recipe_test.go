package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

func TestRecipeCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range recipeCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"add", "get", "list", "new"}, names)
}

func TestRecipeAddCmd_Flags(t *testing.T) {
	for _, name := range []string{"name", "ingredient", "instructions"} {
		assert.NotNil(t, recipeAddCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "i", recipeAddCmd.Flags().Lookup("ingredient").Shorthand)
}

func TestRecipeAddCmd_RequiresName(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "recipe", "add", "--ingredient", "flour=1 cup")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "name" not set`)
}

// addPancakes stores a recipe through the CLI.
func addPancakes(t *testing.T) {
	t.Helper()
	output, err := execute(t, "recipe", "add",
		"--name", "Pancakes",
		"--ingredient", "flour=1 1/2 cups",
		"-i", "milk=1 cup;warm",
		"-i", "eggs=1",
		"--instructions", "Whisk. Fry.",
	)
	require.NoError(t, err)
	require.Contains(t, output, "Added recipe 1: Pancakes (3 ingredients)")
}

func TestRecipeCmd_AddGetList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	output, err := execute(t, "recipe", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No recipes found.")

	addPancakes(t)

	output, err = execute(t, "recipe", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Recipe: Pancakes")
	assert.Contains(t, output, "  - 1 1/2 cups flour\n")
	assert.Contains(t, output, "  - 1 cup milk (warm)\n")
	assert.Contains(t, output, "Whisk. Fry.")

	output, err = execute(t, "recipes", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "  [1] Pancakes (3 ingredients)")
}

func TestRecipeAddCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addPancakes(t)
	resetFlags(rootCmd)

	output, err := execute(t, "recipe", "add", "--name", "Toast", "-i", "bread=2 slices")
	require.NoError(t, err)
	assert.Contains(t, output, "Added recipe 2: Toast (1 ingredients)")
}

func TestRecipeGetCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addPancakes(t)

	output, err := execute(t, "recipe", "get", "--json", "1")

	require.NoError(t, err)
	assert.Contains(t, output, `"name": "Pancakes"`)
	assert.Contains(t, output, `"quantity_unit": "1 1/2 cups"`)
}

func TestRecipeGetCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "recipe", "get", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe 42 not found")

	_, err = execute(t, "recipe", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestRecipeAddCmd_DuplicateIngredient(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "recipe", "add", "--name", "Bread", "-i", "flour=500 g", "-i", "Flour=1 cup")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseIngredientFlag(t *testing.T) {
	tests := []struct {
		flag    string
		want    domain.RecipeIngredient
		wantErr bool
	}{
		{flag: "flour=2 cups", want: domain.RecipeIngredient{IngredientName: "flour", QuantityUnit: "2 cups"}},
		{flag: " milk = 1 cup ; warm ", want: domain.RecipeIngredient{IngredientName: "milk", QuantityUnit: "1 cup", Notes: "warm"}},
		{flag: "salt=", want: domain.RecipeIngredient{IngredientName: "salt"}},
		{flag: "salt=;to taste", want: domain.RecipeIngredient{IngredientName: "salt", Notes: "to taste"}},
		{flag: "salt", wantErr: true},
		{flag: "=1 cup", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := parseIngredientFlag(tt.flag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipeNewCmd_NeedsTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := isInteractive
	isInteractive = func() bool { return false }
	defer func() { isInteractive = original }()

	_, err := execute(t, "recipe", "new")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
