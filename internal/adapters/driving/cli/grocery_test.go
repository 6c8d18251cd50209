package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addGroceryRecipes stores two recipes that share flour and milk.
func addGroceryRecipes(t *testing.T) {
	t.Helper()
	_, err := execute(t, "recipe", "add", "--name", "Pancakes",
		"-i", "flour=1 cup", "-i", "milk=1 cup", "-i", "salt=a pinch")
	require.NoError(t, err)
	resetFlags(rootCmd)

	_, err = execute(t, "recipe", "add", "--name", "Crepes",
		"-i", "flour=1/2 cup", "-i", "milk=250 ml", "-i", "eggs=2", "-i", "salt=a pinch")
	require.NoError(t, err)
	resetFlags(rootCmd)
}

func TestGroceryCmd_RequiresRecipe(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "grocery")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestGroceryCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addGroceryRecipes(t)

	output, err := execute(t, "grocery", "1", "2")

	require.NoError(t, err)
	assert.Equal(t, "flour: 1.5 cup\nmilk: 486.59 ml\nsalt: 2x a pinch\neggs: 2 item\n", output)
}

func TestGroceryCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addGroceryRecipes(t)

	output, err := execute(t, "grocery", "--json", "1", "2")

	require.NoError(t, err)
	assert.Contains(t, output, `"recipe_ids": [`)
	assert.Contains(t, output, `"name": "flour"`)
	assert.Contains(t, output, `"count": 2`)
}

func TestGroceryCmd_Pantry(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addGroceryRecipes(t)

	_, err := execute(t, "pantry", "set", "flour", "1 cup")
	require.NoError(t, err)
	_, err = execute(t, "pantry", "set", "eggs", "6")
	require.NoError(t, err)

	output, err := execute(t, "grocery", "--pantry", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "flour: 0.5 cup\n")
	assert.NotContains(t, output, "eggs")

	resetFlags(rootCmd)
	output, err = execute(t, "grocery", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "flour: 1.5 cup\n")
	assert.Contains(t, output, "eggs: 2 item\n")
}

func TestGroceryCmd_PantryDefaultFromConfig(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addGroceryRecipes(t)

	_, err := execute(t, "pantry", "set", "eggs", "6")
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "grocery.subtract_pantry", "true")
	require.NoError(t, err)

	output, err := execute(t, "grocery", "1", "2")
	require.NoError(t, err)
	assert.NotContains(t, output, "eggs")

	// An explicit flag wins over the configured default.
	output, err = execute(t, "grocery", "--pantry=false", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "eggs: 2 item")
}

func TestGroceryCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "grocery", "one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "one"`)

	_, err = execute(t, "grocery", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build grocery list")
}
