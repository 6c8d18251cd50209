package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

func TestExtractRecipeID(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		wantID int64
		wantOK bool
	}{
		{name: "valid recipe URI", uri: "feedme://recipes/42", wantID: 42, wantOK: true},
		{name: "invalid prefix", uri: "file://recipes/42"},
		{name: "non-numeric id", uri: "feedme://recipes/pancakes"},
		{name: "zero id", uri: "feedme://recipes/0"},
		{name: "empty URI", uri: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := extractRecipeID(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleUnitsResource(t *testing.T) {
	server := newTestServer(t, nil)

	result, err := server.handleUnitsResource(context.Background(), makeReadResourceRequest("feedme://units"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"symbol": "cup"`)
	assert.Contains(t, result.Contents[0].Text, `"family": "weight"`)
}

func TestServer_handleRecipesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil recipe service returns empty list", func(t *testing.T) {
		server := newTestServer(t, nil)

		result, err := server.handleRecipesResource(ctx, makeReadResourceRequest("feedme://recipes"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		server := newTestServer(t, &mockRecipeService{})

		result, err := server.handleRecipesResource(ctx, makeReadResourceRequest("feedme://recipes"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns recipes", func(t *testing.T) {
		server := newTestServer(t, &mockRecipeService{summaries: []domain.RecipeSummary{
			{ID: 7, Name: "Pancakes", IngredientCount: 3},
		}})

		result, err := server.handleRecipesResource(ctx, makeReadResourceRequest("feedme://recipes"))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"name": "Pancakes"`)
		assert.Contains(t, result.Contents[0].Text, `"ingredient_count": 3`)
	})
}

func TestServer_handleRecipeResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns formatted recipe", func(t *testing.T) {
		server := newTestServer(t, &mockRecipeService{recipe: &domain.Recipe{
			ID:          7,
			Name:        "Pancakes",
			Ingredients: []domain.RecipeIngredient{{IngredientName: "flour", QuantityUnit: "2 cups"}},
		}})

		result, err := server.handleRecipeResource(ctx, makeReadResourceRequest("feedme://recipes/7"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Recipe: Pancakes")
		assert.Contains(t, result.Contents[0].Text, "  - 2 cups flour")
	})

	t.Run("unknown recipe", func(t *testing.T) {
		server := newTestServer(t, &mockRecipeService{err: domain.ErrNotFound})

		_, err := server.handleRecipeResource(ctx, makeReadResourceRequest("feedme://recipes/7"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		server := newTestServer(t, &mockRecipeService{})

		_, err := server.handleRecipeResource(ctx, makeReadResourceRequest("feedme://recipes/abc"))
		assert.Error(t, err)
	})
}
