package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// QuantityOutput describes a parsed or converted quantity.
type QuantityOutput struct {
	Text     string  `json:"text"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Family   string  `json:"family"`
	Resolved bool    `json:"resolved"`
}

// ParseQuantityInput is the input schema for the parse_quantity tool.
type ParseQuantityInput struct {
	Text string `json:"text" jsonschema:"free-form quantity such as 1 1/2 cups or a pinch"`
}

// ConvertQuantityInput is the input schema for the convert_quantity tool.
type ConvertQuantityInput struct {
	Text string `json:"text" jsonschema:"quantity to convert, e.g. 2 cups"`
	Unit string `json:"unit" jsonschema:"target unit symbol, e.g. ml"`
}

// ConvertQuantityOutput is the output schema for the convert_quantity tool.
type ConvertQuantityOutput struct {
	From QuantityOutput `json:"from"`
	To   QuantityOutput `json:"to"`
}

// EntryInput is one recipe row passed to aggregate_ingredients.
type EntryInput struct {
	IngredientID int64  `json:"ingredient_id,omitempty" jsonschema:"optional ingredient id; rows with the same id are merged"`
	Ingredient   string `json:"ingredient" jsonschema:"ingredient name; rows without an id merge only on the exact same name"`
	Quantity     string `json:"quantity" jsonschema:"free-form quantity text"`
	Notes        string `json:"notes,omitempty" jsonschema:"optional preparation notes"`
}

// AggregateInput is the input schema for the aggregate_ingredients tool.
type AggregateInput struct {
	Entries []EntryInput `json:"entries" jsonschema:"recipe rows to merge"`
}

// LineOutput is one grocery list line.
type LineOutput struct {
	Ingredient string   `json:"ingredient"`
	Quantities []string `json:"quantities"`
	Notes      string   `json:"notes"`
	Text       string   `json:"text"`
}

// AggregateOutput is the output schema for the aggregate_ingredients tool.
type AggregateOutput struct {
	Lines []LineOutput `json:"lines"`
}

// GroceryListInput is the input schema for the grocery_list tool.
type GroceryListInput struct {
	RecipeIDs      []int64 `json:"recipe_ids" jsonschema:"IDs of the recipes to shop for"`
	SubtractPantry bool    `json:"subtract_pantry,omitempty" jsonschema:"subtract amounts already in the pantry"`
}

// GroceryListOutput is the output schema for the grocery_list tool.
type GroceryListOutput struct {
	ID    string       `json:"id"`
	Lines []LineOutput `json:"lines"`
}

// GetRecipeInput is the input schema for the get_recipe tool.
type GetRecipeInput struct {
	ID int64 `json:"id" jsonschema:"recipe ID"`
}

// RecipeOutput is a stored recipe.
type RecipeOutput struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"name"`
	Instructions string                   `json:"instructions"`
	Ingredients  []RecipeIngredientOutput `json:"ingredients"`
}

// RecipeIngredientOutput is one recipe row.
type RecipeIngredientOutput struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Notes      string `json:"notes"`
}

// ListRecipesInput is the input schema for the list_recipes tool.
type ListRecipesInput struct{}

// ListRecipesOutput is the output schema for the list_recipes tool.
type ListRecipesOutput struct {
	Recipes []RecipeSummaryOutput `json:"recipes"`
	Count   int                   `json:"count"`
}

// RecipeSummaryOutput is a recipe list entry.
type RecipeSummaryOutput struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	IngredientCount int    `json:"ingredient_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_quantity",
		Description: "Parse a free-form ingredient quantity into amount and unit",
	}, s.handleParseQuantity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_quantity",
		Description: "Convert a quantity to another unit of the same family",
	}, s.handleConvertQuantity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "aggregate_ingredients",
		Description: "Merge ingredient rows into grocery list lines, adding compatible amounts",
	}, s.handleAggregate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "grocery_list",
		Description: "Build a grocery list from stored recipes",
	}, s.handleGroceryList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe",
		Description: "Get a stored recipe with its ingredients",
	}, s.handleGetRecipe)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_recipes",
		Description: "List stored recipes",
	}, s.handleListRecipes)
}

func (s *Server) handleParseQuantity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseQuantityInput,
) (*mcp.CallToolResult, QuantityOutput, error) {
	q := s.ports.Quantity.ParseQuantity(input.Text)
	return nil, toQuantityOutput(q), nil
}

func (s *Server) handleConvertQuantity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertQuantityInput,
) (*mcp.CallToolResult, ConvertQuantityOutput, error) {
	from := s.ports.Quantity.ParseQuantity(input.Text)
	to, err := s.ports.Quantity.Convert(from, input.Unit)
	if err != nil {
		return nil, ConvertQuantityOutput{}, fmt.Errorf("converting %q to %s: %w", input.Text, input.Unit, err)
	}
	return nil, ConvertQuantityOutput{
		From: toQuantityOutput(from),
		To:   toQuantityOutput(to),
	}, nil
}

func (s *Server) handleAggregate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AggregateInput,
) (*mcp.CallToolResult, AggregateOutput, error) {
	if s.ports.Grocery == nil {
		return nil, AggregateOutput{}, fmt.Errorf("aggregate_ingredients: %w", ErrServiceUnavailable)
	}

	// Rows without an ingredient_id are keyed by their exact name. Those
	// keys get negative IDs so they never collide with real ones.
	byName := make(map[string]int64)
	entries := make([]domain.RecipeIngredientEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		name := strings.TrimSpace(e.Ingredient)
		if name == "" {
			return nil, AggregateOutput{}, fmt.Errorf("aggregate_ingredients: ingredient name is required: %w", domain.ErrInvalidInput)
		}
		if e.IngredientID < 0 {
			return nil, AggregateOutput{}, fmt.Errorf("aggregate_ingredients: ingredient_id %d must be positive: %w", e.IngredientID, domain.ErrInvalidInput)
		}

		id := e.IngredientID
		if id == 0 {
			var ok bool
			if id, ok = byName[name]; !ok {
				id = -int64(len(byName) + 1)
				byName[name] = id
			}
		}
		entries = append(entries, domain.RecipeIngredientEntry{
			Ingredient: domain.Ingredient{ID: id, Name: name},
			Quantity:   s.ports.Quantity.ParseQuantity(e.Quantity),
			Notes:      e.Notes,
		})
	}

	lines := s.ports.Grocery.Aggregate(entries)
	return nil, AggregateOutput{Lines: toLineOutputs(lines)}, nil
}

func (s *Server) handleGroceryList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GroceryListInput,
) (*mcp.CallToolResult, GroceryListOutput, error) {
	if s.ports.Grocery == nil {
		return nil, GroceryListOutput{}, fmt.Errorf("grocery_list: %w", ErrServiceUnavailable)
	}

	list, err := s.ports.Grocery.BuildList(ctx, domain.GroceryRequest{
		RecipeIDs:      input.RecipeIDs,
		SubtractPantry: input.SubtractPantry,
	})
	if err != nil {
		return nil, GroceryListOutput{}, fmt.Errorf("building grocery list: %w", err)
	}

	return nil, GroceryListOutput{ID: list.ID, Lines: toLineOutputs(list.Lines)}, nil
}

func (s *Server) handleGetRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecipeInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	if s.ports.Recipe == nil {
		return nil, RecipeOutput{}, fmt.Errorf("get_recipe: %w", ErrServiceUnavailable)
	}

	recipe, err := s.ports.Recipe.Get(ctx, input.ID)
	if err != nil {
		return nil, RecipeOutput{}, fmt.Errorf("getting recipe %d: %w", input.ID, err)
	}
	return nil, toRecipeOutput(recipe), nil
}

func (s *Server) handleListRecipes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListRecipesInput,
) (*mcp.CallToolResult, ListRecipesOutput, error) {
	if s.ports.Recipe == nil {
		return nil, ListRecipesOutput{}, fmt.Errorf("list_recipes: %w", ErrServiceUnavailable)
	}

	summaries, err := s.ports.Recipe.List(ctx)
	if err != nil {
		return nil, ListRecipesOutput{}, fmt.Errorf("listing recipes: %w", err)
	}

	output := ListRecipesOutput{
		Recipes: make([]RecipeSummaryOutput, len(summaries)),
		Count:   len(summaries),
	}
	for i, r := range summaries {
		output.Recipes[i] = RecipeSummaryOutput{ID: r.ID, Name: r.Name, IngredientCount: r.IngredientCount}
	}
	return nil, output, nil
}

func toQuantityOutput(q domain.Quantity) QuantityOutput {
	out := QuantityOutput{
		Text:     q.Display(),
		Amount:   q.Amount,
		Resolved: q.IsResolved(),
	}
	if q.Unit != nil {
		out.Unit = q.Unit.Symbol
		out.Family = string(q.Unit.Family)
	}
	return out
}

func toLineOutputs(lines []domain.AggregatedLine) []LineOutput {
	out := make([]LineOutput, len(lines))
	for i, line := range lines {
		quantities := make([]string, len(line.Quantities))
		for j, q := range line.Quantities {
			quantities[j] = q.String()
		}
		out[i] = LineOutput{
			Ingredient: line.Ingredient.Name,
			Quantities: quantities,
			Notes:      line.Notes,
			Text:       line.String(),
		}
	}
	return out
}

func toRecipeOutput(r *domain.Recipe) RecipeOutput {
	out := RecipeOutput{
		ID:           r.ID,
		Name:         r.Name,
		Instructions: r.Instructions,
		Ingredients:  make([]RecipeIngredientOutput, len(r.Ingredients)),
	}
	for i, ri := range r.Ingredients {
		out.Ingredients[i] = RecipeIngredientOutput{
			Ingredient: ri.IngredientName,
			Quantity:   ri.QuantityUnit,
			Notes:      ri.Notes,
		}
	}
	return out
}
