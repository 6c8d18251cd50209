package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for feedme resources.
	uriScheme = "feedme://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "units",
		Name:        "units",
		Description: "Registered measurement units with their families and conversion factors",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recipes",
		Name:        "recipes",
		Description: "List of stored recipes",
		MIMEType:    "application/json",
	}, s.handleRecipesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recipes/{recipeId}",
		Name:        "recipe",
		Description: "A stored recipe as plain text",
		MIMEType:    "text/plain",
	}, s.handleRecipeResource)
}

func (s *Server) handleUnitsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Quantity.Units())
}

func (s *Server) handleRecipesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Recipe == nil {
		return textResource(req.Params.URI, "application/json", "[]"), nil
	}

	summaries, err := s.ports.Recipe.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	if summaries == nil {
		summaries = []domain.RecipeSummary{}
	}
	return jsonResource(req.Params.URI, summaries)
}

func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Recipe == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id, ok := extractRecipeID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recipe, err := s.ports.Recipe.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	return textResource(req.Params.URI, "text/plain", recipe.Format()), nil
}

// extractRecipeID extracts the recipe ID from a URI like feedme://recipes/{recipeId}.
func extractRecipeID(uri string) (int64, bool) {
	const prefix = uriScheme + "recipes/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return textResource(uri, "application/json", string(data)), nil
}

func textResource(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
