package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve feedme tools to MCP clients",
	Long: `Serve feedme to MCP clients (AI assistants, editors, MCP Inspector).

Tools:
  parse_quantity         "1 1/2 cups" -> 1.5 cup (volume)
  convert_quantity       "2 lb" to kg
  aggregate_ingredients  merge raw ingredient rows into grocery lines
  grocery_list           build a grocery list from stored recipe ids
  get_recipe, list_recipes

Resources:
  feedme://units, feedme://recipes, feedme://recipes/{recipeId}

The server speaks JSON-RPC over stdio unless --port is given, in which
case it serves streamable HTTP on --host:--port.

Examples:
  feedme mcp serve
  feedme mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "feedme": {"command": "/path/to/feedme", "args": ["mcp", "serve"]}
    }
  }`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		server, err := mcp.NewServer(&mcp.Ports{
			Quantity: quantityService,
			Grocery:  groceryService,
			Recipe:   recipeService,
		})
		if err != nil {
			return err
		}

		if mcpPort == 0 {
			return server.Run(cmd.Context())
		}
		if mcpPort < 0 || mcpPort > 65535 {
			return fmt.Errorf("--port must be between 1 and 65535, got %d", mcpPort)
		}

		addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	},
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP listen host")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
