package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [quantity]",
	Short: "Parse a quantity",
	Long: `Parse free-form quantity text and show how it was understood.

Examples:
  feedme parse "1 1/2 cups"
  feedme parse ½ tsp
  feedme parse "a pinch"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the parsed quantity as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if quantityService == nil {
		return errors.New("quantity service not configured")
	}

	q := quantityService.ParseQuantity(strings.Join(args, " "))

	if parseJSON {
		data, err := json.MarshalIndent(q, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal quantity: %w", err)
		}
		fmt.Fprintln(out(cmd), string(data))
		return nil
	}

	fmt.Fprintln(out(cmd), describeQuantity(q))
	return nil
}

// describeQuantity renders a parse result on one line.
func describeQuantity(q domain.Quantity) string {
	if !q.IsResolved() {
		if q.Amount > 0 {
			return fmt.Sprintf("unrecognised unit: %q (amount %s)", q.Raw, domain.FormatAmount(q.Amount))
		}
		return fmt.Sprintf("unrecognised: %q", q.Raw)
	}
	return fmt.Sprintf("%s (%s)", q.String(), q.Unit.Family)
}
