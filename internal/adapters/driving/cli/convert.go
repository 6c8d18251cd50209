package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [quantity] [unit]",
	Short: "Convert a quantity to another unit",
	Long: `Convert a quantity to another unit of the same family.

Volume and weight do not convert into each other, and custom units such as
"pinch" or "clove" only convert to themselves.

Examples:
  feedme convert "1 cup" ml
  feedme convert "2 lb" kg`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if quantityService == nil {
		return errors.New("quantity service not configured")
	}

	q := quantityService.ParseQuantity(args[0])
	converted, err := quantityService.Convert(q, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(out(cmd), "%s = %s\n", q.Display(), converted.Display())
	return nil
}
