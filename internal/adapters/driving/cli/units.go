package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List known units",
	Long:  `List every registered unit grouped by family, with its size in the family base unit.`,
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

var familyOrder = []domain.UnitFamily{
	domain.FamilyVolume,
	domain.FamilyWeight,
	domain.FamilyCount,
	domain.FamilyCustom,
}

func runUnits(cmd *cobra.Command, _ []string) error {
	if quantityService == nil {
		return errors.New("quantity service not configured")
	}

	byFamily := make(map[domain.UnitFamily][]domain.Unit)
	for _, u := range quantityService.Units() {
		byFamily[u.Family] = append(byFamily[u.Family], u)
	}

	w := out(cmd)
	for i, family := range familyOrder {
		units := byFamily[family]
		if len(units) == 0 {
			continue
		}
		sort.SliceStable(units, func(a, b int) bool {
			return units[a].FactorToBase < units[b].FactorToBase
		})

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", family)
		for _, u := range units {
			if family.Convertible() {
				fmt.Fprintf(w, "  %-8s %s\n", u.Symbol, domain.FormatAmount(u.FactorToBase))
			} else {
				fmt.Fprintf(w, "  %s\n", u.Symbol)
			}
		}
	}
	return nil
}
