// Package cli implements the feedme command line interface using cobra.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
	"github.com/custodia-labs/feedme/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Services are the core services the commands drive.
type Services struct {
	Quantity   driving.QuantityService
	Grocery    driving.GroceryService
	Recipe     driving.RecipeService
	Ingredient driving.IngredientService
	Pantry     driving.PantryService
	Settings   driving.SettingsService
	Config     driven.ConfigStore
}

// Options are the global flag values passed to the bootstrap function.
type Options struct {
	ConfigDir string
	Ephemeral bool
}

// BootstrapFunc builds services for the given options. The returned close
// function releases storage and is called after the command finishes.
type BootstrapFunc func(opts Options) (*Services, func() error, error)

var (
	quantityService   driving.QuantityService
	groceryService    driving.GroceryService
	recipeService     driving.RecipeService
	ingredientService driving.IngredientService
	pantryService     driving.PantryService
	settingsService   driving.SettingsService
	configStore       driven.ConfigStore

	bootstrap    BootstrapFunc
	closeStorage func() error
)

var rootCmd = &cobra.Command{
	Use:   "feedme",
	Short: "Recipe quantities and grocery lists",
	Long: `feedme stores recipes, understands ingredient quantities like
"1 1/2 cups" or "½ tsp", and merges the ingredients of several recipes
into one grocery list with compatible amounts added together.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupServices,
	PersistentPostRunE: teardownServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show parsing and aggregation details")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.feedme)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep all data in memory for this run")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services before a
// command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	quantityService = s.Quantity
	groceryService = s.Grocery
	recipeService = s.Recipe
	ingredientService = s.Ingredient
	pantryService = s.Pantry
	settingsService = s.Settings
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || quantityService != nil {
		return nil
	}

	services, closer, err := bootstrap(Options{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	closeStorage = closer
	return nil
}

func teardownServices(_ *cobra.Command, _ []string) error {
	defer logger.Sync()
	if closeStorage == nil {
		return nil
	}
	err := closeStorage()
	closeStorage = nil
	return err
}

// out is where command results are written.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
