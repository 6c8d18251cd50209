// Command feedme stores recipes and turns them into grocery lists.
//
// Usage:
//
//	feedme [--verbose] [--config-dir DIR] [--ephemeral] <command>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/feedme/internal/adapters/driven/config/file"
	"github.com/custodia-labs/feedme/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/feedme/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/feedme/internal/adapters/driving/cli"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/services"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// stores are the persistence ports the services run on.
type stores struct {
	ingredients driven.IngredientStore
	recipes     driven.RecipeStore
	pantry      driven.PantryStore
	close       func() error
}

// bootstrap wires configuration, storage and services for one command.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	config, err := openConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	settingsService := services.NewSettingsService(config)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration in %s: %w", config.Path(), err)
	}

	catalog, err := measure.NewCatalog(settings.CustomUnits()...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid units.custom: %w", err)
	}

	dataDir := settings.Database.Dir
	if dataDir == "" && opts.ConfigDir != "" {
		dataDir = filepath.Join(opts.ConfigDir, "data")
	}
	st, err := openStores(dataDir, opts.Ephemeral)
	if err != nil {
		return nil, nil, err
	}

	grocery := services.NewGroceryService(st.recipes, st.pantry, catalog)
	grocery.SetWorkers(settings.Grocery.Workers)

	logger.Debug("bootstrap: config=%s ephemeral=%v workers=%d custom units=%d",
		config.Path(), opts.Ephemeral, settings.Grocery.Workers, len(settings.Units.Custom))

	return &cli.Services{
		Quantity:   services.NewQuantityService(catalog),
		Grocery:    grocery,
		Recipe:     services.NewRecipeService(st.recipes, catalog),
		Ingredient: services.NewIngredientService(st.ingredients),
		Pantry:     services.NewPantryService(st.pantry, catalog),
		Settings:   settingsService,
		Config:     config,
	}, st.close, nil
}

func openConfig(opts cli.Options) (driven.ConfigStore, error) {
	if opts.Ephemeral {
		return memory.NewConfigStore(), nil
	}
	config, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	return config, nil
}

func openStores(dataDir string, ephemeral bool) (*stores, error) {
	if ephemeral {
		ingredients := memory.NewIngredientStore()
		return &stores{
			ingredients: ingredients,
			recipes:     memory.NewRecipeStore(ingredients),
			pantry:      memory.NewPantryStore(ingredients),
			close:       func() error { return nil },
		}, nil
	}

	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &stores{
		ingredients: db.IngredientStore(),
		recipes:     db.RecipeStore(),
		pantry:      db.PantryStore(),
		close:       db.Close,
	}, nil
}
