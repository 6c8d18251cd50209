package domain

import "fmt"

// DatabaseSettings configures SQLite storage.
type DatabaseSettings struct {
	// Dir is the data directory. Empty means ~/.feedme/data.
	Dir string
}

// UnitSettings configures the unit catalog.
type UnitSettings struct {
	// Custom lists extra custom unit symbols, e.g. "scoop".
	Custom []string
}

// GrocerySettings configures grocery list generation.
type GrocerySettings struct {
	// Workers is the number of aggregation workers. 0 or 1 is sequential.
	Workers int

	// SubtractPantry is the default for pantry subtraction.
	SubtractPantry bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Database DatabaseSettings
	Units    UnitSettings
	Grocery  GrocerySettings
}

// MaxGroceryWorkers bounds the aggregation worker pool.
const MaxGroceryWorkers = 64

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Grocery: GrocerySettings{
			Workers: 0,
		},
	}
}

// Validate checks that settings are usable.
func (s AppSettings) Validate() error {
	if s.Grocery.Workers < 0 || s.Grocery.Workers > MaxGroceryWorkers {
		return fmt.Errorf("grocery.workers must be between 0 and %d: %w", MaxGroceryWorkers, ErrInvalidInput)
	}
	for _, symbol := range s.Units.Custom {
		if symbol == "" {
			return fmt.Errorf("units.custom contains an empty symbol: %w", ErrInvalidInput)
		}
	}
	return nil
}

// CustomUnits returns the configured custom units.
func (s AppSettings) CustomUnits() []Unit {
	units := make([]Unit, 0, len(s.Units.Custom))
	for _, symbol := range s.Units.Custom {
		units = append(units, Unit{Symbol: symbol, Family: FamilyCustom})
	}
	return units
}
