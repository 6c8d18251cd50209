package services

import (
	"fmt"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDatabaseDir    = "database.dir"
	KeyCustomUnits    = "units.custom"
	KeyGroceryWorkers = "grocery.workers"
	KeySubtractPantry = "grocery.subtract_pantry"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Database: domain.DatabaseSettings{
			Dir: s.getString(KeyDatabaseDir, defaults.Database.Dir),
		},
		Units: domain.UnitSettings{
			Custom: s.configStore.GetStringSlice(KeyCustomUnits),
		},
		Grocery: domain.GrocerySettings{
			Workers:        s.getInt(KeyGroceryWorkers, defaults.Grocery.Workers),
			SubtractPantry: s.getBool(KeySubtractPantry, defaults.Grocery.SubtractPantry),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if settings.Database.Dir != "" {
		if err := s.configStore.Set(KeyDatabaseDir, settings.Database.Dir); err != nil {
			return fmt.Errorf("save database dir: %w", err)
		}
	}
	if err := s.configStore.Set(KeyCustomUnits, settings.Units.Custom); err != nil {
		return fmt.Errorf("save custom units: %w", err)
	}
	if err := s.configStore.Set(KeyGroceryWorkers, settings.Grocery.Workers); err != nil {
		return fmt.Errorf("save grocery workers: %w", err)
	}
	if err := s.configStore.Set(KeySubtractPantry, settings.Grocery.SubtractPantry); err != nil {
		return fmt.Errorf("save subtract pantry: %w", err)
	}

	return s.configStore.Save()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
