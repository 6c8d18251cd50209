package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/services"
	"github.com/custodia-labs/feedme/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Read and write values in the feedme configuration file.

Known keys:
  database.dir             directory holding feedme.db
  units.custom             extra custom unit symbols, e.g. "scoop,knob"
  grocery.workers          parallel aggregation workers (0 = sequential)
  grocery.subtract_pantry  subtract pantry amounts by default`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("config key %q is not set", args[0])
	}

	if list, isList := value.([]any); isList {
		parts := make([]string, len(list))
		for i, v := range list {
			parts[i] = fmt.Sprint(v)
		}
		value = strings.Join(parts, ",")
	} else if list, isList := value.([]string); isList {
		value = strings.Join(list, ",")
	}

	fmt.Fprintf(out(cmd), "%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	value, err := configValue(key, args[1])
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	logger.Debug("config: %s = %#v", key, value)
	fmt.Fprintf(out(cmd), "%s = %v\n", key, args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	path := configStore.Path()
	if path == "" {
		path = "(in memory)"
	}
	fmt.Fprintln(out(cmd), path)
	return nil
}

// configValue converts a command line value into the type stored under key.
// Unknown keys accept any TOML literal and fall back to a plain string.
func configValue(key, raw string) (any, error) {
	switch key {
	case services.KeyDatabaseDir:
		return raw, nil

	case services.KeyCustomUnits:
		var symbols []string
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
		return symbols, nil

	case services.KeyGroceryWorkers:
		n, ok := parseTOMLValue(raw).(int64)
		if !ok || n < 0 || n > domain.MaxGroceryWorkers {
			return nil, fmt.Errorf("%s must be a whole number between 0 and %d", key, domain.MaxGroceryWorkers)
		}
		return n, nil

	case services.KeySubtractPantry:
		b, ok := parseTOMLValue(raw).(bool)
		if !ok {
			return nil, fmt.Errorf("%s must be true or false", key)
		}
		return b, nil
	}

	return parseTOMLValue(raw), nil
}

func parseTOMLValue(raw string) any {
	var doc map[string]any
	if err := toml.Unmarshal([]byte("v = "+raw), &doc); err != nil {
		return raw
	}
	return doc["v"]
}
