package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	yamlv4 "go.yaml.in/yaml/v4"

	"github.com/gmarciani/cliwizard/internal/config"
)

func ConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted cliwizard defaults",
	}

	store := config.DefaultStore()
	cmd.PersistentFlags().String("config-dir", "", "Directory holding the persisted configuration")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if dir, _ := cmd.Flags().GetString("config-dir"); dir != "" {
			*store = *config.NewStore(dir)
		}
	}

	cmd.AddCommand(
		configGetCmd(store),
		configSetCmd(store),
		configUnsetCmd(store),
		configShowCmd(store),
		configResetCmd(store),
	)

	return cmd
}

func configGetCmd(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.IsKnownKey(key) {
				return fmt.Errorf("unknown configuration key: %s", key)
			}
			return printJSON(cmd, map[string]any{
				"key":   key,
				"value": store.Load()[key],
			})
		},
	}
}

func configSetCmd(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.IsKnownKey(key) {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			// Values are parsed as YAML scalars so booleans and numbers
			// keep their types.
			var value any
			if err := yamlv4.Unmarshal([]byte(args[1]), &value); err != nil {
				value = args[1]
			}

			oldValue := store.Load()[key]

			overrides := store.Overrides()
			overrides[key] = value

			merged := store.Load()
			merged[key] = value
			if _, err := config.FromMap(config.ExpandRefs(merged)); err != nil {
				return fmt.Errorf("rejected value for %s: %w", key, err)
			}

			if err := store.Save(overrides); err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"key":      key,
				"value":    value,
				"oldValue": oldValue,
			})
		},
	}
}

func configUnsetCmd(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Revert one configuration value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.IsKnownKey(key) {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			oldValue := store.Load()[key]

			overrides := store.Overrides()
			delete(overrides, key)
			if err := store.Save(overrides); err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"key":      key,
				"value":    config.DefaultsMap()[key],
				"oldValue": oldValue,
			})
		},
	}
}

func configShowCmd(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the full configuration, defaults included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, store.Load())
		},
	}
}

func configResetCmd(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every persisted value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.Reset()
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
