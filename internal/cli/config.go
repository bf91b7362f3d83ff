package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ConfigKeyDefaultBase is the viper/config key for the default base definition.
	ConfigKeyDefaultBase = "default_base"

	// ConfigKeyStrict is the viper/config key for strict resolution.
	ConfigKeyStrict = "strict"

	// EnvDefaultBase is the environment variable for the default base definition.
	EnvDefaultBase = "VUEC_BASE"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  `Get and set vuec CLI configuration values stored in ~/.vuec/config.yaml.`,
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.vuec/config.yaml.

Available keys:
  default-base    Definition file merged under every resolve when --base is not specified.
  strict          Treat merge warnings as errors by default (true/false).

Examples:
  vuec config set default-base ./base.yaml
  vuec config set strict true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			// Normalize key names: allow dashes in CLI, store with underscores
			viperKey := normalizeConfigKey(key)

			switch viperKey {
			case ConfigKeyDefaultBase, ConfigKeyStrict:
				// valid
			default:
				return fmt.Errorf("unknown configuration key %q\n\nAvailable keys:\n  default-base\n  strict", key)
			}

			viper.Set(viperKey, value)
			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value from ~/.vuec/config.yaml.

Examples:
  vuec config get default-base`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			viperKey := normalizeConfigKey(key)

			value := viper.GetString(viperKey)
			if value == "" {
				fmt.Printf("%s is not set\n", key)
			} else {
				fmt.Println(value)
			}
			return nil
		},
	}

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  `List all configuration values from ~/.vuec/config.yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := viper.GetString(ConfigKeyDefaultBase)
			strict := viper.GetBool(ConfigKeyStrict)

			fmt.Println("Configuration:")
			set := false
			if base != "" {
				fmt.Printf("  default-base = %s\n", base)
				set = true
			}
			if strict {
				fmt.Println("  strict = true")
				set = true
			}
			if !set {
				fmt.Println("  (no values set)")
			}

			return nil
		},
	}

	return cmd
}

// resolveBasePath resolves the base definition path from multiple sources.
//
// Precedence (highest to lowest):
//  1. --base/-b flag (explicit)
//  2. VUEC_BASE environment variable
//  3. default_base from ~/.vuec/config.yaml
//  4. Empty string, meaning no base
func resolveBasePath(flagValue string) string {
	// 1. Explicit flag
	if flagValue != "" {
		return flagValue
	}

	// 2. Environment variable
	if envVal := os.Getenv(EnvDefaultBase); envVal != "" {
		return envVal
	}

	// 3. Config file default
	return viper.GetString(ConfigKeyDefaultBase)
}

// writeConfig writes the current viper config to the config file.
func writeConfig() error {
	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir := filepath.Join(home, ".vuec")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(configDir, "config.yaml")
	}

	return viper.WriteConfigAs(configPath)
}

// normalizeConfigKey converts CLI-style keys (with dashes) to viper-style keys (with underscores).
func normalizeConfigKey(key string) string {
	switch key {
	case "default-base":
		return ConfigKeyDefaultBase
	default:
		return key
	}
}
