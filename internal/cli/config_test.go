package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewConfigCmd(t *testing.T) {
	cmd := newConfigCmd()

	if cmd.Use != "config" {
		t.Errorf("expected use 'config', got '%s'", cmd.Use)
	}

	// Check that subcommands are registered
	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Use] = true
	}

	expectedCommands := []string{
		"set <key> <value>",
		"get <key>",
		"list",
	}

	for _, expected := range expectedCommands {
		if !subcommands[expected] {
			t.Errorf("expected subcommand '%s' not found", expected)
		}
	}
}

func TestNormalizeConfigKey(t *testing.T) {
	if got := normalizeConfigKey("default-base"); got != ConfigKeyDefaultBase {
		t.Errorf("expected '%s', got '%s'", ConfigKeyDefaultBase, got)
	}
	if got := normalizeConfigKey("strict"); got != ConfigKeyStrict {
		t.Errorf("expected '%s', got '%s'", ConfigKeyStrict, got)
	}
	if got := normalizeConfigKey("unknown-key"); got != "unknown-key" {
		t.Errorf("unknown keys pass through, got '%s'", got)
	}
}

func TestConfigSetCmd_UnknownKey(t *testing.T) {
	cmd := newConfigSetCmd()
	cmd.SetArgs([]string{"not-a-key", "value"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown configuration key")
	}
}

func TestResolveBasePath_FlagWins(t *testing.T) {
	t.Setenv(EnvDefaultBase, "/from/env.yaml")

	if got := resolveBasePath("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("expected flag value to win, got '%s'", got)
	}
}

func TestResolveBasePath_EnvBeatsConfig(t *testing.T) {
	t.Setenv(EnvDefaultBase, "/from/env.yaml")
	viper.Set(ConfigKeyDefaultBase, "/from/config.yaml")
	t.Cleanup(func() { viper.Set(ConfigKeyDefaultBase, "") })

	if got := resolveBasePath(""); got != "/from/env.yaml" {
		t.Errorf("expected env value to win, got '%s'", got)
	}
}

func TestResolveBasePath_ConfigFallback(t *testing.T) {
	viper.Set(ConfigKeyDefaultBase, "/from/config.yaml")
	t.Cleanup(func() { viper.Set(ConfigKeyDefaultBase, "") })

	if got := resolveBasePath(""); got != "/from/config.yaml" {
		t.Errorf("expected config value, got '%s'", got)
	}
}

func TestResolveBasePath_Unset(t *testing.T) {
	if got := resolveBasePath(""); got != "" {
		t.Errorf("expected empty path when nothing is set, got '%s'", got)
	}
}
