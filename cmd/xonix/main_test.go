package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/xonix/internal/config"
)

func TestRulesCommandAppliesDifficulty(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"rules", "--difficulty", "hard", "--config", ""})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var cfg config.XonixConfig
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.EnemiesOutside != 5 || cfg.Gameplay.AreaToWin != 85 {
		t.Errorf("hard rules = %+v", cfg.Gameplay)
	}
}

func TestModeArg(t *testing.T) {
	if got := modeArg(nil); got != "xonix" {
		t.Errorf("modeArg(nil) = %q, want xonix", got)
	}
	if got := modeArg([]string{"xonix_siege"}); got != "xonix_siege" {
		t.Errorf("modeArg() = %q, want xonix_siege", got)
	}
}
