package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/xonix/internal/config"
	"github.com/vovakirdan/xonix/internal/games/xonix"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rules as YAML",
	Long: `Load the rules the way a game would (--config, then ~/.xonix/configs,
then ./configs, then built-in defaults), apply --difficulty and print the
result. The output is a valid rules file.

Examples:
  xonix rules
  xonix rules --difficulty hard > ~/.xonix/configs/xonix.yaml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadXonix(flagConfig)
	if err != nil {
		return err
	}
	if difficulty != "" {
		config.ApplyXonixPreset(&cfg, difficulty)
	}
	if err := xonix.RulesFromConfig(cfg).Validate(); err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
