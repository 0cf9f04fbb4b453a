package cli

import (
	"fmt"

	"github.com/asteroid-belt/typekit/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and environment
variables have been applied, along with the paths typekit uses.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("config")
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return trackCLIError("config", fmt.Errorf("encode config: %w", err))
	}

	paths := config.GetPaths(cfg)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))
	fmt.Fprintf(out, "\n# config file: %s", paths.Config)
	if cfg.ConfigFile == "" {
		fmt.Fprint(out, " (not found, using defaults)")
	}
	fmt.Fprintf(out, "\n# logs: %s\n", paths.Logs)
	return nil
}
