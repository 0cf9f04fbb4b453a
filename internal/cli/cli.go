// Package cli provides the command-line interface for typekit.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/asteroid-belt/typekit/internal/config"
	"github.com/asteroid-belt/typekit/internal/log"
	"github.com/asteroid-belt/typekit/internal/telemetry"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/responsive"
	"github.com/asteroid-belt/typekit/pkg/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var telemetryClient telemetry.Client = telemetry.Noop()

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "typekit",
	Short: "Design tokens and responsive type scales",
	Long: `Design tokens and responsive type scales

typekit ships the size, spacing, radius, duration and font-size tables of the
design system, and computes font sizes that scale linearly with the viewport
width between two breakpoints (360px and 1440px by default).

Run without arguments to launch the interactive demo.

Configuration:
  $XDG_CONFIG_HOME/typekit/config.yaml, overridden by
  TYPEKIT_SMALLEST_SCREEN, TYPEKIT_LARGEST_SCREEN and TYPEKIT_THEME.

Telemetry:
  Anonymous usage telemetry never includes the values you compute.
  Opt-out with:
  	TYPEKIT_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runDemo,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "typekit" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}
	},
}

func init() {
	rootCmd.AddCommand(fontCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.Noop()
	}
	telemetryClient = tc
	defer func() { _ = log.Close() }()

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "typekit" {
		telemetryClient.TrackAppExited("cli", time.Since(commandStartTime).Milliseconds())
	}

	return err
}

// loadConfig loads the configuration and starts file logging.
// Console output stays reserved for command results.
func loadConfig(cmdName string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, trackCLIError(cmdName, fmt.Errorf("load config: %w", err))
	}
	if err := log.Init(config.GetPaths(cfg).Logs, log.WithoutConsole()); err != nil {
		// Logging is best-effort; commands still work without it.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return cfg, nil
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	log.Errorf("%s: %v", cmdName, err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	var numErr *strconv.NumError
	switch {
	case errors.Is(err, responsive.ErrInvalidRange):
		return "configuration_error"
	case errors.Is(err, tokens.ErrUnknownGroup), errors.Is(err, tokens.ErrUnknownToken):
		return "not_found_error"
	case errors.As(err, &numErr):
		return "validation_error"
	}

	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "invalid", "parse", "format", "required"):
		return "validation_error"
	case containsAny(errStr, "not found", "unknown"):
		return "not_found_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// parseWidth parses a viewport width argument.
func parseWidth(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q: %w", s, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("invalid width %q: must be a finite number", s)
	}
	return w, nil
}
