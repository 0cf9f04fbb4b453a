package cli

import (
	"os"

	"github.com/asteroid-belt/typekit/internal/log"
	"github.com/asteroid-belt/typekit/internal/tui"
	"github.com/asteroid-belt/typekit/internal/tui/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var demoTheme string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive token showcase",
	Long: `Launch the interactive showcase of the design tokens.

The terminal width stands in for the viewport width (8px per column), so
resizing the terminal moves the type scale between its breakpoints. Use the
arrow keys to set a width manually and t to cycle themes.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoTheme, "theme", "", "color theme: punk, neon, blood (default from config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("demo")
	if err != nil {
		return err
	}

	name := cfg.Theme
	if demoTheme != "" {
		name = demoTheme
	}
	th, err := theme.Get(name)
	if err != nil {
		return trackCLIError("demo", err)
	}

	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	telemetryClient.TrackDemoStarted(th.Name, width)

	model := tui.New(cfg.Breakpoints, th)
	model.OnThemeChange = func(t theme.Theme) {
		log.Printf("demo theme changed to %s\n", t.Name)
	}

	if err := tui.Run(cmd.Context(), model); err != nil {
		return trackCLIError("demo", err)
	}
	return nil
}
