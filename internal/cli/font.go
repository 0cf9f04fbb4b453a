package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/asteroid-belt/typekit/internal/log"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/responsive"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

var (
	fontSmallest float64
	fontLargest  float64
	fontMinWidth float64
	fontMaxWidth float64
	fontRole     string
	fontCSS      bool
	fontJSON     bool
	fontCopy     bool
)

var fontCmd = &cobra.Command{
	Use:   "font <width>",
	Short: "Compute a responsive font size for a viewport width",
	Long: `Compute the font size for a viewport width.

The size is pinned to --smallest at or below the smallest breakpoint, to
--largest at or above the largest breakpoint, and scales linearly in between.
Breakpoints default to the configured ones (360px and 1440px out of the box).

Use --role to take the sizes from the type scale instead.

Examples:
  typekit font 900 --smallest 14 --largest 32      # 23
  typekit font 1024 --role headline --css
  typekit font 800 --smallest 14 --largest 24 --min-width 500 --max-width 1200`,
	Args: cobra.ExactArgs(1),
	RunE: runFont,
}

func init() {
	fontCmd.Flags().Float64Var(&fontSmallest, "smallest", 0, "font size at or below the smallest breakpoint")
	fontCmd.Flags().Float64Var(&fontLargest, "largest", 0, "font size at or above the largest breakpoint")
	fontCmd.Flags().Float64Var(&fontMinWidth, "min-width", 0, "smallest breakpoint in px (default from config)")
	fontCmd.Flags().Float64Var(&fontMaxWidth, "max-width", 0, "largest breakpoint in px (default from config)")
	fontCmd.Flags().StringVar(&fontRole, "role", "", "take sizes from the type scale role (display, headline, title, body, label, caption)")
	fontCmd.Flags().BoolVar(&fontCSS, "css", false, "also print the equivalent CSS clamp() expression")
	fontCmd.Flags().BoolVar(&fontJSON, "json", false, "print the result as JSON")
	fontCmd.Flags().BoolVar(&fontCopy, "copy", false, "copy the result to the clipboard")
}

// fontResult is the JSON shape of a font computation.
type fontResult struct {
	Width   float64            `json:"width"`
	Size    float64            `json:"size"`
	Clamped bool               `json:"clamped"`
	Request responsive.Request `json:"request"`
	CSS     string             `json:"css,omitempty"`
}

func runFont(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("font")
	if err != nil {
		return err
	}

	width, err := parseWidth(args[0])
	if err != nil {
		return trackCLIError("font", err)
	}

	req, err := buildFontRequest(cmd, cfg.Breakpoints)
	if err != nil {
		return trackCLIError("font", err)
	}

	size, err := responsive.Compute(width, req)
	if err != nil {
		return trackCLIError("font", err)
	}

	result := fontResult{
		Width:   width,
		Size:    size,
		Clamped: width <= req.SmallestScreenSize || width >= req.LargestScreenSize,
		Request: req,
	}
	if fontCSS || fontJSON {
		css, err := req.CSSClamp(responsive.UnitRem)
		switch {
		case err == nil:
			result.CSS = css
		case fontCSS:
			return trackCLIError("font", err)
		}
	}

	telemetryClient.TrackFontSizeComputed("cli", result.Clamped)
	log.Printf("font width=%g request=%+v size=%g\n", width, req, size)

	out := cmd.OutOrStdout()
	if fontJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return trackCLIError("font", err)
		}
	} else {
		fmt.Fprintf(out, "%g\n", size)
		if fontCSS {
			fmt.Fprintf(out, "%s\n", result.CSS)
		}
	}

	if fontCopy {
		if err := copyToClipboard(fmt.Sprintf("%gpx", size)); err != nil {
			return trackCLIError("font", fmt.Errorf("copy to clipboard: %w", err))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	}
	return nil
}

// buildFontRequest assembles the request from --role or --smallest/--largest,
// with breakpoints from the flags when set and from bp otherwise.
func buildFontRequest(cmd *cobra.Command, bp tokens.Breakpoints) (responsive.Request, error) {
	flags := cmd.Flags()
	if flags.Changed("min-width") {
		bp.Smallest = fontMinWidth
	}
	if flags.Changed("max-width") {
		bp.Largest = fontMaxWidth
	}

	for _, name := range []string{"smallest", "largest", "min-width", "max-width"} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return responsive.Request{}, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return responsive.Request{}, fmt.Errorf("invalid --%s %g: must be a finite number", name, v)
		}
	}

	var req responsive.Request
	switch {
	case fontRole != "":
		role, err := tokens.ParseRole(fontRole)
		if err != nil {
			return req, err
		}
		req, err = tokens.ScaleFor(role, bp)
		if err != nil {
			return req, err
		}
		if flags.Changed("smallest") {
			req.Smallest = fontSmallest
		}
		if flags.Changed("largest") {
			req.Largest = fontLargest
		}
	case flags.Changed("smallest") && flags.Changed("largest"):
		req = responsive.Request{
			Smallest:           fontSmallest,
			Largest:            fontLargest,
			SmallestScreenSize: bp.Smallest,
			LargestScreenSize:  bp.Largest,
		}
	default:
		return req, errors.New("either --role or both --smallest and --largest are required")
	}
	return req, nil
}
