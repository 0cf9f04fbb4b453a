package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// maxScaleRows bounds the width sweep.
const maxScaleRows = 200

var (
	scaleFrom float64
	scaleTo   float64
	scaleStep float64
	scaleJSON bool
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show the type scale over a range of viewport widths",
	Long: `Print the resolved size of every type role for a sweep of viewport widths.

Examples:
  typekit scale
  typekit scale --from 320 --to 1920 --step 160
  typekit scale --json`,
	Args: cobra.NoArgs,
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().Float64Var(&scaleFrom, "from", 320, "first viewport width in px")
	scaleCmd.Flags().Float64Var(&scaleTo, "to", 1600, "last viewport width in px")
	scaleCmd.Flags().Float64Var(&scaleStep, "step", 160, "width increment in px")
	scaleCmd.Flags().BoolVar(&scaleJSON, "json", false, "print the sweep as JSON")
}

// scaleRow is one viewport width of the sweep.
type scaleRow struct {
	Width float64               `json:"width"`
	Fonts []tokens.ResolvedFont `json:"fonts"`
}

func runScale(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("scale")
	if err != nil {
		return err
	}

	widths, err := sweep(scaleFrom, scaleTo, scaleStep)
	if err != nil {
		return trackCLIError("scale", err)
	}

	rows := make([]scaleRow, 0, len(widths))
	for _, w := range widths {
		fonts, err := tokens.ResolveAll(w, cfg.Breakpoints)
		if err != nil {
			return trackCLIError("scale", err)
		}
		rows = append(rows, scaleRow{Width: w, Fonts: fonts})
	}

	out := cmd.OutOrStdout()
	if scaleJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintln(out, renderScaleTable(rows, cfg.Breakpoints))
	return nil
}

// sweep returns from, from+step, ... up to and including to.
func sweep(from, to, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, errors.New("invalid --step: must be positive")
	}
	if to < from {
		return nil, fmt.Errorf("invalid range: --to %g is below --from %g", to, from)
	}
	var widths []float64
	for i := 0; ; i++ {
		w := from + float64(i)*step
		if w > to {
			break
		}
		if len(widths) == maxScaleRows {
			return nil, fmt.Errorf("invalid range: more than %d widths, increase --step", maxScaleRows)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

func renderScaleTable(rows []scaleRow, bp tokens.Breakpoints) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	pinnedStyle := cellStyle.Faint(true)

	headers := []string{"width"}
	for _, role := range tokens.Roles() {
		headers = append(headers, string(role))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) {
				w := rows[row].Width
				if w <= bp.Smallest || w >= bp.Largest {
					return pinnedStyle
				}
			}
			return cellStyle
		})

	for _, r := range rows {
		cells := []string{formatPx(r.Width)}
		for _, f := range r.Fonts {
			cells = append(cells, strconv.FormatFloat(f.Size, 'f', 2, 64))
		}
		t.Row(cells...)
	}
	return t.Render()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
