package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/asteroid-belt/typekit/internal/export"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens [group]",
	Short: "List or export design tokens",
	Long: `List the design tokens, optionally limited to one group, or export them.

Groups: size, space, radius, duration, font-mobile, font-tablet, font-desktop.

Formats:
  json       tokens and type scale as JSON
  yaml       tokens and type scale as YAML
  css        :root custom properties, with a clamp() per type role
  markdown   reference tables (rendered when printing to a terminal)

Examples:
  typekit tokens
  typekit tokens space
  typekit tokens --format css > tokens.css`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "", "export format: json, yaml, css, markdown")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("tokens")
	if err != nil {
		return err
	}

	toks := tokens.All()
	withScale := true
	if len(args) == 1 {
		group, err := tokens.ParseGroup(args[0])
		if err != nil {
			return trackCLIError("tokens", err)
		}
		toks, err = tokens.ByGroup(group)
		if err != nil {
			return trackCLIError("tokens", err)
		}
		withScale = isFontGroup(group)
	}

	out := cmd.OutOrStdout()
	if tokensFormat == "" {
		fmt.Fprintln(out, renderTokenTable(toks))
		return nil
	}

	format, err := export.ParseFormat(tokensFormat)
	if err != nil {
		return trackCLIError("tokens", err)
	}
	doc, err := export.NewDocument(toks, cfg.Breakpoints, withScale)
	if err != nil {
		return trackCLIError("tokens", err)
	}

	if width, ok := terminalWidth(out); format == export.FormatMarkdown && ok {
		_, err = io.WriteString(out, export.RenderTerminal(export.Markdown(doc), width))
	} else {
		err = export.Write(out, format, doc)
	}
	if err != nil {
		return trackCLIError("tokens", fmt.Errorf("write %s: %w", format, err))
	}

	telemetryClient.TrackTokensExported(string(format), len(toks))
	return nil
}

func isFontGroup(g tokens.Group) bool {
	switch g {
	case tokens.GroupFontMobile, tokens.GroupFontTablet, tokens.GroupFontDesktop:
		return true
	}
	return false
}

// terminalWidth reports the column count of w when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}

func renderTokenTable(toks []tokens.Token) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("group", "token", "value").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, tok := range toks {
		t.Row(string(tok.Group), tok.Name, tok.String())
	}
	return t.Render()
}
