// Package export renders the design tokens and type scale in formats other
// tools consume: JSON, YAML, CSS custom properties and Markdown.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/asteroid-belt/typekit/internal/hash"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/responsive"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSS      Format = "css"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSS, FormatMarkdown}
}

// ParseFormat resolves a format name. "yml" and "md" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q (want one of json, yaml, css, markdown)", s)
	}
}

// ScaleEntry is one type role's responsive ramp.
type ScaleEntry struct {
	Role    tokens.Role        `json:"role" yaml:"role"`
	Request responsive.Request `json:"request" yaml:"request"`
	CSS     string             `json:"css" yaml:"css"`
}

// Document is everything an export writes. Fingerprint changes with any
// exported value.
type Document struct {
	Tokens      []tokens.Token     `json:"tokens" yaml:"tokens"`
	Breakpoints tokens.Breakpoints `json:"breakpoints" yaml:"breakpoints"`
	Scale       []ScaleEntry       `json:"scale,omitempty" yaml:"scale,omitempty"`
	Fingerprint string             `json:"fingerprint" yaml:"fingerprint"`
}

// NewDocument collects toks and the full type scale over bp.
// The scale is omitted when toks was filtered to a non-font group.
func NewDocument(toks []tokens.Token, bp tokens.Breakpoints, withScale bool) (Document, error) {
	doc := Document{Tokens: toks, Breakpoints: bp}
	if !withScale {
		doc.Fingerprint = fingerprint(doc)
		return doc, nil
	}
	for _, role := range tokens.Roles() {
		req, err := tokens.ScaleFor(role, bp)
		if err != nil {
			return Document{}, err
		}
		css, err := req.CSSClamp(responsive.UnitRem)
		if err != nil {
			return Document{}, fmt.Errorf("build css clamp for %s: %w", role, err)
		}
		doc.Scale = append(doc.Scale, ScaleEntry{Role: role, Request: req, CSS: css})
	}
	doc.Fingerprint = fingerprint(doc)
	return doc, nil
}

func fingerprint(doc Document) string {
	lines := make([]string, 0, len(doc.Tokens)+len(doc.Scale)+1)
	lines = append(lines, fmt.Sprintf("breakpoints=%g..%g", doc.Breakpoints.Smallest, doc.Breakpoints.Largest))
	for _, t := range doc.Tokens {
		lines = append(lines, t.Key()+"="+t.String())
	}
	for _, s := range doc.Scale {
		lines = append(lines, "font."+string(s.Role)+"="+s.CSS)
	}
	return hash.Fingerprint(lines...)
}

// Write renders doc to w in format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSS:
		_, err := io.WriteString(w, CSS(doc))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

// CSS renders doc as custom properties on :root.
func CSS(doc Document) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range doc.Tokens {
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", t.Group, t.Name, t.String())
	}
	if len(doc.Scale) > 0 {
		if len(doc.Tokens) > 0 {
			b.WriteString("\n")
		}
		for _, s := range doc.Scale {
			fmt.Fprintf(&b, "  --font-%s: %s;\n", s.Role, s.CSS)
		}
	}
	b.WriteString("}\n")
	if doc.Fingerprint != "" {
		fmt.Fprintf(&b, "/* fingerprint: %s */\n", doc.Fingerprint)
	}
	return b.String()
}

// Markdown renders doc as one table per group plus the type scale.
func Markdown(doc Document) string {
	var b strings.Builder
	b.WriteString("# Design tokens\n")

	var current tokens.Group
	for _, t := range doc.Tokens {
		if t.Group != current {
			current = t.Group
			fmt.Fprintf(&b, "\n## %s\n\n| Token | Value |\n| --- | --- |\n", current)
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", t.Name, t.String())
	}

	if len(doc.Scale) > 0 {
		fmt.Fprintf(&b, "\n## Type scale (%gpx to %gpx)\n\n", doc.Breakpoints.Smallest, doc.Breakpoints.Largest)
		b.WriteString("| Role | Smallest | Largest | CSS |\n| --- | --- | --- | --- |\n")
		for _, s := range doc.Scale {
			fmt.Fprintf(&b, "| %s | %gpx | %gpx | `%s` |\n", s.Role, s.Request.Smallest, s.Request.Largest, s.CSS)
		}
	}
	if doc.Fingerprint != "" {
		fmt.Fprintf(&b, "\nFingerprint: `%s`\n", doc.Fingerprint)
	}
	return b.String()
}
