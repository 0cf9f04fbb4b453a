package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/responsive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestDocument(t *testing.T) Document {
	t.Helper()
	doc, err := NewDocument(tokens.All(), tokens.DefaultBreakpoints(), true)
	require.NoError(t, err)
	return doc
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"css", FormatCSS},
		{"md", FormatMarkdown},
		{" markdown ", FormatMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestNewDocument_Scale(t *testing.T) {
	doc := newTestDocument(t)

	require.Len(t, doc.Scale, len(tokens.Roles()))
	assert.Equal(t, tokens.RoleDisplay, doc.Scale[0].Role)
	assert.Equal(t, "clamp(2rem, 1.6667rem + 1.4815vw, 3rem)", doc.Scale[0].CSS)
}

func TestNewDocument_InvalidBreakpoints(t *testing.T) {
	_, err := NewDocument(nil, tokens.Breakpoints{Smallest: 600, Largest: 600}, true)
	assert.Error(t, err)
}

func TestNewDocument_DescendingBreakpoints(t *testing.T) {
	_, err := NewDocument(tokens.All(), tokens.Breakpoints{Smallest: 1440, Largest: 360}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, responsive.ErrInvalidRange)

	// Without the type scale there is no clamp() to render.
	doc, err := NewDocument(tokens.All(), tokens.Breakpoints{Smallest: 1440, Largest: 360}, false)
	require.NoError(t, err)
	assert.Empty(t, doc.Scale)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, newTestDocument(t)))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Tokens, len(tokens.All()))
	assert.Equal(t, 360.0, decoded.Breakpoints.Smallest)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, newTestDocument(t)))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "tokens")
	assert.Contains(t, decoded, "scale")
	assert.Contains(t, buf.String(), "name: md")
}

func TestWrite_CSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSS, newTestDocument(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "  --space-md: 12px;\n")
	assert.Contains(t, out, "  --duration-normal: 250ms;\n")
	assert.Contains(t, out, "  --font-body: clamp(")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWrite_CSSWithoutScale(t *testing.T) {
	toks, err := tokens.ByGroup(tokens.GroupRadius)
	require.NoError(t, err)
	doc, err := NewDocument(toks, tokens.DefaultBreakpoints(), false)
	require.NoError(t, err)

	out := CSS(doc)
	assert.NotContains(t, out, "--font-")
	assert.Contains(t, out, "--radius-full: 999px;")
}

func TestWrite_Markdown(t *testing.T) {
	out := Markdown(newTestDocument(t))

	assert.Contains(t, out, "## size\n")
	assert.Contains(t, out, "| `md` | 12px |")
	assert.Contains(t, out, "## Type scale (360px to 1440px)")
	assert.Contains(t, out, "| body | 14px | 16px |")
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("xml"), Document{}))
}

func TestRenderTerminal_FallsBackToContent(t *testing.T) {
	out := RenderTerminal("# Title\n\nbody text", 0)
	assert.Contains(t, out, "body text")
}

func TestNewDocument_Fingerprint(t *testing.T) {
	doc := newTestDocument(t)
	assert.Len(t, doc.Fingerprint, 16)
	assert.Equal(t, doc.Fingerprint, newTestDocument(t).Fingerprint)

	moved, err := NewDocument(tokens.All(), tokens.Breakpoints{Smallest: 320, Largest: 1440}, true)
	require.NoError(t, err)
	assert.NotEqual(t, doc.Fingerprint, moved.Fingerprint)

	space, err := tokens.ByGroup(tokens.GroupSpace)
	require.NoError(t, err)
	partial, err := NewDocument(space, tokens.DefaultBreakpoints(), false)
	require.NoError(t, err)
	assert.NotEqual(t, doc.Fingerprint, partial.Fingerprint)

	assert.Contains(t, CSS(doc), "/* fingerprint: "+doc.Fingerprint+" */\n")
	assert.Contains(t, Markdown(doc), "Fingerprint: `"+doc.Fingerprint+"`")
}
