package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokensURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    tokens.Group
		wantErr bool
	}{
		{"typekit://tokens/space", tokens.GroupSpace, false},
		{"typekit://tokens/font-desktop", tokens.GroupFontDesktop, false},
		{"typekit://tokens/", "", true},
		{"typekit://tokens/shadow", "", true},
		{"other://tokens/space", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := parseTokensURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleTokensResource(t *testing.T) {
	s := newTestServer(t)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "typekit://tokens/radius"

	contents, err := s.handleTokensResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)

	var toks []tokens.Token
	require.NoError(t, json.Unmarshal([]byte(text.Text), &toks))
	assert.Len(t, toks, 8)
}
