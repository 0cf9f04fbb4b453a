package mcp

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/asteroid-belt/typekit/internal/config"
	"github.com/asteroid-belt/typekit/internal/telemetry"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.DefaultConfig(), telemetry.Noop())
}

func callTool(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer(nil, nil)
	require.NotNil(t, s.server)
	assert.Equal(t, 360.0, s.cfg.Breakpoints.Smallest)
}

func TestHandleFontSize(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	t.Run("interpolates between breakpoints", func(t *testing.T) {
		result, err := s.handleFontSize(ctx, callTool(map[string]any{
			"width":    float64(900),
			"smallest": float64(14),
			"largest":  float64(32),
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var resp FontSizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, 23.0, resp.Size)
		assert.False(t, resp.Clamped)
		assert.Equal(t, "clamp(0.875rem, 0.5rem + 1.6667vw, 2rem)", resp.CSS)
	})

	t.Run("reverse scale", func(t *testing.T) {
		result, err := s.handleFontSize(ctx, callTool(map[string]any{
			"width":    float64(900),
			"smallest": float64(32),
			"largest":  float64(14),
		}))
		require.NoError(t, err)

		var resp FontSizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, 23.0, resp.Size)
	})

	t.Run("custom breakpoints", func(t *testing.T) {
		result, err := s.handleFontSize(ctx, callTool(map[string]any{
			"width":     float64(100),
			"smallest":  float64(14),
			"largest":   float64(24),
			"min_width": float64(500),
			"max_width": float64(1000),
		}))
		require.NoError(t, err)

		var resp FontSizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, 14.0, resp.Size)
		assert.True(t, resp.Clamped)
	})

	t.Run("equal breakpoints is a tool error", func(t *testing.T) {
		result, err := s.handleFontSize(ctx, callTool(map[string]any{
			"width":     float64(800),
			"smallest":  float64(14),
			"largest":   float64(24),
			"min_width": float64(500),
			"max_width": float64(500),
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "configuration error")
	})

	t.Run("missing width", func(t *testing.T) {
		result, err := s.handleFontSize(ctx, callTool(map[string]any{
			"smallest": float64(14),
			"largest":  float64(24),
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "width")
	})
}

func TestHandleFontSize_NonFiniteArguments(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"nan width", map[string]any{"width": math.NaN(), "smallest": float64(14), "largest": float64(32)}, "width"},
		{"infinite smallest", map[string]any{"width": float64(900), "smallest": math.Inf(1), "largest": float64(32)}, "smallest"},
		{"nan max width", map[string]any{"width": float64(900), "smallest": float64(14), "largest": float64(32), "max_width": math.NaN()}, "max_width"},
		{"string width", map[string]any{"width": "900", "smallest": float64(14), "largest": float64(32)}, "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleFontSize(context.Background(), callTool(tt.args))
			require.NoError(t, err)
			require.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestHandleFontSize_DescendingBreakpoints(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleFontSize(context.Background(), callTool(map[string]any{
		"width":     float64(900),
		"smallest":  float64(14),
		"largest":   float64(32),
		"min_width": float64(1440),
		"max_width": float64(360),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp FontSizeResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, 14.0, resp.Size)
	assert.Empty(t, resp.CSS)
}

func TestHandleTypeScale(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleTypeScale(context.Background(), callTool(map[string]any{
		"width": float64(900),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp TypeScaleResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Roles, len(tokens.Roles()))
	assert.Equal(t, tokens.RoleDisplay, resp.Roles[0].Role)
	assert.Equal(t, 40.0, resp.Roles[0].Size)
	assert.NotEmpty(t, resp.Roles[0].CSS)
}

func TestHandleTypeScale_MissingWidth(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleTypeScale(context.Background(), callTool(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleListTokens(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	t.Run("all groups", func(t *testing.T) {
		result, err := s.handleListTokens(ctx, callTool(map[string]any{}))
		require.NoError(t, err)

		var toks []tokens.Token
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toks))
		assert.Len(t, toks, len(tokens.All()))
	})

	t.Run("single group", func(t *testing.T) {
		result, err := s.handleListTokens(ctx, callTool(map[string]any{"group": "duration"}))
		require.NoError(t, err)

		var toks []tokens.Token
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toks))
		require.Len(t, toks, 6)
		assert.Equal(t, "ms", toks[0].Unit)
	})

	t.Run("unknown group", func(t *testing.T) {
		result, err := s.handleListTokens(ctx, callTool(map[string]any{"group": "shadow"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
