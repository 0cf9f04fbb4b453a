package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/asteroid-belt/typekit/internal/log"
	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/responsive"
	"github.com/mark3labs/mcp-go/mcp"
)

// FontSizeResponse is the result of typekit_font_size.
type FontSizeResponse struct {
	Width   float64            `json:"width"`
	Size    float64            `json:"size"`
	Clamped bool               `json:"clamped"`
	Request responsive.Request `json:"request"`
	CSS     string             `json:"css,omitempty"`
}

// TypeScaleEntry is one role in the typekit_type_scale result.
type TypeScaleEntry struct {
	Role     tokens.Role `json:"role"`
	Size     float64     `json:"size"`
	Smallest float64     `json:"smallest"`
	Largest  float64     `json:"largest"`
	CSS      string      `json:"css,omitempty"`
}

// TypeScaleResponse is the result of typekit_type_scale.
type TypeScaleResponse struct {
	Width       float64            `json:"width"`
	Breakpoints tokens.Breakpoints `json:"breakpoints"`
	Roles       []TypeScaleEntry   `json:"roles"`
}

// numberArg extracts an optional numeric tool argument. JSON numbers arrive
// as float64. present is false when the argument was omitted.
func numberArg(arguments map[string]any, name string) (v float64, present bool, err error) {
	switch n := arguments[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return 0, false, fmt.Errorf("%s parameter must be a number", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%s parameter must be a finite number", name)
	}
	return v, true, nil
}

// requiredNumberArg is numberArg for arguments that must be present.
func requiredNumberArg(arguments map[string]any, name string) (float64, error) {
	v, present, err := numberArg(arguments, name)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	return v, nil
}

// clampCSS is the rem clamp() of fr, or "" for ranges clamp() cannot express.
func clampCSS(fr responsive.Request) string {
	css, err := fr.CSSClamp(responsive.UnitRem)
	if err != nil {
		log.Printf("mcp: no css clamp for %+v: %v\n", fr, err)
		return ""
	}
	return css
}

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	if s.telemetry != nil {
		s.telemetry.TrackMCPToolCalled(toolName, time.Since(start).Milliseconds(), success)
	}
}

// toolError records a failed call and returns it as a tool-level error.
func (s *Server) toolError(toolName string, start time.Time, format string, args ...any) (*mcp.CallToolResult, error) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("mcp %s: %s\n", toolName, msg)
	s.trackToolCall(toolName, start, false)
	return mcp.NewToolResultError(msg), nil
}

// jsonResult marshals v into a text result.
func (s *Server) jsonResult(toolName string, start time.Time, v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return s.toolError(toolName, start, "failed to marshal result: %v", err)
	}
	s.trackToolCall(toolName, start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleFontSize handles the typekit_font_size tool.
func (s *Server) handleFontSize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const name = "typekit_font_size"
	start := time.Now()
	args := req.Params.Arguments

	width, err := requiredNumberArg(args, "width")
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}
	smallest, err := requiredNumberArg(args, "smallest")
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}
	largest, err := requiredNumberArg(args, "largest")
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}

	fr := responsive.Request{
		Smallest:           smallest,
		Largest:            largest,
		SmallestScreenSize: s.cfg.Breakpoints.Smallest,
		LargestScreenSize:  s.cfg.Breakpoints.Largest,
	}
	if v, present, err := numberArg(args, "min_width"); err != nil {
		return s.toolError(name, start, "%v", err)
	} else if present {
		fr.SmallestScreenSize = v
	}
	if v, present, err := numberArg(args, "max_width"); err != nil {
		return s.toolError(name, start, "%v", err)
	} else if present {
		fr.LargestScreenSize = v
	}

	size, err := responsive.Compute(width, fr)
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}

	clamped := width <= fr.SmallestScreenSize || width >= fr.LargestScreenSize
	if s.telemetry != nil {
		s.telemetry.TrackFontSizeComputed("mcp", clamped)
	}

	return s.jsonResult(name, start, FontSizeResponse{
		Width:   width,
		Size:    size,
		Clamped: clamped,
		Request: fr,
		CSS:     clampCSS(fr),
	})
}

// handleTypeScale handles the typekit_type_scale tool.
func (s *Server) handleTypeScale(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const name = "typekit_type_scale"
	start := time.Now()

	width, err := requiredNumberArg(req.Params.Arguments, "width")
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}

	bp := s.cfg.Breakpoints
	fonts, err := tokens.ResolveAll(width, bp)
	if err != nil {
		return s.toolError(name, start, "%v", err)
	}

	resp := TypeScaleResponse{Width: width, Breakpoints: bp}
	for _, f := range fonts {
		fr, err := tokens.ScaleFor(f.Role, bp)
		if err != nil {
			return s.toolError(name, start, "%v", err)
		}
		resp.Roles = append(resp.Roles, TypeScaleEntry{
			Role:     f.Role,
			Size:     f.Size,
			Smallest: f.Smallest,
			Largest:  f.Largest,
			CSS:      clampCSS(fr),
		})
	}

	return s.jsonResult(name, start, resp)
}

// handleListTokens handles the typekit_list_tokens tool.
func (s *Server) handleListTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const name = "typekit_list_tokens"
	start := time.Now()

	toks := tokens.All()
	if g, ok := req.Params.Arguments["group"].(string); ok && g != "" {
		group, err := tokens.ParseGroup(g)
		if err != nil {
			return s.toolError(name, start, "%v", err)
		}
		toks, err = tokens.ByGroup(group)
		if err != nil {
			return s.toolError(name, start, "%v", err)
		}
	}

	return s.jsonResult(name, start, toks)
}
