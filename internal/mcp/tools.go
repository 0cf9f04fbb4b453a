package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the typekit MCP server.

// fontSizeTool returns the typekit_font_size tool definition.
func fontSizeTool() mcp.Tool {
	return mcp.NewTool("typekit_font_size",
		mcp.WithDescription("Compute a responsive font size. The size is pinned to 'smallest' at or below min_width, to 'largest' at or above max_width, and scales linearly in between."),
		mcp.WithNumber("width",
			mcp.Required(),
			mcp.Description("Current viewport width in px"),
		),
		mcp.WithNumber("smallest",
			mcp.Required(),
			mcp.Description("Font size at or below min_width"),
		),
		mcp.WithNumber("largest",
			mcp.Required(),
			mcp.Description("Font size at or above max_width"),
		),
		mcp.WithNumber("min_width",
			mcp.Description("Smallest breakpoint in px (default: configured, 360 out of the box)"),
		),
		mcp.WithNumber("max_width",
			mcp.Description("Largest breakpoint in px (default: configured, 1440 out of the box)"),
		),
	)
}

// typeScaleTool returns the typekit_type_scale tool definition.
func typeScaleTool() mcp.Tool {
	return mcp.NewTool("typekit_type_scale",
		mcp.WithDescription("Resolve every type role (display, headline, title, body, label, caption) at a viewport width, with the CSS clamp() equivalent of each ramp."),
		mcp.WithNumber("width",
			mcp.Required(),
			mcp.Description("Current viewport width in px"),
		),
	)
}

// listTokensTool returns the typekit_list_tokens tool definition.
func listTokensTool() mcp.Tool {
	return mcp.NewTool("typekit_list_tokens",
		mcp.WithDescription("List design tokens. Groups: size, space, radius, duration, font-mobile, font-tablet, font-desktop."),
		mcp.WithString("group",
			mcp.Description("Only return this group (optional - returns all if not specified)"),
		),
	)
}
