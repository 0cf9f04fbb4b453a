package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/typekit/pkg/version"
)

// Event names
const (
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventFontSizeComputed   = "font_size_computed"
	EventTokensExported     = "tokens_exported"
	EventDemoStarted        = "demo_started"
	EventMCPToolCalled      = "mcp_tool_called"
	EventAppExited          = "app_exited"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    version.Short(),
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackCLICommandExecuted tracks a finished CLI command.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks a CLI command failure by category only.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackFontSizeComputed tracks a font size computation. Input values are
// never sent; clamped records whether the width fell outside the breakpoints.
func (c *posthogClient) TrackFontSizeComputed(source string, clamped bool) {
	props := baseProperties()
	props["source"] = source
	props["clamped"] = clamped
	c.Track(EventFontSizeComputed, props)
}

// TrackTokensExported tracks a token export.
func (c *posthogClient) TrackTokensExported(format string, tokenCount int) {
	props := baseProperties()
	props["format"] = format
	props["token_count"] = tokenCount
	c.Track(EventTokensExported, props)
}

// TrackDemoStarted tracks a launch of the demo TUI.
func (c *posthogClient) TrackDemoStarted(themeName string, width int) {
	props := baseProperties()
	props["theme"] = themeName
	props["terminal_width"] = width
	c.Track(EventDemoStarted, props)
}

// TrackMCPToolCalled tracks an MCP tool invocation.
func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	props := baseProperties()
	props["tool_name"] = toolName
	props["duration_ms"] = durationMs
	props["success"] = success
	c.Track(EventMCPToolCalled, props)
}

// TrackAppExited tracks process exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	c.Track(EventAppExited, props)
}

func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string) {}
func (c *noopClient) TrackFontSizeComputed(source string, clamped bool) {}
func (c *noopClient) TrackTokensExported(format string, tokenCount int) {}
func (c *noopClient) TrackDemoStarted(themeName string, width int) {}
func (c *noopClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64) {}
