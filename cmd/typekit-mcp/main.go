// Package main provides the typekit-mcp server.
//
// typekit-mcp exposes the responsive font size calculator and the design
// tokens via the Model Context Protocol.
//
// Usage:
//
//	typekit-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/typekit/internal/config"
	"github.com/asteroid-belt/typekit/internal/log"
	"github.com/asteroid-belt/typekit/internal/mcp"
	"github.com/asteroid-belt/typekit/internal/telemetry"
	"github.com/asteroid-belt/typekit/pkg/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("typekit-mcp %s\n", version.Version)
		os.Exit(0)
	}

	// Handle --help flag
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to the file only.
	if err := log.Init(config.GetPaths(cfg).Logs, log.WithoutConsole()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer func() { _ = log.Close() }()

	telemetryClient := telemetry.New()
	defer telemetryClient.Close()

	server := mcp.NewServer(cfg, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `typekit-mcp - MCP server for typekit design tokens

USAGE:
    typekit-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    typekit-mcp is a Model Context Protocol (MCP) server that computes
    responsive font sizes and serves the design token tables to
    MCP-compatible clients.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).

CONFIGURATION:
    {
      "mcpServers": {
        "typekit": {
          "type": "stdio",
          "command": "typekit-mcp"
        }
      }
    }

    Breakpoints come from $XDG_CONFIG_HOME/typekit/config.yaml or
    TYPEKIT_SMALLEST_SCREEN and TYPEKIT_LARGEST_SCREEN.

TOOLS PROVIDED:
    typekit_font_size     Font size for a viewport width
    typekit_type_scale    Every type role resolved at a viewport width
    typekit_list_tokens   Design tokens, optionally for one group

RESOURCES PROVIDED:
    typekit://tokens/{group}   Token group as JSON
`
	fmt.Print(help)
}
