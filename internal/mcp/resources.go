package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/mark3labs/mcp-go/mcp"
)

// resourcePrefix is the URI scheme for typekit resources.
const resourcePrefix = "typekit://"

// parseTokensURI extracts the group from a typekit://tokens/{group} URI.
func parseTokensURI(uri string) (tokens.Group, error) {
	if !strings.HasPrefix(uri, resourcePrefix+"tokens/") {
		return "", fmt.Errorf("invalid URI scheme: %s", uri)
	}
	name := strings.TrimPrefix(uri, resourcePrefix+"tokens/")
	if name == "" {
		return "", fmt.Errorf("empty group in URI: %s", uri)
	}
	return tokens.ParseGroup(name)
}

// handleTokensResource handles typekit://tokens/{group} resources.
func (s *Server) handleTokensResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	group, err := parseTokensURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	toks, err := tokens.ByGroup(group)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
