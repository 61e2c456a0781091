package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resources the server is expected to expose.
const (
	rulesURI      = "tobe://rules"
	serverInfoURI = "server://info"
)

// ReadResource reads a text resource and returns its first content block
func ReadResource(ctx context.Context, c client.MCPClient, uri string) (string, error) {
	readReq := mcp.ReadResourceRequest{}
	readReq.Params.URI = uri

	result, err := c.ReadResource(ctx, readReq)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", uri, err)
	}

	if len(result.Contents) > 0 {
		if textContent, ok := result.Contents[0].(mcp.TextResourceContents); ok {
			return textContent.Text, nil
		}
	}

	return "", fmt.Errorf("resource %s has no text content", uri)
}
