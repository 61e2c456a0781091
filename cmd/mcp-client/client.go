package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/cmd/mcp-client/tools"
)

// Client represents the MCP client application
type Client struct {
	serverURL string
	mcpClient client.MCPClient
	logger    *zap.Logger
}

// RunOptions selects what a Run exercises.
type RunOptions struct {
	Tool      string
	Format    string
	Sentences []string
}

// NewClient creates a new MCP client
func NewClient(serverURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		serverURL: serverURL,
		logger:    logger.Named("client"),
	}
}

// Run connects to the server, lists its capabilities and exercises the
// selected tool.
func (c *Client) Run(ctx context.Context, opts RunOptions) error {
	// Create the SSE client
	c.logger.Info("Connecting to MCP server", zap.String("url", c.serverURL))
	sseClient, err := client.NewSSEMCPClient(c.serverURL)
	if err != nil {
		return fmt.Errorf("failed to create SSE client: %w", err)
	}
	defer sseClient.Close()

	// Start the client
	if err := sseClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start SSE client: %w", err)
	}

	c.mcpClient = sseClient
	return c.exercise(ctx, opts)
}

// exercise runs everything after the transport is up.
func (c *Client) exercise(ctx context.Context, opts RunOptions) error {
	if err := c.initialize(ctx); err != nil {
		return err
	}

	resourcesResult, toolsResult, err := c.listResourcesAndTools(ctx)
	if err != nil {
		return err
	}

	if err := c.testTool(ctx, opts, toolsResult); err != nil {
		return err
	}

	for _, uri := range []string{rulesURI, serverInfoURI} {
		c.readResourceIfAvailable(ctx, uri, resourcesResult)
	}

	return nil
}

// initialize initializes the MCP client
func (c *Client) initialize(ctx context.Context) error {
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION

	initResult, err := c.mcpClient.Initialize(ctx, initReq)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	c.logger.Info("Connected to server successfully",
		zap.String("server", initResult.ServerInfo.Name),
		zap.String("version", initResult.ServerInfo.Version))
	return nil
}

// listResourcesAndTools lists available resources and tools
func (c *Client) listResourcesAndTools(ctx context.Context) (*mcp.ListResourcesResult, *mcp.ListToolsResult, error) {
	resourcesResult, err := c.mcpClient.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list resources: %w", err)
	}
	for _, resource := range resourcesResult.Resources {
		c.logger.Info("Available resource", zap.String("name", resource.Name), zap.String("uri", resource.URI))
	}

	toolsResult, err := c.mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tools: %w", err)
	}
	for _, tool := range toolsResult.Tools {
		c.logger.Info("Available tool", zap.String("name", tool.Name), zap.String("description", tool.Description))
	}

	return resourcesResult, toolsResult, nil
}

// testTool tests the specified tool
func (c *Client) testTool(ctx context.Context, opts RunOptions, toolsResult *mcp.ListToolsResult) error {
	found := false
	for _, tool := range toolsResult.Tools {
		if tool.Name == opts.Tool {
			found = true
			break
		}
	}

	if !found {
		c.logger.Warn("Tool not found on server", zap.String("tool", opts.Tool))
		return nil
	}

	c.logger.Info("Testing tool", zap.String("tool", opts.Tool))

	switch opts.Tool {
	case tools.ValidateSentenceTool:
		sentences := opts.Sentences
		if len(sentences) == 0 {
			sentences = tools.SampleSentences
		}
		return tools.TestValidateSentence(ctx, c.mcpClient, c.logger, sentences, opts.Format)
	case tools.StatsTool:
		return tools.TestStats(ctx, c.mcpClient, c.logger)
	default:
		return fmt.Errorf("unknown tool: %s", opts.Tool)
	}
}

// readResourceIfAvailable reads a resource if the server lists it
func (c *Client) readResourceIfAvailable(ctx context.Context, uri string, resourcesResult *mcp.ListResourcesResult) {
	found := false
	for _, resource := range resourcesResult.Resources {
		if resource.URI == uri {
			found = true
			break
		}
	}

	if !found {
		c.logger.Warn("Resource not found on server", zap.String("uri", uri))
		return
	}

	text, err := ReadResource(ctx, c.mcpClient, uri)
	if err != nil {
		c.logger.Warn("Failed to read resource", zap.String("uri", uri), zap.Error(err))
		return
	}
	c.logger.Info("Resource contents\n"+text, zap.String("uri", uri))
}
