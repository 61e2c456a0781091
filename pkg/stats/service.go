package stats

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ToolName is the MCP tool that reports statistics.
const ToolName = "validation_stats"

// HandleGetStats handles requests to get validation statistics
func (t *Tracker) HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	statsText := FormatStats(t.GetSessionStats(), t.GetPersistentStats())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// WrapHandler wraps a tool handler with call tracking
func (t *Tracker) WrapHandler(toolName string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		result, err := handler(ctx, request)

		if recErr := t.RecordToolUsage(toolName, time.Since(startTime), err != nil); recErr != nil {
			// Log the error but don't fail the request
			t.logger.Warn("Failed to record tool usage", zap.String("tool", toolName), zap.Error(recErr))
		}
		if err != nil {
			t.logger.Warn("Tool call failed", zap.String("tool", toolName), zap.Error(err))
			return nil, err
		}

		return result, nil
	}
}

// Register registers the stats tool with the MCP server
func (t *Tracker) Register(mcpServer *server.MCPServer) {
	statsTool := mcp.NewTool(ToolName,
		mcp.WithDescription("Reports how many sentences were validated, broken down by result type, and tool call timings"),
	)

	mcpServer.AddTool(statsTool, t.WrapHandler(ToolName, t.HandleGetStats))

	t.logger.Info("Registered stats tool")
}
