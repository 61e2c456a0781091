// Package tools provides test functions for the tobebot MCP tools
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Tool names served by tobebot.
const (
	ValidateSentenceTool = "validate_sentence"
	StatsTool            = "validation_stats"
)

// SampleSentences covers the six moods plus formatting and grammar failures.
var SampleSentences = []string{
	"I am a student.",
	"She is not ready.",
	"Are they teachers?",
	"He was a doctor.",
	"We were not late.",
	"Was it cold?",
	"i am happy",
	"I am student.",
	"He am tall.",
}

// TestValidateSentence calls validate_sentence once per sentence
func TestValidateSentence(ctx context.Context, c client.MCPClient, logger *zap.Logger, sentences []string, format string) error {
	for _, sentence := range sentences {
		callReq := mcp.CallToolRequest{}
		callReq.Params.Name = ValidateSentenceTool
		callReq.Params.Arguments = map[string]interface{}{
			"sentence": sentence,
			"format":   format,
		}

		text, err := callText(ctx, c, callReq)
		if err != nil {
			logger.Warn("Failed to call validate_sentence", zap.String("sentence", sentence), zap.Error(err))
			continue
		}
		logger.Info("Validation result\n"+text, zap.String("sentence", sentence))
	}

	return nil
}

// TestStats tests the stats tool
func TestStats(ctx context.Context, c client.MCPClient, logger *zap.Logger) error {
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = StatsTool
	callReq.Params.Arguments = map[string]interface{}{}

	text, err := callText(ctx, c, callReq)
	if err != nil {
		return err
	}
	logger.Info("Stats result\n" + text)

	return nil
}

// callText calls a tool and returns the text of its first content block.
func callText(ctx context.Context, c client.MCPClient, callReq mcp.CallToolRequest) (string, error) {
	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", callReq.Params.Name, err)
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			return textContent.Text, nil
		}
	}

	return "", fmt.Errorf("%s returned no text content", callReq.Params.Name)
}
