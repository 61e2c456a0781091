package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/stats"
)

// Tool and resource names exposed over MCP.
const (
	ToolName  = "validate_sentence"
	RulesURI  = "tobe://rules"
	rulesName = "To Be Agreement Rules"
)

// Handler serves the validate_sentence tool.
type Handler struct {
	validator *Validator
	tracker   *stats.Tracker
	logger    *zap.Logger
}

// NewHandler wires a validator to the MCP tool surface. tracker may be nil.
func NewHandler(v *Validator, tracker *stats.Tracker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{validator: v, tracker: tracker, logger: logger.Named("tool")}
}

// HandleValidateSentence is the handler function for the validate_sentence tool
func (h *Handler) HandleValidateSentence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	requestID := uuid.NewString()

	// Extract sentence
	sentence, ok := arguments["sentence"].(string)
	if !ok {
		h.logger.Warn("Rejected call with missing sentence", zap.String("request_id", requestID))
		return nil, fmt.Errorf("sentence must be a string")
	}

	// Extract output format (optional)
	format := "text"
	if formatVal, ok := arguments["format"].(string); ok && formatVal != "" {
		format = formatVal
	}
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	start := time.Now()
	result := h.validator.Validate(sentence)
	elapsed := time.Since(start)

	h.logger.Info("Validated sentence",
		zap.String("request_id", requestID),
		zap.String("type", string(result.Type)),
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)),
		zap.Duration("elapsed", elapsed))

	if h.tracker != nil {
		if err := h.tracker.RecordOutcome(string(result.Type), result.IsValid); err != nil {
			// Log the error but don't fail the request
			h.logger.Warn("Failed to record outcome", zap.String("request_id", requestID), zap.Error(err))
		}
	}

	var text string
	if format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode result: %w", err)
		}
		text = string(data)
	} else {
		text = FormatFeedback(sentence, result)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// HandleRules is the handler function for the agreement rules resource
func (h *Handler) HandleRules(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     AgreementReminder,
		},
	}, nil
}

// Register registers the validate_sentence tool and the rules resource with
// the MCP server
func (h *Handler) Register(mcpServer *server.MCPServer) {
	// Create the tool definition
	validateTool := mcp.NewTool(ToolName,
		mcp.WithDescription("Checks whether an English sentence uses the verb TO BE correctly in one of six forms (present/past, affirmative/negative/interrogative). Returns itemized formatting or grammar issues and a corrected version."),
		mcp.WithString("sentence",
			mcp.Description("The sentence to validate"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' for learner feedback or 'json' for the raw result (default: 'text')"),
		),
	)

	handler := h.HandleValidateSentence
	if h.tracker != nil {
		// Wrap the handler with stats tracking
		handler = h.tracker.WrapHandler(ToolName, handler)
	}
	mcpServer.AddTool(validateTool, handler)

	mcpServer.AddResource(
		mcp.NewResource(
			RulesURI,
			rulesName,
			mcp.WithMIMEType("text/plain"),
		),
		h.HandleRules,
	)

	h.logger.Info("Registered validate_sentence tool and rules resource")
}
