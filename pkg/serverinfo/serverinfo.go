// Package serverinfo exposes a resource describing the running server and
// the lexicon it validates against.
package serverinfo

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

// URI of the server info resource.
const URI = "server://info"

// Provider renders server information.
type Provider struct {
	name      string
	version   string
	lex       *lexicon.Lexicon
	startTime time.Time
}

// NewProvider creates a Provider. Uptime is measured from this call.
func NewProvider(name, version string, lex *lexicon.Lexicon) *Provider {
	return &Provider{
		name:      name,
		version:   version,
		lex:       lex,
		startTime: time.Now(),
	}
}

// Info returns the reported fields.
func (p *Provider) Info() map[string]interface{} {
	return map[string]interface{}{
		"name":            p.name,
		"version":         p.version,
		"timestamp":       time.Now().Format(time.RFC3339),
		"go_version":      runtime.Version(),
		"os":              runtime.GOOS,
		"architecture":    runtime.GOARCH,
		"goroutines":      runtime.NumGoroutine(),
		"memory_alloc_mb": getAllocMB(),
		"uptime_seconds":  time.Since(p.startTime).Seconds(),
		"vocabulary_size": p.lex.Size(),
		"proper_nouns":    strings.Join(p.lex.ProperNouns(), ", "),
		"misspellings":    len(p.lex.Misspellings()),
	}
}

// Format renders Info as sorted "key: value" lines.
func (p *Provider) Format() string {
	info := p.Info()
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Server Information:\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, info[k])
	}
	return b.String()
}

// HandleServerInfo is the handler function for the server info resource
func (p *Provider) HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     p.Format(),
		},
	}, nil
}

// Register registers the server info resource with the MCP server
func (p *Provider) Register(mcpServer *server.MCPServer) {
	mcpServer.AddResource(
		mcp.NewResource(
			URI,
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		p.HandleServerInfo,
	)
}

func getAllocMB() float64 {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	return float64(memStats.Alloc) / 1024 / 1024
}
