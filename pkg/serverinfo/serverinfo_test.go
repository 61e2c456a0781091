package serverinfo

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

func TestInfo(t *testing.T) {
	lex := lexicon.Default()
	p := NewProvider("ToBeBot", "1.2.3", lex)

	info := p.Info()
	assert.Equal(t, "ToBeBot", info["name"])
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, lex.Size(), info["vocabulary_size"])
	assert.Contains(t, info["proper_nouns"], "maria")
}

func TestHandleServerInfo(t *testing.T) {
	p := NewProvider("ToBeBot", "1.2.3", lexicon.Default())

	req := mcp.ReadResourceRequest{}
	req.Params.URI = URI

	contents, err := p.HandleServerInfo(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Contains(t, text.Text, "Server Information:")
	assert.Contains(t, text.Text, "name: ToBeBot\n")
	assert.Contains(t, text.Text, "vocabulary_size: ")
}
