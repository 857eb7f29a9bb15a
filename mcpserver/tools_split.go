package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/caseconv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Text string `json:"text" jsonschema:"The text to tokenize into words"`
}

type splitOutput struct {
	Words []string `json:"words,omitempty"`
	Count int      `json:"count"`
}

func handleSplitWords(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	if err := checkTextLen(input.Text); err != nil {
		return errResult(err), splitOutput{}, nil
	}

	words := caseconv.SplitWords(input.Text)
	return nil, splitOutput{Words: words, Count: len(words)}, nil
}
