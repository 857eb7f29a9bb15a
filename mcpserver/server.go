// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools case conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casetools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casetools MCP server — converts strings between naming conventions (camelCase, PascalCase, snake_case, CONSTANT_CASE, param-case, dot.case, path/case, Header-Case, Sentence case, Title Case, swap case).

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_MAX_TEXT_LEN (default: 1048576) — maximum inline text size in bytes
- CASETOOLS_DEFAULT_CONVENTION (default: snake) — convention used by convert when none is given

All conversions are pure in-process string transforms: no files are read or written and nothing is cached between calls.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to a named case convention. Conventions: camel, pascal, capital, snake, constant, param (alias kebab), dot, path, header, sentence, title, swap. When convention is omitted the server default applies (snake unless CASETOOLS_DEFAULT_CONVENTION overrides it).",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_all",
		Description: "Convert text to every registered case convention at once. Returns one result per convention, sorted by convention name. Useful for picking a convention by inspection.",
	}, handleConvertAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split_words",
		Description: "Tokenize text into its semantic words without converting. Shows exactly how the conversion tools segment the input: delimiters are discarded, and case or letter/digit transitions split words (XMLHttpRequest -> XML, Http, Request).",
	}, handleSplitWords)
}

// checkTextLen guards tools against oversized inline text.
func checkTextLen(text string) error {
	if len(text) > cfg.MaxTextLen {
		return fmt.Errorf("text size %d bytes exceeds maximum %d bytes; set CASETOOLS_MAX_TEXT_LEN to increase",
			len(text), cfg.MaxTextLen)
	}
	return nil
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
