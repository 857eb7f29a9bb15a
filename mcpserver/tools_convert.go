package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/casetools/caseconv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text       string `json:"text"                 jsonschema:"The text to convert"`
	Convention string `json:"convention,omitempty" jsonschema:"Target convention name. Omit to use the server default."`
}

type convertOutput struct {
	Convention string `json:"convention"`
	Result     string `json:"result"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkTextLen(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	convention := input.Convention
	if convention == "" {
		convention = cfg.DefaultConvention
	}

	result, err := caseconv.ConvertTo(convention, input.Text)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Convention: strings.ToLower(convention),
		Result:     result,
	}, nil
}

type convertAllInput struct {
	Text string `json:"text" jsonschema:"The text to convert"`
}

type conventionResult struct {
	Convention string `json:"convention"`
	Result     string `json:"result"`
}

type convertAllOutput struct {
	Results []conventionResult `json:"results"`
}

func handleConvertAll(_ context.Context, _ *mcp.CallToolRequest, input convertAllInput) (*mcp.CallToolResult, convertAllOutput, error) {
	if err := checkTextLen(input.Text); err != nil {
		return errResult(err), convertAllOutput{}, nil
	}

	names := caseconv.ConventionNames()
	results := make([]conventionResult, 0, len(names))
	for _, name := range names {
		out, err := caseconv.ConvertTo(name, input.Text)
		if err != nil {
			return errResult(err), convertAllOutput{}, nil
		}
		results = append(results, conventionResult{Convention: name, Result: out})
	}

	return nil, convertAllOutput{Results: results}, nil
}
