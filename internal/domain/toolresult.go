package domain

// ContentBlock is one typed block of a tool response. Only "text" blocks
// are produced today, but the list form is the contract every protocol
// adapter (MCP, OpenAI, Gemini, REST) expects back.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the envelope returned by every tool call. Failures are
// carried as an error-formatted text block inside a success-shaped
// envelope, so adapters never need protocol-specific error branches.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// TextResult wraps plain text in a tool result envelope
func TextResult(text string) *ToolResult {
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult wraps an error message in a tool result envelope
func ErrorResult(text string) *ToolResult {
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Text concatenates all text blocks, which is what the single-string
// protocol surfaces (OpenAI, Gemini) serialize.
func (r *ToolResult) Text() string {
	out := ""
	for _, block := range r.Content {
		if block.Type != "text" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += block.Text
	}
	return out
}
