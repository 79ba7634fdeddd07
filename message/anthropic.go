package message

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
)

// MessageParams converts a thread into Anthropic Messages API params.
// System messages are excluded here; pass SystemBlocks separately as the
// request's System field. Tool results are attached right after the
// assistant turn that requested them, matched by call id.
func MessageParams(t *Thread) []anthropic.MessageParam {
	history := t.History()

	toolResults := map[string]string{}
	for _, m := range history {
		if m.Role == RoleTool && m.ToolCallID != "" {
			toolResults[m.ToolCallID] = m.Result
		}
	}

	var messages []anthropic.MessageParam
	for _, m := range history {
		switch m.Role {
		case RoleSystem, RoleTool:
			continue
		case RoleAssistant:
			content := buildAssistantContent(m, toolResults)
			if len(content) > 0 {
				messages = append(messages, anthropic.NewAssistantMessage(content...))
			}
		default:
			if m.Text != "" {
				messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
			}
		}
	}
	return messages
}

// SystemBlocks extracts the thread's system messages as text blocks for the
// request's System field.
func SystemBlocks(t *Thread) []anthropic.TextBlockParam {
	var blocks []anthropic.TextBlockParam
	for _, m := range t.History() {
		if m.Role == RoleSystem && m.Text != "" {
			blocks = append(blocks, anthropic.TextBlockParam{Text: m.Text})
		}
	}
	return blocks
}

// buildAssistantContent renders an assistant turn: text, tool_use blocks,
// then matching tool results consumed from toolResults.
func buildAssistantContent(m *Message, toolResults map[string]string) []anthropic.ContentBlockParamUnion {
	var content []anthropic.ContentBlockParamUnion
	if m.Text != "" {
		content = append(content, anthropic.NewTextBlock(m.Text))
	}
	for _, call := range m.ToolCalls {
		var input any
		if call.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Arguments), &input); err != nil {
				input = call.Arguments
			}
		}
		content = append(content, anthropic.NewToolUseBlock(call.ID, input, call.Name))
	}
	for _, call := range m.ToolCalls {
		if result, ok := toolResults[call.ID]; ok {
			content = append(content, anthropic.NewToolResultBlock(call.ID, result, false))
			delete(toolResults, call.ID)
		}
	}
	return content
}
