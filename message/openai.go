package message

import "github.com/openai/openai-go"

// ChatParams converts a thread into OpenAI Chat Completions message params.
// Assistant tool calls keep their ids so matching tool results can follow as
// tool messages; tool results arriving before their call are dropped by the
// API, so callers should keep threads well formed.
func ChatParams(t *Thread) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	for _, m := range t.History() {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Text))
		case RoleUser:
			messages = append(messages, openai.UserMessage(m.Text))
		case RoleAssistant:
			if len(m.ToolCalls) == 0 {
				messages = append(messages, openai.AssistantMessage(m.Text))
				continue
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Role:      "assistant",
					ToolCalls: buildToolCalls(m.ToolCalls),
				},
			})
		case RoleTool:
			messages = append(messages, openai.ToolMessage(m.Result, m.ToolCallID))
		default:
			if m.Text != "" {
				messages = append(messages, openai.UserMessage(m.Text))
			}
		}
	}
	return messages
}

// buildToolCalls converts thread tool calls into the SDK's function call
// param shape.
func buildToolCalls(calls []ToolCall) []openai.ChatCompletionMessageToolCallParam {
	out := make([]openai.ChatCompletionMessageToolCallParam, len(calls))
	for i, c := range calls {
		out[i] = openai.ChatCompletionMessageToolCallParam{
			ID:   c.ID,
			Type: "function",
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      c.Name,
				Arguments: c.Arguments,
			},
		}
	}
	return out
}
