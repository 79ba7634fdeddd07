package message

import "github.com/hupe1980/pilekit/core"

// Tag is the registered type tag for messages.
const Tag = "message"

func init() {
	core.RegisterType(Tag, "")
}

// Role identifies the conversational author of a message.
type Role string

const (
	// RoleSystem marks instructions framing the conversation.
	RoleSystem Role = "system"
	// RoleUser marks end-user input.
	RoleUser Role = "user"
	// RoleAssistant marks model output, including tool call requests.
	RoleAssistant Role = "assistant"
	// RoleTool marks the result of a previously requested tool call.
	RoleTool Role = "tool"
)

// ToolCall describes a tool invocation requested by an assistant message.
type ToolCall struct {
	ID        string // Correlates the eventual tool result
	Name      string // Tool name
	Arguments string // Serialized argument payload (JSON)
}

// Message is one conversational turn stored in a thread. Assistant messages
// may carry ToolCalls; tool messages carry the matching ToolCallID and
// Result.
type Message struct {
	core.Element
	Role       Role
	Text       string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
	Result     string
}

// TypeTag implements core.Tagged.
func (m *Message) TypeTag() string { return Tag }

// NewSystem creates a system message.
func NewSystem(text string) *Message {
	return &Message{Element: core.NewElement(), Role: RoleSystem, Text: text}
}

// NewUser creates a user message.
func NewUser(text string) *Message {
	return &Message{Element: core.NewElement(), Role: RoleUser, Text: text}
}

// NewAssistant creates a plain assistant text message.
func NewAssistant(text string) *Message {
	return &Message{Element: core.NewElement(), Role: RoleAssistant, Text: text}
}

// NewToolCalls creates an assistant message requesting the given tool calls.
func NewToolCalls(calls ...ToolCall) *Message {
	return &Message{Element: core.NewElement(), Role: RoleAssistant, ToolCalls: calls}
}

// NewToolResult records the outcome of a previously requested tool call.
// A non-nil err is carried in the result payload.
func NewToolResult(callID, name, result string, err error) *Message {
	if err != nil {
		result = "error: " + err.Error()
	}
	return &Message{
		Element:    core.NewElement(),
		Role:       RoleTool,
		ToolCallID: callID,
		ToolName:   name,
		Result:     result,
	}
}
