// Package message provides conversational message elements and the
// pile-backed Thread holding an ordered history. Messages carry a role, text
// and optional tool call / tool result payloads.
//
// The package also converts threads into the wire shapes of the OpenAI Chat
// Completions API and the Anthropic Messages API. Conversion is the extent
// of the model boundary here: invocation, streaming and tool dispatch belong
// to callers.
package message
