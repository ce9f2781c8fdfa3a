// Package llm provides shared data models for LLM providers.
package llm

import "encoding/json"

// Message roles understood by every provider adapter.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage represents a chat message with role and content.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // For assistant messages with tool calls
	ToolCallID string     `json:"tool_call_id,omitempty"` // For tool result messages
}

// ToolCall represents a tool invocation requested by the LLM.
// ID is the correlation id echoed back in the matching tool result message.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition defines a tool that the LLM can call.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"` // JSON Schema
}

// SystemMessage creates a system message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{
		Role:    RoleSystem,
		Content: content,
	}
}

// UserMessage creates a user message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{
		Role:    RoleUser,
		Content: content,
	}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{
		Role:    RoleAssistant,
		Content: content,
	}
}

// AssistantToolCallMessage creates an assistant message carrying tool calls.
func AssistantToolCallMessage(content string, calls []ToolCall) ChatMessage {
	return ChatMessage{
		Role:      RoleAssistant,
		Content:   content,
		ToolCalls: calls,
	}
}

// ToolResultMessage creates a tool result message correlated to a tool call.
func ToolResultMessage(callID, content string) ChatMessage {
	return ChatMessage{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: callID,
	}
}

// OutcomeKind tags the two shapes a completion can take.
type OutcomeKind int

const (
	// OutcomeFinalAnswer means the provider produced answer text.
	OutcomeFinalAnswer OutcomeKind = iota
	// OutcomeToolCalls means the provider requested tool invocations.
	OutcomeToolCalls
)

// Outcome is the tagged result of one completion round trip. Exactly one of
// Text or ToolCalls is meaningful, selected by Kind; consumers switch on Kind
// rather than probing fields.
type Outcome struct {
	Kind      OutcomeKind
	Text      string
	ToolCalls []ToolCall
	Usage     *TokenUsage
}

// FinalAnswer builds a final-answer outcome.
func FinalAnswer(text string, usage *TokenUsage) *Outcome {
	return &Outcome{
		Kind:  OutcomeFinalAnswer,
		Text:  text,
		Usage: usage,
	}
}

// ToolCallsRequested builds a tool-call outcome.
func ToolCallsRequested(calls []ToolCall, usage *TokenUsage) *Outcome {
	return &Outcome{
		Kind:      OutcomeToolCalls,
		ToolCalls: calls,
		Usage:     usage,
	}
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	PromptTokens     uint32
	CompletionTokens uint32
	TotalTokens      uint32
}

// Add accumulates usage from a single round trip into the receiver.
func (u *TokenUsage) Add(other *TokenUsage) {
	if other == nil {
		return
	}
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
