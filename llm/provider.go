// Package llm provides LLM provider abstractions.
//
// LLM Provider interface - the abstract interface for completion providers.
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific error handling

package llm

import (
	"context"
)

// Provider defines the abstract interface for completion providers.
// Implementations hide provider-specific wire formats while exposing one
// blocking round trip that yields a tagged Outcome: either a final answer
// or a set of requested tool invocations, never both.
//
// The context is the sole cancellation point. An error return means the
// round trip itself failed (network, auth, rate limit); callers decide
// whether to surface or convert it. Providers make one attempt, no retry.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// Complete sends a completion request without advertising tools.
	Complete(ctx context.Context, messages []ChatMessage) (*Outcome, error)

	// CompleteWithTools sends a completion request advertising the given
	// tool definitions. The outcome may request tool invocations, each
	// carrying a correlation id to be echoed in the follow-up tool message.
	CompleteWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (*Outcome, error)
}
