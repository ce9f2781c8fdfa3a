// Tool Dispatch.
//
// Information Hiding:
// - Correlation and ordering rules hidden from the conversation loop
// - Failure-to-result conversion hidden
// - Panic recovery internalized

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
)

// Dispatcher executes batches of requested tool calls against a registry
// and renders every outcome as a tool message. A dispatch never fails the
// conversation: unknown tools, bad arguments, and panicking tools all come
// back as error results for the model to read and recover from.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher backed by the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch runs the requested calls one at a time, in request order, and
// returns exactly one tool message per call, correlated by call ID, plus
// the raw result behind each message. A call ID repeated within the batch
// executes only the first time; later duplicates get an error result
// instead of a second execution.
func (d *Dispatcher) Dispatch(ctx context.Context, calls []llm.ToolCall) ([]llm.ChatMessage, []ToolResult) {
	messages := make([]llm.ChatMessage, 0, len(calls))
	results := make([]ToolResult, 0, len(calls))
	seen := make(map[string]bool, len(calls))

	for _, call := range calls {
		var result ToolResult
		if call.ID != "" && seen[call.ID] {
			result = FailureResultf("duplicate tool call id '%s'", call.ID)
		} else {
			seen[call.ID] = true
			result = d.dispatchOne(ctx, call)
		}

		results = append(results, result)
		messages = append(messages, llm.ToolResultMessage(call.ID, result.Text()))
	}

	return messages, results
}

// dispatchOne resolves and runs a single call, absorbing panics.
func (d *Dispatcher) dispatchOne(ctx context.Context, call llm.ToolCall) (result ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			result = FailureResultf("tool '%s' panicked: %v", call.Name, r)
		}
	}()

	tool, err := d.registry.Resolve(call.Name)
	if err != nil {
		return FailureResult(err)
	}

	args := call.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	if err := tool.Validate(args); err != nil {
		return FailureResult(fmt.Errorf("invalid arguments for '%s': %w", call.Name, err))
	}

	res, err := tool.Execute(ctx, args)
	if err != nil {
		return FailureResult(err)
	}
	if res.Success() && res.Output == "" {
		res.Output = "(empty result)"
	}
	return res
}
