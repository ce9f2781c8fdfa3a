package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestOutcomeTagging(t *testing.T) {
	usage := &TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}

	final := FinalAnswer("the answer", usage)
	if final.Kind != OutcomeFinalAnswer {
		t.Errorf("expected OutcomeFinalAnswer, got %v", final.Kind)
	}
	if final.Text != "the answer" {
		t.Errorf("expected text to be set, got %q", final.Text)
	}
	if len(final.ToolCalls) != 0 {
		t.Errorf("final answer must not carry tool calls, got %d", len(final.ToolCalls))
	}

	calls := []ToolCall{{ID: "call-1", Name: "calculate", Arguments: []byte(`{"expression":"1+1"}`)}}
	requested := ToolCallsRequested(calls, usage)
	if requested.Kind != OutcomeToolCalls {
		t.Errorf("expected OutcomeToolCalls, got %v", requested.Kind)
	}
	if requested.Text != "" {
		t.Errorf("tool call outcome must not carry text, got %q", requested.Text)
	}
	if len(requested.ToolCalls) != 1 || requested.ToolCalls[0].Name != "calculate" {
		t.Errorf("unexpected tool calls: %+v", requested.ToolCalls)
	}
}

func TestTokenUsageAdd(t *testing.T) {
	var total TokenUsage
	total.Add(&TokenUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120})
	total.Add(&TokenUsage{PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60})
	total.Add(nil)

	if total.PromptTokens != 150 || total.CompletionTokens != 30 || total.TotalTokens != 180 {
		t.Errorf("unexpected accumulated usage: %+v", total)
	}
}

func TestMessageHelpers(t *testing.T) {
	if got := SystemMessage("persona").Role; got != RoleSystem {
		t.Errorf("SystemMessage role = %q", got)
	}
	if got := UserMessage("q").Role; got != RoleUser {
		t.Errorf("UserMessage role = %q", got)
	}
	if got := AssistantMessage("a").Role; got != RoleAssistant {
		t.Errorf("AssistantMessage role = %q", got)
	}

	result := ToolResultMessage("call-7", "50.0")
	if result.Role != RoleTool {
		t.Errorf("ToolResultMessage role = %q", result.Role)
	}
	if result.ToolCallID != "call-7" {
		t.Errorf("ToolResultMessage correlation id = %q", result.ToolCallID)
	}
}

func TestConvertToOpenAIMessagesToolFlow(t *testing.T) {
	messages := []ChatMessage{
		SystemMessage("persona"),
		UserMessage("What is 2+2?"),
		AssistantToolCallMessage("", []ToolCall{
			{ID: "call-1", Name: "calculate", Arguments: []byte(`{"expression":"2+2"}`)},
		}),
		ToolResultMessage("call-1", "4.0"),
	}

	converted := convertToOpenAIMessages(messages)
	if len(converted) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(converted))
	}

	assistant := converted[2]
	if len(assistant.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call on assistant message, got %d", len(assistant.ToolCalls))
	}
	if assistant.ToolCalls[0].ID != "call-1" || assistant.ToolCalls[0].Function.Name != "calculate" {
		t.Errorf("unexpected tool call: %+v", assistant.ToolCalls[0])
	}

	toolMsg := converted[3]
	if toolMsg.ToolCallID != "call-1" {
		t.Errorf("tool result lost correlation id: %+v", toolMsg)
	}
	if toolMsg.Content != "4.0" {
		t.Errorf("tool result content = %q", toolMsg.Content)
	}
}

func TestConvertToAnthropicToolSchema(t *testing.T) {
	tools := []ToolDefinition{{
		Name:        "calculate",
		Description: "Evaluates arithmetic",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"expression": map[string]interface{}{
					"type":        "string",
					"description": "The expression to evaluate",
				},
			},
			"required": []string{"expression"},
		},
	}}

	converted := convertToAnthropicTools(tools)
	if len(converted) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(converted))
	}
	param := converted[0].OfTool
	if param == nil {
		t.Fatal("expected OfTool to be populated")
	}
	if param.Name != "calculate" {
		t.Errorf("tool name = %q", param.Name)
	}
	props, ok := param.InputSchema.Properties.(map[string]interface{})
	if !ok {
		t.Fatalf("InputSchema.Properties has type %T, want map[string]interface{}", param.InputSchema.Properties)
	}
	if _, ok := props["expression"]; !ok {
		t.Error("expression property missing from input schema")
	}
	if len(param.InputSchema.Required) != 1 || param.InputSchema.Required[0] != "expression" {
		t.Errorf("required = %v", param.InputSchema.Required)
	}
}

func TestConvertToGeminiMessagesResolvesToolNames(t *testing.T) {
	messages := []ChatMessage{
		UserMessage("What is 25 + 75 / 3?"),
		AssistantToolCallMessage("", []ToolCall{
			{ID: "call-abc", Name: "calculate", Arguments: []byte(`{"expression":"25 + 75 / 3"}`)},
		}),
		ToolResultMessage("call-abc", `{"result":"50.0"}`),
	}

	contents, _ := convertToGeminiMessages(messages)
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}

	last := contents[2]
	if len(last.Parts) != 1 || last.Parts[0].FunctionResponse == nil {
		t.Fatalf("expected function response part, got %+v", last.Parts)
	}
	// The synthetic correlation id must resolve back to the function name.
	if got := last.Parts[0].FunctionResponse.Name; got != "calculate" {
		t.Errorf("function response name = %q, want calculate", got)
	}
}

func TestConvertToGeminiSchemaTypes(t *testing.T) {
	schema := convertToGeminiSchema(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"phrase": map[string]interface{}{"type": "string", "description": "exact phrase"},
			"limit":  map[string]interface{}{"type": "integer"},
		},
		"required": []string{"phrase"},
	})

	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["phrase"].Description != "exact phrase" {
		t.Errorf("description not carried: %+v", schema.Properties["phrase"])
	}
	if len(schema.Required) != 1 || schema.Required[0] != "phrase" {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestParseProviderType(t *testing.T) {
	cases := []struct {
		input string
		want  ProviderType
		ok    bool
	}{
		{"openai", ProviderOpenAI, true},
		{"GPT", ProviderOpenAI, true},
		{"anthropic", ProviderAnthropic, true},
		{"claude", ProviderAnthropic, true},
		{"deepseek", ProviderDeepSeek, true},
		{"gemini", ProviderGemini, true},
		{"google", ProviderGemini, true},
		{"mistral", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseProviderType(tc.input)
		if tc.ok && err != nil {
			t.Errorf("ParseProviderType(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseProviderType(%q) expected error", tc.input)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseProviderType(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestProviderTypeEnvVars(t *testing.T) {
	if got := ProviderOpenAI.EnvVar(); got != "OPENAI_API_KEY" {
		t.Errorf("openai env var = %q", got)
	}
	if got := ProviderAnthropic.EnvVar(); got != "ANTHROPIC_API_KEY" {
		t.Errorf("anthropic env var = %q", got)
	}
	if got := ProviderDeepSeek.EnvVar(); got != "DEEPSEEK_API_KEY" {
		t.Errorf("deepseek env var = %q", got)
	}
	if got := ProviderGemini.EnvVar(); got != "GEMINI_API_KEY" {
		t.Errorf("gemini env var = %q", got)
	}
}

func TestToolCallArgumentsRoundTrip(t *testing.T) {
	call := ToolCall{ID: "call-1", Name: "calculate", Arguments: []byte(`{"expression":"25 + 75 / 3"}`)}

	var args struct {
		Expression string `json:"expression"`
	}
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		t.Fatalf("unmarshal arguments: %v", err)
	}
	if args.Expression != "25 + 75 / 3" {
		t.Errorf("expression = %q", args.Expression)
	}
}

// TestOpenAIErrorNoAPIKeyLeak verifies OpenAI errors don't contain API keys
func TestOpenAIErrorNoAPIKeyLeak(t *testing.T) {
	// Use intentionally invalid API key
	testKey := "sk-test-invalid-key-12345xyz"
	provider := NewOpenAIProvider(testKey, "gpt-4o", 100, 0.7)

	// Force error with invalid key
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := provider.Complete(ctx, []ChatMessage{
		{Role: RoleUser, Content: "test"},
	})

	// Should return an error
	if err == nil {
		t.Skip("Expected error with invalid API key, but got success - skipping leak test")
	}

	// Verify error doesn't contain the API key
	errStr := err.Error()
	if strings.Contains(errStr, testKey) {
		t.Errorf("OpenAI error message leaked API key: %v", errStr)
	}

	// Should not contain common auth header patterns
	if strings.Contains(errStr, "Authorization:") {
		t.Errorf("OpenAI error exposed Authorization header: %v", errStr)
	}
}

// TestAnthropicErrorNoAPIKeyLeak verifies Anthropic errors don't contain API keys
func TestAnthropicErrorNoAPIKeyLeak(t *testing.T) {
	testKey := "sk-ant-REDACTED"
	provider := NewAnthropicProvider(testKey, "claude-sonnet-4-20250514", 100, 0.7)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := provider.Complete(ctx, []ChatMessage{
		{Role: RoleUser, Content: "test"},
	})

	if err == nil {
		t.Skip("Expected error with invalid API key, but got success - skipping leak test")
	}

	errStr := err.Error()
	if strings.Contains(errStr, testKey) {
		t.Errorf("Anthropic error message leaked API key: %v", errStr)
	}

	if strings.Contains(errStr, "x-api-key:") || strings.Contains(errStr, "X-API-Key:") {
		t.Errorf("Anthropic error exposed API key header: %v", errStr)
	}
}
