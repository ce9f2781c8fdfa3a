package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestCalculateExpressions(t *testing.T) {
	tool := NewCalculateTool()

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"division binds tighter than addition", "25 + 75 / 3", "50.0"},
		{"multiplication binds tighter than subtraction", "10 - 2 * 3", "4.0"},
		{"left associative division", "100 / 5 / 2", "10.0"},
		{"parentheses override precedence", "(25 + 75) / 4", "25.0"},
		{"nested parentheses", "2 * (3 + (4 - 1))", "12.0"},
		{"unary minus", "-5 + 3", "-2.0"},
		{"unary minus on group", "-(2 + 3) * 4", "-20.0"},
		{"single number", "7", "7.0"},
		{"decimal operands", "3.5 * 2", "7.0"},
		{"fractional result", "10 / 4", "2.5"},
		{"exact binary fractions", "0.5 + 0.25", "0.75"},
		{"repeating decimal", "1 / 3", "0.3333333333333333"},
		{"no spaces", "2+3*4", "14.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, _ := json.Marshal(map[string]string{"expression": tt.expr})
			result, err := tool.Execute(context.Background(), args)
			if err != nil {
				t.Fatalf("Execute(%q) returned error: %v", tt.expr, err)
			}
			if !result.Success() {
				t.Fatalf("Execute(%q) failed: %v", tt.expr, result.Error)
			}
			if result.Output != tt.want {
				t.Errorf("Execute(%q) = %q, want %q", tt.expr, result.Output, tt.want)
			}
		})
	}
}

func TestCalculateRejectsBadExpressions(t *testing.T) {
	tool := NewCalculateTool()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{"division by zero", "25 / 0", "Division by zero"},
		{"division by zero in group", "1 / (3 - 3)", "Division by zero"},
		{"unbalanced parenthesis", "(2 + 3", "missing closing parenthesis"},
		{"dangling operator", "2 +", "unexpected end of expression"},
		{"doubled operator", "2 + * 3", "unexpected character '*'"},
		{"letters", "two + two", "unexpected character 't'"},
		{"trailing input", "2 3", "unexpected character '3'"},
		{"lone dot", ".", "invalid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, _ := json.Marshal(map[string]string{"expression": tt.expr})
			result, err := tool.Execute(context.Background(), args)
			if err != nil {
				t.Fatalf("Execute(%q) returned error: %v", tt.expr, err)
			}
			if result.Success() {
				t.Fatalf("Execute(%q) = %q, want failure", tt.expr, result.Output)
			}
			if !strings.Contains(result.Error.Error(), tt.wantErr) {
				t.Errorf("Execute(%q) error = %q, want it to contain %q", tt.expr, result.Error, tt.wantErr)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	tool := NewCalculateTool()

	tests := []struct {
		name    string
		args    string
		wantErr bool
	}{
		{"valid expression", `{"expression":"1 + 1"}`, false},
		{"empty expression", `{"expression":""}`, true},
		{"whitespace expression", `{"expression":"   "}`, true},
		{"missing expression", `{}`, true},
		{"invalid json", `{invalid}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tool.Validate(json.RawMessage(tt.args))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCalculateDivisionByZeroRendersForModel(t *testing.T) {
	tool := NewCalculateTool()

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"expression":"10 / 0"}`))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := result.Text(), "Error: Division by zero"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "50.0"},
		{2.5, "2.5"},
		{-3, "-3.0"},
		{0, "0.0"},
		{0.75, "0.75"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
