// Arithmetic Calculator Tool.
//
// Information Hiding:
// - Expression grammar and parsing strategy hidden
// - Numeric formatting rules hidden

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CalculateTool evaluates arithmetic expressions handed over by the model.
// Expressions are parsed with a small recursive-descent parser over an
// explicit grammar, so only numerals, + - * /, and parentheses are ever
// interpreted. Anything else is rejected with a descriptive error.
type CalculateTool struct {
	BaseTool
}

// NewCalculateTool creates the calculator tool.
func NewCalculateTool() *CalculateTool {
	return &CalculateTool{}
}

// Metadata returns the tool metadata.
func (t *CalculateTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "calculate",
		Description: "Evaluate an arithmetic expression. Supports +, -, *, / and parentheses.",
		Parameters: []ToolParameter{
			{Name: "expression", ParamType: "string", Description: "The arithmetic expression to evaluate, e.g. '25 + 75 / 3'", Required: true},
		},
	}
}

type calcArgs struct {
	Expression string `json:"expression"`
}

// Validate validates the arguments.
func (t *CalculateTool) Validate(args json.RawMessage) error {
	var a calcArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(a.Expression) == "" {
		return fmt.Errorf("expression cannot be empty")
	}
	return nil
}

// Execute parses and evaluates the expression.
func (t *CalculateTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var a calcArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return FailureResult(fmt.Errorf("invalid arguments: %w", err)), nil
	}
	if strings.TrimSpace(a.Expression) == "" {
		return FailureResultf("expression cannot be empty"), nil
	}

	value, err := evaluate(a.Expression)
	if err != nil {
		return FailureResult(err), nil
	}

	return SuccessResult(formatNumber(value)), nil
}

// formatNumber renders a result the way the answers quote it: integers
// keep one trailing decimal place, everything else prints at the shortest
// round-trip precision.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// evaluate parses the whole input as one expression and rejects trailing
// input.
func evaluate(input string) (float64, error) {
	p := &exprParser{input: input}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character '%c' at position %d", p.input[p.pos], p.pos)
	}
	return value, nil
}

// exprParser is a recursive-descent parser for the grammar
//
//	expr   = term (('+' | '-') term)*
//	term   = factor (('*' | '/') factor)*
//	factor = number | '(' expr ')' | '-' factor
//
// Precedence and associativity fall out of the grammar shape: * and /
// bind tighter than + and -, all operators associate left.
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return value, nil
		}
		p.pos++

		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			value += rhs
		} else {
			value -= rhs
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return value, nil
		}
		p.pos++

		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			value *= rhs
		} else {
			if rhs == 0 {
				return 0, fmt.Errorf("Division by zero")
			}
			value /= rhs
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	p.skipSpaces()

	ch, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	switch {
	case ch == '(':
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if next, ok := p.peek(); !ok || next != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return value, nil

	case ch == '-':
		p.pos++
		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil

	case ch >= '0' && ch <= '9' || ch == '.':
		return p.parseNumber()

	default:
		return 0, fmt.Errorf("unexpected character '%c' at position %d", ch, p.pos)
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	sawDot := false
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '.' {
			if sawDot {
				break
			}
			sawDot = true
			p.pos++
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		p.pos++
	}

	text := p.input[start:p.pos]
	if text == "" || text == "." {
		return 0, fmt.Errorf("invalid number at position %d", start)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s' at position %d", text, start)
	}
	return value, nil
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}
