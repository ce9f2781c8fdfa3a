// Package agent provides the answer orchestrator for grounded document Q&A.
//
// Contains all types used to describe answers, tool call records, and the
// outcome of asking a question.
package agent

import (
	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
)

// AnswerType indicates how a question concluded.
type AnswerType int

const (
	// AnswerFinal is a normal answer produced by the model.
	AnswerFinal AnswerType = iota
	// AnswerFailed means no answer could be produced; Err says why.
	AnswerFailed
	// AnswerCancelled means the caller's context ended the attempt.
	AnswerCancelled
)

// ToolCallRecord is the audit trail of one dispatched tool invocation.
type ToolCallRecord struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	Output    string `json:"output"`
	Failed    bool   `json:"failed"`
}

// Answer is the result of asking one question.
type Answer struct {
	Type      AnswerType
	Text      string
	Err       error
	ToolCalls []ToolCallRecord
	Rounds    int
	Usage     llm.TokenUsage
}

// IsFinal reports whether the answer is a normal model answer.
func (a *Answer) IsFinal() bool {
	return a.Type == AnswerFinal
}

func finalAnswer(text string, records []ToolCallRecord, rounds int, usage llm.TokenUsage) *Answer {
	return &Answer{
		Type:      AnswerFinal,
		Text:      text,
		ToolCalls: records,
		Rounds:    rounds,
		Usage:     usage,
	}
}

func failedAnswer(err error, records []ToolCallRecord, rounds int, usage llm.TokenUsage) *Answer {
	return &Answer{
		Type:      AnswerFailed,
		Text:      "Sorry, I ran into an error while answering: " + err.Error(),
		Err:       err,
		ToolCalls: records,
		Rounds:    rounds,
		Usage:     usage,
	}
}

func cancelledAnswer(err error, records []ToolCallRecord, rounds int, usage llm.TokenUsage) *Answer {
	return &Answer{
		Type:      AnswerCancelled,
		Err:       err,
		ToolCalls: records,
		Rounds:    rounds,
		Usage:     usage,
	}
}
