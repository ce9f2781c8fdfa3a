// Package prompt assembles the message sequence sent to a completion
// provider: persona, retrieved context, conversation history, question.
package prompt

import (
	"fmt"

	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
)

// EmptyContextPlaceholder is substituted for the context block when
// retrieval selected nothing. An empty block is never sent silently; the
// model is told outright that the material had no match.
const EmptyContextPlaceholder = "No relevant context found in the document."

// questionTemplate is the literal user-message layout. Tests depend on it
// verbatim, as does any prompt tuning done against it.
const questionTemplate = "Context from the document:\n---\n%s\n---\nUser Question: %s"

// Build produces the ordered message sequence for one completion round:
// exactly one leading system message carrying the persona, any prior
// history oldest first, then the templated user message. A nil or empty
// history yields the single-shot shape.
func Build(persona, context, question string, history []llm.ChatMessage) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.SystemMessage(persona))
	messages = append(messages, history...)
	messages = append(messages, llm.UserMessage(UserContent(context, question)))
	return messages
}

// UserContent renders the templated user message body for a question and
// its retrieved context.
func UserContent(context, question string) string {
	if context == "" {
		context = EmptyContextPlaceholder
	}
	return fmt.Sprintf(questionTemplate, context, question)
}
