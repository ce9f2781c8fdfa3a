// Conversation session state.
//
// Information Hiding:
// - Turn storage and eviction hidden
// - Message materialization hidden

package agent

import (
	"github.com/google/uuid"

	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
)

// Turn is one completed question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}

// Session accumulates the turns of one conversation. A session belongs to
// a single caller: Ask mutates it in place and there is no internal
// locking, so it must not be shared across concurrent invocations.
type Session struct {
	id    string
	turns []Turn
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// Restore rebuilds a session from a stored transcript. Only completed
// question/answer pairs survive: tool traffic and assistant messages that
// merely request tools are skipped.
func Restore(id string, messages []llm.ChatMessage) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{id: id}

	pending := ""
	havePending := false
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleUser:
			pending = msg.Content
			havePending = true
		case llm.RoleAssistant:
			if len(msg.ToolCalls) > 0 || !havePending {
				continue
			}
			s.turns = append(s.turns, Turn{Question: pending, Answer: msg.Content})
			havePending = false
		}
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Len returns the number of retained turns.
func (s *Session) Len() int {
	return len(s.turns)
}

// Turns returns a copy of the retained turns, oldest first.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Remember appends a completed turn and evicts the oldest turns beyond
// maxTurns. A maxTurns of zero or less keeps everything.
func (s *Session) Remember(question, answer string, maxTurns int) {
	s.turns = append(s.turns, Turn{Question: question, Answer: answer})
	if maxTurns > 0 && len(s.turns) > maxTurns {
		s.turns = s.turns[len(s.turns)-maxTurns:]
	}
}

// Messages materializes the retained turns as chat messages, oldest first.
func (s *Session) Messages() []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(s.turns)*2)
	for _, turn := range s.turns {
		messages = append(messages, llm.UserMessage(turn.Question))
		messages = append(messages, llm.AssistantMessage(turn.Answer))
	}
	return messages
}

// Clear drops all retained turns but keeps the session ID.
func (s *Session) Clear() {
	s.turns = nil
}
