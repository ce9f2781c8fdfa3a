// Agent configuration types.
//
// Information Hiding:
// - Configuration validation logic hidden
// - Default values hidden

package agent

import (
	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
	"github.com/BalaAmavasai/databricks-agentic-ai/tools"
)

// DefaultPersona instructs the model to answer strictly from the supplied
// document context and to say so when the document is silent.
const DefaultPersona = "You are a helpful assistant. Answer the user's question using ONLY the provided document context. If the context does not contain the information needed, say that the document does not mention it. Do not invent facts."

const (
	// DefaultMaxTurns is the history cap applied when none is configured.
	DefaultMaxTurns = 10

	// DefaultMaxToolRounds bounds tool dispatch rounds within one question.
	DefaultMaxToolRounds = 8
)

// Config holds agent configuration.
type Config struct {
	// Persona is the system instruction the model answers under.
	Persona string

	// Tools available during a conversation turn.
	Tools []tools.Tool

	// MaxChunks caps how many document chunks retrieval feeds the prompt.
	MaxChunks int

	// KeepHistory retains completed turns on the session between questions.
	KeepHistory bool

	// MaxTurns bounds how many turns a session retains when KeepHistory
	// is set; oldest turns are evicted first.
	MaxTurns int

	// MaxToolRounds bounds tool dispatch rounds within a single question.
	MaxToolRounds int
}

// DefaultConfig returns a single-shot Q&A configuration.
func DefaultConfig() Config {
	return Config{
		Persona:       DefaultPersona,
		Tools:         []tools.Tool{},
		MaxChunks:     corpus.DefaultMaxChunks,
		MaxTurns:      DefaultMaxTurns,
		MaxToolRounds: DefaultMaxToolRounds,
	}
}

// HasTools returns true if the agent has tools configured.
func (c *Config) HasTools() bool {
	return len(c.Tools) > 0
}

// withDefaults fills unset numeric fields with their defaults.
func (c Config) withDefaults() Config {
	if c.MaxChunks <= 0 {
		c.MaxChunks = corpus.DefaultMaxChunks
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.MaxToolRounds <= 0 {
		c.MaxToolRounds = DefaultMaxToolRounds
	}
	return c
}
