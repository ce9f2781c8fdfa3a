// Agent builder for fluent configuration.
//
// Information Hiding:
// - Builder state management hidden
// - Default value application hidden

package agent

import (
	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
	"github.com/BalaAmavasai/databricks-agentic-ai/tools"
)

// Builder provides fluent configuration for creating agents.
// Usage: agent.NewBuilder().WithProvider(p).WithStore(s).Build().
type Builder struct {
	config    Config
	provider  llm.Provider
	store     *corpus.Store
	retriever corpus.Retriever
	registry  *tools.Registry
}

// NewBuilder creates a builder seeded with the default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithPersona sets the system instruction the agent answers under.
func (b *Builder) WithPersona(persona string) *Builder {
	b.config.Persona = persona
	return b
}

// WithProvider sets the completion provider. Required.
func (b *Builder) WithProvider(provider llm.Provider) *Builder {
	b.provider = provider
	return b
}

// WithStore sets the document store the agent answers from.
func (b *Builder) WithStore(store *corpus.Store) *Builder {
	b.store = store
	return b
}

// WithRetriever overrides the default keyword retriever.
func (b *Builder) WithRetriever(retriever corpus.Retriever) *Builder {
	b.retriever = retriever
	return b
}

// WithRegistry supplies a pre-built tool registry, superseding WithTool.
func (b *Builder) WithRegistry(registry *tools.Registry) *Builder {
	b.registry = registry
	return b
}

// WithTool adds a tool to the agent.
func (b *Builder) WithTool(tool tools.Tool) *Builder {
	b.config.Tools = append(b.config.Tools, tool)
	return b
}

// WithHistory enables conversational history capped at maxTurns.
func (b *Builder) WithHistory(maxTurns int) *Builder {
	b.config.KeepHistory = true
	if maxTurns > 0 {
		b.config.MaxTurns = maxTurns
	}
	return b
}

// WithMaxChunks caps how many chunks retrieval feeds the prompt.
func (b *Builder) WithMaxChunks(n int) *Builder {
	b.config.MaxChunks = n
	return b
}

// WithMaxToolRounds bounds tool dispatch rounds within one question.
func (b *Builder) WithMaxToolRounds(n int) *Builder {
	b.config.MaxToolRounds = n
	return b
}

// Build creates the agent. It fails on a nil provider or empty persona.
func (b *Builder) Build() (*Agent, error) {
	a, err := New(b.config, b.provider, b.store)
	if err != nil {
		return nil, err
	}
	if b.retriever != nil {
		a.WithRetriever(b.retriever)
	}
	if b.registry != nil {
		a.WithRegistry(b.registry)
	}
	return a, nil
}
