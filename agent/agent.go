// Grounded answer orchestration.
//
// This is THE canonical answer path. Every question, one-shot or
// conversational, goes through Ask.
//
// Information Hiding:
// - Retrieval and prompt assembly coordination hidden
// - Provider communication hidden
// - Tool dispatch coordination hidden
// - History management hidden

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
	"github.com/BalaAmavasai/databricks-agentic-ai/prompt"
	"github.com/BalaAmavasai/databricks-agentic-ai/tools"
)

// Agent answers questions about the document in its store by retrieving
// relevant chunks, assembling a grounded prompt, and driving the provider
// through however many tool rounds it requests.
type Agent struct {
	config     Config
	provider   llm.Provider
	store      *corpus.Store
	retriever  corpus.Retriever
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	verbose    bool
}

// New creates an agent with the given configuration, provider, and
// document store. A nil store gets a fresh empty one; asking against it
// fails with corpus.ErrNoDocument until a document is loaded.
func New(config Config, provider llm.Provider, store *corpus.Store) (*Agent, error) {
	if provider == nil {
		return nil, fmt.Errorf("agent: provider cannot be nil")
	}
	if strings.TrimSpace(config.Persona) == "" {
		return nil, fmt.Errorf("agent: persona cannot be empty")
	}
	config = config.withDefaults()

	if store == nil {
		store = corpus.NewStore()
	}

	registry := tools.NewRegistry()
	for _, tool := range config.Tools {
		_ = registry.Register(tool) // Ignore duplicate errors - caller's responsibility
	}

	return &Agent{
		config:     config,
		provider:   provider,
		store:      store,
		retriever:  corpus.NewKeywordRetriever(),
		registry:   registry,
		dispatcher: tools.NewDispatcher(registry),
	}, nil
}

// WithRetriever swaps the retrieval strategy.
func (a *Agent) WithRetriever(retriever corpus.Retriever) *Agent {
	if retriever != nil {
		a.retriever = retriever
	}
	return a
}

// WithRegistry replaces the tool registry, superseding any tools given
// through Config.Tools.
func (a *Agent) WithRegistry(registry *tools.Registry) *Agent {
	if registry != nil {
		a.registry = registry
		a.dispatcher = tools.NewDispatcher(registry)
	}
	return a
}

// Verbose enables stage progress output.
func (a *Agent) Verbose(enabled bool) *Agent {
	a.verbose = enabled
	return a
}

// Quiet disables verbose output.
func (a *Agent) Quiet() *Agent {
	a.verbose = false
	return a
}

// Persona returns the persona the agent answers under.
func (a *Agent) Persona() string {
	return a.config.Persona
}

// Ask answers one question against the loaded document. It always returns
// an Answer value: failures and cancellation are reported through
// Answer.Type and Answer.Err, never by panicking past this boundary.
// Session may be nil for single-shot questions.
func (a *Agent) Ask(ctx context.Context, session *Session, question string) *Answer {
	var (
		records []ToolCallRecord
		rounds  int
		usage   llm.TokenUsage
	)

	doc, err := a.store.Current()
	if err != nil {
		return failedAnswer(err, records, rounds, usage)
	}

	result := a.retriever.Retrieve(question, doc, a.config.MaxChunks)
	if a.verbose {
		fmt.Printf("[retrieve] %d chunk(s) selected for %q\n", result.Len(), question)
	}

	var history []llm.ChatMessage
	if a.config.KeepHistory && session != nil {
		history = session.Messages()
	}
	messages := prompt.Build(a.config.Persona, result.Context(), question, history)

	for {
		// The provider round trip is the sole suspension point.
		if ctx.Err() != nil {
			return cancelledAnswer(ctx.Err(), records, rounds, usage)
		}

		outcome, err := a.complete(ctx, messages)
		if err != nil {
			if ctx.Err() != nil {
				return cancelledAnswer(err, records, rounds, usage)
			}
			return failedAnswer(err, records, rounds, usage)
		}
		usage.Add(outcome.Usage)

		if outcome.Kind == llm.OutcomeFinalAnswer {
			if a.config.KeepHistory && session != nil {
				session.Remember(question, outcome.Text, a.config.MaxTurns)
			}
			return finalAnswer(outcome.Text, records, rounds, usage)
		}

		if rounds >= a.config.MaxToolRounds {
			err := fmt.Errorf("no final answer after %d tool rounds", a.config.MaxToolRounds)
			return failedAnswer(err, records, rounds, usage)
		}
		rounds++

		if a.verbose {
			for _, call := range outcome.ToolCalls {
				fmt.Printf("[round %d] calling %s(%s)\n", rounds, call.Name, truncate(string(call.Arguments), 100))
			}
		}

		messages = append(messages, llm.AssistantToolCallMessage(outcome.Text, outcome.ToolCalls))
		toolMessages, results := a.dispatcher.Dispatch(ctx, outcome.ToolCalls)
		messages = append(messages, toolMessages...)

		for i, call := range outcome.ToolCalls {
			records = append(records, ToolCallRecord{
				Name:      call.Name,
				Arguments: string(call.Arguments),
				Output:    results[i].Text(),
				Failed:    !results[i].Success(),
			})
		}
	}
}

// complete advertises tools only when some are registered.
func (a *Agent) complete(ctx context.Context, messages []llm.ChatMessage) (*llm.Outcome, error) {
	schemas := a.registry.Schemas()
	if len(schemas) == 0 {
		return a.provider.Complete(ctx, messages)
	}
	return a.provider.CompleteWithTools(ctx, messages, schemas)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
