// Pipeline assembly for CLI commands.
//
// Information Hiding:
// - Settings resolution order (flags, file, environment) hidden
// - Provider and agent wiring hidden

package cli

import (
	"fmt"

	"github.com/BalaAmavasai/databricks-agentic-ai/agent"
	"github.com/BalaAmavasai/databricks-agentic-ai/config"
	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
	"github.com/BalaAmavasai/databricks-agentic-ai/tools"
)

// DefaultDBPath is where chat transcripts are persisted.
const DefaultDBPath = ".askdoc/askdoc.db"

// Options holds flags shared by every command.
type Options struct {
	Provider   string
	Model      string
	ConfigPath string
	Verbose    bool
}

// AskOptions holds one-shot question options.
type AskOptions struct {
	Options
	DocPath      string
	MaxChunks    int
	Persona      string
	EnableFetch  bool
	FetchDomains []string
}

// ChatOptions holds interactive session options.
type ChatOptions struct {
	Options
	DocPath      string
	SessionID    string
	DBPath       string
	HistoryTurns int
	Watch        bool
}

// resolveSettings merges the settings file, environment variables, and flags.
// Flags win over the environment, which wins over the file.
func resolveSettings(opts Options) (*config.Settings, error) {
	var fileSettings *config.FileSettings
	if opts.ConfigPath != "" {
		fs, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		fileSettings = fs
	}

	providerName := opts.Provider
	if providerName == "" {
		providerName = fileSettings.ProviderName()
	}
	if providerName == "" {
		return nil, fmt.Errorf("--provider is required (or set provider in the settings file)")
	}

	settings, err := config.New(providerName)
	if err != nil {
		return nil, err
	}
	fileSettings.Apply(settings)

	if opts.Model != "" {
		settings.LLM.Model = opts.Model
	}
	return settings, nil
}

// createProvider builds the completion provider from resolved settings.
func createProvider(settings *config.Settings) (llm.Provider, error) {
	providerType, err := llm.ParseProviderType(settings.LLM.Provider)
	if err != nil {
		return nil, err
	}

	apiKey, err := config.APIKeyFor(settings.LLM.Provider)
	if err != nil {
		return nil, err
	}

	return providerType.
		Model(settings.LLM.Model).
		MaxTokens(settings.LLM.MaxTokens).
		Temperature(float32(settings.LLM.Temperature)).
		APIKey(apiKey)
}

// buildRegistry assembles the tool set for a run. The calculator and
// document search are always available; fetch is opt-in.
func buildRegistry(store *corpus.Store, enableFetch bool, fetchDomains []string) (*tools.Registry, error) {
	registry, err := tools.WithDefaults(store)
	if err != nil {
		return nil, err
	}

	if enableFetch {
		fetch := tools.NewFetchTool(tools.DefaultToolTimeout)
		if len(fetchDomains) > 0 {
			fetch = fetch.WithAllowedDomains(fetchDomains)
		}
		if err := registry.Register(fetch); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// newAgentBuilder seeds an agent builder from resolved settings. Callers
// layer command-specific overrides on top before building.
func newAgentBuilder(settings *config.Settings, provider llm.Provider, store *corpus.Store, registry *tools.Registry) *agent.Builder {
	builder := agent.NewBuilder().
		WithProvider(provider).
		WithStore(store).
		WithRegistry(registry).
		WithMaxToolRounds(settings.Agent.MaxToolRounds)

	if settings.Agent.Persona != "" {
		builder = builder.WithPersona(settings.Agent.Persona)
	}
	if settings.Agent.MaxChunks > 0 {
		builder = builder.WithMaxChunks(settings.Agent.MaxChunks)
	}

	return builder
}
