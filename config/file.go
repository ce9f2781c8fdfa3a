// YAML settings file support.
//
// A settings file never overrides the environment: Apply fills a value only
// when its corresponding environment variable is unset. Effective precedence
// is defaults, then file, then environment, then command-line flags.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSettings mirrors Settings with optional fields for YAML loading.
// Nil fields were absent from the file and are never applied.
type FileSettings struct {
	Provider      *string  `yaml:"provider"`
	Model         *string  `yaml:"model"`
	MaxTokens     *uint32  `yaml:"max_tokens"`
	Temperature   *float64 `yaml:"temperature"`
	Persona       *string  `yaml:"persona"`
	MaxChunks     *int     `yaml:"max_chunks"`
	HistoryTurns  *int     `yaml:"history_turns"`
	MaxToolRounds *int     `yaml:"max_tool_rounds"`
}

// LoadFile reads settings from a YAML file.
func LoadFile(path string) (*FileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var fs FileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return &fs, nil
}

// ProviderName returns the provider named in the file, or empty.
// The provider must be resolved before New runs, so it is read directly
// rather than merged by Apply.
func (f *FileSettings) ProviderName() string {
	if f == nil || f.Provider == nil {
		return ""
	}
	return *f.Provider
}

// Apply copies file values into settings for every field whose environment
// variable is unset.
func (f *FileSettings) Apply(s *Settings) {
	if f == nil || s == nil {
		return
	}

	if f.Model != nil && !envSet(modelEnvFor(s.LLM.Provider)) {
		s.LLM.Model = *f.Model
	}
	if f.MaxTokens != nil && !envSet("LLM_MAX_TOKENS") {
		s.LLM.MaxTokens = *f.MaxTokens
	}
	if f.Temperature != nil && !envSet("LLM_TEMPERATURE") {
		s.LLM.Temperature = *f.Temperature
	}
	if f.Persona != nil && !envSet("AGENT_PERSONA") {
		s.Agent.Persona = *f.Persona
	}
	if f.MaxChunks != nil && !envSet("AGENT_MAX_CHUNKS") {
		s.Agent.MaxChunks = *f.MaxChunks
	}
	if f.HistoryTurns != nil && !envSet("AGENT_HISTORY_TURNS") {
		s.Agent.HistoryTurns = *f.HistoryTurns
	}
	if f.MaxToolRounds != nil && !envSet("AGENT_MAX_TOOL_ROUNDS") {
		s.Agent.MaxToolRounds = *f.MaxToolRounds
	}
}

func envSet(key string) bool {
	return key != "" && os.Getenv(key) != ""
}

// modelEnvFor returns the model environment variable for a provider,
// or empty for unknown providers.
func modelEnvFor(provider string) string {
	info, ok := providers[normalizeProvider(provider)]
	if !ok {
		return ""
	}
	return info.modelEnv
}
