// Command execution for CLI commands.
//
// Information Hiding:
// - Answer pipeline setup hidden
// - Session persistence and restore hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BalaAmavasai/databricks-agentic-ai/agent"
	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
	"github.com/BalaAmavasai/databricks-agentic-ai/storage"
	"github.com/BalaAmavasai/databricks-agentic-ai/tools"
)

// RunAsk answers a single question about a document and prints the answer.
// A failed answer is reported on stderr and returned as an error so the
// process exits non-zero.
func RunAsk(ctx context.Context, question string, opts AskOptions) error {
	settings, err := resolveSettings(opts.Options)
	if err != nil {
		return err
	}

	provider, err := createProvider(settings)
	if err != nil {
		return err
	}

	store := corpus.NewStore()
	if _, err := corpus.LoadInto(store, opts.DocPath); err != nil {
		return err
	}

	registry, err := buildRegistry(store, opts.EnableFetch, opts.FetchDomains)
	if err != nil {
		return err
	}

	builder := newAgentBuilder(settings, provider, store, registry)
	if opts.Persona != "" {
		builder = builder.WithPersona(opts.Persona)
	}
	if opts.MaxChunks > 0 {
		builder = builder.WithMaxChunks(opts.MaxChunks)
	}

	a, err := builder.Build()
	if err != nil {
		return err
	}
	if opts.Verbose {
		a = a.Verbose(true)
	}

	answer := a.Ask(ctx, nil, question)

	switch answer.Type {
	case agent.AnswerFinal:
		fmt.Printf("%s\n", answer.Text)
		if opts.Verbose {
			printAnswerStats(answer)
		}
		return nil
	case agent.AnswerFailed:
		fmt.Fprintf(os.Stderr, "Error: %v\n", answer.Err)
		return fmt.Errorf("answer failed: %v", answer.Err)
	case agent.AnswerCancelled:
		return answer.Err
	default:
		return fmt.Errorf("unknown answer type: %v", answer.Type)
	}
}

// RunChat starts an interactive question answering session over a document.
func RunChat(ctx context.Context, opts ChatOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	settings, err := resolveSettings(opts.Options)
	if err != nil {
		return err
	}

	provider, err := createProvider(settings)
	if err != nil {
		return err
	}

	store := corpus.NewStore()
	doc, err := corpus.LoadInto(store, opts.DocPath)
	if err != nil {
		return err
	}

	registry, err := buildRegistry(store, false, nil)
	if err != nil {
		return err
	}

	historyTurns := opts.HistoryTurns
	if historyTurns <= 0 {
		historyTurns = settings.Agent.HistoryTurns
	}

	a, err := newAgentBuilder(settings, provider, store, registry).
		WithHistory(historyTurns).
		Build()
	if err != nil {
		return err
	}
	if opts.Verbose {
		a = a.Verbose(true)
	}

	// Set up transcript persistence if a session was named
	var transcripts *storage.SqliteStorage
	if opts.SessionID != "" {
		s, err := storage.OpenSqlite(opts.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer s.Close()
		transcripts = s
	}

	session := agent.NewSession()
	if transcripts != nil {
		history, err := transcripts.Load(ctx, opts.SessionID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		session = agent.Restore(opts.SessionID, history)
		if session.Len() > 0 {
			fmt.Printf("Resuming session '%s' (%d turns)\n\n", opts.SessionID, session.Len())
		}
	}

	if opts.Watch {
		watcher, err := corpus.NewWatcher(store, opts.DocPath)
		if err != nil {
			return fmt.Errorf("failed to watch document: %w", err)
		}
		defer watcher.Stop()
		go printReloadEvents(watcher.Start(ctx))
	}

	fmt.Printf("Chat about %s. Type 'exit' to quit.\n\n", doc.ID())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		answer := a.Ask(ctx, session, input)

		switch answer.Type {
		case agent.AnswerFinal:
			fmt.Printf("\n%s\n\n", answer.Text)
			if opts.Verbose {
				printAnswerStats(answer)
			}

			// Save to storage
			if transcripts != nil {
				if err := transcripts.Save(ctx, session.ID(), session.Messages()); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
				}
			}
		case agent.AnswerFailed:
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", answer.Err)
		case agent.AnswerCancelled:
			return answer.Err
		}
	}

	return scanner.Err()
}

// printReloadEvents reports document reloads until the watcher stops.
func printReloadEvents(events <-chan corpus.ReloadEvent) {
	for ev := range events {
		if ev.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: document reload failed: %v\n", ev.Err)
			continue
		}
		fmt.Printf("(document reloaded: %s)\n", ev.Path)
	}
}

// ListTools lists the built-in tools.
func ListTools(verbose bool) {
	registry := tools.NewRegistry()

	// Register built-in tools (errors ignored - no duplicates in this list)
	_ = registry.Register(tools.NewCalculateTool())
	_ = registry.Register(tools.NewDocumentSearchTool(corpus.NewStore()))
	_ = registry.Register(tools.NewFetchTool(tools.DefaultToolTimeout))

	fmt.Println("Available tools:")
	fmt.Println()

	for _, name := range registry.Names() {
		tool, err := registry.Resolve(name)
		if err != nil {
			continue
		}
		meta := tool.Metadata()

		fmt.Printf("  %s\n", meta.Name)
		fmt.Printf("    %s\n", meta.Description)

		if verbose && len(meta.Parameters) > 0 {
			fmt.Println("    Parameters:")
			for _, param := range meta.Parameters {
				req := ""
				if param.Required {
					req = "*"
				}
				fmt.Printf("      %s%s: %s - %s\n", param.Name, req, param.ParamType, param.Description)
			}
		}
		fmt.Println()
	}
}

const maxToolOutputLen = 200

// printAnswerStats prints tool traffic and token usage for a finished answer.
func printAnswerStats(answer *agent.Answer) {
	if len(answer.ToolCalls) > 0 {
		fmt.Println("--- Tool calls ---")
		for _, call := range answer.ToolCalls {
			status := "ok"
			if call.Failed {
				status = "failed"
			}
			fmt.Printf("  [%s] %s(%s)\n", status, call.Name, call.Arguments)
			fmt.Printf("      %s\n", truncateString(call.Output, maxToolOutputLen))
		}
		fmt.Println()
	}

	if answer.Usage.TotalTokens > 0 {
		fmt.Printf("Token Usage:\n")
		fmt.Printf("  Prompt tokens: %d\n", answer.Usage.PromptTokens)
		fmt.Printf("  Completion tokens: %d\n", answer.Usage.CompletionTokens)
		fmt.Printf("  Total tokens: %d\n", answer.Usage.TotalTokens)
	}
}

// truncateString truncates a string to maxLen runes, preserving UTF-8 boundaries.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
