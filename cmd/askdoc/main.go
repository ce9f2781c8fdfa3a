// Package main provides the askdoc CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/BalaAmavasai/databricks-agentic-ai/cli"
)

var (
	// Global flags
	provider   string
	model      string
	configPath string
	verbose    bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "askdoc",
		Short: "Grounded question answering over a single document",
		Long: `A CLI tool for asking questions about a document.

Answers are grounded: the document is split into sentence chunks, the
chunks relevant to each question are retrieved, and the model is instructed
to answer only from that context. Built-in tools (calculator, document
search) let the model work through questions that need more than retrieval.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "", "LLM provider (openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Model to use (defaults to the provider's model)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show retrieval and tool traffic")

	// Add commands
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(toolsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func globalOptions() cli.Options {
	return cli.Options{
		Provider:   provider,
		Model:      model,
		ConfigPath: configPath,
		Verbose:    verbose,
	}
}

func askCmd() *cobra.Command {
	var docPath string
	var maxChunks int
	var persona string
	var enableFetch bool
	var fetchDomains []string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question about a document",
		Long: `Ask a single question about a document and print the answer.

The document is loaded once, the sentences relevant to the question are
retrieved, and the model answers from that context alone. Exits non-zero
when no answer could be produced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.AskOptions{
				Options:      globalOptions(),
				DocPath:      docPath,
				MaxChunks:    maxChunks,
				Persona:      persona,
				EnableFetch:  enableFetch,
				FetchDomains: fetchDomains,
			}
			return cli.RunAsk(context.Background(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "Path to the document to answer from (required)")
	cmd.Flags().IntVar(&maxChunks, "max-chunks", 0, "Maximum document chunks to retrieve per question")
	cmd.Flags().StringVar(&persona, "persona", "", "System instruction overriding the default persona")
	cmd.Flags().BoolVar(&enableFetch, "enable-fetch", false, "Enable the fetch tool for HTTP GET requests")
	cmd.Flags().StringSliceVar(&fetchDomains, "fetch-domains", nil, "Domains the fetch tool may reach (default: all)")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func chatCmd() *cobra.Command {
	var docPath string
	var sessionID string
	var dbPath string
	var historyTurns int
	var watch bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session over a document",
		Long: `Start an interactive question answering session over a document.

Completed turns feed back into later questions as conversational history.
Name a session with --session to persist the transcript in SQLite and
resume it later. Type 'exit' to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.ChatOptions{
				Options:      globalOptions(),
				DocPath:      docPath,
				SessionID:    sessionID,
				DBPath:       dbPath,
				HistoryTurns: historyTurns,
				Watch:        watch,
			}
			return cli.RunChat(context.Background(), opts)
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "Path to the document to answer from (required)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID for transcript persistence")
	cmd.Flags().StringVar(&dbPath, "db", cli.DefaultDBPath, "Database path for transcript storage")
	cmd.Flags().IntVar(&historyTurns, "history-turns", 0, "Completed turns to retain as context")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the document when the file changes")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func toolsCmd() *cobra.Command {
	var verboseTools bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List built-in tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.ListTools(verboseTools)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verboseTools, "verbose", "V", false, "Show tool parameters")

	return cmd
}
