// Document Search Tool.
//
// Information Hiding:
// - Phrase lookup data structure hidden behind the corpus package
// - Result formatting rules hidden

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
)

// defaultSearchLimit caps how many occurrences a single search reports.
const defaultSearchLimit = 5

// DocumentSearchTool lets the model look up an exact phrase in the loaded
// document and see the sentences that contain it. It reads whatever
// document the store currently holds, so a reload mid-conversation is
// picked up on the next call.
type DocumentSearchTool struct {
	BaseTool
	store *corpus.Store
}

// NewDocumentSearchTool creates a search tool over the given store.
func NewDocumentSearchTool(store *corpus.Store) *DocumentSearchTool {
	return &DocumentSearchTool{store: store}
}

// Metadata returns the tool metadata.
func (t *DocumentSearchTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "search_document",
		Description: "Search the loaded document for an exact phrase and return the sentences containing it.",
		Parameters: []ToolParameter{
			{Name: "phrase", ParamType: "string", Description: "The exact phrase to look for", Required: true},
			{Name: "limit", ParamType: "number", Description: "Maximum number of occurrences to return (default 5)", Required: false},
		},
	}
}

type searchArgs struct {
	Phrase string `json:"phrase"`
	Limit  int    `json:"limit"`
}

// Validate validates the arguments.
func (t *DocumentSearchTool) Validate(args json.RawMessage) error {
	var a searchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Phrase == "" {
		return fmt.Errorf("phrase cannot be empty")
	}
	return nil
}

// Execute looks up the phrase in the current document.
func (t *DocumentSearchTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var a searchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return FailureResult(fmt.Errorf("invalid arguments: %w", err)), nil
	}
	if a.Phrase == "" {
		return FailureResultf("phrase cannot be empty"), nil
	}

	limit := a.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	doc, err := t.store.Current()
	if err != nil {
		return FailureResult(err), nil
	}

	occurrences := corpus.Locate(doc, a.Phrase, limit)
	if len(occurrences) == 0 {
		return SuccessResult(fmt.Sprintf("No occurrences of '%s' found in the document.", a.Phrase)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d occurrence(s) of '%s':\n", len(occurrences), a.Phrase)
	for i, occ := range occurrences {
		fmt.Fprintf(&b, "%d. [offset %d] %s\n", i+1, occ.Offset, occ.Sentence)
	}
	return SuccessResult(strings.TrimRight(b.String(), "\n")), nil
}
