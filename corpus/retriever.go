package corpus

import "strings"

// DefaultMaxChunks bounds how many chunks a retrieval selects when the
// caller does not configure its own limit.
const DefaultMaxChunks = 3

// Retriever selects the chunks of a document relevant to a query. The
// engine depends only on this contract, so a ranked or semantic
// implementation can substitute for the keyword one without touching it.
type Retriever interface {
	Retrieve(query string, doc Document, maxChunks int) RetrievalResult
}

// KeywordRetriever selects chunks by keyword overlap: a chunk matches when
// its lower-cased word set intersects the query's lower-cased word set.
// Selection is unranked, first-N in document order. An empty query matches
// nothing, so a blank question retrieves no context at all.
type KeywordRetriever struct{}

// NewKeywordRetriever creates the default retriever.
func NewKeywordRetriever() KeywordRetriever {
	return KeywordRetriever{}
}

// Retrieve returns the first maxChunks chunks whose word set intersects the
// query keywords, in document order.
func (KeywordRetriever) Retrieve(query string, doc Document, maxChunks int) RetrievalResult {
	if maxChunks <= 0 {
		return RetrievalResult{}
	}

	keywords := tokenSet(query)
	if len(keywords) == 0 {
		return RetrievalResult{}
	}

	var selected []Chunk
	for _, chunk := range Split(doc) {
		if len(selected) >= maxChunks {
			break
		}
		if overlaps(chunk.Text, keywords) {
			selected = append(selected, chunk)
		}
	}
	return RetrievalResult{Chunks: selected}
}

// tokenSet lower-cases text and splits it on whitespace into a set.
// Duplicates collapse; punctuation stays attached to its word.
func tokenSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// overlaps reports whether any word of text is in the keyword set.
func overlaps(text string, keywords map[string]struct{}) bool {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := keywords[w]; ok {
			return true
		}
	}
	return false
}

// Verify KeywordRetriever implements Retriever
var _ Retriever = KeywordRetriever{}
