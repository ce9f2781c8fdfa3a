package corpus

import (
	"sort"
	"sync"

	"github.com/BalaAmavasai/databricks-agentic-ai/internal/dsa"
)

// IndexedRetriever matches KeywordRetriever's observable behavior but
// answers from an inverted keyword index (radix tree of word to chunk
// indexes) instead of scanning every chunk per query. The index is built
// once per document id and rebuilt when the id changes, so it suits a
// store whose document is replaced rarely and queried often.
type IndexedRetriever struct {
	mu     sync.Mutex
	docID  string
	chunks []Chunk
	index  *dsa.Trie[[]int]
}

// NewIndexedRetriever creates an indexed retriever with no index yet; the
// first Retrieve builds it.
func NewIndexedRetriever() *IndexedRetriever {
	return &IndexedRetriever{}
}

// Retrieve selects the first maxChunks chunks whose word set intersects the
// query keywords, in document order. Semantics are identical to
// KeywordRetriever.Retrieve.
func (r *IndexedRetriever) Retrieve(query string, doc Document, maxChunks int) RetrievalResult {
	if maxChunks <= 0 {
		return RetrievalResult{}
	}

	keywords := tokenSet(query)
	if len(keywords) == 0 {
		return RetrievalResult{}
	}

	r.mu.Lock()
	if r.index == nil || r.docID != doc.ID() {
		r.rebuild(doc)
	}
	chunks, index := r.chunks, r.index
	r.mu.Unlock()

	matched := make(map[int]struct{})
	for keyword := range keywords {
		ids, ok := index.Search(keyword)
		if !ok {
			continue
		}
		for _, id := range ids {
			matched[id] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return RetrievalResult{}
	}

	order := make([]int, 0, len(matched))
	for id := range matched {
		order = append(order, id)
	}
	sort.Ints(order)
	if len(order) > maxChunks {
		order = order[:maxChunks]
	}

	selected := make([]Chunk, len(order))
	for i, id := range order {
		selected[i] = chunks[id]
	}
	return RetrievalResult{Chunks: selected}
}

// rebuild recomputes chunks and the inverted index for doc.
// Caller holds r.mu.
func (r *IndexedRetriever) rebuild(doc Document) {
	r.docID = doc.ID()
	r.chunks = Split(doc)
	r.index = dsa.NewTrie[[]int]()

	for _, chunk := range r.chunks {
		for word := range tokenSet(chunk.Text) {
			ids, _ := r.index.Search(word)
			r.index.Insert(word, append(ids, chunk.Index))
		}
	}
}

// Verify IndexedRetriever implements Retriever
var _ Retriever = (*IndexedRetriever)(nil)
