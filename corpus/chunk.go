package corpus

import "strings"

// chunkSeparator joins selected chunks back into a context block. It mirrors
// the sentence terminator the splitter consumes, so rejoining selected
// chunks reproduces the matched sentences minus the terminators.
const chunkSeparator = ". "

// Chunk is one sentence of a document: the trimmed text, its byte offset in
// the source, and its position among the document's chunks. Chunks are
// derived on demand and never persisted.
type Chunk struct {
	Text   string
	Offset int
	Index  int
}

// Split cuts a document into sentence chunks: split on the terminator
// character, trim whitespace, drop empties. Chunk boundaries never fall
// inside a sentence.
func Split(doc Document) []Chunk {
	var chunks []Chunk
	offset := 0
	index := 0
	for _, raw := range strings.Split(doc.Text(), ".") {
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := strings.Index(raw, trimmed)
			chunks = append(chunks, Chunk{
				Text:   trimmed,
				Offset: offset + lead,
				Index:  index,
			})
			index++
		}
		offset += len(raw) + 1
	}
	return chunks
}

// RetrievalResult is the ordered sequence of chunks selected for a query.
// Possibly empty; never contains duplicates; preserves document order.
type RetrievalResult struct {
	Chunks []Chunk
}

// Context renders the selected chunks as a single block: chunks joined with
// ". " and a trailing "." when any were selected, the empty string otherwise.
func (r RetrievalResult) Context() string {
	if len(r.Chunks) == 0 {
		return ""
	}
	texts := make([]string, len(r.Chunks))
	for i, c := range r.Chunks {
		texts[i] = c.Text
	}
	return strings.Join(texts, chunkSeparator) + "."
}

// Empty reports whether no chunks were selected.
func (r RetrievalResult) Empty() bool {
	return len(r.Chunks) == 0
}

// Len returns the number of selected chunks.
func (r RetrievalResult) Len() int {
	return len(r.Chunks)
}
