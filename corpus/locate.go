package corpus

import (
	"github.com/BalaAmavasai/databricks-agentic-ai/internal/dsa"
)

// Occurrence is one exact match of a phrase inside a document: the byte
// offset of the match and the sentence containing it.
type Occurrence struct {
	Offset   int
	Sentence string
}

// Locate finds exact occurrences of phrase in doc, at most limit of them
// (limit <= 0 means all). Matching is case-sensitive. The suffix array is
// rebuilt on every call and carries no state between documents.
func Locate(doc Document, phrase string, limit int) []Occurrence {
	if phrase == "" || doc.Empty() {
		return nil
	}

	sa := dsa.BuildSuffixArray(doc.Text())
	positions := sa.Search(phrase)
	if len(positions) == 0 {
		return nil
	}
	if limit > 0 && len(positions) > limit {
		positions = positions[:limit]
	}

	chunks := Split(doc)
	occurrences := make([]Occurrence, 0, len(positions))
	for _, pos := range positions {
		occurrences = append(occurrences, Occurrence{
			Offset:   pos,
			Sentence: sentenceAt(chunks, pos),
		})
	}
	return occurrences
}

// sentenceAt returns the text of the chunk whose span contains pos, or the
// empty string when the position falls between sentences.
func sentenceAt(chunks []Chunk, pos int) string {
	for _, c := range chunks {
		if pos >= c.Offset && pos < c.Offset+len(c.Text) {
			return c.Text
		}
	}
	return ""
}
