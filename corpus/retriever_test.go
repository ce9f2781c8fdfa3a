package corpus

import (
	"strings"
	"testing"
)

const xylarText = "Planet Xylar is a gas giant in the Andromeda sector. " +
	"Its atmosphere is mostly methane and helium. " +
	"Survey records contain no mention of Xylar having any moons. " +
	"The planet completes an orbit every twelve years."

func xylarDoc() Document {
	return NewDocument("xylar", xylarText)
}

func TestSplitSentences(t *testing.T) {
	doc := NewDocument("d", "First sentence. Second one.  Third.")
	chunks := Split(doc)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	want := []string{"First sentence", "Second one", "Third"}
	for i, chunk := range chunks {
		if chunk.Text != want[i] {
			t.Errorf("chunk %d text = %q, want %q", i, chunk.Text, want[i])
		}
		if chunk.Index != i {
			t.Errorf("chunk %d index = %d", i, chunk.Index)
		}
		// Offsets must point at the verbatim span in the source.
		span := doc.Text()[chunk.Offset : chunk.Offset+len(chunk.Text)]
		if span != chunk.Text {
			t.Errorf("chunk %d offset %d points at %q, want %q", i, chunk.Offset, span, chunk.Text)
		}
	}
}

func TestSplitEmptyDocument(t *testing.T) {
	if chunks := Split(NewDocument("d", "")); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty document, got %d", len(chunks))
	}
	if chunks := Split(NewDocument("d", " . . ")); len(chunks) != 0 {
		t.Errorf("expected no chunks for whitespace-only sentences, got %d", len(chunks))
	}
}

func TestKeywordRetrieveSelectsByOverlap(t *testing.T) {
	result := NewKeywordRetriever().Retrieve("Does Xylar have any moons?", xylarDoc(), 3)

	if result.Len() != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", result.Len(), result.Chunks)
	}
	if !strings.Contains(result.Chunks[1].Text, "no mention of Xylar having any moons") {
		t.Errorf("moons sentence not retrieved: %q", result.Chunks[1].Text)
	}
	if result.Chunks[0].Index >= result.Chunks[1].Index {
		t.Errorf("chunks out of document order: %d before %d", result.Chunks[0].Index, result.Chunks[1].Index)
	}
}

func TestRetrieveRespectsMaxChunks(t *testing.T) {
	doc := NewDocument("d", "cat one. cat two. cat three. cat four. cat five.")

	for _, max := range []int{1, 2, 3, 5, 10} {
		result := NewKeywordRetriever().Retrieve("cat", doc, max)
		wantLen := max
		if wantLen > 5 {
			wantLen = 5
		}
		if result.Len() != wantLen {
			t.Errorf("max %d: got %d chunks", max, result.Len())
		}
		// First-N cutoff in document order.
		for i, chunk := range result.Chunks {
			if chunk.Index != i {
				t.Errorf("max %d: chunk %d has index %d", max, i, chunk.Index)
			}
		}
	}

	if result := NewKeywordRetriever().Retrieve("cat", doc, 0); !result.Empty() {
		t.Errorf("max 0 should select nothing, got %d", result.Len())
	}
}

func TestRetrieveDisjointQueryReturnsEmpty(t *testing.T) {
	result := NewKeywordRetriever().Retrieve("quantum blockchain synergy", xylarDoc(), 3)
	if !result.Empty() {
		t.Errorf("expected empty result, got %d chunks", result.Len())
	}
	if result.Context() != "" {
		t.Errorf("empty result must render empty context, got %q", result.Context())
	}
}

func TestRetrieveEmptyQueryReturnsEmpty(t *testing.T) {
	// An empty query has an empty keyword set, so nothing ever matches.
	if result := NewKeywordRetriever().Retrieve("", xylarDoc(), 3); !result.Empty() {
		t.Errorf("empty query should retrieve nothing, got %d chunks", result.Len())
	}
	if result := NewKeywordRetriever().Retrieve("   ", xylarDoc(), 3); !result.Empty() {
		t.Errorf("blank query should retrieve nothing, got %d chunks", result.Len())
	}
}

func TestRetrieveEmptyDocumentReturnsEmpty(t *testing.T) {
	result := NewKeywordRetriever().Retrieve("anything", NewDocument("d", ""), 3)
	if !result.Empty() {
		t.Errorf("expected empty result for empty document, got %d", result.Len())
	}
}

func TestRetrieveNoDuplicates(t *testing.T) {
	result := NewKeywordRetriever().Retrieve("xylar planet moons atmosphere", xylarDoc(), 10)

	seen := make(map[int]bool)
	for _, chunk := range result.Chunks {
		if seen[chunk.Index] {
			t.Errorf("chunk index %d selected twice", chunk.Index)
		}
		seen[chunk.Index] = true
	}
}

func TestRetrieveChunksVerbatim(t *testing.T) {
	doc := xylarDoc()
	result := NewKeywordRetriever().Retrieve("xylar moons", doc, 10)

	if result.Empty() {
		t.Fatal("expected matches")
	}
	for _, chunk := range result.Chunks {
		if !strings.Contains(doc.Text(), chunk.Text) {
			t.Errorf("chunk %q not verbatim from document", chunk.Text)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	// Rejoining the selected chunks with the split separator must reproduce
	// the matched sentences minus the terminator characters.
	result := NewKeywordRetriever().Retrieve("Does Xylar have any moons?", xylarDoc(), 3)

	want := "Planet Xylar is a gas giant in the Andromeda sector. " +
		"Survey records contain no mention of Xylar having any moons."
	if got := result.Context(); got != want {
		t.Errorf("context round trip:\n got %q\nwant %q", got, want)
	}
}

func TestIndexedRetrieverMatchesKeywordRetriever(t *testing.T) {
	doc := xylarDoc()
	keyword := NewKeywordRetriever()
	indexed := NewIndexedRetriever()

	queries := []string{
		"Does Xylar have any moons?",
		"methane atmosphere",
		"quantum blockchain synergy",
		"",
		"planet",
		"XYLAR PLANET ORBIT atmosphere years",
	}

	for _, q := range queries {
		for _, max := range []int{1, 2, 3, 10} {
			a := keyword.Retrieve(q, doc, max)
			b := indexed.Retrieve(q, doc, max)

			if a.Len() != b.Len() {
				t.Errorf("query %q max %d: keyword %d chunks, indexed %d", q, max, a.Len(), b.Len())
				continue
			}
			for i := range a.Chunks {
				if a.Chunks[i] != b.Chunks[i] {
					t.Errorf("query %q max %d chunk %d: keyword %+v, indexed %+v",
						q, max, i, a.Chunks[i], b.Chunks[i])
				}
			}
		}
	}
}

func TestIndexedRetrieverRebuildsOnNewDocument(t *testing.T) {
	indexed := NewIndexedRetriever()

	first := NewDocument("", "The sky is blue. Grass is green.")
	if result := indexed.Retrieve("sky", first, 3); result.Len() != 1 {
		t.Fatalf("expected 1 chunk from first document, got %d", result.Len())
	}

	second := NewDocument("", "Rivers run downhill. Mountains stay put.")
	if result := indexed.Retrieve("sky", second, 3); !result.Empty() {
		t.Errorf("stale index: matched %d chunks in replaced document", result.Len())
	}
	if result := indexed.Retrieve("mountains", second, 3); result.Len() != 1 {
		t.Errorf("expected 1 chunk from second document, got %d", result.Len())
	}
}
