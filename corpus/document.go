// Package corpus holds the document under question answering and the
// retrieval machinery that selects context from it.
//
// Information Hiding:
// - Document contents are immutable; the store replaces them wholesale
// - Chunk boundaries (sentence splitting) and offsets
// - Retrieval strategy behind the Retriever interface
package corpus

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ErrNotFound indicates the document source could not be read.
var ErrNotFound = errors.New("document source not found")

// ErrNoDocument indicates no document has been loaded into the store.
var ErrNoDocument = errors.New("no document loaded")

// Document is an immutable text blob with an identifier. Once created it is
// never mutated; a store swaps whole documents instead.
type Document struct {
	id   string
	text string
}

// NewDocument creates a document. An empty id gets a content fingerprint
// derived from xxhash, so identical text always yields the same id.
func NewDocument(id, text string) Document {
	if id == "" {
		id = fmt.Sprintf("doc-%016x", xxhash.Sum64String(text))
	}
	return Document{id: id, text: text}
}

// ID returns the document identifier.
func (d Document) ID() string {
	return d.id
}

// Text returns the full immutable content.
func (d Document) Text() string {
	return d.text
}

// Empty reports whether the document has no content.
func (d Document) Empty() bool {
	return d.text == ""
}

// Load reads a document from a file path. The file name becomes the
// document id. A missing file wraps ErrNotFound.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Document{}, fmt.Errorf("read document %s: %w", path, err)
	}
	return NewDocument(path, string(data)), nil
}

// LoadInto loads a document from path and replaces the store's current one.
func LoadInto(store *Store, path string) (Document, error) {
	doc, err := Load(path)
	if err != nil {
		return Document{}, err
	}
	store.Replace(doc)
	return doc, nil
}
