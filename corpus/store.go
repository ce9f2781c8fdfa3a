package corpus

import "sync"

// Store holds the current document behind a read lock. Reads are safe from
// any number of goroutines; Replace swaps the document wholesale.
type Store struct {
	mu     sync.RWMutex
	doc    Document
	loaded bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store already holding doc.
func NewStoreWith(doc Document) *Store {
	return &Store{doc: doc, loaded: true}
}

// Replace installs doc as the current document, discarding any previous one.
func (s *Store) Replace(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.loaded = true
}

// Current returns the loaded document, or ErrNoDocument before the first
// Replace.
func (s *Store) Current() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return Document{}, ErrNoDocument
	}
	return s.doc, nil
}

// Text returns the current document's content, or ErrNoDocument.
func (s *Store) Text() (string, error) {
	doc, err := s.Current()
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// Loaded reports whether a document has been installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
