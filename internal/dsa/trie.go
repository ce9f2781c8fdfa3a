// Package dsa provides data structures backing document retrieval:
// a radix-tree keyword index and a suffix array for phrase lookup.
package dsa

import (
	"github.com/armon/go-radix"
)

// Trie is a typed wrapper around a compressed radix tree. Keys share
// storage for common prefixes, which suits an index keyed by the words of
// a document. Lookups and inserts are O(k) in key length.
type Trie[V any] struct {
	tree *radix.Tree
	size int
}

// NewTrie creates an empty trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{tree: radix.New()}
}

// Insert adds or replaces the value stored under key.
func (t *Trie[V]) Insert(key string, value V) {
	_, updated := t.tree.Insert(key, value)
	if !updated {
		t.size++
	}
}

// Search looks up the value stored under key. Only exact keys match;
// prefixes of stored keys do not.
func (t *Trie[V]) Search(key string) (V, bool) {
	val, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}
	return v, true
}

// Size returns the number of keys stored.
func (t *Trie[V]) Size() int {
	return t.size
}
