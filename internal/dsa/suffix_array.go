// Suffix array for exact phrase lookup in document text.

package dsa

import (
	"sort"
)

// SuffixArray indexes every suffix of a text in lexicographic order, giving
// O(m log n) lookup of an m-byte phrase in an n-byte text.
type SuffixArray struct {
	Text string
	SA   []int // SA[i] = start position of the i-th smallest suffix
}

// BuildSuffixArray constructs a suffix array by prefix doubling.
func BuildSuffixArray(text string) *SuffixArray {
	n := len(text)
	if n == 0 {
		return &SuffixArray{Text: text, SA: []int{}}
	}

	sa := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(text[i])
	}

	// rankAt treats positions past the end as smaller than any real rank,
	// so shorter suffixes sort first among equal prefixes.
	rankAt := func(pos int) int {
		if pos < n {
			return rank[pos]
		}
		return -1
	}

	tmp := make([]int, n)
	for k := 1; k < n; k *= 2 {
		// Sort by (rank of first k bytes, rank of next k bytes).
		sort.Slice(sa, func(i, j int) bool {
			if rank[sa[i]] != rank[sa[j]] {
				return rank[sa[i]] < rank[sa[j]]
			}
			return rankAt(sa[i]+k) < rankAt(sa[j]+k)
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if rank[sa[i-1]] != rank[sa[i]] || rankAt(sa[i-1]+k) != rankAt(sa[i]+k) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		// All suffixes already distinct.
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return &SuffixArray{Text: text, SA: sa}
}

// Search returns the start offsets of every occurrence of pattern in the
// text, ascending. Overlapping occurrences are all reported.
func (sa *SuffixArray) Search(pattern string) []int {
	if len(pattern) == 0 || len(sa.SA) == 0 {
		return []int{}
	}

	n := len(sa.SA)
	m := len(pattern)

	left := sort.Search(n, func(i int) bool {
		suffix := sa.Text[sa.SA[i]:]
		if len(suffix) < m {
			return suffix >= pattern[:len(suffix)]
		}
		return suffix[:m] >= pattern
	})
	right := sort.Search(n, func(i int) bool {
		suffix := sa.Text[sa.SA[i]:]
		if len(suffix) < m {
			return suffix > pattern[:len(suffix)]
		}
		return suffix[:m] > pattern
	})

	var matches []int
	for i := left; i < right; i++ {
		pos := sa.SA[i]
		if pos+m <= len(sa.Text) && sa.Text[pos:pos+m] == pattern {
			matches = append(matches, pos)
		}
	}

	sort.Ints(matches)
	return matches
}

// Count returns the number of occurrences of pattern.
func (sa *SuffixArray) Count(pattern string) int {
	return len(sa.Search(pattern))
}
