package dsa

import (
	"testing"
)

func TestSuffixArraySorted(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	sa := BuildSuffixArray(text)

	if len(sa.SA) != len(text) {
		t.Fatalf("expected %d suffixes, got %d", len(text), len(sa.SA))
	}
	for i := 1; i < len(sa.SA); i++ {
		prev := text[sa.SA[i-1]:]
		curr := text[sa.SA[i]:]
		if prev > curr {
			t.Fatalf("suffixes out of order at %d: %q > %q", i, prev, curr)
		}
	}
}

func TestSuffixArraySearch(t *testing.T) {
	sa := BuildSuffixArray("banana")

	positions := sa.Search("ana")
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 3 {
		t.Errorf("expected [1 3], got %v", positions)
	}
}

func TestSuffixArraySearchOverlapping(t *testing.T) {
	sa := BuildSuffixArray("aaaa")

	positions := sa.Search("aa")
	if len(positions) != 3 {
		t.Fatalf("expected 3 overlapping matches, got %v", positions)
	}
	for i, want := range []int{0, 1, 2} {
		if positions[i] != want {
			t.Errorf("expected position %d at index %d, got %d", want, i, positions[i])
		}
	}
}

func TestSuffixArraySearchAbsent(t *testing.T) {
	sa := BuildSuffixArray("banana")

	if positions := sa.Search("xyz"); len(positions) != 0 {
		t.Errorf("expected no matches, got %v", positions)
	}
}

func TestSuffixArraySearchEmptyInputs(t *testing.T) {
	if positions := BuildSuffixArray("").Search("a"); len(positions) != 0 {
		t.Errorf("expected no matches on empty text, got %v", positions)
	}
	if positions := BuildSuffixArray("abc").Search(""); len(positions) != 0 {
		t.Errorf("expected no matches for empty pattern, got %v", positions)
	}
}

func TestSuffixArrayCount(t *testing.T) {
	sa := BuildSuffixArray("the cat sat on the mat")

	if got := sa.Count("the"); got != 2 {
		t.Errorf("expected 2 occurrences of 'the', got %d", got)
	}
	if got := sa.Count("at"); got != 3 {
		t.Errorf("expected 3 occurrences of 'at', got %d", got)
	}
}

func TestSuffixArrayMatchesNaiveScan(t *testing.T) {
	text := "she sells sea shells by the sea shore"
	sa := BuildSuffixArray(text)

	for _, pattern := range []string{"se", "sh", "ells", "sea", "e", "q"} {
		var want []int
		for i := 0; i+len(pattern) <= len(text); i++ {
			if text[i:i+len(pattern)] == pattern {
				want = append(want, i)
			}
		}

		got := sa.Search(pattern)
		if len(got) != len(want) {
			t.Errorf("%q: expected %v, got %v", pattern, want, got)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%q: expected %v, got %v", pattern, want, got)
				break
			}
		}
	}
}
