package ds

import (
	"slices"
	"testing"
)

func TestTrieLongestPrefix(t *testing.T) {
	trie := NewTrie[int]()
	trie.Register("cos", 1)
	trie.Register("cosec", 2)
	trie.Register("cosh", 3)
	trie.Register("sec", 4)

	tests := []struct {
		Input string
		Want  int
		Size  int
		Found bool
	}{
		{Input: "cosx", Want: 1, Size: 3, Found: true},
		{Input: "cosecx", Want: 2, Size: 5, Found: true},
		{Input: "coshx", Want: 3, Size: 4, Found: true},
		{Input: "cose", Want: 1, Size: 3, Found: true},
		{Input: "secant", Want: 4, Size: 3, Found: true},
		{Input: "xcos", Found: false},
		{Input: "co", Found: false},
		{Input: "", Found: false},
	}
	for _, c := range tests {
		got, size, ok := trie.LongestPrefix(c.Input)
		if ok != c.Found {
			t.Errorf("%s: match mismatched! want %t, got %t", c.Input, c.Found, ok)
			continue
		}
		if !ok {
			continue
		}
		if got != c.Want || size != c.Size {
			t.Errorf("%s: result mismatched! want %d (%d), got %d (%d)", c.Input, c.Want, c.Size, got, size)
		}
	}
}

func TestTrieGet(t *testing.T) {
	trie := NewTrie[string]()
	trie.Register("π", "pi")
	trie.Register("pi", "pi")

	if v, ok := trie.Get("π"); !ok || v != "pi" {
		t.Errorf("π: value not found")
	}
	if _, ok := trie.Get("p"); ok {
		t.Errorf("p: unexpected value found for incomplete name")
	}
	if _, ok := trie.Get("pie"); ok {
		t.Errorf("pie: unexpected value found")
	}
}

func TestTrieWalk(t *testing.T) {
	trie := NewTrie[int]()
	for i, n := range []string{"tan", "sin", "sinh", "abs"} {
		trie.Register(n, i)
	}
	var names []string
	trie.Walk(func(name string, _ int) {
		names = append(names, name)
	})
	want := []string{"abs", "sin", "sinh", "tan"}
	if !slices.Equal(names, want) {
		t.Errorf("names mismatched! want %v, got %v", want, names)
	}
}
