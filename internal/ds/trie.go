package ds

import (
	"slices"
)

type Node[T any] struct {
	key      rune
	value    T
	setted   bool
	children map[rune]*Node[T]
}

func createNode[T any](key rune) *Node[T] {
	return &Node[T]{
		key:      key,
		children: make(map[rune]*Node[T]),
	}
}

// Trie indexes values by the runes of their name so that the longest
// registered name found at the start of a string can be found in one pass.
type Trie[T any] struct {
	root *Node[T]
}

func NewTrie[T any]() *Trie[T] {
	trie := Trie[T]{
		root: createNode[T](0),
	}
	return &trie
}

func (t *Trie[T]) Get(name string) (T, bool) {
	var (
		node = t.root
		ok   bool
	)
	for _, r := range name {
		node, ok = node.children[r]
		if !ok {
			var z T
			return z, ok
		}
	}
	return node.value, node.setted
}

// LongestPrefix returns the value registered under the longest name that
// str starts with and the length in bytes of that name.
func (t *Trie[T]) LongestPrefix(str string) (T, int, bool) {
	var (
		node  = t.root
		value T
		size  int
		found bool
	)
	for i, r := range str {
		n, ok := node.children[r]
		if !ok {
			break
		}
		node = n
		if node.setted {
			value, size, found = node.value, i+len(string(r)), true
		}
	}
	return value, size, found
}

func (t *Trie[T]) Walk(fn func(name string, v T)) {
	var walk func(n *Node[T], path []rune)

	walk = func(n *Node[T], path []rune) {
		if n.setted {
			fn(string(path), n.value)
		}
		keys := make([]rune, 0, len(n.children))
		for k := range n.children {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			walk(n.children[k], append(path, k))
		}
	}
	walk(t.root, nil)
}

func (t *Trie[T]) Register(name string, value T) {
	node := t.root
	for _, r := range name {
		if node.children[r] == nil {
			node.children[r] = createNode[T](r)
		}
		node = node.children[r]
	}
	node.value = value
	node.setted = true
}
