package hyphenate

import (
	ntrie "github.com/go-hyphenate/hyphenate/trie"
)

// insertionTrie is the mutable build-phase trie: a first-child/
// next-sibling arena (package trie) carries the tree shape, and a
// parallel slice carries each node's priority vector, present iff one
// or more patterns terminate there.
type insertionTrie struct {
	arena   *ntrie.Arena
	weights [][]byte
}

func newInsertionTrie() *insertionTrie {
	return &insertionTrie{
		arena:   ntrie.NewArena(),
		weights: [][]byte{nil},
	}
}

// insert walks into (creating on demand) the child chain spelled by
// chars and merges weights into the terminal node's priority vector by
// element-wise maximum. Empty patterns are no-ops.
func (t *insertionTrie) insert(chars []rune, weights []byte) {
	if len(chars) == 0 {
		return
	}
	node := int32(0)
	for _, c := range chars {
		node = t.arena.Child(node, c, true)
		t.growWeights(node)
	}
	t.mergeWeights(node, weights)
}

func (t *insertionTrie) growWeights(node int32) {
	for int32(len(t.weights)) <= node {
		t.weights = append(t.weights, nil)
	}
}

func (t *insertionTrie) mergeWeights(node int32, w []byte) {
	cur := t.weights[node]
	if cur == nil {
		cp := make([]byte, len(w))
		copy(cp, w)
		t.weights[node] = cp
		return
	}
	if len(w) > len(cur) {
		grown := make([]byte, len(w))
		copy(grown, cur)
		cur = grown
	}
	for i, v := range w {
		if v > cur[i] {
			cur[i] = v
		}
	}
	t.weights[node] = cur
}

func (t *insertionTrie) nodeCount() int { return t.arena.NodeCount() }
