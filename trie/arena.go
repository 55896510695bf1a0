// Package trie provides a compact, write-once insertion arena for
// ordered multisets of rune-labeled children, encoded as first-child /
// next-sibling links into flat slices.
//
// This is the shape recommended for building a mutable pattern trie
// before it is compressed and packed: an arena plus integer indices
// gives O(1) identity comparison between nodes, which a later
// suffix-merging pass depends on.
package trie

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}

// noChild is the sentinel link value meaning "no such node".
const noChild int32 = -1

// Arena is a first-child/next-sibling tree over rune-labeled nodes.
// Node 0 is always the root and is never relabeled.
type Arena struct {
	Char        []rune
	FirstChild  []int32
	NextSibling []int32
}

// NewArena creates an arena with only the root node (index 0) allocated.
func NewArena() *Arena {
	return &Arena{
		Char:        []rune{0},
		FirstChild:  []int32{noChild},
		NextSibling: []int32{noChild},
	}
}

// NodeCount returns the number of nodes allocated so far, including the root.
func (a *Arena) NodeCount() int { return len(a.Char) }

// Child returns the child of parent labeled c, walking the sibling chain.
// When create is true and no such child exists, one is appended at the
// tail of the sibling chain and returned.
func (a *Arena) Child(parent int32, c rune, create bool) int32 {
	child := a.FirstChild[parent]
	var prev int32 = noChild
	for child != noChild {
		if a.Char[child] == c {
			return child
		}
		prev = child
		child = a.NextSibling[child]
	}
	if !create {
		return noChild
	}
	n := a.newNode(c)
	if prev == noChild {
		a.FirstChild[parent] = n
	} else {
		a.NextSibling[prev] = n
	}
	tracer().Debugf("trie: inserted child %q of parent=%d at node=%d", c, parent, n)
	return n
}

// FindChild looks up the child of parent labeled c without creating it.
func (a *Arena) FindChild(parent int32, c rune) (int32, bool) {
	n := a.Child(parent, c, false)
	return n, n != noChild
}

func (a *Arena) newNode(c rune) int32 {
	id := int32(len(a.Char))
	a.Char = append(a.Char, c)
	a.FirstChild = append(a.FirstChild, noChild)
	a.NextSibling = append(a.NextSibling, noChild)
	return id
}
