package hyphenate

import (
	"strconv"
	"strings"
)

// compressSuffixes merges structurally identical subtries of t
// bottom-up, turning the insertion tree into a DAG of canonical nodes.
//
// It returns canon, where canon[i] is the canonical representative of
// original node i; canon[0] == 0 always, since state 0 is reserved for
// the root and is never merged away even if some other subtrie happens
// to be structurally identical to it.
//
// Canonicalization is post-order: a node's first-child and next-sibling
// links are canonicalized (and rewritten in place) before the node
// itself is looked up in a hash-consing table keyed by
// (character, priority vector, canonical first-child, canonical next-sibling).
// Re-running compressSuffixes on an already-canonical DAG is a no-op:
// every canonical node maps to itself on a second pass, and every node
// merged away earlier (no longer reachable from the root) maps to the
// same representative as before, satisfying idempotency.
func compressSuffixes(t *insertionTrie) []int32 {
	n := t.nodeCount()
	memo := make([]int32, n)
	for i := range memo {
		memo[i] = -2 // unvisited
	}
	table := make(map[string]int32, n)

	var canon func(idx int32) int32
	canon = func(idx int32) int32 {
		if idx < 0 {
			return idx
		}
		if memo[idx] != -2 {
			return memo[idx]
		}
		// mark in-progress to tolerate reentrant visits through shared links
		memo[idx] = idx

		fc := canon(t.arena.FirstChild[idx])
		ns := canon(t.arena.NextSibling[idx])
		t.arena.FirstChild[idx] = fc
		t.arena.NextSibling[idx] = ns

		if idx == 0 {
			memo[0] = 0
			return 0
		}

		key := consKey(t.arena.Char[idx], t.weights[idx], fc, ns)
		if existing, ok := table[key]; ok {
			memo[idx] = existing
			return existing
		}
		table[key] = idx
		memo[idx] = idx
		return idx
	}
	canon(0)
	// Nodes merged away on an earlier pass are unreachable from the root;
	// canonicalize them as well so that canon covers every node.
	for i := range memo {
		canon(int32(i))
	}
	tracer().Infof("suffix compression: %d nodes -> %d canonical", n, len(table)+1)
	return memo
}

func consKey(c rune, weights []byte, firstChild, nextSibling int32) string {
	var b strings.Builder
	b.WriteRune(c)
	b.WriteByte(0)
	b.Write(weights)
	b.WriteByte(0)
	b.WriteString(strconv.FormatInt(int64(firstChild), 36))
	b.WriteByte(0)
	b.WriteString(strconv.FormatInt(int64(nextSibling), 36))
	return b.String()
}
