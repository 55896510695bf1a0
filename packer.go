package hyphenate

import (
	"sort"

	"github.com/go-hyphenate/hyphenate/dat"
)

// maxEntryStates is the number of distinct states a 32-bit packed
// transition entry (16-bit character + 16-bit state) can address.
const maxEntryStates = 1 << 16

type transition struct {
	char  rune
	state int32
}

// packedTrie is the flat, read-optimized output of TriePacker: the
// shared transition array, the per-state base table, the dense
// character map, and the priority-vector store, all indexed by state.
type packedTrie struct {
	data       []uint32
	bases      []int32
	charMap    *dat.PagedMapBMP
	alphabet   uint16
	priorities *priorityStore
}

// packTrie enumerates canonical states in traversal order, collects the
// dense alphabet, and first-fit-places every state's transitions into
// a shared Data array.
func packTrie(t *insertionTrie, canon []int32) (*packedTrie, error) {
	charMap, alphabet := collectAlphabet(t, canon)

	states, nodeToState := enumerateStates(t, canon)
	if len(states) > maxEntryStates {
		return nil, &StateOverflowError{States: len(states), Limit: maxEntryStates}
	}

	perState := make([][]transition, len(states))
	maxPacked := 0
	for stateIdx, node := range states {
		var trs []transition
		for child := t.arena.FirstChild[node]; child != -1; child = t.arena.NextSibling[child] {
			dest, ok := nodeToState[child]
			assert(ok, "child of a canonical node must itself be a canonical state")
			trs = append(trs, transition{char: t.arena.Char[child], state: int32(dest)})
		}
		perState[stateIdx] = trs
		if w := len(t.weights[node]); w > maxPacked {
			maxPacked = w
		}
	}

	order := make([]int, len(states))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(perState[order[i]]) > len(perState[order[j]])
	})

	data := make([]uint32, 256)
	bases := make([]int32, len(states))
	occupied := make(map[int]bool)
	usedBases := make(map[int]bool)
	searchStart := 0

	growTo := func(idx int) {
		for idx >= len(data) {
			data = append(data, make([]uint32, len(data))...)
		}
	}

	for _, q := range order {
		trs := perState[q]
		if len(trs) == 0 {
			b := 0
			for usedBases[b] {
				b++
			}
			bases[q] = int32(b)
			usedBases[b] = true
			continue
		}
		b := searchStart
		for {
			if !usedBases[b] && fitsAt(b, trs, charMap, occupied) {
				break
			}
			b++
		}
		bases[q] = int32(b)
		usedBases[b] = true
		for _, tr := range trs {
			k := int(charMap.Dense(uint16(tr.char)))
			slot := b + k
			growTo(slot)
			data[slot] = packEntry(tr.char, tr.state)
			occupied[slot] = true
		}
		for usedBases[searchStart] {
			searchStart++
		}
	}

	trimmed := 0
	for slot := range occupied {
		if slot+1 > trimmed {
			trimmed = slot + 1
		}
	}
	data = data[:trimmed]

	priorities := newPriorityStore(maxPacked)
	for stateIdx, node := range states {
		w := t.weights[node]
		if w == nil {
			continue
		}
		if err := priorities.Put(stateIdx, w); err != nil {
			return nil, err
		}
	}

	return &packedTrie{
		data:       data,
		bases:      bases,
		charMap:    charMap,
		alphabet:   alphabet,
		priorities: priorities,
	}, nil
}

func fitsAt(base int, trs []transition, charMap *dat.PagedMapBMP, occupied map[int]bool) bool {
	for _, tr := range trs {
		k := int(charMap.Dense(uint16(tr.char)))
		if occupied[base+k] {
			return false
		}
	}
	return true
}

func packEntry(c rune, state int32) uint32 {
	return uint32(uint16(c)) | uint32(uint16(state))<<16
}

func entryChar(e uint32) uint16  { return uint16(e) }
func entryState(e uint32) uint32 { return e >> 16 }

// enumerateStates walks the canonical DAG reachable from the root in
// traversal order and assigns each canonical node a dense state index;
// state 0 is always the root.
func enumerateStates(t *insertionTrie, canon []int32) (states []int32, nodeToState map[int32]int) {
	visited := make(map[int32]bool)
	nodeToState = make(map[int32]int)
	queue := []int32{canon[0]}
	visited[canon[0]] = true
	for head := 0; head < len(queue); head++ {
		node := queue[head]
		nodeToState[node] = len(states)
		states = append(states, node)
		for child := t.arena.FirstChild[node]; child != -1; child = t.arena.NextSibling[child] {
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}
	return states, nodeToState
}
