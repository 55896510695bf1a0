package hyphenate

import "github.com/go-hyphenate/hyphenate/dat"

// Automaton is the packed, read-only trie produced by Builder.Build or
// Deserialize. It is immutable once built and safe for concurrent reads
// from any number of goroutines.
type Automaton struct {
	data       []uint32
	bases      []int32
	charMap    *dat.PagedMapBMP
	alphabet   uint16
	priorities *priorityStore
}

func newAutomaton(p *packedTrie) *Automaton {
	return &Automaton{
		data:       p.data,
		bases:      p.bases,
		charMap:    p.charMap,
		alphabet:   p.alphabet,
		priorities: p.priorities,
	}
}

// StateCount returns the number of canonical states in the automaton.
func (a *Automaton) StateCount() int { return len(a.bases) }

// tryTransition follows the transition for c out of state, in order
// rejecting a character absent from the alphabet, a destination slot
// outside the Data array, and a collision with a different character
// occupying the same slot.
func (a *Automaton) tryTransition(state int32, c rune) (int32, bool) {
	if c < 0 || c > 0xFFFF {
		return 0, false
	}
	k := a.charMap.Dense(uint16(c))
	if k == 0 {
		return 0, false
	}
	slot := int(a.bases[state]) + int(k)
	if slot < 0 || slot >= len(a.data) {
		return 0, false
	}
	e := a.data[slot]
	if e == 0 || entryChar(e) != uint16(c) {
		return 0, false
	}
	return int32(entryState(e)), true
}

// usedSlots counts the occupied entries of the packed Data array.
func (a *Automaton) usedSlots() int {
	used := 0
	for _, e := range a.data {
		if e != 0 {
			used++
		}
	}
	return used
}
