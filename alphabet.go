package hyphenate

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/go-hyphenate/hyphenate/dat"
)

// collectAlphabet walks the canonical node set reachable from the root
// and assigns each distinct transition character a dense alphabet
// index, in ascending code-point order. Dense index 0 is reserved to
// mean "not in the alphabet" (dat.PagedMapBMP's own convention), so
// real characters are assigned indices starting at 1.
//
// The root's own character label participates in the traversal (it is
// visited) but never contributes to the alphabet, since it is never a
// transition character at query time.
func collectAlphabet(t *insertionTrie, canon []int32) (*dat.PagedMapBMP, uint16) {
	distinct := treeset.NewWith(utils.Int32Comparator)
	visited := make(map[int32]bool)

	var walk func(node int32)
	walk = func(node int32) {
		if node < 0 || visited[node] {
			return
		}
		visited[node] = true
		if node != 0 {
			distinct.Add(int32(t.arena.Char[node]))
		}
		for child := t.arena.FirstChild[node]; child != -1; child = t.arena.NextSibling[child] {
			walk(child)
		}
	}
	walk(canon[0])

	charMap := &dat.PagedMapBMP{}
	var next uint16 = 1
	for _, v := range distinct.Values() {
		c := v.(int32)
		charMap.Set(uint16(c), next)
		next++
	}
	tracer().Infof("alphabet collector: %d distinct transition characters", next-1)
	return charMap, next - 1
}
