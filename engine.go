package hyphenate

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// scanScratch holds the per-call boundary-extended word Hyphenate
// needs. It is pooled so that many goroutines calling Hyphenate
// concurrently on one shared Automaton don't each allocate it afresh.
// The priority accumulator is not pooled: it is allocated per call and
// returned to the caller.
type scanScratch struct {
	extended []rune
}

func newScratchPool() (*pool.ObjectPool, context.Context) {
	ctx := context.Background()
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scanScratch{extended: make([]rune, 0, 32)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	return pool.NewObjectPool(ctx, factory, config), ctx
}

// caseFolder lowercases each code unit of a word at read time. The
// exact folding locale is the data producer's choice, exposed here as
// configuration rather than hard-wired.
type caseFolder struct {
	caser cases.Caser
}

func newCaseFolder(tag language.Tag) caseFolder {
	return caseFolder{caser: cases.Lower(tag)}
}

func (f caseFolder) fold(s string) string {
	return f.caser.String(s)
}

// scan walks the automaton over the extended word starting at offset
// s, merging every visited state's priority vector into dst at offset
// s-2 (one subtraction for the leading boundary marker, one for
// converting a character boundary into an inter-letter index).
func scan(a *Automaton, extended []rune, s int, dst []byte) {
	state := int32(0)
	for p := s; p < len(extended); p++ {
		next, ok := a.tryTransition(state, extended[p])
		if !ok {
			return
		}
		a.priorities.MergeInto(int(next), s-2, dst)
		state = next
	}
}
