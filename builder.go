package hyphenate

import (
	"io"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/language"

	"context"
)

// PatternReader yields pattern strings (e.g. ".hy3p") one at a time. It
// returns io.EOF when exhausted. Concrete source formats (TeX pattern
// files, etc.) live in adapter packages such as texpatterns.
type PatternReader interface {
	Next() (pattern string, err error)
}

// ExceptionReader yields exception words (e.g. "uni-ver-sity") one at a
// time. It returns io.EOF when exhausted.
type ExceptionReader interface {
	Next() (word string, err error)
}

// Builder is the mutable build-phase object of the pipeline: it owns an
// insertion trie and is not safe for concurrent mutation. Build moves
// the built arrays into an Automaton that exposes no mutators.
type Builder struct {
	trie *insertionTrie
}

// NewBuilder creates an empty pattern/exception builder.
func NewBuilder() *Builder {
	return &Builder{trie: newInsertionTrie()}
}

// AddPattern parses and inserts a single pattern string.
func (b *Builder) AddPattern(raw string) error {
	p, err := ParsePattern(raw)
	if err != nil {
		return err
	}
	b.trie.insert(p.Chars, p.Weights)
	return nil
}

// AddPatterns drains a PatternReader, inserting every pattern it yields.
func (b *Builder) AddPatterns(r PatternReader) error {
	for {
		raw, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := b.AddPattern(raw); err != nil {
			return err
		}
	}
}

// AddException rewrites a hyphenated exception word into a pattern and
// inserts it exactly as an ordinary pattern.
func (b *Builder) AddException(word string) error {
	return b.AddPattern(RewriteException(word))
}

// AddExceptions drains an ExceptionReader, inserting every exception it yields.
func (b *Builder) AddExceptions(r ExceptionReader) error {
	for {
		word, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := b.AddException(word); err != nil {
			return err
		}
	}
}

// Build runs suffix compression and packing, producing an immutable
// Automaton. The Builder may be discarded afterwards.
func (b *Builder) Build() (*Automaton, error) {
	canon := compressSuffixes(b.trie)
	packed, err := packTrie(b.trie, canon)
	if err != nil {
		return nil, err
	}
	tracer().Infof("build: %d states, %d alphabet, %d data words",
		len(packed.bases), packed.alphabet, len(packed.data))
	return newAutomaton(packed), nil
}

// Dictionary pairs an immutable Automaton with read-time policy: case
// folding and a pool of scratch scan buffers. A Dictionary is safe for
// concurrent Hyphenate calls from any number of goroutines.
type Dictionary struct {
	Identifier string
	automaton  *Automaton
	fold       caseFolder
	scratch    *pool.ObjectPool
	scratchCtx context.Context
	leftMin    int
	rightMin   int
}

// Option configures a Dictionary at construction time.
type Option func(*Dictionary)

// WithCaseFolding selects the locale used to lowercase words at read
// time. The default is language.Und, i.e. plain ASCII-compatible
// Unicode simple lowercasing.
func WithCaseFolding(tag language.Tag) Option {
	return func(d *Dictionary) { d.fold = newCaseFolder(tag) }
}

// WithLeftMin suppresses any break position within n runes of the left
// edge of a word, mirroring the margin knob traditional hyphenators
// expose alongside pattern priorities. It is opt-in: the zero value
// applies no suppression, so the raw scan result is unaffected unless a
// caller asks for it.
func WithLeftMin(n int) Option {
	return func(d *Dictionary) { d.leftMin = n }
}

// WithRightMin suppresses any break position that would leave fewer
// than n runes after it, i.e. within n-1 runes of the right edge of a
// word. This counts one rune less than WithLeftMin: WithLeftMin(2)
// requires three runes before a break, WithRightMin(2) two after it.
// Like WithLeftMin it is opt-in and off at the zero value.
func WithRightMin(n int) Option {
	return func(d *Dictionary) { d.rightMin = n }
}

// NewDictionary wraps an already-built Automaton for querying.
func NewDictionary(name string, automaton *Automaton, opts ...Option) *Dictionary {
	d := &Dictionary{
		Identifier: name,
		automaton:  automaton,
		fold:       newCaseFolder(language.Und),
	}
	d.scratch, d.scratchCtx = newScratchPool()
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compile builds a Dictionary directly from streaming pattern and
// (optional) exception sources.
func Compile(name string, patterns PatternReader, exceptions ExceptionReader, opts ...Option) (*Dictionary, error) {
	b := NewBuilder()
	if patterns != nil {
		if err := b.AddPatterns(patterns); err != nil {
			return nil, err
		}
	}
	if exceptions != nil {
		if err := b.AddExceptions(exceptions); err != nil {
			return nil, err
		}
	}
	automaton, err := b.Build()
	if err != nil {
		return nil, err
	}
	return NewDictionary(name, automaton, opts...), nil
}

// Hyphenate computes the priority vector for word: length
// max(0, len(word)-1). Words shorter than two runes yield an empty
// slice, regardless of loaded patterns.
func (d *Dictionary) Hyphenate(word string) []byte {
	runes := []rune(d.fold.fold(word))
	if len(runes) < 2 {
		return []byte{}
	}
	obj, _ := d.scratch.BorrowObject(d.scratchCtx)
	buf := obj.(*scanScratch)
	defer d.scratch.ReturnObject(d.scratchCtx, buf)

	buf.extended = buf.extended[:0]
	buf.extended = append(buf.extended, '.')
	buf.extended = append(buf.extended, runes...)
	buf.extended = append(buf.extended, '.')

	dst := make([]byte, len(runes)-1)
	for s := 0; s < len(buf.extended); s++ {
		scan(d.automaton, buf.extended, s, dst)
	}
	if d.leftMin > 0 {
		for i := 0; i < d.leftMin && i < len(dst); i++ {
			dst[i] = 0
		}
	}
	if d.rightMin > 0 {
		cutoff := len(runes) - d.rightMin
		if cutoff < 0 {
			cutoff = 0
		}
		for i := cutoff; i < len(dst); i++ {
			dst[i] = 0
		}
	}
	return dst
}

// HyphenationPoints returns the indices i with Hyphenate(word)[i] odd:
// the positions at which a break is permitted.
func (d *Dictionary) HyphenationPoints(word string) []int {
	p := d.Hyphenate(word)
	var points []int
	for i, v := range p {
		if v%2 != 0 {
			points = append(points, i)
		}
	}
	return points
}

// HyphenationString joins word's syllables with sep at every permitted
// break position, as a convenience on top of HyphenationPoints.
func (d *Dictionary) HyphenationString(word, sep string) string {
	points := d.HyphenationPoints(word)
	if len(points) == 0 {
		return word
	}
	runes := []rune(word)
	var out []rune
	prev := 0
	for _, p := range points {
		out = append(out, runes[prev:p+1]...)
		out = append(out, []rune(sep)...)
		prev = p + 1
	}
	out = append(out, runes[prev:]...)
	return string(out)
}

// Stats reports density metrics over the packed automaton.
func (d *Dictionary) Stats() (usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if d == nil || d.automaton == nil {
		return 0, 0, 0, 0
	}
	used := d.automaton.usedSlots()
	total := len(d.automaton.data)
	maxState := len(d.automaton.bases) - 1
	ratio := 0.0
	if total > 0 {
		ratio = float64(used) / float64(total)
	}
	return used, total, maxState, ratio
}
