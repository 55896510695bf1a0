package hyphenate

import (
	"io"
	"reflect"
	"testing"
)

type slicePatternReader struct {
	patterns []string
	index    int
}

func (r *slicePatternReader) Next() (string, error) {
	if r.index >= len(r.patterns) {
		return "", io.EOF
	}
	p := r.patterns[r.index]
	r.index++
	return p, nil
}

type sliceExceptionReader struct {
	words []string
	index int
}

func (r *sliceExceptionReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}

func buildDictionary(t *testing.T, patterns []string, exceptions []string) *Dictionary {
	t.Helper()
	dict, err := Compile("test",
		&slicePatternReader{patterns: patterns},
		&sliceExceptionReader{words: exceptions})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return dict
}

func TestSinglePatternProducesExactPriorityVector(t *testing.T) {
	dict := buildDictionary(t, []string{".hy3p"}, nil)
	got := dict.Hyphenate("hyphenation")
	want := []byte{0, 3, 0, 0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("priorities mismatch: got %v, want %v", got, want)
	}
	if pts := dict.HyphenationPoints("hyphenation"); !reflect.DeepEqual(pts, []int{1}) {
		t.Fatalf("points mismatch: got %v", pts)
	}
}

// A one-character, unanchored pattern can legitimately match at any
// occurrence of that character, including mid-word; plain pattern
// scanning has no edge-proximity suppression, so a bare "1a" against
// "aa" merges its leading priority at the gap between the two letters.
func TestUnanchoredPatternMatchesMidWord(t *testing.T) {
	dict := buildDictionary(t, []string{"1a"}, nil)
	got := dict.Hyphenate("aa")
	want := []byte{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("priorities mismatch: got %v, want %v", got, want)
	}
	if pts := dict.HyphenationPoints("aa"); !reflect.DeepEqual(pts, []int{0}) {
		t.Fatalf("points mismatch: got %v", pts)
	}
}

// An anchored pattern matched at word start positions its interior
// priority at the correct word-internal slot.
func TestAnchoredPatternPositionsInteriorPriority(t *testing.T) {
	dict := buildDictionary(t, []string{".a1b"}, nil)
	got := dict.Hyphenate("ab")
	want := []byte{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("priorities mismatch: got %v, want %v", got, want)
	}
	if pts := dict.HyphenationPoints("ab"); !reflect.DeepEqual(pts, []int{0}) {
		t.Fatalf("points mismatch: got %v", pts)
	}
}

// None of the loaded patterns starts with a character that occurs in
// the probe word, so no pattern matches and every slot stays at zero.
func TestDisjointPatternsYieldZeroVector(t *testing.T) {
	dict := buildDictionary(t, []string{
		"9e5q7z1a8",
		"4o6e3e5nw1u0i9e0",
		"6c0f1l5xb6o7",
	}, nil)
	got := dict.Hyphenate("ulnrqvjd")
	want := make([]byte, 7)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("priorities mismatch: got %v, want %v", got, want)
	}
	if pts := dict.HyphenationPoints("ulnrqvjd"); len(pts) != 0 {
		t.Fatalf("expected no points, got %v", pts)
	}
}

// A leading priority before a boundary marker falls outside the word
// and must not surface as an interior point.
func TestLeadingBoundaryPriorityStaysOutsideWord(t *testing.T) {
	dict := buildDictionary(t, []string{"2.ab"}, nil)
	got := dict.Hyphenate("ab")
	if !reflect.DeepEqual(got, []byte{0}) {
		t.Fatalf("boundary priority leaked into the word: got %v", got)
	}
}

// An empty pattern set hyphenates nothing.
func TestEmptyPatternSetIsZeroVector(t *testing.T) {
	dict := buildDictionary(t, nil, nil)
	got := dict.Hyphenate("anything")
	want := make([]byte, len("anything")-1)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected zero vector, got %v", got)
	}
}

// Words shorter than two runes are always empty.
func TestShortWordsYieldEmpty(t *testing.T) {
	dict := buildDictionary(t, []string{".a1b"}, nil)
	for _, w := range []string{"", "a"} {
		if got := dict.Hyphenate(w); len(got) != 0 {
			t.Fatalf("word %q: expected empty, got %v", w, got)
		}
	}
}

func TestExceptionOverridesPatterns(t *testing.T) {
	dict := buildDictionary(t, []string{"ta2bl"}, []string{"ta-ble"})
	if h := dict.HyphenationString("table", "-"); h != "ta-ble" {
		t.Fatalf("table should be ta-ble, got %s", h)
	}
}

func TestPatternReaderAPI(t *testing.T) {
	dict := buildDictionary(t, []string{"für0"}, nil)
	if h := dict.HyphenationString("fürung", "-"); h != "fürung" {
		t.Fatalf("für0 has trailing priority 0, expected no split, got %s", h)
	}
}

func TestUnicodePatternMatchesUmlaut(t *testing.T) {
	dict := buildDictionary(t, []string{"ü1r"}, nil)
	if h := dict.HyphenationString("fürung", "-"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, got %s", h)
	}
}

func TestDictionaryStats(t *testing.T) {
	dict := buildDictionary(t, []string{"0ab1", "0abc1"}, nil)
	used, total, maxStateID, fill := dict.Stats()
	if used <= 0 || total <= 0 {
		t.Fatalf("expected positive slot counts, got used=%d total=%d", used, total)
	}
	if maxStateID <= 0 {
		t.Fatalf("expected positive maxStateID, got %d", maxStateID)
	}
	if fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}

func TestWithLeftMinRightMinSuppressEdges(t *testing.T) {
	dict, err := Compile("test",
		&slicePatternReader{patterns: []string{"1a"}},
		nil,
		WithLeftMin(2), WithRightMin(2))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	got := dict.Hyphenate("aaaa")
	want := []byte{0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected margins to suppress every break, got %v", got)
	}
	if pts := dict.HyphenationPoints("aaaa"); len(pts) != 0 {
		t.Fatalf("expected no hyphenation points, got %v", pts)
	}
}

func TestWithoutLeftMinRightMinDefaultIsOff(t *testing.T) {
	dict := buildDictionary(t, []string{"1a"}, nil)
	got := dict.Hyphenate("aa")
	want := []byte{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected default Dictionary to leave margins unsuppressed, got %v", got)
	}
}
