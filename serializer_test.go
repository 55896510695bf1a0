package hyphenate

import (
	"bytes"
	"testing"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	dict := buildDictionary(t, []string{
		".hy3p", "hy2ph", "ta2bl", ".a1b", "ü1r",
	}, []string{"uni-ver-sity"})

	var buf bytes.Buffer
	if err := Serialize(&buf, dict.automaton); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	restored, err := Deserialize(&buf)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	restoredDict := NewDictionary(dict.Identifier, restored)

	words := []string{"hyphenation", "table", "ab", "fürung", "university"}
	for _, w := range words {
		got := restoredDict.Hyphenate(w)
		want := dict.Hyphenate(w)
		if string(got) != string(want) {
			t.Fatalf("word %q: round-tripped priorities %v != original %v", w, got, want)
		}
	}
}

func TestDeserializeRejectsNonGzipStream(t *testing.T) {
	_, err := Deserialize(bytes.NewReader([]byte("not a gzip stream")))
	if err == nil {
		t.Fatalf("expected an error for a non-gzip stream")
	}
}
