package hyphenate

import (
	"bytes"
	"io"
	"testing"
)

type memoryAssetSource struct {
	assets map[string][]byte
}

func (m *memoryAssetSource) Open(name string) (io.ReadCloser, error) {
	data, ok := m.assets[name]
	if !ok {
		return nil, &MissingResourceError{Tag: name}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestRegistryLoadsRegisteredTag(t *testing.T) {
	dict := buildDictionary(t, []string{".hy3p"}, nil)
	var buf bytes.Buffer
	if err := Serialize(&buf, dict.automaton); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	source := &memoryAssetSource{assets: map[string][]byte{"en-gb.bin": buf.Bytes()}}
	registry := NewRegistry(source)
	registry.Register("en-GB", "en-gb.bin")

	loaded, err := registry.Load("en-gb")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, want := loaded.Hyphenate("hyphenation"), dict.Hyphenate("hyphenation"); string(got) != string(want) {
		t.Fatalf("loaded dictionary disagrees with original: got %v, want %v", got, want)
	}
}

func TestRegistryMissingTag(t *testing.T) {
	registry := NewRegistry(&memoryAssetSource{assets: map[string][]byte{}})
	registry.Register("en-GB", "en-gb.bin")

	_, err := registry.Load("de-DE")
	if err == nil {
		t.Fatalf("expected an error for an unregistered tag")
	}
	missing, ok := err.(*MissingResourceError)
	if !ok {
		t.Fatalf("expected a *MissingResourceError, got %T", err)
	}
	if len(missing.Available) != 1 || missing.Available[0] != "en-GB" {
		t.Fatalf("expected available tags [en-GB], got %v", missing.Available)
	}
}
