package hyphenate

import (
	"io"
	"sort"

	jj "github.com/cloudfoundry/jibber_jabber"
	dtrie "github.com/derekparker/trie"
	"golang.org/x/text/language"
)

// AssetSource opens a named serialized-automaton asset, e.g. a
// consumer's fs.FS or an embed.FS.
type AssetSource interface {
	Open(name string) (io.ReadCloser, error)
}

// Registry maps a small, closed set of language tags to asset names
// inside an AssetSource. Tag lookup goes through a trie keyed by
// normalized BCP 47 tag strings so that registries with many regional
// variants (en-gb, en-us, de-1996, de-ch-1901, ...) share prefix
// storage the way a word list would.
type Registry struct {
	tags   *dtrie.Trie
	source AssetSource
}

// NewRegistry creates an empty registry reading assets from source.
func NewRegistry(source AssetSource) *Registry {
	return &Registry{tags: dtrie.New(), source: source}
}

// Register associates tag with the named asset. tag is normalized
// through golang.org/x/text/language before being stored.
func (r *Registry) Register(tag, assetName string) {
	r.tags.Add(normalizeTag(tag), assetName)
}

// Available lists every registered tag, sorted.
func (r *Registry) Available() []string {
	keys := r.tags.Keys()
	sort.Strings(keys)
	return keys
}

// Load opens the asset registered for tag, deserializes it, and wraps
// it as a Dictionary. An unregistered tag fails with a
// MissingResourceError enumerating the tags that are registered.
func (r *Registry) Load(tag string, opts ...Option) (*Dictionary, error) {
	norm := normalizeTag(tag)
	node, ok := r.tags.Find(norm)
	if !ok {
		return nil, &MissingResourceError{Tag: tag, Available: r.Available()}
	}
	assetName, _ := node.Meta().(string)
	f, err := r.source.Open(assetName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	automaton, err := Deserialize(f)
	if err != nil {
		return nil, err
	}
	return NewDictionary(norm, automaton, opts...), nil
}

// LoadDetected detects the host's locale via the operating system
// (jibber_jabber.DetectIETF) and loads the matching registered
// resource.
func (r *Registry) LoadDetected(opts ...Option) (*Dictionary, error) {
	tag, err := jj.DetectIETF()
	if err != nil {
		return nil, err
	}
	return r.Load(tag, opts...)
}

func normalizeTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}
