// Package tex combines texpatterns and texexceptions to load a
// complete dictionary from a single TeX-format source: the source is
// read once into memory, scanned for patterns and for exceptions, and
// compiled with one Build.
package tex

import (
	"bytes"
	"io"

	"github.com/go-hyphenate/hyphenate"
	"github.com/go-hyphenate/hyphenate/texexceptions"
	"github.com/go-hyphenate/hyphenate/texpatterns"
)

// LoadDictionary loads a pattern-and-exception dictionary from a single
// TeX-format source containing both a \patterns{...} and (optionally) a
// \hyphenation{...} block.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//	dict, err := tex.LoadDictionary("en-us", f)
//
// The source is read fully into memory so it can be scanned twice.
func LoadDictionary(name string, r io.Reader, opts ...hyphenate.Option) (*hyphenate.Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	patterns := texpatterns.NewReader(bytes.NewReader(data))
	exceptions := texexceptions.NewReader(bytes.NewReader(data))
	return hyphenate.Compile(name, patterns, exceptions, opts...)
}
