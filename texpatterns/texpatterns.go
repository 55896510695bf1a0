// Package texpatterns adapts TeX-style \patterns{...} source blocks
// into hyphenate's PatternReader interface.
package texpatterns

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-hyphenate/hyphenate"
)

// Reader streams raw Liang pattern strings from a TeX pattern file.
//
// Patterns live between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// \hyphenation{...} blocks (exceptions) are skipped; see texexceptions
// for those. Comment and directive lines are skipped as well.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
}

var _ hyphenate.PatternReader = (*Reader)(nil)

// NewReader wraps r as a hyphenate.PatternReader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Identifier returns the \message{...} name found so far, if any.
func (r *Reader) Identifier() string { return r.identifier }

// Next returns the next raw pattern string. It returns io.EOF when
// the source is exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		switch {
		case strings.HasPrefix(line, "\\message{"):
			r.identifier = strings.TrimSuffix(strings.TrimPrefix(line, "\\message{"), "}")
			continue
		case strings.HasPrefix(line, "\\hyphenation{"):
			skipTeXBlock(r.scanner)
			continue
		case line == "", strings.HasPrefix(line, "%"), strings.HasPrefix(line, "\\"), strings.HasPrefix(line, "}"):
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func skipTeXBlock(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if strings.HasPrefix(strings.TrimSpace(scanner.Text()), "}") {
			return
		}
	}
}

// LoadPatterns parses TeX pattern data and compiles it into a ready-to-use
// Dictionary. Exceptions from \hyphenation{...} are intentionally not
// loaded here; see texexceptions.NewReader, or format/tex.LoadDictionary
// for loading both from one source.
func LoadPatterns(name string, r io.Reader, opts ...hyphenate.Option) (*hyphenate.Dictionary, error) {
	return hyphenate.Compile(name, NewReader(r), nil, opts...)
}
