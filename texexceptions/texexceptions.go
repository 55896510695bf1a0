// Package texexceptions adapts TeX-style \hyphenation{...} exception
// blocks into hyphenate's ExceptionReader interface.
package texexceptions

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-hyphenate/hyphenate"
)

// Reader streams hyphenated exception words from \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	inBlock bool
}

var _ hyphenate.ExceptionReader = (*Reader)(nil)

// NewReader wraps r as a hyphenate.ExceptionReader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next exception word, hyphens intact (e.g. "ta-ble").
// It returns io.EOF once every \hyphenation{...} block has been consumed.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if !r.inBlock {
			if strings.HasPrefix(line, "\\hyphenation{") {
				r.inBlock = true
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			r.inBlock = false
			continue
		}
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
