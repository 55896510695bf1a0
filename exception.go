package hyphenate

import "strings"

// RewriteException rewrites a hyphenated exception word, such as
// "uni-ver-sity", into a Liang pattern string anchored at both word
// boundaries, such as ".u8n8i9v8e8r9s8i8t8y.". Hyphen positions get
// priority 9, the remaining inter-letter slots get priority 8. The
// leading and trailing slots, adjacent to the boundary markers, stay
// at the implicit priority 0.
//
// Adjacent hyphens collapse into a single priority-9 marker.
func RewriteException(word string) string {
	var b strings.Builder
	b.WriteByte('.')
	first := true
	hyphenBefore := false
	for _, r := range word {
		if r == '-' {
			hyphenBefore = true
			continue
		}
		if !first {
			if hyphenBefore {
				b.WriteByte('9')
			} else {
				b.WriteByte('8')
			}
		}
		b.WriteRune(r)
		first = false
		hyphenBefore = false
	}
	b.WriteByte('.')
	return b.String()
}
