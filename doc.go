/*
Package hyphenate implements Liang's competitive-pattern hyphenation
algorithm: given a set of weighted patterns and a set of exception
words, it compiles a compact double-array automaton and uses it to
compute the inter-letter positions at which a word may be hyphenated.

The package is split into a build-time pipeline (ParsePattern,
RewriteException, an insertion trie, a suffix compressor, an alphabet
collector, and a packer, all orchestrated by Builder) and a read-time
pair (Automaton, and the hyphenation scan itself, wrapped by
Dictionary). The packed Automaton is immutable once built and safe for
concurrent reads.

The lookup path is Unicode-aware for BMP characters and supports
non-ASCII patterns such as German umlauts.

Further Reading

	F.M. Liang, "Word Hy-phen-a-tion by Com-put-er", 1983.
	https://www.tug.org/docs/liang/
	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)

----------------------------------------------------------------------

# BSD License

Copyright (c) Contributors to this module.
All rights reserved.

License information is available in the LICENSE file.
*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
