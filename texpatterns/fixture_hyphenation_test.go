package texpatterns_test

import (
	"strings"
	"testing"

	"github.com/go-hyphenate/hyphenate/format/tex"
	"github.com/go-hyphenate/hyphenate/texpatterns"
)

const sampleDictionary = `\message{sample}
\patterns{
.hy3p
1n2
he2n
2he
he2n
o2n
2ti
n2at
}
\hyphenation{
ta-ble
con-cate-na-tion
}
`

func TestLoadDictionaryFromCombinedSource(t *testing.T) {
	dict, err := tex.LoadDictionary("sample", strings.NewReader(sampleDictionary))
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("table", "-"); h != "ta-ble" {
		t.Fatalf("table should be ta-ble via exception, got %s", h)
	}
	if h := dict.HyphenationString("concatenation", "-"); h != "con-cate-na-tion" {
		t.Fatalf("concatenation should follow the exception, got %s", h)
	}
}

func TestLoadPatternsWithoutExceptions(t *testing.T) {
	patternsOnly := `\patterns{
ta1bl
}
`
	dict, err := texpatterns.LoadPatterns("patterns-only", strings.NewReader(patternsOnly))
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("table", "-"); h != "ta-ble" {
		t.Fatalf("table should split on the bare pattern, got %s", h)
	}
}
