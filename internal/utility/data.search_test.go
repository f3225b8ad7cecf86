package utility

import (
	"testing"
)

func TestSearchRegex(t *testing.T) {
	filter := SearchRegex("  lobby ")
	if filter["$regex"] != "lobby" {
		t.Errorf("pattern = %q, muốn 'lobby' (đã trim)", filter["$regex"])
	}
	if filter["$options"] != "i" {
		t.Errorf("options = %q, muốn 'i'", filter["$options"])
	}
}

func TestSearchRegex_EscapesMetaCharacters(t *testing.T) {
	cases := map[string]string{
		"a+b":      `a\+b`,
		"exit(":    `exit\(`,
		"khu [A]":  `khu \[A\]`,
		"tầng 1.5": `tầng 1\.5`,
	}
	for input, want := range cases {
		filter := SearchRegex(input)
		if filter["$regex"] != want {
			t.Errorf("SearchRegex(%q) pattern = %q, muốn %q", input, filter["$regex"], want)
		}
	}
}
