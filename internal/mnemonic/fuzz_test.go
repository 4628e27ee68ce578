package mnemonic

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzResolve checks that Resolve only ever accepts a full word or its abbreviation.
func FuzzResolve(f *testing.F) {
	f.Add("abandon")
	f.Add("aban")
	f.Add("zoo")
	f.Add("ab")
	f.Add("abandonxx")
	f.Add("")
	f.Add(string([]byte{0xFF, 0xFE, 0xFD}))

	d := English()
	f.Fuzz(func(t *testing.T, token string) {
		i, err := d.Resolve(token)
		if err != nil {
			if i != -1 {
				t.Errorf("Resolve(%q) returned index %d with error", token, i)
			}
			return
		}
		w, ok := d.Word(i)
		if !ok {
			t.Fatalf("Resolve(%q) returned out of range index %d", token, i)
		}
		if token != w && token != Abbreviate(w) {
			t.Errorf("Resolve(%q) matched %q", token, w)
		}
	})
}

// FuzzDecode checks that decoding never panics and that successful decodes unpack
// back to the resolved indices.
func FuzzDecode(f *testing.F) {
	f.Add("abandon abandon about")
	f.Add("wrap jar phys abus")
	f.Add("  \t ")
	f.Add("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong")

	d := English()
	f.Fuzz(func(t *testing.T, phrase string) {
		n, v, err := d.Decode(phrase)
		if err != nil {
			return
		}
		tokens := strings.Fields(phrase)
		if n != len(tokens) {
			t.Fatalf("Decode(%q) count = %d, want %d", phrase, n, len(tokens))
		}
		if v.BitLen() > n*WordBits {
			t.Fatalf("Decode(%q) bit length %d exceeds %d", phrase, v.BitLen(), n*WordBits)
		}
		for k, i := range Unpack(n, v) {
			want, _ := d.Resolve(tokens[k])
			if i != want {
				t.Fatalf("Decode(%q) word %d = %d, want %d", phrase, k, i, want)
			}
		}
	})
}

// FuzzNormalizeInput tests that normalization never panics and produces trimmed output.
func FuzzNormalizeInput(f *testing.F) {
	f.Add("")
	f.Add("1. abandon\n2. ability")
	f.Add("\t\n\r abandon \t ability \n")
	f.Add(string([]byte{0xFF, 0xFE}))

	f.Fuzz(func(t *testing.T, input string) {
		result := NormalizeInput(input)

		if utf8.ValidString(input) && !utf8.ValidString(result) {
			t.Errorf("NormalizeInput returned invalid UTF-8 for input %q", input)
		}
		if result != strings.TrimSpace(result) {
			t.Errorf("NormalizeInput returned untrimmed output for input %q", input)
		}
		if strings.Contains(result, ",") {
			t.Errorf("NormalizeInput kept a comma for input %q", input)
		}
	})
}
