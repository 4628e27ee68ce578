package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsWithPrefix(t *testing.T) {
	t.Parallel()
	d := English()

	tests := []struct {
		prefix string
		want   []string
	}{
		{"aba", []string{"abandon"}},
		{"zo", []string{"zone", "zoo"}},
		{"abandon", []string{"abandon"}},
		{"qz", nil},
		{"abandonx", nil},
	}

	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			t.Parallel()
			got := d.WordsWithPrefix(tc.prefix)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWordsWithPrefix_DictionaryOrder(t *testing.T) {
	t.Parallel()
	d := English()

	assert.Equal(t, d.Words(), d.WordsWithPrefix(""))

	got := d.WordsWithPrefix("ca")
	assert.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	d := English()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "abandon", "abandon"},
		{"one deletion", "abandn", "abandon"},
		{"one substitution", "zoa", "zoo"},
		{"transposition", "abuot", "about"},
		{"too far", "qqqqqqqq", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, d.Suggest(tc.input))
		})
	}
}
