// Package mnemonic decodes BIP39 mnemonic phrases.
//
// It maps typed words (or their first four letters) to 11-bit dictionary
// indices, packs a phrase into its entropy+checksum bitstream, verifies
// checksums, and enumerates every valid final word for a phrase that is
// missing its last, checksum-bearing word.
//
// A Dictionary is immutable once built and safe for concurrent use.
package mnemonic

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/tyler-smith/go-bip39/wordlists"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// Dictionary dimensions.
const (
	// WordCount is the number of words in a BIP39 dictionary.
	WordCount = 2048
	// WordBits is the number of bits each word encodes.
	WordBits = 11
	// MinWordLen is the shortest dictionary word.
	MinWordLen = 3
	// MaxWordLen is the longest dictionary word.
	MaxWordLen = 8
	// AbbrevLen is the number of leading characters that identify a word.
	AbbrevLen = 4

	wordMask = WordCount - 1
)

// Dictionary is a validated word list with the lookup structures derived from it.
type Dictionary struct {
	words    []string
	prefixes PrefixIndex
	trie     *patricia.Trie
}

// NewDictionary validates words and builds the prefix index and trie.
// The slice is copied; later changes by the caller have no effect.
func NewDictionary(words []string) (*Dictionary, error) {
	if err := CheckWordList(words); err != nil {
		return nil, err
	}

	owned := slices.Clone(words)
	return &Dictionary{
		words:    owned,
		prefixes: BuildPrefixIndex(owned),
		trie:     buildTrie(owned),
	}, nil
}

//nolint:gochecknoglobals // process-wide read-only dictionary, built on first use
var english = sync.OnceValue(func() *Dictionary {
	d, err := NewDictionary(wordlists.English)
	if err != nil {
		panic(fmt.Sprintf("mnemonic: embedded english word list: %v", err))
	}
	return d
})

// English returns the BIP39 English dictionary.
func English() *Dictionary {
	return english()
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word at index i.
func (d *Dictionary) Word(i int) (string, bool) {
	if i < 0 || i >= len(d.words) {
		return "", false
	}
	return d.words[i], true
}

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

// Prefixes returns the prefix index. Callers must not modify it.
func (d *Dictionary) Prefixes() PrefixIndex {
	return d.prefixes
}

// CheckWordList verifies that words can back a Dictionary: exactly WordCount
// lowercase ASCII words of MinWordLen..MaxWordLen characters, strictly
// ascending, with no two words sharing the same abbreviation.
func CheckWordList(words []string) error {
	if len(words) != WordCount {
		return invalidWordList("size", strconv.Itoa(len(words)))
	}

	seen := make(map[string]int, len(words))
	for i, w := range words {
		if len(w) < MinWordLen || len(w) > MaxWordLen {
			return invalidWordList("length", w)
		}
		for j := 0; j < len(w); j++ {
			if w[j] < 'a' || w[j] > 'z' {
				return invalidWordList("charset", w)
			}
		}
		if i > 0 && words[i-1] >= w {
			return invalidWordList("order", w)
		}

		abbrev := Abbreviate(w)
		if prev, dup := seen[abbrev]; dup {
			return lwerr.WithSuggestion(
				invalidWordList("abbreviation", abbrev),
				fmt.Sprintf("%q and %q share the abbreviation %q", words[prev], w, abbrev),
			)
		}
		seen[abbrev] = i
	}

	return nil
}

// Abbreviate returns the first AbbrevLen characters of w, or w itself when shorter.
func Abbreviate(w string) string {
	if len(w) <= AbbrevLen {
		return w
	}
	return w[:AbbrevLen]
}

func invalidWordList(rule, value string) error {
	return lwerr.WithDetails(lwerr.ErrInvalidWordList, map[string]string{
		"rule":  rule,
		"value": value,
	})
}
