package mnemonic

import (
	"math"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/tchap/go-patricia/v2/patricia"
)

// MaxTypoDistance is the maximum Levenshtein distance to consider a suggestion.
// Words with distance > 2 are considered too different to suggest.
const MaxTypoDistance = 2

func buildTrie(words []string) *patricia.Trie {
	trie := patricia.NewTrie()
	for i, w := range words {
		trie.Insert(patricia.Prefix(w), i)
	}
	return trie
}

// WordsWithPrefix returns the dictionary words starting with prefix, in
// dictionary order. An empty prefix returns every word.
func (d *Dictionary) WordsWithPrefix(prefix string) []string {
	var indices []int
	_ = d.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		if i, ok := item.(int); ok {
			indices = append(indices, i)
		}
		return nil
	})
	sort.Ints(indices)

	words := make([]string, len(indices))
	for k, i := range indices {
		words[k] = d.words[i]
	}
	return words
}

// Suggest finds the closest dictionary word to token using Levenshtein distance.
// Returns empty string if no word is close enough (distance > MaxTypoDistance).
// Suggestions are only ever presented to the user; Resolve never accepts them.
func (d *Dictionary) Suggest(token string) string {
	if token == "" {
		return ""
	}

	minDist := math.MaxInt
	var suggestion string
	for _, w := range d.words {
		dist := levenshtein.ComputeDistance(token, w)
		if dist < minDist {
			minDist = dist
			suggestion = w
		}
		if dist == 0 {
			return w
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}
