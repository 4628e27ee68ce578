package mnemonic

import (
	"math/big"
	"strconv"
	"strings"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// Decode splits phrase on whitespace and decodes it. See DecodeWords.
func (d *Dictionary) Decode(phrase string) (int, *big.Int, error) {
	return d.DecodeWords(strings.Fields(phrase))
}

// DecodeWords resolves every token and packs the indices big-endian, 11 bits
// per word, first word most significant. It returns the word count and the
// packed value. The first unresolvable token aborts decoding.
func (d *Dictionary) DecodeWords(tokens []string) (int, *big.Int, error) {
	indices, err := d.Indices(tokens)
	if err != nil {
		return 0, nil, err
	}
	return len(indices), Pack(indices), nil
}

// Indices resolves every token to its dictionary index.
// Errors carry the 1-based position of the offending token.
func (d *Dictionary) Indices(tokens []string) ([]int, error) {
	indices := make([]int, len(tokens))
	for pos, token := range tokens {
		i, err := d.Resolve(token)
		if err != nil {
			return nil, lwerr.WithDetails(err, map[string]string{
				"position": strconv.Itoa(pos + 1),
			})
		}
		indices[pos] = i
	}
	return indices, nil
}

// Expand replaces abbreviations with their full dictionary words.
func (d *Dictionary) Expand(tokens []string) ([]string, error) {
	indices, err := d.Indices(tokens)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(indices))
	for k, i := range indices {
		words[k] = d.words[i]
	}
	return words, nil
}

// Pack folds indices into a single integer, 11 bits each, in order.
func Pack(indices []int) *big.Int {
	v := new(big.Int)
	w := new(big.Int)
	for _, i := range indices {
		v.Lsh(v, WordBits)
		v.Or(v, w.SetInt64(int64(i&wordMask)))
	}
	return v
}

// Unpack splits a packed value back into n word indices.
func Unpack(n int, v *big.Int) []int {
	indices := make([]int, n)
	mask := big.NewInt(wordMask)
	w := new(big.Int)
	for k := range indices {
		w.Rsh(v, uint(WordBits*(n-1-k)))
		w.And(w, mask)
		indices[k] = int(w.Int64())
	}
	return indices
}

// Decode decodes phrase against the English dictionary.
func Decode(phrase string) (int, *big.Int, error) {
	return English().Decode(phrase)
}
