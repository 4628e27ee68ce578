package mnemonic

import (
	"crypto/sha256"
	"math/big"
	"strconv"
	"strings"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// Valid mnemonic lengths, in words.
const (
	MinPhraseWords = 12
	MaxPhraseWords = 24
)

// ValidLength reports whether n is a full BIP39 mnemonic length (12, 15, 18, 21 or 24).
func ValidLength(n int) bool {
	return n >= MinPhraseWords && n <= MaxPhraseWords && n%3 == 0
}

// Completable reports whether a phrase of n words is missing exactly one
// trailing word of a valid mnemonic (11, 14, 17, 20 or 23).
func Completable(n int) bool {
	return ValidLength(n + 1)
}

// ChecksumBits returns the number of checksum bits in a mnemonic of total words.
func ChecksumBits(total int) int {
	return (total + 2) / 3
}

// checksum returns the top bits of the SHA-256 digest of entropy.
func checksum(entropy []byte, bits int) uint {
	sum := sha256.Sum256(entropy)
	return uint(sum[0] >> (8 - bits))
}

// Entropy decodes a full mnemonic, verifies its checksum and returns the
// entropy bytes it encodes.
func (d *Dictionary) Entropy(tokens []string) ([]byte, error) {
	n, v, err := d.DecodeWords(tokens)
	if err != nil {
		return nil, err
	}
	if !ValidLength(n) {
		return nil, lwerr.WithDetails(lwerr.ErrInvalidWordCount, map[string]string{
			"count": strconv.Itoa(n),
		})
	}

	csBits := ChecksumBits(n)
	entBits := n*WordBits - csBits

	got := new(big.Int).And(v, big.NewInt(int64(1)<<csBits-1)).Uint64()
	entropy := new(big.Int).Rsh(v, uint(csBits)).FillBytes(make([]byte, entBits/8))

	if want := checksum(entropy, csBits); uint64(want) != got {
		return nil, lwerr.WithDetails(lwerr.ErrInvalidChecksum, map[string]string{
			"expected": strconv.FormatUint(uint64(want), 2),
			"actual":   strconv.FormatUint(got, 2),
		})
	}

	return entropy, nil
}

// Verify checks the checksum of a full mnemonic phrase.
func (d *Dictionary) Verify(phrase string) error {
	_, err := d.Entropy(strings.Fields(phrase))
	return err
}

// Verify checks phrase against the English dictionary.
func Verify(phrase string) error {
	return English().Verify(phrase)
}
