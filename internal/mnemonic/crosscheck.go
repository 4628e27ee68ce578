package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// CrossCheck validates a full mnemonic of complete words with an independent
// BIP39 implementation.
func CrossCheck(words []string) error {
	if !bip39.IsMnemonicValid(strings.Join(words, " ")) {
		return lwerr.Wrap(lwerr.ErrInvalidChecksum, "reference implementation rejected mnemonic")
	}
	return nil
}
