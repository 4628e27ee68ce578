package cli

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
)

// verifyCmd checks the checksum of a complete phrase.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var verifyCmd = &cobra.Command{
	Use:   "verify [phrase...]",
	Short: "Check the checksum of a complete 12 to 24 word phrase",
	Long: `Verify that a 12, 15, 18, 21 or 24 word phrase carries a valid BIP39 checksum.

The entropy is only printed when --show-entropy is given.

Example:
  lastword verify --file phrase.txt
  lastword verify --file phrase.txt --show-entropy -o json`,
	RunE: runVerify,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var verifyShowEntropy bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(verifyCmd)
	addPhraseFlags(verifyCmd)
	verifyCmd.Flags().BoolVar(&verifyShowEntropy, "show-entropy", false, "print the entropy in hex (sensitive)")
}

// VerifyResponse is the JSON shape of verify output.
type VerifyResponse struct {
	Valid        bool   `json:"valid"`
	WordCount    int    `json:"word_count"`
	EntropyBits  int    `json:"entropy_bits"`
	ChecksumBits int    `json:"checksum_bits"`
	Entropy      string `json:"entropy,omitempty"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	tokens, err := readPhrase(cmd, args)
	if err != nil {
		return err
	}

	entropy, err := cmdCtx.Dictionary.Entropy(tokens)
	recordVerify(cmdCtx.Metrics, tokens, err)
	if err != nil {
		return err
	}
	defer clear(entropy)

	resp := VerifyResponse{
		Valid:        true,
		WordCount:    len(tokens),
		EntropyBits:  len(entropy) * 8,
		ChecksumBits: mnemonic.ChecksumBits(len(tokens)),
	}
	if verifyShowEntropy {
		resp.Entropy = hex.EncodeToString(entropy)
	}

	logger.Debug("verify: words=%d entropy_bits=%d", resp.WordCount, resp.EntropyBits)

	if formatter.IsJSON() {
		return formatter.JSON(resp)
	}

	w := formatter.Writer()
	output.Successf(w, "checksum valid (%d words, %d bits of entropy)", resp.WordCount, resp.EntropyBits)
	if resp.Entropy != "" {
		out(w, "Entropy: %s\n", resp.Entropy)
	}
	return nil
}
