package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
)

// decodeCmd packs a phrase into its integer value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var decodeCmd = &cobra.Command{
	Use:   "decode [phrase...]",
	Short: "Decode a phrase into word indices and its packed value",
	Long: `Resolve every word (full or 4-letter abbreviation) to its BIP39 index and
pack the indices into one integer, 11 bits per word, first word most significant.

Any number of words is accepted; no checksum is checked.

Example:
  lastword decode abandon abil able
  lastword decode --file phrase.txt -o json`,
	RunE: runDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(decodeCmd)
	addPhraseFlags(decodeCmd)
}

// DecodeResponse is the JSON shape of decode output.
type DecodeResponse struct {
	WordCount    int      `json:"word_count"`
	Bits         int      `json:"bits"`
	ValueHex     string   `json:"value_hex"`
	ValueDecimal string   `json:"value_decimal"`
	Indices      []int    `json:"indices"`
	Words        []string `json:"words"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	tokens, err := readPhrase(cmd, args)
	if err != nil {
		return err
	}

	d := cmdCtx.Dictionary
	n, v, err := d.DecodeWords(tokens)
	recordDecode(cmdCtx.Metrics, tokens, err)
	if err != nil {
		return err
	}

	resp := DecodeResponse{
		WordCount:    n,
		Bits:         n * mnemonic.WordBits,
		ValueHex:     fmt.Sprintf("%#x", v),
		ValueDecimal: v.String(),
		Indices:      mnemonic.Unpack(n, v),
		Words:        make([]string, n),
	}
	for k, i := range resp.Indices {
		resp.Words[k], _ = d.Word(i)
	}

	logger.Debug("decode: words=%d bits=%d", n, v.BitLen())

	if formatter.IsJSON() {
		return formatter.JSON(resp)
	}

	w := formatter.Writer()
	out(w, "Words:    %d\n", resp.WordCount)
	out(w, "Bits:     %d\n", resp.Bits)
	out(w, "Value:    %s\n", resp.ValueHex)
	out(w, "Decimal:  %s\n", resp.ValueDecimal)
	outln(w)

	table := output.NewTable("#", "INDEX", "WORD")
	table.SetAlign(0, output.AlignRight)
	table.SetAlign(1, output.AlignRight)
	for k, i := range resp.Indices {
		table.AddRow(strconv.Itoa(k+1), strconv.Itoa(i), resp.Words[k])
	}
	return table.Render(w)
}
