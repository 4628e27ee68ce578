package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// lookupCmd resolves individual tokens.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var lookupCmd = &cobra.Command{
	Use:   "lookup <token>...",
	Short: "Show the dictionary index of words or abbreviations",
	Long: `Resolve each token, a full word or its first 4 letters, to its index in the
BIP39 English word list.

Example:
  lastword lookup aban zoo acti`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(lookupCmd)
}

// LookupEntry is one resolved token.
type LookupEntry struct {
	Token string `json:"token"`
	Index int    `json:"index"`
	Word  string `json:"word"`
	Bits  string `json:"bits"`
}

func runLookup(_ *cobra.Command, args []string) error {
	d := cmdCtx.Dictionary

	entries := make([]LookupEntry, 0, len(args))
	for pos, token := range args {
		i, err := d.Resolve(token)
		if err != nil {
			err = lwerr.WithDetails(err, map[string]string{"position": strconv.Itoa(pos + 1)})
			recordResolves(cmdCtx.Metrics, len(args), err)
			return err
		}
		word, _ := d.Word(i)
		entries = append(entries, LookupEntry{
			Token: token,
			Index: i,
			Word:  word,
			Bits:  fmt.Sprintf("%0*b", mnemonic.WordBits, i),
		})
	}

	recordResolves(cmdCtx.Metrics, len(entries), nil)
	logger.Debug("lookup: tokens=%d", len(entries))

	if formatter.IsJSON() {
		return formatter.JSON(entries)
	}

	table := output.NewTable("TOKEN", "INDEX", "WORD", "BITS")
	table.SetAlign(1, output.AlignRight)
	for _, e := range entries {
		table.AddRow(e.Token, strconv.Itoa(e.Index), e.Word, e.Bits)
	}
	return table.Render(formatter.Writer())
}
