package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/mnemonic"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// wordsCmd lists dictionary words by prefix.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var wordsCmd = &cobra.Command{
	Use:   "words [prefix]",
	Short: "List dictionary words starting with a prefix",
	Long: `List the BIP39 English words that start with prefix, in dictionary order.
Without a prefix every word is listed.

Example:
  lastword words ab
  lastword words -o json zo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWords,
	ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return mnemonic.English().WordsWithPrefix(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(wordsCmd)
}

// WordsResponse is the JSON shape of words output.
type WordsResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
	Count  int      `json:"count"`
}

func runWords(_ *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	words := cmdCtx.Dictionary.WordsWithPrefix(prefix)
	if len(words) == 0 {
		return lwerr.WithSuggestion(
			lwerr.WithDetails(lwerr.ErrNotFound, map[string]string{"prefix": prefix}),
			"words are lowercase a-z",
		)
	}

	logger.Debug("words: prefix_len=%d matches=%d", len(prefix), len(words))

	if formatter.IsJSON() {
		return formatter.JSON(WordsResponse{Prefix: prefix, Words: words, Count: len(words)})
	}

	w := formatter.Writer()
	for _, word := range words {
		outln(w, word)
	}
	return nil
}
