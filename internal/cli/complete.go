package cli

import (
	"iter"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// completeCmd lists every valid final word for a phrase missing its last word.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var completeCmd = &cobra.Command{
	Use:   "complete [phrase...]",
	Short: "List every final word that makes the phrase checksum-valid",
	Long: `Given the first 11, 14, 17, 20 or 23 words of a mnemonic, list every final
word that yields a valid BIP39 checksum, in ascending order of the final
word's entropy bits.

Any other word count is not an error: there is simply nothing to complete.

Example:
  lastword complete wrap jar phys abus mini sand hair pet addr alle fash than \
    duck soun budg spel flus knoc sour nove mixe dete tack
  lastword complete --file head.txt --limit 1
  lastword complete --file head.txt --workers 4 --verify`,
	RunE: runComplete,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	completeWorkers int
	completeLimit   int
	completeVerify  bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(completeCmd)
	addPhraseFlags(completeCmd)

	completeCmd.Flags().IntVar(&completeWorkers, "workers", -1, "parallel workers (0 = sequential; default from config)")
	completeCmd.Flags().IntVar(&completeLimit, "limit", 0, "stop after this many candidates (0 = all)")
	completeCmd.Flags().BoolVar(&completeVerify, "verify", false, "re-check each candidate with an independent BIP39 implementation")
}

// CompleteResponse is the JSON shape of complete output.
type CompleteResponse struct {
	WordCount  int      `json:"word_count"`
	Applicable bool     `json:"applicable"`
	Candidates []string `json:"candidates"`
	Count      int      `json:"count"`
	Verified   bool     `json:"verified"`
}

func runComplete(cmd *cobra.Command, args []string) error {
	if completeLimit < 0 {
		return lwerr.WithDetails(lwerr.ErrInvalidInput, map[string]string{"limit": "must not be negative"})
	}

	tokens, err := readPhrase(cmd, args)
	if err != nil {
		return err
	}

	workers := cfg.Completion.Workers
	if completeWorkers >= 0 {
		workers = completeWorkers
	}
	verifyCandidates := cfg.Completion.Verify || completeVerify

	start := time.Now()
	candidates, hashes, err := completeCandidates(cmd, tokens, workers)
	recordCompletion(cmdCtx.Metrics, tokens, len(candidates), hashes, time.Since(start), err)
	if err != nil {
		return err
	}

	resp := CompleteResponse{
		WordCount:  len(tokens),
		Applicable: mnemonic.Completable(len(tokens)),
		Candidates: candidates,
		Count:      len(candidates),
	}

	if verifyCandidates && resp.Applicable {
		if err := crossCheckCandidates(tokens, candidates); err != nil {
			return err
		}
		resp.Verified = true
	}

	logger.Debug("complete: words=%d workers=%d candidates=%d verified=%t",
		resp.WordCount, workers, resp.Count, resp.Verified)

	if formatter.IsJSON() {
		return formatter.JSON(resp)
	}

	if !resp.Applicable {
		output.Warnf(cmd.ErrOrStderr(),
			"completion not applicable: %d words given, need 11, 14, 17, 20 or 23", resp.WordCount)
		return nil
	}

	w := formatter.Writer()
	for _, c := range candidates {
		outln(w, formatter.Emphasize(c))
	}
	if cfg.Output.Verbose {
		output.Infof(cmd.ErrOrStderr(), "%d candidates", resp.Count)
	}
	return nil
}

// completeCandidates runs the lazy sequence when workers is zero and the
// parallel enumerator otherwise, applying --limit either way. It also returns
// the number of checksum digests computed: one per consumed candidate in the
// sequence, every candidate in the parallel enumerator.
func completeCandidates(cmd *cobra.Command, tokens []string, workers int) ([]string, int, error) {
	d := cmdCtx.Dictionary

	if workers == 0 {
		seq, err := d.CompleteWords(tokens)
		if err != nil {
			return nil, 0, err
		}
		candidates := collectLimit(seq, completeLimit)
		return candidates, len(candidates), nil
	}

	all, err := d.CompleteParallelWords(cmd.Context(), tokens, workers)
	if err != nil {
		return nil, 0, err
	}
	hashes := len(all)
	if completeLimit > 0 && len(all) > completeLimit {
		all = all[:completeLimit]
	}
	if all == nil {
		all = []string{}
	}
	return all, hashes, nil
}

func collectLimit(seq iter.Seq[string], limit int) []string {
	out := []string{}
	for w := range seq {
		out = append(out, w)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// crossCheckCandidates confirms every completed phrase with go-bip39.
func crossCheckCandidates(tokens, candidates []string) error {
	head, err := cmdCtx.Dictionary.Expand(tokens)
	if err != nil {
		return err
	}

	phrase := slices.Grow(slices.Clone(head), 1)
	for _, c := range candidates {
		if err := mnemonic.CrossCheck(append(phrase[:len(head)], c)); err != nil {
			return lwerr.WithDetails(err, map[string]string{"candidate": c})
		}
	}
	return nil
}
