package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/lastword/internal/fileutil"
	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
	"github.com/mrz1836/lastword/internal/secure"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// maxPhraseBytes bounds file and stdin input. 24 words of 8 letters plus
// numbering fit comfortably.
const maxPhraseBytes = 4096

// Prompt functions are variables so tests can replace them.
//
//nolint:gochecknoglobals // Swappable for testing
var promptPhraseFn = promptPhrase

// promptPhrase reads a phrase from a terminal without echo.
// The caller owns the returned bytes and should zero them.
func promptPhrase(in *os.File, w io.Writer) ([]byte, error) {
	out(w, "Enter phrase (input hidden): ")

	phrase, err := term.ReadPassword(int(in.Fd())) //nolint:gosec // G115: Fd() fits in int on supported platforms
	outln(w) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading phrase: %w", err)
	}
	return phrase, nil
}

// phraseFile is shared by every command that takes a phrase.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var phraseFile string

// addPhraseFlags registers the phrase input flags on cmd.
func addPhraseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&phraseFile, "file", "f", "", "read the phrase from a file")
}

// readPhrase returns the phrase tokens from args, --file or stdin, in that
// order of preference. The raw input is held in a secure buffer, cleaned in
// place and zeroed before returning; only the tokens are copied out.
func readPhrase(cmd *cobra.Command, args []string) ([]string, error) {
	buf, err := phraseBuffer(cmd, args)
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()

	if cfg != nil && cfg.Input.StripNumbering {
		mnemonic.BlankMarkers(buf.Bytes())
	}
	tokens := buf.Fields()

	if len(tokens) == 0 {
		return nil, lwerr.WithSuggestion(
			lwerr.WithDetails(lwerr.ErrInvalidInput, map[string]string{"input": "empty phrase"}),
			"pass the phrase as arguments, with --file, or on stdin",
		)
	}
	return tokens, nil
}

func phraseBuffer(cmd *cobra.Command, args []string) (*secure.Buffer, error) {
	if len(args) > 0 {
		return secure.Take(joinArgs(args)), nil
	}

	if phraseFile != "" {
		data, err := fileutil.ReadLimited(phraseFile, maxPhraseBytes)
		if err != nil {
			return nil, phraseFileError(err)
		}
		return secure.Take(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && output.IsTerminal(f) {
		data, err := promptPhraseFn(f, cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		return secure.Take(data), nil
	}

	data, err := fileutil.ReadAllLimited(in, maxPhraseBytes)
	if err != nil {
		if errors.Is(err, fileutil.ErrTooLarge) {
			return nil, lwerr.WithDetails(lwerr.ErrInvalidInput, map[string]string{"stdin": err.Error()})
		}
		return nil, lwerr.Wrap(err, "reading phrase from stdin")
	}
	return secure.Take(data), nil
}

// joinArgs joins args with single spaces without an intermediate string.
func joinArgs(args []string) []byte {
	size := len(args) - 1
	for _, a := range args {
		size += len(a)
	}
	b := make([]byte, 0, size)
	for i, a := range args {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, a...)
	}
	return b
}

func phraseFileError(err error) error {
	details := map[string]string{"file": phraseFile}
	switch {
	case errors.Is(err, os.ErrNotExist):
		return lwerr.WithDetails(lwerr.ErrNotFound, details)
	case errors.Is(err, fileutil.ErrTooLarge):
		details["limit"] = strconv.Itoa(maxPhraseBytes)
		return lwerr.WithDetails(lwerr.ErrInvalidInput, details)
	default:
		return lwerr.WithDetails(lwerr.Wrap(err, "reading phrase file"), details)
	}
}

// out is a helper for CLI output.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}
