package mnemonic

import lwerr "github.com/mrz1836/lastword/pkg/errors"

// Resolve returns the dictionary index of token, which must be either a full
// word or its first AbbrevLen characters. Matching is case-sensitive.
//
// The scan starts at the first word sharing token's two-letter prefix and
// stops as soon as the first letter changes.
func (d *Dictionary) Resolve(token string) (int, error) {
	if len(token) < MinWordLen || len(token) > MaxWordLen {
		return -1, d.unknownWord(token)
	}

	start, ok := d.prefixes.Start(token[:2])
	if !ok {
		return -1, d.unknownWord(token)
	}

	for i := start; i < len(d.words); i++ {
		w := d.words[i]
		if token == w || token == Abbreviate(w) {
			return i, nil
		}
		if w[0] != token[0] {
			break
		}
	}

	return -1, d.unknownWord(token)
}

// unknownWord builds the UnknownWord error carrying the offending token.
func (d *Dictionary) unknownWord(token string) error {
	err := lwerr.WithDetails(lwerr.ErrUnknownWord, map[string]string{"word": token})
	if s := d.Suggest(token); s != "" {
		return lwerr.WithSuggestion(err, "did you mean '"+s+"'?")
	}
	return lwerr.WithSuggestion(err, "enter the full word or its first 4 letters, in lowercase")
}

// Resolve resolves token against the English dictionary.
func Resolve(token string) (int, error) {
	return English().Resolve(token)
}
