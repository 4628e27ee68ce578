package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

func TestResolve_EveryWordAndAbbreviation(t *testing.T) {
	t.Parallel()
	d := English()

	for i, w := range d.Words() {
		got, err := d.Resolve(w)
		require.NoError(t, err, w)
		assert.Equal(t, i, got, w)

		abbrev, err := d.Resolve(Abbreviate(w))
		require.NoError(t, err, Abbreviate(w))
		assert.Equal(t, got, abbrev, "full word and abbreviation must agree for %q", w)
	}
}

func TestResolve_KnownIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		index int
	}{
		{"abandon", 0},
		{"aban", 0},
		{"ability", 1},
		{"abil", 1},
		{"able", 2},
		{"about", 3},
		{"abuse", 9},
		{"access", 10},
		{"act", 19},
		{"action", 20},
		{"acti", 20},
		{"zoo", 2047},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.index, got)
		})
	}
}

func TestResolve_UnknownWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one letter", "a"},
		{"two letters", "ab"},
		{"too long", "abandonxx"},
		{"missing prefix", "qqqq"},
		{"prefix present but no word", "abcd"},
		{"five letter partial", "aband"},
		{"six letter partial", "abando"},
		{"uppercase", "Abandon"},
		{"uppercase abbreviation", "ABAN"},
		{"three letter non-word", "abz"},
		{"non ascii", "ábaco"},
		{"trailing space", "abandon "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tc.token)
			require.ErrorIs(t, err, lwerr.ErrUnknownWord)
			assert.Equal(t, -1, got)
			assert.Equal(t, tc.token, lwerr.Detail(err, "word"))
			assert.Equal(t, lwerr.ExitInput, lwerr.ExitCode(err))
		})
	}
}

func TestResolve_SuggestsCloseWord(t *testing.T) {
	t.Parallel()
	_, err := Resolve("abandn")
	require.Error(t, err)

	var le *lwerr.LastwordError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "did you mean 'abandon'?", le.Suggestion)
}

func TestResolve_NoSuggestionForGarbage(t *testing.T) {
	t.Parallel()
	_, err := Resolve("qqqqqqqq")
	require.Error(t, err)

	var le *lwerr.LastwordError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Suggestion, "first 4 letters")
}

func TestResolve_ScanStopsAtFirstLetter(t *testing.T) {
	t.Parallel()
	// "azzz" has prefix "az" absent; "aw" exists but no "awzz" word, and the
	// scan from "aw" must stop when reaching the "b" words.
	for _, token := range []string{"awzz", "axzz", "azzz"} {
		_, err := Resolve(token)
		assert.ErrorIs(t, err, lwerr.ErrUnknownWord, token)
	}
}

func TestResolve_SyntheticDictionary(t *testing.T) {
	t.Parallel()
	d, err := NewDictionary(syntheticWords())
	require.NoError(t, err)

	i, err := d.Resolve("aaab")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = d.Resolve("adci")
	require.NoError(t, err)
	w, _ := d.Word(i)
	assert.Equal(t, "adci", w)

	_, err = d.Resolve("zzzz")
	assert.ErrorIs(t, err, lwerr.ErrUnknownWord)
}

func TestResolve_ConcurrentUse(t *testing.T) {
	t.Parallel()
	d := English()
	words := d.Words()

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(offset int) {
			defer func() { done <- struct{}{} }()
			for i := offset; i < len(words); i += 8 {
				got, err := d.Resolve(words[i])
				assert.NoError(t, err)
				assert.Equal(t, i, got)
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
