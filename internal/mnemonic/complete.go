package mnemonic

import (
	"context"
	"iter"
	"math/big"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultCompletionWorkers is the worker count used by CompleteParallel when
// the caller passes zero or less.
const DefaultCompletionWorkers = 4

// completion describes the search for the final word of an n-word phrase.
//
// The final word carries free low entropy bits followed by chk checksum bits.
// For each value of the free bits the full entropy is known, so the checksum
// and therefore the whole final word follow from it.
type completion struct {
	prefix *big.Int // decoded phrase shifted left by free bits
	chk    int      // checksum bits in the final word
	free   int      // entropy bits in the final word
	width  int      // entropy length in bytes
}

func newCompletion(n int, v *big.Int) completion {
	total := n + 1
	chk := ChecksumBits(total)
	free := WordBits - chk
	return completion{
		prefix: new(big.Int).Lsh(v, uint(free)),
		chk:    chk,
		free:   free,
		width:  (total*WordBits - chk) / 8,
	}
}

// size returns the number of candidates.
func (c completion) size() int {
	return 1 << c.free
}

// candidate returns the dictionary index of the final word whose free
// entropy bits are i. ent and buf are scratch space owned by the caller.
func (c completion) candidate(i int, ent *big.Int, buf []byte) int {
	ent.SetInt64(int64(i))
	ent.Or(ent, c.prefix)
	return i<<c.chk | int(checksum(ent.FillBytes(buf), c.chk))
}

// Complete decodes phrase and returns the lazy sequence of every final word
// that makes it a valid mnemonic. See CompleteWords.
func (d *Dictionary) Complete(phrase string) (iter.Seq[string], error) {
	return d.CompleteWords(strings.Fields(phrase))
}

// CompleteWords decodes tokens and returns the lazy sequence of every final
// word that makes them a valid mnemonic, in ascending order of the final
// word's entropy bits.
//
// Decoding errors are returned immediately. A phrase whose length is not one
// of 11, 14, 17, 20 or 23 words yields an empty sequence and no error.
// The sequence is deterministic and may be ranged over any number of times;
// stopping the range early stops the work.
func (d *Dictionary) CompleteWords(tokens []string) (iter.Seq[string], error) {
	n, v, err := d.DecodeWords(tokens)
	if err != nil {
		return nil, err
	}
	if !Completable(n) {
		return func(func(string) bool) {}, nil
	}

	c := newCompletion(n, v)
	return func(yield func(string) bool) {
		ent := new(big.Int)
		buf := make([]byte, c.width)
		for i := 0; i < c.size(); i++ {
			if !yield(d.words[c.candidate(i, ent, buf)]) {
				return
			}
		}
	}, nil
}

// CompleteParallel returns the same candidates as Complete, in the same order,
// computing them with up to workers goroutines. It returns ctx.Err() if the
// context is cancelled before every candidate is computed. A phrase whose
// length is not completable returns nil and no error.
func (d *Dictionary) CompleteParallel(ctx context.Context, phrase string, workers int) ([]string, error) {
	return d.CompleteParallelWords(ctx, strings.Fields(phrase), workers)
}

// CompleteParallelWords is CompleteParallel over pre-split tokens.
func (d *Dictionary) CompleteParallelWords(ctx context.Context, tokens []string, workers int) ([]string, error) {
	n, v, err := d.DecodeWords(tokens)
	if err != nil {
		return nil, err
	}
	if !Completable(n) {
		return nil, nil
	}
	if workers <= 0 {
		workers = DefaultCompletionWorkers
	}

	c := newCompletion(n, v)
	total := c.size()
	out := make([]string, total)

	chunk := (total + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		g.Go(func() error {
			ent := new(big.Int)
			buf := make([]byte, c.width)
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = d.words[c.candidate(i, ent, buf)]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Complete completes phrase against the English dictionary.
func Complete(phrase string) (iter.Seq[string], error) {
	return English().Complete(phrase)
}
