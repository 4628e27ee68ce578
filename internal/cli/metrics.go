package cli

import (
	"strconv"
	"time"

	"github.com/mrz1836/lastword/internal/metrics"
	"github.com/mrz1836/lastword/internal/mnemonic"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// recordResolves counts the resolutions behind n tokens that ended with err.
// Resolution stops at the first unknown token, whose 1-based position the
// error carries. It reports whether a token failed to resolve.
func recordResolves(m *metrics.Metrics, n int, err error) bool {
	if !lwerr.Is(err, lwerr.ErrUnknownWord) {
		m.RecordResolves(n, false)
		return false
	}

	pos, convErr := strconv.Atoi(lwerr.Detail(err, "position"))
	if convErr != nil || pos < 1 || pos > n {
		pos = 1
	}
	m.RecordResolves(pos-1, true)
	return true
}

// recordDecode counts a phrase decode of tokens that ended with err. Errors
// raised after decoding, such as a bad checksum, count as a good decode.
func recordDecode(m *metrics.Metrics, tokens []string, err error) {
	if recordResolves(m, len(tokens), err) {
		m.RecordDecode(err)
		return
	}
	m.RecordDecode(nil)
}

// recordVerify counts a checksum verification of tokens that ended with err.
func recordVerify(m *metrics.Metrics, tokens []string, err error) {
	recordDecode(m, tokens, err)
	if err == nil || lwerr.Is(err, lwerr.ErrInvalidChecksum) {
		m.RecordChecksumHashes(1)
	}
}

// recordCompletion counts a completion of tokens that computed hashes
// checksum digests and returned candidates.
func recordCompletion(m *metrics.Metrics, tokens []string, candidates, hashes int, elapsed time.Duration, err error) {
	recordDecode(m, tokens, err)
	if err != nil {
		return
	}
	m.RecordChecksumHashes(hashes)
	m.RecordCompletion(candidates, elapsed, mnemonic.Completable(len(tokens)))
}
