// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds decoder metrics using atomic counters for thread safety.
type Metrics struct {
	// Word resolution
	resolvesTotal  atomic.Int64
	resolvesFailed atomic.Int64

	// Phrase decoding
	decodesTotal  atomic.Int64
	decodesFailed atomic.Int64

	// Checksum completion
	completionsTotal  atomic.Int64
	checksumHashes    atomic.Int64
	candidatesTotal   atomic.Int64
	completionNanos   atomic.Int64
	completionSkipped atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordResolves records resolved successful word resolutions, plus one
// failed resolution when failed is set.
func (m *Metrics) RecordResolves(resolved int, failed bool) {
	if failed {
		m.resolvesFailed.Add(1)
		resolved++
	}
	m.resolvesTotal.Add(int64(resolved))
}

// RecordDecode records a phrase decode.
func (m *Metrics) RecordDecode(err error) {
	m.decodesTotal.Add(1)
	if err != nil {
		m.decodesFailed.Add(1)
	}
}

// RecordChecksumHashes records n checksum digests computed by a verification
// or a completion.
func (m *Metrics) RecordChecksumHashes(n int) {
	m.checksumHashes.Add(int64(n))
}

// RecordCompletion records a finished completion run.
// A run whose phrase length is not completable counts as skipped.
func (m *Metrics) RecordCompletion(candidates int, duration time.Duration, applicable bool) {
	m.completionsTotal.Add(1)
	if !applicable {
		m.completionSkipped.Add(1)
		return
	}
	m.candidatesTotal.Add(int64(candidates))
	m.completionNanos.Add(duration.Nanoseconds())
}

// Snapshot returns a point-in-time copy of all metrics.
type Snapshot struct {
	ResolvesTotal     int64 `json:"resolves_total"`
	ResolvesFailed    int64 `json:"resolves_failed"`
	DecodesTotal      int64 `json:"decodes_total"`
	DecodesFailed     int64 `json:"decodes_failed"`
	CompletionsTotal  int64 `json:"completions_total"`
	CompletionSkipped int64 `json:"completions_skipped"`
	ChecksumHashes    int64 `json:"checksum_hashes"`
	CandidatesTotal   int64 `json:"candidates_total"`
	CompletionNanos   int64 `json:"completion_nanos"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		ResolvesTotal:     m.resolvesTotal.Load(),
		ResolvesFailed:    m.resolvesFailed.Load(),
		DecodesTotal:      m.decodesTotal.Load(),
		DecodesFailed:     m.decodesFailed.Load(),
		CompletionsTotal:  m.completionsTotal.Load(),
		CompletionSkipped: m.completionSkipped.Load(),
		ChecksumHashes:    m.checksumHashes.Load(),
		CandidatesTotal:   m.candidatesTotal.Load(),
		CompletionNanos:   m.completionNanos.Load(),
	}
}

// ResolveFailureRate returns the share of failed resolutions as a percentage (0-100).
// Returns 0 if nothing has been resolved.
func (m *Metrics) ResolveFailureRate() float64 {
	total := m.resolvesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.resolvesFailed.Load()) / float64(total) * 100
}

// CompletionAvgMs returns the average duration of applicable completions in milliseconds.
// Returns 0 if no completion has run.
func (m *Metrics) CompletionAvgMs() float64 {
	runs := m.completionsTotal.Load() - m.completionSkipped.Load()
	if runs <= 0 {
		return 0
	}
	return float64(m.completionNanos.Load()) / float64(runs) / 1e6
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.resolvesTotal.Store(0)
	m.resolvesFailed.Store(0)
	m.decodesTotal.Store(0)
	m.decodesFailed.Store(0)
	m.completionsTotal.Store(0)
	m.completionSkipped.Store(0)
	m.checksumHashes.Store(0)
	m.candidatesTotal.Store(0)
	m.completionNanos.Store(0)
}
