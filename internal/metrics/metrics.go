// Package metrics provides process-level counters for generation runs.
// This is a lightweight foundation using atomic counters.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds run counters using atomic values for thread safety.
type Metrics struct {
	// Generation runs
	runsTotal     atomic.Int64
	runErrors     atomic.Int64
	runNanos      atomic.Int64
	conflictsSeen atomic.Int64

	// Entropy and substitution
	entropyBytes atomic.Int64
	linesRead    atomic.Int64
	linesFilled  atomic.Int64
}

// Global is the global metrics instance.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordRun records one generation run with its duration and outcome.
func (m *Metrics) RecordRun(duration time.Duration, err error) {
	m.runsTotal.Add(1)
	m.runNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.runErrors.Add(1)
	}
}

// RecordConflict records a run refused because the output already existed.
func (m *Metrics) RecordConflict() {
	m.conflictsSeen.Add(1)
}

// RecordEntropy records n bytes drawn from the random source.
func (m *Metrics) RecordEntropy(n int) {
	m.entropyBytes.Add(int64(n))
}

// RecordLines records lines read from a template and how many were filled.
func (m *Metrics) RecordLines(read, filled int) {
	m.linesRead.Add(int64(read))
	m.linesFilled.Add(int64(filled))
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	RunsTotal    int64
	RunErrors    int64
	RunNanos     int64
	Conflicts    int64
	EntropyBytes int64
	LinesRead    int64
	LinesFilled  int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RunsTotal:    m.runsTotal.Load(),
		RunErrors:    m.runErrors.Load(),
		RunNanos:     m.runNanos.Load(),
		Conflicts:    m.conflictsSeen.Load(),
		EntropyBytes: m.entropyBytes.Load(),
		LinesRead:    m.linesRead.Load(),
		LinesFilled:  m.linesFilled.Load(),
	}
}

// RunLatencyAvgMs returns the average run duration in milliseconds.
// Returns 0 if no runs have been recorded.
func (m *Metrics) RunLatencyAvgMs() float64 {
	runs := m.runsTotal.Load()
	if runs == 0 {
		return 0
	}
	return float64(m.runNanos.Load()) / float64(runs) / 1e6
}

// Reset resets all metrics to zero.
func (m *Metrics) Reset() {
	m.runsTotal.Store(0)
	m.runErrors.Store(0)
	m.runNanos.Store(0)
	m.conflictsSeen.Store(0)
	m.entropyBytes.Store(0)
	m.linesRead.Store(0)
	m.linesFilled.Store(0)
}
