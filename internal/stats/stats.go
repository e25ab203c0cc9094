// Package stats derives summary statistics from a telemetry time series:
// the representative sampling cadence and the largest gap between adjacent
// samples. Both are pure computations over an already-fetched series.
package stats

import (
	"errors"
	"time"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

// IntervalResolution is the bucket width used when counting interval
// frequencies. Consecutive-sample deltas are rounded to this resolution
// before the mode is taken, so millisecond jitter around a nominal
// sampling period collapses into a single bucket.
const IntervalResolution = 10 * time.Millisecond

var (
	// ErrInsufficientData is returned when a series has fewer than two
	// samples, so no inter-sample interval exists. Both Cadence and
	// LargestGap use it; callers distinguish it with errors.Is.
	ErrInsufficientData = errors.New("need at least 2 samples to compute intervals")

	// ErrNonMonotonic is returned when sample timestamps decrease in
	// sequence order. The fetch layer is expected to deliver time-ordered
	// data; the summarizer rejects violations rather than re-sorting.
	ErrNonMonotonic = errors.New("sample timestamps are not in ascending order")
)

// Summary bundles the statistics for one series.
type Summary struct {
	Mnemonic          string
	Samples           int
	Intervals         int
	Span              time.Duration
	CadenceSeconds    float64
	LargestGapSeconds float64
}

// Intervals returns the consecutive inter-sample deltas t[i+1]-t[i],
// quantized to IntervalResolution. Fails with ErrInsufficientData for
// series shorter than two samples and ErrNonMonotonic for out-of-order
// timestamps.
func Intervals(series *models.TimeSeries) ([]time.Duration, error) {
	if series.Len() < 2 {
		return nil, ErrInsufficientData
	}
	intervals := make([]time.Duration, 0, series.Len()-1)
	for i := 1; i < series.Len(); i++ {
		d := series.Samples[i].Time.Sub(series.Samples[i-1].Time)
		if d < 0 {
			return nil, ErrNonMonotonic
		}
		intervals = append(intervals, d.Round(IntervalResolution))
	}
	return intervals, nil
}

// Cadence returns the representative sampling interval in seconds: the
// mode of the quantized interval multiset. Telemetry streams usually have
// one dominant period plus rare long dropouts, so the mode is robust where
// a mean would be biased. Ties go to the smallest tied interval.
func Cadence(series *models.TimeSeries) (float64, error) {
	intervals, err := Intervals(series)
	if err != nil {
		return 0, err
	}
	return mode(intervals).Seconds(), nil
}

// LargestGap returns the largest elapsed time in seconds between two
// adjacent samples. This surfaces data dropouts, not sampling jitter.
func LargestGap(series *models.TimeSeries) (float64, error) {
	intervals, err := Intervals(series)
	if err != nil {
		return 0, err
	}
	max := intervals[0]
	for _, d := range intervals[1:] {
		if d > max {
			max = d
		}
	}
	return max.Seconds(), nil
}

// Summarize computes all statistics for a series in one pass over the
// interval set.
func Summarize(series *models.TimeSeries) (*Summary, error) {
	intervals, err := Intervals(series)
	if err != nil {
		return nil, err
	}
	max := intervals[0]
	for _, d := range intervals[1:] {
		if d > max {
			max = d
		}
	}
	return &Summary{
		Mnemonic:          series.Mnemonic,
		Samples:           series.Len(),
		Intervals:         len(intervals),
		Span:              series.Span(),
		CadenceSeconds:    mode(intervals).Seconds(),
		LargestGapSeconds: max.Seconds(),
	}, nil
}

// mode returns the most frequent duration; on a tie, the smallest of the
// tied values, so repeated calls over the same series always agree.
func mode(intervals []time.Duration) time.Duration {
	counts := make(map[time.Duration]int, len(intervals))
	for _, d := range intervals {
		counts[d]++
	}
	var best time.Duration
	bestCount := 0
	for d, n := range counts {
		if n > bestCount || (n == bestCount && d < best) {
			best = d
			bestCount = n
		}
	}
	return best
}
