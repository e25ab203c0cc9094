package models

import "time"

// TimeSeries holds the time-ordered samples fetched for one mnemonic over
// one closed [start, end] window. It is built once by the fetch step and
// read-only afterwards.
type TimeSeries struct {
	Mnemonic string   `json:"mnemonic" yaml:"mnemonic"`
	Samples  []Sample `json:"samples" yaml:"samples"`
}

func (ts *TimeSeries) Len() int {
	return len(ts.Samples)
}

// Times returns the sample timestamps in sequence order.
func (ts *TimeSeries) Times() []time.Time {
	times := make([]time.Time, len(ts.Samples))
	for i, s := range ts.Samples {
		times[i] = s.Time
	}
	return times
}

// Float64Values returns all sample values as float64. Fails on the first
// non-real sample.
func (ts *TimeSeries) Float64Values() ([]float64, error) {
	values := make([]float64, len(ts.Samples))
	for i, s := range ts.Samples {
		v, err := s.Float64()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Span returns the elapsed time between the first and last sample, or zero
// for series with fewer than two samples.
func (ts *TimeSeries) Span() time.Duration {
	if len(ts.Samples) < 2 {
		return 0
	}
	return ts.Samples[len(ts.Samples)-1].Time.Sub(ts.Samples[0].Time)
}

// Ascending reports whether sample timestamps never decrease in sequence
// order.
func (ts *TimeSeries) Ascending() bool {
	for i := 1; i < len(ts.Samples); i++ {
		if ts.Samples[i].Time.Before(ts.Samples[i-1].Time) {
			return false
		}
	}
	return true
}
