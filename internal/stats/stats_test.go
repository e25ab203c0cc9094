package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

func seriesAt(t *testing.T, offsets ...float64) *models.TimeSeries {
	t.Helper()
	base := time.Date(2022, 5, 2, 6, 0, 0, 0, time.UTC)
	samples := make([]models.Sample, len(offsets))
	for i, off := range offsets {
		samples[i] = models.Sample{
			Time:  base.Add(time.Duration(off * float64(time.Second))),
			Value: "1.0",
			Type:  models.ValueTypeReal,
		}
	}
	return &models.TimeSeries{Mnemonic: "SA_ZFGGSPOSX", Samples: samples}
}

func TestCadenceModeDominatesRareGap(t *testing.T) {
	// intervals: 10, 10, 10, 50
	series := seriesAt(t, 0, 10, 20, 30, 80)

	cadence, err := Cadence(series)
	if err != nil {
		t.Fatalf("cadence: %v", err)
	}
	if cadence != 10 {
		t.Fatalf("expected cadence 10, got %v", cadence)
	}

	gap, err := LargestGap(series)
	if err != nil {
		t.Fatalf("largest gap: %v", err)
	}
	if gap != 50 {
		t.Fatalf("expected largest gap 50, got %v", gap)
	}
}

func TestUniformSeriesCadenceEqualsGap(t *testing.T) {
	series := seriesAt(t, 0, 30, 60, 90, 120)

	cadence, err := Cadence(series)
	if err != nil {
		t.Fatalf("cadence: %v", err)
	}
	gap, err := LargestGap(series)
	if err != nil {
		t.Fatalf("largest gap: %v", err)
	}
	if cadence != 30 || gap != 30 {
		t.Fatalf("expected 30/30 for uniform spacing, got %v/%v", cadence, gap)
	}
}

func TestDeterminism(t *testing.T) {
	series := seriesAt(t, 0, 10, 20, 25, 35, 100)

	c1, err := Cadence(series)
	if err != nil {
		t.Fatalf("cadence: %v", err)
	}
	g1, err := LargestGap(series)
	if err != nil {
		t.Fatalf("largest gap: %v", err)
	}
	for i := 0; i < 100; i++ {
		c2, _ := Cadence(series)
		g2, _ := LargestGap(series)
		if c2 != c1 || g2 != g1 {
			t.Fatalf("results changed across calls: %v/%v vs %v/%v", c1, g1, c2, g2)
		}
	}
}

func TestInsufficientData(t *testing.T) {
	for _, series := range []*models.TimeSeries{seriesAt(t), seriesAt(t, 0)} {
		if _, err := Cadence(series); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("cadence with %d samples: expected ErrInsufficientData, got %v", series.Len(), err)
		}
		if _, err := LargestGap(series); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("largest gap with %d samples: expected ErrInsufficientData, got %v", series.Len(), err)
		}
		if _, err := Summarize(series); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("summarize with %d samples: expected ErrInsufficientData, got %v", series.Len(), err)
		}
	}
}

func TestNonMonotonicRejected(t *testing.T) {
	series := seriesAt(t, 0, 20, 10)
	if _, err := Cadence(series); !errors.Is(err, ErrNonMonotonic) {
		t.Fatalf("expected ErrNonMonotonic, got %v", err)
	}
}

func TestGapNeverBelowCadence(t *testing.T) {
	cases := [][]float64{
		{0, 10, 20, 30, 80},
		{0, 1, 2, 3, 4, 5},
		{0, 0.5, 1.5, 1.6, 60},
		{0, 7, 7, 14}, // duplicate timestamp gives a zero interval
	}
	for _, offsets := range cases {
		series := seriesAt(t, offsets...)
		cadence, err := Cadence(series)
		if err != nil {
			t.Fatalf("cadence(%v): %v", offsets, err)
		}
		gap, err := LargestGap(series)
		if err != nil {
			t.Fatalf("largest gap(%v): %v", offsets, err)
		}
		if gap < cadence {
			t.Fatalf("largest gap %v below cadence %v for offsets %v", gap, cadence, offsets)
		}
	}
}

func TestJitterBucketsToSingleMode(t *testing.T) {
	// Millisecond noise around a 10 s period: intervals 10.001, 9.998,
	// 10.002 must collapse into one bucket instead of three singleton
	// intervals.
	series := seriesAt(t, 0, 10.001, 19.999, 30.001)

	cadence, err := Cadence(series)
	if err != nil {
		t.Fatalf("cadence: %v", err)
	}
	if math.Abs(cadence-10) > 0.005 {
		t.Fatalf("expected cadence ~10 under interval bucketing, got %v", cadence)
	}
}

func TestSummarize(t *testing.T) {
	series := seriesAt(t, 0, 10, 20, 30, 80)

	summary, err := Summarize(series)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Mnemonic != "SA_ZFGGSPOSX" {
		t.Fatalf("unexpected mnemonic %q", summary.Mnemonic)
	}
	if summary.Samples != 5 || summary.Intervals != 4 {
		t.Fatalf("expected 5 samples / 4 intervals, got %d/%d", summary.Samples, summary.Intervals)
	}
	if summary.Span != 80*time.Second {
		t.Fatalf("expected span 80s, got %s", summary.Span)
	}
	if summary.CadenceSeconds != 10 || summary.LargestGapSeconds != 50 {
		t.Fatalf("expected cadence 10 / gap 50, got %v/%v",
			summary.CadenceSeconds, summary.LargestGapSeconds)
	}
}

func TestModeTieBreaksToSmallest(t *testing.T) {
	// intervals: 5, 5, 20, 20 — tie resolved toward 5
	series := seriesAt(t, 0, 5, 10, 30, 50)

	cadence, err := Cadence(series)
	if err != nil {
		t.Fatalf("cadence: %v", err)
	}
	if cadence != 5 {
		t.Fatalf("expected tie break to 5, got %v", cadence)
	}
}
