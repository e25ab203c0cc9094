// Package timeconv converts between the time representations the
// engineering database ecosystem uses: ISO-8601 strings on the command
// line, compact EDB dates in request filenames, and modified Julian dates
// in exported data.
package timeconv

import (
	"fmt"
	"strconv"
	"time"
)

// EDBDateFormat is the compact date layout embedded in EDB request
// filenames, e.g. 20220502T060000.
const EDBDateFormat = "20060102T150405"

// mjdEpochUnix is the Unix timestamp of MJD 0 (1858-11-17T00:00:00 UTC).
const mjdEpochUnix = -3506716800

const secondsPerDay = 86400

// jdOffset converts a Julian date to a modified Julian date.
const jdOffset = 2400000.5

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseISO parses an ISO-8601 datetime. A string without a timezone is
// treated as UTC, matching the database's convention.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time specification: %q (expected ISO-8601, e.g. 2022-05-02T06:00:00)", s)
}

// FormatEDBDate renders a time in the compact layout the EDB expects in
// request filenames.
func FormatEDBDate(t time.Time) string {
	return t.UTC().Format(EDBDateFormat)
}

// MJDFromTime converts a time to a modified Julian date.
func MJDFromTime(t time.Time) float64 {
	sec := float64(t.Unix()-mjdEpochUnix) + float64(t.Nanosecond())/1e9
	return sec / secondsPerDay
}

// TimeFromMJD converts a modified Julian date to a UTC time, keeping
// millisecond precision.
func TimeFromMJD(mjd float64) time.Time {
	sec := mjd * secondsPerDay
	ms := int64(sec*1e3 + 0.5)
	return time.Unix(mjdEpochUnix+ms/1e3, (ms%1e3)*int64(time.Millisecond)).UTC()
}

// MJDFromJD converts a Julian date to a modified Julian date.
func MJDFromJD(jd float64) float64 {
	return jd - jdOffset
}

// ParseMJD parses a numeric time specification as MJD, accepting JD input
// for values large enough to be unambiguous.
func ParseMJD(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse MJD %q: %w", s, err)
	}
	if v > jdOffset {
		return MJDFromJD(v), nil
	}
	return v, nil
}
