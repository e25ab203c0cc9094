package engdb

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jwst-tools/engdb-cli/internal/models"
	"github.com/jwst-tools/engdb-cli/internal/timeconv"
)

// EDB responses are CSV with columns theTime, MJD, EUValue, sqldatatype.
// The header row is recognized by its first field.
const headerTimeColumn = "theTime"

// ParseTimeSeries parses the CSV body of an EDB response. An empty body or
// a header-only body yields a valid series with zero samples.
func ParseTimeSeries(mnemonic string, r io.Reader) (*models.TimeSeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	series := &models.TimeSeries{Mnemonic: mnemonic}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		row++
		if record[0] == headerTimeColumn {
			continue
		}
		sample, err := parseSample(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		series.Samples = append(series.Samples, sample)
	}
	return series, nil
}

func parseSample(record []string) (models.Sample, error) {
	if len(record) < 4 {
		return models.Sample{}, fmt.Errorf("expected 4 columns, got %d", len(record))
	}

	t, err := timeconv.ParseISO(record[0])
	if err != nil {
		return models.Sample{}, err
	}
	mjd, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return models.Sample{}, fmt.Errorf("parse MJD column %q: %w", record[1], err)
	}
	valueType, err := models.ParseValueType(record[3])
	if err != nil {
		return models.Sample{}, err
	}

	return models.Sample{
		Time:  t,
		MJD:   mjd,
		Value: record[2],
		Type:  valueType,
	}, nil
}
