// Package export writes a fetched time series in the formats the CLI can
// emit. CSV output uses the same column layout as the database responses,
// so exported files can be re-analyzed offline.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// timeLayout matches the timestamp format of database CSV responses.
const timeLayout = "2006-01-02 15:04:05.000"

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatYAML, FormatTable:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: csv, json, yaml, table)", s)
	}
}

// Write renders the series to w. For the table format, useMJD switches the
// time column from ISO-8601 to modified Julian date.
func Write(w io.Writer, series *models.TimeSeries, format Format, useMJD bool) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, series)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(series)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(series)
	case FormatTable:
		return writeTable(w, series, useMJD)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeCSV(w io.Writer, series *models.TimeSeries) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"theTime", "MJD", "EUValue", "sqldatatype"}); err != nil {
		return err
	}
	for _, s := range series.Samples {
		record := []string{
			s.Time.UTC().Format(timeLayout),
			strconv.FormatFloat(s.MJD, 'f', 10, 64),
			s.Value,
			string(s.Type),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, series *models.TimeSeries, useMJD bool) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if useMJD {
		fmt.Fprintln(tw, "MJD\tVALUE\tTYPE")
	} else {
		fmt.Fprintln(tw, "TIME\tVALUE\tTYPE")
	}
	for _, s := range series.Samples {
		if useMJD {
			fmt.Fprintf(tw, "%.10f\t%s\t%s\n", s.MJD, s.Value, s.Type)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Time.UTC().Format(timeLayout), s.Value, s.Type)
		}
	}
	return tw.Flush()
}
