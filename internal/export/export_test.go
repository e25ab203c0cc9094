package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

func testSeries() *models.TimeSeries {
	base := time.Date(2022, 5, 2, 6, 0, 0, 0, time.UTC)
	return &models.TimeSeries{
		Mnemonic: "SA_ZFGGSPOSX",
		Samples: []models.Sample{
			{Time: base, MJD: 59701.25, Value: "0.11", Type: models.ValueTypeReal},
			{Time: base.Add(30 * time.Second), MJD: 59701.2503472222, Value: "0.12", Type: models.ValueTypeReal},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "json", "yaml", "table"} {
		if _, err := ParseFormat(s); err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestWriteCSVMatchesResponseLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSeries(), FormatCSV, false); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "theTime,MJD,EUValue,sqldatatype" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2022-05-02 06:00:00.000,59701.2500000000,0.11,real") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSeries(), FormatTable, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "TIME") || !strings.Contains(out, "0.12") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
}

func TestWriteTableMJD(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSeries(), FormatTable, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "MJD") || !strings.Contains(out, "59701.2500000000") {
		t.Fatalf("unexpected MJD table output:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSeries(), FormatJSON, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"mnemonic": "SA_ZFGGSPOSX"`) {
		t.Fatalf("unexpected JSON output:\n%s", out)
	}
}
