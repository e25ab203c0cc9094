package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

func ParseJSONSeries(reader io.Reader) (*models.TimeSeries, error) {
	var data models.TimeSeries
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON series: %w", err)
	}

	return &data, nil
}
