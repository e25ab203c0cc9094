package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jwst-tools/engdb-cli/internal/models"
)

func ParseYAMLSeries(reader io.Reader) (*models.TimeSeries, error) {
	var data models.TimeSeries
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML series: %w", err)
	}

	return &data, nil
}
