// Package engdb talks to a MAST-style engineering telemetry database. A
// query for one mnemonic over one time window is an authenticated download
// of a generated CSV file.
package engdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwst-tools/engdb-cli/internal/config"
	"github.com/jwst-tools/engdb-cli/internal/httpx"
	"github.com/jwst-tools/engdb-cli/internal/models"
	"github.com/jwst-tools/engdb-cli/internal/timeconv"
)

// ErrUnauthorized is returned on a 401 response; the API token is missing,
// expired, or wrong.
var ErrUnauthorized = errors.New("unauthorized: check that the MAST API token is valid")

// ErrOutOfOrder is returned when the database delivers samples whose
// timestamps are not ascending.
var ErrOutOfOrder = errors.New("database returned samples out of time order")

type Client struct {
	baseURL string
	token   string
	http    *httpx.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    httpx.NewClient(httpx.WithTimeout(cfg.Timeout)),
	}, nil
}

// Timeseries fetches telemetry for the given mnemonic over the closed
// window [start, end] and returns it as a time-ordered series.
func (c *Client) Timeseries(ctx context.Context, mnemonic string, start, end time.Time) (*models.TimeSeries, error) {
	if mnemonic == "" {
		return nil, fmt.Errorf("mnemonic must not be empty")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end %s is before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	filename := fmt.Sprintf("%s-%s-%s.csv",
		mnemonic, timeconv.FormatEDBDate(start), timeconv.FormatEDBDate(end))
	url := fmt.Sprintf("%s/%s", c.baseURL, filename)

	log.Debug().Str("mnemonic", mnemonic).Str("url", url).Msg("fetching timeseries")

	resp, err := c.http.Get(ctx, url, map[string]string{
		"Authorization": fmt.Sprintf("token %s", c.token),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s: unexpected status %d: %s", filename, resp.StatusCode, body)
	}

	series, err := ParseTimeSeries(mnemonic, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse response for %s: %w", mnemonic, err)
	}
	if !series.Ascending() {
		return nil, ErrOutOfOrder
	}

	log.Debug().Str("mnemonic", mnemonic).Int("samples", series.Len()).Msg("fetched timeseries")

	return series, nil
}
