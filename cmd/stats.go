package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwst-tools/engdb-cli/internal/config"
	"github.com/jwst-tools/engdb-cli/internal/engdb"
	"github.com/jwst-tools/engdb-cli/internal/models"
	"github.com/jwst-tools/engdb-cli/internal/stats"
	"github.com/jwst-tools/engdb-cli/internal/timeconv"
)

var statsCmd = &cobra.Command{
	Use:   "stats <mnemonic> <start> <end>",
	Short: "Report sampling cadence and largest gap for a mnemonic",
	Long: `Fetch telemetry for a mnemonic over [start, end] and report the
representative sampling cadence and the largest gap between adjacent
samples, both in seconds. Start and end are ISO-8601 datetimes.`,
	Example: `  engdb stats SA_ZFGGSPOSX 2022-05-02T06:00:00 2022-05-02T13:30:00`,
	Args:    cobra.ExactArgs(3),
	RunE:    runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	mnemonic := args[0]
	start, err := timeconv.ParseISO(args[1])
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := timeconv.ParseISO(args[2])
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	cfg := config.New()
	client, err := engdb.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}

	ctx := context.Background()
	series, err := client.Timeseries(ctx, mnemonic, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch timeseries: %w", err)
	}

	return printSummary(series)
}

// printSummary runs the summarizer and prints its result in the fixed
// stats output format. Shared by the stats and analyze commands.
func printSummary(series *models.TimeSeries) error {
	summary, err := stats.Summarize(series)
	if errors.Is(err, stats.ErrInsufficientData) {
		return fmt.Errorf("%s: %d sample(s) in window, need at least 2 to compute cadence and gaps",
			series.Mnemonic, series.Len())
	}
	if err != nil {
		return fmt.Errorf("failed to summarize %s: %w", series.Mnemonic, err)
	}

	fmt.Printf("%s: %d samples over %s\n", summary.Mnemonic, summary.Samples, summary.Span)
	fmt.Printf("cadence: %.3f s\n", summary.CadenceSeconds)
	fmt.Printf("largest gap: %.3f s\n", summary.LargestGapSeconds)

	return nil
}
