package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwst-tools/engdb-cli/internal/config"
	"github.com/jwst-tools/engdb-cli/internal/engdb"
	"github.com/jwst-tools/engdb-cli/internal/export"
	"github.com/jwst-tools/engdb-cli/internal/timeconv"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <mnemonic> <start> <end>",
	Short: "Fetch telemetry for a mnemonic and print or export it",
	Long: `Fetch telemetry for a mnemonic over [start, end] and write the
samples in the requested format. CSV output uses the database response
layout, so exported files can be fed back into the analyze command.`,
	Example: `  # Show samples as a table
  engdb fetch SA_ZFGGSPOSX 2022-05-02T06:00:00 2022-05-02T13:30:00

  # Export to a CSV file with times as modified Julian dates in the table
  engdb fetch SA_ZFGGSPOSX 2022-05-02T06:00:00 2022-05-02T13:30:00 --format csv --output centroids.csv`,
	Args: cobra.ExactArgs(3),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("format", "table", "Output format (csv/json/yaml/table)")
	fetchCmd.Flags().Bool("mjd", false, "Show times as modified Julian dates in table output")
	fetchCmd.Flags().String("output", "", "Write to file instead of stdout")
}

func runFetch(cmd *cobra.Command, args []string) error {
	mnemonic := args[0]
	start, err := timeconv.ParseISO(args[1])
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := timeconv.ParseISO(args[2])
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	// Parse flags
	formatStr, _ := cmd.Flags().GetString("format")
	useMJD, _ := cmd.Flags().GetBool("mjd")
	output, _ := cmd.Flags().GetString("output")

	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
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

	out := os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer file.Close()
		out = file
	}

	if err := export.Write(out, series, format, useMJD); err != nil {
		return fmt.Errorf("failed to write series: %w", err)
	}

	if output != "" {
		fmt.Printf("Wrote %d samples to %s\n", series.Len(), output)
	}

	return nil
}
