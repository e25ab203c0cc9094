package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwst-tools/engdb-cli/internal/engdb"
	"github.com/jwst-tools/engdb-cli/internal/models"
	"github.com/jwst-tools/engdb-cli/internal/parser"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute cadence and gap statistics from a local series file",
	Long: `Run the summarizer on a previously exported series file instead of
querying the database. The format is chosen by extension: .csv (database
response layout), .json, .yaml/.yml.`,
	Example: `  engdb analyze --from-file centroids.csv
  engdb analyze --from-file centroids.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("from-file", "", "Series file to analyze (required)")
	analyzeCmd.Flags().String("mnemonic", "", "Mnemonic label for CSV input (default: file name)")
	analyzeCmd.MarkFlagRequired("from-file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fromFile, _ := cmd.Flags().GetString("from-file")
	mnemonic, _ := cmd.Flags().GetString("mnemonic")

	file, err := os.Open(fromFile)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", fromFile, err)
	}
	defer file.Close()

	var series *models.TimeSeries
	ext := strings.ToLower(filepath.Ext(fromFile))

	switch ext {
	case ".csv":
		if mnemonic == "" {
			mnemonic = strings.TrimSuffix(filepath.Base(fromFile), ext)
		}
		series, err = engdb.ParseTimeSeries(mnemonic, file)
	case ".json":
		series, err = parser.ParseJSONSeries(file)
	case ".yaml", ".yml":
		series, err = parser.ParseYAMLSeries(file)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .csv, .json, .yaml, .yml)", ext)
	}

	if err != nil {
		return fmt.Errorf("failed to parse series file: %w", err)
	}
	if mnemonic != "" {
		series.Mnemonic = mnemonic
	}

	return printSummary(series)
}
