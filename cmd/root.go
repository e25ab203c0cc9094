package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwst-tools/engdb-cli/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "engdb",
	Short: "JWST engineering database CLI",
	Long: `A command line tool for the JWST engineering telemetry database.
Fetches time series for a mnemonic over a time window and reports
sampling cadence and gap statistics.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("base-url", "", "Engineering database base URL (overrides ENGDB_BASE_URL)")
	rootCmd.PersistentFlags().String("token", "", "MAST API token (overrides MAST_API_TOKEN)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout for database requests")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("ENGDB")
	viper.AutomaticEnv()
	viper.BindEnv("token", "MAST_API_TOKEN")

	// Set defaults
	viper.SetDefault("base_url", config.DefaultBaseURL)
	viper.SetDefault("timeout", "30s")

	initLogging()
}

func initLogging() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
