package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qmc",
	Short: "Exact two-level Boolean function minimization by Quine–McCluskey",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"emit debug-level step tracing (find_primes, find_essentials, row_dom, col_dom)")

	viper.SetEnvPrefix("QMC")
	viper.AutomaticEnv()
	viper.SetConfigName("qmc")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	// A missing config file is not an error: flags and environment alone
	// are enough to run qmc.
	_ = viper.ReadInConfig()
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
