// Package cmd holds the command line interface of the backend.
package cmd

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// cfg is loaded from the environment before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:               "goalsplit",
	Short:             "Split a period income across weighted goals",
	Long:              "Goalsplit distributes an income across goals with minimums, maximums and importance weights. Without a subcommand, the API server is started.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return nil
}
