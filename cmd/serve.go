package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/goalsplit/backend/internal/models"
	"github.com/goalsplit/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Create the data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return err
	}

	err = models.Connect(cfg.DBPath)
	if err != nil {
		log.Error().Msg(err.Error())
		return err
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Error().Msg(err.Error())
		return err
	}
	router.AttachRoutes(cfg, r.Group(cfg.BaseURL().Path))

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", cfg.ListenAddress).Msg("backend startup complete")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down, waiting for running requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}

	log.Info().Msg("backend stopped")
	return err
}
