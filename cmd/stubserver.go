package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/fintrack/internal/stubserver"
	"github.com/frahmantamala/fintrack/pkg/logger"
)

var (
	stubAddr string
	stubDB   string
	stubSeed bool
)

var stubServerCmd = &cobra.Command{
	Use:   "stubserver",
	Short: "Run a local stand-in for the remote API",
	Long:  `Serve /users and /expenses locally so the client can be used without the remote API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
		lg := logger.LoggerWrapper()

		srv, err := stubserver.New(stubDB, lg)
		if err != nil {
			return fmt.Errorf("failed to start stub server: %w", err)
		}

		if stubSeed {
			if err := srv.Seed(); err != nil {
				return err
			}
		}

		server := &http.Server{
			Addr:         stubAddr,
			Handler:      srv.Handler(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		serverErrChan := make(chan error, 1)
		go func() {
			lg.Info("stub API listening", "addr", stubAddr, "db", stubDB)
			serverErrChan <- server.ListenAndServe()
		}()

		select {
		case sig := <-sigChan:
			lg.Info("received signal, shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				lg.Error("server shutdown error", "error", err)
			}
		case err := <-serverErrChan:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		}

		lg.Info("stub server stopped")
		return nil
	},
}

func init() {
	stubServerCmd.Flags().StringVar(&stubAddr, "addr", ":3000", "Listen address")
	stubServerCmd.Flags().StringVar(&stubDB, "db", "fintrack-stub.db", "Sqlite file backing the stub (\":memory:\" for throwaway)")
	stubServerCmd.Flags().BoolVar(&stubSeed, "seed", false, "Seed demo data when the database is empty")
}
