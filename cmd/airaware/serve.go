package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sahil8669/airaware/internal/dashboard"
	"github.com/sahil8669/airaware/internal/db"
	"github.com/sahil8669/airaware/internal/logging"
	"github.com/sahil8669/airaware/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long:  "Launches the AirAware web dashboard backed by the configured readings database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file (environment only when empty)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	log, err := logging.New(logging.Opts{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
		Out:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	if port > 0 {
		cfg.Server.Port = port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("starting dashboard",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("port", cfg.Server.Port),
	)
	return dashboard.Start(ctx, dashboard.StartOpts{
		DB: gormDB,
		Sessions: session.NewStore(session.StoreOpts{
			TTL: cfg.Server.SessionTTL,
		}),
		Logger:       log,
		Port:         cfg.Server.Port,
		Out:          cmd.OutOrStdout(),
		CookieName:   cfg.Server.CookieName,
		CookieSecure: cfg.Server.CookieSecure,
		ChatLimit:    cfg.Server.ChatLimit,
		CORSOrigins:  cfg.Server.CORSOrigins,
	})
}
