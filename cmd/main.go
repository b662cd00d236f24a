package main

import (
	"SaveBite/cmd/config"
	migration "SaveBite/cmd/database/migrate"
	applog "SaveBite/internal/logger"
	"SaveBite/internal/utils"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "savebite",
		Short: "SaveBite food inventory and expiry reminder backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := utils.LoadConfigFile(configPath)
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "config file %s not found, using defaults\n", configPath)
				return nil
			}
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", utils.DefaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	return applog.New(utils.GetConfig("LOG_DEBUG") == "true", utils.GetLocation())
}

func newServeCmd() *cobra.Command {
	var (
		addr         string
		noDispatcher bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = applog.Sync(log) }()

			db, err := config.ConnectDB()
			if err != nil {
				return err
			}

			app, err := config.NewApp(db, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info("http server listening", zap.String("addr", addr))
				return app.Listen(addr)
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("shutting down http server")
				return app.ShutdownWithTimeout(10 * time.Second)
			})

			if !noDispatcher {
				dispatcher, err := config.NewDispatcher(db, log)
				if err != nil {
					return fmt.Errorf("create reminder dispatcher: %w", err)
				}
				g.Go(func() error {
					if err := dispatcher.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				})
			}

			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":3000", "listen address")
	cmd.Flags().BoolVar(&noDispatcher, "no-dispatcher", false, "do not deliver reminders from this process")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and seed default categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = applog.Sync(log) }()

			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			return migration.Migrate(db, log)
		},
	}
}
