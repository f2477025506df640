package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-boundedqueue/internal/server"
	"github.com/huynhanx03/go-boundedqueue/internal/service"
	"github.com/huynhanx03/go-boundedqueue/internal/transport/rest"
	"github.com/huynhanx03/go-boundedqueue/pkg/logger"
	"github.com/huynhanx03/go-boundedqueue/pkg/settings"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "boundedqueue",
		Short:         "Fixed-capacity FIFO queue of numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newDemoCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a shared queue over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(&cfg.Logger)
			defer func() { _ = log.Sync() }()

			svc, err := service.NewQueueService(cfg.Queue.Capacity, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("queue ready", zap.Int("capacity", cfg.Queue.Capacity))
			router := rest.NewRouter(cfg.Server.Mode, svc, log)
			return server.New(&cfg.Server, router, log).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill, partially drain and refill a queue, printing each step",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), capacity)
		},
	}
	cmd.Flags().IntVarP(&capacity, "capacity", "n", 10, "queue capacity")
	return cmd
}
