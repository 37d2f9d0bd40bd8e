package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decomizer/storefront/utils/logger"
	"github.com/decomizer/storefront/view/dashboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	baseURL  string
	token    string
	interval time.Duration
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Poll the admin dashboard and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(os.Getenv("ENVIRONMENT")); err != nil {
			return err
		}
		defer logger.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		_ = dashboard.Render(out, dashboard.Snapshot{}, time.Now())

		view := dashboard.NewView(
			dashboard.NewClient(baseURL, token, timeout),
			interval,
			dashboard.WithOnUpdate(func(s dashboard.Snapshot) {
				if err := dashboard.Render(out, s, time.Now()); err != nil {
					logger.Error("[Dashboard] err render", zap.String("error", err.Error()))
				}
			}),
		)
		return view.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "storefront API base URL")
	rootCmd.Flags().StringVar(&token, "token", os.Getenv("DASHBOARD_TOKEN"), "admin bearer token")
	rootCmd.Flags().DurationVar(&interval, "interval", dashboard.DefaultInterval, "refresh interval")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
