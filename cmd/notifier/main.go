package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"frota/internal/logger"
	"frota/internal/notifier"
)

// errPartial signals a completed run with delivery failures.
var errPartial = errors.New("some notifications were not delivered")

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case errors.Is(err, errPartial):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "notifier",
		Short:         "Deliver damage notifications to customers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCmd())
	return cmd
}

func runCmd() *cobra.Command {
	var dryRun bool
	var limit int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one dispatch cycle",
		Long: `Fetch pending damage notifications from the pipeline API, email each
customer and report every outcome back. Each item is attempted once per run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := notifier.LoadConfig()
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			if limit > 0 {
				cfg.BatchSize = limit
			}
			return dispatch(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render emails without sending or reporting them")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum notifications to process (default NOTIFIER_BATCH_SIZE)")
	return cmd
}

func dispatch(ctx context.Context, cfg *notifier.Config) error {
	log := logger.Named("notifier")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	var mailer notifier.Mailer
	if !cfg.DryRun {
		m, err := notifier.NewSMTPMailer(cfg)
		if err != nil {
			return err
		}
		mailer = m
	}

	client := notifier.NewClient(cfg.APIURL, cfg.PipelineAPIKey, &http.Client{Timeout: cfg.RequestTimeout})
	result, err := notifier.NewDispatcher(client, mailer, cfg, log).Run(ctx)
	if result != nil {
		log.Infow("notifier run completed",
			"fetched", result.Fetched,
			"sent", result.Sent,
			"failed", result.Failed,
			"skipped", result.Skipped,
			"errors", len(result.Errors),
			"duration", result.Duration.String(),
		)
		for _, deliveryErr := range result.Errors {
			log.Warnw("notification not delivered",
				"notification_id", deliveryErr.NotificationID,
				"recipient", deliveryErr.Recipient,
				"error", deliveryErr.Err.Error(),
			)
		}
	}
	if err != nil {
		return fmt.Errorf("notifier run failed: %w", err)
	}
	if len(result.Errors) > 0 {
		return errPartial
	}
	return nil
}
