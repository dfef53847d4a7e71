package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// PipelineClient defines the pipeline API operations needed by the dispatcher.
type PipelineClient interface {
	GetPending(ctx context.Context, limit int) ([]Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

// DeliveryError records why one notification was not delivered or not reported.
type DeliveryError struct {
	NotificationID string
	Recipient      string
	Err            error
}

// RunResult contains the outcome of a dispatch run.
type RunResult struct {
	Fetched  int
	Sent     int
	Failed   int
	Skipped  int
	Errors   []DeliveryError
	Duration time.Duration
}

// Dispatcher sends pending damage notifications, one attempt per item per run.
type Dispatcher struct {
	client  PipelineClient
	mailer  Mailer
	limiter *rate.Limiter
	config  *Config
	logger  *zap.SugaredLogger
}

// NewDispatcher creates a Dispatcher. mailer may be nil for a dry run.
func NewDispatcher(client PipelineClient, mailer Mailer, cfg *Config, logger *zap.SugaredLogger) *Dispatcher {
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return &Dispatcher{
		client:  client,
		mailer:  mailer,
		limiter: rate.NewLimiter(cfg.RateLimit, burst),
		config:  cfg,
		logger:  logger,
	}
}

// Run executes one dispatch cycle. It fails only when the pending list cannot be
// fetched or ctx ends; per-item failures are reported back and collected in the result.
func (d *Dispatcher) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}

	pending, err := d.client.GetPending(ctx, d.config.BatchSize)
	if err != nil {
		return nil, err
	}
	result.Fetched = len(pending)

	if len(pending) == 0 {
		d.logger.Info("no pending notifications, nothing to do")
		result.Duration = time.Since(start)
		return result, nil
	}

	for _, n := range pending {
		msg, err := RenderDamageEmail(n, d.config.CompanyName)
		if err != nil {
			d.fail(ctx, result, n, err)
			continue
		}

		if d.config.DryRun {
			d.logger.Infow("dry run, not sending",
				"notification_id", n.ID,
				"recipient", n.RecipientEmail,
				"subject", msg.Subject,
			)
			result.Skipped++
			continue
		}

		if err := d.limiter.Wait(ctx); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}

		if err := d.mailer.Send(ctx, msg); err != nil {
			d.fail(ctx, result, n, err)
			continue
		}

		result.Sent++
		if err := d.client.MarkSent(ctx, n.ID); err != nil {
			d.logger.Warnw("sent but could not report delivery", "notification_id", n.ID, "error", err)
			result.Errors = append(result.Errors, DeliveryError{NotificationID: n.ID, Recipient: n.RecipientEmail, Err: err})
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (d *Dispatcher) fail(ctx context.Context, result *RunResult, n Notification, cause error) {
	result.Failed++
	result.Errors = append(result.Errors, DeliveryError{NotificationID: n.ID, Recipient: n.RecipientEmail, Err: cause})
	d.logger.Warnw("notification delivery failed", "notification_id", n.ID, "recipient", n.RecipientEmail, "error", cause)

	if err := d.client.MarkFailed(ctx, n.ID, cause.Error()); err != nil {
		d.logger.Warnw("could not report failed delivery", "notification_id", n.ID, "error", err)
	}
}
