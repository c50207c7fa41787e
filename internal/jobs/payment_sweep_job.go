package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// sweepBatchSize caps how many completed assignments one sweep pass
// re-derives payments for.
const sweepBatchSize = 100

// PaymentSweepJob re-runs the idempotent payment derivation for completed
// assignments that have no payment row. A crash between the completion
// write and the payment write in an earlier process generation leaves such
// rows behind; the sweep closes the gap. Runs every minute.
type PaymentSweepJob struct {
	handler commands.SweepPaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentSweepJob creates a job that reconciles missing payments.
func NewPaymentSweepJob(handler commands.SweepPaymentsCommandHandler, logger *slog.Logger) *PaymentSweepJob {
	return &PaymentSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_sweep_job"),
	}
}

// Start begins the payment sweep job to run every minute.
func (j *PaymentSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepPaymentsCommand(sweepBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment sweep command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment sweep job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment sweep job started (running every minute)")
	return nil
}

// Stop stops the payment sweep job.
func (j *PaymentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment sweep job stopped")
}
