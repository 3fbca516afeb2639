package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"
)

// DelayedPickupJob periodically scans for orders stuck in pending beyond the
// pickup delay threshold and logs them for operational follow-up. The scan is
// observational: it never mutates order state, the delayed tag on API reads
// is computed from the same threshold.
type DelayedPickupJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDelayedPickupJob creates a job that scans for delayed pickups every hour.
func NewDelayedPickupJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *DelayedPickupJob {
	return &DelayedPickupJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "delayed_pickup_job"),
	}
}

// Start begins the hourly delayed-pickup scan.
func (j *DelayedPickupJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed pickup job started (running hourly)")
	return nil
}

// Stop stops the delayed-pickup scan.
func (j *DelayedPickupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed pickup job stopped")
}

func (j *DelayedPickupJob) scan() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-order.PickupDelayThreshold)

	// Read-only scan, no transaction needed.
	repo := j.uowFactory.Create().OrderRepository()
	delayed, err := repo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed pickup scan failed", "error", err)
		return
	}

	for _, ord := range delayed {
		j.logger.WarnContext(ctx, "Pickup delayed beyond threshold",
			"order_id", ord.ID().String(),
			"tracking_number", ord.TrackingNumber(),
			"created_at", ord.CreatedAt(),
		)
	}
}
