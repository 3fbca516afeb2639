package jobs

import (
	"fmt"
	"log/slog"

	"shiptrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayedPickupJob *DelayedPickupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		delayedPickupJob: NewDelayedPickupJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayedPickupJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed pickup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedPickupJob.Stop()
}
