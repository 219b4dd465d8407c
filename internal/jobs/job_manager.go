package jobs

import (
	"fmt"
	"log/slog"

	"pizzabot/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	kitchenProgressJob *KitchenProgressJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	advanceKitchenHandler commands.AdvanceKitchenCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenProgressJob: NewKitchenProgressJob(advanceKitchenHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen progress job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenProgressJob.Stop()
}
