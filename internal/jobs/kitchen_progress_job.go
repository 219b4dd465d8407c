package jobs

import (
	"context"
	"log/slog"

	"pizzabot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// kitchenProgressSchedule advances the kitchen every 30 seconds. One stage
// per tick keeps the simulated progression slow enough to watch from the
// admin API.
const kitchenProgressSchedule = "*/30 * * * * *"

// KitchenProgressJob manages the scheduled kitchen progression simulation.
type KitchenProgressJob struct {
	handler commands.AdvanceKitchenCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenProgressJob creates the kitchen progression job. It does not
// start until Start is called.
func NewKitchenProgressJob(handler commands.AdvanceKitchenCommandHandler, logger *slog.Logger) *KitchenProgressJob {
	return &KitchenProgressJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_progress_job"),
	}
}

// Start begins the kitchen progression ticks.
func (j *KitchenProgressJob) Start() error {
	_, err := j.cron.AddFunc(kitchenProgressSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceKitchenCommand()

		advanced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Kitchen progress job failed", "error", handleErr)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Kitchen advanced orders", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen progress job started")
	return nil
}

// Stop stops the kitchen progression job.
func (j *KitchenProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen progress job stopped")
}
