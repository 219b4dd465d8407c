// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job here is the kitchen progression simulation: every tick it
// advances each in-kitchen order one stage (placed to preparing, preparing to
// baking, baking to out_for_delivery or ready_for_pickup by delivery type).
// It stands in for a real kitchen pushing statuses manually and is typically
// enabled only for demos.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(advanceKitchenHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Job errors are logged, never fatal: one failed tick must not take the
// process down, and the next tick retries naturally.
package jobs
