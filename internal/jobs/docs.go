// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// StatisticsJob counts orders per status and publishes the result on the
// commandes_orders_by_status gauge exposed at /metrics.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statisticsHandler, cfg.StatsSchedule, logger)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the gauge keeps its previous values. An invalid
// schedule makes StartAll fail.
package jobs
