// Package jobs provides scheduled background tasks for the warehouse.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, seconds first.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Grades catalog stock against the restock threshold and
// raises LowStockDetected events when a product's severity changes
// 2. BacklogReportJob - Logs the number of orders in each fulfillment status
//
// # Usage
//
//	jobManager := jobs.NewJobManager(detectLowStockHandler, orderMetricsHandler,
//		jobs.Schedules{LowStockThreshold: 10}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Scan and report failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
