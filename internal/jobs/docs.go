// Package jobs provides scheduled background tasks for the freight engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the courier network.
//
// # Available Jobs
//
// 1. EWayExpiryJob - Runs daily to report waybills still in flight past
// their e-way bill validity date.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expiredEWayBillsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry sweep uses the cron expression "0 0 6 * * *": once a day at
// 06:00 server time. E-way bill validity is a date-level fact, so a daily
// cadence is exact enough.
//
// # Error Handling
//
// The sweep is read-only: it logs lapsed waybills for the compliance desk
// and never mutates state, so a failed run is logged and retried on the
// next schedule tick.
package jobs
