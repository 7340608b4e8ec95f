// Package jobs provides scheduled background tasks for the order lifecycle
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DriverReconciliationJob - Runs every 30 seconds to free drivers whose
// orders have all reached a terminal status but whose profile still carries a
// tie, which can happen when a process dies between the order write and the
// driver write landing in separate requests.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileDriversHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
