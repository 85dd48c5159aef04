// Package jobs runs the periodic maintenance of the fulfillment core on
// github.com/robfig/cron/v3 schedules with a leading seconds field.
//
// # Jobs
//
//  1. EarningsResetJob zeroes every agent's earnings for the day
//     (default "0 0 0 * * *", midnight).
//  2. EmptyCartSweepJob deletes carts that have no items left
//     (default "0 */5 * * * *").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(resetHandler, purgeHandler, jobs.Schedules{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Failures are logged at error level; the next tick tries again.
package jobs
