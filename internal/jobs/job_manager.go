package jobs

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	earningsResetJob  *EarningsResetJob
	emptyCartSweepJob *EmptyCartSweepJob
}

// Schedules holds the cron specs, seconds first. Empty values fall back to
// DefaultEarningsResetSpec and DefaultCartSweepSpec.
type Schedules struct {
	EarningsReset string
	CartSweep     string
}

func NewJobManager(
	resetHandler earningsResetter,
	purgeHandler emptyCartPurger,
	schedules Schedules,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		earningsResetJob:  NewEarningsResetJob(resetHandler, schedules.EarningsReset, logger),
		emptyCartSweepJob: NewEmptyCartSweepJob(purgeHandler, schedules.CartSweep, logger),
	}
}

// StartAll starts every job. When one fails to start, those already running
// are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.earningsResetJob.Start(); err != nil {
		return errors.Wrap(err, "start earnings reset job")
	}

	if err := jm.emptyCartSweepJob.Start(); err != nil {
		jm.earningsResetJob.Stop()
		return errors.Wrap(err, "start empty cart sweep job")
	}

	return nil
}

// StopAll stops every job and waits for running executions.
func (jm *JobManager) StopAll() {
	jm.emptyCartSweepJob.Stop()
	jm.earningsResetJob.Stop()
}
