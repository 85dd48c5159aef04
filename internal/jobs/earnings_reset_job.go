package jobs

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultEarningsResetSpec fires at midnight, server time.
const DefaultEarningsResetSpec = "0 0 0 * * *"

type earningsResetter interface {
	Handle(ctx context.Context, cmd commands.ResetDailyEarningsCommand) (int64, error)
}

// EarningsResetJob zeroes every agent's earnings for the day.
type EarningsResetJob struct {
	handler earningsResetter
	spec    string
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewEarningsResetJob(handler earningsResetter, spec string, logger *zap.Logger) *EarningsResetJob {
	if spec == "" {
		spec = DefaultEarningsResetSpec
	}
	return &EarningsResetJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.Named("earnings_reset_job"),
	}
}

// Start schedules the job. It fails on a malformed spec.
func (j *EarningsResetJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("earnings reset job started", zap.String("spec", j.spec))
	return nil
}

// Run performs one reset.
func (j *EarningsResetJob) Run(ctx context.Context) {
	reset, err := j.handler.Handle(ctx, commands.NewResetDailyEarningsCommand())
	if err != nil {
		j.logger.Error("earnings reset failed", zap.Error(err))
		return
	}
	j.logger.Debug("daily earnings reset", zap.Int64("agents", reset))
}

// Stop waits for a running reset to finish.
func (j *EarningsResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("earnings reset job stopped")
}
