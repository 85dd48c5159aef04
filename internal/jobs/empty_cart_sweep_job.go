package jobs

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCartSweepSpec fires every five minutes.
const DefaultCartSweepSpec = "0 */5 * * * *"

type emptyCartPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeEmptyCartsCommand) (int64, error)
}

// EmptyCartSweepJob deletes carts left without items.
type EmptyCartSweepJob struct {
	handler emptyCartPurger
	spec    string
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewEmptyCartSweepJob(handler emptyCartPurger, spec string, logger *zap.Logger) *EmptyCartSweepJob {
	if spec == "" {
		spec = DefaultCartSweepSpec
	}
	return &EmptyCartSweepJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.Named("empty_cart_sweep_job"),
	}
}

func (j *EmptyCartSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("empty cart sweep job started", zap.String("spec", j.spec))
	return nil
}

// Run performs one sweep.
func (j *EmptyCartSweepJob) Run(ctx context.Context) {
	purged, err := j.handler.Handle(ctx, commands.NewPurgeEmptyCartsCommand())
	if err != nil {
		j.logger.Error("empty cart sweep failed", zap.Error(err))
		return
	}
	if purged > 0 {
		j.logger.Debug("empty carts purged", zap.Int64("carts", purged))
	}
}

func (j *EmptyCartSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("empty cart sweep job stopped")
}
