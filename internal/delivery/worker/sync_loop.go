package worker

import (
	"context"
	"log/slog"
	"time"

	"patrol/config"
	"patrol/internal/usecase"
	"patrol/internal/util"

	"go.uber.org/fx"
)

// SyncLoopParams holds dependencies for the periodic sync loop.
type SyncLoopParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.LocationSyncUsecase
}

// RegisterSyncLoop runs the unsynced location sync on a fixed interval between
// app start and stop. Push messages cover the fast path; the loop picks up whatever
// they missed. A zero interval disables it.
func RegisterSyncLoop(params SyncLoopParams) {
	interval := params.Config.Sync.Interval
	if interval <= 0 {
		params.Logger.Info("[Worker] Periodic location sync disabled")

		return
	}

	params.Logger.Info("[Worker] Periodic location sync enabled",
		slog.String("interval", util.FormatDuration(interval)),
		slog.Int("batch_size", params.Config.Sync.BatchSize),
	)

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				runSyncLoop(loopCtx, params.Logger, params.SyncUC, params.Config.Sync.BatchSize, interval)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancelLoop()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runSyncLoop(ctx context.Context, logger *slog.Logger, syncUC usecase.LocationSyncUsecase, batchSize int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			outcome, err := syncUC.SyncUnsynced(ctx, batchSize)
			if err != nil {
				logger.Error("[Worker] Periodic location sync failed", slog.Any("error", err))

				continue
			}

			if outcome.SuccessCount() > 0 || outcome.HasFailures() {
				logger.Info("[Worker] Periodic location sync completed",
					slog.Int("synced", outcome.SuccessCount()),
					slog.Int("failed", outcome.FailureCount()),
				)
			}
		}
	}
}
