package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"tutor-booking/internal/infra/mq"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/usecase/notify"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartWorkers),
)

type WorkerParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     config.Config
	Locks      *settlement.LockStore
	Reconciler *reconcile.Service
	FanOut     *notify.FanOut
	Logger     *slog.Logger
}

// StartWorkers runs the background loops for the lifetime of the app: the
// stale-lock reaper, the calendar reconciler and the opening fan-out consumer.
func StartWorkers(p WorkerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var consumer *mq.Consumer

	spawn := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Logger.Info("worker started", slog.String("worker", name))
			fn()
			p.Logger.Info("worker stopped", slog.String("worker", name))
		}()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			cfg := p.Config
			spawn("lock-reaper", func() {
				p.Locks.RunReaper(ctx, cfg.Settlement.SweepInterval, p.Logger)
			})

			if cfg.Reconcile.Enabled && cfg.Google.Configured() {
				spawn("reconciler", func() {
					p.Reconciler.Run(ctx, cfg.Reconcile.PollInterval)
				})
			} else {
				p.Logger.Info("calendar reconciliation disabled")
			}

			if cfg.MQ.Enabled() {
				var err error
				consumer, err = mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.Queue, 10, p.Logger)
				if err != nil {
					cancel()
					return err
				}
				spawn("fanout-consumer", func() {
					if err := consumer.Run(ctx, p.FanOut.Handle); err != nil {
						p.Logger.Error("fan-out consumer failed", slog.String("error", err.Error()))
					}
				})
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			if consumer != nil {
				return consumer.Close()
			}
			return nil
		},
	})
}
