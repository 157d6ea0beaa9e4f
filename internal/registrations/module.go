package registrations

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/scheduler"
)

// RefreshTask is the scheduler task name for periodic refetches.
const RefreshTask = "registrations.refresh"

// Module provides the spreadsheet client and the poller, and mounts the
// poller when the widget is configured.
var Module = fx.Module("registrations",
	fx.Provide(
		NewClient,
		func(c *Client) Fetcher { return c },
		NewPoller,
	),
	fx.Invoke(RegisterLifecycle),
)

// LifecycleParams are the dependencies of RegisterLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Poller    *Poller
	Scheduler *scheduler.Scheduler
	Log       *slog.Logger
}

// RegisterLifecycle mounts the poller on start, schedules refetches when an
// interval is configured, and unmounts on stop.
func RegisterLifecycle(p LifecycleParams) error {
	rc := p.Config.Registration
	if !rc.IsConfigured() {
		p.Log.Info("registration widget disabled")
		return nil
	}

	params := Params{SheetID: rc.SheetID, GID: rc.GID}

	// The fetch must outlive the OnStart context, which fx cancels once
	// startup completes.
	mountCtx, cancel := context.WithCancel(context.Background())

	if rc.RefreshInterval > 0 {
		err := p.Scheduler.AddIntervalTask(RefreshTask, rc.RefreshInterval, func(ctx context.Context) error {
			return p.Poller.Refresh(mountCtx)
		})
		if err != nil {
			cancel()
			return err
		}
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Poller.Mount(mountCtx, params)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer cancel()
			return p.Poller.Stop(ctx)
		},
	})
	return nil
}
