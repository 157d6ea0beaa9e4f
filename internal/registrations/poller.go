package registrations

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Hari-prashath-123/art-finity/internal/metrics"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// GenericErrorMessage is the only failure text shown to visitors.
const GenericErrorMessage = "Unable to load registrations"

// State is the widget's loading state.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Snapshot is the widget state at one point in time.
type Snapshot struct {
	State     State     `json:"state"`
	Count     *int      `json:"count,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Display returns the text shown in place of the count: "..." while
// loading, a dash on error.
func (s Snapshot) Display() string {
	switch s.State {
	case StateLoaded:
		if s.Count != nil {
			return strconv.Itoa(*s.Count)
		}
		return "0"
	case StateError:
		return "—"
	default:
		return "..."
	}
}

// Poller owns one registration snapshot. Each Mount issues a single fetch;
// a result is applied only if no newer Mount, SetParams or Unmount happened
// in the meantime.
type Poller struct {
	fetcher Fetcher
	log     *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	params  Params
	gen     uint64
	mounted bool
	cancel  context.CancelFunc
	snap    Snapshot

	wg sync.WaitGroup
}

// NewPoller creates an unmounted poller.
func NewPoller(f Fetcher, log *slog.Logger) *Poller {
	p := &Poller{
		fetcher: f,
		log:     log.With(logger.Scope("registrations.poller")),
		now:     time.Now,
	}
	p.snap = Snapshot{State: StateLoading, UpdatedAt: p.now()}
	return p
}

// Mount resets the snapshot to loading and starts one fetch for params.
// ctx is the parent of the fetch; cancelling it has the same effect as Unmount
// on the in-flight request.
func (p *Poller) Mount(ctx context.Context, params Params) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params = params.Normalize()
	p.mounted = true
	p.startLocked(ctx)
}

// SetParams switches to new parameters. When mounted and the parameters
// changed, the snapshot resets to loading and a new fetch starts.
func (p *Poller) SetParams(ctx context.Context, params Params) {
	params = params.Normalize()

	p.mu.Lock()
	defer p.mu.Unlock()

	if params == p.params {
		return
	}
	p.params = params
	if p.mounted {
		p.startLocked(ctx)
	}
}

// Refresh remounts with the current parameters. An unmounted poller is left
// alone and reported as an error.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		return errors.New("registration poller is not mounted")
	}
	p.startLocked(ctx)
	return nil
}

// Unmount discards any in-flight result. It does not wait for the fetch
// goroutine; use Wait or Stop for that.
func (p *Poller) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mounted = false
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Wait blocks until every fetch goroutine has returned.
func (p *Poller) Wait() {
	p.wg.Wait()
}

// Stop unmounts and waits for in-flight fetches or ctx, whichever is first.
func (p *Poller) Stop(ctx context.Context) error {
	p.Unmount()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Mounted reports whether the poller is mounted.
func (p *Poller) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mounted
}

// Params returns the current parameters.
func (p *Poller) Params() Params {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params
}

func (p *Poller) startLocked(parent context.Context) {
	if p.cancel != nil {
		p.cancel()
	}
	p.gen++
	gen := p.gen
	params := p.params

	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.snap = Snapshot{State: StateLoading, UpdatedAt: p.now()}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		p.run(ctx, gen, params)
	}()
}

func (p *Poller) run(ctx context.Context, gen uint64, params Params) {
	start := p.now()
	count, err := p.fetcher.FetchCount(ctx, params)
	metrics.RegistrationFetchDuration.Observe(time.Since(start).Seconds())

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		metrics.RegistrationFetches.WithLabelValues("discarded").Inc()
		p.log.Debug("discarding stale registration fetch",
			slog.String("sheet_id", params.SheetID),
			slog.String("gid", params.GID))
		return
	}
	p.cancel = nil

	if err != nil {
		metrics.RegistrationFetches.WithLabelValues("error").Inc()
		p.log.Warn("registration fetch failed",
			slog.String("sheet_id", params.SheetID),
			slog.String("gid", params.GID),
			logger.Error(err))
		p.snap = Snapshot{State: StateError, Error: GenericErrorMessage, UpdatedAt: p.now()}
		return
	}

	metrics.RegistrationFetches.WithLabelValues("loaded").Inc()
	metrics.RegistrationCount.Set(float64(count))
	p.log.Info("registration count loaded", slog.Int("count", count))
	p.snap = Snapshot{State: StateLoaded, Count: &count, UpdatedAt: p.now()}
}
