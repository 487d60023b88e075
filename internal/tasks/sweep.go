package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Completer is the booking operation the completion sweep invokes.
type Completer interface {
	CompleteElapsed(ctx context.Context) (int, error)
}

// Sweeper periodically completes confirmed bookings whose session has ended.
type Sweeper struct {
	cron    *cron.Cron
	svc     Completer
	timeout time.Duration
}

// NewSweeper schedules the sweep on spec, a standard cron expression or a
// descriptor such as "@every 5m".
func NewSweeper(svc Completer, spec string, timeout time.Duration) (*Sweeper, error) {
	if timeout <= 0 {
		timeout = time.Minute
	}
	s := &Sweeper{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		svc:     svc,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("schedule completion sweep %q: %w", spec, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
	slog.Info("completion sweep started", "entries", len(s.cron.Entries()))
}

// Stop halts scheduling and waits for a running sweep, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.RunOnce(ctx)
}

// RunOnce performs a single sweep and returns the number of completed bookings.
func (s *Sweeper) RunOnce(ctx context.Context) int {
	n, err := s.svc.CompleteElapsed(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "completion sweep failed", "completed", n, "error", err)
		return n
	}
	if n > 0 {
		slog.InfoContext(ctx, "completion sweep finished", "completed", n)
	}
	return n
}
