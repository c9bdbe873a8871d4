// Package throttle serializes upstream calls behind a minimum spacing.
package throttle

import (
	"context"
	"time"
)

// Task is one unit of throttled work.
type Task func(ctx context.Context)

// Sequencer runs tasks one at a time and waits at least Interval between the
// end of one task and the start of the next. It holds no state between runs,
// so one value may serve concurrent callers, each with its own pacing.
type Sequencer struct {
	Interval time.Duration

	// wait is swapped in tests to observe pauses without sleeping.
	wait func(ctx context.Context, d time.Duration) error
}

// New returns a Sequencer with the given spacing. Non-positive intervals disable pausing.
func New(interval time.Duration) *Sequencer {
	if interval < 0 {
		interval = 0
	}
	return &Sequencer{Interval: interval, wait: sleepContext}
}

// Run executes tasks in order. It returns the number of tasks that ran and
// ctx.Err() if the context ended before every task was started.
func (s *Sequencer) Run(ctx context.Context, tasks ...Task) (int, error) {
	ran := 0
	for i, task := range tasks {
		if i > 0 && s.Interval > 0 {
			if err := s.pause(ctx); err != nil {
				return ran, err
			}
		}
		if err := ctx.Err(); err != nil {
			return ran, err
		}
		task(ctx)
		ran++
	}
	return ran, nil
}

func (s *Sequencer) pause(ctx context.Context) error {
	wait := s.wait
	if wait == nil {
		wait = sleepContext
	}
	return wait(ctx, s.Interval)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
