package scheduler

import (
	"time"

	"github.com/jonboulle/clockwork"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/fibberd/fibberd/internal/common/scheduler Scheduler,Handle

// Scheduler runs a function once after a delay. It is the only time
// facility the session engine uses; waits are scheduled callbacks, never
// blocking sleeps.
type Scheduler interface {
	// Schedule arranges for fn to run once after d has elapsed and
	// returns a handle that can cancel the pending run.
	Schedule(d time.Duration, fn func()) Handle
}

// Handle is a cancellation token for a scheduled function
type Handle interface {
	// Cancel stops the pending run. It returns false if the function
	// already ran or was already cancelled; cancelling twice is safe.
	Cancel() bool
}

// Config holds configuration for the default scheduler
type Config struct {
	// Clock is the time source; defaults to the real clock
	Clock clockwork.Clock
}

// clockScheduler implements Scheduler on a clockwork clock
type clockScheduler struct {
	clock clockwork.Clock
}

// New creates a scheduler backed by a clockwork clock. Passing a fake
// clock makes every delay controllable from tests.
func New(cfg *Config) *clockScheduler {
	clock := clockwork.NewRealClock()
	if cfg != nil && cfg.Clock != nil {
		clock = cfg.Clock
	}

	return &clockScheduler{
		clock: clock,
	}
}

// Schedule arranges for fn to run once after d has elapsed
func (s *clockScheduler) Schedule(d time.Duration, fn func()) Handle {
	timer := s.clock.AfterFunc(d, fn)
	return &timerHandle{timer: timer}
}

// timerHandle wraps a clockwork timer as a Handle
type timerHandle struct {
	timer clockwork.Timer
}

// Cancel stops the pending run
func (h *timerHandle) Cancel() bool {
	return h.timer.Stop()
}
