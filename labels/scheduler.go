package labels

import (
	"context"
	"sync"
	"time"

	"github.com/dylan/commitlabels/logging"
	"github.com/rs/zerolog"
)

// Trigger is the kind of host signal requesting a scan.
type Trigger int

const (
	TriggerInitial Trigger = iota
	TriggerMutation
	TriggerNavigation
	TriggerHistory
)

func (t Trigger) String() string {
	switch t {
	case TriggerInitial:
		return "initial"
	case TriggerMutation:
		return "mutation"
	case TriggerNavigation:
		return "navigation"
	case TriggerHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SchedulerConfig holds the trigger delays.
type SchedulerConfig struct {
	// Debounce coalesces mutation bursts.
	Debounce time.Duration
	// Settle waits for the host to finish rendering after navigation.
	Settle time.Duration
}

// DefaultSchedulerConfig returns the standard delays.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Debounce: 100 * time.Millisecond,
		Settle:   300 * time.Millisecond,
	}
}

// Scheduler coalesces triggers into due signals for a single consumer.
// At most one signal is buffered, so a trigger arriving while the consumer
// is scanning results in exactly one more scan.
type Scheduler struct {
	cfg  SchedulerConfig
	due  chan struct{}
	done chan struct{}
	log  zerolog.Logger

	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	deadline time.Time
	stopped  bool
}

// NewScheduler returns an idle scheduler.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	return &Scheduler{
		cfg:  cfg,
		due:  make(chan struct{}, 1),
		done: make(chan struct{}),
		log:  logging.Component("scheduler"),
	}
}

// Due delivers one value per coalesced scan request.
func (s *Scheduler) Due() <-chan struct{} {
	return s.due
}

// Done is closed by Stop.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Notify records a trigger. Delayed triggers share one timer whose deadline
// only ever moves later, so bursts collapse into a single signal.
func (s *Scheduler) Notify(t Trigger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.log.Debug().Stringer("trigger", t).Msg("notify")

	var delay time.Duration
	switch t {
	case TriggerInitial:
		s.fire()
		return
	case TriggerMutation:
		delay = s.cfg.Debounce
	default:
		delay = s.cfg.Settle
	}

	deadline := time.Now().Add(delay)
	if s.timer != nil && deadline.Before(s.deadline) {
		return
	}
	s.deadline = deadline
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.timer = nil
		if !s.stopped {
			s.fire()
		}
	})
}

// fire must be called with mu held.
func (s *Scheduler) fire() {
	select {
	case s.due <- struct{}{}:
	default:
	}
}

// Pending reports whether a delayed trigger is waiting on its timer.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Stop cancels any pending timer, closes Done and ignores later triggers.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Run calls scan once per due signal until ctx is canceled or the
// scheduler is stopped.
func (s *Scheduler) Run(ctx context.Context, scan func(context.Context) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-s.due:
			if err := scan(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Warn().Err(err).Msg("scan failed")
			}
		}
	}
}
