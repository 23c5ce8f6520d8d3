package sweep

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper emits tick instants on a channel at a fixed interval. It never runs
// the pass itself: ticks are consumed by the event loop, so sweep mutations
// interleave with user edits instead of racing them.
type Sweeper struct {
	cron *cron.Cron
	C    chan time.Time
}

func NewSweeper(interval time.Duration) (*Sweeper, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("sweep: interval %s is below one second", interval)
	}
	s := &Sweeper{
		cron: cron.New(),
		C:    make(chan time.Time, 1),
	}
	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, err := s.cron.AddFunc(spec, func() {
		// Drop the tick if the loop is still digesting the last one.
		select {
		case s.C <- time.Now():
		default:
		}
	})
	if err != nil {
		return nil, fmt.Errorf("sweep: register tick: %w", err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
