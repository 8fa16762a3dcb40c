package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type eventPurger interface {
	PurgeCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

// Scheduler periodically deletes events older than the retention window.
// A zero retention disables purging entirely.
type Scheduler struct {
	eventService eventPurger
	interval     time.Duration
	retention    time.Duration
	logger       logger.Logger
}

func New(
	eventService eventPurger,
	interval time.Duration,
	retention time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		retention:    retention,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	if s.retention <= 0 {
		s.logger.Info("retention disabled, scheduler not started")
		return
	}
	if s.interval <= 0 {
		s.logger.Error("non-positive sweep interval, scheduler not started",
			logger.Duration("interval", s.interval),
		)
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("retention", s.retention),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	purged, err := s.eventService.PurgeCreatedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to purge stale events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range purged {
		s.logger.Info("stale event purged",
			logger.String("event_id", id),
		)
	}
}
