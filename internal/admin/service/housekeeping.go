package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
)

const (
	DefaultHousekeepingInterval = time.Hour
	DefaultInviteRetention      = 30 * 24 * time.Hour
)

// HousekeepingService periodically removes invites that expired without
// being accepted. Invites are kept for Retention after expiry so that
// verifying a recently expired token still reports it as expired.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time

	// Internal channels for lifecycle management
	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHousekeepingService creates a new housekeeping service. Non-positive
// interval and retention fall back to the defaults.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if retention <= 0 {
		retention = DefaultInviteRetention
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	s.started = true
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop shuts down the worker and waits for an in-progress cleanup. It is a
// no-op when the worker was never started.
func (s *HousekeepingService) Stop() {
	if !s.started {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes stale invites once and returns how many were removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}

	n, err := s.Store.Invites().DeleteExpiredInvites(ctx, now.Add(-s.Retention))
	if err != nil {
		s.Logger.Error("failed to delete expired invites", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "invites_deleted", n)
	return n
}
