package worker

import (
	"context"
	"log"
	"time"

	"ukmprhub/internal/repository"
)

// SessionSweeper periodically deletes expired session rows. Requests already
// treat an expired session as missing, so the sweeper only reclaims space.
type SessionSweeper struct {
	Sessions repository.SessionRepository
	Interval time.Duration
	now      func() time.Time
}

func NewSessionSweeper(sessions repository.SessionRepository, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{Sessions: sessions, Interval: interval, now: time.Now}
}

// Start runs one sweep immediately and then one per interval until ctx is
// done. A non-positive interval disables the sweeper.
func (s *SessionSweeper) Start(ctx context.Context) {
	if s.Interval <= 0 {
		log.Println("Worker: session sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.Interval)
	go func() {
		defer ticker.Stop()
		s.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	removed, err := s.Sessions.DeleteExpired(ctx, s.now().UnixMilli())
	if err != nil {
		log.Printf("Worker: failed to sweep sessions: %v", err)
		return 0
	}
	if removed > 0 {
		log.Printf("Worker: removed %d expired sessions", removed)
	}
	return removed
}
