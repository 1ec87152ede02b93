package services

import (
	"fmt"
	"time"

	"producer-platform/models"

	"github.com/go-co-op/gocron/v2"
)

// StartDigestScheduler runs a periodic engagement digest: a log line
// with the current collection sizes and live totals. Read-only with
// respect to the domain collections. The caller owns the returned
// scheduler and shuts it down on teardown.
func (s *AppStore) StartDigestScheduler(interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create digest scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			s.logDigest()
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule digest job: %w", err)
	}

	sched.Start()
	return sched, nil
}

func (s *AppStore) logDigest() {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalLikes := 0
	for i := range s.posts {
		totalLikes += s.posts[i].Likes
	}
	activeTournaments := 0
	for i := range s.tournaments {
		if s.tournaments[i].Status == models.TournamentActive {
			activeTournaments++
		}
	}

	s.log.Info().
		Int("users", len(s.users)).
		Int("posts", len(s.posts)).
		Int("total_likes", totalLikes).
		Int("active_tournaments", activeTournaments).
		Int("notifications", len(s.notifications)).
		Msg("engagement digest")
}
