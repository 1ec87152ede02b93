package services

import (
	"fmt"

	"producer-platform/i18n"
	"producer-platform/models"

	"github.com/google/uuid"
)

// PointCollectorThreshold is the lifetime point total that unlocks the
// point-collector badge.
const PointCollectorThreshold = 10000

// AwardBadge inserts badgeID into the user's badge set. Awarding a badge
// the user already holds, or an unknown badge/user, is a no-op — repeat
// calls never produce a second award or a second notification.
func (s *AppStore) AwardBadge(userID, badgeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awardBadgeLocked(userID, badgeID)
}

// awardBadgeLocked does the actual award; the store lock must be held.
// Returns true when the badge was newly granted.
func (s *AppStore) awardBadgeLocked(userID, badgeID string) bool {
	def, ok := s.badges[badgeID]
	if !ok {
		return false
	}
	i := s.userIndex(userID)
	if i < 0 || s.users[i].HasBadge(badgeID) {
		return false
	}
	s.users[i].Badges = append(s.users[i].Badges, badgeID)
	s.log.Info().Str("user_id", userID).Str("badge", def.Name).Msg("badge awarded")

	// only the session user's own client can show the toast
	if userID == s.currentUserID {
		s.notifications = append([]models.Notification{{
			ID:      "n_" + uuid.NewString(),
			Type:    models.NotificationBadgeEarned,
			Actor:   cloneUser(s.users[i]),
			Message: i18n.T(s.language, "game_earned_badge") + " " + def.Name,
			Read:    false,
			Time:    "Just now",
		}}, s.notifications...)
	}
	return true
}

// AddPoints grants amount points to a user. Amount must be positive.
// Crossing the point-collector threshold upward triggers the badge award
// exactly once — calls that land above an already-crossed threshold do
// not re-fire it (the award is idempotent anyway, but the check is
// crossing-based by contract).
func (s *AppStore) AddPoints(userID string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: point amount must be positive, got %d", ErrValidation, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPointsLocked(userID, amount)
	return nil
}

func (s *AppStore) addPointsLocked(userID string, amount int) {
	i := s.userIndex(userID)
	if i < 0 {
		return
	}
	before := s.users[i].Points
	s.users[i].Points = before + amount
	if before < PointCollectorThreshold && s.users[i].Points >= PointCollectorThreshold {
		s.awardBadgeLocked(userID, models.BadgeIDPointCollector)
	}
}

// BadgeDefinitions returns the registry, id → definition.
func (s *AppStore) BadgeDefinitions() map[string]models.UserBadge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.UserBadge, len(s.badges))
	for id, def := range s.badges {
		out[id] = def
	}
	return out
}
