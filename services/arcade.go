package services

import (
	"fmt"

	"producer-platform/models"
)

// fastEarMillis is the answer time under which the fast-listener badge
// is granted.
const fastEarMillis = 2000

// ArcadeTracks returns the curated track pool for the trivia game.
func (s *AppStore) ArcadeTracks() []models.ArcadeTrack {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ArcadeTrack, len(s.arcadeTracks))
	copy(out, s.arcadeTracks)
	return out
}

// FinishArcadeSession banks a finished trivia session for the session
// user: completing the game earns the loyal-fan badge, the final score
// lands as points (driving the point-collector threshold), and a
// sub-2-second identification earns the fast-listener badge.
func (s *AppStore) FinishArcadeSession(score, fastestAnswerMillis int) error {
	if score < 0 {
		return fmt.Errorf("%w: score cannot be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(s.currentUserID) < 0 {
		return fmt.Errorf("%w: no active session", ErrValidation)
	}
	s.awardBadgeLocked(s.currentUserID, models.BadgeIDLoyalFan)
	if score > 0 {
		s.addPointsLocked(s.currentUserID, score)
	}
	if fastestAnswerMillis > 0 && fastestAnswerMillis < fastEarMillis {
		s.awardBadgeLocked(s.currentUserID, models.BadgeIDFlashEar)
	}
	s.log.Info().Str("user_id", s.currentUserID).Int("score", score).Msg("arcade session finished")
	return nil
}
