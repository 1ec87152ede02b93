package services

import (
	"fmt"
	"strings"

	"producer-platform/models"

	"github.com/google/uuid"
)

// Admin commands verify the acting user inside the store instead of
// trusting presentation-layer gating: every command takes the actor's id
// and refuses anyone whose tier is not staff.

// requireStaffLocked resolves actorID and checks the staff tier.
func (s *AppStore) requireStaffLocked(actorID string) error {
	i := s.userIndex(actorID)
	if i < 0 || s.users[i].VerificationTier != models.TierStaff {
		return fmt.Errorf("%w: actor %q is not staff", ErrUnauthorized, actorID)
	}
	return nil
}

// SetVerification assigns a user's verification tier.
func (s *AppStore) SetVerification(actorID, userID string, tier models.VerificationTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if i := s.userIndex(userID); i >= 0 {
		s.users[i].VerificationTier = tier
	}
	return nil
}

// SetBanned flips the ban flag. Banning never removes the account.
func (s *AppStore) SetBanned(actorID, userID string, banned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if i := s.userIndex(userID); i >= 0 {
		s.users[i].IsBanned = banned
		s.log.Info().Str("user_id", userID).Bool("banned", banned).Msg("moderation: ban flag updated")
	}
	return nil
}

// ToggleBadgeAssignment toggles badge membership — unlike AwardBadge,
// which only ever grants, this can also take a badge away.
func (s *AppStore) ToggleBadgeAssignment(actorID, userID, badgeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	i := s.userIndex(userID)
	if i < 0 {
		return nil
	}
	if !s.users[i].HasBadge(badgeID) {
		if _, ok := s.badges[badgeID]; ok {
			s.users[i].Badges = append(s.users[i].Badges, badgeID)
		}
		return nil
	}
	kept := s.users[i].Badges[:0]
	for _, b := range s.users[i].Badges {
		if b != badgeID {
			kept = append(kept, b)
		}
	}
	s.users[i].Badges = kept
	return nil
}

// RegisterBadgeDefinition adds a badge definition to the registry.
// The registry is append-only; definitions are never removed.
func (s *AppStore) RegisterBadgeDefinition(actorID string, badge models.UserBadge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if strings.TrimSpace(badge.Name) == "" {
		return fmt.Errorf("%w: badge name is required", ErrValidation)
	}
	if badge.ID == "" {
		badge.ID = "b_" + uuid.NewString()
	}
	if badge.Type == "" {
		badge.Type = models.BadgeCustom
	}
	s.badges[badge.ID] = badge
	return nil
}

// DeletePost removes a post from the feed (moderation delete).
func (s *AppStore) DeletePost(actorID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	i := s.postIndex(postID)
	if i < 0 {
		return nil
	}
	if ui := s.userIndex(s.posts[i].UserID); ui >= 0 && s.users[ui].PostsCount > 0 {
		s.users[ui].PostsCount--
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	s.log.Info().Str("post_id", postID).Msg("moderation: post deleted")
	return nil
}

// SetFeatured pins or unpins a post.
func (s *AppStore) SetFeatured(actorID, postID string, featured bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if i := s.postIndex(postID); i >= 0 {
		s.posts[i].IsFeatured = featured
	}
	return nil
}

// CreateTournament stores a new tournament.
func (s *AppStore) CreateTournament(actorID string, t models.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: tournament title is required", ErrValidation)
	}
	if t.ID == "" {
		t.ID = "t_" + uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TournamentRegistration
	}
	s.tournaments = append(s.tournaments, cloneTournament(t))
	return nil
}

// AdvanceTournament moves a tournament one step along
// registration → active → completed. Completed is terminal; advancing
// again is a no-op.
func (s *AppStore) AdvanceTournament(actorID, tournamentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	i := s.tournamentIndex(tournamentID)
	if i < 0 {
		return nil
	}
	t := &s.tournaments[i]
	switch t.Status {
	case models.TournamentRegistration:
		t.Status = models.TournamentActive
		t.StartDate = "Live Now"
	case models.TournamentActive:
		t.Status = models.TournamentCompleted
	}
	return nil
}

// Broadcast replaces the process-wide system banner.
func (s *AppStore) Broadcast(actorID, text string, msgType models.MessageType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: broadcast text is empty", ErrValidation)
	}
	s.systemMessage = &models.SystemMessage{
		ID:     "sys_" + uuid.NewString(),
		Text:   text,
		Type:   msgType,
		Active: true,
	}
	s.log.Info().Str("type", string(msgType)).Msg("system broadcast replaced")
	return nil
}

// ClearBroadcast removes the banner, if any.
func (s *AppStore) ClearBroadcast(actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStaffLocked(actorID); err != nil {
		return err
	}
	s.systemMessage = nil
	return nil
}

// SystemMessage returns the active broadcast.
func (s *AppStore) SystemMessage() (models.SystemMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.systemMessage == nil {
		return models.SystemMessage{}, false
	}
	return *s.systemMessage, true
}
