package services

import (
	"fmt"
	"strings"

	"producer-platform/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SignUp creates a fresh user with zero stats and no tier, stores it and
// makes it the current session user.
func (s *AppStore) SignUp(username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return models.User{}, fmt.Errorf("%w: username %q is taken", ErrValidation, username)
		}
	}

	u := models.User{
		ID:               "u_" + uuid.NewString(),
		Username:         username,
		DisplayName:      username,
		AvatarURL:        "https://ui-avatars.com/api/?name=" + slug.Make(username) + "&background=random",
		CoverURL:         "https://picsum.photos/800/300",
		Bio:              "New producer in town.",
		VerificationTier: models.TierNone,
		Gallery:          []string{},
		Badges:           []string{},
	}
	s.users = append(s.users, u)
	s.currentUserID = u.ID
	s.sessionFollows = make(map[string]bool)

	s.log.Info().Str("user_id", u.ID).Str("username", username).Msg("new artist signed up")
	return cloneUser(u), nil
}

// LogIn starts a session as the fixed demo identity. Credentials are out
// of scope — there is nothing to check.
func (s *AppStore) LogIn() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(s.demoUserID)
	if i < 0 {
		// seed validation guarantees the demo user exists
		return models.User{}
	}
	s.currentUserID = s.demoUserID
	s.sessionFollows = make(map[string]bool)
	s.log.Info().Str("user_id", s.demoUserID).Msg("demo session started")
	return cloneUser(s.users[i])
}

// LogOut clears the session user and whatever was playing.
func (s *AppStore) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUserID = ""
	s.currentlyPlayingID = ""
	s.sessionFollows = make(map[string]bool)
}

// CurrentUser resolves the session user against the user collection.
func (s *AppStore) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndex(s.currentUserID); i >= 0 {
		return cloneUser(s.users[i]), true
	}
	return models.User{}, false
}

// UpdateProfile merges the non-nil fields into the session user's entry
// in the global collection. No-op without a session.
func (s *AppStore) UpdateProfile(up models.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(s.currentUserID)
	if i < 0 {
		return
	}
	u := &s.users[i]
	if up.DisplayName != nil {
		u.DisplayName = *up.DisplayName
	}
	if up.AvatarURL != nil {
		u.AvatarURL = *up.AvatarURL
	}
	if up.CoverURL != nil {
		u.CoverURL = *up.CoverURL
	}
	if up.Bio != nil {
		u.Bio = *up.Bio
	}
	if up.Location != nil {
		u.Location = *up.Location
	}
	if up.Website != nil {
		u.Website = *up.Website
	}
	if up.Gallery != nil {
		u.Gallery = append([]string(nil), *up.Gallery...)
	}
}

// Follow adds the session user as a follower of userID. Idempotent per
// session; following yourself or an unknown id is a no-op.
func (s *AppStore) Follow(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	me := s.userIndex(s.currentUserID)
	target := s.userIndex(userID)
	if me < 0 || target < 0 || me == target || s.sessionFollows[userID] {
		return
	}
	s.sessionFollows[userID] = true
	s.users[target].Followers++
	s.users[me].Following++
}

// Unfollow reverses Follow for something followed this session.
func (s *AppStore) Unfollow(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	me := s.userIndex(s.currentUserID)
	target := s.userIndex(userID)
	if me < 0 || target < 0 || !s.sessionFollows[userID] {
		return
	}
	delete(s.sessionFollows, userID)
	if s.users[target].Followers > 0 {
		s.users[target].Followers--
	}
	if s.users[me].Following > 0 {
		s.users[me].Following--
	}
}
