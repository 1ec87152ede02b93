// Package fixtures carries the static mock dataset the platform boots
// from. There is no backend in scope — every collection the store owns
// starts out as a copy of this seed.
package fixtures

import (
	_ "embed"
	"fmt"

	"producer-platform/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the deserialized mock dataset.
type Seed struct {
	// DemoUserID is the fixed identity the passwordless demo login uses.
	DemoUserID    string                `yaml:"demo_user_id"`
	Users         []models.User         `yaml:"users"`
	Posts         []models.Post         `yaml:"posts"`
	Notifications []models.Notification `yaml:"notifications"`
	Tournaments   []models.Tournament   `yaml:"tournaments"`
	ArcadeTracks  []models.ArcadeTrack  `yaml:"arcade_tracks"`
}

// Load parses the embedded seed document.
func Load() (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(seedYAML, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate rejects seeds that would violate store invariants at boot.
func (s *Seed) validate() error {
	if s.DemoUserID == "" {
		return fmt.Errorf("seed has no demo_user_id")
	}
	users := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		if users[u.ID] {
			return fmt.Errorf("duplicate user id %q in seed", u.ID)
		}
		users[u.ID] = true
	}
	if !users[s.DemoUserID] {
		return fmt.Errorf("demo user %q not present in seed users", s.DemoUserID)
	}
	for _, p := range s.Posts {
		if p.CommentsCount != len(p.Comments) {
			return fmt.Errorf("post %q: comments_count %d != %d comments", p.ID, p.CommentsCount, len(p.Comments))
		}
	}
	for _, t := range s.Tournaments {
		if t.ParticipantsCount > t.MaxParticipants {
			return fmt.Errorf("tournament %q: participants exceed capacity", t.ID)
		}
	}
	return nil
}
