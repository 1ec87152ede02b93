package services

import (
	"testing"

	"producer-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	staffActor    = "u1" // seeded staff tier
	nonStaffActor = "u2" // seeded verified tier
)

func TestAdminCommandsRejectNonStaffActors(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.SetVerification(nonStaffActor, "u5", models.TierVerified), ErrUnauthorized)
	assert.ErrorIs(t, s.SetBanned(nonStaffActor, "u5", true), ErrUnauthorized)
	assert.ErrorIs(t, s.ToggleBadgeAssignment(nonStaffActor, "u5", "b1"), ErrUnauthorized)
	assert.ErrorIs(t, s.RegisterBadgeDefinition(nonStaffActor, models.UserBadge{Name: "X"}), ErrUnauthorized)
	assert.ErrorIs(t, s.DeletePost(nonStaffActor, "p1"), ErrUnauthorized)
	assert.ErrorIs(t, s.SetFeatured(nonStaffActor, "p1", true), ErrUnauthorized)
	assert.ErrorIs(t, s.CreateTournament(nonStaffActor, models.Tournament{Title: "X"}), ErrUnauthorized)
	assert.ErrorIs(t, s.AdvanceTournament(nonStaffActor, "t2"), ErrUnauthorized)
	assert.ErrorIs(t, s.Broadcast(nonStaffActor, "hi", models.MessageInfo), ErrUnauthorized)
	assert.ErrorIs(t, s.ClearBroadcast(nonStaffActor), ErrUnauthorized)
	assert.ErrorIs(t, s.SetBanned("u_missing", "u5", true), ErrUnauthorized)
}

func TestSetVerificationAndBan(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetVerification(staffActor, "u5", models.TierSuperstar))
	u, _ := s.UserByID("u5")
	assert.Equal(t, models.TierSuperstar, u.VerificationTier)

	require.NoError(t, s.SetBanned(staffActor, "u5", true))
	u, _ = s.UserByID("u5")
	assert.True(t, u.IsBanned)

	require.NoError(t, s.SetBanned(staffActor, "u5", false))
	u, _ = s.UserByID("u5")
	assert.False(t, u.IsBanned)

	// unknown target: silent no-op
	require.NoError(t, s.SetVerification(staffActor, "u_missing", models.TierVerified))
}

func TestToggleBadgeAssignment(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ToggleBadgeAssignment(staffActor, "u5", "b1"))
	u, _ := s.UserByID("u5")
	assert.True(t, u.HasBadge("b1"))

	// toggling again removes it — unlike AwardBadge
	require.NoError(t, s.ToggleBadgeAssignment(staffActor, "u5", "b1"))
	u, _ = s.UserByID("u5")
	assert.False(t, u.HasBadge("b1"))

	// unknown badge never lands
	require.NoError(t, s.ToggleBadgeAssignment(staffActor, "u5", "b_missing"))
	u, _ = s.UserByID("u5")
	assert.Empty(t, u.Badges)
}

func TestRegisterBadgeDefinition(t *testing.T) {
	s := newTestStore(t)

	require.ErrorIs(t, s.RegisterBadgeDefinition(staffActor, models.UserBadge{}), ErrValidation)

	require.NoError(t, s.RegisterBadgeDefinition(staffActor, models.UserBadge{
		Name:        "Studio Rat",
		Description: "Uploaded 7 days in a row",
		Icon:        "disc",
		Color:       "text-green-400",
	}))

	var created models.UserBadge
	for _, d := range s.BadgeDefinitions() {
		if d.Name == "Studio Rat" {
			created = d
		}
	}
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.BadgeCustom, created.Type)

	// newly registered badges are awardable
	s.AwardBadge("u5", created.ID)
	u, _ := s.UserByID("u5")
	assert.True(t, u.HasBadge(created.ID))
}

func TestDeletePostRemovesFromFeed(t *testing.T) {
	s := newTestStore(t)

	owner, _ := s.UserByID("u2") // owns p1
	require.NoError(t, s.DeletePost(staffActor, "p1"))

	_, ok := s.PostByID("p1")
	assert.False(t, ok)
	after, _ := s.UserByID("u2")
	assert.Equal(t, owner.PostsCount-1, after.PostsCount)

	require.NoError(t, s.DeletePost(staffActor, "p_missing")) // soft no-op
}

func TestSetFeatured(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetFeatured(staffActor, "p1", true))
	p, _ := s.PostByID("p1")
	assert.True(t, p.IsFeatured)

	require.NoError(t, s.SetFeatured(staffActor, "p1", false))
	p, _ = s.PostByID("p1")
	assert.False(t, p.IsFeatured)
}

func TestCreateTournamentDefaults(t *testing.T) {
	s := newTestStore(t)

	require.ErrorIs(t, s.CreateTournament(staffActor, models.Tournament{}), ErrValidation)

	require.NoError(t, s.CreateTournament(staffActor, models.Tournament{
		Title:           "SPRING BREAK BATTLE",
		MaxParticipants: 8,
	}))

	var created models.Tournament
	for _, tour := range s.Tournaments() {
		if tour.Title == "SPRING BREAK BATTLE" {
			created = tour
		}
	}
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.TournamentRegistration, created.Status)
}

func TestBroadcastReplaceAndClear(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.SystemMessage()
	require.False(t, ok)

	require.ErrorIs(t, s.Broadcast(staffActor, "  ", models.MessageInfo), ErrValidation)

	require.NoError(t, s.Broadcast(staffActor, "Maintenance at midnight", models.MessageWarning))
	first, ok := s.SystemMessage()
	require.True(t, ok)
	assert.True(t, first.Active)
	assert.Equal(t, models.MessageWarning, first.Type)

	// replacing is the only way to change it
	require.NoError(t, s.Broadcast(staffActor, "All clear", models.MessageSuccess))
	second, ok := s.SystemMessage()
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "All clear", second.Text)

	require.NoError(t, s.ClearBroadcast(staffActor))
	_, ok = s.SystemMessage()
	assert.False(t, ok)
}
