package fixtures

import (
	"testing"

	"producer-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	seed, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "u1", seed.DemoUserID)
	assert.Len(t, seed.Users, 8)
	assert.NotEmpty(t, seed.Posts)
	assert.NotEmpty(t, seed.Tournaments)
	assert.NotEmpty(t, seed.ArcadeTracks)
}

func TestSeedKeepsStoreInvariants(t *testing.T) {
	seed, err := Load()
	require.NoError(t, err)

	for _, p := range seed.Posts {
		assert.Equal(t, len(p.Comments), p.CommentsCount, "post %s", p.ID)
		assert.Positive(t, p.AudioDuration, "post %s", p.ID)
		assert.Positive(t, p.BPM, "post %s", p.ID)
	}
	for _, tour := range seed.Tournaments {
		assert.LessOrEqual(t, tour.ParticipantsCount, tour.MaxParticipants, "tournament %s", tour.ID)
	}

	ids := map[string]bool{}
	for _, u := range seed.Users {
		assert.False(t, ids[u.ID])
		ids[u.ID] = true
	}
}

func TestSeedDemoUserIsStaff(t *testing.T) {
	seed, err := Load()
	require.NoError(t, err)

	var demo models.User
	for _, u := range seed.Users {
		if u.ID == seed.DemoUserID {
			demo = u
		}
	}
	assert.Equal(t, models.TierStaff, demo.VerificationTier)
}
