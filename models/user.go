package models

// VerificationTier is the platform-assigned trust level of a user.
// Staff implies admin authorization for moderation commands.
type VerificationTier string

const (
	TierNone      VerificationTier = "none"
	TierVerified  VerificationTier = "verified"
	TierSuperstar VerificationTier = "superstar"
	TierStaff     VerificationTier = "staff"
)

// User holds identity plus social/gamification state.
// Badges is treated as a set by the store; duplicates never appear.
type User struct {
	ID               string           `json:"id" yaml:"id"`
	Username         string           `json:"username" yaml:"username"`
	DisplayName      string           `json:"display_name" yaml:"display_name"`
	AvatarURL        string           `json:"avatar_url" yaml:"avatar_url"`
	CoverURL         string           `json:"cover_url" yaml:"cover_url"`
	Bio              string           `json:"bio" yaml:"bio"`
	Location         string           `json:"location,omitempty" yaml:"location"`
	Website          string           `json:"website,omitempty" yaml:"website"`
	Followers        int              `json:"followers" yaml:"followers"`
	Following        int              `json:"following" yaml:"following"`
	PostsCount       int              `json:"posts_count" yaml:"posts_count"`
	VerificationTier VerificationTier `json:"verification_tier" yaml:"verification_tier"`
	Gallery          []string         `json:"gallery" yaml:"gallery"`
	Badges           []string         `json:"badges" yaml:"badges"`
	IsBanned         bool             `json:"is_banned" yaml:"is_banned"`
	Points           int              `json:"points" yaml:"points"`
}

// HasBadge reports set membership without caring about order.
func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}

// ProfileUpdate is a partial user edit. Nil fields are left untouched.
// ID, username, counters and tier are deliberately not editable here.
type ProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
	CoverURL    *string
	Bio         *string
	Location    *string
	Website     *string
	Gallery     *[]string
}
