package models

type BadgeType string

const (
	BadgeTournamentWinner BadgeType = "tournament_winner"
	BadgeOGMember         BadgeType = "og_member"
	BadgeTrendsetter      BadgeType = "trendsetter"
	BadgeVerifiedPro      BadgeType = "verified_pro"
	BadgeCustom           BadgeType = "custom"
	BadgeFastListener     BadgeType = "fast_listener"
	BadgeLoyalFan         BadgeType = "loyal_fan"
	BadgeRhythmCommenter  BadgeType = "rhythm_commenter"
	BadgePointCollector   BadgeType = "point_collector"
)

// UserBadge is a badge definition. The award relation lives on
// User.Badges as a set of these IDs.
type UserBadge struct {
	ID          string    `json:"id" yaml:"id"`
	Type        BadgeType `json:"type" yaml:"type"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"` // icon name or emoji
	Color       string    `json:"color" yaml:"color"`
}

// Well-known badge IDs wired to store side effects.
const (
	BadgeIDFlashEar       = "b4" // identified a track in under 2 seconds
	BadgeIDLoyalFan       = "b5" // played a trivia game to the end
	BadgeIDVibeChecker    = "b6" // active community feedback
	BadgeIDPointCollector = "b7" // crossed the arcade point threshold
)

// DefaultBadgeDefinitions seeds the badge registry at boot.
// Admins can register more at runtime; none are ever removed.
var DefaultBadgeDefinitions = []UserBadge{
	{ID: "b1", Type: BadgeTournamentWinner, Name: "Winter Clash Champion", Description: "Winner of Winter Clash 2024", Icon: "trophy", Color: "text-yellow-400"},
	{ID: "b2", Type: BadgeOGMember, Name: "Original Frequency", Description: "Joined during Beta", Icon: "zap", Color: "text-blue-400"},
	{ID: "b3", Type: BadgeTrendsetter, Name: "Trendsetter", Description: "Had a post reach #1 Trending", Icon: "flame", Color: "text-red-500"},
	{ID: "b4", Type: BadgeFastListener, Name: "Flash Ear", Description: "Identified a track in under 2 seconds", Icon: "zap", Color: "text-yellow-300"},
	{ID: "b5", Type: BadgeLoyalFan, Name: "Day One Fan", Description: "Streamed over 100 tracks", Icon: "heart", Color: "text-pink-500"},
	{ID: "b6", Type: BadgeRhythmCommenter, Name: "Vibe Checker", Description: "Active community feedback", Icon: "message-circle", Color: "text-blue-300"},
	{ID: "b7", Type: BadgePointCollector, Name: "Score King", Description: "Accumulated 10,000 points in Arcade", Icon: "crown", Color: "text-amber-500"},
}
