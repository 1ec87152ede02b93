package models

type NotificationType string

const (
	NotificationLike        NotificationType = "like"
	NotificationComment     NotificationType = "comment"
	NotificationFollow      NotificationType = "follow"
	NotificationMention     NotificationType = "mention"
	NotificationBadgeEarned NotificationType = "badge_earned"
)

// Notification is addressed to the session user. Actor is a snapshot of
// whoever triggered it. Read only ever flips false→true.
type Notification struct {
	ID      string           `json:"id" yaml:"id"`
	Type    NotificationType `json:"type" yaml:"type"`
	Actor   User             `json:"actor" yaml:"actor"`
	PostID  string           `json:"post_id,omitempty" yaml:"post_id"`
	Message string           `json:"message" yaml:"message"`
	Read    bool             `json:"read" yaml:"read"`
	Time    string           `json:"time" yaml:"time"`
}
