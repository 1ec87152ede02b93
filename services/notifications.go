package services

import "producer-platform/models"

// Notifications lists the session user's notifications, newest first.
func (s *AppStore) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkNotificationRead flips a notification to read. Idempotent; an
// unknown id is a no-op.
func (s *AppStore) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}
