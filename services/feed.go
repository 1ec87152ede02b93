package services

import (
	"fmt"
	"strings"

	"producer-platform/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CreatePost stores a new audio post at the head of the feed (the feed's
// display invariant is most-recent-first). The owner snapshot is taken
// from the user collection at this moment; hashtags are normalized.
// Returns the stored post.
func (s *AppStore) CreatePost(post models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = "p_" + uuid.NewString()
	}
	if post.UserID == "" {
		post.UserID = s.currentUserID
	}
	if i := s.userIndex(post.UserID); i >= 0 {
		post.User = cloneUser(s.users[i])
		s.users[i].PostsCount++
	}
	if post.CreatedAt == "" {
		post.CreatedAt = "Just now"
	}
	// normalize into a fresh slice; the caller's slice stays untouched
	tags := make([]string, len(post.Hashtags))
	for i, tag := range post.Hashtags {
		tags[i] = "#" + slug.Make(strings.TrimPrefix(tag, "#"))
	}
	post.Hashtags = tags
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	post.CommentsCount = len(post.Comments)

	s.posts = append([]models.Post{clonePost(post)}, s.posts...)
	s.log.Info().Str("post_id", post.ID).Str("user_id", post.UserID).Msg("beat published to feed")
	return post
}

// ToggleLike flips the session user's like on a post, moving the count
// by exactly ±1. Unknown ids no-op.
func (s *AppStore) ToggleLike(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return
	}
	p := &s.posts[i]
	if p.LikedByCurrentUser {
		p.LikedByCurrentUser = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.LikedByCurrentUser = true
		p.Likes++
	}
}

// ToggleSave flips the saved flag. No count side effect.
func (s *AppStore) ToggleSave(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.postIndex(postID); i >= 0 {
		s.posts[i].SavedByCurrentUser = !s.posts[i].SavedByCurrentUser
	}
}

// AddComment appends a comment authored by the session user, keeping
// CommentsCount equal to the comment list length. The author fields are
// snapshots of the user as of right now. Commenting also feeds the
// community-feedback badge through the regular award path.
func (s *AppStore) AddComment(postID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: comment text is empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ui := s.userIndex(s.currentUserID)
	if ui < 0 {
		return fmt.Errorf("%w: no active session", ErrValidation)
	}
	pi := s.postIndex(postID)
	if pi < 0 {
		return nil
	}

	author := s.users[ui]
	s.posts[pi].Comments = append(s.posts[pi].Comments, models.Comment{
		ID:               "c_" + uuid.NewString(),
		UserID:           author.ID,
		Username:         author.Username,
		AvatarURL:        author.AvatarURL,
		Text:             text,
		Timestamp:        "Just now",
		VerificationTier: author.VerificationTier,
	})
	s.posts[pi].CommentsCount++

	s.awardBadgeLocked(author.ID, models.BadgeIDVibeChecker)
	return nil
}

// SearchPosts matches query case-insensitively against title, owner
// username and hashtags. An empty query returns the whole feed.
func (s *AppStore) SearchPosts(query string) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Post
	for _, p := range s.posts {
		if q == "" || postMatches(p, q) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

// SearchUsers matches query case-insensitively against username and
// display name.
func (s *AppStore) SearchUsers(query string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.User
	for _, u := range s.users {
		if q == "" ||
			strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q) {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

func postMatches(p models.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.User.Username), q) {
		return true
	}
	for _, tag := range p.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
