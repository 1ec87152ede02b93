package models

// Post is one audio submission in the feed.
// User is a denormalized display snapshot of the owner taken at upload
// time — later profile edits do not rewrite old feed entries.
type Post struct {
	ID                 string    `json:"id" yaml:"id"`
	UserID             string    `json:"user_id" yaml:"user_id"`
	User               User      `json:"user" yaml:"user"`
	Title              string    `json:"title" yaml:"title"`
	CoverArtURL        string    `json:"cover_art_url" yaml:"cover_art_url"`
	AudioDuration      int       `json:"audio_duration" yaml:"audio_duration"` // seconds
	BPM                int       `json:"bpm" yaml:"bpm"`
	Key                string    `json:"key" yaml:"key"`
	Genre              string    `json:"genre" yaml:"genre"`
	Software           string    `json:"software,omitempty" yaml:"software"`
	Caption            string    `json:"caption" yaml:"caption"`
	Hashtags           []string  `json:"hashtags" yaml:"hashtags"`
	Likes              int       `json:"likes" yaml:"likes"`
	CommentsCount      int       `json:"comments_count" yaml:"comments_count"`
	Shares             int       `json:"shares" yaml:"shares"`
	CreatedAt          string    `json:"created_at" yaml:"created_at"` // display string, e.g. "2h ago"
	LikedByCurrentUser bool      `json:"liked_by_current_user" yaml:"liked_by_current_user"`
	SavedByCurrentUser bool      `json:"saved_by_current_user" yaml:"saved_by_current_user"`
	Comments           []Comment `json:"comments" yaml:"comments"`
	IsFeatured         bool      `json:"is_featured" yaml:"is_featured"`
	YoutubeID          string    `json:"youtube_id,omitempty" yaml:"youtube_id"` // demo-only playback reference
}

// Comment is append-only; author fields are snapshots taken when the
// comment was posted, so a later rename or tier change leaves it alone.
type Comment struct {
	ID               string           `json:"id" yaml:"id"`
	UserID           string           `json:"user_id" yaml:"user_id"`
	Username         string           `json:"username" yaml:"username"`
	AvatarURL        string           `json:"avatar_url" yaml:"avatar_url"`
	Text             string           `json:"text" yaml:"text"`
	Timestamp        string           `json:"timestamp" yaml:"timestamp"`
	VerificationTier VerificationTier `json:"verification_tier" yaml:"verification_tier"`
}
