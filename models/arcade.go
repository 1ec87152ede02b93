package models

// ArcadeTrack is one entry in the curated track pool for the
// guess-the-beat trivia game. Playback is a demo-only YouTube reference.
type ArcadeTrack struct {
	Title     string `json:"title" yaml:"title"`
	YoutubeID string `json:"youtube_id" yaml:"youtube_id"`
}
