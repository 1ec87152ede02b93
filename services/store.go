package services

import (
	"math/rand"
	"sync"
	"time"

	"producer-platform/fixtures"
	"producer-platform/i18n"
	"producer-platform/models"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// AppStore is the single source of truth for all mutable domain state:
// users, posts, notifications, tournaments, the badge registry, the
// system broadcast and the UI-session state (current user, selection,
// language, currently playing track).
//
// One mutex serializes every command, read accessor and background tick
// pass, so each operation completes fully before the next observed
// state is read. Accessors hand out copies; nothing the store owns is
// shared-mutable outside of it.
//
// The store is constructed explicitly and passed by reference to its
// consumers — there is no ambient singleton. One instance per process.
type AppStore struct {
	mu  sync.Mutex
	log zerolog.Logger
	rng *rand.Rand

	users         []models.User
	posts         []models.Post
	notifications []models.Notification
	tournaments   []models.Tournament
	badges        map[string]models.UserBadge
	arcadeTracks  []models.ArcadeTrack
	systemMessage *models.SystemMessage

	demoUserID         string
	currentUserID      string
	selectedUserID     string
	selectedPostID     string
	currentlyPlayingID string
	searchQuery        string
	language           language.Tag

	// followed user ids of the current session; keeps Follow/Unfollow
	// idempotent so counters cannot drift
	sessionFollows map[string]bool
}

// NewAppStore builds a store owning a copy of the seed dataset.
func NewAppStore(seed *fixtures.Seed, logger zerolog.Logger) *AppStore {
	s := &AppStore{
		log:            logger.With().Str("component", "app_store").Logger(),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		users:          make([]models.User, len(seed.Users)),
		posts:          make([]models.Post, len(seed.Posts)),
		notifications:  make([]models.Notification, len(seed.Notifications)),
		tournaments:    make([]models.Tournament, len(seed.Tournaments)),
		badges:         make(map[string]models.UserBadge, len(models.DefaultBadgeDefinitions)),
		arcadeTracks:   append([]models.ArcadeTrack(nil), seed.ArcadeTracks...),
		demoUserID:     seed.DemoUserID,
		language:       i18n.Default,
		sessionFollows: make(map[string]bool),
	}
	for i, u := range seed.Users {
		s.users[i] = cloneUser(u)
	}
	for i, p := range seed.Posts {
		s.posts[i] = clonePost(p)
	}
	copy(s.notifications, seed.Notifications)
	for i, t := range seed.Tournaments {
		s.tournaments[i] = cloneTournament(t)
	}
	for _, def := range models.DefaultBadgeDefinitions {
		s.badges[def.ID] = def
	}
	return s
}

// ---- read accessors (pure projections, copied out) ----

// Users lists every user, fixtures and signups alike.
func (s *AppStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = cloneUser(u)
	}
	return out
}

// Posts lists the feed, newest first.
func (s *AppStore) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = clonePost(p)
	}
	return out
}

func (s *AppStore) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndex(id); i >= 0 {
		return cloneUser(s.users[i]), true
	}
	return models.User{}, false
}

func (s *AppStore) PostByID(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.postIndex(id); i >= 0 {
		return clonePost(s.posts[i]), true
	}
	return models.Post{}, false
}

// ---- selection (derived views, id-based — never duplicated objects) ----

// SelectPost remembers the post the session is looking at. Unknown ids
// clear the selection.
func (s *AppStore) SelectPost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postIndex(id) < 0 {
		s.selectedPostID = ""
		return
	}
	s.selectedPostID = id
}

// SelectedPost resolves the selection against the canonical feed, so a
// like or comment is visible here without any copy to keep in sync.
func (s *AppStore) SelectedPost() (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.postIndex(s.selectedPostID); i >= 0 {
		return clonePost(s.posts[i]), true
	}
	return models.Post{}, false
}

func (s *AppStore) SelectUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userIndex(id) < 0 {
		s.selectedUserID = ""
		return
	}
	s.selectedUserID = id
}

func (s *AppStore) SelectedUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndex(s.selectedUserID); i >= 0 {
		return cloneUser(s.users[i]), true
	}
	return models.User{}, false
}

// ---- UI-session state ----

func (s *AppStore) SetLanguage(tag language.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = i18n.Match(tag)
}

func (s *AppStore) Language() language.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// T translates key in the session language.
func (s *AppStore) T(key string) string {
	return i18n.T(s.Language(), key)
}

func (s *AppStore) SetCurrentlyPlaying(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentlyPlayingID = postID
}

func (s *AppStore) CurrentlyPlaying() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentlyPlayingID
}

func (s *AppStore) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

func (s *AppStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// ---- internal lookups, lock held by caller ----

func (s *AppStore) userIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) postIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) tournamentIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			return i
		}
	}
	return -1
}

// ---- deep copies, so callers can never reach owned state ----

func cloneUser(u models.User) models.User {
	u.Gallery = append([]string(nil), u.Gallery...)
	u.Badges = append([]string(nil), u.Badges...)
	return u
}

func clonePost(p models.Post) models.Post {
	p.Hashtags = append([]string(nil), p.Hashtags...)
	p.Comments = append([]models.Comment(nil), p.Comments...)
	p.User = cloneUser(p.User)
	return p
}

func cloneTournament(t models.Tournament) models.Tournament {
	rounds := make([]models.Round, len(t.Rounds))
	for i, r := range t.Rounds {
		r.Matches = append([]models.Match(nil), r.Matches...)
		rounds[i] = r
	}
	t.Rounds = rounds
	return t
}
