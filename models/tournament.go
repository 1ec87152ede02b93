package models

// TournamentStatus is a one-directional state machine:
// registration → active → completed (terminal).
type TournamentStatus string

const (
	TournamentRegistration TournamentStatus = "registration"
	TournamentActive       TournamentStatus = "active"
	TournamentCompleted    TournamentStatus = "completed"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchActive    MatchStatus = "active"
	MatchCompleted MatchStatus = "completed"
)

// Tournament is a bracket-style beat battle.
type Tournament struct {
	ID                string           `json:"id" yaml:"id"`
	Title             string           `json:"title" yaml:"title"`
	Status            TournamentStatus `json:"status" yaml:"status"`
	PrizePool         string           `json:"prize_pool" yaml:"prize_pool"`
	EntryFee          string           `json:"entry_fee" yaml:"entry_fee"`
	ParticipantsCount int              `json:"participants_count" yaml:"participants_count"`
	MaxParticipants   int              `json:"max_participants" yaml:"max_participants"`
	StartDate         string           `json:"start_date" yaml:"start_date"` // display string
	Description       string           `json:"description" yaml:"description"`
	CoverImage        string           `json:"cover_image" yaml:"cover_image"`
	Rounds            []Round          `json:"rounds" yaml:"rounds"`
}

// Round groups the matches of one bracket stage ("Quarterfinals", ...).
type Round struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Matches []Match `json:"matches" yaml:"matches"`
}

// Match is a head-to-head vote battle. Player snapshots are taken when
// the bracket is built. Scores only ever increase; WinnerID, once set,
// never changes.
type Match struct {
	ID       string      `json:"id" yaml:"id"`
	Player1  User        `json:"player1" yaml:"player1"`
	Player2  User        `json:"player2" yaml:"player2"`
	Score1   int         `json:"score1" yaml:"score1"`
	Score2   int         `json:"score2" yaml:"score2"`
	WinnerID string      `json:"winner_id,omitempty" yaml:"winner_id"`
	Status   MatchStatus `json:"status" yaml:"status"`
}
