package services

import "producer-platform/models"

// liveVoteChance is the per-side probability that one tick pass adds a
// vote to an active match. Tuned to feel alive, not a contract.
const liveVoteChance = 0.3

// Tournaments lists all tournaments.
func (s *AppStore) Tournaments() []models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Tournament, len(s.tournaments))
	for i, t := range s.tournaments {
		out[i] = cloneTournament(t)
	}
	return out
}

func (s *AppStore) TournamentByID(id string) (models.Tournament, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.tournamentIndex(id); i >= 0 {
		return cloneTournament(s.tournaments[i]), true
	}
	return models.Tournament{}, false
}

// JoinTournament registers a submission, counting one participant.
// Joining a full tournament is a no-op: participantsCount never exceeds
// maxParticipants.
func (s *AppStore) JoinTournament(tournamentID, postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tournamentIndex(tournamentID)
	if i < 0 {
		return
	}
	t := &s.tournaments[i]
	if t.ParticipantsCount >= t.MaxParticipants {
		s.log.Warn().Str("tournament_id", tournamentID).Msg("join rejected: tournament is full")
		return
	}
	t.ParticipantsCount++
	s.log.Info().Str("tournament_id", tournamentID).Str("post_id", postID).Msg("beat entered into tournament")
}

// VoteTournamentMatch adds one vote for playerID in an active match.
// A player id that belongs to neither side, or any unresolved id, is a
// no-op. Serialized with the live tick by the store lock, so no
// increment is ever lost.
func (s *AppStore) VoteTournamentMatch(tournamentID, matchID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.tournamentIndex(tournamentID)
	if ti < 0 {
		return
	}
	for ri := range s.tournaments[ti].Rounds {
		matches := s.tournaments[ti].Rounds[ri].Matches
		for mi := range matches {
			m := &matches[mi]
			if m.ID != matchID || m.Status != models.MatchActive {
				continue
			}
			switch playerID {
			case m.Player1.ID:
				m.Score1++
			case m.Player2.ID:
				m.Score2++
			}
			return
		}
	}
}

// TickLiveMatches performs one pass of the live-vote simulation: every
// active match of every active tournament independently gains 0 or 1
// votes on each side. Called on an interval by the live votes worker.
func (s *AppStore) TickLiveMatches() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ti := range s.tournaments {
		if s.tournaments[ti].Status != models.TournamentActive {
			continue
		}
		for ri := range s.tournaments[ti].Rounds {
			matches := s.tournaments[ti].Rounds[ri].Matches
			for mi := range matches {
				if matches[mi].Status != models.MatchActive {
					continue
				}
				if s.rng.Float64() < liveVoteChance {
					matches[mi].Score1++
				}
				if s.rng.Float64() < liveVoteChance {
					matches[mi].Score2++
				}
			}
		}
	}
}
