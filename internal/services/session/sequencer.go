package session

import (
	"github.com/fibberd/fibberd/internal/models"
	"github.com/rs/zerolog/log"
)

// revealNext broadcasts the next held result entry and paces the rest.
// Once the list is drained it broadcasts the scores and schedules the
// next question, or the end of the game. Caller must hold s.mu.
func (s *service) revealNext() {
	if len(s.pendingResults) > 0 {
		entry := s.pendingResults[0]
		s.pendingResults = s.pendingResults[1:]
		s.emitter.Result(entry)

		seq := s.timerSeq
		s.resultHandle = s.scheduler.Schedule(s.config.TimeBetweenResults, func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if seq != s.timerSeq || s.phase != models.PhaseRevealing {
				log.Debug().Msg("dropping stale result timer")
				return
			}

			s.revealNext()
		})
		return
	}

	s.resultHandle = nil
	s.phase = models.PhaseScored

	final := s.questionIndex == len(s.questions)-1
	s.emitter.Scores(s.scores(), final)

	seq := s.timerSeq
	s.nextRoundHandle = s.scheduler.Schedule(s.config.TimeAfterScores, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if seq != s.timerSeq || s.phase != models.PhaseScored {
			log.Debug().Msg("dropping stale next-round timer")
			return
		}

		s.advance()
	})
}

// advance moves to the next question or ends the game.
// Caller must hold s.mu.
func (s *service) advance() {
	s.nextRoundHandle = nil

	if s.questionIndex+1 < len(s.questions) {
		s.beginQuestion(s.questionIndex + 1)
		return
	}

	s.phase = models.PhaseFinished
	log.Info().Int("questions", len(s.questions)).Msg("game finished")
}

// scores builds the score roster in registration order.
// Caller must hold s.mu.
func (s *service) scores() []ScoreEntry {
	players := s.registry.list()
	entries := make([]ScoreEntry, 0, len(players))
	for _, player := range players {
		entries = append(entries, ScoreEntry{
			Name:  player.Name,
			Score: player.Score,
		})
	}
	return entries
}
