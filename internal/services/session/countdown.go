package session

import (
	"github.com/fibberd/fibberd/internal/models"
	"github.com/rs/zerolog/log"
)

// countdownTick broadcasts the seconds remaining and schedules the next
// tick. The tick for zero is broadcast and the first question follows
// immediately. Caller must hold s.mu.
func (s *service) countdownTick(remaining int) {
	s.emitter.Starting(remaining)

	if remaining <= 0 {
		s.countdownHandle = nil
		s.beginQuestion(0)
		return
	}

	seq := s.timerSeq
	s.countdownHandle = s.scheduler.Schedule(s.config.CountdownTick, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if seq != s.timerSeq || s.phase != models.PhaseStarting {
			log.Debug().Int("remaining", remaining).Msg("dropping stale countdown tick")
			return
		}

		s.countdownTick(remaining - 1)
	})
}
