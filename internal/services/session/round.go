package session

import (
	"context"

	"github.com/fibberd/fibberd/internal/models"
	"github.com/rs/zerolog/log"
)

// Answer records a player's decoy for the current question
func (s *service) Answer(ctx context.Context, input *AnswerInput) (*AnswerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.registry.get(input.ConnectionID)
	if player == nil {
		log.Debug().
			Str("connection_id", input.ConnectionID).
			Msg("ignoring answer from unregistered connection")
		return &AnswerOutput{}, nil
	}
	if s.phase != models.PhaseInQuestion {
		log.Debug().
			Str("phase", string(s.phase)).
			Msg("ignoring answer outside question phase")
		return &AnswerOutput{}, nil
	}

	question := s.questions[s.questionIndex]
	if input.Text == question.Answer {
		log.Info().
			Str("name", player.Name).
			Msg("answer rejected, equals the truth")
		s.emitter.AnswerAck(input.ConnectionID, false, RejectReasonTruth)
		return &AnswerOutput{Reason: RejectReasonTruth}, nil
	}

	text := input.Text
	player.LastAnswer = &text
	s.emitter.AnswerAck(input.ConnectionID, true, "")

	log.Info().
		Str("name", player.Name).
		Int("question", s.questionIndex+1).
		Msg("answer recorded")

	if s.registry.allAnswered() {
		s.openChoices()
	}

	return &AnswerOutput{Accepted: true}, nil
}

// Choose records a player's pick from the choice set
func (s *service) Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.registry.get(input.ConnectionID)
	if player == nil {
		log.Debug().
			Str("connection_id", input.ConnectionID).
			Msg("ignoring choice from unregistered connection")
		return &ChooseOutput{}, nil
	}
	if s.phase != models.PhaseAwaitingChoices {
		log.Debug().
			Str("phase", string(s.phase)).
			Msg("ignoring choice outside choosing phase")
		return &ChooseOutput{}, nil
	}

	text := input.Text
	player.LastChoice = &text

	log.Info().
		Str("name", player.Name).
		Int("question", s.questionIndex+1).
		Msg("choice recorded")

	if s.registry.allChosen() {
		s.finishRound()
	}

	return &ChooseOutput{Accepted: true}, nil
}

// openChoices builds and shuffles the decoy set and opens the choice
// round. Caller must hold s.mu.
func (s *service) openChoices() {
	question := s.questions[s.questionIndex]
	options := buildChoices(s.registry.list(), question.Answer)
	s.shuffler.Strings(options)

	s.phase = models.PhaseAwaitingChoices

	log.Info().
		Int("question", s.questionIndex+1).
		Int("options", len(options)).
		Msg("choices opened")

	s.emitter.Choices(options)
}

// finishRound scores the completed round and starts the reveal sequence.
// Caller must hold s.mu.
func (s *service) finishRound() {
	question := s.questions[s.questionIndex]
	result := scoreRound(s.registry.list(), question.Answer, s.config.PointsForTruth, s.config.PointsForLie)

	for _, player := range s.registry.list() {
		player.Score += result.awards[player.Name]
	}

	log.Info().
		Int("question", s.questionIndex+1).
		Int("entries", len(result.entries)).
		Msg("round scored")

	s.phase = models.PhaseRevealing
	s.pendingResults = result.entries
	s.revealNext()
}
