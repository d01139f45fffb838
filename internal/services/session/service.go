package session

import (
	"context"
	"sync"

	"github.com/fibberd/fibberd/internal/common/scheduler"
	"github.com/fibberd/fibberd/internal/models"
	"github.com/fibberd/fibberd/internal/shuffle"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface. A single mutex serializes
// every inbound event and timer firing, so handlers run one at a time
// and never observe partial state.
type service struct {
	config    *Config
	emitter   Emitter
	scheduler scheduler.Scheduler
	shuffler  *shuffle.Shuffler

	mu            sync.Mutex
	phase         models.Phase
	registry      *registry
	questions     []models.Question
	questionIndex int

	// At most one of the three timers is pending at a time. timerSeq is
	// bumped whenever pending timers are invalidated; a fired callback
	// whose captured seq is stale must not act.
	countdownHandle scheduler.Handle
	resultHandle    scheduler.Handle
	nextRoundHandle scheduler.Handle
	timerSeq        int

	pendingResults []*models.ResultEntry
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Emitter == nil {
		return nil, ErrNilEmitter
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if len(cfg.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	// Apply defaults for unset tunables
	if cfg.PointsForTruth == 0 {
		cfg.PointsForTruth = DefaultPointsForTruth
	}
	if cfg.PointsForLie == 0 {
		cfg.PointsForLie = DefaultPointsForLie
	}
	if cfg.SecondsBeforeStart == 0 {
		cfg.SecondsBeforeStart = DefaultSecondsBeforeStart
	}
	if cfg.CountdownTick == 0 {
		cfg.CountdownTick = DefaultCountdownTick
	}
	if cfg.TimeBetweenResults == 0 {
		cfg.TimeBetweenResults = DefaultTimeBetweenResults
	}
	if cfg.TimeAfterScores == 0 {
		cfg.TimeAfterScores = DefaultTimeAfterScores
	}

	shuffler := cfg.Shuffler
	if shuffler == nil {
		shuffler = shuffle.New(nil)
	}

	return &service{
		config:    cfg,
		emitter:   cfg.Emitter,
		scheduler: cfg.Scheduler,
		shuffler:  shuffler,
		phase:     models.PhaseLobby,
		registry:  newRegistry(),
		questions: cfg.Questions,
	}, nil
}

// Join registers a player under a unique name
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Registration closes once the countdown has completed
	if s.phase != models.PhaseLobby && s.phase != models.PhaseStarting {
		log.Info().
			Str("connection_id", input.ConnectionID).
			Str("name", input.Name).
			Msg("join rejected, game already started")
		s.emitter.JoinAck(input.ConnectionID, false, RejectReasonAlreadyStarted)
		return &JoinOutput{Reason: RejectReasonAlreadyStarted}, nil
	}

	// A connection identifies itself once; repeats are dropped
	if s.registry.get(input.ConnectionID) != nil {
		log.Debug().
			Str("connection_id", input.ConnectionID).
			Msg("ignoring join from already registered connection")
		return &JoinOutput{}, nil
	}

	if !s.registry.register(input.ConnectionID, input.Name) {
		log.Info().
			Str("connection_id", input.ConnectionID).
			Str("name", input.Name).
			Msg("join rejected, name taken")
		s.emitter.JoinAck(input.ConnectionID, false, RejectReasonExisting)
		return &JoinOutput{Reason: RejectReasonExisting}, nil
	}

	log.Info().
		Str("connection_id", input.ConnectionID).
		Str("name", input.Name).
		Int("players", s.registry.count()).
		Msg("player joined")

	s.emitter.JoinAck(input.ConnectionID, true, "")
	s.emitter.Players(s.registry.names())

	return &JoinOutput{Registered: true}, nil
}

// Start begins the pre-game countdown from the lobby
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.get(input.ConnectionID) == nil {
		log.Debug().
			Str("connection_id", input.ConnectionID).
			Msg("ignoring start from unregistered connection")
		return &StartOutput{}, nil
	}
	if s.phase != models.PhaseLobby {
		log.Debug().
			Str("phase", string(s.phase)).
			Msg("ignoring start outside lobby")
		return &StartOutput{}, nil
	}

	log.Info().
		Int("players", s.registry.count()).
		Int("seconds", s.config.SecondsBeforeStart).
		Msg("start countdown began")

	s.phase = models.PhaseStarting
	s.countdownTick(s.config.SecondsBeforeStart)

	return &StartOutput{Started: true}, nil
}

// CancelStart stops a pending countdown and returns to the lobby
func (s *service) CancelStart(ctx context.Context, input *CancelStartInput) (*CancelStartOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.get(input.ConnectionID) == nil {
		log.Debug().
			Str("connection_id", input.ConnectionID).
			Msg("ignoring cancel from unregistered connection")
		return &CancelStartOutput{}, nil
	}

	// A countdown that already completed left PhaseStarting behind;
	// cancelling it is a no-op.
	if s.phase != models.PhaseStarting {
		log.Debug().
			Str("phase", string(s.phase)).
			Msg("ignoring cancel, no countdown pending")
		return &CancelStartOutput{}, nil
	}

	s.cancelTimers()
	s.phase = models.PhaseLobby

	log.Info().Msg("start countdown cancelled")
	s.emitter.Players(s.registry.names())

	return &CancelStartOutput{Cancelled: true}, nil
}

// Disconnect removes a departed connection. While the session is active
// this aborts it: every pending timer is cancelled, a single quit notice
// names the departed player, and no further round progress occurs.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.registry.get(input.ConnectionID)
	if player == nil {
		return &DisconnectOutput{}, nil
	}

	aborted := false
	if s.phase.Active() {
		s.abort(player.Name)
		aborted = true
	}

	s.registry.remove(input.ConnectionID)

	log.Info().
		Str("connection_id", input.ConnectionID).
		Str("name", player.Name).
		Bool("aborted", aborted).
		Msg("player disconnected")

	if s.phase == models.PhaseLobby {
		s.emitter.Players(s.registry.names())
	}

	return &DisconnectOutput{Removed: true, Aborted: aborted}, nil
}

// State returns a read-only snapshot of the session
func (s *service) State(ctx context.Context, input *StateInput) (*StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := 0
	if s.phase != models.PhaseLobby && s.phase != models.PhaseStarting {
		number = s.questionIndex + 1
	}

	return &StateOutput{
		Phase:          s.phase,
		Players:        s.registry.names(),
		QuestionNumber: number,
		TotalQuestions: len(s.questions),
	}, nil
}

// abort ends an active session after a mid-game disconnect.
// Caller must hold s.mu.
func (s *service) abort(name string) {
	s.cancelTimers()
	s.pendingResults = nil
	s.phase = models.PhaseAborted

	log.Info().Str("name", name).Msg("session aborted")
	s.emitter.Quit(name)
}

// cancelTimers cancels whichever timer is pending and invalidates any
// callback already fired but not yet run. Caller must hold s.mu.
func (s *service) cancelTimers() {
	s.timerSeq++

	if s.countdownHandle != nil {
		s.countdownHandle.Cancel()
		s.countdownHandle = nil
	}
	if s.resultHandle != nil {
		s.resultHandle.Cancel()
		s.resultHandle = nil
	}
	if s.nextRoundHandle != nil {
		s.nextRoundHandle.Cancel()
		s.nextRoundHandle = nil
	}
}

// beginQuestion opens a question for decoy submissions.
// Caller must hold s.mu.
func (s *service) beginQuestion(index int) {
	s.questionIndex = index
	s.registry.resetRound()
	s.phase = models.PhaseInQuestion

	question := s.questions[index]
	log.Info().
		Int("question", index+1).
		Int("total", len(s.questions)).
		Msg("question opened")

	s.emitter.Question(question.Text, index+1, len(s.questions))
}
