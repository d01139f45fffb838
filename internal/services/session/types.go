package session

import (
	"time"

	"github.com/fibberd/fibberd/internal/common/scheduler"
	"github.com/fibberd/fibberd/internal/models"
	"github.com/fibberd/fibberd/internal/shuffle"
)

// RejectReason explains why a join or answer was turned down
type RejectReason string

const (
	// RejectReasonAlreadyStarted indicates a join after the game left the lobby
	RejectReasonAlreadyStarted RejectReason = "ALREADY_STARTED"

	// RejectReasonExisting indicates a join with a name already in use
	RejectReasonExisting RejectReason = "EXISTING"

	// RejectReasonTruth indicates an answer equal to the correct answer
	RejectReasonTruth RejectReason = "TRUTH"
)

// Default tunables. Fixed in production; overridable through Config for tests.
const (
	DefaultPointsForTruth     = 1000
	DefaultPointsForLie       = 500
	DefaultSecondsBeforeStart = 5
	DefaultCountdownTick      = time.Second
	DefaultTimeBetweenResults = 5 * time.Second
	DefaultTimeAfterScores    = 5 * time.Second
)

// Config holds configuration for the session service
type Config struct {
	// Questions is the ordered, pre-validated question sequence
	Questions []models.Question

	// Emitter receives every outbound broadcast and acknowledgment
	Emitter Emitter

	// Scheduler runs the countdown, result pacing and inter-round delays
	Scheduler scheduler.Scheduler

	// Shuffler permutes the decoy set; a fresh one is created when nil
	Shuffler *shuffle.Shuffler

	// Points awarded for picking the correct answer
	PointsForTruth int

	// Points awarded to a decoy's author per player it fooled
	PointsForLie int

	// Seconds counted down before the first question
	SecondsBeforeStart int

	// Interval between countdown ticks
	CountdownTick time.Duration

	// Delay between consecutive result reveals
	TimeBetweenResults time.Duration

	// Delay between the score broadcast and the next question
	TimeAfterScores time.Duration
}

// ScoreEntry is one line of the broadcast score roster
type ScoreEntry struct {
	// Name is the player's display name
	Name string

	// Score is the player's accumulated score
	Score int
}

// JoinInput contains parameters for registering a player
type JoinInput struct {
	// ConnectionID identifies the joining connection
	ConnectionID string

	// Name is the requested display name
	Name string
}

// JoinOutput contains the result of a join attempt
type JoinOutput struct {
	// Registered indicates if the player was added to the roster
	Registered bool

	// Reason is set when the join was rejected
	Reason RejectReason
}

// StartInput contains parameters for requesting the start countdown
type StartInput struct {
	// ConnectionID identifies the requesting connection
	ConnectionID string
}

// StartOutput contains the result of a start request
type StartOutput struct {
	// Started indicates if the countdown began
	Started bool
}

// CancelStartInput contains parameters for cancelling the start countdown
type CancelStartInput struct {
	// ConnectionID identifies the requesting connection
	ConnectionID string
}

// CancelStartOutput contains the result of a cancel request
type CancelStartOutput struct {
	// Cancelled indicates if a pending countdown was stopped
	Cancelled bool
}

// AnswerInput contains parameters for submitting a decoy answer
type AnswerInput struct {
	// ConnectionID identifies the submitting connection
	ConnectionID string

	// Text is the submitted answer text
	Text string
}

// AnswerOutput contains the result of an answer submission
type AnswerOutput struct {
	// Accepted indicates if the answer was recorded
	Accepted bool

	// Reason is set when the answer was rejected
	Reason RejectReason
}

// ChooseInput contains parameters for picking a choice option
type ChooseInput struct {
	// ConnectionID identifies the picking connection
	ConnectionID string

	// Text is the picked option text
	Text string
}

// ChooseOutput contains the result of a choice submission
type ChooseOutput struct {
	// Accepted indicates if the choice was recorded
	Accepted bool
}

// DisconnectInput contains parameters for handling a closed connection
type DisconnectInput struct {
	// ConnectionID identifies the departed connection
	ConnectionID string
}

// DisconnectOutput contains the result of a disconnect
type DisconnectOutput struct {
	// Removed indicates if a registered player was dropped from the roster
	Removed bool

	// Aborted indicates if the disconnect ended an active session
	Aborted bool
}

// StateInput contains parameters for reading a session snapshot
type StateInput struct{}

// StateOutput is a read-only snapshot of the session
type StateOutput struct {
	// Phase is the current session phase
	Phase models.Phase

	// Players is the roster in registration order
	Players []string

	// QuestionNumber is the 1-based current question, 0 before the game starts
	QuestionNumber int

	// TotalQuestions is the length of the question sequence
	TotalQuestions int
}
