package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fibberd/fibberd/internal/services/session Service

// Service defines the interface for session operations. Every inbound
// event from a connection maps to exactly one method; operations are
// processed one at a time.
type Service interface {
	// Join registers a player under a unique name
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Start begins the pre-game countdown from the lobby
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// CancelStart stops a pending countdown and returns to the lobby
	CancelStart(ctx context.Context, input *CancelStartInput) (*CancelStartOutput, error)

	// Answer records a player's decoy for the current question
	Answer(ctx context.Context, input *AnswerInput) (*AnswerOutput, error)

	// Choose records a player's pick from the choice set
	Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error)

	// Disconnect removes a departed connection, aborting an active session
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// State returns a read-only snapshot of the session
	State(ctx context.Context, input *StateInput) (*StateOutput, error)
}
