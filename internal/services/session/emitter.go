package session

import "github.com/fibberd/fibberd/internal/models"

//go:generate mockgen -package=mocks -destination=mocks/mock_emitter.go github.com/fibberd/fibberd/internal/services/session Emitter

// Emitter is the outbound side of the engine. Broadcast methods reach
// every connection; JoinAck and AnswerAck are unicast to the named
// connection. The transport must deliver events in the order they are
// emitted on a given connection.
type Emitter interface {
	// JoinAck tells one connection whether its join was accepted
	JoinAck(connectionID string, ok bool, reason RejectReason)

	// Players broadcasts the roster in registration order
	Players(names []string)

	// Starting broadcasts a countdown tick
	Starting(secondsLeft int)

	// Question broadcasts the current question with its 1-based index
	Question(text string, index, total int)

	// AnswerAck tells one connection whether its answer was accepted
	AnswerAck(connectionID string, ok bool, reason RejectReason)

	// Choices broadcasts the shuffled choice options
	Choices(options []string)

	// Result broadcasts one revealed result entry
	Result(entry *models.ResultEntry)

	// Scores broadcasts the score roster and whether the game is over
	Scores(scores []ScoreEntry, final bool)

	// Quit broadcasts the name of a player whose disconnect ended the session
	Quit(name string)
}
