package session

// SessionError is a custom error type for session configuration errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    SessionError = "config cannot be nil"
	ErrNilEmitter   SessionError = "emitter cannot be nil"
	ErrNilScheduler SessionError = "scheduler cannot be nil"
	ErrNoQuestions  SessionError = "at least one question is required"
	ErrNilInput     SessionError = "input cannot be nil"
)
