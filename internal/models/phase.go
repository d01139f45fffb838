package models

// Phase represents the current state of a session
type Phase string

const (
	// PhaseLobby indicates the session is waiting for players to join
	PhaseLobby Phase = "lobby"

	// PhaseStarting indicates the start countdown is running
	PhaseStarting Phase = "starting"

	// PhaseInQuestion indicates a question is open for decoy submissions
	PhaseInQuestion Phase = "in_question"

	// PhaseAwaitingChoices indicates the choice set is open for picks
	PhaseAwaitingChoices Phase = "awaiting_choices"

	// PhaseRevealing indicates round results are being revealed one by one
	PhaseRevealing Phase = "revealing"

	// PhaseScored indicates scores were broadcast and the next round is pending
	PhaseScored Phase = "scored"

	// PhaseFinished indicates the question sequence ran out, terminal
	PhaseFinished Phase = "finished"

	// PhaseAborted indicates a mid-game disconnect ended the session, terminal
	PhaseAborted Phase = "aborted"
)

// Active reports whether a session in this phase is considered in play,
// meaning a disconnect must abort it.
func (p Phase) Active() bool {
	switch p {
	case PhaseStarting, PhaseInQuestion, PhaseAwaitingChoices, PhaseRevealing, PhaseScored:
		return true
	}
	return false
}

// Terminal reports whether no further session progress is possible.
func (p Phase) Terminal() bool {
	return p == PhaseFinished || p == PhaseAborted
}
