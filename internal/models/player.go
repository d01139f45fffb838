package models

// Player represents a connected participant in the session
type Player struct {
	// ConnectionID is the opaque identifier of the player's connection
	ConnectionID string

	// Name is the display name chosen by the player, unique among active players
	Name string

	// Score is the player's accumulated score, never negative
	Score int

	// LastAnswer is the decoy text submitted for the current round, nil until submitted
	LastAnswer *string

	// LastChoice is the option picked for the current round, nil until picked
	LastChoice *string
}

// ResetRound clears the per-round submission fields
func (p *Player) ResetRound() {
	p.LastAnswer = nil
	p.LastChoice = nil
}
