package session

import "github.com/fibberd/fibberd/internal/models"

// registry tracks the registered players for one session. Iteration
// order is registration order throughout. The registry is not safe for
// concurrent use; the session service serializes access to it.
type registry struct {
	byConnection map[string]*models.Player
	order        []string
}

func newRegistry() *registry {
	return &registry{
		byConnection: make(map[string]*models.Player),
	}
}

// register adds a player with score zero. It returns false when the
// name is already taken by another registered player.
func (r *registry) register(connectionID, name string) bool {
	for _, player := range r.byConnection {
		if player.Name == name {
			return false
		}
	}

	r.byConnection[connectionID] = &models.Player{
		ConnectionID: connectionID,
		Name:         name,
	}
	r.order = append(r.order, connectionID)

	return true
}

// remove drops a player and returns it, or nil for an unknown
// connection. Removing an unknown connection is a no-op.
func (r *registry) remove(connectionID string) *models.Player {
	player, ok := r.byConnection[connectionID]
	if !ok {
		return nil
	}

	delete(r.byConnection, connectionID)
	for i, id := range r.order {
		if id == connectionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return player
}

// get returns the player for a connection, or nil if not registered
func (r *registry) get(connectionID string) *models.Player {
	return r.byConnection[connectionID]
}

// count returns the number of registered players
func (r *registry) count() int {
	return len(r.order)
}

// names returns the roster in registration order
func (r *registry) names() []string {
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.byConnection[id].Name)
	}
	return names
}

// list returns the players in registration order
func (r *registry) list() []*models.Player {
	players := make([]*models.Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, r.byConnection[id])
	}
	return players
}

// resetRound clears every player's per-round submission fields
func (r *registry) resetRound() {
	for _, player := range r.byConnection {
		player.ResetRound()
	}
}

// allAnswered reports whether every registered player has submitted an
// answer. The denominator is the current roster, so removing a player
// can flip this from false to true.
func (r *registry) allAnswered() bool {
	for _, player := range r.byConnection {
		if player.LastAnswer == nil {
			return false
		}
	}
	return true
}

// allChosen reports whether every registered player has picked a choice
func (r *registry) allChosen() bool {
	for _, player := range r.byConnection {
		if player.LastChoice == nil {
			return false
		}
	}
	return true
}
