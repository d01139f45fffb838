package models

// TruthAuthor is the sentinel author recorded on the correct answer's
// result entry in place of a player name.
const TruthAuthor = "TRUTH"

// ResultEntry describes one revealed choice at the end of a round
type ResultEntry struct {
	// Choice is the option text this entry describes
	Choice string

	// Authors lists the names of the players who submitted this text as
	// their decoy, or the TruthAuthor sentinel for the correct answer
	Authors []string

	// PickedBy lists the names of the players who picked this option
	PickedBy []string
}

// IsTruth reports whether this entry is the correct answer's entry.
func (e *ResultEntry) IsTruth() bool {
	return len(e.Authors) == 1 && e.Authors[0] == TruthAuthor
}
