package session

import "github.com/fibberd/fibberd/internal/models"

// roundResult is the outcome of scoring one round
type roundResult struct {
	// entries is the reveal sequence: picked decoys in insertion order,
	// the truth entry last
	entries []*models.ResultEntry

	// awards maps player names to score deltas for the round
	awards map[string]int
}

// buildChoices collects the distinct submitted answers in registration
// order and appends the correct answer. The caller shuffles the result
// before broadcasting it.
func buildChoices(players []*models.Player, correctAnswer string) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0, len(players)+1)

	for _, player := range players {
		if player.LastAnswer == nil {
			continue
		}
		answer := *player.LastAnswer
		if _, dup := seen[answer]; dup {
			continue
		}
		seen[answer] = struct{}{}
		options = append(options, answer)
	}

	return append(options, correctAnswer)
}

// scoreRound computes the score deltas and ordered reveal sequence for a
// completed round. It is a pure function of the player snapshot: it never
// mutates the players and produces identical results on identical input.
func scoreRound(players []*models.Player, correctAnswer string, pointsForTruth, pointsForLie int) *roundResult {
	truth := &models.ResultEntry{
		Choice:  correctAnswer,
		Authors: []string{models.TruthAuthor},
	}

	// Attribute decoy authorship. Two players submitting identical text
	// become co-authors of one merged entry.
	byText := make(map[string]*models.ResultEntry)
	var decoys []*models.ResultEntry

	for _, player := range players {
		if player.LastAnswer == nil {
			continue
		}
		text := *player.LastAnswer
		if text == correctAnswer {
			// Rejected at submission time; the truth keeps its sentinel author
			continue
		}

		entry, ok := byText[text]
		if !ok {
			entry = &models.ResultEntry{Choice: text}
			byText[text] = entry
			decoys = append(decoys, entry)
		}
		entry.Authors = append(entry.Authors, player.Name)
	}

	// Resolve picks
	awards := make(map[string]int)
	for _, player := range players {
		if player.LastChoice == nil {
			continue
		}
		pick := *player.LastChoice

		if pick == correctAnswer {
			awards[player.Name] += pointsForTruth
			truth.PickedBy = append(truth.PickedBy, player.Name)
			continue
		}

		entry, ok := byText[pick]
		if !ok {
			// A pick outside the option set scores nothing and is not revealed
			continue
		}
		entry.PickedBy = append(entry.PickedBy, player.Name)
		for _, author := range entry.Authors {
			// No lie points for fooling yourself
			if author != player.Name {
				awards[author] += pointsForLie
			}
		}
	}

	// Decoys nobody picked are never revealed
	entries := make([]*models.ResultEntry, 0, len(decoys)+1)
	for _, entry := range decoys {
		if len(entry.PickedBy) > 0 {
			entries = append(entries, entry)
		}
	}
	entries = append(entries, truth)

	return &roundResult{
		entries: entries,
		awards:  awards,
	}
}
