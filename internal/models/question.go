package models

// Question is a single prompt in the session's fixed question sequence
type Question struct {
	// Text is the question presented to the players
	Text string

	// Answer is the one true answer for the question
	Answer string
}
