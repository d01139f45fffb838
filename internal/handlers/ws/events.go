package ws

import (
	"encoding/json"
	"fmt"
)

// EventType names an event on the wire
type EventType string

// Inbound events, one per client action. Disconnects arrive as closed
// connections rather than events.
const (
	EventTypeJoin   EventType = "join"
	EventTypeStart  EventType = "start"
	EventTypeCancel EventType = "cancel"
	EventTypeAnswer EventType = "answer"
	EventTypeChoice EventType = "choice"
)

// Outbound events
const (
	EventTypeNameAck   EventType = "name-ack"
	EventTypePlayers   EventType = "players"
	EventTypeStarting  EventType = "starting"
	EventTypeQuestion  EventType = "question"
	EventTypeAnswerAck EventType = "answer-ack"
	EventTypeChoices   EventType = "choices"
	EventTypeResult    EventType = "result"
	EventTypeScores    EventType = "scores"
	EventTypeQuit      EventType = "quit"
)

// Envelope is the frame carried on every websocket message
type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// JoinPayload carries a join request
type JoinPayload struct {
	Name string `json:"name"`
}

// TextPayload carries an answer or choice submission
type TextPayload struct {
	Text string `json:"text"`
}

// AckPayload carries a unicast accept/reject response
type AckPayload struct {
	Ok     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// PlayersPayload carries the roster in registration order
type PlayersPayload struct {
	Names []string `json:"names"`
}

// StartingPayload carries one countdown tick
type StartingPayload struct {
	SecondsLeft int `json:"seconds_left"`
}

// QuestionPayload carries the current question
type QuestionPayload struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

// ChoicesPayload carries the shuffled choice options
type ChoicesPayload struct {
	Options []string `json:"options"`
}

// ResultPayload carries one revealed result entry
type ResultPayload struct {
	Choice   string   `json:"choice"`
	Authors  []string `json:"authors"`
	PickedBy []string `json:"picked_by"`
}

// ScoreEntryPayload is one line of the score roster
type ScoreEntryPayload struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ScoresPayload carries the score roster after a round
type ScoresPayload struct {
	Scores []ScoreEntryPayload `json:"scores"`
	Final  bool                `json:"final"`
}

// QuitPayload names the player whose disconnect ended the session
type QuitPayload struct {
	Name string `json:"name"`
}

// encodeEvent marshals an envelope with the given payload
func encodeEvent(eventType EventType, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	frame, err := json.Marshal(&Envelope{
		Type: eventType,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", eventType, err)
	}

	return frame, nil
}
