package ws

import (
	"sync"
	"time"

	"github.com/fibberd/fibberd/internal/models"
	"github.com/fibberd/fibberd/internal/services/session"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// HubConfig holds configuration for the connection hub
type HubConfig struct {
	// WriteTimeout bounds a single websocket write
	WriteTimeout time.Duration

	// PingInterval is how often idle connections are pinged
	PingInterval time.Duration

	// SendBuffer is the per-connection outbound queue size
	SendBuffer int
}

// DefaultHubConfig returns the default hub configuration
func DefaultHubConfig() *HubConfig {
	return &HubConfig{
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
		SendBuffer:   256,
	}
}

// Hub owns the live websocket connections and implements the session
// engine's Emitter: broadcasts fan out to every connection, acks go to
// one. Sends are non-blocking; a connection that cannot keep up is
// dropped rather than allowed to stall the engine.
type Hub struct {
	config *HubConfig

	mu          sync.RWMutex
	connections map[string]*connection
}

// connection is one registered websocket client. Its mutex guards the
// send queue's lifecycle: trySend and close hold it, so a queued send
// can never race the close.
type connection struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub

	mu     sync.Mutex
	closed bool
}

// NewHub creates a new connection hub
func NewHub(cfg *HubConfig) *Hub {
	if cfg == nil {
		cfg = DefaultHubConfig()
	}

	return &Hub{
		config:      cfg,
		connections: make(map[string]*connection),
	}
}

// Add registers a websocket connection under the given ID and starts its
// write pump.
func (h *Hub) Add(connectionID string, conn *websocket.Conn) {
	c := &connection{
		id:   connectionID,
		conn: conn,
		send: make(chan []byte, h.config.SendBuffer),
		hub:  h,
	}

	h.mu.Lock()
	h.connections[connectionID] = c
	h.mu.Unlock()

	go c.writePump()

	log.Debug().
		Str("connection_id", connectionID).
		Msg("connection added to hub")
}

// Remove drops a connection from the hub. Safe to call twice.
func (h *Hub) Remove(connectionID string) {
	h.mu.Lock()
	c, ok := h.connections[connectionID]
	if ok {
		delete(h.connections, connectionID)
	}
	h.mu.Unlock()

	if ok {
		c.close()
		log.Debug().
			Str("connection_id", connectionID).
			Msg("connection removed from hub")
	}
}

// Count returns the number of live connections
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// broadcast sends an event to every connection
func (h *Hub) broadcast(eventType EventType, payload any) {
	frame, err := encodeEvent(eventType, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode broadcast event")
		return
	}

	h.mu.RLock()
	targets := make([]*connection, 0, len(h.connections))
	for _, c := range h.connections {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.trySend(frame)
	}
}

// unicast sends an event to one connection
func (h *Hub) unicast(connectionID string, eventType EventType, payload any) {
	frame, err := encodeEvent(eventType, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode unicast event")
		return
	}

	h.mu.RLock()
	c, ok := h.connections[connectionID]
	h.mu.RUnlock()

	if !ok {
		log.Debug().
			Str("connection_id", connectionID).
			Str("event_type", string(eventType)).
			Msg("dropping unicast to unknown connection")
		return
	}

	c.trySend(frame)
}

// close shuts the send queue exactly once, waking the write pump
func (c *connection) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// trySend queues a frame without blocking. A frame for a connection
// already removed is dropped; a full queue closes the connection.
func (c *connection) trySend(frame []byte) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	select {
	case c.send <- frame:
		c.mu.Unlock()
		return
	default:
	}
	c.mu.Unlock()

	log.Warn().
		Str("connection_id", c.id).
		Msg("send buffer full, closing connection")
	c.hub.Remove(c.id)
	c.conn.Close()
}

// writePump drains the send queue onto the socket and keeps it alive
// with pings.
func (c *connection) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Debug().
					Err(err).
					Str("connection_id", c.id).
					Msg("write failed, dropping connection")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// JoinAck tells one connection whether its join was accepted
func (h *Hub) JoinAck(connectionID string, ok bool, reason session.RejectReason) {
	h.unicast(connectionID, EventTypeNameAck, &AckPayload{
		Ok:     ok,
		Reason: string(reason),
	})
}

// Players broadcasts the roster in registration order
func (h *Hub) Players(names []string) {
	h.broadcast(EventTypePlayers, &PlayersPayload{Names: names})
}

// Starting broadcasts a countdown tick
func (h *Hub) Starting(secondsLeft int) {
	h.broadcast(EventTypeStarting, &StartingPayload{SecondsLeft: secondsLeft})
}

// Question broadcasts the current question
func (h *Hub) Question(text string, index, total int) {
	h.broadcast(EventTypeQuestion, &QuestionPayload{
		Text:  text,
		Index: index,
		Total: total,
	})
}

// AnswerAck tells one connection whether its answer was accepted
func (h *Hub) AnswerAck(connectionID string, ok bool, reason session.RejectReason) {
	h.unicast(connectionID, EventTypeAnswerAck, &AckPayload{
		Ok:     ok,
		Reason: string(reason),
	})
}

// Choices broadcasts the shuffled choice options
func (h *Hub) Choices(options []string) {
	h.broadcast(EventTypeChoices, &ChoicesPayload{Options: options})
}

// Result broadcasts one revealed result entry
func (h *Hub) Result(entry *models.ResultEntry) {
	h.broadcast(EventTypeResult, &ResultPayload{
		Choice:   entry.Choice,
		Authors:  entry.Authors,
		PickedBy: entry.PickedBy,
	})
}

// Scores broadcasts the score roster
func (h *Hub) Scores(scores []session.ScoreEntry, final bool) {
	entries := make([]ScoreEntryPayload, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, ScoreEntryPayload{
			Name:  score.Name,
			Score: score.Score,
		})
	}

	h.broadcast(EventTypeScores, &ScoresPayload{
		Scores: entries,
		Final:  final,
	})
}

// Quit broadcasts the name of the player whose disconnect ended the session
func (h *Hub) Quit(name string) {
	h.broadcast(EventTypeQuit, &QuitPayload{Name: name})
}
