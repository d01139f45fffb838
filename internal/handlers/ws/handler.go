package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fibberd/fibberd/internal/common/uuid"
	"github.com/fibberd/fibberd/internal/services/session"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Define errors
var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNilSession = errors.New("session service cannot be nil")
	ErrNilHub     = errors.New("hub cannot be nil")
)

// Config holds configuration for the websocket handler
type Config struct {
	// Session is the engine inbound events are dispatched to
	Session session.Service

	// Hub owns the live connections
	Hub *Hub

	// UUIDGenerator mints connection IDs; defaults to google/uuid
	UUIDGenerator uuid.UUID

	// ReadTimeout bounds the wait for a client message or pong
	ReadTimeout time.Duration

	// MaxMessageSize caps a single inbound frame
	MaxMessageSize int64

	// CheckOrigin overrides the upgrade origin check; nil allows all
	CheckOrigin func(r *http.Request) bool
}

// Handler upgrades HTTP requests to websocket connections and dispatches
// their events to the session service, one at a time per connection.
type Handler struct {
	config   *Config
	session  session.Service
	hub      *Hub
	uuidGen  uuid.UUID
	upgrader websocket.Upgrader
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}

	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.New()
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 60 * time.Second
	}
	if cfg.MaxMessageSize == 0 {
		cfg.MaxMessageSize = 4096
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}

	return &Handler{
		config:  cfg,
		session: cfg.Session,
		hub:     cfg.Hub,
		uuidGen: cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

// RegisterRoutes registers the websocket and state routes on a mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.handleConnection)
	mux.HandleFunc("/state", h.handleState)
}

// handleConnection upgrades the request and runs the connection's read
// loop until the client goes away.
func (h *Handler) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	connectionID := h.uuidGen.NewUUID()
	h.hub.Add(connectionID, conn)

	log.Info().
		Str("connection_id", connectionID).
		Str("remote_addr", r.RemoteAddr).
		Msg("client connected")

	go h.readPump(connectionID, conn)
}

// readPump reads frames off one connection and dispatches them until
// the connection closes, then reports the disconnect to the engine.
func (h *Handler) readPump(connectionID string, conn *websocket.Conn) {
	defer func() {
		h.hub.Remove(connectionID)
		conn.Close()

		if _, err := h.session.Disconnect(context.Background(), &session.DisconnectInput{
			ConnectionID: connectionID,
		}); err != nil {
			log.Error().Err(err).Str("connection_id", connectionID).Msg("disconnect handling failed")
		}

		log.Info().
			Str("connection_id", connectionID).
			Msg("client disconnected")
	}()

	conn.SetReadLimit(h.config.MaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
		return nil
	})

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().
					Err(err).
					Str("connection_id", connectionID).
					Msg("unexpected connection close")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))

		h.dispatch(connectionID, frame)
	}
}

// dispatch decodes one inbound frame and routes it to the engine.
// Malformed frames are logged and dropped; the engine itself decides
// whether an event is acted on, rejected or ignored.
func (h *Handler) dispatch(connectionID string, frame []byte) {
	var envelope Envelope
	if err := json.Unmarshal(frame, &envelope); err != nil {
		log.Warn().
			Err(err).
			Str("connection_id", connectionID).
			Msg("dropping malformed frame")
		return
	}

	ctx := context.Background()
	var err error

	switch envelope.Type {
	case EventTypeJoin:
		var payload JoinPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			log.Warn().Err(err).Msg("dropping malformed join payload")
			return
		}
		_, err = h.session.Join(ctx, &session.JoinInput{
			ConnectionID: connectionID,
			Name:         payload.Name,
		})

	case EventTypeStart:
		_, err = h.session.Start(ctx, &session.StartInput{
			ConnectionID: connectionID,
		})

	case EventTypeCancel:
		_, err = h.session.CancelStart(ctx, &session.CancelStartInput{
			ConnectionID: connectionID,
		})

	case EventTypeAnswer:
		var payload TextPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			log.Warn().Err(err).Msg("dropping malformed answer payload")
			return
		}
		_, err = h.session.Answer(ctx, &session.AnswerInput{
			ConnectionID: connectionID,
			Text:         payload.Text,
		})

	case EventTypeChoice:
		var payload TextPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			log.Warn().Err(err).Msg("dropping malformed choice payload")
			return
		}
		_, err = h.session.Choose(ctx, &session.ChooseInput{
			ConnectionID: connectionID,
			Text:         payload.Text,
		})

	default:
		log.Debug().
			Str("connection_id", connectionID).
			Str("event_type", string(envelope.Type)).
			Msg("dropping unknown event type")
		return
	}

	if err != nil {
		log.Error().
			Err(err).
			Str("connection_id", connectionID).
			Str("event_type", string(envelope.Type)).
			Msg("event dispatch failed")
	}
}

// handleState serves a JSON snapshot of the session for debugging
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.State(r.Context(), &session.StateInput{})
	if err != nil {
		http.Error(w, "failed to read session state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"phase":           string(state.Phase),
		"players":         state.Players,
		"question_number": state.QuestionNumber,
		"total_questions": state.TotalQuestions,
		"connections":     h.hub.Count(),
	}); err != nil {
		log.Error().Err(err).Msg("failed to encode state response")
	}
}
