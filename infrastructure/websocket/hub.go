package websocket

import (
	"sync"

	"github.com/google/uuid"

	"taskboard/pkg/logger"
)

// Sink is the delivery handle for one connected session. *websocket.Conn
// satisfies it; tests use fakes.
type Sink interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Session struct {
	ID     uuid.UUID
	UserID uuid.UUID // uuid.Nil for anonymous sessions
	Conn   Sink
}

// Message is the wire envelope for broadcast events.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub owns the session registry and fans events out to every connected
// session. Delivery is at-most-once: a failed write drops the session, and
// there is no replay on reconnect.
type Hub struct {
	sessions   map[uuid.UUID]*Session
	register   chan *Session
	unregister chan uuid.UUID
	broadcast  chan Message
	direct     chan directMessage
	quit       chan struct{}
	once       sync.Once
	mutex      sync.RWMutex
}

type directMessage struct {
	sessionID uuid.UUID
	message   Message
}

func NewHub() *Hub {
	h := &Hub{
		sessions:   make(map[uuid.UUID]*Session),
		register:   make(chan *Session),
		unregister: make(chan uuid.UUID),
		broadcast:  make(chan Message),
		direct:     make(chan directMessage),
		quit:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case session := <-h.register:
			h.mutex.Lock()
			h.sessions[session.ID] = session
			h.mutex.Unlock()

			logger.Info("Broadcast session connected",
				"session_id", session.ID,
				"user_id", session.UserID,
			)

		case sessionID := <-h.unregister:
			h.remove(sessionID)

		case message := <-h.broadcast:
			h.mutex.RLock()
			var failed []uuid.UUID
			for id, session := range h.sessions {
				if err := session.Conn.WriteJSON(message); err != nil {
					logger.Warn("Broadcast write failed, dropping session",
						"session_id", id,
						"error", err,
					)
					failed = append(failed, id)
				}
			}
			h.mutex.RUnlock()

			for _, id := range failed {
				h.remove(id)
			}

		case dm := <-h.direct:
			h.mutex.RLock()
			session, ok := h.sessions[dm.sessionID]
			h.mutex.RUnlock()
			if !ok {
				continue
			}
			if err := session.Conn.WriteJSON(dm.message); err != nil {
				logger.Warn("Direct write failed, dropping session",
					"session_id", dm.sessionID,
					"error", err,
				)
				h.remove(dm.sessionID)
			}

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) remove(sessionID uuid.UUID) {
	h.mutex.Lock()
	session, ok := h.sessions[sessionID]
	if ok {
		delete(h.sessions, sessionID)
	}
	h.mutex.Unlock()

	if ok {
		session.Conn.Close()
		logger.Info("Broadcast session disconnected",
			"session_id", sessionID,
			"user_id", session.UserID,
		)
	}
}

// Subscribe registers a delivery handle and returns its session id.
func (h *Hub) Subscribe(conn Sink, userID uuid.UUID) uuid.UUID {
	session := &Session{
		ID:     uuid.New(),
		UserID: userID,
		Conn:   conn,
	}
	h.register <- session
	return session.ID
}

// Unsubscribe drops the session and closes its handle.
func (h *Hub) Unsubscribe(sessionID uuid.UUID) {
	h.unregister <- sessionID
}

// Publish fans the event out to every connected session. Recipients are not
// filtered by task visibility; clients re-apply their own filtering.
func (h *Hub) Publish(event string, payload interface{}) {
	h.broadcast <- Message{
		Type: event,
		Data: payload,
	}
}

// Send delivers an event to a single session. All writes to a connection go
// through the run loop, so direct sends never race a broadcast.
func (h *Hub) Send(sessionID uuid.UUID, event string, payload interface{}) {
	h.direct <- directMessage{
		sessionID: sessionID,
		message:   Message{Type: event, Data: payload},
	}
}

func (h *Hub) SessionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.sessions)
}

// Close stops the run loop and drops all sessions.
func (h *Hub) Close() {
	h.once.Do(func() {
		close(h.quit)

		h.mutex.Lock()
		for id, session := range h.sessions {
			session.Conn.Close()
			delete(h.sessions, id)
		}
		h.mutex.Unlock()
	})
}
