package events

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
)

type Type string

const (
	TypeLesson Type = "lesson"
	TypeQuiz   Type = "quiz"
	TypeChat   Type = "chat"
)

type Message struct {
	Type Type `json:"type"`
	Data any  `json:"data,omitempty"`
}

// Publisher receives a state snapshot every time an orchestrator changes it.
type Publisher interface {
	Publish(t Type, data any)
}

type discard struct{}

func (discard) Publish(Type, any) {}

var Discard Publisher = discard{}

type Client struct {
	ID       uuid.UUID
	Outbound chan Message
}

type Hub struct {
	mu        sync.RWMutex
	clients   map[*Client]struct{}
	heartbeat time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		heartbeat: 15 * time.Second,
	}
}

func (h *Hub) Subscribe() *Client {
	c := &Client{
		ID:       uuid.New(),
		Outbound: make(chan Message, 64),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	config.Logger.WithField("client_id", c.ID).Debug("SSE client subscribed")
	return c
}

func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.Outbound)
	config.Logger.WithField("client_id", c.ID).Debug("SSE client unsubscribed")
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish never blocks; a subscriber whose buffer is full misses the snapshot.
func (h *Hub) Publish(t Type, data any) {
	msg := Message{Type: t, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.Outbound <- msg:
		default:
			config.Logger.WithField("client_id", c.ID).Warn("Dropping state event; outbound buffer full")
		}
	}
}

// ServeHTTP streams every published snapshot to the caller as server-sent events.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	SetStreamHeaders(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	client := h.Subscribe()
	defer h.Unsubscribe(client)

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.WithField("client_id", client.ID).Debug("SSE client context done")
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-client.Outbound:
			if err := WriteEvent(w, string(msg.Type), msg.Data); err != nil {
				log.WithError(err).Warn("Failed to write SSE event")
				return
			}
			flusher.Flush()
		}
	}
}

func SetStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// WriteEvent writes one SSE frame with a JSON payload.
func WriteEvent(w io.Writer, event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	return err
}
