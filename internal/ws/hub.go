package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope every realtime frame carries.
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Hub tracks live connections grouped per user, so an event addressed to a
// user reaches every tab and device they have open.
type Hub struct {
	rooms      map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	mutex      sync.RWMutex
	logger     *log.Logger
}

type delivery struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		deliver:    make(chan delivery, 1024),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room := h.rooms[client.userID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[client.userID] = room
			}
			room[client] = true
			total := h.clientCountLocked()
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.drop(client)

		case d := <-h.deliver:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.rooms[d.userID]))
			for c := range h.rooms[d.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- d.payload:
				default:
					// Slow consumer, drop the connection rather than block.
					// Done inline: Run is the only reader of h.unregister,
					// so queueing there from this goroutine could wedge it.
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	h.mutex.Lock()
	removed := false
	if room, ok := h.rooms[client.userID]; ok {
		if _, member := room[client]; member {
			delete(room, client)
			close(client.send)
			removed = true
		}
		if len(room) == 0 {
			delete(h.rooms, client.userID)
		}
	}
	total := h.clientCountLocked()
	h.mutex.Unlock()
	if removed && h.logger != nil {
		h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish sends an event to every live connection of the user. Events to
// offline users, and events that would overflow the delivery buffer, are
// silently dropped.
func (h *Hub) Publish(userID uuid.UUID, event string, payload any) {
	if h == nil || userID == uuid.Nil {
		return
	}

	b, err := json.Marshal(Event{
		Type:      event,
		Data:      payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	select {
	case h.deliver <- delivery{userID: userID, payload: b}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | user=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.clientCountLocked()
}

func (h *Hub) clientCountLocked() int {
	total := 0
	for _, room := range h.rooms {
		total += len(room)
	}
	return total
}
