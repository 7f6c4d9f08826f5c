package ws

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type directMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub tracks connected users and routes match alerts to the
// connections of one user. A user may hold several connections.
type Hub struct {
	clients    map[*Client]bool
	byUser     map[uuid.UUID]map[*Client]bool
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		direct:     make(chan directMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
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
			h.clients[client] = true
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]bool)
			}
			h.byUser[client.userID][client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Info("ws connected",
					zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.drop(client)

		case msg := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byUser[msg.userID]))
			for c := range h.byUser[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			// Stale clients are dropped inline. Re-queueing them on the
			// unregister channel could block the only goroutine that
			// drains it once the buffer fills.
			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		if peers := h.byUser[client.userID]; peers != nil {
			delete(peers, client)
			if len(peers) == 0 {
				delete(h.byUser, client.userID)
			}
		}
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Info("ws disconnected",
			zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))
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

// SendToUser queues a message for every connection the user holds.
// Dropped when the hub's buffer is full rather than blocking the caller.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	if h == nil || userID == uuid.Nil {
		return
	}
	select {
	case h.direct <- directMessage{userID: userID, payload: message}:
	default:
		if h.logger != nil {
			h.logger.Warn("ws message dropped", zap.String("reason", "buffer_full"))
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
