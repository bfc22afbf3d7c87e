package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans page view-state snapshots out to the browser tabs watching a
// session. Clients are grouped by session key (the bearer token), since one
// user may have several tabs open.
type Hub struct {
	clients    map[string]map[*Client]bool
	mu         sync.RWMutex
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.SessionKey]; !ok {
		h.clients[client.SessionKey] = make(map[*Client]bool)
	}
	h.clients[client.SessionKey][client] = true
	log.Printf("Client %s registered for session", client.ID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sessionClients, ok := h.clients[client.SessionKey]; ok {
		if _, ok := sessionClients[client]; ok {
			delete(sessionClients, client)
			close(client.send)
			if len(sessionClients) == 0 {
				delete(h.clients, client.SessionKey)
			}
			log.Printf("Client %s unregistered", client.ID)
		}
	}
}

// Publish sends a payload to every client subscribed to a session. It
// implements the controller registry's Publisher.
func (h *Hub) Publish(sessionKey string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if sessionClients, ok := h.clients[sessionKey]; ok {
		for client := range sessionClients {
			select {
			case client.send <- payload:
			default:
				log.Printf("WARN: Client %s send buffer is full. Dropping message.", client.ID)
			}
		}
	}
}

// DropSession force-disconnects every client of a session, used on logout.
func (h *Hub) DropSession(sessionKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sessionClients, ok := h.clients[sessionKey]; ok {
		for client := range sessionClients {
			delete(sessionClients, client)
			close(client.send)
		}
		delete(h.clients, sessionKey)
	}
}
