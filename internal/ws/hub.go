package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Message is the wire envelope for every server-to-client event.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client wraps one websocket connection. The write mutex keeps concurrent
// broadcasts and targeted sends from interleaving frames.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// Send delivers a single event to this connection.
func (c *Client) Send(event string, data any) error {
	payload, err := json.Marshal(Message{Type: event, Data: data})
	if err != nil {
		return err
	}
	return c.write(payload)
}

func (c *Client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}

// Hub tracks every live connection and fans events out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("ws: client connected (total: %d)", len(h.clients))
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client] {
		delete(h.clients, client)
		client.Close()
		log.Printf("ws: client disconnected (total: %d)", len(h.clients))
	}
}

// Broadcast sends one event to every connection, marshaling the envelope
// once. Connections whose write fails are dropped.
func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(Message{Type: event, Data: data})
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	var dead []*Client
	for _, client := range clients {
		if err := client.write(payload); err != nil {
			log.Printf("ws: write error: %v", err)
			dead = append(dead, client)
		}
	}

	for _, client := range dead {
		h.Unregister(client)
	}
}
