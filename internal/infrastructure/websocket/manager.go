package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one live connection, pinned to a single chat room.
type Client struct {
	UserID string
	RoomID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// IncomingHandler processes a text frame read from a client. It runs on the
// client's read goroutine.
type IncomingHandler func(roomID, userID string, payload []byte)

// Manager tracks live connections per chat room and fans messages out to
// everyone in a room.
type Manager struct {
	rooms      map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.rooms[client.RoomID] == nil {
					m.rooms[client.RoomID] = make(map[*Client]bool)
				}
				m.rooms[client.RoomID][client] = true
				m.mutex.Unlock()
				log.Printf("Client %s joined room %s", client.UserID, client.RoomID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if room, ok := m.rooms[client.RoomID]; ok && room[client] {
					delete(room, client)
					close(client.Send)
					if len(room) == 0 {
						delete(m.rooms, client.RoomID)
					}
				}
				m.mutex.Unlock()
				log.Printf("Client %s left room %s", client.UserID, client.RoomID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// BroadcastToRoom delivers a payload to every connection in the room. A
// client whose send buffer is full is dropped.
func (m *Manager) BroadcastToRoom(roomID string, payload []byte) {
	m.mutex.RLock()
	clients := make([]*Client, 0, len(m.rooms[roomID]))
	for client := range m.rooms[roomID] {
		clients = append(clients, client)
	}
	m.mutex.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			m.mutex.Lock()
			if room, ok := m.rooms[client.RoomID]; ok && room[client] {
				delete(room, client)
				close(client.Send)
			}
			m.mutex.Unlock()
		}
	}
}

// ReadPump reads frames from the connection and hands them to the handler
// until the peer goes away.
func (c *Client) ReadPump(m *Manager, handle IncomingHandler) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		if handle != nil {
			handle(c.RoomID, c.UserID, payload)
		}
	}
}

// WritePump sends queued payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := c.Conn.WriteMessage(websocket.TextMessage, payload)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
}
