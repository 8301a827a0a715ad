package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client is one WebSocket connection, watching at most one game.
type Client struct {
	conn   *websocket.Conn
	send   chan []byte
	gameID string
}

// Hub tracks connected clients by the game they watch.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	games   map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		games:   make(map[string]map[*Client]struct{}),
	}
}

func (that *Hub) Register(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[client] = struct{}{}
}

// Unregister - forgets the client and closes its send channel.
func (that *Hub) Unregister(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.drop(client)
}

// Watch - moves the client to gameID.
func (that *Hub) Watch(client *Client, gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; !ok {
		return
	}

	that.leave(client)

	if that.games[gameID] == nil {
		that.games[gameID] = make(map[*Client]struct{})
	}
	that.games[gameID][client] = struct{}{}
	client.gameID = gameID
}

// Send - queues data for one client. A client that cannot keep up is dropped.
func (that *Hub) Send(client *Client, data []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.enqueue(client, data)
}

// Broadcast - queues data for every client watching gameID.
func (that *Hub) Broadcast(gameID string, data []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for client := range that.games[gameID] {
		that.enqueue(client, data)
	}
}

// watchers - number of clients watching gameID.
func (that *Hub) watchers(gameID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.games[gameID])
}

func (that *Hub) enqueue(client *Client, data []byte) {
	if _, ok := that.clients[client]; !ok {
		return
	}

	select {
	case client.send <- data:
	default:
		that.drop(client)
	}
}

func (that *Hub) drop(client *Client) {
	if _, ok := that.clients[client]; !ok {
		return
	}

	that.leave(client)
	delete(that.clients, client)
	close(client.send)
}

func (that *Hub) leave(client *Client) {
	if client.gameID == "" {
		return
	}

	if watchers, ok := that.games[client.gameID]; ok {
		delete(watchers, client)
		if len(watchers) == 0 {
			delete(that.games, client.gameID)
		}
	}
	client.gameID = ""
}

// writePump - pumps queued messages to the connection, one frame each.
func (that *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
