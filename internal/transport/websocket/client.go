package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type connection struct {
	conn *websocket.Conn

	// writeMu ensures only one goroutine writes to the socket at a time;
	// conn.WriteJSON is not thread-safe.
	writeMu sync.Mutex
}

// ConnectionManager tracks the websocket attached to each session.
type ConnectionManager struct {
	connections map[string]*connection // sessionID → connection
	mu          sync.RWMutex           // Protects the map itself
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*connection),
	}
}

// AddConnection attaches conn to a session, closing any socket that was
// attached before. A board is shown in one place at a time.
func (cm *ConnectionManager) AddConnection(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if old, exists := cm.connections[sessionID]; exists && old.conn != conn {
		old.conn.Close()
	}
	cm.connections[sessionID] = &connection{conn: conn}
}

// RemoveConnectionIfMatching avoids closing a NEW connection when cleaning
// up an OLD one for the same session.
func (cm *ConnectionManager) RemoveConnectionIfMatching(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if current, exists := cm.connections[sessionID]; exists && current.conn == conn {
		current.conn.Close()
		delete(cm.connections, sessionID)
	}
}

func (cm *ConnectionManager) IsConnected(sessionID string) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	_, exists := cm.connections[sessionID]
	return exists
}

// SendMessage writes message to the session's socket. Sessions without a
// socket are skipped.
func (cm *ConnectionManager) SendMessage(sessionID string, message ServerMessage) error {
	cm.mu.RLock()
	c, exists := cm.connections[sessionID]
	cm.mu.RUnlock()

	if !exists {
		return nil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}
