package model

import "sync"

// Connection is the write side of a spectator's websocket.
type Connection interface {
	WriteJSON(v interface{}) error
	Close() error
}

// SpectatorConn allows a single writer at a time on a Connection. The game
// broadcasts and the websocket read loop both write to it.
type SpectatorConn struct {
	mu   sync.Mutex
	conn Connection
}

// NewSpectatorConn wraps conn, or returns it unchanged if it is already a
// SpectatorConn.
func NewSpectatorConn(conn Connection) *SpectatorConn {
	if sc, ok := conn.(*SpectatorConn); ok {
		return sc
	}
	return &SpectatorConn{conn: conn}
}

func (sc *SpectatorConn) WriteJSON(v interface{}) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.conn.WriteJSON(v)
}

// Close is not serialized with writes so it can interrupt a stuck one.
func (sc *SpectatorConn) Close() error {
	return sc.conn.Close()
}

// wraps reports whether conn is sc or the connection inside it.
func (sc *SpectatorConn) wraps(conn Connection) bool {
	if other, ok := conn.(*SpectatorConn); ok {
		return other == sc
	}
	return sc.conn == conn
}

// GameConnections are the spectators watching a specific game.
type GameConnections struct {
	connections map[string]*SpectatorConn // spectatorID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*SpectatorConn),
	}
}

func (gc *GameConnections) snapshot() map[string]*SpectatorConn {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	active := make(map[string]*SpectatorConn, len(gc.connections))
	for id, conn := range gc.connections {
		active[id] = conn
	}
	return active
}

// remove drops id only while it still maps to conn.
func (gc *GameConnections) remove(id string, conn Connection) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if current, ok := gc.connections[id]; ok && current.wraps(conn) {
		delete(gc.connections, id)
	}
}

func (gc *GameConnections) Len() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.connections)
}
