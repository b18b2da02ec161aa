// file: radixmap/httpapi/watch.go
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type watchHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

var hub = &watchHub{clients: make(map[*websocket.Conn]struct{})}

// handleWatch upgrades to a WebSocket connection that receives a
// reloadEvent every time /reload swaps in a new map.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	hub.mu.Lock()
	hub.clients[conn] = struct{}{}
	hub.mu.Unlock()

	defer func() {
		hub.mu.Lock()
		delete(hub.clients, conn)
		hub.mu.Unlock()
		_ = conn.Close()
	}()

	// Drain (and discard) client frames until the connection closes, so a
	// client sending pings doesn't pile up in the kernel buffer.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

type reloadEvent struct {
	Entries int `json:"entries"`
}

func broadcastReload(entries int) {
	msg, err := json.Marshal(reloadEvent{Entries: entries})
	if err != nil {
		return
	}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for conn := range hub.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}
