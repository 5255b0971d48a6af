package server

import (
	"net/http"
	"time"
)

// statusWS streams the status snapshot to the client once per second
// until the client disconnects.
func (a *App) statusWS(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn(r.Context(), "WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// The read loop drains control frames and detects disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(a.currentStatus()); err != nil {
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteJSON(a.currentStatus()); err != nil {
				return
			}
		}
	}
}
