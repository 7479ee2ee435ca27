package folio

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// reloadHub tracks open livereload websocket connections so content changes
// can push a refresh to every viewing browser. Dev-mode only.
type reloadHub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

var reloadUpgrader = websocket.Upgrader{
	// The livereload endpoint only ever pushes a refresh signal to pages we
	// served; origin checking buys nothing in a local dev loop.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *reloadHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast tells every connected page to reload. Connections that fail to
// accept the write are dropped.
func (h *reloadHub) Broadcast() {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			h.remove(conn)
		}
	}
}

func (a *App) handleLiveReload(c echo.Context) error {
	conn, err := reloadUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	a.reload.add(conn)

	// Reads are discarded; the loop exists to notice the peer going away.
	go func() {
		defer a.reload.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}
