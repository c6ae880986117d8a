package daemon

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/events"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The daemon listens on a unix socket, so the usual origin checks do not
	// apply.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// WSMessage is the frame sent to websocket clients.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// WSClient wraps one websocket connection with a write lock.
type WSClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

// WSHub tracks connected websocket clients.
type WSHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewWSHub() *WSHub {
	return &WSHub{clients: make(map[*WSClient]struct{})}
}

func (h *WSHub) Add(conn *websocket.Conn) *WSClient {
	c := &WSClient{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *WSHub) Remove(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *WSHub) Broadcast(msg WSMessage) {
	// Marshal once for consistency across clients
	b, _ := json.Marshal(msg)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.send(b)
	}
}

// bridgeEventsToWebsocket forwards every hub event to connected websocket
// clients as a WSMessage.
func bridgeEventsToWebsocket(hub *events.Hub, ws *WSHub) {
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)
	for ev := range ch {
		ws.Broadcast(WSMessage{Type: ev.Name, Data: ev.Data})
	}
}

// streamWebsocket upgrades the connection and keeps it registered until the
// peer goes away.
func streamWebsocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := wsHub.Add(conn)
	defer wsHub.Remove(client)

	// Drain reads so we notice the peer closing. Inbound frames are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
