package events

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one back-office socket. Only its writePump touches conn for writes.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub pushes order events to every connected back-office websocket.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// HandleWebSocket upgrades GET /ws/orders. Auth runs before it in the chain.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.S().Warnw("ws upgrade failed", "err", err)
		return
	}
	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(cl)
	go h.writePump(cl)
	go h.readLoop(cl)
}

// readLoop drains client frames so close and ping are processed.
func (h *Hub) readLoop(cl *client) {
	defer h.remove(cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump owns socket writes until send is closed or a write fails.
func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for msg := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.S().Debugw("ws write failed, dropping client", "err", err)
			h.remove(cl)
			return
		}
	}
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) add(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	h.drop(cl)
	h.mu.Unlock()
}

// drop must run under h.mu. Closing send stops the writePump.
func (h *Hub) drop(cl *client) {
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues the event on every client without waiting for the socket.
// Clients whose queue is full are dropped.
func (h *Hub) Publish(_ context.Context, ev OrderEvent) error {
	msg, err := sonic.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- msg:
		default:
			logger.S().Infow("ws client too slow, dropping", "order", ev.Number)
			h.drop(cl)
		}
	}
	return nil
}
