// Package notify pushes transient storefront events (add-to-cart
// confirmations, order confirmations) to connected clients over websockets.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the wire form of one notification.
type Event struct {
	Type    string `json:"type"` // "item_added" or "order_confirmed"
	Message string `json:"message"`
}

// Hub fans events out to every connected websocket client. It satisfies
// cart.Notifier.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades the connection and keeps it registered until the client
// goes away.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// ItemAdded fires the add-to-cart confirmation carrying the item name.
func (h *Hub) ItemAdded(name string) {
	h.broadcast(Event{Type: "item_added", Message: name + " wurde dem Warenkorb hinzugefügt"})
}

// OrderConfirmed announces a completed order by its reference.
func (h *Hub) OrderConfirmed(orderRef string) {
	h.broadcast(Event{Type: "order_confirmed", Message: orderRef})
}

func (h *Hub) broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
