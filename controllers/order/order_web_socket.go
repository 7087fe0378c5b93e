package ordercontroller

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

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderFeedHandler streams order-placed events to connected admin
// dashboards.
//
// GET /admin/orders/feed
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

type orderPlacedEvent struct {
	Event       string  `json:"event"`
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total"`
}

// BroadcastOrderPlaced pushes a placed order to every connected feed
// client. Checkout calls this after the order is committed.
func BroadcastOrderPlaced(orderNumber string, total float64) {
	data, err := json.Marshal(orderPlacedEvent{
		Event:       "order_placed",
		OrderNumber: orderNumber,
		Total:       total,
	})
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
