package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order events to restaurant back offices. One room per
// restaurant; a subscriber sees every order created for or transitioned in
// that restaurant. Implements services.OrderNotifier.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> connections
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	authz      *services.Authorizer
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type OrderEvent struct {
	Type         string             `json:"type"` // "order.created" | "order.status"
	RestaurantID uint               `json:"restaurantId"`
	OrderID      uint               `json:"orderId"`
	OrderNumber  string             `json:"orderNumber"`
	Status       entity.OrderStatus `json:"status"`
	Total        int64              `json:"total"`
	At           time.Time          `json:"at"`
}

func NewOrderHub(authz *services.Authorizer) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		authz:      authz,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.publish("order.created", o)
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	h.publish("order.status", o)
}

func (h *OrderHub) publish(eventType string, o *entity.Order) {
	ev := OrderEvent{
		Type:         eventType,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
		OrderNumber:  o.OrderNumber,
		Status:       o.Status,
		Total:        o.Total,
		At:           time.Now(),
	}
	// drop rather than block a checkout on a slow feed
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: dropping %s event for order %d", eventType, o.ID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSubscribe serves GET /ws/orders?restaurantId=&token=.
func (h *OrderHub) HandleSubscribe(c *gin.Context) {
	restID64, err := strconv.ParseUint(c.Query("restaurantId"), 10, 32)
	if err != nil || restID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "restaurantId is required"})
		return
	}
	restID := uint(restID64)

	actor := services.Actor{
		UserID:       utils.CurrentUserID(c),
		Role:         utils.CurrentRole(c),
		RestaurantID: utils.CurrentRestaurantID(c),
	}
	if err := h.authz.RequireRestaurant(actor, restID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restID}
	h.register <- sub
	go h.drain(sub)
}

// drain keeps reading so pings and close frames are processed; subscribers
// never send application data.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
