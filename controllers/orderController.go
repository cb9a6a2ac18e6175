package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"foodtruck/apperr"
	"foodtruck/helpers"
	"foodtruck/models"
	"foodtruck/ordering"
)

var deliveryFee = decimal.RequireFromString("3.50")

// Checkout turns the caller's cart into a pending order: prices the item
// summary against the menu, screens it against the allergy note, and
// clears the cart once the record is written.
func (a *App) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderType   string `json:"order_type" binding:"required"`
			Address     string `json:"address"`
			PickupTime  string `json:"pickup_time"`
			AllergyNote string `json:"allergy_note"`
			Tip         string `json:"tip"`
			CardNumber  string `json:"card_number"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := a.Users.FindByEmail(c.GetString("email"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		owner := user.Email
		summary := a.Carts.Summary(owner)
		if summary == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		orderType := models.OrderType(req.OrderType)
		if orderType != models.OrderTypeDelivery && orderType != models.OrderTypePickup {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_type must be delivery or pickup"})
			return
		}
		address := strings.TrimSpace(req.Address)
		if address == "" {
			address = user.Address
		}
		if orderType == models.OrderTypeDelivery && address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery orders need an address"})
			return
		}
		tip := decimal.Zero
		if req.Tip != "" {
			tip, err = decimal.NewFromString(req.Tip)
			if err != nil || tip.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "tip must be a non-negative decimal"})
				return
			}
		}

		menu := a.Menu.All()
		subtotal := ordering.PriceSummary(summary, menu)
		fee := decimal.Zero
		if orderType == models.OrderTypeDelivery {
			fee = deliveryFee
		}
		order := models.Order{
			CustomerName:  user.DisplayName(),
			CustomerEmail: user.Email,
			CustomerPhone: user.Phone,
			Type:          orderType,
			Address:       address,
			PickupTime:    req.PickupTime,
			ItemSummary:   summary,
			AllergyNote:   req.AllergyNote,
			IsSafe:        ordering.IsSafe(summary, req.AllergyNote, menu),
			CreatedAt:     time.Now().UTC(),
			Status:        models.OrderStatusPending,
			Subtotal:      subtotal,
			DeliveryFee:   fee,
			Tip:           tip,
			Total:         subtotal.Add(fee).Add(tip),
			CardLast4:     ordering.MaskCard(req.CardNumber),
		}
		created, err := a.Orders.Create(order)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		a.Carts.Clear(owner)
		a.hub.broadcast(wsMessage{Event: "newOrder", Payload: created})
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "order placed", "data": created})
	}
}

func (a *App) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": a.Orders.All()})
	}
}

func (a *App) CompleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be numeric"})
			return
		}
		completedBy := strings.TrimSpace(c.GetString("first_name") + " " + c.GetString("last_name"))
		done, err := a.Orders.Complete(id, completedBy)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		a.hub.broadcast(wsMessage{Event: "orderCompleted", Payload: done})
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "order completed", "data": done})
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// orderHub fans order events out to every connected staff dashboard.
type orderHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newOrderHub() *orderHub {
	return &orderHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *orderHub) broadcast(message wsMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("orderhub: marshal %s event: %v", message.Event, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// HandleOrderFeed upgrades the connection and keeps it registered until
// the client goes away. Websocket dials cannot carry the token header, so
// the token rides in the query string and is validated here before the
// upgrade; the feed carries full order records, so only staff may attach.
func (a *App) HandleOrderFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Query("token")
		if clientToken == "" {
			clientToken = c.Request.Header.Get("token")
		}
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authentication token provided"})
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if claims.Role != string(models.RoleStaff) {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("orderhub: upgrade: %v", err)
			return
		}
		defer conn.Close()

		a.hub.mu.Lock()
		a.hub.clients[conn] = true
		a.hub.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				a.hub.mu.Lock()
				delete(a.hub.clients, conn)
				a.hub.mu.Unlock()
				break
			}
		}
	}
}
