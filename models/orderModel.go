package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Order is immutable after checkout except for Status/CompletedBy, which
// staff flip exactly once when fulfilling it.
type Order struct {
	ID            int             `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Type          OrderType       `json:"order_type" validate:"required,eq=delivery|eq=pickup"`
	Address       string          `json:"address"`
	PickupTime    string          `json:"pickup_time"`
	ItemSummary   string          `json:"item_summary"`
	AllergyNote   string          `json:"allergy_note"`
	IsSafe        bool            `json:"is_safe"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        OrderStatus     `json:"status"`
	CompletedBy   string          `json:"completed_by"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Tip           decimal.Decimal `json:"tip"`
	Total         decimal.Decimal `json:"total"`
	CardLast4     string          `json:"card_last4"`
}
