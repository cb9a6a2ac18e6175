package storage

import (
	"path/filepath"
	"strconv"
	"time"

	"foodtruck/apperr"
	"foodtruck/models"
)

var orderHeader = []string{
	"id", "customer_name", "customer_email", "customer_phone", "order_type",
	"address", "pickup_time", "item_summary", "allergy_text", "is_safe",
	"timestamp", "status", "completed_by", "subtotal", "fee", "tip", "total", "card_last4",
}

type OrderStore struct {
	table *Table[models.Order]
}

func NewOrderStore(dir string) *OrderStore {
	return &OrderStore{table: NewTable(filepath.Join(dir, "orders.csv"), orderHeader, encodeOrder, decodeOrder)}
}

func encodeOrder(o models.Order) []string {
	return []string{
		strconv.Itoa(o.ID), o.CustomerName, o.CustomerEmail, o.CustomerPhone, string(o.Type),
		o.Address, o.PickupTime, o.ItemSummary, o.AllergyNote, strconv.FormatBool(o.IsSafe),
		o.CreatedAt.Format(time.RFC3339), string(o.Status), o.CompletedBy,
		o.Subtotal.String(), o.DeliveryFee.String(), o.Tip.String(), o.Total.String(), o.CardLast4,
	}
}

func decodeOrder(row Row) models.Order {
	createdAt, _ := time.Parse(time.RFC3339, row["timestamp"])
	return models.Order{
		ID:            fieldInt(row["id"]),
		CustomerName:  row["customer_name"],
		CustomerEmail: row["customer_email"],
		CustomerPhone: row["customer_phone"],
		Type:          models.OrderType(row["order_type"]),
		Address:       row["address"],
		PickupTime:    row["pickup_time"],
		ItemSummary:   row["item_summary"],
		AllergyNote:   row["allergy_text"],
		IsSafe:        fieldBool(row["is_safe"]),
		CreatedAt:     createdAt,
		Status:        models.OrderStatus(row["status"]),
		CompletedBy:   row["completed_by"],
		Subtotal:      fieldDecimal(row["subtotal"]),
		DeliveryFee:   fieldDecimal(row["fee"]),
		Tip:           fieldDecimal(row["tip"]),
		Total:         fieldDecimal(row["total"]),
		CardLast4:     row["card_last4"],
	}
}

func (s *OrderStore) All() []models.Order {
	return s.table.Load()
}

func (s *OrderStore) FindByID(id int) (models.Order, error) {
	for _, o := range s.table.Load() {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, apperr.NotFoundf("order %d", id)
}

// Create assigns the next free ID under the table lock.
func (s *OrderStore) Create(o models.Order) (models.Order, error) {
	var created models.Order
	err := s.table.Mutate(func(recs []models.Order) ([]models.Order, error) {
		next := 1
		for _, have := range recs {
			if have.ID >= next {
				next = have.ID + 1
			}
		}
		o.ID = next
		created = o
		return append(recs, o), nil
	})
	return created, err
}

// Complete flips a pending order to Completed exactly once.
func (s *OrderStore) Complete(id int, completedBy string) (models.Order, error) {
	var done models.Order
	err := s.table.Mutate(func(recs []models.Order) ([]models.Order, error) {
		for i, have := range recs {
			if have.ID != id {
				continue
			}
			if have.Status == models.OrderStatusCompleted {
				return nil, apperr.Conflictf("order %d is already completed", id)
			}
			recs[i].Status = models.OrderStatusCompleted
			recs[i].CompletedBy = completedBy
			done = recs[i]
			return recs, nil
		}
		return nil, apperr.NotFoundf("order %d", id)
	})
	return done, err
}
