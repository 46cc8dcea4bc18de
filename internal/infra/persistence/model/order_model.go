package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesapi/internal/domain/entity"
)

// OrderModel is the MongoDB document shape of an order.
type OrderModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Items       []LineItemModel    `bson:"items"`
	Total       float64            `bson:"total"`
	CreatedAt   time.Time          `bson:"createdAt"`
	Customer    primitive.ObjectID `bson:"customer"`
	Salesperson primitive.ObjectID `bson:"salesperson,omitempty"`
	Status      string             `bson:"status"`
}

// LineItemModel is one (product reference, quantity) pair of an order document.
type LineItemModel struct {
	Product  primitive.ObjectID `bson:"product"`
	Quantity int                `bson:"quantity"`
}

// FromOrderDomain maps a domain order onto its document shape.
func FromOrderDomain(order *entity.Order) (*OrderModel, error) {
	m := &OrderModel{
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		Status:    string(order.Status),
	}

	if order.ID != "" {
		id, err := ParseID(order.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	customer, err := ParseID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	m.Customer = customer

	if order.SalespersonID != "" {
		salesperson, err := ParseID(order.SalespersonID)
		if err != nil {
			return nil, err
		}
		m.Salesperson = salesperson
	}

	for _, item := range order.Items {
		product, err := ParseID(item.ProductID)
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, LineItemModel{Product: product, Quantity: item.Quantity})
	}

	return m, nil
}

// ToOrderDomain maps an order document back to the pure domain entity.
func ToOrderDomain(m *OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         m.ID.Hex(),
		Total:      m.Total,
		CreatedAt:  m.CreatedAt,
		CustomerID: m.Customer.Hex(),
		Status:     entity.OrderStatus(m.Status),
	}

	if !m.Salesperson.IsZero() {
		order.SalespersonID = m.Salesperson.Hex()
	}

	for _, item := range m.Items {
		order.Items = append(order.Items, entity.LineItem{
			ProductID: item.Product.Hex(),
			Quantity:  item.Quantity,
		})
	}

	return order
}
