// Package model contains the persistence representations of the domain
// entities and the mapping between the two. BSON concerns stay here so the
// domain entities remain storage-agnostic.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesapi/internal/domain/entity"
)

// CustomerModel is the MongoDB document shape of a customer.
type CustomerModel struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Surname     string               `bson:"surname"`
	Company     string               `bson:"company"`
	Emails      []string             `bson:"emails"`
	Age         int                  `bson:"age"`
	Category    string               `bson:"category"`
	Orders      []primitive.ObjectID `bson:"orders,omitempty"`
	Salesperson primitive.ObjectID   `bson:"salesperson,omitempty"`
}

// FromCustomerDomain maps a domain customer onto its document shape.
// Reference ids must be valid hex object ids.
func FromCustomerDomain(customer *entity.Customer) (*CustomerModel, error) {
	m := &CustomerModel{
		Name:     customer.Name,
		Surname:  customer.Surname,
		Company:  customer.Company,
		Emails:   customer.Emails,
		Age:      customer.Age,
		Category: customer.Category,
	}

	if customer.ID != "" {
		id, err := ParseID(customer.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	if customer.SalespersonID != "" {
		salesperson, err := ParseID(customer.SalespersonID)
		if err != nil {
			return nil, err
		}
		m.Salesperson = salesperson
	}

	for _, orderID := range customer.Orders {
		id, err := ParseID(orderID)
		if err != nil {
			return nil, err
		}
		m.Orders = append(m.Orders, id)
	}

	return m, nil
}

// ToCustomerDomain maps a customer document back to the pure domain entity.
func ToCustomerDomain(m *CustomerModel) *entity.Customer {
	customer := &entity.Customer{
		ID:       m.ID.Hex(),
		Name:     m.Name,
		Surname:  m.Surname,
		Company:  m.Company,
		Emails:   m.Emails,
		Age:      m.Age,
		Category: m.Category,
	}

	if !m.Salesperson.IsZero() {
		customer.SalespersonID = m.Salesperson.Hex()
	}

	for _, orderID := range m.Orders {
		customer.Orders = append(customer.Orders, orderID.Hex())
	}

	return customer
}
