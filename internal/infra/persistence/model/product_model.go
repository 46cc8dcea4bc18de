package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesapi/internal/domain/entity"
)

// ProductModel is the MongoDB document shape of a product.
type ProductModel struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Stock int                `bson:"stock"`
}

// FromProductDomain maps a domain product onto its document shape.
func FromProductDomain(product *entity.Product) (*ProductModel, error) {
	m := &ProductModel{
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}

	if product.ID != "" {
		id, err := ParseID(product.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}

// ToProductDomain maps a product document back to the pure domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:    m.ID.Hex(),
		Name:  m.Name,
		Price: m.Price,
		Stock: m.Stock,
	}
}
