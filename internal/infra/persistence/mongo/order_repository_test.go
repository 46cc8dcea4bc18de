package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesapi/internal/infra/persistence/model"
)

func TestOrderUpdateDocument_PreservesCreationTimestamp(t *testing.T) {
	m := &model.OrderModel{
		ID:          primitive.NewObjectID(),
		Items:       []model.LineItemModel{{Product: primitive.NewObjectID(), Quantity: 2}},
		Total:       150,
		Customer:    primitive.NewObjectID(),
		Salesperson: primitive.NewObjectID(),
		Status:      "COMPLETED",
	}

	doc := orderUpdateDocument(m)

	// A status change must not rewrite the timestamp stored at creation.
	assert.NotContains(t, doc, "createdAt")
	assert.NotContains(t, doc, "_id")

	assert.Equal(t, m.Items, doc["items"])
	assert.Equal(t, m.Total, doc["total"])
	assert.Equal(t, m.Customer, doc["customer"])
	assert.Equal(t, m.Status, doc["status"])
	assert.Equal(t, m.Salesperson, doc["salesperson"])
}

func TestOrderUpdateDocument_OmitsAbsentSalesperson(t *testing.T) {
	m := &model.OrderModel{
		ID:       primitive.NewObjectID(),
		Customer: primitive.NewObjectID(),
		Status:   "PENDING",
	}

	doc := orderUpdateDocument(m)

	assert.NotContains(t, doc, "salesperson")
}
