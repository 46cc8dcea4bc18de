package mongo

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"
)

const leaderboardSize = 10

// orderRepository implements the domain OrderRepository interface against the
// orders collection, including the leaderboard aggregations.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: db.Collection(CollectionOrders)}
}

// FindByCustomer retrieves all orders placed by one customer.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	customer, err := model.ParseID(customerID)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.collection.Find(ctx, bson.M{"customer": customer})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	for cursor.Next(ctx) {
		var m model.OrderModel
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode order")
		}
		orders = append(orders, model.ToOrderDomain(&m))
	}

	return orders, errors.Wrap(cursor.Err(), "order cursor failed")
}

// Create persists a new order and writes the generated id back to the entity.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m, err := model.FromOrderDomain(order)
	if err != nil {
		return err
	}

	result, err := repo.collection.InsertOne(ctx, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// Update applies the submitted fields to an existing order via $set. The
// creation timestamp is never part of the update document, so the value
// written at creation survives every later status change.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	m, err := model.FromOrderDomain(order)
	if err != nil {
		return err
	}

	result, err := repo.collection.UpdateByID(ctx, m.ID, bson.M{"$set": orderUpdateDocument(m)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// orderUpdateDocument lists the fields an order update may touch.
func orderUpdateDocument(m *model.OrderModel) bson.M {
	doc := bson.M{
		"items":    m.Items,
		"total":    m.Total,
		"customer": m.Customer,
		"status":   m.Status,
	}
	if !m.Salesperson.IsZero() {
		doc["salesperson"] = m.Salesperson
	}

	return doc
}

// leaderboardRow is the decoded shape of one aggregation result row. The
// joined display documents arrive as an array from $lookup.
type leaderboardRow struct {
	ID       primitive.ObjectID    `bson:"_id"`
	Total    float64               `bson:"total"`
	Customer []model.CustomerModel `bson:"customer,omitempty"`
	User     []model.UserModel     `bson:"user,omitempty"`
}

// TopCustomers ranks customers by summed COMPLETED-order revenue.
func (repo *orderRepository) TopCustomers(ctx context.Context) ([]*repository.LeaderboardEntry, error) {
	rows, err := repo.aggregateTop(ctx, "customer", CollectionCustomers)
	if err != nil {
		return nil, err
	}

	entries := make([]*repository.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entry := &repository.LeaderboardEntry{RefID: row.ID.Hex(), Total: row.Total}
		if len(row.Customer) > 0 {
			entry.Name = strings.TrimSpace(row.Customer[0].Name + " " + row.Customer[0].Surname)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// TopSalespeople ranks salespeople by summed COMPLETED-order revenue.
func (repo *orderRepository) TopSalespeople(ctx context.Context) ([]*repository.LeaderboardEntry, error) {
	rows, err := repo.aggregateTop(ctx, "salesperson", CollectionUsers)
	if err != nil {
		return nil, err
	}

	entries := make([]*repository.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entry := &repository.LeaderboardEntry{RefID: row.ID.Hex(), Total: row.Total}
		if len(row.User) > 0 {
			entry.Name = row.User[0].Name
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// aggregateTop runs the shared leaderboard pipeline: filter to COMPLETED
// orders, group by the reference field summing totals, join the display
// record, sort by total descending with reference id as the tie-break, and
// keep the top ten.
func (repo *orderRepository) aggregateTop(ctx context.Context, groupField, lookupFrom string) ([]leaderboardRow, error) {
	lookupAs := "customer"
	if lookupFrom == CollectionUsers {
		lookupAs = "user"
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "status", Value: string(entity.StatusCompleted)},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + groupField},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: lookupFrom},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: lookupAs},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "total", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: leaderboardSize}},
	}

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run leaderboard aggregation")
	}
	defer cursor.Close(ctx)

	var rows []leaderboardRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode leaderboard rows")
	}

	return rows, nil
}
