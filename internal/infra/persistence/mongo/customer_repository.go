package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"
)

// customerRepository implements the domain CustomerRepository interface
// against the customers collection.
type customerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCustomerRepository(db *mongo.Database) repository.CustomerRepository {
	return &customerRepository{collection: db.Collection(CollectionCustomers)}
}

// Find retrieves a page of customers, optionally restricted to one salesperson.
func (repo *customerRepository) Find(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	query := bson.M{}
	if filter.SalespersonID != "" {
		salesperson, err := model.ParseID(filter.SalespersonID)
		if err != nil {
			return nil, err
		}
		query["salesperson"] = salesperson
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts.SetSkip(filter.Offset)
	}

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers")
	}
	defer cursor.Close(ctx)

	var customers []*entity.Customer
	for cursor.Next(ctx) {
		var m model.CustomerModel
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode customer")
		}
		customers = append(customers, model.ToCustomerDomain(&m))
	}

	return customers, errors.Wrap(cursor.Err(), "customer cursor failed")
}

// FindByID retrieves a single customer by its unique id.
func (repo *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	var m model.CustomerModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return model.ToCustomerDomain(&m), nil
}

// Count returns the number of customers, optionally restricted to one salesperson.
func (repo *customerRepository) Count(ctx context.Context, salespersonID string) (int64, error) {
	query := bson.M{}
	if salespersonID != "" {
		salesperson, err := model.ParseID(salespersonID)
		if err != nil {
			return 0, err
		}
		query["salesperson"] = salesperson
	}

	count, err := repo.collection.CountDocuments(ctx, query)

	return count, errors.Wrap(err, "failed to count customers")
}

// Create persists a new customer and writes the generated id back to the entity.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	m, err := model.FromCustomerDomain(customer)
	if err != nil {
		return err
	}

	result, err := repo.collection.InsertOne(ctx, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// Update overwrites an existing customer record.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	m, err := model.FromCustomerDomain(customer)
	if err != nil {
		return err
	}

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer record. Orders referencing it are left untouched.
func (repo *customerRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
