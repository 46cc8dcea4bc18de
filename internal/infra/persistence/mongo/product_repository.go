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

// productRepository implements the domain ProductRepository interface
// against the products collection.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{collection: db.Collection(CollectionProducts)}
}

// Find retrieves a page of products; sold-out items can be filtered out.
func (repo *productRepository) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := bson.M{}
	if filter.HideSoldOut {
		query["stock"] = bson.M{"$gt": 0}
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
		return nil, errors.Wrap(err, "failed to find products")
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	for cursor.Next(ctx) {
		var m model.ProductModel
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product")
		}
		products = append(products, model.ToProductDomain(&m))
	}

	return products, errors.Wrap(cursor.Err(), "product cursor failed")
}

// FindByID retrieves a single product by its unique id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	var m model.ProductModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&m), nil
}

// Count returns the total number of products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})

	return count, errors.Wrap(err, "failed to count products")
}

// Create persists a new product and writes the generated id back to the entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m, err := model.FromProductDomain(product)
	if err != nil {
		return err
	}

	result, err := repo.collection.InsertOne(ctx, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// Update overwrites an existing product record.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	m, err := model.FromProductDomain(product)
	if err != nil {
		return err
	}

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product record.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies an atomic $inc to the product's stock. Negative results
// are allowed; there is no floor.
func (repo *productRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	result, err := repo.collection.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust stock")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
