package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"
)

// userRepository implements the domain UserRepository interface against the
// users collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(CollectionUsers)}
}

// FindByLogin retrieves a single user by their unique login name.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	var m model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"login": login}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return model.ToUserDomain(&m), nil
}

// Create persists a new user. A duplicate login, whether caught by the unique
// index or by a concurrent insert, surfaces as the domain duplicate-login error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m, err := model.FromUserDomain(user)
	if err != nil {
		return err
	}

	result, err := repo.collection.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrDuplicateLogin.WrapMessage("login " + user.Login + " already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}
