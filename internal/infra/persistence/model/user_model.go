package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesapi/internal/domain/entity"
)

// UserModel is the MongoDB document shape of a user account.
type UserModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Login    string             `bson:"login"`
	Name     string             `bson:"name"`
	Password string             `bson:"password"` // bcrypt hash, never plaintext
	Role     string             `bson:"role"`
}

// FromUserDomain maps a domain user onto its document shape.
func FromUserDomain(user *entity.User) (*UserModel, error) {
	m := &UserModel{
		Login:    user.Login,
		Name:     user.Name,
		Password: user.PasswordHash,
		Role:     user.Role,
	}

	if user.ID != "" {
		id, err := ParseID(user.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}

// ToUserDomain maps a user document back to the pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Login:        m.Login,
		Name:         m.Name,
		PasswordHash: m.Password,
		Role:         m.Role,
	}
}
