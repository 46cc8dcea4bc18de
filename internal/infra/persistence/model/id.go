package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainerrors "salesapi/internal/domain/errors"
)

// ParseID converts a hex string id into an ObjectID, surfacing malformed
// input as the domain invalid-id error.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WrapMessage("not a valid object id: " + id)
	}

	return oid, nil
}
