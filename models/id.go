package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh record identifier. Identifiers have the BSON ObjectID
// layout (24 hex characters) regardless of the storage backend in use, so
// that the notion of a well-formed id is the same everywhere.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is a well-formed record identifier.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// Now returns the current UTC time truncated to millisecond precision, which
// is the resolution of BSON datetimes. Records stamped with it compare equal
// after a round trip through any store.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
