package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh 24-hex ObjectID string.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsID reports whether s is a well formed ObjectID hex string.
func IsID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
