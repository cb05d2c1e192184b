package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseTaskID decodes a path-supplied task identifier into the store's
// native ObjectID form. Malformed input yields ErrInvalidTaskID; callers
// must check the error before touching the store.
func ParseTaskID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidTaskID
	}
	return id, nil
}
