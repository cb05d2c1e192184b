package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an external identity registered with the service.
// UID is the external-identity key; at most one record exists per UID.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID         string             `bson:"uid" json:"uid"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
}
