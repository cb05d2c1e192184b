package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task represents a tracked work item stored in the tasks collection.
// Timestamp is set by the service at creation time and never changes
// afterwards; ID is assigned by the store.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
