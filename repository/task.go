package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobtasks/backend/domain"
)

// TaskUpdate carries the fields a partial update may set. ID and
// Timestamp are deliberately absent; they are immutable after creation.
type TaskUpdate struct {
	Title       string
	Description string
	Category    string
}

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields TaskUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
