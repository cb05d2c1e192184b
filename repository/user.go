package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobtasks/backend/domain"
)

type UserRepository interface {
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
}
