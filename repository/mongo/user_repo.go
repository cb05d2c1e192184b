package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/jobtasks/backend/domain"
	"github.com/jobtasks/backend/repository"
)

type userRepository struct {
	collection *mongodrv.Collection
}

// NewUserRepository returns a Mongo-backed implementation of UserRepository.
func NewUserRepository(db *mongodrv.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

// FindByUID returns (nil, nil) when no record carries the given uid.
func (r *userRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapStoreErr("Failed to look up user", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// The unique index on uid turns a lost insert race into a
		// duplicate-key error; the caller treats that as AlreadyExists.
		if mongodrv.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, domain.ErrUserExists
		}
		return primitive.NilObjectID, wrapStoreErr("Failed to create user", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, wrapStoreErr("Failed to create user", errUnexpectedID)
	}
	return id, nil
}
