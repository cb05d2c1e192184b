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

type taskRepository struct {
	collection *mongodrv.Collection
}

// NewTaskRepository returns a Mongo-backed implementation of TaskRepository.
func NewTaskRepository(db *mongodrv.Database) repository.TaskRepository {
	return &taskRepository{collection: db.Collection("tasks")}
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapStoreErr("Failed to fetch tasks", err)
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty collection renders as [] on the wire.
	tasks := []domain.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, wrapStoreErr("Failed to fetch tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	var task domain.Task
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, wrapStoreErr("Failed to fetch task", err)
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return primitive.NilObjectID, wrapStoreErr("Failed to add task", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, wrapStoreErr("Failed to add task", errUnexpectedID)
	}
	return id, nil
}

func (r *taskRepository) Update(ctx context.Context, id primitive.ObjectID, fields repository.TaskUpdate) error {
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"category":    fields.Category,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return wrapStoreErr("Failed to update task", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapStoreErr("Failed to delete task", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
