package task

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jobtasks/backend/domain"
	"github.com/jobtasks/backend/repository"
)

// CreateInput carries the client-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Description string
	Category    string
}

// UpdateInput carries the client-supplied fields for a partial update.
type UpdateInput struct {
	Title       string
	Description string
	Category    string
}

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}

func (uc *UseCase) GetTask(ctx context.Context, rawID string) (*domain.Task, error) {
	id, err := domain.ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) CreateTask(ctx context.Context, input CreateInput) (primitive.ObjectID, error) {
	if input.Title == "" || input.Category == "" {
		return primitive.NilObjectID, domain.ErrTaskFieldsMissing
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Timestamp:   uc.now(),
	}

	id, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return primitive.NilObjectID, err
	}
	uc.logger.Info("task created", zap.String("task_id", id.Hex()), zap.String("category", task.Category))
	return id, nil
}

// UpdateTask requires title and description; category is optional here
// even though CreateTask requires it.
func (uc *UseCase) UpdateTask(ctx context.Context, rawID string, input UpdateInput) error {
	id, err := domain.ParseTaskID(rawID)
	if err != nil {
		return err
	}
	if input.Title == "" || input.Description == "" {
		return domain.ErrTaskUpdateMissing
	}

	fields := repository.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}
	if err := uc.tasks.Update(ctx, id, fields); err != nil {
		return err
	}
	uc.logger.Info("task updated", zap.String("task_id", id.Hex()))
	return nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, rawID string) error {
	id, err := domain.ParseTaskID(rawID)
	if err != nil {
		return err
	}
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.String("task_id", id.Hex()))
	return nil
}
