package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobtasks/backend/domain"
	"github.com/jobtasks/backend/repository"
)

type memTaskRepo struct {
	records map[primitive.ObjectID]domain.Task
	order   []primitive.ObjectID
	failAll error
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{records: make(map[primitive.ObjectID]domain.Task)}
}

func (f *memTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	tasks := []domain.Task{}
	for _, id := range f.order {
		tasks = append(tasks, f.records[id])
	}
	return tasks, nil
}

func (f *memTaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	task, ok := f.records[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (f *memTaskRepo) Create(ctx context.Context, task *domain.Task) (primitive.ObjectID, error) {
	if f.failAll != nil {
		return primitive.NilObjectID, f.failAll
	}
	id := primitive.NewObjectID()
	stored := *task
	stored.ID = id
	f.records[id] = stored
	f.order = append(f.order, id)
	return id, nil
}

func (f *memTaskRepo) Update(ctx context.Context, id primitive.ObjectID, fields repository.TaskUpdate) error {
	if f.failAll != nil {
		return f.failAll
	}
	task, ok := f.records[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Title = fields.Title
	task.Description = fields.Description
	task.Category = fields.Category
	f.records[id] = task
	return nil
}

func (f *memTaskRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.failAll != nil {
		return f.failAll
	}
	if _, ok := f.records[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type memUserRepo struct {
	byUID map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUID: make(map[string]domain.User)}
}

func (f *memUserRepo) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	user, ok := f.byUID[uid]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *memUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, ok := f.byUID[user.UID]; ok {
		return primitive.NilObjectID, domain.ErrUserExists
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	f.byUID[user.UID] = stored
	return stored.ID, nil
}
