package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jobtasks/backend/domain"
	"github.com/jobtasks/backend/repository"
)

// RegisterInput carries the client-supplied registration fields.
type RegisterInput struct {
	UID         string
	Email       string
	DisplayName string
}

// RegisterResult reports the outcome of an idempotent registration.
// AlreadyExists means the uid was taken and nothing was written.
type RegisterResult struct {
	AlreadyExists bool
	InsertedID    primitive.ObjectID
}

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

// Register creates a user record once per distinct uid. Repeat calls with
// an existing uid succeed without mutating the stored record. The lookup
// and insert are not atomic; a concurrent insert that wins the race is
// caught by the unique index on uid and reported as AlreadyExists.
func (uc *UseCase) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if input.UID == "" || input.Email == "" {
		return nil, domain.ErrUserFieldsMissing
	}

	existing, err := uc.users.FindByUID(ctx, input.UID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegisterResult{AlreadyExists: true}, nil
	}

	user := &domain.User{
		UID:         input.UID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
	}

	id, err := uc.users.Create(ctx, user)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeAlreadyExists) {
			return &RegisterResult{AlreadyExists: true}, nil
		}
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("uid", input.UID))
	return &RegisterResult{InsertedID: id}, nil
}
