// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface. It is a thin orchestration
// layer: every operation delegates to the repository inside a transaction,
// with no business rule beyond the description default and partial-merge.
type userService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns one page of users matching the enumerated filter, plus
// the total count over the same filter.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	filter := repository.UserFilter{
		Username:    input.Username,
		Email:       input.Email,
		Description: input.Description,
	}

	var output *usecase.UserListOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, total, err := repoFactory.UserRepo().FindByFilter(ctx, filter, input.Count, input.Page)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		output = &usecase.UserListOutput{Users: users, Total: total}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

// CreateUser persists a new user and returns it with generated ID and timestamps.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	srv.logger.Debug("Creating user", "username", input.Username)

	user := &entity.User{
		Username:    input.Username,
		Email:       input.Email,
		Description: input.Description,
	}
	if user.Description == "" {
		user.Description = entity.DefaultDescription
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser applies a partial update: fields absent from the input are left
// untouched, present fields overwrite. The returned entity carries the
// refreshed UpdatedAt.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	srv.logger.Debug("Updating user", "id", id)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Username != nil {
			found.Username = *input.Username
		}
		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.Description != nil {
			found.Description = *input.Description
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user. Deleting an absent user is a no-op; a user with
// dependent addresses or orders fails with a conflict.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.logger.Debug("Deleting user", "id", id)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Delete(ctx, id)
	})
}
