// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByFilter returns one page of users plus the total count, both computed
// against the same equality predicate so the total is a reliable bound for
// pagination. Ordering is store-default; callers must not rely on it being
// stable across writes.
func (repo *userRepository) FindByFilter(ctx context.Context, filter repository.UserFilter, limit, page int) ([]*entity.User, int64, error) {
	// Chained *gorm.DB values are not safe to reuse across finishers, so the
	// count and the page each get their own chain built from the same filter.
	var total int64
	err := applyUserFilter(repo.db.WithContext(ctx).Model(&model.UserModel{}), filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users by filter")
	}

	var userModels []*model.UserModel
	err = applyUserFilter(repo.db.WithContext(ctx).Model(&model.UserModel{}), filter).
		Offset(limit * page).
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find users by filter")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Back-fill the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves the full user entity. The partial-merge of update payloads
// happens in the service layer; by the time the entity reaches here it is
// complete.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.CreatedAt = user.CreatedAt

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user by ID. An absent ID is a no-op; a user with
// dependent addresses or orders fails the RESTRICT constraint.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{}).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDependentsExist.WrapMessage("user still has addresses or orders")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

// applyUserFilter translates the enumerated filter into WHERE clauses.
// Every field maps to an equality comparison on a known column.
func applyUserFilter(query *gorm.DB, filter repository.UserFilter) *gorm.DB {
	if filter.Username != nil {
		query = query.Where("username = ?", *filter.Username)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.Description != nil {
		query = query.Where("description = ?", *filter.Description)
	}

	return query
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		Description: data.Description,
	}
}
