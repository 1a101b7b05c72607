package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	serviceFixtures
	service usecase.UserUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := newServiceFixtures(t)
	service := NewUserService(fx.txManager, newDiscardLogger())

	return userServiceFixtures{
		serviceFixtures: fx,
		service:         service,
	}
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:       userID,
		Username: "Daniil",
		Email:    "daniil@example.com",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)
	})

	user, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestUserService_ListUsers_PassesFilterAndPagination(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	username := "Daniil"
	input := usecase.ListUsersInput{
		Count:    5,
		Page:     2,
		Username: &username,
	}
	expectedUsers := []*entity.User{
		{ID: uuid.New(), Username: "Daniil", Email: "daniil@example.com"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByFilter(ctx, repository.UserFilter{Username: &username}, 5, 2).
			Return(expectedUsers, int64(11), nil)
	})

	output, err := fx.service.ListUsers(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expectedUsers, output.Users)
	assert.Equal(t, int64(11), output.Total)
}

func TestUserService_CreateUser_DefaultsDescription(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.CreateUserInput{
		Username: "Daniil",
		Email:    "daniil@example.com",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Daniil", user.Username)
	assert.Equal(t, entity.DefaultDescription, user.Description)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_CreateUser_KeepsProvidedDescription(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.CreateUserInput{
		Username:    "Daniil",
		Email:       "daniil@example.com",
		Description: "keeps cats",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "keeps cats", user.Description)
}

func TestUserService_UpdateUser_PartialMerge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	newUsername := "Dan"
	input := usecase.UpdateUserInput{Username: &newUsername}

	existingUser := &entity.User{
		ID:          userID,
		Username:    "Daniil",
		Email:       "daniil@example.com",
		Description: "keeps cats",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Dan", user.Username)
	assert.Equal(t, "daniil@example.com", user.Email)
	assert.Equal(t, "keeps cats", user.Description)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
	})

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}
