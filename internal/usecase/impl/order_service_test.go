package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	serviceFixtures
	service usecase.OrderUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, newDiscardLogger())

	return orderServiceFixtures{
		serviceFixtures: fx,
		service:         service,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	orderID := uuid.New()
	productIDs := []uuid.UUID{uuid.New(), uuid.New()}

	address := &entity.Address{ID: addressID, UserID: userID}
	loadedOrder := &entity.Order{
		ID:        orderID,
		UserID:    userID,
		AddressID: addressID,
		Products: []*entity.Product{
			{ID: productIDs[0], Name: "keyboard"},
			{ID: productIDs[1], Name: "mouse"},
		},
	}

	// First Execute: ownership check, header insert, join rows.
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = orderID
			}).
			Return(nil)
		mockOrderRepo.EXPECT().AddProducts(ctx, orderID, productIDs).Return(nil)
	})

	// Second Execute: re-read with products after commit.
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(loadedOrder, nil)
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:     userID,
		AddressID:  addressID,
		ProductIDs: productIDs,
	})

	require.NoError(t, err)
	assert.Equal(t, loadedOrder, order)
	assert.Len(t, order.Products, 2)
}

func TestOrderService_CreateOrder_EmptyProductList(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	orderID := uuid.New()

	address := &entity.Address{ID: addressID, UserID: userID}
	loadedOrder := &entity.Order{ID: orderID, UserID: userID, AddressID: addressID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = orderID
			}).
			Return(nil)
		mockOrderRepo.EXPECT().AddProducts(ctx, orderID, []uuid.UUID(nil)).Return(nil)
	})

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(loadedOrder, nil)
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:    userID,
		AddressID: addressID,
	})

	require.NoError(t, err)
	assert.Empty(t, order.Products)
}

func TestOrderService_CreateOrder_AddressNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:    userID,
		AddressID: addressID,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestOrderService_CreateOrder_AddressOwnedByAnotherUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, UserID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:    userID,
		AddressID: addressID,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnership))
}

func TestOrderService_CreateOrder_BadProductRollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	orderID := uuid.New()
	productIDs := []uuid.UUID{uuid.New()}

	address := &entity.Address{ID: addressID, UserID: userID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = orderID
			}).
			Return(nil)
		mockOrderRepo.EXPECT().
			AddProducts(ctx, orderID, productIDs).
			Return(errors.Wrap(domainerrors.ErrConstraintViolation, "order references a nonexistent product"))
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:     userID,
		AddressID:  addressID,
		ProductIDs: productIDs,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrConstraintViolation))
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expectedOrder := &entity.Order{
		ID:       orderID,
		UserID:   uuid.New(),
		Products: []*entity.Product{{ID: uuid.New(), Name: "keyboard"}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(expectedOrder, nil)
	})

	order, err := fx.service.GetOrder(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	order, err := fx.service.GetOrder(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrdersByUser_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedOrders := []*entity.Order{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByUser(ctx, userID).Return(expectedOrders, nil)
	})

	orders, err := fx.service.ListOrdersByUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedOrders, orders)
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.DeleteOrder(ctx, orderID)

	require.NoError(t, err)
}
