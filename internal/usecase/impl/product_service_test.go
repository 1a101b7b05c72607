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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	serviceFixtures
	service usecase.ProductUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := newServiceFixtures(t)
	service := NewProductService(fx.txManager, newDiscardLogger())

	return productServiceFixtures{
		serviceFixtures: fx,
		service:         service,
	}
}

func TestProductService_ListProducts_ReturnsPageAndTotal(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := usecase.ListProductsInput{Count: 10, Page: 0}
	expectedProducts := []*entity.Product{
		{ID: uuid.New(), Name: "keyboard", Price: decimal.NewFromFloat(49.99), Count: 3},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindAll(ctx, 10, 0).Return(expectedProducts, nil)
		mockProductRepo.EXPECT().Count(ctx).Return(int64(27), nil)
	})

	output, err := fx.service.ListProducts(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expectedProducts, output.Products)
	assert.Equal(t, int64(27), output.Total)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := usecase.CreateProductInput{
		Name:  "keyboard",
		Price: decimal.NewFromFloat(49.99),
		Count: 3,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				product.ID = uuid.New()
			}).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "keyboard", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(49.99)))
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_UpdateProduct_PartialMerge(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	newPrice := decimal.NewFromFloat(59.99)
	input := usecase.UpdateProductInput{Price: &newPrice}

	existingProduct := &entity.Product{
		ID:    productID,
		Name:  "keyboard",
		Price: decimal.NewFromFloat(49.99),
		Count: 3,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
		mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	assert.True(t, product.Price.Equal(newPrice))
	assert.Equal(t, "keyboard", product.Name)
	assert.Equal(t, 3, product.Count)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct_StillReferenced(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().
			Delete(ctx, productID).
			Return(errors.Wrap(domainerrors.ErrDependentsExist, "product is referenced by orders"))
	})

	err := fx.service.DeleteProduct(ctx, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDependentsExist))
}
