package postgres

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway in-memory sqlite database with foreign keys
// enforced, which is what the RESTRICT/CASCADE assertions depend on. Each
// test gets its own named database so parallel tests do not share state.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, SetupJoinTables(db))
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AddressModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderProductModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:    username,
		Email:       email,
		Description: entity.DefaultDescription,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedAddress(t *testing.T, db *gorm.DB, user *entity.User) *entity.Address {
	t.Helper()

	address := &entity.Address{
		UserID:  user.ID,
		Street:  "1 Main St",
		City:    "Springfield",
		State:   entity.DefaultState,
		Country: "USA",
	}
	require.NoError(t, NewAddressRepository(db).Create(context.Background(), address))

	return address
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Count: 1,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}
