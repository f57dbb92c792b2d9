package services

import (
	"testing"

	"github.com/Mellettan/invent/internal/database"
	"github.com/Mellettan/invent/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles a fresh in-memory database with the full service stack.
type testEnv struct {
	db         *gorm.DB
	products   ProductService
	warehouses WarehouseService
	orders     OrderService
	dashboard  DashboardService
	users      UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	warehouseProductRepo := repository.NewWarehouseProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	return &testEnv{
		db:         db,
		products:   NewProductService(productRepo, warehouseRepo, warehouseProductRepo),
		warehouses: NewWarehouseService(warehouseRepo, warehouseProductRepo),
		orders:     NewOrderService(orderRepo, orderItemRepo, productRepo),
		dashboard:  NewDashboardService(productRepo, warehouseRepo, warehouseProductRepo, orderRepo, orderItemRepo, userRepo),
		users:      NewUserService(userRepo),
	}
}
