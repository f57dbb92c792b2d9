package repository

import (
	"testing"
	"time"

	"github.com/Mellettan/invent/internal/database"
	"github.com/Mellettan/invent/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Description: name + " description", Price: price}
	require.NoError(t, NewProductRepository(db).Create(product))
	return product
}

func createWarehouse(t *testing.T, db *gorm.DB, name string) *models.Warehouse {
	t.Helper()
	warehouse := &models.Warehouse{Name: name, Location: name + " street"}
	require.NoError(t, NewWarehouseRepository(db).Create(warehouse))
	return warehouse
}

func createStockRow(t *testing.T, db *gorm.DB, warehouseID, productID uint, quantity int) *models.WarehouseProduct {
	t.Helper()
	row := &models.WarehouseProduct{WarehouseID: warehouseID, ProductID: productID, Quantity: quantity}
	require.NoError(t, NewWarehouseProductRepository(db).Create(row))
	return row
}

func createOrder(t *testing.T, db *gorm.DB, status models.OrderStatus, items ...models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{Status: string(status)}
	require.NoError(t, NewOrderRepository(db).Create(order))
	itemRepo := NewOrderItemRepository(db)
	for i := range items {
		items[i].OrderID = order.ID
		require.NoError(t, itemRepo.Create(&items[i]))
	}
	return order
}

func TestTimestampsSetOnCreate(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	require.False(t, product.CreatedAt.IsZero())
	require.False(t, product.UpdatedAt.IsZero())
}

func TestWarehouseDeleteCascadesStock(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	warehouse := createWarehouse(t, db, "Main")
	createStockRow(t, db, warehouse.ID, product.ID, 50)

	require.NoError(t, NewWarehouseRepository(db).Delete(warehouse.ID))

	var count int64
	require.NoError(t, db.Model(&models.WarehouseProduct{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProductDeleteCascadesStockAndOrderItems(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	warehouse := createWarehouse(t, db, "Main")
	createStockRow(t, db, warehouse.ID, product.ID, 50)
	createOrder(t, db, models.OrderPending, models.OrderItem{ProductID: product.ID, Quantity: 5})

	require.NoError(t, NewProductRepository(db).Delete(product.ID))

	var stockCount, itemCount int64
	require.NoError(t, db.Model(&models.WarehouseProduct{}).Count(&stockCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.Zero(t, stockCount)
	require.Zero(t, itemCount)
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	order := createOrder(t, db, models.OrderPending, models.OrderItem{ProductID: product.ID, Quantity: 5})

	require.NoError(t, NewOrderRepository(db).Delete(order.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.Zero(t, itemCount)
}

func TestCountBelowQuantity(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	warehouse := createWarehouse(t, db, "Main")
	createStockRow(t, db, warehouse.ID, product.ID, 5)
	createStockRow(t, db, warehouse.ID, product.ID, 9)
	createStockRow(t, db, warehouse.ID, product.ID, 10)
	createStockRow(t, db, warehouse.ID, product.ID, 40)

	count, err := NewWarehouseProductRepository(db).CountBelowQuantity(10)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestGetMostOrdered(t *testing.T) {
	db := newTestDB(t)

	brick := createProduct(t, db, "Brick", 100)
	beam := createProduct(t, db, "Beam", 200)
	createOrder(t, db, models.OrderPending,
		models.OrderItem{ProductID: brick.ID, Quantity: 1},
		models.OrderItem{ProductID: beam.ID, Quantity: 10},
	)
	createOrder(t, db, models.OrderCompleted,
		models.OrderItem{ProductID: brick.ID, Quantity: 2},
	)

	// Brick appears in two item rows, beam in one; row count wins over
	// quantity.
	mostOrdered, err := NewProductRepository(db).GetMostOrdered()
	require.NoError(t, err)
	require.Equal(t, brick.ID, mostOrdered.ID)
}

func TestGetMostOrderedNoProducts(t *testing.T) {
	db := newTestDB(t)

	_, err := NewProductRepository(db).GetMostOrdered()
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSumQuantityByProductID(t *testing.T) {
	db := newTestDB(t)

	brick := createProduct(t, db, "Brick", 100)
	beam := createProduct(t, db, "Beam", 200)
	createOrder(t, db, models.OrderPending,
		models.OrderItem{ProductID: brick.ID, Quantity: 3},
		models.OrderItem{ProductID: beam.ID, Quantity: 7},
	)
	createOrder(t, db, models.OrderCompleted,
		models.OrderItem{ProductID: brick.ID, Quantity: 4},
	)

	repo := NewOrderItemRepository(db)

	total, err := repo.SumQuantityByProductID(brick.ID)
	require.NoError(t, err)
	require.EqualValues(t, 7, total)

	total, err = repo.SumQuantityByProductID(beam.ID)
	require.NoError(t, err)
	require.EqualValues(t, 7, total)
}

func TestGetCompletedSince(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	createOrder(t, db, models.OrderPending, models.OrderItem{ProductID: product.ID, Quantity: 1})
	recent := createOrder(t, db, models.OrderCompleted, models.OrderItem{ProductID: product.ID, Quantity: 2})
	old := createOrder(t, db, models.OrderCompleted, models.OrderItem{ProductID: product.ID, Quantity: 3})

	lastMonth := time.Now().AddDate(0, -1, 0)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", old.ID).Update("created_at", lastMonth).Error)

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	orders, err := NewOrderRepository(db).GetCompletedSince(startOfMonth)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, recent.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	require.Equal(t, product.Name, orders[0].Items[0].Product.Name)
}

func TestCountByStatus(t *testing.T) {
	db := newTestDB(t)

	createOrder(t, db, models.OrderPending)
	createOrder(t, db, models.OrderPending)
	createOrder(t, db, models.OrderCompleted)

	repo := NewOrderRepository(db)

	pending, err := repo.CountByStatus(models.OrderPending)
	require.NoError(t, err)
	require.EqualValues(t, 2, pending)

	completed, err := repo.CountByStatus(models.OrderCompleted)
	require.NoError(t, err)
	require.EqualValues(t, 1, completed)
}

func TestGetByProductIDPreloadsWarehouse(t *testing.T) {
	db := newTestDB(t)

	product := createProduct(t, db, "Brick", 100)
	warehouse := createWarehouse(t, db, "Main")
	createStockRow(t, db, warehouse.ID, product.ID, 50)

	stock, err := NewWarehouseProductRepository(db).GetByProductID(product.ID)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	require.Equal(t, warehouse.Name, stock[0].Warehouse.Name)
}
