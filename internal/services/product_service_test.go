package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddToWarehouseAllowsDuplicateRows(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	warehouse, err := env.warehouses.CreateWarehouse("Main", "Somewhere")
	require.NoError(t, err)

	first, err := env.products.AddToWarehouse(brick.ID, warehouse.ID, 20)
	require.NoError(t, err)
	second, err := env.products.AddToWarehouse(brick.ID, warehouse.ID, 20)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	stock, err := env.products.GetStock(brick.ID)
	require.NoError(t, err)
	require.Len(t, stock, 2)
}

func TestAddToWarehouseUnknownWarehouse(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)

	_, err = env.products.AddToWarehouse(brick.ID, 42, 20)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTotalStockMatchesSumOfRows(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	north, err := env.warehouses.CreateWarehouse("North", "Somewhere")
	require.NoError(t, err)
	south, err := env.warehouses.CreateWarehouse("South", "Elsewhere")
	require.NoError(t, err)

	_, err = env.products.AddToWarehouse(brick.ID, north.ID, 50)
	require.NoError(t, err)
	_, err = env.products.AddToWarehouse(brick.ID, south.ID, 30)
	require.NoError(t, err)

	stock, err := env.products.GetStock(brick.ID)
	require.NoError(t, err)
	require.Equal(t, 80, TotalStock(stock))
}

func TestUpdateStockQuantitiesKeepsAbsentRows(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	warehouse, err := env.warehouses.CreateWarehouse("Main", "Somewhere")
	require.NoError(t, err)

	first, err := env.products.AddToWarehouse(brick.ID, warehouse.ID, 50)
	require.NoError(t, err)
	second, err := env.products.AddToWarehouse(brick.ID, warehouse.ID, 30)
	require.NoError(t, err)

	require.NoError(t, env.products.UpdateStockQuantities(brick.ID, map[uint]int{first.ID: 7}))

	stock, err := env.products.GetStock(brick.ID)
	require.NoError(t, err)
	quantities := map[uint]int{}
	for i := range stock {
		quantities[stock[i].ID] = stock[i].Quantity
	}
	require.Equal(t, 7, quantities[first.ID])
	require.Equal(t, 30, quantities[second.ID])
}

func TestUpdatePricePersists(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)

	require.NoError(t, env.products.UpdatePrice(brick, 250.50))

	loaded, err := env.products.GetProductByID(brick.ID)
	require.NoError(t, err)
	require.InDelta(t, 250.50, loaded.Price, 1e-9)
}
