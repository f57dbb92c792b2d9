package services

import (
	"testing"

	"github.com/Mellettan/invent/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSummaryMonthIncomeCountsOnlyCompletedOrders(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	beam, err := env.products.CreateProduct("Beam", "", 200)
	require.NoError(t, err)

	// Pending order created this month: 100 x 5, excluded from income.
	_, err = env.orders.CreateOrder([]OrderLine{{ProductID: brick.ID, Quantity: 5}})
	require.NoError(t, err)

	// Completed order created this month: 200 x 2.
	completed, err := env.orders.CreateOrder([]OrderLine{{ProductID: beam.ID, Quantity: 2}})
	require.NoError(t, err)
	require.NoError(t, env.orders.UpdateStatus(completed, models.OrderCompleted))

	summary, err := env.dashboard.GetSummary()
	require.NoError(t, err)
	require.InDelta(t, 400.0, summary.TotalMonthIncome, 1e-9)
	require.EqualValues(t, 1, summary.ActiveOrdersAmount)
	require.EqualValues(t, 1, summary.CompletedOrdersAmount)
	require.EqualValues(t, 2, summary.ProductsAmount)
}

func TestSummaryMostPopularProduct(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	beam, err := env.products.CreateProduct("Beam", "", 200)
	require.NoError(t, err)

	// Brick appears in two item rows (quantities 3 and 4), beam in one.
	_, err = env.orders.CreateOrder([]OrderLine{
		{ProductID: brick.ID, Quantity: 3},
		{ProductID: beam.ID, Quantity: 50},
	})
	require.NoError(t, err)
	_, err = env.orders.CreateOrder([]OrderLine{{ProductID: brick.ID, Quantity: 4}})
	require.NoError(t, err)

	summary, err := env.dashboard.GetSummary()
	require.NoError(t, err)
	require.NotNil(t, summary.MostPopularProduct)
	require.Equal(t, brick.ID, summary.MostPopularProduct.ID)
	require.EqualValues(t, 7, summary.MostPopularQuantity)
}

func TestSummaryEmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.dashboard.GetSummary()
	require.NoError(t, err)
	require.Nil(t, summary.MostPopularProduct)
	require.Zero(t, summary.MostPopularQuantity)
	require.Zero(t, summary.TotalMonthIncome)
	require.Zero(t, summary.ProductsAmount)
}

func TestSummaryLowStockAndUsers(t *testing.T) {
	env := newTestEnv(t)

	brick, err := env.products.CreateProduct("Brick", "", 100)
	require.NoError(t, err)
	warehouse, err := env.warehouses.CreateWarehouse("Main", "Somewhere")
	require.NoError(t, err)

	_, err = env.products.AddToWarehouse(brick.ID, warehouse.ID, 3)
	require.NoError(t, err)
	_, err = env.products.AddToWarehouse(brick.ID, warehouse.ID, 25)
	require.NoError(t, err)

	_, err = env.users.CreateUser("admin", "admin@example.com", "secret")
	require.NoError(t, err)

	summary, err := env.dashboard.GetSummary()
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.LowStockProducts)
	require.EqualValues(t, 1, summary.TotalUsers)
	require.EqualValues(t, 1, summary.WarehousesAmount)
}
