package handlers

import (
	"net/http"

	"github.com/Mellettan/invent/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Show renders the summary page: stock levels, order counts, monthly income
// and low-stock alerts. Read-only.
func (h *DashboardHandler) Show(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"products_amount":         summary.ProductsAmount,
		"warehouses_amount":       summary.WarehousesAmount,
		"active_orders_amount":    summary.ActiveOrdersAmount,
		"completed_orders_amount": summary.CompletedOrdersAmount,
		"most_popular_product":    summary.MostPopularProduct,
		"most_popular_quantity":   summary.MostPopularQuantity,
		"total_month_income":      summary.TotalMonthIncome,
		"low_stock_products":      summary.LowStockProducts,
		"total_users":             summary.TotalUsers,
	})
}
