package routes

import (
	"github.com/Mellettan/invent/internal/handlers"
	"github.com/Mellettan/invent/internal/middleware"
	"github.com/Mellettan/invent/internal/session"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the login pages and the session-gated inventory
// pages on the router.
func SetupRoutes(
	router *gin.Engine,
	sessions session.Store,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	orderHandler *handlers.OrderHandler,
	productHandler *handlers.ProductHandler,
	warehouseHandler *handlers.WarehouseHandler,
) {
	// Unsupported verbs answer 405 rather than 404.
	router.HandleMethodNotAllowed = true

	router.GET("/login/", authHandler.ShowLogin)
	router.POST("/login/", authHandler.Login)
	router.GET("/logout/", authHandler.Logout)

	authed := router.Group("/", middleware.RequireSession(sessions))
	{
		authed.GET("", dashboardHandler.Show)

		authed.GET("/orders/", orderHandler.List)
		authed.GET("/orders/:id", orderHandler.Detail)
		authed.POST("/orders/:id", orderHandler.Update)
		authed.GET("/create_order/", orderHandler.CreateForm)
		authed.POST("/create_order/", orderHandler.Create)

		authed.GET("/products/", productHandler.List)
		authed.GET("/products/:id", productHandler.Detail)
		authed.POST("/products/:id", productHandler.Update)
		authed.GET("/create_product/", productHandler.CreateForm)
		authed.POST("/create_product/", productHandler.Create)

		authed.GET("/warehouses/", warehouseHandler.List)
		authed.GET("/warehouses/:id", warehouseHandler.Detail)
		authed.POST("/warehouses/:id", warehouseHandler.Update)
		authed.GET("/create_warehouse/", warehouseHandler.CreateForm)
		authed.POST("/create_warehouse/", warehouseHandler.Create)
	}
}
