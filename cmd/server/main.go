package main

import (
	"log"
	"time"

	"github.com/Mellettan/invent/internal/config"
	"github.com/Mellettan/invent/internal/database"
	"github.com/Mellettan/invent/internal/handlers"
	"github.com/Mellettan/invent/internal/migrations"
	"github.com/Mellettan/invent/internal/repository"
	"github.com/Mellettan/invent/internal/routes"
	"github.com/Mellettan/invent/internal/services"
	"github.com/Mellettan/invent/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default data
	if err := migrations.SeedDefaultData(db, cfg); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	// Initialize session store
	sessions, err := session.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	warehouseProductRepo := repository.NewWarehouseProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, warehouseRepo, warehouseProductRepo)
	warehouseService := services.NewWarehouseService(warehouseRepo, warehouseProductRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, productRepo)
	dashboardService := services.NewDashboardService(productRepo, warehouseRepo, warehouseProductRepo, orderRepo, orderItemRepo, userRepo)

	// Initialize handlers
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authHandler := handlers.NewAuthHandler(userService, sessions, sessionTTL)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	orderHandler := handlers.NewOrderHandler(orderService, productService)
	productHandler := handlers.NewProductHandler(productService, warehouseService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)

	// Setup routes
	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*.html")
	routes.SetupRoutes(router, sessions, authHandler, dashboardHandler, orderHandler, productHandler, warehouseHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
