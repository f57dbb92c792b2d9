package main

import (
	"fmt"
	"log"

	"github.com/Mellettan/invent/internal/config"
	"github.com/Mellettan/invent/internal/database"
	"github.com/Mellettan/invent/internal/migrations"
	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/repository"
	"github.com/Mellettan/invent/internal/services"
)

// Loads a small demo dataset: three products, two warehouses, stock rows and
// two orders. Intended for local development.
func main() {
	fmt.Println("Seeding database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.SeedDefaultData(db, cfg); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	productRepo := repository.NewProductRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	warehouseProductRepo := repository.NewWarehouseProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, productRepo)

	products := []*models.Product{
		{Name: "Brick", Description: "Rectangular clay brick, 250x120x65 mm", Price: 100.00},
		{Name: "Construction beam", Description: "Steel construction beam, 600x40x40 mm", Price: 200.00},
		{Name: "Spring", Description: "Metal spring, 200x30x30 mm, elasticity 0.5", Price: 300.00},
	}
	for _, product := range products {
		if err := productRepo.Create(product); err != nil {
			log.Fatal("Failed to create product:", err)
		}
	}

	warehouses := []*models.Warehouse{
		{Name: "North warehouse", Location: "52 Timiryazevskaya st., Moscow"},
		{Name: "Main warehouse", Location: "23/1 Mayakovskogo st., Moscow"},
	}
	for _, warehouse := range warehouses {
		if err := warehouseRepo.Create(warehouse); err != nil {
			log.Fatal("Failed to create warehouse:", err)
		}
	}

	stock := []*models.WarehouseProduct{
		{WarehouseID: warehouses[0].ID, ProductID: products[0].ID, Quantity: 50},
		{WarehouseID: warehouses[0].ID, ProductID: products[1].ID, Quantity: 30},
		{WarehouseID: warehouses[1].ID, ProductID: products[1].ID, Quantity: 70},
		{WarehouseID: warehouses[1].ID, ProductID: products[2].ID, Quantity: 100},
	}
	for _, row := range stock {
		if err := warehouseProductRepo.Create(row); err != nil {
			log.Fatal("Failed to create stock row:", err)
		}
	}

	pending, err := orderService.CreateOrder([]services.OrderLine{
		{ProductID: products[0].ID, Quantity: 5},
		{ProductID: products[1].ID, Quantity: 2},
	})
	if err != nil {
		log.Fatal("Failed to create order:", err)
	}

	completed, err := orderService.CreateOrder([]services.OrderLine{
		{ProductID: products[1].ID, Quantity: 3},
		{ProductID: products[2].ID, Quantity: 1},
	})
	if err != nil {
		log.Fatal("Failed to create order:", err)
	}
	if err := orderService.UpdateStatus(completed, models.OrderCompleted); err != nil {
		log.Fatal("Failed to complete order:", err)
	}

	fmt.Printf("Seeded %d products, %d warehouses, orders %d and %d\n",
		len(products), len(warehouses), pending.ID, completed.ID)
}
