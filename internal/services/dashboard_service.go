package services

import (
	"errors"
	"time"

	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/repository"

	"gorm.io/gorm"
)

// lowStockThreshold is the quantity below which a stock row counts as low.
const lowStockThreshold = 10

// Summary carries the aggregate figures shown on the dashboard.
type Summary struct {
	ProductsAmount        int64
	WarehousesAmount      int64
	ActiveOrdersAmount    int64
	CompletedOrdersAmount int64
	MostPopularProduct    *models.Product
	MostPopularQuantity   int64
	TotalMonthIncome      float64
	LowStockProducts      int64
	TotalUsers            int64
}

type DashboardService interface {
	GetSummary() (*Summary, error)
}

type dashboardService struct {
	productRepo          repository.ProductRepository
	warehouseRepo        repository.WarehouseRepository
	warehouseProductRepo repository.WarehouseProductRepository
	orderRepo            repository.OrderRepository
	orderItemRepo        repository.OrderItemRepository
	userRepo             repository.UserRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	warehouseProductRepo repository.WarehouseProductRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardService{
		productRepo:          productRepo,
		warehouseRepo:        warehouseRepo,
		warehouseProductRepo: warehouseProductRepo,
		orderRepo:            orderRepo,
		orderItemRepo:        orderItemRepo,
		userRepo:             userRepo,
	}
}

func (s *dashboardService) GetSummary() (*Summary, error) {
	summary := &Summary{}
	var err error

	if summary.ProductsAmount, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if summary.WarehousesAmount, err = s.warehouseRepo.Count(); err != nil {
		return nil, err
	}
	if summary.ActiveOrdersAmount, err = s.orderRepo.CountByStatus(models.OrderPending); err != nil {
		return nil, err
	}
	if summary.CompletedOrdersAmount, err = s.orderRepo.CountByStatus(models.OrderCompleted); err != nil {
		return nil, err
	}

	mostPopular, err := s.productRepo.GetMostOrdered()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if mostPopular != nil {
		summary.MostPopularProduct = mostPopular
		if summary.MostPopularQuantity, err = s.orderItemRepo.SumQuantityByProductID(mostPopular.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	completedOrders, err := s.orderRepo.GetCompletedSince(startOfMonth)
	if err != nil {
		return nil, err
	}
	for i := range completedOrders {
		summary.TotalMonthIncome += completedOrders[i].TotalPrice()
	}

	if summary.LowStockProducts, err = s.warehouseProductRepo.CountBelowQuantity(lowStockThreshold); err != nil {
		return nil, err
	}
	if summary.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}

	return summary, nil
}
