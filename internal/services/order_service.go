package services

import (
	"errors"
	"fmt"

	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/repository"
)

// ErrInvalidStatus is returned when an order status update names a value
// outside the Pending/Completed set.
var ErrInvalidStatus = errors.New("invalid order status")

// OrderLine is one (product, quantity) pair of an order submission.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

type OrderService interface {
	CreateOrder(lines []OrderLine) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateStatus(order *models.Order, status models.OrderStatus) error
	UpdateItemQuantities(order *models.Order, quantities map[uint]int) error
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
	}
}

// CreateOrder creates a Pending order and one item per line, in list order.
// Item inserts are independent writes; there is no wrapping transaction.
func (s *orderService) CreateOrder(lines []OrderLine) (*models.Order, error) {
	order := &models.Order{Status: string(models.OrderPending)}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", line.ProductID, err)
		}
		orderItem := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
		}
		if err := s.orderItemRepo.Create(orderItem); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) UpdateStatus(order *models.Order, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	order.Status = string(status)
	return s.orderRepo.Update(order)
}

// UpdateItemQuantities overwrites the quantity of each item of the order that
// appears in quantities; items without an entry keep their current value.
func (s *orderService) UpdateItemQuantities(order *models.Order, quantities map[uint]int) error {
	for i := range order.Items {
		item := &order.Items[i]
		if quantity, ok := quantities[item.ID]; ok {
			item.Quantity = quantity
		}
		if err := s.orderItemRepo.Update(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) DeleteOrder(id uint) error {
	return s.orderRepo.Delete(id)
}
