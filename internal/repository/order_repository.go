package repository

import (
	"time"

	"github.com/Mellettan/invent/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetCompletedSince(since time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	CountByStatus(status models.OrderStatus) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.Product").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.Product").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetCompletedSince(since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.Product").
		Where("status = ? AND created_at >= ?", models.OrderCompleted, since).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}

func (r *orderRepository) CountByStatus(status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
