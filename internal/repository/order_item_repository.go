package repository

import (
	"github.com/Mellettan/invent/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(orderItem *models.OrderItem) error
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	Update(orderItem *models.OrderItem) error
	Delete(id uint) error
	SumQuantityByProductID(productID uint) (int64, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(orderItem *models.OrderItem) error {
	return r.db.Create(orderItem).Error
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var orderItem models.OrderItem
	err := r.db.First(&orderItem, id).Error
	if err != nil {
		return nil, err
	}
	return &orderItem, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Preload("Product").Where("order_id = ?", orderID).Find(&orderItems).Error
	return orderItems, err
}

func (r *orderItemRepository) Update(orderItem *models.OrderItem) error {
	return r.db.Save(orderItem).Error
}

func (r *orderItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.OrderItem{}, id).Error
}

func (r *orderItemRepository) SumQuantityByProductID(productID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
