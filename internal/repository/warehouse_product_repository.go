package repository

import (
	"github.com/Mellettan/invent/internal/models"

	"gorm.io/gorm"
)

type WarehouseProductRepository interface {
	Create(warehouseProduct *models.WarehouseProduct) error
	GetByID(id uint) (*models.WarehouseProduct, error)
	GetByProductID(productID uint) ([]models.WarehouseProduct, error)
	GetByWarehouseID(warehouseID uint) ([]models.WarehouseProduct, error)
	Update(warehouseProduct *models.WarehouseProduct) error
	Delete(id uint) error
	CountBelowQuantity(threshold int) (int64, error)
}

type warehouseProductRepository struct {
	db *gorm.DB
}

func NewWarehouseProductRepository(db *gorm.DB) WarehouseProductRepository {
	return &warehouseProductRepository{db: db}
}

func (r *warehouseProductRepository) Create(warehouseProduct *models.WarehouseProduct) error {
	return r.db.Create(warehouseProduct).Error
}

func (r *warehouseProductRepository) GetByID(id uint) (*models.WarehouseProduct, error) {
	var warehouseProduct models.WarehouseProduct
	err := r.db.First(&warehouseProduct, id).Error
	if err != nil {
		return nil, err
	}
	return &warehouseProduct, nil
}

func (r *warehouseProductRepository) GetByProductID(productID uint) ([]models.WarehouseProduct, error) {
	var warehouseProducts []models.WarehouseProduct
	err := r.db.Preload("Warehouse").Where("product_id = ?", productID).Find(&warehouseProducts).Error
	return warehouseProducts, err
}

func (r *warehouseProductRepository) GetByWarehouseID(warehouseID uint) ([]models.WarehouseProduct, error) {
	var warehouseProducts []models.WarehouseProduct
	err := r.db.Preload("Product").Where("warehouse_id = ?", warehouseID).Find(&warehouseProducts).Error
	return warehouseProducts, err
}

func (r *warehouseProductRepository) Update(warehouseProduct *models.WarehouseProduct) error {
	return r.db.Save(warehouseProduct).Error
}

func (r *warehouseProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.WarehouseProduct{}, id).Error
}

func (r *warehouseProductRepository) CountBelowQuantity(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&models.WarehouseProduct{}).Where("quantity < ?", threshold).Count(&count).Error
	return count, err
}
