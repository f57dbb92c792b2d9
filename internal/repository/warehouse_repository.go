package repository

import (
	"github.com/Mellettan/invent/internal/models"

	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *models.Warehouse) error
	GetByID(id uint) (*models.Warehouse, error)
	GetAll() ([]models.Warehouse, error)
	Update(warehouse *models.Warehouse) error
	Delete(id uint) error
	Count() (int64, error)
}

type warehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(warehouse *models.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepository) GetByID(id uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.First(&warehouse, id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) GetAll() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepository) Update(warehouse *models.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Warehouse{}, id).Error
}

func (r *warehouseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Warehouse{}).Count(&count).Error
	return count, err
}
