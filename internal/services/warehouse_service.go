package services

import (
	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/repository"
)

type WarehouseService interface {
	CreateWarehouse(name, location string) (*models.Warehouse, error)
	GetWarehouseByID(id uint) (*models.Warehouse, error)
	GetAllWarehouses() ([]models.Warehouse, error)
	UpdateWarehouse(warehouse *models.Warehouse, name, location string) error
	GetStock(warehouseID uint) ([]models.WarehouseProduct, error)
}

type warehouseService struct {
	warehouseRepo        repository.WarehouseRepository
	warehouseProductRepo repository.WarehouseProductRepository
}

func NewWarehouseService(
	warehouseRepo repository.WarehouseRepository,
	warehouseProductRepo repository.WarehouseProductRepository,
) WarehouseService {
	return &warehouseService{
		warehouseRepo:        warehouseRepo,
		warehouseProductRepo: warehouseProductRepo,
	}
}

func (s *warehouseService) CreateWarehouse(name, location string) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{
		Name:     name,
		Location: location,
	}
	if err := s.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) GetWarehouseByID(id uint) (*models.Warehouse, error) {
	return s.warehouseRepo.GetByID(id)
}

func (s *warehouseService) GetAllWarehouses() ([]models.Warehouse, error) {
	return s.warehouseRepo.GetAll()
}

func (s *warehouseService) UpdateWarehouse(warehouse *models.Warehouse, name, location string) error {
	warehouse.Name = name
	warehouse.Location = location
	return s.warehouseRepo.Update(warehouse)
}

func (s *warehouseService) GetStock(warehouseID uint) ([]models.WarehouseProduct, error) {
	return s.warehouseProductRepo.GetByWarehouseID(warehouseID)
}
