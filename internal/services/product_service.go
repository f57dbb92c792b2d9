package services

import (
	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/repository"
)

type ProductService interface {
	CreateProduct(name, description string, price float64) (*models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	UpdatePrice(product *models.Product, price float64) error
	GetStock(productID uint) ([]models.WarehouseProduct, error)
	UpdateStockQuantities(productID uint, quantities map[uint]int) error
	AddToWarehouse(productID, warehouseID uint, quantity int) (*models.WarehouseProduct, error)
}

type productService struct {
	productRepo          repository.ProductRepository
	warehouseRepo        repository.WarehouseRepository
	warehouseProductRepo repository.WarehouseProductRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	warehouseProductRepo repository.WarehouseProductRepository,
) ProductService {
	return &productService{
		productRepo:          productRepo,
		warehouseRepo:        warehouseRepo,
		warehouseProductRepo: warehouseProductRepo,
	}
}

func (s *productService) CreateProduct(name, description string, price float64) (*models.Product, error) {
	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) UpdatePrice(product *models.Product, price float64) error {
	product.Price = price
	return s.productRepo.Update(product)
}

func (s *productService) GetStock(productID uint) ([]models.WarehouseProduct, error) {
	return s.warehouseProductRepo.GetByProductID(productID)
}

// UpdateStockQuantities overwrites the quantity of each stock row of the
// product that appears in quantities; rows without an entry keep their
// current value. Each row is persisted independently.
func (s *productService) UpdateStockQuantities(productID uint, quantities map[uint]int) error {
	stock, err := s.warehouseProductRepo.GetByProductID(productID)
	if err != nil {
		return err
	}
	for i := range stock {
		if quantity, ok := quantities[stock[i].ID]; ok {
			stock[i].Quantity = quantity
		}
		if err := s.warehouseProductRepo.Update(&stock[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddToWarehouse creates a new stock row linking the product to the
// warehouse. An existing row for the same pair is not reused; a second call
// produces a second, independent row.
func (s *productService) AddToWarehouse(productID, warehouseID uint, quantity int) (*models.WarehouseProduct, error) {
	warehouse, err := s.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}

	warehouseProduct := &models.WarehouseProduct{
		WarehouseID: warehouse.ID,
		ProductID:   productID,
		Quantity:    quantity,
	}
	if err := s.warehouseProductRepo.Create(warehouseProduct); err != nil {
		return nil, err
	}
	return warehouseProduct, nil
}

// TotalStock sums quantities over a product's stock rows.
func TotalStock(stock []models.WarehouseProduct) int {
	var total int
	for i := range stock {
		total += stock[i].Quantity
	}
	return total
}
