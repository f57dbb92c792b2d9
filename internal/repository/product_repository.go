package repository

import (
	"github.com/Mellettan/invent/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
	GetMostOrdered() (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// GetMostOrdered returns the product referenced by the most order item rows.
// Ties land on whichever row the database returns first.
func (r *productRepository) GetMostOrdered() (*models.Product, error) {
	var product models.Product
	err := r.db.Model(&models.Product{}).
		Select("products.*").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.id").
		Group("products.id").
		Order("COUNT(order_items.id) DESC").
		Take(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}
