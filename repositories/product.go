package repositories

import (
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new product repository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindAll retrieves all products
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	result := database.DB.Find(&products)
	return products, result.Error
}

// FindByID retrieves a product by its ID
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	result := database.DB.First(&product, "id = ?", id)
	return product, result.Error
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := database.DB.Create(&product)
	return product, result.Error
}
