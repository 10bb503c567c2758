package repositories

import (
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct{}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// withRelations preloads the user and the product with its category, so
// reads can embed the nested summaries.
func (r *ReviewRepository) withRelations() *gorm.DB {
	return database.DB.Preload("User").Preload("Product.Category")
}

// FindAll retrieves all reviews with their related user and product
func (r *ReviewRepository) FindAll() ([]models.Review, error) {
	var reviews []models.Review
	result := r.withRelations().Find(&reviews)
	return reviews, result.Error
}

// FindByID retrieves a review by its ID with its related user and product
func (r *ReviewRepository) FindByID(id uint) (models.Review, error) {
	var review models.Review
	result := r.withRelations().First(&review, "id = ?", id)
	return review, result.Error
}

// Create inserts a new review into the database
func (r *ReviewRepository) Create(review models.Review) (models.Review, error) {
	result := database.DB.Create(&review)
	return review, result.Error
}
