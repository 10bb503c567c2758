package dto

import (
	"github.com/resenas-api/models"
)

// CreateReviewRequest represents the body for creating a review. Rating has
// no binding rule on purpose: zero must reach the handler's range check so
// the caller gets the range message, not a generic binding error.
type CreateReviewRequest struct {
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	UserID    uint    `json:"user_id" binding:"required"`
	ProductID uint    `json:"product_id" binding:"required"`
}

// CategorySummary is the reduced category representation embedded in reads
type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// UserSummary is the reduced user representation embedded in reads
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ProductSummary is the reduced product representation embedded in reads
type ProductSummary struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Category *CategorySummary `json:"category"`
}

// ReviewResponse is a review with its related user and product inlined
type ReviewResponse struct {
	ID        uint            `json:"id"`
	Rating    int             `json:"rating"`
	Comment   *string         `json:"comment"`
	UserID    uint            `json:"user_id"`
	ProductID uint            `json:"product_id"`
	User      *UserSummary    `json:"user"`
	Product   *ProductSummary `json:"product"`
}

// NewReviewResponse builds a ReviewResponse from a review loaded with its
// User and Product.Category relations.
func NewReviewResponse(review models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserID:    review.UserID,
		ProductID: review.ProductID,
	}

	if review.User.ID != 0 {
		resp.User = &UserSummary{
			ID:       review.User.ID,
			Username: review.User.Username,
		}
	}

	if review.Product.ID != 0 {
		product := &ProductSummary{
			ID:   review.Product.ID,
			Name: review.Product.Name,
		}
		if review.Product.Category.ID != 0 {
			product.Category = &CategorySummary{
				ID:   review.Product.Category.ID,
				Name: review.Product.Category.Name,
			}
		}
		resp.Product = product
	}

	return resp
}
