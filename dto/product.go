package dto

// CreateProductRequest represents the body for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}
