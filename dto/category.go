package dto

// CreateCategoryRequest represents the body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
