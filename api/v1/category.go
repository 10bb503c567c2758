package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/models"
)

// CreateCategory creates a new category
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
		return
	}

	category, err := categoryRepo.Create(models.Category{Name: req.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear la categoría"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories returns every category row
func ListCategories(c *gin.Context) {
	categories, err := categoryRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al listar las categorías"})
		return
	}

	c.JSON(http.StatusOK, categories)
}
