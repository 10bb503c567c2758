package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/models"
)

// CreateProduct creates a new product under a category
func CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}

	product, err := productRepo.Create(product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear el producto"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts returns every product row
func ListProducts(c *gin.Context) {
	products, err := productRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al listar los productos"})
		return
	}

	c.JSON(http.StatusOK, products)
}
