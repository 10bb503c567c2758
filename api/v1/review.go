package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/models"
)

// CreateReview validates the rating, inserts the review and re-reads it with
// its user and product (and the product's category) so the response can
// embed the nested summaries.
func CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "La calificación debe estar entre 1 y 5."})
		return
	}

	review := models.Review{
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserID:    req.UserID,
		ProductID: req.ProductID,
	}

	review, err := reviewRepo.Create(review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear la reseña"})
		return
	}

	review, err = reviewRepo.FindByID(review.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al cargar la reseña creada"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

// ListReviews returns every review with embedded user/product/category.
// An empty table is a 404, not an empty list; callers rely on that.
func ListReviews(c *gin.Context) {
	reviews, err := reviewRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al listar las reseñas"})
		return
	}

	if len(reviews) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No se encontraron reseñas registradas."})
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, dto.NewReviewResponse(review))
	}

	c.JSON(http.StatusOK, response)
}
