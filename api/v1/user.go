package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/services"
)

// CreateUser creates a user through the same flow as registration, so the
// stored password is always a hash.
func CreateUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
		return
	}

	user, err := services.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "El usuario ya existe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear el usuario"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers returns every user row, in insertion order
func ListUsers(c *gin.Context) {
	users, err := userRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al listar los usuarios"})
		return
	}

	c.JSON(http.StatusOK, users)
}
