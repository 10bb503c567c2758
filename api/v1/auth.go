package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/services"
)

// Login handles user authentication. Credentials come in as form fields
// (OAuth2 password flow); unknown user and wrong password get the same
// response.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
		return
	}

	token, err := services.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Credenciales inválidas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al iniciar sesión"})
		return
	}

	// Also set the token as an HttpOnly cookie for browser clients
	c.SetCookie(
		"access_token", // name
		token,          // value
		86400,          // max age (24 hours in seconds)
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register handles user registration
func Register(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al registrar el usuario"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetCurrentUser returns the authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No autenticado"})
		return
	}

	user, err := services.GetUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener el perfil"})
		return
	}

	c.JSON(http.StatusOK, user)
}
