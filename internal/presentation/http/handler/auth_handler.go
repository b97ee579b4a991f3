package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/freshkart/grocery-pos/internal/application/service"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/request"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":       output.User.ID,
			"username": output.User.Username,
			"email":    output.User.Email,
			"role":     output.User.Role,
		},
		"access_token": output.AccessToken,
	})
}
