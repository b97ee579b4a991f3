package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	value, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := value.(enum.Role)
	if !ok {
		return ""
	}
	return role
}
