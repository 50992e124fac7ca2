package handler

import (
	"github.com/javierportillar/saviaInventory-sub001/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the signed-in user placed by AuthMiddleware, or nil.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
