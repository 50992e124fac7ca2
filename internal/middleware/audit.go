package middleware

import (
	"bytes"
	"io"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware records every mutating request of a signed-in user to
// the audit log. Reads pass through untouched.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// capture the body before the handler consumes it
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		var userID *uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = &user.ID
			}
		}
		if userID == nil {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		log := models.AuditLog{
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&log).Error
	}
}
