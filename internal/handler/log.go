package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler serves the audit log listing.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

type logResp struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Action    string    `json:"action"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ListLogs lists audit log entries, paged, newest first.
func (h *LogHandler) ListLogs(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query logs failed")
		return
	}

	var logs []models.AuditLog
	if err := h.DB.Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query logs failed")
		return
	}

	items := make([]logResp, 0, len(logs))
	for _, l := range logs {
		items = append(items, logResp{
			ID:        l.ID,
			UserID:    l.UserID,
			Method:    l.Method,
			Path:      l.Path,
			Action:    l.Action,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
