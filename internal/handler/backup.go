package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler writes JSON snapshots of the ledger data set to disk.
type BackupHandler struct {
	DB        *gorm.DB
	BackupDir string
}

func NewBackupHandler(db *gorm.DB, backupDir string) *BackupHandler {
	return &BackupHandler{DB: db, BackupDir: backupDir}
}

type backupData struct {
	Created  time.Time         `json:"created"`
	Items    []models.MenuItem `json:"items"`
	Expenses []models.Expense  `json:"expenses"`
	Orders   []models.Order    `json:"orders"`
}

// CreateBackup snapshots items, expenses and orders into one JSON file.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	data := backupData{Created: time.Now()}
	if err := h.DB.Order("id ASC").Find(&data.Items).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query items failed")
		return
	}
	if err := h.DB.Order("id ASC").Find(&data.Expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}
	if err := h.DB.Order("id ASC").Find(&data.Orders).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query orders failed")
		return
	}

	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "marshal failed")
		return
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create backup dir failed")
		return
	}

	fileName := fmt.Sprintf("backup-%s.json", uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)
	if err := os.WriteFile(filePath, raw, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write backup failed")
		return
	}

	info, _ := os.Stat(filePath)

	backup := models.Backup{
		UserID:   user.ID,
		FileName: fileName,
		FilePath: filePath,
		Size:     info.Size(),
	}
	if err := h.DB.Create(&backup).Error; err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save backup record failed")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

// ListBackups lists the stored snapshots, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var backups []models.Backup
	if err := h.DB.Order("created_at DESC").Find(&backups).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query backups failed")
		return
	}

	items := make([]gin.H, 0, len(backups))
	for _, b := range backups {
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"backups": items,
	})
}
