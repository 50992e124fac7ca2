package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves register/login.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type registerReq struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name" binding:"max=64"`
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if !usernameRe.MatchString(req.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username must be 3-20 letters, digits or underscores")
		return
	}
	if len(req.Password) < 8 || len(req.Password) > 64 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be 8-64 characters")
		return
	}

	// case-insensitive uniqueness
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", req.Username).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query user failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "hash password failed")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create user failed")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var user models.User
	if err := h.DB.Where("LOWER(username) = LOWER(?)", strings.TrimSpace(req.Username)).
		First(&user).Error; err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		return
	}
	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "issue token failed")
		return
	}

	now := time.Now()
	h.DB.Model(&user).Update("last_login_at", &now)

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}

// GetMe returns the signed-in user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"created_at":   user.CreatedAt,
		},
	})
}
