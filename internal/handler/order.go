package handler

import (
	"net/http"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderHandler records and lists sales (the income side of the balance).
type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

type createOrderReq struct {
	Total         string `json:"total" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,payment_method"`
	PlacedAt      string `json:"placed_at"`
}

type orderResp struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	TotalCent     int64     `json:"total_cent"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

func toOrderResp(o *models.Order) orderResp {
	return orderResp{
		ID:            o.ID,
		Code:          o.Code,
		TotalCent:     o.TotalCent,
		Total:         util.FormatCOP(o.TotalCent),
		PaymentMethod: o.PaymentMethod,
		PlacedAt:      o.PlacedAt,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	totalCent, err := util.ParseAmountCent(req.Total)
	if err != nil || totalCent <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid total")
		return
	}

	placedAt, err := util.ParseDate(req.PlacedAt)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	order := models.Order{
		Code:          uuid.New().String(),
		TotalCent:     totalCent,
		PaymentMethod: req.PaymentMethod,
		PlacedAt:      placedAt,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create order failed")
		return
	}

	util.Success(c, util.Response{
		"order": toOrderResp(&order),
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	q := h.DB.Model(&models.Order{})
	if method := c.Query("payment_method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}

	var orders []models.Order
	if err := q.Order("placed_at DESC, id DESC").Find(&orders).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query orders failed")
		return
	}

	resp := make([]orderResp, 0, len(orders))
	var totalCent int64
	for i := range orders {
		resp = append(resp, toOrderResp(&orders[i]))
		totalCent += orders[i].TotalCent
	}

	util.Success(c, util.Response{
		"items":      resp,
		"total_cent": totalCent,
		"total":      util.FormatCOP(totalCent),
	})
}
