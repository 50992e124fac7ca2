package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/inventory"
	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ItemHandler serves menu item CRUD and manual stock corrections.
type ItemHandler struct {
	DB *gorm.DB
}

func NewItemHandler(db *gorm.DB) *ItemHandler {
	return &ItemHandler{DB: db}
}

type createItemReq struct {
	Name         string `json:"name" binding:"required,max=120"`
	Category     string `json:"category" binding:"required,max=32"`
	Price        string `json:"price" binding:"required"`
	QuantityKind string `json:"quantity_kind" binding:"omitempty,oneof=discrete weight_volume"`
	NativeUnit   string `json:"native_unit" binding:"omitempty,oneof=mg g kg ml"`
	Stock        int64  `json:"stock" binding:"min=0"`
}

type itemResp struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PriceCent       int64     `json:"price_cent"`
	Price           string    `json:"price"`
	TracksInventory bool      `json:"tracks_inventory"`
	QuantityKind    string    `json:"quantity_kind,omitempty"`
	NativeUnit      string    `json:"native_unit,omitempty"`
	Stock           int64     `json:"stock"`
	CreatedAt       time.Time `json:"created_at"`
}

func toItemResp(it *models.MenuItem) itemResp {
	return itemResp{
		ID:              it.ID,
		Name:            it.Name,
		Category:        it.Category,
		PriceCent:       it.PriceCent,
		Price:           util.FormatCOP(it.PriceCent),
		TracksInventory: it.TracksInventory,
		QuantityKind:    it.QuantityKind,
		NativeUnit:      it.NativeUnit,
		Stock:           it.Stock,
		CreatedAt:       it.CreatedAt,
	}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	priceCent, err := util.ParseAmountCent(req.Price)
	if err != nil || priceCent < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid price")
		return
	}

	tracks := req.Category == models.CategoryTrackable
	kind := req.QuantityKind
	unit := req.NativeUnit
	if tracks {
		if kind == "" {
			kind = string(inventory.KindDiscrete)
		}
		if kind == string(inventory.KindWeightVolume) && unit == "" {
			unit = string(inventory.Gram)
		}
		if kind == string(inventory.KindDiscrete) {
			unit = "" // native unit only applies to weight/volume items
		}
	} else {
		kind, unit = "", ""
	}

	item := models.MenuItem{
		Name:            strings.TrimSpace(req.Name),
		Category:        req.Category,
		PriceCent:       priceCent,
		TracksInventory: tracks,
		QuantityKind:    kind,
		NativeUnit:      unit,
		Stock:           req.Stock,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create item failed")
		return
	}

	util.Success(c, util.Response{
		"item": toItemResp(&item),
	})
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	q := h.DB.Model(&models.MenuItem{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var items []models.MenuItem
	if err := q.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query items failed")
		return
	}

	resp := make([]itemResp, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResp(&items[i]))
	}

	util.Success(c, util.Response{
		"items": resp,
	})
}

type setStockReq struct {
	Stock int64 `json:"stock" binding:"min=0"`
}

// SetStock overwrites an item's stock with a hand-counted value. Expense
// driven adjustments go through the ledger service instead.
func (h *ItemHandler) SetStock(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req setStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "item not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query item failed")
		}
		return
	}
	if !item.TracksInventory {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "item does not track inventory")
		return
	}

	if err := h.DB.Model(&item).Update("stock", req.Stock).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save stock failed")
		return
	}
	item.Stock = req.Stock

	util.Success(c, util.Response{
		"item": toItemResp(&item),
	})
}
