package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/inventory"
	"github.com/javierportillar/saviaInventory-sub001/internal/ledger"
	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves expense CRUD. All three mutating routes go through
// the ledger service so the implied stock adjustments stay consistent.
type ExpenseHandler struct {
	Service *ledger.ExpenseService
	Store   ledger.Store
}

func NewExpenseHandler(service *ledger.ExpenseService, store ledger.Store) *ExpenseHandler {
	return &ExpenseHandler{Service: service, Store: store}
}

type expenseReq struct {
	Description   string  `json:"description" binding:"required,max=255"`
	Amount        string  `json:"amount" binding:"required"`
	Category      string  `json:"category" binding:"max=32"`
	PaymentMethod string  `json:"payment_method" binding:"required,payment_method"`
	Date          string  `json:"date"`
	MenuItemID    *uint   `json:"menu_item_id"`
	Quantity      float64 `json:"quantity"`
	QuantityKind  string  `json:"quantity_kind" binding:"omitempty,oneof=discrete weight_volume"`
	Unit          string  `json:"unit" binding:"omitempty,oneof=mg g kg ml"`
}

type expenseResp struct {
	ID            uint      `json:"id"`
	Description   string    `json:"description"`
	AmountCent    int64     `json:"amount_cent"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"payment_method"`
	Date          string    `json:"date"`
	MenuItemID    *uint     `json:"menu_item_id,omitempty"`
	Quantity      float64   `json:"quantity,omitempty"`
	QuantityKind  string    `json:"quantity_kind,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toExpenseResp(e *models.Expense) expenseResp {
	return expenseResp{
		ID:            e.ID,
		Description:   e.Description,
		AmountCent:    e.AmountCent,
		Amount:        util.FormatCOP(e.AmountCent),
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		Date:          e.Date.Format(ledger.DateKey),
		MenuItemID:    e.MenuItemID,
		Quantity:      e.RawQuantity,
		QuantityKind:  e.QuantityKind,
		Unit:          e.Unit,
		CreatedAt:     e.CreatedAt,
	}
}

// toInput parses the request into a service input. Date defaults to today.
func (r *expenseReq) toInput() (ledger.ExpenseInput, error) {
	amountCent, err := util.ParseAmountCent(r.Amount)
	if err != nil {
		return ledger.ExpenseInput{}, err
	}
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return ledger.ExpenseInput{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	return ledger.ExpenseInput{
		Description:   strings.TrimSpace(r.Description),
		AmountCent:    amountCent,
		Category:      strings.TrimSpace(r.Category),
		PaymentMethod: r.PaymentMethod,
		Date:          date,
		MenuItemID:    r.MenuItemID,
		RawQuantity:   r.Quantity,
		QuantityKind:  r.QuantityKind,
		Unit:          r.Unit,
	}, nil
}

func (h *ExpenseHandler) respond(c *gin.Context, exp *models.Expense, warn *inventory.UnitMismatch) {
	resp := util.Response{
		"expense": toExpenseResp(exp),
	}
	if warn != nil {
		resp["warning"] = warn.Error()
	}
	util.Success(c, resp)
}

func (h *ExpenseHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid amount")
	case errors.Is(err, ledger.ErrInvalidQuantity):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid quantity")
	case errors.Is(err, ledger.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, data may be stale; reload and retry")
	}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	exp, warn, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, exp, warn)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
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

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	exp, warn, err := h.Service.Update(c.Request.Context(), uint(id), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, exp, warn)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
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

	if err := h.Service.Delete(c.Request.Context(), uint(id)); err != nil {
		h.fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

// ListExpenses lists expenses with optional date range and payment method
// filters plus a per-method summary over the filtered set.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	expenses, err := h.Store.Expenses(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}

	start, err := util.ParseDate(c.Query("start"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	end, err := util.ParseDate(c.Query("end"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !end.IsZero() {
		end = end.Add(24 * time.Hour) // end date is inclusive
	}
	method := c.Query("payment_method")

	items := make([]expenseResp, 0, len(expenses))
	var totalCent int64
	byMethod := map[string]int64{}
	for i := range expenses {
		e := &expenses[i]
		if !start.IsZero() && e.Date.Before(start) {
			continue
		}
		if !end.IsZero() && !e.Date.Before(end) {
			continue
		}
		if method != "" && e.PaymentMethod != method {
			continue
		}
		items = append(items, toExpenseResp(e))
		totalCent += e.AmountCent
		byMethod[e.PaymentMethod] += e.AmountCent
	}

	util.Success(c, util.Response{
		"items": items,
		"summary": gin.H{
			"total_cent": totalCent,
			"total":      util.FormatCOP(totalCent),
			"by_method":  byMethod,
		},
	})
}
