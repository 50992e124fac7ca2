package handler

import (
	"net/http"
	"strconv"

	"github.com/javierportillar/saviaInventory-sub001/internal/ledger"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// BalanceHandler serves the daily balance report.
type BalanceHandler struct {
	Store ledger.Store
}

func NewBalanceHandler(store ledger.Store) *BalanceHandler {
	return &BalanceHandler{Store: store}
}

// GetBalances recomputes the full daily balance sequence from scratch and
// returns it newest-first. ?limit=N truncates to the most recent N days.
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	balances, err := h.loadBalances(c)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query events failed")
		return
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(balances) {
			balances = balances[:limit]
		}
	}

	util.Success(c, util.Response{
		"balances": balances,
	})
}

func (h *BalanceHandler) loadBalances(c *gin.Context) ([]ledger.DailyBalance, error) {
	ctx := c.Request.Context()
	orders, err := h.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := h.Store.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.AggregateBalances(orders, expenses), nil
}
