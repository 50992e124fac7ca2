package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/ledger"
	"github.com/javierportillar/saviaInventory-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders the daily balance report as CSV or XLSX.
type ExportHandler struct {
	Store ledger.Store
}

func NewExportHandler(store ledger.Store) *ExportHandler {
	return &ExportHandler{Store: store}
}

var exportHeaders = []string{
	"Date",
	"Income cash", "Income card", "Income wallet", "Income total",
	"Expense cash", "Expense card", "Expense wallet", "Expense total",
	"Net total", "Running total",
}

func exportRow(b ledger.DailyBalance) []string {
	return []string{
		b.Date,
		util.FormatCOP(b.Income.Cash), util.FormatCOP(b.Income.Card),
		util.FormatCOP(b.Income.Wallet), util.FormatCOP(b.Income.Total),
		util.FormatCOP(b.Expense.Cash), util.FormatCOP(b.Expense.Card),
		util.FormatCOP(b.Expense.Wallet), util.FormatCOP(b.Expense.Total),
		util.FormatCOP(b.Net.Total), util.FormatCOP(b.Running.Total),
	}
}

func (h *ExportHandler) balances(c *gin.Context) ([]ledger.DailyBalance, bool) {
	ctx := c.Request.Context()
	orders, err := h.Store.Orders(ctx)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query orders failed")
		return nil, false
	}
	expenses, err := h.Store.Expenses(ctx)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return nil, false
	}
	return ledger.AggregateBalances(orders, expenses), true
}

// ExportCSV streams the balance report as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	balances, ok := h.balances(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"balances_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for _, b := range balances {
		writer.Write(exportRow(b))
	}
}

// ExportXLSX streams the balance report as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	balances, ok := h.balances(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Daily balances"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, head)
	}
	for r, b := range balances {
		for col, v := range exportRow(b) {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"balances_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook failed")
	}
}
