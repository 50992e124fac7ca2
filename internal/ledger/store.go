package ledger

import (
	"context"
	"errors"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
)

// ErrNotFound is returned by Store implementations when a record does not
// exist, and propagated unchanged by the service layer.
var ErrNotFound = errors.New("record not found")

// Store is the narrow persistence contract the ledger depends on. The
// hosting application picks one implementation per process lifetime; the
// ledger never assumes which one it got and never reaches past it.
//
// Writes are at-least-once and not atomic across calls: a failure between
// SaveExpense and SaveMenuItemStocks leaves the expense recorded with the
// stock not yet updated. The service reports that failure upward and does
// not roll back; callers should re-read before the next operation.
type Store interface {
	Expenses(ctx context.Context) ([]models.Expense, error)
	ExpenseByID(ctx context.Context, id uint) (*models.Expense, error)
	SaveExpense(ctx context.Context, e *models.Expense) error
	DeleteExpense(ctx context.Context, id uint) error

	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	MenuItemByID(ctx context.Context, id uint) (*models.MenuItem, error)
	// SaveMenuItemStocks persists the stock of every item in one call.
	SaveMenuItemStocks(ctx context.Context, items []models.MenuItem) error

	Orders(ctx context.Context) ([]models.Order, error)
}
