package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/javierportillar/saviaInventory-sub001/internal/ledger"
	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of ledger.Store.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ ledger.Store = (*Store)(nil)

func (s *Store) Expenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	return expenses, nil
}

func (s *Store) ExpenseByID(ctx context.Context, id uint) (*models.Expense, error) {
	var e models.Expense
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("query expense %d: %w", id, err)
	}
	return &e, nil
}

func (s *Store) SaveExpense(ctx context.Context, e *models.Expense) error {
	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("save expense: %w", err)
	}
	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Expense{}, id).Error; err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}

func (s *Store) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	return items, nil
}

func (s *Store) MenuItemByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("query menu item %d: %w", id, err)
	}
	return &item, nil
}

// SaveMenuItemStocks writes the stock of every given item inside one
// transaction, the closest thing to a batched write SQLite offers.
func (s *Store) SaveMenuItemStocks(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			res := tx.Model(&models.MenuItem{}).
				Where("id = ?", items[i].ID).
				Update("stock", items[i].Stock)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save item stocks: %w", err)
	}
	return nil
}

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Order("placed_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	return orders, nil
}
