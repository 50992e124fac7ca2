package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/inventory"
	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// Validation failures, rejected before any persistence call.
var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidQuantity = errors.New("linked quantity must be positive")
)

// ExpenseInput carries the user-entered fields of an expense. AmountCent is
// already parsed; the optional inventory link is present when MenuItemID is
// non-nil.
type ExpenseInput struct {
	Description   string
	AmountCent    int64
	Category      string
	PaymentMethod string
	Date          time.Time

	MenuItemID   *uint
	RawQuantity  float64
	QuantityKind string
	Unit         string
}

// ExpenseService keeps expense records and the stock effects they imply
// consistent across create, edit and delete. Each operation runs its steps
// strictly in order: validate, normalize, persist the expense, then apply
// and persist the stock adjustment. There is no rollback of steps already
// committed when a later step fails.
type ExpenseService struct {
	store Store
	log   *logrus.Logger
}

func NewExpenseService(store Store, log *logrus.Logger) *ExpenseService {
	return &ExpenseService{store: store, log: log}
}

// Create records a new expense and, when it links a tracked item, applies
// the implied forward stock adjustment. A non-nil *inventory.UnitMismatch
// means the quantity was applied unconverted; it is a warning, not an
// error.
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*models.Expense, *inventory.UnitMismatch, error) {
	if err := validateInput(in); err != nil {
		return nil, nil, err
	}

	exp := models.Expense{
		Description:   in.Description,
		AmountCent:    in.AmountCent,
		Category:      in.Category,
		PaymentMethod: in.PaymentMethod,
		Date:          in.Date,
		MenuItemID:    in.MenuItemID,
		RawQuantity:   in.RawQuantity,
		QuantityKind:  in.QuantityKind,
		Unit:          in.Unit,
	}

	adjs, warn, err := s.forwardAdjustment(ctx, in, "expense recorded")
	if err != nil {
		return nil, nil, err
	}

	if err := s.store.SaveExpense(ctx, &exp); err != nil {
		return nil, warn, fmt.Errorf("save expense: %w", err)
	}
	if err := s.applyAdjustments(ctx, adjs); err != nil {
		// Expense is already recorded; stock is stale until re-read.
		return &exp, warn, err
	}
	return &exp, warn, nil
}

// Update fully replaces a stored expense. The stock effect of the stored
// revision is reversed and the new effect applied in a single netted batch,
// so an edit that keeps the same item touches its stock exactly once.
//
// The reversal is recomputed from the expense AS STORED, never from the
// incoming payload, and uses the item definition as it is known now.
// If the item's unit or kind changed since creation, the reversal follows
// the current definition.
func (s *ExpenseService) Update(ctx context.Context, id uint, in ExpenseInput) (*models.Expense, *inventory.UnitMismatch, error) {
	if err := validateInput(in); err != nil {
		return nil, nil, err
	}

	stored, err := s.store.ExpenseByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load expense %d: %w", id, err)
	}

	adjs, err := s.reversalAdjustment(ctx, stored, "expense edited")
	if err != nil {
		return nil, nil, err
	}
	forward, warn, err := s.forwardAdjustment(ctx, in, "expense edited")
	if err != nil {
		return nil, nil, err
	}
	adjs = append(adjs, forward...)

	stored.Description = in.Description
	stored.AmountCent = in.AmountCent
	stored.Category = in.Category
	stored.PaymentMethod = in.PaymentMethod
	stored.Date = in.Date
	stored.MenuItemID = in.MenuItemID
	stored.RawQuantity = in.RawQuantity
	stored.QuantityKind = in.QuantityKind
	stored.Unit = in.Unit

	if err := s.store.SaveExpense(ctx, stored); err != nil {
		return nil, warn, fmt.Errorf("save expense: %w", err)
	}
	if err := s.applyAdjustments(ctx, adjs); err != nil {
		return stored, warn, err
	}
	return stored, warn, nil
}

// Delete reverses the stock effect of a stored expense, persists the
// reversal, then removes the record.
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	stored, err := s.store.ExpenseByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load expense %d: %w", id, err)
	}

	adjs, err := s.reversalAdjustment(ctx, stored, "expense deleted")
	if err != nil {
		return err
	}
	if err := s.applyAdjustments(ctx, adjs); err != nil {
		return err
	}
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func validateInput(in ExpenseInput) error {
	if in.AmountCent <= 0 {
		return ErrInvalidAmount
	}
	if in.MenuItemID != nil && in.RawQuantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// forwardAdjustment normalizes the input's inventory link into at most one
// positive adjustment.
func (s *ExpenseService) forwardAdjustment(ctx context.Context, in ExpenseInput, reason string) ([]inventory.Adjustment, *inventory.UnitMismatch, error) {
	if in.MenuItemID == nil {
		return nil, nil, nil
	}
	item, err := s.store.MenuItemByID(ctx, *in.MenuItemID)
	if err != nil {
		return nil, nil, fmt.Errorf("load menu item %d: %w", *in.MenuItemID, err)
	}
	delta, warn := inventory.Normalize(in.RawQuantity, inventory.QuantityKind(in.QuantityKind), inventory.Unit(in.Unit), *item)
	if warn != nil {
		s.log.WithFields(logrus.Fields{"item": item.Name, "from": warn.From, "to": warn.To}).Warn(warn.Error())
	}
	if delta == 0 {
		return nil, warn, nil
	}
	return []inventory.Adjustment{{MenuItemID: item.ID, Delta: delta, Reason: reason}}, warn, nil
}

// reversalAdjustment recomputes the stock effect of a stored expense and
// negates it. Warnings during the recompute are logged but not surfaced:
// the original entry already reported them.
func (s *ExpenseService) reversalAdjustment(ctx context.Context, stored *models.Expense, reason string) ([]inventory.Adjustment, error) {
	if stored.MenuItemID == nil {
		return nil, nil
	}
	item, err := s.store.MenuItemByID(ctx, *stored.MenuItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Item was removed since the expense was recorded: nothing
			// left to reverse.
			return nil, nil
		}
		return nil, fmt.Errorf("load menu item %d: %w", *stored.MenuItemID, err)
	}
	delta, warn := inventory.Normalize(stored.RawQuantity, inventory.QuantityKind(stored.QuantityKind), inventory.Unit(stored.Unit), *item)
	if warn != nil {
		s.log.WithFields(logrus.Fields{"item": item.Name, "from": warn.From, "to": warn.To}).Warn(warn.Error())
	}
	if delta == 0 {
		return nil, nil
	}
	return []inventory.Adjustment{{MenuItemID: item.ID, Delta: -delta, Reason: reason}}, nil
}

// applyAdjustments nets the batch, applies it to the current items and
// persists only the items whose stock actually changed, in one batched
// write.
func (s *ExpenseService) applyAdjustments(ctx context.Context, adjs []inventory.Adjustment) error {
	net := inventory.NetDeltas(adjs)
	if len(net) == 0 {
		return nil
	}
	items, err := s.store.MenuItems(ctx)
	if err != nil {
		return fmt.Errorf("load menu items: %w", err)
	}
	updated := inventory.Apply(items, adjs)

	changed := make([]models.MenuItem, 0, len(net))
	for i := range updated {
		if _, ok := net[updated[i].ID]; ok {
			changed = append(changed, updated[i])
		}
	}
	if err := s.store.SaveMenuItemStocks(ctx, changed); err != nil {
		return fmt.Errorf("save item stocks: %w", err)
	}
	return nil
}
