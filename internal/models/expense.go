package models

import "time"

// Expense is a single money-out record. Amounts are stored in cents to
// avoid float drift. An expense may optionally reference one tracked menu
// item; the link fields then describe the quantity that was bought, exactly
// as the user entered it (conversion to the item's native unit happens in
// the inventory package, never here).
type Expense struct {
	ID            uint      `gorm:"primaryKey"`
	Description   string    `gorm:"size:255;not null"`
	AmountCent    int64     `gorm:"not null"`
	Category      string    `gorm:"size:32;index"`
	PaymentMethod string    `gorm:"size:16;index;not null"` // cash / card / wallet
	Date          time.Time `gorm:"index;not null"`

	// Optional inventory link. At most one item per expense.
	MenuItemID   *uint   `gorm:"index"`
	RawQuantity  float64 // as entered, in Unit
	QuantityKind string  `gorm:"size:16"`
	Unit         string  `gorm:"size:8"`

	CreatedAt time.Time
	UpdatedAt time.Time

	MenuItem *MenuItem `gorm:"constraint:OnDelete:SET NULL"`
}
