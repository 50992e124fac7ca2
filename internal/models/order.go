package models

import "time"

// Order is an income event: one completed sale with its total and the
// payment method it came in through. Orders are read-only input for the
// balance aggregation; nothing in this module ever mutates a stored order.
type Order struct {
	ID            uint      `gorm:"primaryKey"`
	Code          string    `gorm:"size:64;uniqueIndex;not null"` // uuid, printed on the receipt
	TotalCent     int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"size:16;index;not null"`
	PlacedAt      time.Time `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
