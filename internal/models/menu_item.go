package models

import "time"

// Menu categories. Only items in the trackable category participate in
// stock accounting; everything else is sold as-is.
const (
	CategoryTrackable = "supplies"
	CategoryPrepared  = "prepared"
	CategoryBeverage  = "beverage"
)

// MenuItem is a menu/inventory entry. Stock is stored as an integer in the
// item's native unit (NativeUnit for weight/volume items, whole units for
// discrete items) and is never negative.
type MenuItem struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:120;not null"`
	Category        string `gorm:"size:32;index;not null"`
	PriceCent       int64  `gorm:"not null;default:0"` // sale price in cents
	TracksInventory bool   `gorm:"index"`
	QuantityKind    string `gorm:"size:16"` // discrete / weight_volume
	NativeUnit      string `gorm:"size:8"`  // mg / g / kg / ml; weight_volume items only
	Stock           int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
