package inventory

import "github.com/shopspring/decimal"

// Unit is a physical unit a quantity can be entered in. Stock itself is
// always stored in the owning item's native unit.
type Unit string

const (
	Milligram  Unit = "mg"
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Milliliter Unit = "ml"
)

// massFactor is the fixed conversion ratio of each mass unit relative to
// the gram. Volume has no entry: milliliters never convert to mass.
var massFactor = map[Unit]decimal.Decimal{
	Milligram: decimal.NewFromFloat(0.001),
	Gram:      decimal.NewFromInt(1),
	Kilogram:  decimal.NewFromInt(1000),
}

// Known reports whether u is one of the supported units.
func (u Unit) Known() bool {
	switch u {
	case Milligram, Gram, Kilogram, Milliliter:
		return true
	}
	return false
}

// IsMass reports whether u is a mass unit.
func (u Unit) IsMass() bool {
	_, ok := massFactor[u]
	return ok
}

// IsVolume reports whether u is the volume unit.
func (u Unit) IsVolume() bool { return u == Milliliter }

// QuantityKind says how quantities of an item are counted: whole units or
// by weight/volume.
type QuantityKind string

const (
	KindDiscrete     QuantityKind = "discrete"
	KindWeightVolume QuantityKind = "weight_volume"
)
