package inventory

import (
	"fmt"
	"math"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/shopspring/decimal"
)

// UnitMismatch is the warning returned when an entered unit cannot be
// converted to an item's native unit (volume and mass are never
// inter-convertible). It is advisory: the quantity was still applied,
// rounded but unconverted.
type UnitMismatch struct {
	ItemName string
	From     Unit
	To       Unit
}

func (w *UnitMismatch) Error() string {
	return fmt.Sprintf("cannot convert %s to %s for %q, quantity applied unconverted", w.From, w.To, w.ItemName)
}

// Normalize converts a raw quantity entered for an item into the signed
// integer delta to apply to the item's stock, in the item's native unit.
//
// It is a total function: non-finite or missing quantities yield 0, an item
// that does not track inventory yields 0, and an impossible unit pairing
// falls back to the rounded raw value plus a non-nil *UnitMismatch. It
// never returns a fractional canonical quantity; the integer floor is the
// precision the ledger stores.
func Normalize(raw float64, kind QuantityKind, unit Unit, item models.MenuItem) (int64, *UnitMismatch) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = 0
	}
	if !item.TracksInventory || raw == 0 {
		return 0, nil
	}
	if kind == "" {
		kind = QuantityKind(item.QuantityKind)
	}
	if kind != KindWeightVolume {
		return roundFloat(raw), nil
	}

	native := Unit(item.NativeUnit)
	if !native.Known() {
		native = Gram
	}
	from := unit
	if !from.Known() {
		from = native
	}
	if from == native {
		return roundFloat(raw), nil
	}
	if from.IsVolume() || native.IsVolume() {
		return roundFloat(raw), &UnitMismatch{ItemName: item.Name, From: from, To: native}
	}

	// Both sides are mass units: convert through the gram ratios.
	q := decimal.NewFromFloat(raw).
		Mul(massFactor[from]).
		Div(massFactor[native])
	return q.Round(0).IntPart(), nil
}

func roundFloat(f float64) int64 {
	return int64(math.Round(f))
}
