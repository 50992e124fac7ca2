package inventory

import (
	"math"
	"testing"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
)

func massItem(unit string) models.MenuItem {
	return models.MenuItem{
		ID:              1,
		Name:            "Tomato",
		Category:        models.CategoryTrackable,
		TracksInventory: true,
		QuantityKind:    string(KindWeightVolume),
		NativeUnit:      unit,
		Stock:           1000,
	}
}

func discreteItem() models.MenuItem {
	return models.MenuItem{
		ID:              2,
		Name:            "Cup",
		Category:        models.CategoryTrackable,
		TracksInventory: true,
		QuantityKind:    string(KindDiscrete),
	}
}

func TestNormalize_Discrete(t *testing.T) {
	cases := []struct {
		raw  float64
		want int64
	}{
		{10, 10},
		{10.4, 10},
		{10.5, 11},
		{-3, -3},
		{-3.6, -4},
	}

	for _, tc := range cases {
		got, warn := Normalize(tc.raw, KindDiscrete, "", discreteItem())
		if warn != nil {
			t.Errorf("Normalize(%v) warn = %v, want nil", tc.raw, warn)
		}
		if got != tc.want {
			t.Errorf("Normalize(%v) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestNormalize_ZeroIsZeroForAnyItem(t *testing.T) {
	items := []models.MenuItem{
		massItem("g"),
		massItem("kg"),
		massItem("ml"),
		discreteItem(),
		{ID: 3, Name: "Coffee", TracksInventory: false},
	}

	for _, it := range items {
		got, warn := Normalize(0, KindWeightVolume, Kilogram, it)
		if got != 0 || warn != nil {
			t.Errorf("Normalize(0) on %q = (%d, %v), want (0, nil)", it.Name, got, warn)
		}
	}
}

func TestNormalize_NonFiniteIsZero(t *testing.T) {
	for _, raw := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, warn := Normalize(raw, KindWeightVolume, Kilogram, massItem("g"))
		if got != 0 || warn != nil {
			t.Errorf("Normalize(%v) = (%d, %v), want (0, nil)", raw, got, warn)
		}
	}
}

func TestNormalize_UntrackedItemIsZero(t *testing.T) {
	it := models.MenuItem{ID: 9, Name: "Juice", TracksInventory: false}
	got, warn := Normalize(5, KindDiscrete, "", it)
	if got != 0 || warn != nil {
		t.Errorf("Normalize on untracked item = (%d, %v), want (0, nil)", got, warn)
	}
}

func TestNormalize_MassConversion(t *testing.T) {
	cases := []struct {
		raw    float64
		unit   Unit
		native string
		want   int64
	}{
		{0.5, Kilogram, "g", 500},
		{2, Kilogram, "g", 2000},
		{500, Gram, "g", 500},
		{1500, Milligram, "g", 2}, // 1.5g rounds up
		{3000, Gram, "kg", 3},
		{250, Gram, "mg", 250000},
	}

	for _, tc := range cases {
		got, warn := Normalize(tc.raw, KindWeightVolume, tc.unit, massItem(tc.native))
		if warn != nil {
			t.Errorf("Normalize(%v %s -> %s) warn = %v, want nil", tc.raw, tc.unit, tc.native, warn)
		}
		if got != tc.want {
			t.Errorf("Normalize(%v %s -> %s) = %d, want %d", tc.raw, tc.unit, tc.native, got, tc.want)
		}
	}
}

// Whole-valued mass quantities survive a conversion there and back exactly.
func TestNormalize_MassRoundTrip(t *testing.T) {
	cases := []struct {
		raw  float64
		from Unit
		via  string
	}{
		{3, Kilogram, "g"},
		{2500, Gram, "mg"},
		{7, Gram, "mg"},
	}

	for _, tc := range cases {
		there, _ := Normalize(tc.raw, KindWeightVolume, tc.from, massItem(tc.via))
		back, _ := Normalize(float64(there), KindWeightVolume, Unit(tc.via), massItem(string(tc.from)))
		if back != int64(tc.raw) {
			t.Errorf("round trip %v %s via %s = %d, want %d", tc.raw, tc.from, tc.via, back, int64(tc.raw))
		}
	}
}

func TestNormalize_DefaultUnits(t *testing.T) {
	// no native unit stored -> grams
	it := massItem("")
	got, warn := Normalize(0.5, KindWeightVolume, Kilogram, it)
	if got != 500 || warn != nil {
		t.Errorf("default native unit: got (%d, %v), want (500, nil)", got, warn)
	}

	// unrecognized input unit -> treated as the native unit
	got, warn = Normalize(250, KindWeightVolume, "oz", massItem("g"))
	if got != 250 || warn != nil {
		t.Errorf("unknown input unit: got (%d, %v), want (250, nil)", got, warn)
	}
}

func TestNormalize_VolumeMatches(t *testing.T) {
	got, warn := Normalize(330, KindWeightVolume, Milliliter, massItem("ml"))
	if got != 330 || warn != nil {
		t.Errorf("ml -> ml: got (%d, %v), want (330, nil)", got, warn)
	}
}

func TestNormalize_VolumeMassMismatchWarns(t *testing.T) {
	cases := []struct {
		unit   Unit
		native string
	}{
		{Gram, "ml"},
		{Kilogram, "ml"},
		{Milliliter, "g"},
	}

	for _, tc := range cases {
		got, warn := Normalize(100, KindWeightVolume, tc.unit, massItem(tc.native))
		if warn == nil {
			t.Fatalf("Normalize(%s -> %s) warn = nil, want mismatch", tc.unit, tc.native)
		}
		if got != 100 {
			t.Errorf("Normalize(%s -> %s) = %d, want unconverted 100", tc.unit, tc.native, got)
		}
		if warn.From != tc.unit || warn.To != Unit(tc.native) {
			t.Errorf("warn = %+v, want from %s to %s", warn, tc.unit, tc.native)
		}
	}
}
