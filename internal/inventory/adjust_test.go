package inventory

import (
	"reflect"
	"testing"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
)

func testItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Tomato", TracksInventory: true, Stock: 1000},
		{ID: 2, Name: "Cup", TracksInventory: true, Stock: 50},
		{ID: 3, Name: "Milk", TracksInventory: true, Stock: 200},
	}
}

func stockOf(t *testing.T, items []models.MenuItem, id uint) int64 {
	t.Helper()
	for i := range items {
		if items[i].ID == id {
			return items[i].Stock
		}
	}
	t.Fatalf("item %d not in result", id)
	return 0
}

func TestApply_EmptyBatchIsIdentity(t *testing.T) {
	items := testItems()
	got := Apply(items, nil)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("Apply(items, nil) = %+v, want unchanged", got)
	}

	// all-zero batches net to nothing as well
	got = Apply(items, []Adjustment{{MenuItemID: 1, Delta: 5}, {MenuItemID: 1, Delta: -5}})
	if !reflect.DeepEqual(got, items) {
		t.Errorf("cancelling batch changed items: %+v", got)
	}
}

func TestApply_NetBatching(t *testing.T) {
	items := testItems()

	split := Apply(items, []Adjustment{
		{MenuItemID: 1, Delta: 5},
		{MenuItemID: 1, Delta: -3},
	})
	direct := Apply(items, []Adjustment{{MenuItemID: 1, Delta: 2}})

	if !reflect.DeepEqual(split, direct) {
		t.Errorf("split batch %+v != direct batch %+v", split, direct)
	}
	if got := stockOf(t, split, 1); got != 1002 {
		t.Errorf("stock = %d, want 1002", got)
	}
}

func TestApply_UntouchedItemsUnchanged(t *testing.T) {
	items := testItems()
	got := Apply(items, []Adjustment{{MenuItemID: 2, Delta: -10}})

	if s := stockOf(t, got, 2); s != 40 {
		t.Errorf("item 2 stock = %d, want 40", s)
	}
	for _, id := range []uint{1, 3} {
		if stockOf(t, got, id) != stockOf(t, items, id) {
			t.Errorf("item %d was rewritten", id)
		}
	}
}

func TestApply_ClampsAtZero(t *testing.T) {
	items := testItems()

	got := Apply(items, []Adjustment{{MenuItemID: 2, Delta: -80}})
	if s := stockOf(t, got, 2); s != 0 {
		t.Errorf("stock = %d, want clamp to 0", s)
	}
}

// For any adjustment sequence the result equals max(0, initial+sum(deltas)).
func TestApply_NonNegativity(t *testing.T) {
	cases := []struct {
		deltas []int64
		want   int64
	}{
		{[]int64{10, -20, 5}, 45},
		{[]int64{-60}, 0},
		{[]int64{-30, -30, -30}, 0},
		{[]int64{-100, 200}, 150},
	}

	for _, tc := range cases {
		adjs := make([]Adjustment, 0, len(tc.deltas))
		for _, d := range tc.deltas {
			adjs = append(adjs, Adjustment{MenuItemID: 2, Delta: d})
		}
		got := Apply(testItems(), adjs)
		if s := stockOf(t, got, 2); s != tc.want {
			t.Errorf("deltas %v: stock = %d, want %d", tc.deltas, s, tc.want)
		}
	}
}

func TestApplyWithPolicy_AllowNegative(t *testing.T) {
	got := ApplyWithPolicy(testItems(), []Adjustment{{MenuItemID: 2, Delta: -80}}, AllowNegative)
	if s := stockOf(t, got, 2); s != -30 {
		t.Errorf("stock = %d, want -30", s)
	}
}

func TestApply_MultipleItems(t *testing.T) {
	got := Apply(testItems(), []Adjustment{
		{MenuItemID: 1, Delta: 500},
		{MenuItemID: 3, Delta: -50},
	})
	if s := stockOf(t, got, 1); s != 1500 {
		t.Errorf("item 1 stock = %d, want 1500", s)
	}
	if s := stockOf(t, got, 3); s != 150 {
		t.Errorf("item 3 stock = %d, want 150", s)
	}
}

func TestNetDeltas_DropsZero(t *testing.T) {
	net := NetDeltas([]Adjustment{
		{MenuItemID: 1, Delta: 5},
		{MenuItemID: 1, Delta: -5},
		{MenuItemID: 2, Delta: 3},
	})
	if _, ok := net[1]; ok {
		t.Error("cancelled item kept in net map")
	}
	if net[2] != 3 {
		t.Errorf("net[2] = %d, want 3", net[2])
	}
}
