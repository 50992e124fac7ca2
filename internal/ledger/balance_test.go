package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.Local)
}

func order(d int, method string, cents int64) models.Order {
	return models.Order{TotalCent: cents, PaymentMethod: method, PlacedAt: day(d)}
}

func expense(d int, method string, cents int64) models.Expense {
	return models.Expense{AmountCent: cents, PaymentMethod: method, Date: day(d)}
}

func TestAggregateBalances_Scenario(t *testing.T) {
	orders := []models.Order{
		order(1, models.PaymentCash, 100),
		order(2, models.PaymentCard, 50),
	}
	expenses := []models.Expense{
		expense(1, models.PaymentCash, 40),
	}

	got := AggregateBalances(orders, expenses)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// descending: day 2 first
	d2, d1 := got[0], got[1]
	if d2.Date != "2025-03-02" || d1.Date != "2025-03-01" {
		t.Fatalf("dates = %s, %s, want 2025-03-02, 2025-03-01", d2.Date, d1.Date)
	}

	if d1.Income.Total != 100 || d1.Expense.Total != 40 || d1.Net.Total != 60 || d1.Running.Total != 60 {
		t.Errorf("day 1 = %+v, want income 100 expense 40 net 60 running 60", d1)
	}
	if d2.Income.Card != 50 || d2.Income.Total != 50 || d2.Expense.Total != 0 {
		t.Errorf("day 2 income = %+v, want 50 by card", d2.Income)
	}
	if d2.Net.Total != 50 || d2.Running.Total != 110 {
		t.Errorf("day 2 net/running = %d/%d, want 50/110", d2.Net.Total, d2.Running.Total)
	}
	if d2.Running.Cash != 60 || d2.Running.Card != 50 {
		t.Errorf("day 2 running by method = %+v, want cash 60 card 50", d2.Running)
	}
}

// total = cash + card + wallet on every figure of every row.
func TestAggregateBalances_Reconciliation(t *testing.T) {
	orders := []models.Order{
		order(1, models.PaymentCash, 1000),
		order(1, models.PaymentCard, 2500),
		order(2, models.PaymentWallet, 700),
		order(3, models.PaymentCash, 50),
	}
	expenses := []models.Expense{
		expense(1, models.PaymentWallet, 300),
		expense(2, models.PaymentCash, 1200),
		expense(3, models.PaymentCard, 90),
	}

	check := func(date string, m MethodAmounts, what string) {
		if m.Total != m.Cash+m.Card+m.Wallet {
			t.Errorf("%s %s: total %d != %d+%d+%d", date, what, m.Total, m.Cash, m.Card, m.Wallet)
		}
	}
	for _, b := range AggregateBalances(orders, expenses) {
		check(b.Date, b.Income, "income")
		check(b.Date, b.Expense, "expense")
		check(b.Date, b.Net, "net")
		check(b.Date, b.Running, "running")
	}
}

func TestAggregateBalances_RunningChains(t *testing.T) {
	orders := []models.Order{
		order(1, models.PaymentCash, 10),
		order(2, models.PaymentCash, 20),
		order(3, models.PaymentCash, 30),
	}
	expenses := []models.Expense{
		expense(2, models.PaymentCash, 5),
	}

	got := AggregateBalances(orders, expenses)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// ascending nets: 10, 15, 30
	wantRunning := []int64{55, 25, 10} // presented descending
	for i, b := range got {
		if b.Running.Total != wantRunning[i] {
			t.Errorf("running[%d] = %d, want %d", i, b.Running.Total, wantRunning[i])
		}
	}
}

func TestAggregateBalances_DeterministicOrder(t *testing.T) {
	orders := []models.Order{
		order(3, models.PaymentCash, 30),
		order(1, models.PaymentCard, 10),
		order(2, models.PaymentWallet, 20),
	}
	expenses := []models.Expense{
		expense(2, models.PaymentCash, 7),
		expense(1, models.PaymentCash, 3),
	}

	a := AggregateBalances(orders, expenses)

	// reversed inputs must produce the identical output
	revOrders := []models.Order{orders[2], orders[1], orders[0]}
	revExpenses := []models.Expense{expenses[1], expenses[0]}
	b := AggregateBalances(revOrders, revExpenses)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregation depends on input order:\n%+v\n%+v", a, b)
	}
}

func TestAggregateBalances_DropsZeroTimestamps(t *testing.T) {
	orders := []models.Order{
		{TotalCent: 100, PaymentMethod: models.PaymentCash}, // zero PlacedAt
		order(1, models.PaymentCash, 40),
	}
	expenses := []models.Expense{
		{AmountCent: 10, PaymentMethod: models.PaymentCash}, // zero Date
	}

	got := AggregateBalances(orders, expenses)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Income.Total != 40 || got[0].Expense.Total != 0 {
		t.Errorf("events with zero timestamps leaked into %+v", got[0])
	}
}

func TestAggregateBalances_Empty(t *testing.T) {
	if got := AggregateBalances(nil, nil); len(got) != 0 {
		t.Errorf("AggregateBalances(nil, nil) = %+v, want empty", got)
	}
}

func TestAggregateBalances_NegativeRunning(t *testing.T) {
	// an expense-only history produces a negative running net
	expenses := []models.Expense{expense(1, models.PaymentCash, 80)}

	got := AggregateBalances(nil, expenses)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Running.Total != -80 || got[0].Running.Cash != -80 {
		t.Errorf("running = %+v, want -80 cash", got[0].Running)
	}
}
