package ledger

import (
	"sort"
	"time"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"
)

// DateKey is the calendar-date format balances are grouped by.
const DateKey = "2006-01-02"

// MethodAmounts breaks an amount down per payment method, in cents.
// Total equals Cash+Card+Wallet on every value this package emits.
type MethodAmounts struct {
	Cash   int64 `json:"cash"`
	Card   int64 `json:"card"`
	Wallet int64 `json:"wallet"`
	Total  int64 `json:"total"`
}

// add credits an amount to one method. Events with an unknown method are
// ignored entirely so Total stays the sum of the three methods.
func (m *MethodAmounts) add(method string, cents int64) {
	switch method {
	case models.PaymentCash:
		m.Cash += cents
	case models.PaymentCard:
		m.Card += cents
	case models.PaymentWallet:
		m.Wallet += cents
	default:
		return
	}
	m.Total += cents
}

func (m MethodAmounts) sub(n MethodAmounts) MethodAmounts {
	return MethodAmounts{
		Cash:   m.Cash - n.Cash,
		Card:   m.Card - n.Card,
		Wallet: m.Wallet - n.Wallet,
		Total:  m.Total - n.Total,
	}
}

func (m MethodAmounts) plus(n MethodAmounts) MethodAmounts {
	return MethodAmounts{
		Cash:   m.Cash + n.Cash,
		Card:   m.Card + n.Card,
		Wallet: m.Wallet + n.Wallet,
		Total:  m.Total + n.Total,
	}
}

// DailyBalance is one date's aggregated figures plus the cumulative running
// net through that date.
type DailyBalance struct {
	Date    string        `json:"date"`
	Income  MethodAmounts `json:"income"`
	Expense MethodAmounts `json:"expense"`
	Net     MethodAmounts `json:"net"`
	Running MethodAmounts `json:"running"`
}

// AggregateBalances folds orders (income) and expenses into one
// DailyBalance per calendar date, returned in descending date order.
//
// Running totals are carried in ascending order regardless of the output
// order, so runningNet(D) = runningNet(previous date) + dailyNet(D) per
// method and overall. Events with a zero timestamp are dropped. The
// function is pure and deterministic for any input ordering; it recomputes
// from scratch on every call rather than maintaining incremental state.
func AggregateBalances(orders []models.Order, expenses []models.Expense) []DailyBalance {
	type bucket struct {
		income  MethodAmounts
		expense MethodAmounts
	}
	buckets := make(map[string]*bucket)
	get := func(t time.Time) *bucket {
		k := t.Format(DateKey)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		return b
	}

	for i := range orders {
		if orders[i].PlacedAt.IsZero() {
			continue
		}
		get(orders[i].PlacedAt).income.add(orders[i].PaymentMethod, orders[i].TotalCent)
	}
	for i := range expenses {
		if expenses[i].Date.IsZero() {
			continue
		}
		get(expenses[i].Date).expense.add(expenses[i].PaymentMethod, expenses[i].AmountCent)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // chronological pass for the running totals

	out := make([]DailyBalance, 0, len(keys))
	var running MethodAmounts
	for _, k := range keys {
		b := buckets[k]
		net := b.income.sub(b.expense)
		running = running.plus(net)
		out = append(out, DailyBalance{
			Date:    k,
			Income:  b.income,
			Expense: b.expense,
			Net:     net,
			Running: running,
		})
	}

	// Presentation order is newest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
