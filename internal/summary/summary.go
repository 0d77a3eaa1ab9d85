// Package summary derives display aggregates from the stored records.
// Nothing here is cached: every value is recomputed from the lists passed in.
package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
)

const day = 24 * time.Hour

// NetWorth is total income minus total expense over the full list.
// Transactions of any other type are ignored.
func NetWorth(txs []ledger.Transaction) decimal.Decimal {
	net := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case ledger.Income:
			net = net.Add(decimal.NewFromFloat(tx.Amount))
		case ledger.Expense:
			net = net.Sub(decimal.NewFromFloat(tx.Amount))
		}
	}
	return net
}

// MonthlyExpenses sums expenses dated in the same calendar month and year as
// now, judged in now's location.
func MonthlyExpenses(txs []ledger.Transaction, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type != ledger.Expense {
			continue
		}
		d := tx.Date.In(now.Location())
		if d.Year() == now.Year() && d.Month() == now.Month() {
			total = total.Add(decimal.NewFromFloat(tx.Amount))
		}
	}
	return total
}

// DaysRemaining rounds the distance from now to date up to whole days.
// Past dates give negative values.
func DaysRemaining(date, now time.Time) int {
	return int(math.Ceil(float64(date.Sub(now)) / float64(day)))
}

// Countdown renders a DaysRemaining value for display.
func Countdown(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}

// SortTransactions returns a copy ordered newest first.
func SortTransactions(txs []ledger.Transaction) []ledger.Transaction {
	out := append([]ledger.Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// SortEvents returns a copy ordered soonest first.
func SortEvents(evs []ledger.Event) []ledger.Event {
	out := append([]ledger.Event(nil), evs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}
