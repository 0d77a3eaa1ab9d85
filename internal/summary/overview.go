package summary

import (
	"time"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
)

// Overview bundles the aggregates shown on the dashboard.
type Overview struct {
	NetWorth        float64          `json:"netWorth"`
	MonthlyExpenses float64          `json:"monthlyExpenses"`
	AsOf            ledger.Timestamp `json:"asOf"`
	Transactions    int              `json:"transactions"`
	Events          []EventCountdown `json:"events"`
}

// EventCountdown pairs an event with its distance from the evaluation time.
type EventCountdown struct {
	ledger.Event
	DaysRemaining int    `json:"daysRemaining"`
	Countdown     string `json:"countdown"`
}

// Build computes an Overview at now. Events are listed soonest first.
func Build(txs []ledger.Transaction, evs []ledger.Event, now time.Time) Overview {
	ov := Overview{
		NetWorth:        NetWorth(txs).InexactFloat64(),
		MonthlyExpenses: MonthlyExpenses(txs, now).InexactFloat64(),
		AsOf:            ledger.NewTimestamp(now),
		Transactions:    len(txs),
		Events:          make([]EventCountdown, 0, len(evs)),
	}
	for _, ev := range SortEvents(evs) {
		days := DaysRemaining(ev.Date.Time, now)
		ov.Events = append(ov.Events, EventCountdown{
			Event:         ev,
			DaysRemaining: days,
			Countdown:     Countdown(days),
		})
	}
	return ov
}
