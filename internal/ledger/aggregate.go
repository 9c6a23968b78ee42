package ledger

import (
	"time"

	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
)

// CustomerStats accumulates one customer's activity inside a window. The
// ActivityBalance fields cover window activity only; any balance carried in
// from before the window is the statement engine's concern, not ours.
type CustomerStats struct {
	Name     string `json:"name"`
	JobCount int    `json:"job_count"`

	CashCharged    decimal.Decimal `json:"cash_charged"`
	GoldCharged    decimal.Decimal `json:"gold_charged"`   // fine gold grams
	SilverCharged  decimal.Decimal `json:"silver_charged"` // raw silver grams
	CashReceived   decimal.Decimal `json:"cash_received"`
	GoldReceived   decimal.Decimal `json:"gold_received"`
	SilverReceived decimal.Decimal `json:"silver_received"`

	CashActivityBalance   decimal.Decimal `json:"cash_activity_balance"`
	GoldActivityBalance   decimal.Decimal `json:"gold_activity_balance"`
	SilverActivityBalance decimal.Decimal `json:"silver_activity_balance"`
}

// Stats is the dashboard aggregate over every customer for one window.
type Stats struct {
	Window    Window          `json:"window"`
	Customers []CustomerStats `json:"customers"`

	TotalJobs           int             `json:"total_jobs"`
	TotalCashCharged    decimal.Decimal `json:"total_cash_charged"`
	TotalGoldCharged    decimal.Decimal `json:"total_gold_charged"`
	TotalSilverCharged  decimal.Decimal `json:"total_silver_charged"`
	TotalCashReceived   decimal.Decimal `json:"total_cash_received"`
	TotalGoldReceived   decimal.Decimal `json:"total_gold_received"`
	TotalSilverReceived decimal.Decimal `json:"total_silver_received"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`

	// MostActive is the customer with the highest job count; the first
	// encountered wins on ties, so input order decides.
	MostActive *CustomerStats `json:"most_active,omitempty"`
}

// ExpenseItem is the aggregator's view of an expense row.
type ExpenseItem struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Aggregate computes window-scoped dashboard stats. Entries outside
// [window.Start, window.End] are ignored outright; there is no carry-forward
// tolerance here.
func Aggregate(customers []CustomerEntries, expenses []ExpenseItem, window Window) Stats {
	stats := Stats{Window: window}

	for _, ce := range customers {
		cs := CustomerStats{Name: ce.Name}
		for _, e := range ce.Entries {
			if !window.Contains(e.Date) {
				continue
			}
			switch e.Kind {
			case enums.EntryKindJob:
				cs.JobCount++
				cs.CashCharged = cs.CashCharged.Add(e.Charge())
				if e.IsSilver() {
					cs.SilverCharged = cs.SilverCharged.Add(e.FineWeight)
				} else {
					cs.GoldCharged = cs.GoldCharged.Add(e.FineWeight)
				}
			case enums.EntryKindPayment:
				cs.CashReceived = cs.CashReceived.Add(e.CashAmount)
				cs.GoldReceived = cs.GoldReceived.Add(e.FineGoldAmount)
				cs.SilverReceived = cs.SilverReceived.Add(e.SilverAmount)
			}
		}

		cs.CashActivityBalance = cs.CashCharged.Sub(cs.CashReceived)
		cs.GoldActivityBalance = cs.GoldCharged.Sub(cs.GoldReceived)
		cs.SilverActivityBalance = cs.SilverCharged.Sub(cs.SilverReceived)

		stats.Customers = append(stats.Customers, cs)
		stats.TotalJobs += cs.JobCount
		stats.TotalCashCharged = stats.TotalCashCharged.Add(cs.CashCharged)
		stats.TotalGoldCharged = stats.TotalGoldCharged.Add(cs.GoldCharged)
		stats.TotalSilverCharged = stats.TotalSilverCharged.Add(cs.SilverCharged)
		stats.TotalCashReceived = stats.TotalCashReceived.Add(cs.CashReceived)
		stats.TotalGoldReceived = stats.TotalGoldReceived.Add(cs.GoldReceived)
		stats.TotalSilverReceived = stats.TotalSilverReceived.Add(cs.SilverReceived)
	}

	for i := range stats.Customers {
		cs := &stats.Customers[i]
		if cs.JobCount == 0 {
			continue
		}
		if stats.MostActive == nil || cs.JobCount > stats.MostActive.JobCount {
			stats.MostActive = cs
		}
	}

	for _, exp := range expenses {
		if window.Contains(exp.Date) {
			stats.TotalExpenses = stats.TotalExpenses.Add(exp.Amount)
		}
	}

	return stats
}
