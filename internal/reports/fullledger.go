package reports

import (
	"sort"

	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
)

// CustomerSection is one customer's block in the full-ledger report:
// chronological rows plus that customer's window totals.
type CustomerSection struct {
	Customer     string         `json:"customer"`
	Rows         []StatementRow `json:"rows"`
	CashBalance  string         `json:"cash_balance"`
	GoldBalance  string         `json:"gold_balance"`
	SilverIntake string         `json:"silver_intake"`
}

// FullLedgerReport is the printable whole-book view for a window: every
// customer with activity, oldest entries first within each section.
type FullLedgerReport struct {
	Sections []CustomerSection `json:"sections"`
}

// BuildFullLedgerReport renders every active customer's window entries. The
// per-customer balances come from the aggregator so the print view can never
// disagree with the dashboard.
func BuildFullLedgerReport(customers []ledger.CustomerEntries, window ledger.Window) FullLedgerReport {
	stats := ledger.Aggregate(customers, nil, window)
	balances := make(map[string]ledger.CustomerStats, len(stats.Customers))
	for _, cs := range stats.Customers {
		balances[cs.Name] = cs
	}

	var report FullLedgerReport
	for _, ce := range customers {
		var inWindow []ledger.Entry
		for _, entry := range ce.Entries {
			if window.Contains(entry.Date) {
				inWindow = append(inWindow, entry)
			}
		}
		if len(inWindow) == 0 {
			continue
		}
		sort.SliceStable(inWindow, func(i, j int) bool {
			return inWindow[i].Date.Before(inWindow[j].Date)
		})

		section := CustomerSection{Customer: ce.Name}
		for _, entry := range inWindow {
			section.Rows = append(section.Rows, entryRow(entry))
		}
		cs := balances[ce.Name]
		section.CashBalance = ledger.FormatAmount(cs.CashActivityBalance)
		section.GoldBalance = ledger.FormatWeight(cs.GoldActivityBalance)
		section.SilverIntake = ledger.FormatWeight(cs.SilverActivityBalance)
		report.Sections = append(report.Sections, section)
	}
	return report
}
