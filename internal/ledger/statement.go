package ledger

import (
	"sort"

	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/kilincfaruk/FuatAtolye/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Statement is one customer's paged "devir" statement: the balance carried in
// from before the window, the window's itemized entries, and the closing
// balance carried out.
type Statement struct {
	Customer string
	Window   Window

	OpeningCash decimal.Decimal
	OpeningGold decimal.Decimal // fine gold grams

	PeriodCashCharged  decimal.Decimal
	PeriodGoldCharged  decimal.Decimal
	PeriodCashReceived decimal.Decimal
	PeriodGoldReceived decimal.Decimal

	ClosingCash decimal.Decimal
	ClosingGold decimal.Decimal

	// Items is the requested page of period entries, newest first.
	Items      []Entry
	Page       int
	PageCount  int
	TotalItems int

	// ShowOpeningRow marks the page that renders the synthetic
	// opening-balance line: the last page only, so the oldest entries and
	// the carried-in balance appear together.
	ShowOpeningRow bool
}

// BuildStatement partitions a customer's entries against the window in a
// single pass over a single descending-date sort, then slices the requested
// page. Pure: no wall clock, no mutation of the input beyond the local sort
// copy.
func BuildStatement(customer string, entries []Entry, window Window, page int) Statement {
	st := Statement{Customer: customer, Window: window}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var period []Entry
	for _, e := range sorted {
		switch window.Classify(e.Date) {
		case PlacementExcluded:
			continue
		case PlacementOpening:
			switch e.Kind {
			case enums.EntryKindJob:
				st.OpeningCash = st.OpeningCash.Add(e.Charge())
				if !e.IsSilver() {
					st.OpeningGold = st.OpeningGold.Add(e.FineWeight)
				}
			case enums.EntryKindPayment:
				st.OpeningCash = st.OpeningCash.Sub(e.CashAmount)
				st.OpeningGold = st.OpeningGold.Sub(e.FineGoldAmount)
			}
		case PlacementPeriod:
			period = append(period, e)
			switch e.Kind {
			case enums.EntryKindJob:
				st.PeriodCashCharged = st.PeriodCashCharged.Add(e.Charge())
				if !e.IsSilver() {
					st.PeriodGoldCharged = st.PeriodGoldCharged.Add(e.FineWeight)
				}
			case enums.EntryKindPayment:
				st.PeriodCashReceived = st.PeriodCashReceived.Add(e.CashAmount)
				st.PeriodGoldReceived = st.PeriodGoldReceived.Add(e.FineGoldAmount)
			}
		}
	}

	st.ClosingCash = st.OpeningCash.Add(st.PeriodCashCharged).Sub(st.PeriodCashReceived)
	st.ClosingGold = st.OpeningGold.Add(st.PeriodGoldCharged).Sub(st.PeriodGoldReceived)

	st.TotalItems = len(period)
	st.PageCount = pagination.PageCount(len(period), pagination.StatementPageSize)
	st.Page = pagination.ClampPage(page, len(period), pagination.StatementPageSize)
	lo, hi := pagination.Slice(st.Page, len(period), pagination.StatementPageSize)
	st.Items = period[lo:hi]
	st.ShowOpeningRow = st.Page == st.PageCount

	return st
}
