package reports

import (
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
)

// StatementRow is one rendered line of a customer statement. Amounts are
// pre-formatted strings (2 dp for currency, 3 dp for weights) so every output
// surface prints identical numbers.
type StatementRow struct {
	Date         string `json:"date"`
	Description  string `json:"description"`
	CashCharge   string `json:"cash_charge,omitempty"`
	CashPayment  string `json:"cash_payment,omitempty"`
	GoldCharge   string `json:"gold_charge,omitempty"`
	GoldPayment  string `json:"gold_payment,omitempty"`
	SilverAmount string `json:"silver_amount,omitempty"`
	Note         string `json:"note,omitempty"`
	IsOpening    bool   `json:"is_opening,omitempty"`
}

// StatementReport is the rendered statement: rows for the requested page plus
// the balance summary built strictly from the engine's totals, never
// recomputed here.
type StatementReport struct {
	Customer    string         `json:"customer"`
	Rows        []StatementRow `json:"rows"`
	OpeningCash string         `json:"opening_cash"`
	OpeningGold string         `json:"opening_gold"`
	ClosingCash string         `json:"closing_cash"`
	ClosingGold string         `json:"closing_gold"`
	Page        int            `json:"page"`
	PageCount   int            `json:"page_count"`
	TotalItems  int            `json:"total_items"`
}

const openingDescription = "Devir"

// BuildStatementReport renders a statement page. The synthetic opening row
// appears after the items on the last page only, matching how the ledger book
// reads bottom-up to the carried balance.
func BuildStatementReport(st ledger.Statement) StatementReport {
	report := StatementReport{
		Customer:    st.Customer,
		OpeningCash: ledger.FormatAmount(st.OpeningCash),
		OpeningGold: ledger.FormatWeight(st.OpeningGold),
		ClosingCash: ledger.FormatAmount(st.ClosingCash),
		ClosingGold: ledger.FormatWeight(st.ClosingGold),
		Page:        st.Page,
		PageCount:   st.PageCount,
		TotalItems:  st.TotalItems,
	}

	for _, entry := range st.Items {
		report.Rows = append(report.Rows, entryRow(entry))
	}
	if st.ShowOpeningRow {
		report.Rows = append(report.Rows, StatementRow{
			Date:        st.Window.Start.Format("2006-01-02"),
			Description: openingDescription,
			CashCharge:  ledger.FormatAmount(st.OpeningCash),
			GoldCharge:  ledger.FormatWeight(st.OpeningGold),
			IsOpening:   true,
		})
	}
	return report
}

func entryRow(entry ledger.Entry) StatementRow {
	row := StatementRow{
		Date: entry.Date.Format("2006-01-02"),
		Note: entry.Note,
	}
	switch entry.Kind {
	case enums.EntryKindJob:
		row.Description = entry.JobType
		row.CashCharge = ledger.FormatAmount(entry.Charge())
		if entry.IsSilver() {
			row.SilverAmount = ledger.FormatWeight(entry.FineWeight)
		} else if !entry.FineWeight.IsZero() {
			row.GoldCharge = ledger.FormatWeight(entry.FineWeight)
		}
	case enums.EntryKindPayment:
		row.Description = "Ödeme"
		if entry.AutoGenerated {
			row.Description = "Ödeme (Otomatik)"
		}
		if !entry.CashAmount.IsZero() {
			row.CashPayment = ledger.FormatAmount(entry.CashAmount)
		}
		if !entry.FineGoldAmount.IsZero() {
			row.GoldPayment = ledger.FormatWeight(entry.FineGoldAmount)
		}
		if !entry.SilverAmount.IsZero() {
			row.SilverAmount = ledger.FormatWeight(entry.SilverAmount)
		}
	}
	return row
}
