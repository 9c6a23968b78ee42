package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func job(date, price, fineness, fineWeight string) ledger.Entry {
	return ledger.Entry{
		ID:         uuid.New(),
		Kind:       enums.EntryKindJob,
		JobType:    "Yüzük Rodaj",
		Date:       day(date),
		Quantity:   1,
		UnitPrice:  dec(price),
		Fineness:   fineness,
		FineWeight: dec(fineWeight),
	}
}

func payment(date, cash, gold string, auto bool) ledger.Entry {
	return ledger.Entry{
		ID:             uuid.New(),
		Kind:           enums.EntryKindPayment,
		Date:           day(date),
		CashAmount:     dec(cash),
		FineGoldAmount: dec(gold),
		AutoGenerated:  auto,
	}
}

func TestBuildStatementReportRows(t *testing.T) {
	window := ledger.Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	entries := []ledger.Entry{
		job("2024-02-10", "1000", "0.916", "4.58"),
		job("2024-03-05", "500", "0.916", "9.163"),
		payment("2024-03-15", "400", "0", true),
	}

	report := BuildStatementReport(ledger.BuildStatement("Ahmet", entries, window, 1))

	if report.OpeningCash != "1000.00" {
		t.Errorf("OpeningCash = %s, want 1000.00", report.OpeningCash)
	}
	if report.ClosingCash != "1100.00" {
		t.Errorf("ClosingCash = %s, want 1100.00", report.ClosingCash)
	}
	// two period rows plus the opening row on the (single) last page
	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}
	if !report.Rows[2].IsOpening || report.Rows[2].Description != "Devir" {
		t.Errorf("last row = %+v, want the opening row", report.Rows[2])
	}
	if report.Rows[1].GoldCharge != "9.163" {
		t.Errorf("GoldCharge = %s, want 3-decimal weight", report.Rows[1].GoldCharge)
	}
	if report.Rows[0].Description != "Ödeme (Otomatik)" {
		t.Errorf("Description = %s, want the auto payment label", report.Rows[0].Description)
	}
}

func TestBuildStatementReportSilverColumn(t *testing.T) {
	window := ledger.Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	entries := []ledger.Entry{
		job("2024-03-05", "200", "Gümüş", "12.5"),
	}

	report := BuildStatementReport(ledger.BuildStatement("Ayşe", entries, window, 1))
	if report.Rows[0].SilverAmount != "12.500" {
		t.Errorf("SilverAmount = %s, want 12.500", report.Rows[0].SilverAmount)
	}
	if report.Rows[0].GoldCharge != "" {
		t.Error("silver jobs must not fill the gold column")
	}
}

func TestWriteStatementXLSX(t *testing.T) {
	window := ledger.Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	var entries []ledger.Entry
	for i := 1; i <= 12; i++ {
		entries = append(entries, job("2024-03-10", "100", "0.916", "1"))
	}

	var buf bytes.Buffer
	if err := WriteStatementXLSX(&buf, "Ahmet", entries, window); err != nil {
		t.Fatalf("WriteStatementXLSX error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Ekstre")
	if err != nil {
		t.Fatal(err)
	}
	// header + 12 items + opening row; the summary sits two rows lower
	if len(rows) < 14 {
		t.Fatalf("rows = %d, want all pages flattened into one sheet", len(rows))
	}
	if rows[0][0] != "Tarih" {
		t.Errorf("header = %q, want Tarih", rows[0][0])
	}
}

func TestBuildFullLedgerReport(t *testing.T) {
	window := ledger.Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	customers := []ledger.CustomerEntries{
		{Name: "Ahmet", Entries: []ledger.Entry{
			job("2024-03-20", "500", "0.916", "9.16"),
			job("2024-03-05", "200", "0.916", "1"),
			payment("2024-03-25", "300", "0", false),
		}},
		{Name: "Boş", Entries: []ledger.Entry{
			job("2024-01-01", "999", "0.916", "1"), // outside window
		}},
	}

	report := BuildFullLedgerReport(customers, window)
	if len(report.Sections) != 1 {
		t.Fatalf("sections = %d, want customers without window activity dropped", len(report.Sections))
	}
	section := report.Sections[0]
	if section.Rows[0].Date != "2024-03-05" {
		t.Errorf("first row date = %s, want chronological order", section.Rows[0].Date)
	}
	if section.CashBalance != "400.00" {
		t.Errorf("CashBalance = %s, want 400.00 (700 charged − 300 received)", section.CashBalance)
	}
}
