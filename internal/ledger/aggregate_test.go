package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
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

func job(customer, date, price string, qty int, fineness, fineWeight string) Entry {
	return Entry{
		ID:         uuid.New(),
		Kind:       enums.EntryKindJob,
		Customer:   customer,
		Date:       day(date),
		Quantity:   qty,
		UnitPrice:  dec(price),
		Fineness:   fineness,
		FineWeight: dec(fineWeight),
	}
}

func payment(customer, date, cash, gold, silver string) Entry {
	return Entry{
		ID:             uuid.New(),
		Kind:           enums.EntryKindPayment,
		Customer:       customer,
		Date:           day(date),
		CashAmount:     dec(cash),
		FineGoldAmount: dec(gold),
		SilverAmount:   dec(silver),
	}
}

func TestAggregateWindowScoped(t *testing.T) {
	window := Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	customers := []CustomerEntries{
		{Name: "Ahmet", Entries: []Entry{
			job("Ahmet", "2024-02-15", "1000", 1, "0.916", "4.58"), // before window
			job("Ahmet", "2024-03-10", "500", 2, "0.916", "9.16"),
			payment("Ahmet", "2024-03-20", "300", "2", "0"),
			job("Ahmet", "2024-04-02", "999", 1, "0.916", "1"), // after window
		}},
	}

	stats := Aggregate(customers, nil, window)

	cs := stats.Customers[0]
	if cs.JobCount != 1 {
		t.Fatalf("JobCount = %d, want 1 (out-of-window jobs ignored)", cs.JobCount)
	}
	if !cs.CashCharged.Equal(dec("1000")) {
		t.Errorf("CashCharged = %s, want 1000 (500 × 2)", cs.CashCharged)
	}
	if !cs.GoldCharged.Equal(dec("9.16")) {
		t.Errorf("GoldCharged = %s, want 9.16", cs.GoldCharged)
	}
	if !cs.CashActivityBalance.Equal(dec("700")) {
		t.Errorf("CashActivityBalance = %s, want 700", cs.CashActivityBalance)
	}
	if !cs.GoldActivityBalance.Equal(dec("7.16")) {
		t.Errorf("GoldActivityBalance = %s, want 7.16", cs.GoldActivityBalance)
	}
}

func TestAggregateSilverSplit(t *testing.T) {
	window := Window{Start: day("2024-01-01"), End: day("2024-12-31")}
	customers := []CustomerEntries{
		{Name: "Ayşe", Entries: []Entry{
			job("Ayşe", "2024-05-01", "200", 1, "Gümüş", "12.5"),
			job("Ayşe", "2024-05-02", "300", 1, "0.916", "4.58"),
			payment("Ayşe", "2024-05-10", "0", "1.5", "10"),
		}},
	}

	stats := Aggregate(customers, nil, window)
	cs := stats.Customers[0]
	if !cs.SilverCharged.Equal(dec("12.5")) {
		t.Errorf("SilverCharged = %s, want 12.5", cs.SilverCharged)
	}
	if !cs.GoldCharged.Equal(dec("4.58")) {
		t.Errorf("GoldCharged = %s, want 4.58", cs.GoldCharged)
	}
	if !cs.SilverActivityBalance.Equal(dec("2.5")) {
		t.Errorf("SilverActivityBalance = %s, want 2.5", cs.SilverActivityBalance)
	}
	if !cs.GoldActivityBalance.Equal(dec("3.08")) {
		t.Errorf("GoldActivityBalance = %s, want 3.08", cs.GoldActivityBalance)
	}
}

func TestAggregateMostActiveFirstEncounteredWins(t *testing.T) {
	window := Window{Start: day("2024-01-01"), End: day("2024-12-31")}
	customers := []CustomerEntries{
		{Name: "Ali", Entries: []Entry{
			job("Ali", "2024-02-01", "100", 1, "0.916", "1"),
			job("Ali", "2024-02-02", "100", 1, "0.916", "1"),
		}},
		{Name: "Veli", Entries: []Entry{
			job("Veli", "2024-03-01", "100", 1, "0.916", "1"),
			job("Veli", "2024-03-02", "100", 1, "0.916", "1"),
		}},
	}

	stats := Aggregate(customers, nil, window)
	if stats.MostActive == nil {
		t.Fatal("expected a most-active customer")
	}
	if stats.MostActive.Name != "Ali" {
		t.Errorf("MostActive = %s, want Ali (first on tie)", stats.MostActive.Name)
	}
	if stats.TotalJobs != 4 {
		t.Errorf("TotalJobs = %d, want 4", stats.TotalJobs)
	}
}

func TestAggregateNoJobsNoMostActive(t *testing.T) {
	window := Window{Start: day("2024-01-01"), End: day("2024-01-31")}
	customers := []CustomerEntries{
		{Name: "Ali", Entries: []Entry{payment("Ali", "2024-01-05", "100", "0", "0")}},
	}

	stats := Aggregate(customers, nil, window)
	if stats.MostActive != nil {
		t.Errorf("MostActive = %s, want nil when nobody has jobs", stats.MostActive.Name)
	}
}

func TestAggregateExpensesWindowFiltered(t *testing.T) {
	window := Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	expenses := []ExpenseItem{
		{Amount: dec("500"), Date: day("2024-03-15")},
		{Amount: dec("999"), Date: day("2024-02-15")},
		{Amount: dec("250"), Date: day("2024-03-31")}, // boundary day counts
	}

	stats := Aggregate(nil, expenses, window)
	if !stats.TotalExpenses.Equal(dec("750")) {
		t.Errorf("TotalExpenses = %s, want 750", stats.TotalExpenses)
	}
}

func TestAggregateBoundaryInclusive(t *testing.T) {
	window := Window{Start: day("2024-03-01"), End: day("2024-03-31")}
	customers := []CustomerEntries{
		{Name: "Can", Entries: []Entry{
			job("Can", "2024-03-01", "100", 1, "0.916", "1"),
			job("Can", "2024-03-31", "100", 1, "0.916", "1"),
			job("Can", "2024-02-29", "100", 1, "0.916", "1"),
			job("Can", "2024-04-01", "100", 1, "0.916", "1"),
		}},
	}

	stats := Aggregate(customers, nil, window)
	if got := stats.Customers[0].JobCount; got != 2 {
		t.Errorf("JobCount = %d, want 2 (both boundary days in, neighbors out)", got)
	}
}
