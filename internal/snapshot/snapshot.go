package snapshot

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
)

// Snapshot is one consistent read of every table the reporting side consumes.
// It is built whole and swapped in atomically; readers never see a partially
// refreshed state.
type Snapshot struct {
	Customers []models.Customer
	Jobs      []models.JobEntry
	Payments  []models.Payment
	Expenses  []models.Expense
	WorkTypes []models.WorkType
	LoadedAt  time.Time
}

// Entries groups the snapshot's jobs and payments per customer as normalized
// ledger entries, ordered by customer name so aggregation is deterministic.
// Rows referencing a missing customer are dropped.
func (s Snapshot) Entries() []ledger.CustomerEntries {
	names := make(map[uuid.UUID]string, len(s.Customers))
	for _, c := range s.Customers {
		names[c.ID] = c.Name
	}

	grouped := make(map[uuid.UUID][]ledger.Entry)
	for _, job := range s.Jobs {
		if _, ok := names[job.CustomerID]; !ok {
			continue
		}
		grouped[job.CustomerID] = append(grouped[job.CustomerID], jobEntry(job, names[job.CustomerID]))
	}
	for _, payment := range s.Payments {
		if _, ok := names[payment.CustomerID]; !ok {
			continue
		}
		grouped[payment.CustomerID] = append(grouped[payment.CustomerID], paymentEntry(payment, names[payment.CustomerID]))
	}

	out := make([]ledger.CustomerEntries, 0, len(s.Customers))
	for _, customer := range s.Customers {
		entries, ok := grouped[customer.ID]
		if !ok {
			continue
		}
		out = append(out, ledger.CustomerEntries{Name: customer.Name, Entries: entries})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CustomerEntries returns one customer's normalized entries, or nil when the
// customer has none.
func (s Snapshot) CustomerEntries(customerID uuid.UUID) []ledger.Entry {
	var name string
	for _, c := range s.Customers {
		if c.ID == customerID {
			name = c.Name
			break
		}
	}
	if name == "" {
		return nil
	}

	var entries []ledger.Entry
	for _, job := range s.Jobs {
		if job.CustomerID == customerID {
			entries = append(entries, jobEntry(job, name))
		}
	}
	for _, payment := range s.Payments {
		if payment.CustomerID == customerID {
			entries = append(entries, paymentEntry(payment, name))
		}
	}
	return entries
}

// ExpenseItems projects the snapshot's expenses for the aggregator.
func (s Snapshot) ExpenseItems() []ledger.ExpenseItem {
	items := make([]ledger.ExpenseItem, 0, len(s.Expenses))
	for _, expense := range s.Expenses {
		items = append(items, ledger.ExpenseItem{Amount: expense.Amount, Date: expense.Date})
	}
	return items
}

func jobEntry(job models.JobEntry, customer string) ledger.Entry {
	entry := ledger.Entry{
		ID:           job.ID,
		Kind:         enums.EntryKindJob,
		Customer:     customer,
		Date:         job.Date,
		Quantity:     job.Quantity,
		JobType:      job.JobType,
		Fineness:     job.Fineness,
		GoldWeight:   job.GoldWeight,
		UnitPrice:    job.UnitPrice,
		IsPaid:       job.IsPaid,
		Note:         job.Note,
		IsEdited:     job.IsEdited,
		LastEditedAt: job.LastEditedAt,
	}
	if job.FineWeight.Valid {
		entry.FineWeight = job.FineWeight.Decimal
	}
	return entry
}

func paymentEntry(payment models.Payment, customer string) ledger.Entry {
	return ledger.Entry{
		ID:             payment.ID,
		Kind:           enums.EntryKindPayment,
		Customer:       customer,
		Date:           payment.Date,
		CashAmount:     payment.CashAmount,
		FineGoldAmount: payment.FineGoldAmount,
		SilverAmount:   payment.SilverAmount,
		AutoGenerated:  payment.AutoGenerated,
		Note:           payment.Note,
		IsEdited:       payment.IsEdited,
		LastEditedAt:   payment.LastEditedAt,
	}
}
