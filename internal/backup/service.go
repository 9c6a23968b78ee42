package backup

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/internal/customers"
	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
)

// Summary reports what an import run did with the supplied rows.
type Summary struct {
	Jobs     int `json:"jobs"`
	Payments int `json:"payments"`
	Skipped  int `json:"skipped"`
}

// Service restores legacy backup rows. Rows pass through the ledger
// normalizer, so legacy Turkish field aliases resolve the same way they do
// everywhere else; unclassifiable rows are counted, never guessed.
type Service interface {
	Import(ctx context.Context, records []ledger.RawRecord) (Summary, error)
}

type service struct {
	customers customers.Service
	jobs      jobs.Repository
	payments  payments.Repository
}

type ServiceParams struct {
	Customers customers.Service
	Jobs      jobs.Repository
	Payments  payments.Repository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Customers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer service is required")
	}
	if params.Jobs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "job repository is required")
	}
	if params.Payments == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment repository is required")
	}
	return &service{
		customers: params.Customers,
		jobs:      params.Jobs,
		payments:  params.Payments,
	}, nil
}

func (s *service) Import(ctx context.Context, records []ledger.RawRecord) (Summary, error) {
	var summary Summary
	for _, raw := range records {
		entry, ok := ledger.Normalize(raw)
		if !ok || entry.Customer == "" {
			summary.Skipped++
			continue
		}
		// expense-typed and any future kinds have no ledger row here; they
		// must never land as payments
		if entry.Kind != enums.EntryKindJob && entry.Kind != enums.EntryKindPayment {
			summary.Skipped++
			continue
		}

		customer, err := s.customers.Ensure(ctx, entry.Customer)
		if err != nil {
			return summary, err
		}

		switch entry.Kind {
		case enums.EntryKindJob:
			// stored fine weight wins; rows without one get it re-derived
			fineWeight := decimal.NewNullDecimal(entry.FineWeight)
			if entry.FineWeight.IsZero() {
				derived, ok := ledger.DeriveFineWeight(entry.GoldWeight.String(), entry.Fineness)
				fineWeight = decimal.NullDecimal{Decimal: derived, Valid: ok}
			}
			job := models.JobEntry{
				ID:           entry.ID,
				CustomerID:   customer.ID,
				JobType:      entry.JobType,
				Quantity:     entry.Quantity,
				Fineness:     entry.Fineness,
				GoldWeight:   entry.GoldWeight,
				UnitPrice:    entry.UnitPrice,
				FineWeight:   fineWeight,
				IsPaid:       entry.IsPaid,
				Date:         entry.Date,
				Note:         entry.Note,
				IsEdited:     entry.IsEdited,
				LastEditedAt: entry.LastEditedAt,
			}
			if err := s.jobs.Create(ctx, &job); err != nil {
				return summary, err
			}
			summary.Jobs++
		case enums.EntryKindPayment:
			payment := models.Payment{
				ID:             entry.ID,
				CustomerID:     customer.ID,
				CashAmount:     entry.CashAmount,
				FineGoldAmount: entry.FineGoldAmount,
				SilverAmount:   entry.SilverAmount,
				Date:           entry.Date,
				Note:           entry.Note,
				AutoGenerated:  entry.AutoGenerated,
				IsEdited:       entry.IsEdited,
				LastEditedAt:   entry.LastEditedAt,
			}
			if err := s.payments.Create(ctx, &payment); err != nil {
				return summary, err
			}
			summary.Payments++
		}
	}
	return summary, nil
}
