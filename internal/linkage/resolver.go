package linkage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AutoPaymentNote marks payments the resolver created.
const AutoPaymentNote = "Otomatik ödeme"

// Transition describes a job's paid-state change after its own write has
// already succeeded. OldCustomerID is the customer before the edit; for fresh
// jobs it equals the job's customer.
type Transition struct {
	Job           *models.JobEntry
	OldPaid       bool
	NewPaid       bool
	OldCustomerID uuid.UUID
}

func (t Transition) customerChanged() bool {
	return t.OldCustomerID != uuid.Nil && t.OldCustomerID != t.Job.CustomerID
}

// Resolver keeps the "one auto payment per paid job" invariant across paid
// transitions. There is no stored job reference on the payment row; matching
// is best-effort on {customer, date, amounts, auto flag}, which means two
// identical jobs on the same day are indistinguishable here. Storing a job id
// on the payment would close that gap but would also change how existing rows
// match, so the heuristic stays as is.
type Resolver struct {
	repo payments.Repository
	now  func() time.Time
}

// NewResolver wires a linkage resolver with the payment repository.
func NewResolver(repo payments.Repository) (*Resolver, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment repository is required")
	}
	return &Resolver{repo: repo, now: time.Now}, nil
}

// Apply performs the payment-side mutation for a transition. The caller must
// have written the job first; Apply never touches the job. A payment-side
// failure is returned as a linkage warning, not a hard error, because the job
// write is already committed and must not be reported as failed.
func (r *Resolver) Apply(ctx context.Context, tr Transition) error {
	if tr.Job == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "linkage transition requires a job")
	}

	switch {
	case !tr.OldPaid && tr.NewPaid:
		return r.create(ctx, tr.Job)
	case tr.OldPaid && tr.NewPaid && tr.customerChanged():
		return r.move(ctx, tr)
	case tr.OldPaid && !tr.NewPaid:
		return r.remove(ctx, tr.Job)
	default:
		return nil
	}
}

func (r *Resolver) create(ctx context.Context, job *models.JobEntry) error {
	payment := &models.Payment{
		CustomerID:     job.CustomerID,
		CashAmount:     jobCash(job),
		FineGoldAmount: jobFineGold(job),
		Date:           job.Date,
		Note:           AutoPaymentNote,
		AutoGenerated:  true,
	}
	if err := r.repo.Create(ctx, payment); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeLinkageWarning, err, "job saved but auto payment could not be created")
	}
	return nil
}

// move relocates the auto payment to the job's new customer. The lookup uses
// the job's current date and amounts under the old customer; when nothing
// matches (the old row was hand-deleted, or the amounts changed in the same
// edit) a fresh auto payment is created under the new customer instead.
func (r *Resolver) move(ctx context.Context, tr Transition) error {
	job := tr.Job
	match := payments.AutoMatch{
		CustomerID:     tr.OldCustomerID,
		Date:           job.Date,
		FineGoldAmount: jobFineGold(job),
		CashAmount:     jobCash(job),
	}

	existing, err := r.repo.FindAuto(ctx, match)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.create(ctx, job)
		}
		return pkgerrors.Wrap(pkgerrors.CodeLinkageWarning, err, "job saved but auto payment lookup failed")
	}

	now := r.now()
	existing.CustomerID = job.CustomerID
	existing.IsEdited = true
	existing.LastEditedAt = &now
	if err := r.repo.Update(ctx, existing); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeLinkageWarning, err, "job saved but auto payment could not be moved")
	}
	return nil
}

func (r *Resolver) remove(ctx context.Context, job *models.JobEntry) error {
	match := payments.AutoMatch{
		CustomerID:     job.CustomerID,
		Date:           job.Date,
		FineGoldAmount: jobFineGold(job),
		CashAmount:     jobCash(job),
	}

	existing, err := r.repo.FindAuto(ctx, match)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// nothing to delete; the invariant already holds
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeLinkageWarning, err, "job saved but auto payment lookup failed")
	}
	if err := r.repo.Delete(ctx, existing.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeLinkageWarning, err, "job saved but auto payment could not be deleted")
	}
	return nil
}

func jobCash(job *models.JobEntry) decimal.Decimal {
	qty := job.Quantity
	if qty <= 0 {
		qty = 1
	}
	return job.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

func jobFineGold(job *models.JobEntry) decimal.Decimal {
	if !job.FineWeight.Valid {
		return decimal.Zero
	}
	return job.FineWeight.Decimal
}
