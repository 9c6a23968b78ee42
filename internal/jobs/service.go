package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/linkage"
	"github.com/kilincfaruk/FuatAtolye/internal/worktypes"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobInput carries the writable job fields. RawWeight and Fineness arrive as
// the hand-entered text; the fine weight is derived here on every write and
// never accepted from the client.
type JobInput struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Quantity   int             `json:"quantity"`
	JobType    string          `json:"job_type"`
	Fineness   string          `json:"milyem"`
	RawWeight  string          `json:"gold_weight"`
	UnitPrice  decimal.Decimal `json:"price"`
	IsPaid     bool            `json:"is_paid"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note"`
}

// ServiceParams groups dependencies for the job service.
type ServiceParams struct {
	Repo      Repository
	WorkTypes worktypes.Service
	Linkage   *linkage.Resolver
}

// Service exposes job entry management.
//
// Submit/Update/Delete may return a linkage warning (pkg/errors
// CodeLinkageWarning) together with a non-nil job: the job write itself
// succeeded and only the dependent auto-payment mutation failed. Callers must
// treat that as success-with-warning, not failure.
type Service interface {
	Submit(ctx context.Context, input JobInput) (*models.JobEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*models.JobEntry, error)
	List(ctx context.Context) ([]models.JobEntry, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.JobEntry, error)
	Update(ctx context.Context, id uuid.UUID, input JobInput) (*models.JobEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	workTypes worktypes.Service
	linkage   *linkage.Resolver
	now       func() time.Time
}

// NewService builds a job service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "job repository is required")
	}
	if params.WorkTypes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work type service is required")
	}
	if params.Linkage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "linkage resolver is required")
	}
	return &service{
		repo:      params.Repo,
		workTypes: params.WorkTypes,
		linkage:   params.Linkage,
		now:       time.Now,
	}, nil
}

// Submit creates a job. The fine weight is derived from the raw weight and
// fineness marker; unknown job types are added to the price list seeded with
// the submitted price. When the job arrives already marked paid the auto
// payment is created immediately.
func (s *service) Submit(ctx context.Context, input JobInput) (*models.JobEntry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.JobType); name != "" {
		if _, err := s.workTypes.Ensure(ctx, name, input.UnitPrice); err != nil {
			return nil, err
		}
	}

	job := &models.JobEntry{
		CustomerID: input.CustomerID,
		JobType:    strings.TrimSpace(input.JobType),
		Quantity:   normalizeQuantity(input.Quantity),
		Fineness:   strings.TrimSpace(input.Fineness),
		GoldWeight: ledger.ParseDecimal(input.RawWeight),
		UnitPrice:  input.UnitPrice,
		FineWeight: deriveFineWeight(input),
		IsPaid:     input.IsPaid,
		Date:       input.Date,
		Note:       input.Note,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create job")
	}

	if job.IsPaid {
		if err := s.linkage.Apply(ctx, linkage.Transition{
			Job:           job,
			OldPaid:       false,
			NewPaid:       true,
			OldCustomerID: job.CustomerID,
		}); err != nil {
			return job, err
		}
	}
	return job, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.JobEntry, error) {
	return s.get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.JobEntry, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list jobs")
	}
	return jobs, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.JobEntry, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	jobs, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer jobs")
	}
	return jobs, nil
}

// Update rewrites a job and runs the paid-transition rules. The job write
// always happens first; if the payment side then fails the returned error is
// a linkage warning and the job is still the updated row.
func (s *service) Update(ctx context.Context, id uuid.UUID, input JobInput) (*models.JobEntry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	job, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPaid := job.IsPaid
	oldCustomerID := job.CustomerID

	if name := strings.TrimSpace(input.JobType); name != "" {
		if _, err := s.workTypes.Ensure(ctx, name, input.UnitPrice); err != nil {
			return nil, err
		}
	}

	now := s.now()
	job.CustomerID = input.CustomerID
	job.JobType = strings.TrimSpace(input.JobType)
	job.Quantity = normalizeQuantity(input.Quantity)
	job.Fineness = strings.TrimSpace(input.Fineness)
	job.GoldWeight = ledger.ParseDecimal(input.RawWeight)
	job.UnitPrice = input.UnitPrice
	job.FineWeight = deriveFineWeight(input)
	job.IsPaid = input.IsPaid
	job.Date = input.Date
	job.Note = input.Note
	job.IsEdited = true
	job.LastEditedAt = &now

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update job")
	}

	if err := s.linkage.Apply(ctx, linkage.Transition{
		Job:           job,
		OldPaid:       oldPaid,
		NewPaid:       job.IsPaid,
		OldCustomerID: oldCustomerID,
	}); err != nil {
		return job, err
	}
	return job, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	job, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete job")
	}

	// a paid job leaves an auto payment behind; clean it up the same way an
	// un-pay edit would
	if job.IsPaid {
		return s.linkage.Apply(ctx, linkage.Transition{
			Job:           job,
			OldPaid:       true,
			NewPaid:       false,
			OldCustomerID: job.CustomerID,
		})
	}
	return nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*models.JobEntry, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "job id is required")
	}
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "job not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load job")
	}
	return job, nil
}

func deriveFineWeight(input JobInput) decimal.NullDecimal {
	fine, ok := ledger.DeriveFineWeight(input.RawWeight, input.Fineness)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: fine, Valid: true}
}

func normalizeQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}

func validateInput(input JobInput) error {
	if input.CustomerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if input.Date.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "job date is required")
	}
	if input.UnitPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}
	return nil
}
