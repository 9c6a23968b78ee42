package snapshot

import (
	"context"
	"time"

	"github.com/kilincfaruk/FuatAtolye/internal/customers"
	"github.com/kilincfaruk/FuatAtolye/internal/expenses"
	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/internal/worktypes"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
)

// LoaderParams groups the repositories the database loader reads from.
type LoaderParams struct {
	Customers customers.Repository
	Jobs      jobs.Repository
	Payments  payments.Repository
	Expenses  expenses.Repository
	WorkTypes worktypes.Repository
}

type dbLoader struct {
	params LoaderParams
	now    func() time.Time
}

// NewLoader builds a Loader that reads every table through the repositories.
// All date-window filtering happens downstream in the ledger core, so the
// loader fetches full tables.
func NewLoader(params LoaderParams) (Loader, error) {
	if params.Customers == nil || params.Jobs == nil || params.Payments == nil ||
		params.Expenses == nil || params.WorkTypes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "all snapshot repositories are required")
	}
	return &dbLoader{params: params, now: time.Now}, nil
}

func (l *dbLoader) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Customers, err = l.params.Customers.List(ctx); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customers")
	}
	if snap.Jobs, err = l.params.Jobs.List(ctx); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load jobs")
	}
	if snap.Payments, err = l.params.Payments.List(ctx); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payments")
	}
	if snap.Expenses, err = l.params.Expenses.List(ctx); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load expenses")
	}
	if snap.WorkTypes, err = l.params.WorkTypes.List(ctx, true); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load work types")
	}

	snap.LoadedAt = l.now()
	return snap, nil
}
