package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/expenses"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type expensePayload struct {
	Type        string          `json:"type" validate:"max=100"`
	Description string          `json:"description" validate:"max=1000"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required"`
}

func (p expensePayload) toInput() (expenses.ExpenseInput, error) {
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return expenses.ExpenseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}
	return expenses.ExpenseInput{
		Type:        p.Type,
		Description: p.Description,
		Amount:      p.Amount,
		Date:        date,
	}, nil
}

// ExpensesList returns all workshop expenses, newest first.
func ExpensesList(svc expenses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		list, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ExpensesTotal sums expenses inside a date window straight from the
// database, bypassing the snapshot.
func ExpensesTotal(svc expenses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		window, err := windowFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		total, err := svc.TotalBetween(ctx, window.Start, window.End)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]decimal.Decimal{"total": total})
	}
}

// ExpenseCreate records a workshop expense.
func ExpenseCreate(svc expenses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload expensePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		expense, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, expense)
	}
}

// ExpenseUpdate rewrites an expense.
func ExpenseUpdate(svc expenses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "expenseID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload expensePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		expense, err := svc.Update(ctx, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, expense)
	}
}

// ExpenseDelete removes an expense.
func ExpenseDelete(svc expenses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "expenseID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
