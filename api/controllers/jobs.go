package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type jobPayload struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	JobType    string          `json:"job_type" validate:"max=300"`
	Fineness   string          `json:"milyem" validate:"max=50"`
	GoldWeight string          `json:"gold_weight" validate:"max=50"`
	Price      decimal.Decimal `json:"price"`
	IsPaid     bool            `json:"is_paid"`
	Date       string          `json:"date" validate:"required"`
	Note       string          `json:"note" validate:"max=1000"`
}

func (p jobPayload) toInput() (jobs.JobInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return jobs.JobInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id")
	}
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return jobs.JobInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}
	return jobs.JobInput{
		CustomerID: customerID,
		Quantity:   p.Quantity,
		JobType:    p.JobType,
		Fineness:   p.Fineness,
		RawWeight:  p.GoldWeight,
		UnitPrice:  p.Price,
		IsPaid:     p.IsPaid,
		Date:       date,
		Note:       p.Note,
	}, nil
}

// JobsList returns every job, newest first, optionally filtered by customer.
func JobsList(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if raw := r.URL.Query().Get("customer_id"); raw != "" {
			customerID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id"))
				return
			}
			list, err := svc.ListByCustomer(ctx, customerID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, list)
			return
		}

		list, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// JobCreate submits a new job. A paid job also creates its auto payment; if
// only that payment write fails the job is still returned, with a warning.
func JobCreate(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload jobPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		job, err := svc.Submit(ctx, input)
		if pkgerrors.IsLinkageWarning(err) {
			logg.Warn(logg.WithField(ctx, "job_id", job.ID.String()), "job saved with linkage warning")
			responses.WriteSuccessWithWarning(w, job, err)
			return
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, job)
	}
}

// JobUpdate rewrites a job and applies paid-transition side effects.
func JobUpdate(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "jobID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload jobPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		job, err := svc.Update(ctx, id, input)
		if pkgerrors.IsLinkageWarning(err) {
			logg.Warn(logg.WithField(ctx, "job_id", job.ID.String()), "job updated with linkage warning")
			responses.WriteSuccessWithWarning(w, job, err)
			return
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, job)
	}
}

// JobDelete removes a job; a paid job's auto payment goes with it.
func JobDelete(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "jobID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		err = svc.Delete(ctx, id)
		if pkgerrors.IsLinkageWarning(err) {
			responses.WriteSuccessWithWarning(w, map[string]string{"status": "deleted"}, err)
			return
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
