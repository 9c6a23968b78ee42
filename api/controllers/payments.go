package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type paymentPayload struct {
	CustomerID   string          `json:"customer_id" validate:"required,uuid"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	FineGold     decimal.Decimal `json:"has_amount"`
	SilverAmount decimal.Decimal `json:"silver_amount"`
	Date         string          `json:"date" validate:"required"`
	Note         string          `json:"note" validate:"max=1000"`
}

func (p paymentPayload) toInput() (payments.PaymentInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return payments.PaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id")
	}
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return payments.PaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}
	return payments.PaymentInput{
		CustomerID:     customerID,
		CashAmount:     p.CashAmount,
		FineGoldAmount: p.FineGold,
		SilverAmount:   p.SilverAmount,
		Date:           date,
		Note:           p.Note,
	}, nil
}

// PaymentsList returns payments, optionally scoped to one customer.
func PaymentsList(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
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

// PaymentCreate records a user-entered payment.
func PaymentCreate(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload paymentPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		payment, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, payment)
	}
}

// PaymentUpdate rewrites a payment and stamps the edit audit fields.
func PaymentUpdate(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "paymentID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload paymentPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		payment, err := svc.Update(ctx, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, payment)
	}
}

// PaymentDelete removes a payment.
func PaymentDelete(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "paymentID")
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
