package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/worktypes"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type workTypePricePayload struct {
	Price decimal.NullDecimal `json:"price"`
}

// WorkTypesList returns the work-type catalogue. Pass all=true to include
// deactivated entries.
func WorkTypesList(svc worktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		activeOnly := r.URL.Query().Get("all") != "true"
		list, err := svc.List(ctx, activeOnly)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// WorkTypeUpdatePrice sets or clears a work type's default price.
func WorkTypeUpdatePrice(svc worktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "workTypeID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload workTypePricePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		workType, err := svc.UpdatePrice(ctx, id, payload.Price)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, workType)
	}
}

// WorkTypeDeactivate hides a work type from the active catalogue without
// touching jobs that reference it.
func WorkTypeDeactivate(svc worktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathUUID(r, "workTypeID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.Deactivate(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}

// WorkTypesImportDefaults upserts the built-in price list.
func WorkTypesImportDefaults(svc worktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		count, err := svc.ImportDefaults(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"imported": count})
	}
}
