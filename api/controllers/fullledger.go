package controllers

import (
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/internal/reports"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

// FullLedger renders the printable whole-book view for a window: every
// customer with activity, oldest rows first.
func FullLedger(store *snapshot.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		window, err := windowFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		report := reports.BuildFullLedgerReport(store.Current().Entries(), window)
		responses.WriteSuccess(w, report)
	}
}
