package controllers

import (
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

func windowFromQuery(r *http.Request) (ledger.Window, error) {
	start, err := validators.ParseQueryDate(r, "from")
	if err != nil {
		return ledger.Window{}, err
	}
	end, err := validators.ParseQueryDate(r, "to")
	if err != nil {
		return ledger.Window{}, err
	}
	if end.Before(start) {
		return ledger.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "to must not be before from")
	}
	return ledger.Window{Start: start, End: end}, nil
}

// Dashboard aggregates the ledger over a date window: per-customer charged
// and received totals split by currency, workshop-wide sums, expenses and
// the most active customer. Totals come from the in-memory snapshot, so a
// refresh is poked for the next call.
func Dashboard(store *snapshot.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		window, err := windowFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap := store.Current()
		stats := ledger.Aggregate(snap.Entries(), snap.ExpenseItems(), window)
		store.Poke()

		responses.WriteSuccess(w, stats)
	}
}
