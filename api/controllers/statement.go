package controllers

import (
	"fmt"
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/customers"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/reports"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

// Statement builds one customer's carried-forward account statement for a
// date window: balances before the window collapse into an opening row,
// items inside the window are listed newest first, ten per page.
func Statement(store *snapshot.Store, custs customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID, err := pathUUID(r, "customerID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		window, err := windowFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		customer, err := custs.Get(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		entries := store.Current().CustomerEntries(customerID)
		st := ledger.BuildStatement(customer.Name, entries, window, page)
		responses.WriteSuccess(w, reports.BuildStatementReport(st))
	}
}

// StatementExport streams the full statement, all pages, as an XLSX workbook.
func StatementExport(store *snapshot.Store, custs customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID, err := pathUUID(r, "customerID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		window, err := windowFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		customer, err := custs.Get(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		entries := store.Current().CustomerEntries(customerID)

		filename := fmt.Sprintf("ekstre_%s_%s.xlsx",
			window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := reports.WriteStatementXLSX(w, customer.Name, entries, window); err != nil {
			// Headers are already out; the truncated stream is all we can signal.
			logg.Error(ctx, "statement export failed mid stream", err)
		}
	}
}
