package controllers

import (
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/api/validators"
	"github.com/kilincfaruk/FuatAtolye/internal/backup"
	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type backupPayload struct {
	Records []ledger.RawRecord `json:"records"`
}

// BackupImport restores rows from a legacy backup export. Rows the
// normalizer cannot classify are counted as skipped, not written.
func BackupImport(svc backup.Service, store *snapshot.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload backupPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if len(payload.Records) == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "records are required"))
			return
		}

		summary, err := svc.Import(ctx, payload.Records)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if store != nil {
			store.Poke()
		}
		responses.WriteSuccess(w, summary)
	}
}
