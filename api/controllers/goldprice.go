package controllers

import (
	"net/http"

	"github.com/kilincfaruk/FuatAtolye/api/responses"
	"github.com/kilincfaruk/FuatAtolye/internal/goldprice"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

// GoldPrice serves the most recent gram-gold quote from the poller's cache.
// The handler never calls the upstream API itself.
func GoldPrice(svc *goldprice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Latest())
	}
}
