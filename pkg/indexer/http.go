package indexer

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	apphttp "github.com/chainsafe/oracle-indexer/pkg/app/http"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the indexer endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/indexer/status", apphttp.HandleError(h.status))
	r.Get("/indexer/events/{type}", apphttp.HandleError(h.eventsByType))
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	st, err := h.service.Status(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, st)
	return nil
}

func (h *HTTP) eventsByType(w http.ResponseWriter, r *http.Request) error {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		limit = n
	}

	records, err := h.service.EventsByType(r.Context(), chi.URLParam(r, "type"), limit)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, records)
	return nil
}
