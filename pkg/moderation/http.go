package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/oracle-indexer/pkg/app/http"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the report endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/calls/{id}/report", apphttp.HandleError(h.report))
	r.Get("/admin/calls/{id}/reports", apphttp.HandleError(h.list))
}

func (h *HTTP) report(w http.ResponseWriter, r *http.Request) error {
	id, err := oracle.CallIDParam(r)
	if err != nil {
		return err
	}
	var req ReportRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.CallID = id

	res, err := h.service.ReportCall(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, res)
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	id, err := oracle.CallIDParam(r)
	if err != nil {
		return err
	}
	reports, err := h.service.ListReports(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, reports)
	return nil
}
