package oracle

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	apphttp "github.com/chainsafe/oracle-indexer/pkg/app/http"
)

// AdminResolveRequest is the body of POST /admin/calls/{id}/resolve.
type AdminResolveRequest struct {
	Resolution string           `json:"resolution"`
	FinalPrice *decimal.Decimal `json:"finalPrice,omitempty"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the market endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/calls/{id}", apphttp.HandleError(h.get))
	r.Post("/admin/calls", apphttp.HandleError(h.create))
	r.Post("/admin/calls/{id}/open", apphttp.HandleError(h.open))
	r.Post("/admin/calls/{id}/unpause", apphttp.HandleError(h.unpause))
	r.Post("/admin/calls/{id}/resolve", apphttp.HandleError(h.resolve))
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id, err := CallIDParam(r)
	if err != nil {
		return err
	}
	c, err := h.service.GetCall(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req CreateCallRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	c, err := h.service.CreateCall(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, c)
	return nil
}

func (h *HTTP) open(w http.ResponseWriter, r *http.Request) error {
	id, err := CallIDParam(r)
	if err != nil {
		return err
	}
	c, err := h.service.OpenCall(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) unpause(w http.ResponseWriter, r *http.Request) error {
	id, err := CallIDParam(r)
	if err != nil {
		return err
	}
	c, err := h.service.UnpauseCall(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) resolve(w http.ResponseWriter, r *http.Request) error {
	id, err := CallIDParam(r)
	if err != nil {
		return err
	}
	var req AdminResolveRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	resolution, ok := ParseStatus(req.Resolution)
	if !ok || !resolution.IsTerminal() {
		return apperrors.BadRequestError(nil, "resolution must be RESOLVED_YES or RESOLVED_NO")
	}

	c, err := h.service.AdminResolveCall(r.Context(), id, resolution, req.FinalPrice)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

// CallIDParam parses the {id} URL parameter.
func CallIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequestError(err, "invalid call id")
	}
	return id, nil
}
