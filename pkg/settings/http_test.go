package settings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/settings"
	"github.com/chainsafe/oracle-indexer/pkg/settings/mocks"
)

func newConfigTestServer(svc settings.Service) http.Handler {
	r := chi.NewRouter()
	settings.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestConfigHTTP_ReturnsSettings(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Get(mock.Anything).Return(&settings.Settings{
		ID:         settings.SingletonID,
		FeePercent: decimal.RequireFromString("1.5"),
		ContractID: strPtr("CPLATFORM"),
	}, nil).Once()

	rec := httptest.NewRecorder()
	newConfigTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got struct {
		FeePercent       string  `json:"feePercent"`
		ContractID       *string `json:"contractId"`
		OracleContractID *string `json:"oracleContractId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.FeePercent != "1.5" {
		t.Fatalf("expected fee 1.5, got %q", got.FeePercent)
	}
	if got.ContractID == nil || *got.ContractID != "CPLATFORM" {
		t.Fatalf("unexpected contract id: %v", got.ContractID)
	}
	if got.OracleContractID != nil {
		t.Fatalf("expected null oracle contract id")
	}
}

func TestConfigHTTP_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Get(mock.Anything).
		Return(nil, apperrors.ResourceNotFoundError(settings.ErrSettingsNotFound, "platform settings not found")).Once()

	rec := httptest.NewRecorder()
	newConfigTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
