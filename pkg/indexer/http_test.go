package indexer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/indexer"
	"github.com/chainsafe/oracle-indexer/pkg/indexer/mocks"
)

func newIndexerTestServer(svc indexer.Service) http.Handler {
	r := chi.NewRouter()
	indexer.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestIndexerHTTP_Status(t *testing.T) {
	ledgerSeq := int64(812)
	svc := mocks.NewService(t)
	svc.EXPECT().Status(mock.Anything).Return(&indexer.Status{
		IsRunning:           true,
		LastProcessedLedger: &ledgerSeq,
		TotalEventsIndexed:  4,
	}, nil).Once()

	rec := httptest.NewRecorder()
	newIndexerTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/indexer/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got["isRunning"] != true || got["lastProcessedLedger"] != float64(812) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if got["latestEventLedger"] != nil {
		t.Fatalf("expected null latestEventLedger, got %v", got["latestEventLedger"])
	}
}

func TestIndexerHTTP_EventsByType(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().EventsByType(mock.Anything, "AdminParamsChanged", 20).
		Return([]*eventlog.Record{{EventID: "tx-0", EventType: events.TypeAdminParamsChanged, Ledger: 9}}, nil).Once()

	rec := httptest.NewRecorder()
	newIndexerTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/indexer/events/AdminParamsChanged?limit=20", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestIndexerHTTP_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"abc", "-1"} {
		rec := httptest.NewRecorder()
		newIndexerTestServer(mocks.NewService(t)).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/indexer/events/AdminParamsChanged?limit="+limit, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit %q: expected status %d, got %d", limit, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestIndexerHTTP_UnknownType(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().EventsByType(mock.Anything, "Nope", 0).
		Return(nil, apperrors.BadRequestError(events.ErrUnknownEvent, "unknown event type Nope")).Once()

	rec := httptest.NewRecorder()
	newIndexerTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/indexer/events/Nope", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
