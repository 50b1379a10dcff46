package moderation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/moderation"
	"github.com/chainsafe/oracle-indexer/pkg/moderation/mocks"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
)

func newReportsTestServer(svc moderation.Service) http.Handler {
	r := chi.NewRouter()
	moderation.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestReportsHTTP_Report(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ReportCall(mock.Anything, mock.MatchedBy(func(req *moderation.ReportRequest) bool {
		return req.CallID == 12 && req.ReporterAddress == "GREPORTER" && req.Reason == "wash trading"
	})).Return(&moderation.ReportResult{ReportCount: 5, IsHidden: true, Status: oracle.StatusPaused}, nil).Once()

	body := `{"reporterAddress":"GREPORTER","reason":"wash trading"}`
	rec := httptest.NewRecorder()
	newReportsTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calls/12/report", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	var got moderation.ReportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ReportCount != 5 || !got.IsHidden || got.Status != oracle.StatusPaused {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestReportsHTTP_Duplicate(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ReportCall(mock.Anything, mock.Anything).
		Return(nil, apperrors.ConflictError(moderation.ErrDuplicateReport, "you have already reported this call")).Once()

	rec := httptest.NewRecorder()
	newReportsTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calls/12/report",
		strings.NewReader(`{"reporterAddress":"GREPORTER"}`)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "you have already reported this call") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestReportsHTTP_InvalidID(t *testing.T) {
	svc := mocks.NewService(t)
	rec := httptest.NewRecorder()
	newReportsTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calls/0/report",
		strings.NewReader(`{"reporterAddress":"GREPORTER"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestReportsHTTP_List(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListReports(mock.Anything, int64(12)).
		Return([]*moderation.Report{{CallID: 12, ReporterAddress: "GA"}}, nil).Once()

	rec := httptest.NewRecorder()
	newReportsTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/calls/12/reports", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got []moderation.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got) != 1 || got[0].ReporterAddress != "GA" {
		t.Fatalf("unexpected reports: %+v", got)
	}
}
