package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/pkg/config"
	"github.com/chainsafe/oracle-indexer/pkg/health"
	pkgindexer "github.com/chainsafe/oracle-indexer/pkg/indexer"
	indexermocks "github.com/chainsafe/oracle-indexer/pkg/indexer/mocks"
	moderationmocks "github.com/chainsafe/oracle-indexer/pkg/moderation/mocks"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
	oraclemocks "github.com/chainsafe/oracle-indexer/pkg/oracle/mocks"
	"github.com/chainsafe/oracle-indexer/pkg/settings"
	settingsmocks "github.com/chainsafe/oracle-indexer/pkg/settings/mocks"
)

func newTestComponents(t *testing.T) (*components, *indexermocks.Service, *settingsmocks.Service, *oraclemocks.Service) {
	idx := indexermocks.NewService(t)
	st := settingsmocks.NewService(t)
	orc := oraclemocks.NewService(t)
	return &components{
		checker:    health.NewChecker(time.Minute, zap.NewNop()),
		indexer:    idx,
		settings:   st,
		oracle:     orc,
		moderation: moderationmocks.NewService(t),
	}, idx, st, orc
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	c, _, _, _ := newTestComponents(t)
	c.checker.Register("database", func(context.Context) error { return nil })

	s := NewServer(&config.Config{Monitoring: config.MonitoringConfig{Enabled: true}})
	router := s.newRouter(c, zap.NewNop())

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		// no check round has run yet
		{"/ready", http.StatusServiceUnavailable},
		{"/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.want {
			t.Fatalf("%s: expected status %d, got %d", tt.path, tt.want, rec.Code)
		}
	}

	c.checker.CheckNow(context.Background())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected ready after a passing round, got %d", rec.Code)
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	c, _, _, _ := newTestComponents(t)
	router := NewServer(&config.Config{}).newRouter(c, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestRouter_MountsAPIUnderV1(t *testing.T) {
	c, idx, st, orc := newTestComponents(t)
	idx.EXPECT().Status(mock.Anything).Return(&pkgindexer.Status{}, nil).Once()
	st.EXPECT().Get(mock.Anything).Return(&settings.Settings{ID: 1, FeePercent: decimal.NewFromInt(1)}, nil).Once()
	orc.EXPECT().GetCall(mock.Anything, int64(5)).Return(&oracle.Call{ID: 5, Status: oracle.StatusOpen}, nil).Once()

	router := NewServer(&config.Config{}).newRouter(c, zap.NewNop())

	for _, path := range []string{"/api/v1/indexer/status", "/api/v1/config", "/api/v1/calls/5"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d: %s", path, http.StatusOK, rec.Code, rec.Body.String())
		}
	}
}

func TestRun_NilConfig(t *testing.T) {
	if err := NewServer(nil).Run(); err == nil {
		t.Fatal("expected error for nil config")
	}
}
