package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stellar/go/strkey"
	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/internal/metrics"
	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
)

// Reporter counts an accepted report against a market. oracle.Service
// implements it.
type Reporter interface {
	RecordReport(ctx context.Context, id int64, gate oracle.ReportGate) (*oracle.Call, error)
}

// Service defines the report operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ReportCall stores one report per (call, reporter) and counts it.
	ReportCall(ctx context.Context, req *ReportRequest) (*ReportResult, error)
	ListReports(ctx context.Context, callID int64) ([]*Report, error)
}

type moderationService struct {
	store    Store
	reporter Reporter
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates the moderation service
func NewService(store Store, reporter Reporter, logger *zap.Logger) Service {
	return &moderationService{
		store:    store,
		reporter: reporter,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *moderationService) ReportCall(ctx context.Context, req *ReportRequest) (*ReportResult, error) {
	if err := s.validateRequest(req); err != nil {
		metrics.ReportsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	reporter := strings.TrimSpace(req.ReporterAddress)
	c, err := s.reporter.RecordReport(ctx, req.CallID, func(ctx context.Context, c *oracle.Call) error {
		if c.Status.IsTerminal() {
			return apperrors.BadRequestError(ErrCallResolved, "cannot report a resolved market")
		}

		exists, err := s.store.Exists(ctx, c.ID, reporter)
		if err != nil {
			return apperrors.GeneralError(err)
		}
		if exists {
			return apperrors.ConflictError(ErrDuplicateReport, "you have already reported this call")
		}

		report := &Report{
			ID:              uuid.New(),
			CallID:          c.ID,
			ReporterAddress: reporter,
			Reason:          strings.TrimSpace(req.Reason),
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.store.Create(ctx, report); err != nil {
			if errors.Is(err, ErrDuplicateReport) {
				return apperrors.ConflictError(err, "you have already reported this call")
			}
			return apperrors.GeneralError(err)
		}
		return nil
	})
	if err != nil {
		metrics.ReportsTotal.WithLabelValues(reportResultLabel(err)).Inc()
		return nil, err
	}

	metrics.ReportsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info("Report accepted",
		zap.Int64("call_id", c.ID),
		zap.String("reporter", reporter),
		zap.Int("report_count", c.ReportCount),
		zap.Bool("is_hidden", c.IsHidden),
		zap.String("status", c.Status.String()),
	)
	return &ReportResult{
		ReportCount: c.ReportCount,
		IsHidden:    c.IsHidden,
		Status:      c.Status,
	}, nil
}

func (s *moderationService) ListReports(ctx context.Context, callID int64) ([]*Report, error) {
	reports, err := s.store.ListByCall(ctx, callID)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return reports, nil
}

func (s *moderationService) validateRequest(req *ReportRequest) error {
	if req == nil {
		return apperrors.BadRequestError(nil, "missing request")
	}
	if req.CallID <= 0 {
		return apperrors.BadRequestError(nil, "invalid call id")
	}
	if err := s.validate.Struct(req); err != nil {
		return apperrors.BadRequestError(err, "invalid report")
	}
	if len([]rune(strings.TrimSpace(req.Reason))) > maxReasonLength {
		return apperrors.BadRequestError(nil, fmt.Sprintf("reason must be at most %d characters", maxReasonLength))
	}
	if !validAddress(strings.TrimSpace(req.ReporterAddress)) {
		return apperrors.BadRequestError(ErrInvalidReporter, "reporter must be a Stellar account or contract address")
	}
	return nil
}

// validAddress accepts G... account and C... contract strkeys.
func validAddress(addr string) bool {
	if _, err := strkey.Decode(strkey.VersionByteAccountID, addr); err == nil {
		return true
	}
	_, err := strkey.Decode(strkey.VersionByteContract, addr)
	return err == nil
}

func reportResultLabel(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateReport):
		return "duplicate"
	case errors.Is(err, ErrCallResolved):
		return "resolved"
	case apperrors.Is(err, apperrors.CategoryResourceNotFound):
		return "not_found"
	default:
		return "error"
	}
}
