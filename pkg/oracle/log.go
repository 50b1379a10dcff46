package oracle

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const serviceName = "OracleService"

// logService wraps Service with logging of the state changing calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the oracle Service.
// Read-only methods are passed through.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) CreateCall(ctx context.Context, req *CreateCallRequest) (c *Call, err error) {
	defer ls.track("CreateCall", 0, time.Now(), &c, &err)
	return ls.svc.CreateCall(ctx, req)
}

func (ls *logService) GetCall(ctx context.Context, id int64) (*Call, error) {
	return ls.svc.GetCall(ctx, id)
}

func (ls *logService) PendingCalls(ctx context.Context, now time.Time) ([]*Call, error) {
	return ls.svc.PendingCalls(ctx, now)
}

func (ls *logService) OpenCall(ctx context.Context, id int64) (c *Call, err error) {
	defer ls.track("OpenCall", id, time.Now(), &c, &err)
	return ls.svc.OpenCall(ctx, id)
}

func (ls *logService) CheckSettlement(ctx context.Context, id int64) (c *Call, err error) {
	defer ls.track("CheckSettlement", id, time.Now(), &c, &err)
	return ls.svc.CheckSettlement(ctx, id)
}

func (ls *logService) ResolveMarket(ctx context.Context, id int64, observed decimal.Decimal) (c *Call, err error) {
	ls.logger.Debug("ResolveMarket started",
		zap.String("service", serviceName),
		zap.String("method", "ResolveMarket"),
		zap.Int64("call_id", id),
		zap.String("observed_price", observed.String()),
	)
	defer ls.track("ResolveMarket", id, time.Now(), &c, &err)
	return ls.svc.ResolveMarket(ctx, id, observed)
}

func (ls *logService) RecordReport(ctx context.Context, id int64, gate ReportGate) (c *Call, err error) {
	defer ls.track("RecordReport", id, time.Now(), &c, &err)
	return ls.svc.RecordReport(ctx, id, gate)
}

func (ls *logService) UnpauseCall(ctx context.Context, id int64) (c *Call, err error) {
	ls.logger.Info("UnpauseCall started",
		zap.String("service", serviceName),
		zap.String("method", "UnpauseCall"),
		zap.Int64("call_id", id),
	)
	defer ls.track("UnpauseCall", id, time.Now(), &c, &err)
	return ls.svc.UnpauseCall(ctx, id)
}

func (ls *logService) AdminResolveCall(
	ctx context.Context,
	id int64,
	resolution Status,
	finalPrice *decimal.Decimal,
) (c *Call, err error) {
	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", "AdminResolveCall"),
		zap.Int64("call_id", id),
		zap.String("resolution", resolution.String()),
	}
	if finalPrice != nil {
		fields = append(fields, zap.String("final_price", finalPrice.String()))
	}
	ls.logger.Info("AdminResolveCall started", fields...)
	defer ls.track("AdminResolveCall", id, time.Now(), &c, &err)
	return ls.svc.AdminResolveCall(ctx, id, resolution, finalPrice)
}

func (ls *logService) track(method string, id int64, start time.Time, c **Call, err *error) {
	duration := time.Since(start)
	if *err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.Int64("call_id", id),
			zap.Duration("duration", duration),
			zap.Error(*err),
		)
		return
	}

	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}
	if *c != nil {
		fields = append(fields,
			zap.Int64("call_id", (*c).ID),
			zap.String("status", (*c).Status.String()),
			zap.Int("report_count", (*c).ReportCount),
		)
	}
	ls.logger.Info(method+" completed", fields...)
}
