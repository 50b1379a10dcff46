package settings

import (
	"context"
	"fmt"

	"github.com/chainsafe/oracle-indexer/pkg/events"
)

// Projector routes AdminParamsChanged events into the settings service.
type Projector struct {
	svc Service
}

// NewProjector creates a Projector backed by svc.
func NewProjector(svc Service) *Projector {
	return &Projector{svc: svc}
}

// Types lists the event types the projector handles.
func (p *Projector) Types() []events.Type {
	return []events.Type{events.TypeAdminParamsChanged}
}

// Project applies ev to the settings row.
func (p *Projector) Project(ctx context.Context, ev *events.Event) error {
	data, ok := ev.Data.(*events.AdminParamsChanged)
	if !ok {
		return fmt.Errorf("settings projector: unexpected payload %T for %s", ev.Data, ev.Type)
	}
	_, err := p.svc.ApplyAdminParamsChanged(ctx, data)
	return err
}
