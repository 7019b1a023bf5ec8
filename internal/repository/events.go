package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Events persists domain events (claim-check rows) and fans them out to the
// in-process dispatcher. Recording is best-effort: a failed event never
// fails the pipeline stage that raised it.
type Events struct {
	client     *ent.Client
	dispatcher *domain.EventDispatcher
}

// NewEvents creates the event recorder.
func NewEvents(client *ent.Client, dispatcher *domain.EventDispatcher) *Events {
	return &Events{client: client, dispatcher: dispatcher}
}

var _ intake.EventRecorder = (*Events)(nil)

// PackageEvent records a package lifecycle event.
func (r *Events) PackageEvent(ctx context.Context, typ domain.EventType,
	pkg *domain.ImportPackage, actor, detail string) {

	payload, err := domain.PackageEventPayload{
		PackageID:     pkg.ID,
		PackageNumber: pkg.PackageNumber,
		Status:        pkg.Status,
		DeviceID:      pkg.DeviceID,
		Actor:         actor,
		Detail:        detail,
	}.ToJSON()
	if err != nil {
		logger.Error("Could not encode package event payload",
			zap.String("event_type", string(typ)), zap.Error(err))
		return
	}
	r.record(ctx, typ, "import_package", pkg.ID.String(), payload, actor)
}

// ConflictEvent records a conflict event.
func (r *Events) ConflictEvent(ctx context.Context, typ domain.EventType,
	c *domain.Conflict, actor string) {

	p := domain.ConflictEventPayload{
		ConflictID:      c.ID,
		ImportPackageID: c.ImportPackageID,
		EntityType:      c.EntityType,
		Score:           c.Score,
		Actor:           actor,
	}
	if c.Resolution != nil {
		p.Resolution = string(*c.Resolution)
	}
	payload, err := p.ToJSON()
	if err != nil {
		logger.Error("Could not encode conflict event payload",
			zap.String("event_type", string(typ)), zap.Error(err))
		return
	}
	r.record(ctx, typ, "conflict_resolution", c.ID.String(), payload, actor)
}

func (r *Events) record(ctx context.Context, typ domain.EventType,
	aggregateType, aggregateID string, payload []byte, actor string) {

	if actor == "" {
		actor = "system"
	}
	event := &domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     typ,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       payload,
		Status:        domain.EventStatusPending,
		CreatedBy:     actor,
	}

	err := r.client.DomainEvent.Create().
		SetID(event.EventID).
		SetEventType(string(typ)).
		SetAggregateType(aggregateType).
		SetAggregateID(aggregateID).
		SetPayload(payload).
		SetStatus("PENDING").
		SetCreatedBy(actor).
		Exec(ctx)
	if err != nil {
		logger.Error("Could not persist domain event",
			zap.String("event_type", string(typ)),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		return
	}

	if r.dispatcher != nil {
		// Handler failures are already logged by the dispatcher.
		_ = r.dispatcher.Dispatch(ctx, event)
	}
}
