// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Logger writes audit records to the database. It also serves the pipeline
// as its best-effort audit sink: sink methods log failures instead of
// propagating them, so a full audit table never blocks an import.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

var _ intake.AuditSink = (*Logger)(nil)

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	if actor == "" {
		actor = "system"
	}
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// PackageAction records a pipeline operation on an import package.
func (l *Logger) PackageAction(ctx context.Context, actor, action string, packageID uuid.UUID, params map[string]interface{}) {
	_ = l.LogAction(ctx, action, "import_package", packageID.String(), actor, params)
}

// ConflictAction records a reviewer decision on a conflict.
func (l *Logger) ConflictAction(ctx context.Context, actor, action string, conflictID uuid.UUID, params map[string]interface{}) {
	_ = l.LogAction(ctx, action, "conflict_resolution", conflictID.String(), actor, params)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
