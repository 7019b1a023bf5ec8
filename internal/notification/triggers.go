package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Triggers turns package lifecycle events into reviewer inbox notifications.
// Handlers run on the in-process dispatcher right after the event row is
// persisted; a failed write is logged by the dispatcher and never fails the
// pipeline stage that raised the event.
//
// Recipients come from the configured reviewer list. Reviewer identities are
// token subjects, not database rows; an empty list disables the inbox.
type Triggers struct {
	sender    Sender
	reviewers []string
}

// NewTriggers creates the notification trigger service.
func NewTriggers(sender Sender, reviewers []string) *Triggers {
	return &Triggers{sender: sender, reviewers: reviewers}
}

// Register subscribes the trigger handlers to the dispatcher.
func (t *Triggers) Register(d *domain.EventDispatcher) {
	d.Register(domain.EventPackageReceived, t.onPackage(TypePackageReceived,
		func(p domain.PackageEventPayload) (string, string) {
			return fmt.Sprintf("Package %s received", p.PackageNumber),
				fmt.Sprintf("Package %s from device %s is waiting to be processed", p.PackageNumber, p.DeviceID)
		}))
	d.Register(domain.EventPackageQuarantined, t.onPackage(TypePackageQuarantined,
		func(p domain.PackageEventPayload) (string, string) {
			msg := fmt.Sprintf("Package %s failed verification and was quarantined", p.PackageNumber)
			if p.Detail != "" {
				msg += ": " + p.Detail
			}
			return fmt.Sprintf("Package %s quarantined", p.PackageNumber), msg
		}))
	d.Register(domain.EventPackageValidated, t.onPackage(TypePackageValidated,
		func(p domain.PackageEventPayload) (string, string) {
			return fmt.Sprintf("Package %s validated", p.PackageNumber),
				fmt.Sprintf("Package %s passed validation and moves to duplicate detection", p.PackageNumber)
		}))
	d.Register(domain.EventPackageInvalid, t.onPackage(TypePackageInvalid,
		func(p domain.PackageEventPayload) (string, string) {
			return fmt.Sprintf("Package %s failed validation", p.PackageNumber),
				fmt.Sprintf("Package %s has blocking validation errors and needs correction", p.PackageNumber)
		}))
	d.Register(domain.EventConflictsDetected, t.onPackage(TypeConflictsPendingReview,
		func(p domain.PackageEventPayload) (string, string) {
			return fmt.Sprintf("Package %s needs conflict review", p.PackageNumber),
				fmt.Sprintf("Duplicate detection found conflicts in package %s that need reviewer decisions", p.PackageNumber)
		}))
	d.Register(domain.EventPackageCommitted, t.onPackage(TypePackageCommitted,
		func(p domain.PackageEventPayload) (string, string) {
			return fmt.Sprintf("Package %s committed", p.PackageNumber),
				fmt.Sprintf("Package %s was committed to the registry", p.PackageNumber)
		}))
	d.Register(domain.EventPackageCommitFailed, t.onPackage(TypePackageCommitFailed,
		func(p domain.PackageEventPayload) (string, string) {
			msg := fmt.Sprintf("Committing package %s failed; nothing was written", p.PackageNumber)
			if p.Detail != "" {
				msg += ": " + p.Detail
			}
			return fmt.Sprintf("Package %s commit failed", p.PackageNumber), msg
		}))
}

// onPackage builds a dispatcher handler that decodes the package payload and
// broadcasts one notification to every reviewer.
func (t *Triggers) onPackage(notifType string, format func(p domain.PackageEventPayload) (title, message string)) domain.EventHandler {
	return func(ctx context.Context, event *domain.DomainEvent) error {
		var p domain.PackageEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode package event payload: %w", err)
		}

		if len(t.reviewers) == 0 {
			logger.Debug("no reviewers configured; dropping notification",
				zap.String("type", notifType),
				zap.String("package_id", p.PackageID.String()),
			)
			return nil
		}

		title, message := format(p)
		return t.sender.SendToMany(ctx, t.reviewers, Params{
			Type:         notifType,
			Title:        title,
			Message:      message,
			ResourceType: "import_package",
			ResourceID:   p.PackageID.String(),
		})
	}
}
