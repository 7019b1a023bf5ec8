package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

type captureSender struct {
	sent []Params
	to   [][]string
}

func (c *captureSender) Send(_ context.Context, p Params) error {
	c.sent = append(c.sent, p)
	c.to = append(c.to, []string{p.RecipientID})
	return nil
}

func (c *captureSender) SendToMany(_ context.Context, recipients []string, p Params) error {
	c.sent = append(c.sent, p)
	c.to = append(c.to, recipients)
	return nil
}

func packageEvent(t *testing.T, typ domain.EventType, p domain.PackageEventPayload) *domain.DomainEvent {
	t.Helper()
	payload, err := p.ToJSON()
	require.NoError(t, err)
	return &domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     typ,
		AggregateType: "import_package",
		AggregateID:   p.PackageID.String(),
		Payload:       payload,
	}
}

func TestTriggersBroadcastToReviewers(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender, []string{"amal", "rami"}).Register(dispatcher)

	packageID := uuid.New()
	event := packageEvent(t, domain.EventConflictsDetected, domain.PackageEventPayload{
		PackageID:     packageID,
		PackageNumber: "PKG-2026-0007",
		Status:        domain.StatusReviewingConflicts,
	})
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))

	require.Len(t, sender.sent, 1)
	p := sender.sent[0]
	require.Equal(t, TypeConflictsPendingReview, p.Type)
	require.Contains(t, p.Title, "PKG-2026-0007")
	require.Equal(t, "import_package", p.ResourceType)
	require.Equal(t, packageID.String(), p.ResourceID)
	require.Equal(t, []string{"amal", "rami"}, sender.to[0])
}

func TestTriggersQuarantineCarriesReason(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender, []string{"amal"}).Register(dispatcher)

	event := packageEvent(t, domain.EventPackageQuarantined, domain.PackageEventPayload{
		PackageID:     uuid.New(),
		PackageNumber: "PKG-2026-0008",
		Status:        domain.StatusQuarantined,
		Detail:        "checksum mismatch",
	})
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))

	require.Len(t, sender.sent, 1)
	require.Equal(t, TypePackageQuarantined, sender.sent[0].Type)
	require.Contains(t, sender.sent[0].Message, "checksum mismatch")
}

func TestTriggersNoReviewersDropsQuietly(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender, nil).Register(dispatcher)

	event := packageEvent(t, domain.EventPackageReceived, domain.PackageEventPayload{
		PackageID:     uuid.New(),
		PackageNumber: "PKG-2026-0009",
		Status:        domain.StatusPending,
	})
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
	require.Empty(t, sender.sent)
}
