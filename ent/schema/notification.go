package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity:
// database-backed in-app reviewer inbox. Notifications are synchronous
// writes fired from domain-event handlers; external push channels are out
// of scope.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"PACKAGE_RECEIVED",
				"PACKAGE_QUARANTINED",
				"PACKAGE_VALIDATED",
				"PACKAGE_INVALID",
				"CONFLICTS_PENDING_REVIEW",
				"PACKAGE_COMMITTED",
				"PACKAGE_COMMIT_FAILED",
			),
		field.String("user_id").
			NotEmpty(), // recipient reviewer
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("resource_type").
			Optional(), // e.g. import_package, conflict_resolution
		field.String("resource_id").
			Optional(), // related resource id for navigation
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),       // fast unread count query
		index.Fields("user_id", "created_at"), // paginated list by user
		index.Fields("created_at"),            // retention cleanup
	}
}
