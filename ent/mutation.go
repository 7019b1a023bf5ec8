// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/auditlog"
	"uhc-registry.io/registry/ent/building"
	"uhc-registry.io/registry/ent/certificate"
	"uhc-registry.io/registry/ent/claim"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/document"
	"uhc-registry.io/registry/ent/domainevent"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/evidence"
	"uhc-registry.io/registry/ent/household"
	"uhc-registry.io/registry/ent/identifiersequence"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/ent/notification"
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/propertyunit"
	"uhc-registry.io/registry/ent/referral"
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/ent/stagingreferral"
	"uhc-registry.io/registry/ent/stagingsurvey"
	"uhc-registry.io/registry/ent/survey"
	"uhc-registry.io/registry/internal/domain"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog                      = "AuditLog"
	TypeBuilding                      = "Building"
	TypeCertificate                   = "Certificate"
	TypeClaim                         = "Claim"
	TypeConflictResolution            = "ConflictResolution"
	TypeDocument                      = "Document"
	TypeDomainEvent                   = "DomainEvent"
	TypeDuplicateSuppression          = "DuplicateSuppression"
	TypeEvidence                      = "Evidence"
	TypeHousehold                     = "Household"
	TypeIdentifierSequence            = "IdentifierSequence"
	TypeImportPackage                 = "ImportPackage"
	TypeNotification                  = "Notification"
	TypePerson                        = "Person"
	TypePersonPropertyRelation        = "PersonPropertyRelation"
	TypePropertyUnit                  = "PropertyUnit"
	TypeReferral                      = "Referral"
	TypeStagingBuilding               = "StagingBuilding"
	TypeStagingClaim                  = "StagingClaim"
	TypeStagingDocument               = "StagingDocument"
	TypeStagingEvidence               = "StagingEvidence"
	TypeStagingHousehold              = "StagingHousehold"
	TypeStagingPerson                 = "StagingPerson"
	TypeStagingPersonPropertyRelation = "StagingPersonPropertyRelation"
	TypeStagingPropertyUnit           = "StagingPropertyUnit"
	TypeStagingReferral               = "StagingReferral"
	TypeStagingSurvey                 = "StagingSurvey"
	TypeSurvey                        = "Survey"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	resource_type *string
	resource_id   *string
	actor         *string
	details       *map[string]interface{}
	ip_address    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditLogMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditlog.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditLogMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditLogMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditlog.FieldIPAddress)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.ip_address != nil {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldIPAddress:
		return m.IPAddress()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.FieldCleared(auditlog.FieldIPAddress) {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	case auditlog.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BuildingMutation represents an operation that mutates the Building nodes in the graph.
type BuildingMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	source_package_id     *uuid.UUID
	building_code         *string
	governorate_code      *string
	district_code         *string
	sub_district_code     *string
	community_code        *string
	neighborhood_code     *string
	building_number       *string
	building_type_code    *string
	occupancy_status_code *string
	number_of_floors      *int
	addnumber_of_floors   *int
	number_of_units       *int
	addnumber_of_units    *int
	address               *string
	latitude              *float64
	addlatitude           *float64
	longitude             *float64
	addlongitude          *float64
	notes                 *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Building, error)
	predicates            []predicate.Building
}

var _ ent.Mutation = (*BuildingMutation)(nil)

// buildingOption allows management of the mutation configuration using functional options.
type buildingOption func(*BuildingMutation)

// newBuildingMutation creates new mutation for the Building entity.
func newBuildingMutation(c config, op Op, opts ...buildingOption) *BuildingMutation {
	m := &BuildingMutation{
		config:        c,
		op:            op,
		typ:           TypeBuilding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildingID sets the ID field of the mutation.
func withBuildingID(id uuid.UUID) buildingOption {
	return func(m *BuildingMutation) {
		var (
			err   error
			once  sync.Once
			value *Building
		)
		m.oldValue = func(ctx context.Context) (*Building, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Building.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuilding sets the old Building of the mutation.
func withBuilding(node *Building) buildingOption {
	return func(m *BuildingMutation) {
		m.oldValue = func(context.Context) (*Building, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Building entities.
func (m *BuildingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Building.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BuildingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BuildingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BuildingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *BuildingMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *BuildingMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *BuildingMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[building.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *BuildingMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[building.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *BuildingMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, building.FieldSourcePackageID)
}

// SetBuildingCode sets the "building_code" field.
func (m *BuildingMutation) SetBuildingCode(s string) {
	m.building_code = &s
}

// BuildingCode returns the value of the "building_code" field in the mutation.
func (m *BuildingMutation) BuildingCode() (r string, exists bool) {
	v := m.building_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingCode returns the old "building_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldBuildingCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingCode: %w", err)
	}
	return oldValue.BuildingCode, nil
}

// ResetBuildingCode resets all changes to the "building_code" field.
func (m *BuildingMutation) ResetBuildingCode() {
	m.building_code = nil
}

// SetGovernorateCode sets the "governorate_code" field.
func (m *BuildingMutation) SetGovernorateCode(s string) {
	m.governorate_code = &s
}

// GovernorateCode returns the value of the "governorate_code" field in the mutation.
func (m *BuildingMutation) GovernorateCode() (r string, exists bool) {
	v := m.governorate_code
	if v == nil {
		return
	}
	return *v, true
}

// OldGovernorateCode returns the old "governorate_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldGovernorateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovernorateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovernorateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovernorateCode: %w", err)
	}
	return oldValue.GovernorateCode, nil
}

// ResetGovernorateCode resets all changes to the "governorate_code" field.
func (m *BuildingMutation) ResetGovernorateCode() {
	m.governorate_code = nil
}

// SetDistrictCode sets the "district_code" field.
func (m *BuildingMutation) SetDistrictCode(s string) {
	m.district_code = &s
}

// DistrictCode returns the value of the "district_code" field in the mutation.
func (m *BuildingMutation) DistrictCode() (r string, exists bool) {
	v := m.district_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrictCode returns the old "district_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldDistrictCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrictCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrictCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrictCode: %w", err)
	}
	return oldValue.DistrictCode, nil
}

// ResetDistrictCode resets all changes to the "district_code" field.
func (m *BuildingMutation) ResetDistrictCode() {
	m.district_code = nil
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (m *BuildingMutation) SetSubDistrictCode(s string) {
	m.sub_district_code = &s
}

// SubDistrictCode returns the value of the "sub_district_code" field in the mutation.
func (m *BuildingMutation) SubDistrictCode() (r string, exists bool) {
	v := m.sub_district_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSubDistrictCode returns the old "sub_district_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldSubDistrictCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubDistrictCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubDistrictCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubDistrictCode: %w", err)
	}
	return oldValue.SubDistrictCode, nil
}

// ResetSubDistrictCode resets all changes to the "sub_district_code" field.
func (m *BuildingMutation) ResetSubDistrictCode() {
	m.sub_district_code = nil
}

// SetCommunityCode sets the "community_code" field.
func (m *BuildingMutation) SetCommunityCode(s string) {
	m.community_code = &s
}

// CommunityCode returns the value of the "community_code" field in the mutation.
func (m *BuildingMutation) CommunityCode() (r string, exists bool) {
	v := m.community_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityCode returns the old "community_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldCommunityCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityCode: %w", err)
	}
	return oldValue.CommunityCode, nil
}

// ResetCommunityCode resets all changes to the "community_code" field.
func (m *BuildingMutation) ResetCommunityCode() {
	m.community_code = nil
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (m *BuildingMutation) SetNeighborhoodCode(s string) {
	m.neighborhood_code = &s
}

// NeighborhoodCode returns the value of the "neighborhood_code" field in the mutation.
func (m *BuildingMutation) NeighborhoodCode() (r string, exists bool) {
	v := m.neighborhood_code
	if v == nil {
		return
	}
	return *v, true
}

// OldNeighborhoodCode returns the old "neighborhood_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldNeighborhoodCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeighborhoodCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeighborhoodCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeighborhoodCode: %w", err)
	}
	return oldValue.NeighborhoodCode, nil
}

// ResetNeighborhoodCode resets all changes to the "neighborhood_code" field.
func (m *BuildingMutation) ResetNeighborhoodCode() {
	m.neighborhood_code = nil
}

// SetBuildingNumber sets the "building_number" field.
func (m *BuildingMutation) SetBuildingNumber(s string) {
	m.building_number = &s
}

// BuildingNumber returns the value of the "building_number" field in the mutation.
func (m *BuildingMutation) BuildingNumber() (r string, exists bool) {
	v := m.building_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingNumber returns the old "building_number" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldBuildingNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingNumber: %w", err)
	}
	return oldValue.BuildingNumber, nil
}

// ResetBuildingNumber resets all changes to the "building_number" field.
func (m *BuildingMutation) ResetBuildingNumber() {
	m.building_number = nil
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (m *BuildingMutation) SetBuildingTypeCode(s string) {
	m.building_type_code = &s
}

// BuildingTypeCode returns the value of the "building_type_code" field in the mutation.
func (m *BuildingMutation) BuildingTypeCode() (r string, exists bool) {
	v := m.building_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingTypeCode returns the old "building_type_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldBuildingTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingTypeCode: %w", err)
	}
	return oldValue.BuildingTypeCode, nil
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (m *BuildingMutation) ClearBuildingTypeCode() {
	m.building_type_code = nil
	m.clearedFields[building.FieldBuildingTypeCode] = struct{}{}
}

// BuildingTypeCodeCleared returns if the "building_type_code" field was cleared in this mutation.
func (m *BuildingMutation) BuildingTypeCodeCleared() bool {
	_, ok := m.clearedFields[building.FieldBuildingTypeCode]
	return ok
}

// ResetBuildingTypeCode resets all changes to the "building_type_code" field.
func (m *BuildingMutation) ResetBuildingTypeCode() {
	m.building_type_code = nil
	delete(m.clearedFields, building.FieldBuildingTypeCode)
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (m *BuildingMutation) SetOccupancyStatusCode(s string) {
	m.occupancy_status_code = &s
}

// OccupancyStatusCode returns the value of the "occupancy_status_code" field in the mutation.
func (m *BuildingMutation) OccupancyStatusCode() (r string, exists bool) {
	v := m.occupancy_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOccupancyStatusCode returns the old "occupancy_status_code" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldOccupancyStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccupancyStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccupancyStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccupancyStatusCode: %w", err)
	}
	return oldValue.OccupancyStatusCode, nil
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (m *BuildingMutation) ClearOccupancyStatusCode() {
	m.occupancy_status_code = nil
	m.clearedFields[building.FieldOccupancyStatusCode] = struct{}{}
}

// OccupancyStatusCodeCleared returns if the "occupancy_status_code" field was cleared in this mutation.
func (m *BuildingMutation) OccupancyStatusCodeCleared() bool {
	_, ok := m.clearedFields[building.FieldOccupancyStatusCode]
	return ok
}

// ResetOccupancyStatusCode resets all changes to the "occupancy_status_code" field.
func (m *BuildingMutation) ResetOccupancyStatusCode() {
	m.occupancy_status_code = nil
	delete(m.clearedFields, building.FieldOccupancyStatusCode)
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (m *BuildingMutation) SetNumberOfFloors(i int) {
	m.number_of_floors = &i
	m.addnumber_of_floors = nil
}

// NumberOfFloors returns the value of the "number_of_floors" field in the mutation.
func (m *BuildingMutation) NumberOfFloors() (r int, exists bool) {
	v := m.number_of_floors
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfFloors returns the old "number_of_floors" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldNumberOfFloors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfFloors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfFloors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfFloors: %w", err)
	}
	return oldValue.NumberOfFloors, nil
}

// AddNumberOfFloors adds i to the "number_of_floors" field.
func (m *BuildingMutation) AddNumberOfFloors(i int) {
	if m.addnumber_of_floors != nil {
		*m.addnumber_of_floors += i
	} else {
		m.addnumber_of_floors = &i
	}
}

// AddedNumberOfFloors returns the value that was added to the "number_of_floors" field in this mutation.
func (m *BuildingMutation) AddedNumberOfFloors() (r int, exists bool) {
	v := m.addnumber_of_floors
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfFloors resets all changes to the "number_of_floors" field.
func (m *BuildingMutation) ResetNumberOfFloors() {
	m.number_of_floors = nil
	m.addnumber_of_floors = nil
}

// SetNumberOfUnits sets the "number_of_units" field.
func (m *BuildingMutation) SetNumberOfUnits(i int) {
	m.number_of_units = &i
	m.addnumber_of_units = nil
}

// NumberOfUnits returns the value of the "number_of_units" field in the mutation.
func (m *BuildingMutation) NumberOfUnits() (r int, exists bool) {
	v := m.number_of_units
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfUnits returns the old "number_of_units" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldNumberOfUnits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfUnits: %w", err)
	}
	return oldValue.NumberOfUnits, nil
}

// AddNumberOfUnits adds i to the "number_of_units" field.
func (m *BuildingMutation) AddNumberOfUnits(i int) {
	if m.addnumber_of_units != nil {
		*m.addnumber_of_units += i
	} else {
		m.addnumber_of_units = &i
	}
}

// AddedNumberOfUnits returns the value that was added to the "number_of_units" field in this mutation.
func (m *BuildingMutation) AddedNumberOfUnits() (r int, exists bool) {
	v := m.addnumber_of_units
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfUnits resets all changes to the "number_of_units" field.
func (m *BuildingMutation) ResetNumberOfUnits() {
	m.number_of_units = nil
	m.addnumber_of_units = nil
}

// SetAddress sets the "address" field.
func (m *BuildingMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *BuildingMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *BuildingMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[building.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *BuildingMutation) AddressCleared() bool {
	_, ok := m.clearedFields[building.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *BuildingMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, building.FieldAddress)
}

// SetLatitude sets the "latitude" field.
func (m *BuildingMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *BuildingMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *BuildingMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *BuildingMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *BuildingMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[building.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *BuildingMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[building.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *BuildingMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, building.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *BuildingMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *BuildingMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *BuildingMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *BuildingMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *BuildingMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[building.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *BuildingMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[building.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *BuildingMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, building.FieldLongitude)
}

// SetNotes sets the "notes" field.
func (m *BuildingMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BuildingMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BuildingMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[building.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BuildingMutation) NotesCleared() bool {
	_, ok := m.clearedFields[building.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BuildingMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, building.FieldNotes)
}

// Where appends a list predicates to the BuildingMutation builder.
func (m *BuildingMutation) Where(ps ...predicate.Building) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Building, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Building).
func (m *BuildingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildingMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, building.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, building.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, building.FieldSourcePackageID)
	}
	if m.building_code != nil {
		fields = append(fields, building.FieldBuildingCode)
	}
	if m.governorate_code != nil {
		fields = append(fields, building.FieldGovernorateCode)
	}
	if m.district_code != nil {
		fields = append(fields, building.FieldDistrictCode)
	}
	if m.sub_district_code != nil {
		fields = append(fields, building.FieldSubDistrictCode)
	}
	if m.community_code != nil {
		fields = append(fields, building.FieldCommunityCode)
	}
	if m.neighborhood_code != nil {
		fields = append(fields, building.FieldNeighborhoodCode)
	}
	if m.building_number != nil {
		fields = append(fields, building.FieldBuildingNumber)
	}
	if m.building_type_code != nil {
		fields = append(fields, building.FieldBuildingTypeCode)
	}
	if m.occupancy_status_code != nil {
		fields = append(fields, building.FieldOccupancyStatusCode)
	}
	if m.number_of_floors != nil {
		fields = append(fields, building.FieldNumberOfFloors)
	}
	if m.number_of_units != nil {
		fields = append(fields, building.FieldNumberOfUnits)
	}
	if m.address != nil {
		fields = append(fields, building.FieldAddress)
	}
	if m.latitude != nil {
		fields = append(fields, building.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, building.FieldLongitude)
	}
	if m.notes != nil {
		fields = append(fields, building.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case building.FieldCreatedAt:
		return m.CreatedAt()
	case building.FieldUpdatedAt:
		return m.UpdatedAt()
	case building.FieldSourcePackageID:
		return m.SourcePackageID()
	case building.FieldBuildingCode:
		return m.BuildingCode()
	case building.FieldGovernorateCode:
		return m.GovernorateCode()
	case building.FieldDistrictCode:
		return m.DistrictCode()
	case building.FieldSubDistrictCode:
		return m.SubDistrictCode()
	case building.FieldCommunityCode:
		return m.CommunityCode()
	case building.FieldNeighborhoodCode:
		return m.NeighborhoodCode()
	case building.FieldBuildingNumber:
		return m.BuildingNumber()
	case building.FieldBuildingTypeCode:
		return m.BuildingTypeCode()
	case building.FieldOccupancyStatusCode:
		return m.OccupancyStatusCode()
	case building.FieldNumberOfFloors:
		return m.NumberOfFloors()
	case building.FieldNumberOfUnits:
		return m.NumberOfUnits()
	case building.FieldAddress:
		return m.Address()
	case building.FieldLatitude:
		return m.Latitude()
	case building.FieldLongitude:
		return m.Longitude()
	case building.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case building.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case building.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case building.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case building.FieldBuildingCode:
		return m.OldBuildingCode(ctx)
	case building.FieldGovernorateCode:
		return m.OldGovernorateCode(ctx)
	case building.FieldDistrictCode:
		return m.OldDistrictCode(ctx)
	case building.FieldSubDistrictCode:
		return m.OldSubDistrictCode(ctx)
	case building.FieldCommunityCode:
		return m.OldCommunityCode(ctx)
	case building.FieldNeighborhoodCode:
		return m.OldNeighborhoodCode(ctx)
	case building.FieldBuildingNumber:
		return m.OldBuildingNumber(ctx)
	case building.FieldBuildingTypeCode:
		return m.OldBuildingTypeCode(ctx)
	case building.FieldOccupancyStatusCode:
		return m.OldOccupancyStatusCode(ctx)
	case building.FieldNumberOfFloors:
		return m.OldNumberOfFloors(ctx)
	case building.FieldNumberOfUnits:
		return m.OldNumberOfUnits(ctx)
	case building.FieldAddress:
		return m.OldAddress(ctx)
	case building.FieldLatitude:
		return m.OldLatitude(ctx)
	case building.FieldLongitude:
		return m.OldLongitude(ctx)
	case building.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Building field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case building.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case building.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case building.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case building.FieldBuildingCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingCode(v)
		return nil
	case building.FieldGovernorateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovernorateCode(v)
		return nil
	case building.FieldDistrictCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrictCode(v)
		return nil
	case building.FieldSubDistrictCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubDistrictCode(v)
		return nil
	case building.FieldCommunityCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityCode(v)
		return nil
	case building.FieldNeighborhoodCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeighborhoodCode(v)
		return nil
	case building.FieldBuildingNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingNumber(v)
		return nil
	case building.FieldBuildingTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingTypeCode(v)
		return nil
	case building.FieldOccupancyStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccupancyStatusCode(v)
		return nil
	case building.FieldNumberOfFloors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfFloors(v)
		return nil
	case building.FieldNumberOfUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfUnits(v)
		return nil
	case building.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case building.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case building.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case building.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Building field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildingMutation) AddedFields() []string {
	var fields []string
	if m.addnumber_of_floors != nil {
		fields = append(fields, building.FieldNumberOfFloors)
	}
	if m.addnumber_of_units != nil {
		fields = append(fields, building.FieldNumberOfUnits)
	}
	if m.addlatitude != nil {
		fields = append(fields, building.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, building.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case building.FieldNumberOfFloors:
		return m.AddedNumberOfFloors()
	case building.FieldNumberOfUnits:
		return m.AddedNumberOfUnits()
	case building.FieldLatitude:
		return m.AddedLatitude()
	case building.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case building.FieldNumberOfFloors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfFloors(v)
		return nil
	case building.FieldNumberOfUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfUnits(v)
		return nil
	case building.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case building.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Building numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(building.FieldSourcePackageID) {
		fields = append(fields, building.FieldSourcePackageID)
	}
	if m.FieldCleared(building.FieldBuildingTypeCode) {
		fields = append(fields, building.FieldBuildingTypeCode)
	}
	if m.FieldCleared(building.FieldOccupancyStatusCode) {
		fields = append(fields, building.FieldOccupancyStatusCode)
	}
	if m.FieldCleared(building.FieldAddress) {
		fields = append(fields, building.FieldAddress)
	}
	if m.FieldCleared(building.FieldLatitude) {
		fields = append(fields, building.FieldLatitude)
	}
	if m.FieldCleared(building.FieldLongitude) {
		fields = append(fields, building.FieldLongitude)
	}
	if m.FieldCleared(building.FieldNotes) {
		fields = append(fields, building.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildingMutation) ClearField(name string) error {
	switch name {
	case building.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case building.FieldBuildingTypeCode:
		m.ClearBuildingTypeCode()
		return nil
	case building.FieldOccupancyStatusCode:
		m.ClearOccupancyStatusCode()
		return nil
	case building.FieldAddress:
		m.ClearAddress()
		return nil
	case building.FieldLatitude:
		m.ClearLatitude()
		return nil
	case building.FieldLongitude:
		m.ClearLongitude()
		return nil
	case building.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Building nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildingMutation) ResetField(name string) error {
	switch name {
	case building.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case building.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case building.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case building.FieldBuildingCode:
		m.ResetBuildingCode()
		return nil
	case building.FieldGovernorateCode:
		m.ResetGovernorateCode()
		return nil
	case building.FieldDistrictCode:
		m.ResetDistrictCode()
		return nil
	case building.FieldSubDistrictCode:
		m.ResetSubDistrictCode()
		return nil
	case building.FieldCommunityCode:
		m.ResetCommunityCode()
		return nil
	case building.FieldNeighborhoodCode:
		m.ResetNeighborhoodCode()
		return nil
	case building.FieldBuildingNumber:
		m.ResetBuildingNumber()
		return nil
	case building.FieldBuildingTypeCode:
		m.ResetBuildingTypeCode()
		return nil
	case building.FieldOccupancyStatusCode:
		m.ResetOccupancyStatusCode()
		return nil
	case building.FieldNumberOfFloors:
		m.ResetNumberOfFloors()
		return nil
	case building.FieldNumberOfUnits:
		m.ResetNumberOfUnits()
		return nil
	case building.FieldAddress:
		m.ResetAddress()
		return nil
	case building.FieldLatitude:
		m.ResetLatitude()
		return nil
	case building.FieldLongitude:
		m.ResetLongitude()
		return nil
	case building.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Building field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Building unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Building edge %s", name)
}

// CertificateMutation represents an operation that mutates the Certificate nodes in the graph.
type CertificateMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	certificate_number *string
	claim_id           *uuid.UUID
	beneficiary_id     *uuid.UUID
	issued_date        *time.Time
	status_code        *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Certificate, error)
	predicates         []predicate.Certificate
}

var _ ent.Mutation = (*CertificateMutation)(nil)

// certificateOption allows management of the mutation configuration using functional options.
type certificateOption func(*CertificateMutation)

// newCertificateMutation creates new mutation for the Certificate entity.
func newCertificateMutation(c config, op Op, opts ...certificateOption) *CertificateMutation {
	m := &CertificateMutation{
		config:        c,
		op:            op,
		typ:           TypeCertificate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCertificateID sets the ID field of the mutation.
func withCertificateID(id uuid.UUID) certificateOption {
	return func(m *CertificateMutation) {
		var (
			err   error
			once  sync.Once
			value *Certificate
		)
		m.oldValue = func(ctx context.Context) (*Certificate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Certificate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCertificate sets the old Certificate of the mutation.
func withCertificate(node *Certificate) certificateOption {
	return func(m *CertificateMutation) {
		m.oldValue = func(context.Context) (*Certificate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CertificateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CertificateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Certificate entities.
func (m *CertificateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CertificateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CertificateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Certificate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CertificateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CertificateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CertificateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CertificateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CertificateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CertificateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCertificateNumber sets the "certificate_number" field.
func (m *CertificateMutation) SetCertificateNumber(s string) {
	m.certificate_number = &s
}

// CertificateNumber returns the value of the "certificate_number" field in the mutation.
func (m *CertificateMutation) CertificateNumber() (r string, exists bool) {
	v := m.certificate_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateNumber returns the old "certificate_number" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCertificateNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateNumber: %w", err)
	}
	return oldValue.CertificateNumber, nil
}

// ResetCertificateNumber resets all changes to the "certificate_number" field.
func (m *CertificateMutation) ResetCertificateNumber() {
	m.certificate_number = nil
}

// SetClaimID sets the "claim_id" field.
func (m *CertificateMutation) SetClaimID(u uuid.UUID) {
	m.claim_id = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *CertificateMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *CertificateMutation) ResetClaimID() {
	m.claim_id = nil
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (m *CertificateMutation) SetBeneficiaryID(u uuid.UUID) {
	m.beneficiary_id = &u
}

// BeneficiaryID returns the value of the "beneficiary_id" field in the mutation.
func (m *CertificateMutation) BeneficiaryID() (r uuid.UUID, exists bool) {
	v := m.beneficiary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBeneficiaryID returns the old "beneficiary_id" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldBeneficiaryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeneficiaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeneficiaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeneficiaryID: %w", err)
	}
	return oldValue.BeneficiaryID, nil
}

// ResetBeneficiaryID resets all changes to the "beneficiary_id" field.
func (m *CertificateMutation) ResetBeneficiaryID() {
	m.beneficiary_id = nil
}

// SetIssuedDate sets the "issued_date" field.
func (m *CertificateMutation) SetIssuedDate(t time.Time) {
	m.issued_date = &t
}

// IssuedDate returns the value of the "issued_date" field in the mutation.
func (m *CertificateMutation) IssuedDate() (r time.Time, exists bool) {
	v := m.issued_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedDate returns the old "issued_date" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldIssuedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedDate: %w", err)
	}
	return oldValue.IssuedDate, nil
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (m *CertificateMutation) ClearIssuedDate() {
	m.issued_date = nil
	m.clearedFields[certificate.FieldIssuedDate] = struct{}{}
}

// IssuedDateCleared returns if the "issued_date" field was cleared in this mutation.
func (m *CertificateMutation) IssuedDateCleared() bool {
	_, ok := m.clearedFields[certificate.FieldIssuedDate]
	return ok
}

// ResetIssuedDate resets all changes to the "issued_date" field.
func (m *CertificateMutation) ResetIssuedDate() {
	m.issued_date = nil
	delete(m.clearedFields, certificate.FieldIssuedDate)
}

// SetStatusCode sets the "status_code" field.
func (m *CertificateMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *CertificateMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ClearStatusCode clears the value of the "status_code" field.
func (m *CertificateMutation) ClearStatusCode() {
	m.status_code = nil
	m.clearedFields[certificate.FieldStatusCode] = struct{}{}
}

// StatusCodeCleared returns if the "status_code" field was cleared in this mutation.
func (m *CertificateMutation) StatusCodeCleared() bool {
	_, ok := m.clearedFields[certificate.FieldStatusCode]
	return ok
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *CertificateMutation) ResetStatusCode() {
	m.status_code = nil
	delete(m.clearedFields, certificate.FieldStatusCode)
}

// Where appends a list predicates to the CertificateMutation builder.
func (m *CertificateMutation) Where(ps ...predicate.Certificate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CertificateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CertificateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Certificate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CertificateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CertificateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Certificate).
func (m *CertificateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CertificateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, certificate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, certificate.FieldUpdatedAt)
	}
	if m.certificate_number != nil {
		fields = append(fields, certificate.FieldCertificateNumber)
	}
	if m.claim_id != nil {
		fields = append(fields, certificate.FieldClaimID)
	}
	if m.beneficiary_id != nil {
		fields = append(fields, certificate.FieldBeneficiaryID)
	}
	if m.issued_date != nil {
		fields = append(fields, certificate.FieldIssuedDate)
	}
	if m.status_code != nil {
		fields = append(fields, certificate.FieldStatusCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CertificateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case certificate.FieldCreatedAt:
		return m.CreatedAt()
	case certificate.FieldUpdatedAt:
		return m.UpdatedAt()
	case certificate.FieldCertificateNumber:
		return m.CertificateNumber()
	case certificate.FieldClaimID:
		return m.ClaimID()
	case certificate.FieldBeneficiaryID:
		return m.BeneficiaryID()
	case certificate.FieldIssuedDate:
		return m.IssuedDate()
	case certificate.FieldStatusCode:
		return m.StatusCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CertificateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case certificate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case certificate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case certificate.FieldCertificateNumber:
		return m.OldCertificateNumber(ctx)
	case certificate.FieldClaimID:
		return m.OldClaimID(ctx)
	case certificate.FieldBeneficiaryID:
		return m.OldBeneficiaryID(ctx)
	case certificate.FieldIssuedDate:
		return m.OldIssuedDate(ctx)
	case certificate.FieldStatusCode:
		return m.OldStatusCode(ctx)
	}
	return nil, fmt.Errorf("unknown Certificate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case certificate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case certificate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case certificate.FieldCertificateNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateNumber(v)
		return nil
	case certificate.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case certificate.FieldBeneficiaryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeneficiaryID(v)
		return nil
	case certificate.FieldIssuedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedDate(v)
		return nil
	case certificate.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CertificateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CertificateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Certificate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CertificateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(certificate.FieldIssuedDate) {
		fields = append(fields, certificate.FieldIssuedDate)
	}
	if m.FieldCleared(certificate.FieldStatusCode) {
		fields = append(fields, certificate.FieldStatusCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CertificateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CertificateMutation) ClearField(name string) error {
	switch name {
	case certificate.FieldIssuedDate:
		m.ClearIssuedDate()
		return nil
	case certificate.FieldStatusCode:
		m.ClearStatusCode()
		return nil
	}
	return fmt.Errorf("unknown Certificate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CertificateMutation) ResetField(name string) error {
	switch name {
	case certificate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case certificate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case certificate.FieldCertificateNumber:
		m.ResetCertificateNumber()
		return nil
	case certificate.FieldClaimID:
		m.ResetClaimID()
		return nil
	case certificate.FieldBeneficiaryID:
		m.ResetBeneficiaryID()
		return nil
	case certificate.FieldIssuedDate:
		m.ResetIssuedDate()
		return nil
	case certificate.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CertificateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CertificateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CertificateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CertificateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CertificateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CertificateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CertificateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Certificate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CertificateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Certificate edge %s", name)
}

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	source_package_id   *uuid.UUID
	claim_number        *string
	property_unit_id    *uuid.UUID
	primary_claimant_id *uuid.UUID
	claim_type_code     *string
	status_code         *string
	claimed_share       *float64
	addclaimed_share    *float64
	submission_date     *time.Time
	notes               *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Claim, error)
	predicates          []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id uuid.UUID) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *ClaimMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *ClaimMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *ClaimMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[claim.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *ClaimMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[claim.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *ClaimMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, claim.FieldSourcePackageID)
}

// SetClaimNumber sets the "claim_number" field.
func (m *ClaimMutation) SetClaimNumber(s string) {
	m.claim_number = &s
}

// ClaimNumber returns the value of the "claim_number" field in the mutation.
func (m *ClaimMutation) ClaimNumber() (r string, exists bool) {
	v := m.claim_number
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimNumber returns the old "claim_number" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimNumber: %w", err)
	}
	return oldValue.ClaimNumber, nil
}

// ResetClaimNumber resets all changes to the "claim_number" field.
func (m *ClaimMutation) ResetClaimNumber() {
	m.claim_number = nil
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (m *ClaimMutation) SetPropertyUnitID(u uuid.UUID) {
	m.property_unit_id = &u
}

// PropertyUnitID returns the value of the "property_unit_id" field in the mutation.
func (m *ClaimMutation) PropertyUnitID() (r uuid.UUID, exists bool) {
	v := m.property_unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyUnitID returns the old "property_unit_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPropertyUnitID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyUnitID: %w", err)
	}
	return oldValue.PropertyUnitID, nil
}

// ResetPropertyUnitID resets all changes to the "property_unit_id" field.
func (m *ClaimMutation) ResetPropertyUnitID() {
	m.property_unit_id = nil
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (m *ClaimMutation) SetPrimaryClaimantID(u uuid.UUID) {
	m.primary_claimant_id = &u
}

// PrimaryClaimantID returns the value of the "primary_claimant_id" field in the mutation.
func (m *ClaimMutation) PrimaryClaimantID() (r uuid.UUID, exists bool) {
	v := m.primary_claimant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryClaimantID returns the old "primary_claimant_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPrimaryClaimantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryClaimantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryClaimantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryClaimantID: %w", err)
	}
	return oldValue.PrimaryClaimantID, nil
}

// ResetPrimaryClaimantID resets all changes to the "primary_claimant_id" field.
func (m *ClaimMutation) ResetPrimaryClaimantID() {
	m.primary_claimant_id = nil
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (m *ClaimMutation) SetClaimTypeCode(s string) {
	m.claim_type_code = &s
}

// ClaimTypeCode returns the value of the "claim_type_code" field in the mutation.
func (m *ClaimMutation) ClaimTypeCode() (r string, exists bool) {
	v := m.claim_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimTypeCode returns the old "claim_type_code" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimTypeCode: %w", err)
	}
	return oldValue.ClaimTypeCode, nil
}

// ResetClaimTypeCode resets all changes to the "claim_type_code" field.
func (m *ClaimMutation) ResetClaimTypeCode() {
	m.claim_type_code = nil
}

// SetStatusCode sets the "status_code" field.
func (m *ClaimMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ClaimMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ClaimMutation) ResetStatusCode() {
	m.status_code = nil
}

// SetClaimedShare sets the "claimed_share" field.
func (m *ClaimMutation) SetClaimedShare(f float64) {
	m.claimed_share = &f
	m.addclaimed_share = nil
}

// ClaimedShare returns the value of the "claimed_share" field in the mutation.
func (m *ClaimMutation) ClaimedShare() (r float64, exists bool) {
	v := m.claimed_share
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedShare returns the old "claimed_share" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimedShare(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedShare: %w", err)
	}
	return oldValue.ClaimedShare, nil
}

// AddClaimedShare adds f to the "claimed_share" field.
func (m *ClaimMutation) AddClaimedShare(f float64) {
	if m.addclaimed_share != nil {
		*m.addclaimed_share += f
	} else {
		m.addclaimed_share = &f
	}
}

// AddedClaimedShare returns the value that was added to the "claimed_share" field in this mutation.
func (m *ClaimMutation) AddedClaimedShare() (r float64, exists bool) {
	v := m.addclaimed_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetClaimedShare resets all changes to the "claimed_share" field.
func (m *ClaimMutation) ResetClaimedShare() {
	m.claimed_share = nil
	m.addclaimed_share = nil
}

// SetSubmissionDate sets the "submission_date" field.
func (m *ClaimMutation) SetSubmissionDate(t time.Time) {
	m.submission_date = &t
}

// SubmissionDate returns the value of the "submission_date" field in the mutation.
func (m *ClaimMutation) SubmissionDate() (r time.Time, exists bool) {
	v := m.submission_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionDate returns the old "submission_date" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSubmissionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionDate: %w", err)
	}
	return oldValue.SubmissionDate, nil
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (m *ClaimMutation) ClearSubmissionDate() {
	m.submission_date = nil
	m.clearedFields[claim.FieldSubmissionDate] = struct{}{}
}

// SubmissionDateCleared returns if the "submission_date" field was cleared in this mutation.
func (m *ClaimMutation) SubmissionDateCleared() bool {
	_, ok := m.clearedFields[claim.FieldSubmissionDate]
	return ok
}

// ResetSubmissionDate resets all changes to the "submission_date" field.
func (m *ClaimMutation) ResetSubmissionDate() {
	m.submission_date = nil
	delete(m.clearedFields, claim.FieldSubmissionDate)
}

// SetNotes sets the "notes" field.
func (m *ClaimMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ClaimMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ClaimMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[claim.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ClaimMutation) NotesCleared() bool {
	_, ok := m.clearedFields[claim.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ClaimMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, claim.FieldNotes)
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claim.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, claim.FieldSourcePackageID)
	}
	if m.claim_number != nil {
		fields = append(fields, claim.FieldClaimNumber)
	}
	if m.property_unit_id != nil {
		fields = append(fields, claim.FieldPropertyUnitID)
	}
	if m.primary_claimant_id != nil {
		fields = append(fields, claim.FieldPrimaryClaimantID)
	}
	if m.claim_type_code != nil {
		fields = append(fields, claim.FieldClaimTypeCode)
	}
	if m.status_code != nil {
		fields = append(fields, claim.FieldStatusCode)
	}
	if m.claimed_share != nil {
		fields = append(fields, claim.FieldClaimedShare)
	}
	if m.submission_date != nil {
		fields = append(fields, claim.FieldSubmissionDate)
	}
	if m.notes != nil {
		fields = append(fields, claim.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	case claim.FieldUpdatedAt:
		return m.UpdatedAt()
	case claim.FieldSourcePackageID:
		return m.SourcePackageID()
	case claim.FieldClaimNumber:
		return m.ClaimNumber()
	case claim.FieldPropertyUnitID:
		return m.PropertyUnitID()
	case claim.FieldPrimaryClaimantID:
		return m.PrimaryClaimantID()
	case claim.FieldClaimTypeCode:
		return m.ClaimTypeCode()
	case claim.FieldStatusCode:
		return m.StatusCode()
	case claim.FieldClaimedShare:
		return m.ClaimedShare()
	case claim.FieldSubmissionDate:
		return m.SubmissionDate()
	case claim.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case claim.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case claim.FieldClaimNumber:
		return m.OldClaimNumber(ctx)
	case claim.FieldPropertyUnitID:
		return m.OldPropertyUnitID(ctx)
	case claim.FieldPrimaryClaimantID:
		return m.OldPrimaryClaimantID(ctx)
	case claim.FieldClaimTypeCode:
		return m.OldClaimTypeCode(ctx)
	case claim.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case claim.FieldClaimedShare:
		return m.OldClaimedShare(ctx)
	case claim.FieldSubmissionDate:
		return m.OldSubmissionDate(ctx)
	case claim.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case claim.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case claim.FieldClaimNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimNumber(v)
		return nil
	case claim.FieldPropertyUnitID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyUnitID(v)
		return nil
	case claim.FieldPrimaryClaimantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryClaimantID(v)
		return nil
	case claim.FieldClaimTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimTypeCode(v)
		return nil
	case claim.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case claim.FieldClaimedShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedShare(v)
		return nil
	case claim.FieldSubmissionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionDate(v)
		return nil
	case claim.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	var fields []string
	if m.addclaimed_share != nil {
		fields = append(fields, claim.FieldClaimedShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldClaimedShare:
		return m.AddedClaimedShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claim.FieldClaimedShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClaimedShare(v)
		return nil
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claim.FieldSourcePackageID) {
		fields = append(fields, claim.FieldSourcePackageID)
	}
	if m.FieldCleared(claim.FieldSubmissionDate) {
		fields = append(fields, claim.FieldSubmissionDate)
	}
	if m.FieldCleared(claim.FieldNotes) {
		fields = append(fields, claim.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	switch name {
	case claim.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case claim.FieldSubmissionDate:
		m.ClearSubmissionDate()
		return nil
	case claim.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case claim.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case claim.FieldClaimNumber:
		m.ResetClaimNumber()
		return nil
	case claim.FieldPropertyUnitID:
		m.ResetPropertyUnitID()
		return nil
	case claim.FieldPrimaryClaimantID:
		m.ResetPrimaryClaimantID()
		return nil
	case claim.FieldClaimTypeCode:
		m.ResetClaimTypeCode()
		return nil
	case claim.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case claim.FieldClaimedShare:
		m.ResetClaimedShare()
		return nil
	case claim.FieldSubmissionDate:
		m.ResetSubmissionDate()
		return nil
	case claim.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Claim edge %s", name)
}

// ConflictResolutionMutation represents an operation that mutates the ConflictResolution nodes in the graph.
type ConflictResolutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	entity_type         *conflictresolution.EntityType
	staging_entity_id   *uuid.UUID
	score               *float64
	addscore            *float64
	suggested_master_id *uuid.UUID
	candidates          *[]domain.Candidate
	appendcandidates    []domain.Candidate
	status              *conflictresolution.Status
	resolution          *conflictresolution.Resolution
	justification       *string
	chosen_master_id    *uuid.UUID
	merge_mapping       *map[string]int
	resolved_by         *string
	resolved_at         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ConflictResolution, error)
	predicates          []predicate.ConflictResolution
}

var _ ent.Mutation = (*ConflictResolutionMutation)(nil)

// conflictresolutionOption allows management of the mutation configuration using functional options.
type conflictresolutionOption func(*ConflictResolutionMutation)

// newConflictResolutionMutation creates new mutation for the ConflictResolution entity.
func newConflictResolutionMutation(c config, op Op, opts ...conflictresolutionOption) *ConflictResolutionMutation {
	m := &ConflictResolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeConflictResolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConflictResolutionID sets the ID field of the mutation.
func withConflictResolutionID(id uuid.UUID) conflictresolutionOption {
	return func(m *ConflictResolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ConflictResolution
		)
		m.oldValue = func(ctx context.Context) (*ConflictResolution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConflictResolution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConflictResolution sets the old ConflictResolution of the mutation.
func withConflictResolution(node *ConflictResolution) conflictresolutionOption {
	return func(m *ConflictResolutionMutation) {
		m.oldValue = func(context.Context) (*ConflictResolution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConflictResolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConflictResolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConflictResolution entities.
func (m *ConflictResolutionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConflictResolutionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConflictResolutionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConflictResolution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConflictResolutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConflictResolutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConflictResolutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConflictResolutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConflictResolutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConflictResolutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *ConflictResolutionMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *ConflictResolutionMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *ConflictResolutionMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *ConflictResolutionMutation) SetEntityType(ct conflictresolution.EntityType) {
	m.entity_type = &ct
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ConflictResolutionMutation) EntityType() (r conflictresolution.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldEntityType(ctx context.Context) (v conflictresolution.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ConflictResolutionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetStagingEntityID sets the "staging_entity_id" field.
func (m *ConflictResolutionMutation) SetStagingEntityID(u uuid.UUID) {
	m.staging_entity_id = &u
}

// StagingEntityID returns the value of the "staging_entity_id" field in the mutation.
func (m *ConflictResolutionMutation) StagingEntityID() (r uuid.UUID, exists bool) {
	v := m.staging_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStagingEntityID returns the old "staging_entity_id" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldStagingEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStagingEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStagingEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStagingEntityID: %w", err)
	}
	return oldValue.StagingEntityID, nil
}

// ResetStagingEntityID resets all changes to the "staging_entity_id" field.
func (m *ConflictResolutionMutation) ResetStagingEntityID() {
	m.staging_entity_id = nil
}

// SetScore sets the "score" field.
func (m *ConflictResolutionMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ConflictResolutionMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ConflictResolutionMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ConflictResolutionMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ConflictResolutionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetSuggestedMasterID sets the "suggested_master_id" field.
func (m *ConflictResolutionMutation) SetSuggestedMasterID(u uuid.UUID) {
	m.suggested_master_id = &u
}

// SuggestedMasterID returns the value of the "suggested_master_id" field in the mutation.
func (m *ConflictResolutionMutation) SuggestedMasterID() (r uuid.UUID, exists bool) {
	v := m.suggested_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedMasterID returns the old "suggested_master_id" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldSuggestedMasterID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedMasterID: %w", err)
	}
	return oldValue.SuggestedMasterID, nil
}

// ClearSuggestedMasterID clears the value of the "suggested_master_id" field.
func (m *ConflictResolutionMutation) ClearSuggestedMasterID() {
	m.suggested_master_id = nil
	m.clearedFields[conflictresolution.FieldSuggestedMasterID] = struct{}{}
}

// SuggestedMasterIDCleared returns if the "suggested_master_id" field was cleared in this mutation.
func (m *ConflictResolutionMutation) SuggestedMasterIDCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldSuggestedMasterID]
	return ok
}

// ResetSuggestedMasterID resets all changes to the "suggested_master_id" field.
func (m *ConflictResolutionMutation) ResetSuggestedMasterID() {
	m.suggested_master_id = nil
	delete(m.clearedFields, conflictresolution.FieldSuggestedMasterID)
}

// SetCandidates sets the "candidates" field.
func (m *ConflictResolutionMutation) SetCandidates(d []domain.Candidate) {
	m.candidates = &d
	m.appendcandidates = nil
}

// Candidates returns the value of the "candidates" field in the mutation.
func (m *ConflictResolutionMutation) Candidates() (r []domain.Candidate, exists bool) {
	v := m.candidates
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidates returns the old "candidates" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldCandidates(ctx context.Context) (v []domain.Candidate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidates: %w", err)
	}
	return oldValue.Candidates, nil
}

// AppendCandidates adds d to the "candidates" field.
func (m *ConflictResolutionMutation) AppendCandidates(d []domain.Candidate) {
	m.appendcandidates = append(m.appendcandidates, d...)
}

// AppendedCandidates returns the list of values that were appended to the "candidates" field in this mutation.
func (m *ConflictResolutionMutation) AppendedCandidates() ([]domain.Candidate, bool) {
	if len(m.appendcandidates) == 0 {
		return nil, false
	}
	return m.appendcandidates, true
}

// ClearCandidates clears the value of the "candidates" field.
func (m *ConflictResolutionMutation) ClearCandidates() {
	m.candidates = nil
	m.appendcandidates = nil
	m.clearedFields[conflictresolution.FieldCandidates] = struct{}{}
}

// CandidatesCleared returns if the "candidates" field was cleared in this mutation.
func (m *ConflictResolutionMutation) CandidatesCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldCandidates]
	return ok
}

// ResetCandidates resets all changes to the "candidates" field.
func (m *ConflictResolutionMutation) ResetCandidates() {
	m.candidates = nil
	m.appendcandidates = nil
	delete(m.clearedFields, conflictresolution.FieldCandidates)
}

// SetStatus sets the "status" field.
func (m *ConflictResolutionMutation) SetStatus(c conflictresolution.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConflictResolutionMutation) Status() (r conflictresolution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldStatus(ctx context.Context) (v conflictresolution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConflictResolutionMutation) ResetStatus() {
	m.status = nil
}

// SetResolution sets the "resolution" field.
func (m *ConflictResolutionMutation) SetResolution(c conflictresolution.Resolution) {
	m.resolution = &c
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *ConflictResolutionMutation) Resolution() (r conflictresolution.Resolution, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldResolution(ctx context.Context) (v *conflictresolution.Resolution, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *ConflictResolutionMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[conflictresolution.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *ConflictResolutionMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *ConflictResolutionMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, conflictresolution.FieldResolution)
}

// SetJustification sets the "justification" field.
func (m *ConflictResolutionMutation) SetJustification(s string) {
	m.justification = &s
}

// Justification returns the value of the "justification" field in the mutation.
func (m *ConflictResolutionMutation) Justification() (r string, exists bool) {
	v := m.justification
	if v == nil {
		return
	}
	return *v, true
}

// OldJustification returns the old "justification" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldJustification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJustification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJustification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJustification: %w", err)
	}
	return oldValue.Justification, nil
}

// ClearJustification clears the value of the "justification" field.
func (m *ConflictResolutionMutation) ClearJustification() {
	m.justification = nil
	m.clearedFields[conflictresolution.FieldJustification] = struct{}{}
}

// JustificationCleared returns if the "justification" field was cleared in this mutation.
func (m *ConflictResolutionMutation) JustificationCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldJustification]
	return ok
}

// ResetJustification resets all changes to the "justification" field.
func (m *ConflictResolutionMutation) ResetJustification() {
	m.justification = nil
	delete(m.clearedFields, conflictresolution.FieldJustification)
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (m *ConflictResolutionMutation) SetChosenMasterID(u uuid.UUID) {
	m.chosen_master_id = &u
}

// ChosenMasterID returns the value of the "chosen_master_id" field in the mutation.
func (m *ConflictResolutionMutation) ChosenMasterID() (r uuid.UUID, exists bool) {
	v := m.chosen_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChosenMasterID returns the old "chosen_master_id" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldChosenMasterID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChosenMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChosenMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChosenMasterID: %w", err)
	}
	return oldValue.ChosenMasterID, nil
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (m *ConflictResolutionMutation) ClearChosenMasterID() {
	m.chosen_master_id = nil
	m.clearedFields[conflictresolution.FieldChosenMasterID] = struct{}{}
}

// ChosenMasterIDCleared returns if the "chosen_master_id" field was cleared in this mutation.
func (m *ConflictResolutionMutation) ChosenMasterIDCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldChosenMasterID]
	return ok
}

// ResetChosenMasterID resets all changes to the "chosen_master_id" field.
func (m *ConflictResolutionMutation) ResetChosenMasterID() {
	m.chosen_master_id = nil
	delete(m.clearedFields, conflictresolution.FieldChosenMasterID)
}

// SetMergeMapping sets the "merge_mapping" field.
func (m *ConflictResolutionMutation) SetMergeMapping(value map[string]int) {
	m.merge_mapping = &value
}

// MergeMapping returns the value of the "merge_mapping" field in the mutation.
func (m *ConflictResolutionMutation) MergeMapping() (r map[string]int, exists bool) {
	v := m.merge_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldMergeMapping returns the old "merge_mapping" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldMergeMapping(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergeMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergeMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergeMapping: %w", err)
	}
	return oldValue.MergeMapping, nil
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (m *ConflictResolutionMutation) ClearMergeMapping() {
	m.merge_mapping = nil
	m.clearedFields[conflictresolution.FieldMergeMapping] = struct{}{}
}

// MergeMappingCleared returns if the "merge_mapping" field was cleared in this mutation.
func (m *ConflictResolutionMutation) MergeMappingCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldMergeMapping]
	return ok
}

// ResetMergeMapping resets all changes to the "merge_mapping" field.
func (m *ConflictResolutionMutation) ResetMergeMapping() {
	m.merge_mapping = nil
	delete(m.clearedFields, conflictresolution.FieldMergeMapping)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *ConflictResolutionMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *ConflictResolutionMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldResolvedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *ConflictResolutionMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[conflictresolution.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *ConflictResolutionMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *ConflictResolutionMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, conflictresolution.FieldResolvedBy)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ConflictResolutionMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ConflictResolutionMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ConflictResolution entity.
// If the ConflictResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConflictResolutionMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ConflictResolutionMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[conflictresolution.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ConflictResolutionMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[conflictresolution.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ConflictResolutionMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, conflictresolution.FieldResolvedAt)
}

// Where appends a list predicates to the ConflictResolutionMutation builder.
func (m *ConflictResolutionMutation) Where(ps ...predicate.ConflictResolution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConflictResolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConflictResolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConflictResolution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConflictResolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConflictResolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConflictResolution).
func (m *ConflictResolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConflictResolutionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, conflictresolution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conflictresolution.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, conflictresolution.FieldImportPackageID)
	}
	if m.entity_type != nil {
		fields = append(fields, conflictresolution.FieldEntityType)
	}
	if m.staging_entity_id != nil {
		fields = append(fields, conflictresolution.FieldStagingEntityID)
	}
	if m.score != nil {
		fields = append(fields, conflictresolution.FieldScore)
	}
	if m.suggested_master_id != nil {
		fields = append(fields, conflictresolution.FieldSuggestedMasterID)
	}
	if m.candidates != nil {
		fields = append(fields, conflictresolution.FieldCandidates)
	}
	if m.status != nil {
		fields = append(fields, conflictresolution.FieldStatus)
	}
	if m.resolution != nil {
		fields = append(fields, conflictresolution.FieldResolution)
	}
	if m.justification != nil {
		fields = append(fields, conflictresolution.FieldJustification)
	}
	if m.chosen_master_id != nil {
		fields = append(fields, conflictresolution.FieldChosenMasterID)
	}
	if m.merge_mapping != nil {
		fields = append(fields, conflictresolution.FieldMergeMapping)
	}
	if m.resolved_by != nil {
		fields = append(fields, conflictresolution.FieldResolvedBy)
	}
	if m.resolved_at != nil {
		fields = append(fields, conflictresolution.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConflictResolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conflictresolution.FieldCreatedAt:
		return m.CreatedAt()
	case conflictresolution.FieldUpdatedAt:
		return m.UpdatedAt()
	case conflictresolution.FieldImportPackageID:
		return m.ImportPackageID()
	case conflictresolution.FieldEntityType:
		return m.EntityType()
	case conflictresolution.FieldStagingEntityID:
		return m.StagingEntityID()
	case conflictresolution.FieldScore:
		return m.Score()
	case conflictresolution.FieldSuggestedMasterID:
		return m.SuggestedMasterID()
	case conflictresolution.FieldCandidates:
		return m.Candidates()
	case conflictresolution.FieldStatus:
		return m.Status()
	case conflictresolution.FieldResolution:
		return m.Resolution()
	case conflictresolution.FieldJustification:
		return m.Justification()
	case conflictresolution.FieldChosenMasterID:
		return m.ChosenMasterID()
	case conflictresolution.FieldMergeMapping:
		return m.MergeMapping()
	case conflictresolution.FieldResolvedBy:
		return m.ResolvedBy()
	case conflictresolution.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConflictResolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conflictresolution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conflictresolution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case conflictresolution.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case conflictresolution.FieldEntityType:
		return m.OldEntityType(ctx)
	case conflictresolution.FieldStagingEntityID:
		return m.OldStagingEntityID(ctx)
	case conflictresolution.FieldScore:
		return m.OldScore(ctx)
	case conflictresolution.FieldSuggestedMasterID:
		return m.OldSuggestedMasterID(ctx)
	case conflictresolution.FieldCandidates:
		return m.OldCandidates(ctx)
	case conflictresolution.FieldStatus:
		return m.OldStatus(ctx)
	case conflictresolution.FieldResolution:
		return m.OldResolution(ctx)
	case conflictresolution.FieldJustification:
		return m.OldJustification(ctx)
	case conflictresolution.FieldChosenMasterID:
		return m.OldChosenMasterID(ctx)
	case conflictresolution.FieldMergeMapping:
		return m.OldMergeMapping(ctx)
	case conflictresolution.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case conflictresolution.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConflictResolution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConflictResolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conflictresolution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conflictresolution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case conflictresolution.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case conflictresolution.FieldEntityType:
		v, ok := value.(conflictresolution.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case conflictresolution.FieldStagingEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStagingEntityID(v)
		return nil
	case conflictresolution.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case conflictresolution.FieldSuggestedMasterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedMasterID(v)
		return nil
	case conflictresolution.FieldCandidates:
		v, ok := value.([]domain.Candidate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidates(v)
		return nil
	case conflictresolution.FieldStatus:
		v, ok := value.(conflictresolution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conflictresolution.FieldResolution:
		v, ok := value.(conflictresolution.Resolution)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case conflictresolution.FieldJustification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJustification(v)
		return nil
	case conflictresolution.FieldChosenMasterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChosenMasterID(v)
		return nil
	case conflictresolution.FieldMergeMapping:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergeMapping(v)
		return nil
	case conflictresolution.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case conflictresolution.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConflictResolution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConflictResolutionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, conflictresolution.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConflictResolutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conflictresolution.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConflictResolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conflictresolution.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ConflictResolution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConflictResolutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conflictresolution.FieldSuggestedMasterID) {
		fields = append(fields, conflictresolution.FieldSuggestedMasterID)
	}
	if m.FieldCleared(conflictresolution.FieldCandidates) {
		fields = append(fields, conflictresolution.FieldCandidates)
	}
	if m.FieldCleared(conflictresolution.FieldResolution) {
		fields = append(fields, conflictresolution.FieldResolution)
	}
	if m.FieldCleared(conflictresolution.FieldJustification) {
		fields = append(fields, conflictresolution.FieldJustification)
	}
	if m.FieldCleared(conflictresolution.FieldChosenMasterID) {
		fields = append(fields, conflictresolution.FieldChosenMasterID)
	}
	if m.FieldCleared(conflictresolution.FieldMergeMapping) {
		fields = append(fields, conflictresolution.FieldMergeMapping)
	}
	if m.FieldCleared(conflictresolution.FieldResolvedBy) {
		fields = append(fields, conflictresolution.FieldResolvedBy)
	}
	if m.FieldCleared(conflictresolution.FieldResolvedAt) {
		fields = append(fields, conflictresolution.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConflictResolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConflictResolutionMutation) ClearField(name string) error {
	switch name {
	case conflictresolution.FieldSuggestedMasterID:
		m.ClearSuggestedMasterID()
		return nil
	case conflictresolution.FieldCandidates:
		m.ClearCandidates()
		return nil
	case conflictresolution.FieldResolution:
		m.ClearResolution()
		return nil
	case conflictresolution.FieldJustification:
		m.ClearJustification()
		return nil
	case conflictresolution.FieldChosenMasterID:
		m.ClearChosenMasterID()
		return nil
	case conflictresolution.FieldMergeMapping:
		m.ClearMergeMapping()
		return nil
	case conflictresolution.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case conflictresolution.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ConflictResolution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConflictResolutionMutation) ResetField(name string) error {
	switch name {
	case conflictresolution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conflictresolution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case conflictresolution.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case conflictresolution.FieldEntityType:
		m.ResetEntityType()
		return nil
	case conflictresolution.FieldStagingEntityID:
		m.ResetStagingEntityID()
		return nil
	case conflictresolution.FieldScore:
		m.ResetScore()
		return nil
	case conflictresolution.FieldSuggestedMasterID:
		m.ResetSuggestedMasterID()
		return nil
	case conflictresolution.FieldCandidates:
		m.ResetCandidates()
		return nil
	case conflictresolution.FieldStatus:
		m.ResetStatus()
		return nil
	case conflictresolution.FieldResolution:
		m.ResetResolution()
		return nil
	case conflictresolution.FieldJustification:
		m.ResetJustification()
		return nil
	case conflictresolution.FieldChosenMasterID:
		m.ResetChosenMasterID()
		return nil
	case conflictresolution.FieldMergeMapping:
		m.ResetMergeMapping()
		return nil
	case conflictresolution.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case conflictresolution.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ConflictResolution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConflictResolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConflictResolutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConflictResolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConflictResolutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConflictResolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConflictResolutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConflictResolutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConflictResolution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConflictResolutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConflictResolution edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	source_package_id  *uuid.UUID
	claim_id           *uuid.UUID
	document_type_code *string
	title              *string
	blob_sha256        *string
	blob_path          *string
	blob_size_bytes    *int64
	addblob_size_bytes *int64
	file_name          *string
	content_type       *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *DocumentMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *DocumentMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *DocumentMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[document.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *DocumentMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[document.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *DocumentMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, document.FieldSourcePackageID)
}

// SetClaimID sets the "claim_id" field.
func (m *DocumentMutation) SetClaimID(u uuid.UUID) {
	m.claim_id = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *DocumentMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *DocumentMutation) ResetClaimID() {
	m.claim_id = nil
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (m *DocumentMutation) SetDocumentTypeCode(s string) {
	m.document_type_code = &s
}

// DocumentTypeCode returns the value of the "document_type_code" field in the mutation.
func (m *DocumentMutation) DocumentTypeCode() (r string, exists bool) {
	v := m.document_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentTypeCode returns the old "document_type_code" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentTypeCode: %w", err)
	}
	return oldValue.DocumentTypeCode, nil
}

// ResetDocumentTypeCode resets all changes to the "document_type_code" field.
func (m *DocumentMutation) ResetDocumentTypeCode() {
	m.document_type_code = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[document.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[document.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, document.FieldTitle)
}

// SetBlobSha256 sets the "blob_sha256" field.
func (m *DocumentMutation) SetBlobSha256(s string) {
	m.blob_sha256 = &s
}

// BlobSha256 returns the value of the "blob_sha256" field in the mutation.
func (m *DocumentMutation) BlobSha256() (r string, exists bool) {
	v := m.blob_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSha256 returns the old "blob_sha256" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSha256: %w", err)
	}
	return oldValue.BlobSha256, nil
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (m *DocumentMutation) ClearBlobSha256() {
	m.blob_sha256 = nil
	m.clearedFields[document.FieldBlobSha256] = struct{}{}
}

// BlobSha256Cleared returns if the "blob_sha256" field was cleared in this mutation.
func (m *DocumentMutation) BlobSha256Cleared() bool {
	_, ok := m.clearedFields[document.FieldBlobSha256]
	return ok
}

// ResetBlobSha256 resets all changes to the "blob_sha256" field.
func (m *DocumentMutation) ResetBlobSha256() {
	m.blob_sha256 = nil
	delete(m.clearedFields, document.FieldBlobSha256)
}

// SetBlobPath sets the "blob_path" field.
func (m *DocumentMutation) SetBlobPath(s string) {
	m.blob_path = &s
}

// BlobPath returns the value of the "blob_path" field in the mutation.
func (m *DocumentMutation) BlobPath() (r string, exists bool) {
	v := m.blob_path
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobPath returns the old "blob_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobPath: %w", err)
	}
	return oldValue.BlobPath, nil
}

// ClearBlobPath clears the value of the "blob_path" field.
func (m *DocumentMutation) ClearBlobPath() {
	m.blob_path = nil
	m.clearedFields[document.FieldBlobPath] = struct{}{}
}

// BlobPathCleared returns if the "blob_path" field was cleared in this mutation.
func (m *DocumentMutation) BlobPathCleared() bool {
	_, ok := m.clearedFields[document.FieldBlobPath]
	return ok
}

// ResetBlobPath resets all changes to the "blob_path" field.
func (m *DocumentMutation) ResetBlobPath() {
	m.blob_path = nil
	delete(m.clearedFields, document.FieldBlobPath)
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (m *DocumentMutation) SetBlobSizeBytes(i int64) {
	m.blob_size_bytes = &i
	m.addblob_size_bytes = nil
}

// BlobSizeBytes returns the value of the "blob_size_bytes" field in the mutation.
func (m *DocumentMutation) BlobSizeBytes() (r int64, exists bool) {
	v := m.blob_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSizeBytes returns the old "blob_size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSizeBytes: %w", err)
	}
	return oldValue.BlobSizeBytes, nil
}

// AddBlobSizeBytes adds i to the "blob_size_bytes" field.
func (m *DocumentMutation) AddBlobSizeBytes(i int64) {
	if m.addblob_size_bytes != nil {
		*m.addblob_size_bytes += i
	} else {
		m.addblob_size_bytes = &i
	}
}

// AddedBlobSizeBytes returns the value that was added to the "blob_size_bytes" field in this mutation.
func (m *DocumentMutation) AddedBlobSizeBytes() (r int64, exists bool) {
	v := m.addblob_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlobSizeBytes resets all changes to the "blob_size_bytes" field.
func (m *DocumentMutation) ResetBlobSizeBytes() {
	m.blob_size_bytes = nil
	m.addblob_size_bytes = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ClearFileName clears the value of the "file_name" field.
func (m *DocumentMutation) ClearFileName() {
	m.file_name = nil
	m.clearedFields[document.FieldFileName] = struct{}{}
}

// FileNameCleared returns if the "file_name" field was cleared in this mutation.
func (m *DocumentMutation) FileNameCleared() bool {
	_, ok := m.clearedFields[document.FieldFileName]
	return ok
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
	delete(m.clearedFields, document.FieldFileName)
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *DocumentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[document.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *DocumentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, document.FieldContentType)
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, document.FieldSourcePackageID)
	}
	if m.claim_id != nil {
		fields = append(fields, document.FieldClaimID)
	}
	if m.document_type_code != nil {
		fields = append(fields, document.FieldDocumentTypeCode)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.blob_sha256 != nil {
		fields = append(fields, document.FieldBlobSha256)
	}
	if m.blob_path != nil {
		fields = append(fields, document.FieldBlobPath)
	}
	if m.blob_size_bytes != nil {
		fields = append(fields, document.FieldBlobSizeBytes)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldSourcePackageID:
		return m.SourcePackageID()
	case document.FieldClaimID:
		return m.ClaimID()
	case document.FieldDocumentTypeCode:
		return m.DocumentTypeCode()
	case document.FieldTitle:
		return m.Title()
	case document.FieldBlobSha256:
		return m.BlobSha256()
	case document.FieldBlobPath:
		return m.BlobPath()
	case document.FieldBlobSizeBytes:
		return m.BlobSizeBytes()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldContentType:
		return m.ContentType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case document.FieldClaimID:
		return m.OldClaimID(ctx)
	case document.FieldDocumentTypeCode:
		return m.OldDocumentTypeCode(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldBlobSha256:
		return m.OldBlobSha256(ctx)
	case document.FieldBlobPath:
		return m.OldBlobPath(ctx)
	case document.FieldBlobSizeBytes:
		return m.OldBlobSizeBytes(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case document.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case document.FieldDocumentTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentTypeCode(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldBlobSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSha256(v)
		return nil
	case document.FieldBlobPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobPath(v)
		return nil
	case document.FieldBlobSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSizeBytes(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addblob_size_bytes != nil {
		fields = append(fields, document.FieldBlobSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldBlobSizeBytes:
		return m.AddedBlobSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldBlobSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlobSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSourcePackageID) {
		fields = append(fields, document.FieldSourcePackageID)
	}
	if m.FieldCleared(document.FieldTitle) {
		fields = append(fields, document.FieldTitle)
	}
	if m.FieldCleared(document.FieldBlobSha256) {
		fields = append(fields, document.FieldBlobSha256)
	}
	if m.FieldCleared(document.FieldBlobPath) {
		fields = append(fields, document.FieldBlobPath)
	}
	if m.FieldCleared(document.FieldFileName) {
		fields = append(fields, document.FieldFileName)
	}
	if m.FieldCleared(document.FieldContentType) {
		fields = append(fields, document.FieldContentType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case document.FieldTitle:
		m.ClearTitle()
		return nil
	case document.FieldBlobSha256:
		m.ClearBlobSha256()
		return nil
	case document.FieldBlobPath:
		m.ClearBlobPath()
		return nil
	case document.FieldFileName:
		m.ClearFileName()
		return nil
	case document.FieldContentType:
		m.ClearContentType()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case document.FieldClaimID:
		m.ResetClaimID()
		return nil
	case document.FieldDocumentTypeCode:
		m.ResetDocumentTypeCode()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldBlobSha256:
		m.ResetBlobSha256()
		return nil
	case document.FieldBlobPath:
		m.ResetBlobPath()
		return nil
	case document.FieldBlobSizeBytes:
		m.ResetBlobSizeBytes()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}

// DomainEventMutation represents an operation that mutates the DomainEvent nodes in the graph.
type DomainEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	event_type     *string
	aggregate_type *string
	aggregate_id   *string
	payload        *[]byte
	status         *domainevent.Status
	created_by     *string
	archived_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*DomainEvent, error)
	predicates     []predicate.DomainEvent
}

var _ ent.Mutation = (*DomainEventMutation)(nil)

// domaineventOption allows management of the mutation configuration using functional options.
type domaineventOption func(*DomainEventMutation)

// newDomainEventMutation creates new mutation for the DomainEvent entity.
func newDomainEventMutation(c config, op Op, opts ...domaineventOption) *DomainEventMutation {
	m := &DomainEventMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainEventID sets the ID field of the mutation.
func withDomainEventID(id string) domaineventOption {
	return func(m *DomainEventMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainEvent
		)
		m.oldValue = func(ctx context.Context) (*DomainEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainEvent sets the old DomainEvent of the mutation.
func withDomainEvent(node *DomainEvent) domaineventOption {
	return func(m *DomainEventMutation) {
		m.oldValue = func(context.Context) (*DomainEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DomainEvent entities.
func (m *DomainEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEventType sets the "event_type" field.
func (m *DomainEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *DomainEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *DomainEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetAggregateType sets the "aggregate_type" field.
func (m *DomainEventMutation) SetAggregateType(s string) {
	m.aggregate_type = &s
}

// AggregateType returns the value of the "aggregate_type" field in the mutation.
func (m *DomainEventMutation) AggregateType() (r string, exists bool) {
	v := m.aggregate_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregateType returns the old "aggregate_type" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldAggregateType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregateType: %w", err)
	}
	return oldValue.AggregateType, nil
}

// ResetAggregateType resets all changes to the "aggregate_type" field.
func (m *DomainEventMutation) ResetAggregateType() {
	m.aggregate_type = nil
}

// SetAggregateID sets the "aggregate_id" field.
func (m *DomainEventMutation) SetAggregateID(s string) {
	m.aggregate_id = &s
}

// AggregateID returns the value of the "aggregate_id" field in the mutation.
func (m *DomainEventMutation) AggregateID() (r string, exists bool) {
	v := m.aggregate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregateID returns the old "aggregate_id" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldAggregateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregateID: %w", err)
	}
	return oldValue.AggregateID, nil
}

// ResetAggregateID resets all changes to the "aggregate_id" field.
func (m *DomainEventMutation) ResetAggregateID() {
	m.aggregate_id = nil
}

// SetPayload sets the "payload" field.
func (m *DomainEventMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DomainEventMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DomainEventMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *DomainEventMutation) SetStatus(d domainevent.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DomainEventMutation) Status() (r domainevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldStatus(ctx context.Context) (v domainevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DomainEventMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *DomainEventMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DomainEventMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DomainEventMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *DomainEventMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *DomainEventMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *DomainEventMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[domainevent.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *DomainEventMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[domainevent.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *DomainEventMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, domainevent.FieldArchivedAt)
}

// Where appends a list predicates to the DomainEventMutation builder.
func (m *DomainEventMutation) Where(ps ...predicate.DomainEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainEvent).
func (m *DomainEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, domainevent.FieldCreatedAt)
	}
	if m.event_type != nil {
		fields = append(fields, domainevent.FieldEventType)
	}
	if m.aggregate_type != nil {
		fields = append(fields, domainevent.FieldAggregateType)
	}
	if m.aggregate_id != nil {
		fields = append(fields, domainevent.FieldAggregateID)
	}
	if m.payload != nil {
		fields = append(fields, domainevent.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, domainevent.FieldStatus)
	}
	if m.created_by != nil {
		fields = append(fields, domainevent.FieldCreatedBy)
	}
	if m.archived_at != nil {
		fields = append(fields, domainevent.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainevent.FieldCreatedAt:
		return m.CreatedAt()
	case domainevent.FieldEventType:
		return m.EventType()
	case domainevent.FieldAggregateType:
		return m.AggregateType()
	case domainevent.FieldAggregateID:
		return m.AggregateID()
	case domainevent.FieldPayload:
		return m.Payload()
	case domainevent.FieldStatus:
		return m.Status()
	case domainevent.FieldCreatedBy:
		return m.CreatedBy()
	case domainevent.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case domainevent.FieldEventType:
		return m.OldEventType(ctx)
	case domainevent.FieldAggregateType:
		return m.OldAggregateType(ctx)
	case domainevent.FieldAggregateID:
		return m.OldAggregateID(ctx)
	case domainevent.FieldPayload:
		return m.OldPayload(ctx)
	case domainevent.FieldStatus:
		return m.OldStatus(ctx)
	case domainevent.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case domainevent.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DomainEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case domainevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case domainevent.FieldAggregateType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregateType(v)
		return nil
	case domainevent.FieldAggregateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregateID(v)
		return nil
	case domainevent.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case domainevent.FieldStatus:
		v, ok := value.(domainevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case domainevent.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case domainevent.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DomainEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DomainEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domainevent.FieldArchivedAt) {
		fields = append(fields, domainevent.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainEventMutation) ClearField(name string) error {
	switch name {
	case domainevent.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainEventMutation) ResetField(name string) error {
	switch name {
	case domainevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case domainevent.FieldEventType:
		m.ResetEventType()
		return nil
	case domainevent.FieldAggregateType:
		m.ResetAggregateType()
		return nil
	case domainevent.FieldAggregateID:
		m.ResetAggregateID()
		return nil
	case domainevent.FieldPayload:
		m.ResetPayload()
		return nil
	case domainevent.FieldStatus:
		m.ResetStatus()
		return nil
	case domainevent.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case domainevent.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainEvent edge %s", name)
}

// DuplicateSuppressionMutation represents an operation that mutates the DuplicateSuppression nodes in the graph.
type DuplicateSuppressionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	entity_type          *duplicatesuppression.EntityType
	production_entity_id *uuid.UUID
	fingerprint          *string
	resolution_id        *uuid.UUID
	created_by           *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DuplicateSuppression, error)
	predicates           []predicate.DuplicateSuppression
}

var _ ent.Mutation = (*DuplicateSuppressionMutation)(nil)

// duplicatesuppressionOption allows management of the mutation configuration using functional options.
type duplicatesuppressionOption func(*DuplicateSuppressionMutation)

// newDuplicateSuppressionMutation creates new mutation for the DuplicateSuppression entity.
func newDuplicateSuppressionMutation(c config, op Op, opts ...duplicatesuppressionOption) *DuplicateSuppressionMutation {
	m := &DuplicateSuppressionMutation{
		config:        c,
		op:            op,
		typ:           TypeDuplicateSuppression,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDuplicateSuppressionID sets the ID field of the mutation.
func withDuplicateSuppressionID(id uuid.UUID) duplicatesuppressionOption {
	return func(m *DuplicateSuppressionMutation) {
		var (
			err   error
			once  sync.Once
			value *DuplicateSuppression
		)
		m.oldValue = func(ctx context.Context) (*DuplicateSuppression, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DuplicateSuppression.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDuplicateSuppression sets the old DuplicateSuppression of the mutation.
func withDuplicateSuppression(node *DuplicateSuppression) duplicatesuppressionOption {
	return func(m *DuplicateSuppressionMutation) {
		m.oldValue = func(context.Context) (*DuplicateSuppression, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DuplicateSuppressionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DuplicateSuppressionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DuplicateSuppression entities.
func (m *DuplicateSuppressionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DuplicateSuppressionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DuplicateSuppressionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DuplicateSuppression.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DuplicateSuppressionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DuplicateSuppressionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DuplicateSuppressionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *DuplicateSuppressionMutation) SetEntityType(dt duplicatesuppression.EntityType) {
	m.entity_type = &dt
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *DuplicateSuppressionMutation) EntityType() (r duplicatesuppression.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldEntityType(ctx context.Context) (v duplicatesuppression.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *DuplicateSuppressionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetProductionEntityID sets the "production_entity_id" field.
func (m *DuplicateSuppressionMutation) SetProductionEntityID(u uuid.UUID) {
	m.production_entity_id = &u
}

// ProductionEntityID returns the value of the "production_entity_id" field in the mutation.
func (m *DuplicateSuppressionMutation) ProductionEntityID() (r uuid.UUID, exists bool) {
	v := m.production_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProductionEntityID returns the old "production_entity_id" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldProductionEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductionEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductionEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductionEntityID: %w", err)
	}
	return oldValue.ProductionEntityID, nil
}

// ResetProductionEntityID resets all changes to the "production_entity_id" field.
func (m *DuplicateSuppressionMutation) ResetProductionEntityID() {
	m.production_entity_id = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *DuplicateSuppressionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *DuplicateSuppressionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *DuplicateSuppressionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetResolutionID sets the "resolution_id" field.
func (m *DuplicateSuppressionMutation) SetResolutionID(u uuid.UUID) {
	m.resolution_id = &u
}

// ResolutionID returns the value of the "resolution_id" field in the mutation.
func (m *DuplicateSuppressionMutation) ResolutionID() (r uuid.UUID, exists bool) {
	v := m.resolution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionID returns the old "resolution_id" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldResolutionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionID: %w", err)
	}
	return oldValue.ResolutionID, nil
}

// ResetResolutionID resets all changes to the "resolution_id" field.
func (m *DuplicateSuppressionMutation) ResetResolutionID() {
	m.resolution_id = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *DuplicateSuppressionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DuplicateSuppressionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the DuplicateSuppression entity.
// If the DuplicateSuppression object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateSuppressionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DuplicateSuppressionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// Where appends a list predicates to the DuplicateSuppressionMutation builder.
func (m *DuplicateSuppressionMutation) Where(ps ...predicate.DuplicateSuppression) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DuplicateSuppressionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DuplicateSuppressionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DuplicateSuppression, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DuplicateSuppressionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DuplicateSuppressionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DuplicateSuppression).
func (m *DuplicateSuppressionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DuplicateSuppressionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, duplicatesuppression.FieldCreatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, duplicatesuppression.FieldEntityType)
	}
	if m.production_entity_id != nil {
		fields = append(fields, duplicatesuppression.FieldProductionEntityID)
	}
	if m.fingerprint != nil {
		fields = append(fields, duplicatesuppression.FieldFingerprint)
	}
	if m.resolution_id != nil {
		fields = append(fields, duplicatesuppression.FieldResolutionID)
	}
	if m.created_by != nil {
		fields = append(fields, duplicatesuppression.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DuplicateSuppressionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case duplicatesuppression.FieldCreatedAt:
		return m.CreatedAt()
	case duplicatesuppression.FieldEntityType:
		return m.EntityType()
	case duplicatesuppression.FieldProductionEntityID:
		return m.ProductionEntityID()
	case duplicatesuppression.FieldFingerprint:
		return m.Fingerprint()
	case duplicatesuppression.FieldResolutionID:
		return m.ResolutionID()
	case duplicatesuppression.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DuplicateSuppressionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case duplicatesuppression.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case duplicatesuppression.FieldEntityType:
		return m.OldEntityType(ctx)
	case duplicatesuppression.FieldProductionEntityID:
		return m.OldProductionEntityID(ctx)
	case duplicatesuppression.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case duplicatesuppression.FieldResolutionID:
		return m.OldResolutionID(ctx)
	case duplicatesuppression.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown DuplicateSuppression field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateSuppressionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case duplicatesuppression.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case duplicatesuppression.FieldEntityType:
		v, ok := value.(duplicatesuppression.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case duplicatesuppression.FieldProductionEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductionEntityID(v)
		return nil
	case duplicatesuppression.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case duplicatesuppression.FieldResolutionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionID(v)
		return nil
	case duplicatesuppression.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateSuppression field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DuplicateSuppressionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DuplicateSuppressionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateSuppressionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DuplicateSuppression numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DuplicateSuppressionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DuplicateSuppressionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DuplicateSuppressionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DuplicateSuppression nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DuplicateSuppressionMutation) ResetField(name string) error {
	switch name {
	case duplicatesuppression.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case duplicatesuppression.FieldEntityType:
		m.ResetEntityType()
		return nil
	case duplicatesuppression.FieldProductionEntityID:
		m.ResetProductionEntityID()
		return nil
	case duplicatesuppression.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case duplicatesuppression.FieldResolutionID:
		m.ResetResolutionID()
		return nil
	case duplicatesuppression.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown DuplicateSuppression field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DuplicateSuppressionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DuplicateSuppressionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DuplicateSuppressionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DuplicateSuppressionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DuplicateSuppressionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DuplicateSuppressionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DuplicateSuppressionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DuplicateSuppression unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DuplicateSuppressionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DuplicateSuppression edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	source_package_id  *uuid.UUID
	person_id          *uuid.UUID
	evidence_type_code *string
	document_number    *string
	issued_date        *time.Time
	issuing_authority  *string
	blob_sha256        *string
	blob_path          *string
	blob_size_bytes    *int64
	addblob_size_bytes *int64
	file_name          *string
	content_type       *string
	notes              *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Evidence, error)
	predicates         []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id uuid.UUID) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvidenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvidenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvidenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *EvidenceMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *EvidenceMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *EvidenceMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[evidence.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *EvidenceMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[evidence.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *EvidenceMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, evidence.FieldSourcePackageID)
}

// SetPersonID sets the "person_id" field.
func (m *EvidenceMutation) SetPersonID(u uuid.UUID) {
	m.person_id = &u
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *EvidenceMutation) PersonID() (r uuid.UUID, exists bool) {
	v := m.person_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldPersonID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *EvidenceMutation) ResetPersonID() {
	m.person_id = nil
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (m *EvidenceMutation) SetEvidenceTypeCode(s string) {
	m.evidence_type_code = &s
}

// EvidenceTypeCode returns the value of the "evidence_type_code" field in the mutation.
func (m *EvidenceMutation) EvidenceTypeCode() (r string, exists bool) {
	v := m.evidence_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceTypeCode returns the old "evidence_type_code" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEvidenceTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceTypeCode: %w", err)
	}
	return oldValue.EvidenceTypeCode, nil
}

// ResetEvidenceTypeCode resets all changes to the "evidence_type_code" field.
func (m *EvidenceMutation) ResetEvidenceTypeCode() {
	m.evidence_type_code = nil
}

// SetDocumentNumber sets the "document_number" field.
func (m *EvidenceMutation) SetDocumentNumber(s string) {
	m.document_number = &s
}

// DocumentNumber returns the value of the "document_number" field in the mutation.
func (m *EvidenceMutation) DocumentNumber() (r string, exists bool) {
	v := m.document_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentNumber returns the old "document_number" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldDocumentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentNumber: %w", err)
	}
	return oldValue.DocumentNumber, nil
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (m *EvidenceMutation) ClearDocumentNumber() {
	m.document_number = nil
	m.clearedFields[evidence.FieldDocumentNumber] = struct{}{}
}

// DocumentNumberCleared returns if the "document_number" field was cleared in this mutation.
func (m *EvidenceMutation) DocumentNumberCleared() bool {
	_, ok := m.clearedFields[evidence.FieldDocumentNumber]
	return ok
}

// ResetDocumentNumber resets all changes to the "document_number" field.
func (m *EvidenceMutation) ResetDocumentNumber() {
	m.document_number = nil
	delete(m.clearedFields, evidence.FieldDocumentNumber)
}

// SetIssuedDate sets the "issued_date" field.
func (m *EvidenceMutation) SetIssuedDate(t time.Time) {
	m.issued_date = &t
}

// IssuedDate returns the value of the "issued_date" field in the mutation.
func (m *EvidenceMutation) IssuedDate() (r time.Time, exists bool) {
	v := m.issued_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedDate returns the old "issued_date" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldIssuedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedDate: %w", err)
	}
	return oldValue.IssuedDate, nil
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (m *EvidenceMutation) ClearIssuedDate() {
	m.issued_date = nil
	m.clearedFields[evidence.FieldIssuedDate] = struct{}{}
}

// IssuedDateCleared returns if the "issued_date" field was cleared in this mutation.
func (m *EvidenceMutation) IssuedDateCleared() bool {
	_, ok := m.clearedFields[evidence.FieldIssuedDate]
	return ok
}

// ResetIssuedDate resets all changes to the "issued_date" field.
func (m *EvidenceMutation) ResetIssuedDate() {
	m.issued_date = nil
	delete(m.clearedFields, evidence.FieldIssuedDate)
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (m *EvidenceMutation) SetIssuingAuthority(s string) {
	m.issuing_authority = &s
}

// IssuingAuthority returns the value of the "issuing_authority" field in the mutation.
func (m *EvidenceMutation) IssuingAuthority() (r string, exists bool) {
	v := m.issuing_authority
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuingAuthority returns the old "issuing_authority" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldIssuingAuthority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuingAuthority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuingAuthority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuingAuthority: %w", err)
	}
	return oldValue.IssuingAuthority, nil
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (m *EvidenceMutation) ClearIssuingAuthority() {
	m.issuing_authority = nil
	m.clearedFields[evidence.FieldIssuingAuthority] = struct{}{}
}

// IssuingAuthorityCleared returns if the "issuing_authority" field was cleared in this mutation.
func (m *EvidenceMutation) IssuingAuthorityCleared() bool {
	_, ok := m.clearedFields[evidence.FieldIssuingAuthority]
	return ok
}

// ResetIssuingAuthority resets all changes to the "issuing_authority" field.
func (m *EvidenceMutation) ResetIssuingAuthority() {
	m.issuing_authority = nil
	delete(m.clearedFields, evidence.FieldIssuingAuthority)
}

// SetBlobSha256 sets the "blob_sha256" field.
func (m *EvidenceMutation) SetBlobSha256(s string) {
	m.blob_sha256 = &s
}

// BlobSha256 returns the value of the "blob_sha256" field in the mutation.
func (m *EvidenceMutation) BlobSha256() (r string, exists bool) {
	v := m.blob_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSha256 returns the old "blob_sha256" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldBlobSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSha256: %w", err)
	}
	return oldValue.BlobSha256, nil
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (m *EvidenceMutation) ClearBlobSha256() {
	m.blob_sha256 = nil
	m.clearedFields[evidence.FieldBlobSha256] = struct{}{}
}

// BlobSha256Cleared returns if the "blob_sha256" field was cleared in this mutation.
func (m *EvidenceMutation) BlobSha256Cleared() bool {
	_, ok := m.clearedFields[evidence.FieldBlobSha256]
	return ok
}

// ResetBlobSha256 resets all changes to the "blob_sha256" field.
func (m *EvidenceMutation) ResetBlobSha256() {
	m.blob_sha256 = nil
	delete(m.clearedFields, evidence.FieldBlobSha256)
}

// SetBlobPath sets the "blob_path" field.
func (m *EvidenceMutation) SetBlobPath(s string) {
	m.blob_path = &s
}

// BlobPath returns the value of the "blob_path" field in the mutation.
func (m *EvidenceMutation) BlobPath() (r string, exists bool) {
	v := m.blob_path
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobPath returns the old "blob_path" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldBlobPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobPath: %w", err)
	}
	return oldValue.BlobPath, nil
}

// ClearBlobPath clears the value of the "blob_path" field.
func (m *EvidenceMutation) ClearBlobPath() {
	m.blob_path = nil
	m.clearedFields[evidence.FieldBlobPath] = struct{}{}
}

// BlobPathCleared returns if the "blob_path" field was cleared in this mutation.
func (m *EvidenceMutation) BlobPathCleared() bool {
	_, ok := m.clearedFields[evidence.FieldBlobPath]
	return ok
}

// ResetBlobPath resets all changes to the "blob_path" field.
func (m *EvidenceMutation) ResetBlobPath() {
	m.blob_path = nil
	delete(m.clearedFields, evidence.FieldBlobPath)
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (m *EvidenceMutation) SetBlobSizeBytes(i int64) {
	m.blob_size_bytes = &i
	m.addblob_size_bytes = nil
}

// BlobSizeBytes returns the value of the "blob_size_bytes" field in the mutation.
func (m *EvidenceMutation) BlobSizeBytes() (r int64, exists bool) {
	v := m.blob_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSizeBytes returns the old "blob_size_bytes" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldBlobSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSizeBytes: %w", err)
	}
	return oldValue.BlobSizeBytes, nil
}

// AddBlobSizeBytes adds i to the "blob_size_bytes" field.
func (m *EvidenceMutation) AddBlobSizeBytes(i int64) {
	if m.addblob_size_bytes != nil {
		*m.addblob_size_bytes += i
	} else {
		m.addblob_size_bytes = &i
	}
}

// AddedBlobSizeBytes returns the value that was added to the "blob_size_bytes" field in this mutation.
func (m *EvidenceMutation) AddedBlobSizeBytes() (r int64, exists bool) {
	v := m.addblob_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlobSizeBytes resets all changes to the "blob_size_bytes" field.
func (m *EvidenceMutation) ResetBlobSizeBytes() {
	m.blob_size_bytes = nil
	m.addblob_size_bytes = nil
}

// SetFileName sets the "file_name" field.
func (m *EvidenceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *EvidenceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ClearFileName clears the value of the "file_name" field.
func (m *EvidenceMutation) ClearFileName() {
	m.file_name = nil
	m.clearedFields[evidence.FieldFileName] = struct{}{}
}

// FileNameCleared returns if the "file_name" field was cleared in this mutation.
func (m *EvidenceMutation) FileNameCleared() bool {
	_, ok := m.clearedFields[evidence.FieldFileName]
	return ok
}

// ResetFileName resets all changes to the "file_name" field.
func (m *EvidenceMutation) ResetFileName() {
	m.file_name = nil
	delete(m.clearedFields, evidence.FieldFileName)
}

// SetContentType sets the "content_type" field.
func (m *EvidenceMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *EvidenceMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *EvidenceMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[evidence.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *EvidenceMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[evidence.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *EvidenceMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, evidence.FieldContentType)
}

// SetNotes sets the "notes" field.
func (m *EvidenceMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EvidenceMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EvidenceMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[evidence.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EvidenceMutation) NotesCleared() bool {
	_, ok := m.clearedFields[evidence.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EvidenceMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, evidence.FieldNotes)
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evidence.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, evidence.FieldSourcePackageID)
	}
	if m.person_id != nil {
		fields = append(fields, evidence.FieldPersonID)
	}
	if m.evidence_type_code != nil {
		fields = append(fields, evidence.FieldEvidenceTypeCode)
	}
	if m.document_number != nil {
		fields = append(fields, evidence.FieldDocumentNumber)
	}
	if m.issued_date != nil {
		fields = append(fields, evidence.FieldIssuedDate)
	}
	if m.issuing_authority != nil {
		fields = append(fields, evidence.FieldIssuingAuthority)
	}
	if m.blob_sha256 != nil {
		fields = append(fields, evidence.FieldBlobSha256)
	}
	if m.blob_path != nil {
		fields = append(fields, evidence.FieldBlobPath)
	}
	if m.blob_size_bytes != nil {
		fields = append(fields, evidence.FieldBlobSizeBytes)
	}
	if m.file_name != nil {
		fields = append(fields, evidence.FieldFileName)
	}
	if m.content_type != nil {
		fields = append(fields, evidence.FieldContentType)
	}
	if m.notes != nil {
		fields = append(fields, evidence.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	case evidence.FieldUpdatedAt:
		return m.UpdatedAt()
	case evidence.FieldSourcePackageID:
		return m.SourcePackageID()
	case evidence.FieldPersonID:
		return m.PersonID()
	case evidence.FieldEvidenceTypeCode:
		return m.EvidenceTypeCode()
	case evidence.FieldDocumentNumber:
		return m.DocumentNumber()
	case evidence.FieldIssuedDate:
		return m.IssuedDate()
	case evidence.FieldIssuingAuthority:
		return m.IssuingAuthority()
	case evidence.FieldBlobSha256:
		return m.BlobSha256()
	case evidence.FieldBlobPath:
		return m.BlobPath()
	case evidence.FieldBlobSizeBytes:
		return m.BlobSizeBytes()
	case evidence.FieldFileName:
		return m.FileName()
	case evidence.FieldContentType:
		return m.ContentType()
	case evidence.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evidence.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case evidence.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case evidence.FieldPersonID:
		return m.OldPersonID(ctx)
	case evidence.FieldEvidenceTypeCode:
		return m.OldEvidenceTypeCode(ctx)
	case evidence.FieldDocumentNumber:
		return m.OldDocumentNumber(ctx)
	case evidence.FieldIssuedDate:
		return m.OldIssuedDate(ctx)
	case evidence.FieldIssuingAuthority:
		return m.OldIssuingAuthority(ctx)
	case evidence.FieldBlobSha256:
		return m.OldBlobSha256(ctx)
	case evidence.FieldBlobPath:
		return m.OldBlobPath(ctx)
	case evidence.FieldBlobSizeBytes:
		return m.OldBlobSizeBytes(ctx)
	case evidence.FieldFileName:
		return m.OldFileName(ctx)
	case evidence.FieldContentType:
		return m.OldContentType(ctx)
	case evidence.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evidence.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case evidence.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case evidence.FieldPersonID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	case evidence.FieldEvidenceTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceTypeCode(v)
		return nil
	case evidence.FieldDocumentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentNumber(v)
		return nil
	case evidence.FieldIssuedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedDate(v)
		return nil
	case evidence.FieldIssuingAuthority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuingAuthority(v)
		return nil
	case evidence.FieldBlobSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSha256(v)
		return nil
	case evidence.FieldBlobPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobPath(v)
		return nil
	case evidence.FieldBlobSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSizeBytes(v)
		return nil
	case evidence.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case evidence.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case evidence.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addblob_size_bytes != nil {
		fields = append(fields, evidence.FieldBlobSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldBlobSizeBytes:
		return m.AddedBlobSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldBlobSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlobSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldSourcePackageID) {
		fields = append(fields, evidence.FieldSourcePackageID)
	}
	if m.FieldCleared(evidence.FieldDocumentNumber) {
		fields = append(fields, evidence.FieldDocumentNumber)
	}
	if m.FieldCleared(evidence.FieldIssuedDate) {
		fields = append(fields, evidence.FieldIssuedDate)
	}
	if m.FieldCleared(evidence.FieldIssuingAuthority) {
		fields = append(fields, evidence.FieldIssuingAuthority)
	}
	if m.FieldCleared(evidence.FieldBlobSha256) {
		fields = append(fields, evidence.FieldBlobSha256)
	}
	if m.FieldCleared(evidence.FieldBlobPath) {
		fields = append(fields, evidence.FieldBlobPath)
	}
	if m.FieldCleared(evidence.FieldFileName) {
		fields = append(fields, evidence.FieldFileName)
	}
	if m.FieldCleared(evidence.FieldContentType) {
		fields = append(fields, evidence.FieldContentType)
	}
	if m.FieldCleared(evidence.FieldNotes) {
		fields = append(fields, evidence.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case evidence.FieldDocumentNumber:
		m.ClearDocumentNumber()
		return nil
	case evidence.FieldIssuedDate:
		m.ClearIssuedDate()
		return nil
	case evidence.FieldIssuingAuthority:
		m.ClearIssuingAuthority()
		return nil
	case evidence.FieldBlobSha256:
		m.ClearBlobSha256()
		return nil
	case evidence.FieldBlobPath:
		m.ClearBlobPath()
		return nil
	case evidence.FieldFileName:
		m.ClearFileName()
		return nil
	case evidence.FieldContentType:
		m.ClearContentType()
		return nil
	case evidence.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evidence.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case evidence.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case evidence.FieldPersonID:
		m.ResetPersonID()
		return nil
	case evidence.FieldEvidenceTypeCode:
		m.ResetEvidenceTypeCode()
		return nil
	case evidence.FieldDocumentNumber:
		m.ResetDocumentNumber()
		return nil
	case evidence.FieldIssuedDate:
		m.ResetIssuedDate()
		return nil
	case evidence.FieldIssuingAuthority:
		m.ResetIssuingAuthority()
		return nil
	case evidence.FieldBlobSha256:
		m.ResetBlobSha256()
		return nil
	case evidence.FieldBlobPath:
		m.ResetBlobPath()
		return nil
	case evidence.FieldBlobSizeBytes:
		m.ResetBlobSizeBytes()
		return nil
	case evidence.FieldFileName:
		m.ResetFileName()
		return nil
	case evidence.FieldContentType:
		m.ResetContentType()
		return nil
	case evidence.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// HouseholdMutation represents an operation that mutates the Household nodes in the graph.
type HouseholdMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	created_at                      *time.Time
	updated_at                      *time.Time
	source_package_id               *uuid.UUID
	head_of_household_id            *uuid.UUID
	household_size                  *int
	addhousehold_size               *int
	males_under_18                  *int
	addmales_under_18               *int
	females_under_18                *int
	addfemales_under_18             *int
	males_adult                     *int
	addmales_adult                  *int
	females_adult                   *int
	addfemales_adult                *int
	residency_status_code           *string
	displacement_origin_governorate *string
	clearedFields                   map[string]struct{}
	done                            bool
	oldValue                        func(context.Context) (*Household, error)
	predicates                      []predicate.Household
}

var _ ent.Mutation = (*HouseholdMutation)(nil)

// householdOption allows management of the mutation configuration using functional options.
type householdOption func(*HouseholdMutation)

// newHouseholdMutation creates new mutation for the Household entity.
func newHouseholdMutation(c config, op Op, opts ...householdOption) *HouseholdMutation {
	m := &HouseholdMutation{
		config:        c,
		op:            op,
		typ:           TypeHousehold,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHouseholdID sets the ID field of the mutation.
func withHouseholdID(id uuid.UUID) householdOption {
	return func(m *HouseholdMutation) {
		var (
			err   error
			once  sync.Once
			value *Household
		)
		m.oldValue = func(ctx context.Context) (*Household, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Household.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHousehold sets the old Household of the mutation.
func withHousehold(node *Household) householdOption {
	return func(m *HouseholdMutation) {
		m.oldValue = func(context.Context) (*Household, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HouseholdMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HouseholdMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Household entities.
func (m *HouseholdMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HouseholdMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HouseholdMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Household.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HouseholdMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HouseholdMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HouseholdMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HouseholdMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HouseholdMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HouseholdMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *HouseholdMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *HouseholdMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *HouseholdMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[household.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *HouseholdMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[household.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *HouseholdMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, household.FieldSourcePackageID)
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (m *HouseholdMutation) SetHeadOfHouseholdID(u uuid.UUID) {
	m.head_of_household_id = &u
}

// HeadOfHouseholdID returns the value of the "head_of_household_id" field in the mutation.
func (m *HouseholdMutation) HeadOfHouseholdID() (r uuid.UUID, exists bool) {
	v := m.head_of_household_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadOfHouseholdID returns the old "head_of_household_id" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldHeadOfHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadOfHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadOfHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadOfHouseholdID: %w", err)
	}
	return oldValue.HeadOfHouseholdID, nil
}

// ResetHeadOfHouseholdID resets all changes to the "head_of_household_id" field.
func (m *HouseholdMutation) ResetHeadOfHouseholdID() {
	m.head_of_household_id = nil
}

// SetHouseholdSize sets the "household_size" field.
func (m *HouseholdMutation) SetHouseholdSize(i int) {
	m.household_size = &i
	m.addhousehold_size = nil
}

// HouseholdSize returns the value of the "household_size" field in the mutation.
func (m *HouseholdMutation) HouseholdSize() (r int, exists bool) {
	v := m.household_size
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdSize returns the old "household_size" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldHouseholdSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdSize: %w", err)
	}
	return oldValue.HouseholdSize, nil
}

// AddHouseholdSize adds i to the "household_size" field.
func (m *HouseholdMutation) AddHouseholdSize(i int) {
	if m.addhousehold_size != nil {
		*m.addhousehold_size += i
	} else {
		m.addhousehold_size = &i
	}
}

// AddedHouseholdSize returns the value that was added to the "household_size" field in this mutation.
func (m *HouseholdMutation) AddedHouseholdSize() (r int, exists bool) {
	v := m.addhousehold_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetHouseholdSize resets all changes to the "household_size" field.
func (m *HouseholdMutation) ResetHouseholdSize() {
	m.household_size = nil
	m.addhousehold_size = nil
}

// SetMalesUnder18 sets the "males_under_18" field.
func (m *HouseholdMutation) SetMalesUnder18(i int) {
	m.males_under_18 = &i
	m.addmales_under_18 = nil
}

// MalesUnder18 returns the value of the "males_under_18" field in the mutation.
func (m *HouseholdMutation) MalesUnder18() (r int, exists bool) {
	v := m.males_under_18
	if v == nil {
		return
	}
	return *v, true
}

// OldMalesUnder18 returns the old "males_under_18" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldMalesUnder18(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMalesUnder18 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMalesUnder18 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMalesUnder18: %w", err)
	}
	return oldValue.MalesUnder18, nil
}

// AddMalesUnder18 adds i to the "males_under_18" field.
func (m *HouseholdMutation) AddMalesUnder18(i int) {
	if m.addmales_under_18 != nil {
		*m.addmales_under_18 += i
	} else {
		m.addmales_under_18 = &i
	}
}

// AddedMalesUnder18 returns the value that was added to the "males_under_18" field in this mutation.
func (m *HouseholdMutation) AddedMalesUnder18() (r int, exists bool) {
	v := m.addmales_under_18
	if v == nil {
		return
	}
	return *v, true
}

// ResetMalesUnder18 resets all changes to the "males_under_18" field.
func (m *HouseholdMutation) ResetMalesUnder18() {
	m.males_under_18 = nil
	m.addmales_under_18 = nil
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (m *HouseholdMutation) SetFemalesUnder18(i int) {
	m.females_under_18 = &i
	m.addfemales_under_18 = nil
}

// FemalesUnder18 returns the value of the "females_under_18" field in the mutation.
func (m *HouseholdMutation) FemalesUnder18() (r int, exists bool) {
	v := m.females_under_18
	if v == nil {
		return
	}
	return *v, true
}

// OldFemalesUnder18 returns the old "females_under_18" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldFemalesUnder18(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFemalesUnder18 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFemalesUnder18 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFemalesUnder18: %w", err)
	}
	return oldValue.FemalesUnder18, nil
}

// AddFemalesUnder18 adds i to the "females_under_18" field.
func (m *HouseholdMutation) AddFemalesUnder18(i int) {
	if m.addfemales_under_18 != nil {
		*m.addfemales_under_18 += i
	} else {
		m.addfemales_under_18 = &i
	}
}

// AddedFemalesUnder18 returns the value that was added to the "females_under_18" field in this mutation.
func (m *HouseholdMutation) AddedFemalesUnder18() (r int, exists bool) {
	v := m.addfemales_under_18
	if v == nil {
		return
	}
	return *v, true
}

// ResetFemalesUnder18 resets all changes to the "females_under_18" field.
func (m *HouseholdMutation) ResetFemalesUnder18() {
	m.females_under_18 = nil
	m.addfemales_under_18 = nil
}

// SetMalesAdult sets the "males_adult" field.
func (m *HouseholdMutation) SetMalesAdult(i int) {
	m.males_adult = &i
	m.addmales_adult = nil
}

// MalesAdult returns the value of the "males_adult" field in the mutation.
func (m *HouseholdMutation) MalesAdult() (r int, exists bool) {
	v := m.males_adult
	if v == nil {
		return
	}
	return *v, true
}

// OldMalesAdult returns the old "males_adult" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldMalesAdult(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMalesAdult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMalesAdult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMalesAdult: %w", err)
	}
	return oldValue.MalesAdult, nil
}

// AddMalesAdult adds i to the "males_adult" field.
func (m *HouseholdMutation) AddMalesAdult(i int) {
	if m.addmales_adult != nil {
		*m.addmales_adult += i
	} else {
		m.addmales_adult = &i
	}
}

// AddedMalesAdult returns the value that was added to the "males_adult" field in this mutation.
func (m *HouseholdMutation) AddedMalesAdult() (r int, exists bool) {
	v := m.addmales_adult
	if v == nil {
		return
	}
	return *v, true
}

// ResetMalesAdult resets all changes to the "males_adult" field.
func (m *HouseholdMutation) ResetMalesAdult() {
	m.males_adult = nil
	m.addmales_adult = nil
}

// SetFemalesAdult sets the "females_adult" field.
func (m *HouseholdMutation) SetFemalesAdult(i int) {
	m.females_adult = &i
	m.addfemales_adult = nil
}

// FemalesAdult returns the value of the "females_adult" field in the mutation.
func (m *HouseholdMutation) FemalesAdult() (r int, exists bool) {
	v := m.females_adult
	if v == nil {
		return
	}
	return *v, true
}

// OldFemalesAdult returns the old "females_adult" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldFemalesAdult(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFemalesAdult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFemalesAdult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFemalesAdult: %w", err)
	}
	return oldValue.FemalesAdult, nil
}

// AddFemalesAdult adds i to the "females_adult" field.
func (m *HouseholdMutation) AddFemalesAdult(i int) {
	if m.addfemales_adult != nil {
		*m.addfemales_adult += i
	} else {
		m.addfemales_adult = &i
	}
}

// AddedFemalesAdult returns the value that was added to the "females_adult" field in this mutation.
func (m *HouseholdMutation) AddedFemalesAdult() (r int, exists bool) {
	v := m.addfemales_adult
	if v == nil {
		return
	}
	return *v, true
}

// ResetFemalesAdult resets all changes to the "females_adult" field.
func (m *HouseholdMutation) ResetFemalesAdult() {
	m.females_adult = nil
	m.addfemales_adult = nil
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (m *HouseholdMutation) SetResidencyStatusCode(s string) {
	m.residency_status_code = &s
}

// ResidencyStatusCode returns the value of the "residency_status_code" field in the mutation.
func (m *HouseholdMutation) ResidencyStatusCode() (r string, exists bool) {
	v := m.residency_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldResidencyStatusCode returns the old "residency_status_code" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldResidencyStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResidencyStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResidencyStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResidencyStatusCode: %w", err)
	}
	return oldValue.ResidencyStatusCode, nil
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (m *HouseholdMutation) ClearResidencyStatusCode() {
	m.residency_status_code = nil
	m.clearedFields[household.FieldResidencyStatusCode] = struct{}{}
}

// ResidencyStatusCodeCleared returns if the "residency_status_code" field was cleared in this mutation.
func (m *HouseholdMutation) ResidencyStatusCodeCleared() bool {
	_, ok := m.clearedFields[household.FieldResidencyStatusCode]
	return ok
}

// ResetResidencyStatusCode resets all changes to the "residency_status_code" field.
func (m *HouseholdMutation) ResetResidencyStatusCode() {
	m.residency_status_code = nil
	delete(m.clearedFields, household.FieldResidencyStatusCode)
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (m *HouseholdMutation) SetDisplacementOriginGovernorate(s string) {
	m.displacement_origin_governorate = &s
}

// DisplacementOriginGovernorate returns the value of the "displacement_origin_governorate" field in the mutation.
func (m *HouseholdMutation) DisplacementOriginGovernorate() (r string, exists bool) {
	v := m.displacement_origin_governorate
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplacementOriginGovernorate returns the old "displacement_origin_governorate" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldDisplacementOriginGovernorate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplacementOriginGovernorate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplacementOriginGovernorate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplacementOriginGovernorate: %w", err)
	}
	return oldValue.DisplacementOriginGovernorate, nil
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (m *HouseholdMutation) ClearDisplacementOriginGovernorate() {
	m.displacement_origin_governorate = nil
	m.clearedFields[household.FieldDisplacementOriginGovernorate] = struct{}{}
}

// DisplacementOriginGovernorateCleared returns if the "displacement_origin_governorate" field was cleared in this mutation.
func (m *HouseholdMutation) DisplacementOriginGovernorateCleared() bool {
	_, ok := m.clearedFields[household.FieldDisplacementOriginGovernorate]
	return ok
}

// ResetDisplacementOriginGovernorate resets all changes to the "displacement_origin_governorate" field.
func (m *HouseholdMutation) ResetDisplacementOriginGovernorate() {
	m.displacement_origin_governorate = nil
	delete(m.clearedFields, household.FieldDisplacementOriginGovernorate)
}

// Where appends a list predicates to the HouseholdMutation builder.
func (m *HouseholdMutation) Where(ps ...predicate.Household) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HouseholdMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HouseholdMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Household, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HouseholdMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HouseholdMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Household).
func (m *HouseholdMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HouseholdMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, household.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, household.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, household.FieldSourcePackageID)
	}
	if m.head_of_household_id != nil {
		fields = append(fields, household.FieldHeadOfHouseholdID)
	}
	if m.household_size != nil {
		fields = append(fields, household.FieldHouseholdSize)
	}
	if m.males_under_18 != nil {
		fields = append(fields, household.FieldMalesUnder18)
	}
	if m.females_under_18 != nil {
		fields = append(fields, household.FieldFemalesUnder18)
	}
	if m.males_adult != nil {
		fields = append(fields, household.FieldMalesAdult)
	}
	if m.females_adult != nil {
		fields = append(fields, household.FieldFemalesAdult)
	}
	if m.residency_status_code != nil {
		fields = append(fields, household.FieldResidencyStatusCode)
	}
	if m.displacement_origin_governorate != nil {
		fields = append(fields, household.FieldDisplacementOriginGovernorate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HouseholdMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case household.FieldCreatedAt:
		return m.CreatedAt()
	case household.FieldUpdatedAt:
		return m.UpdatedAt()
	case household.FieldSourcePackageID:
		return m.SourcePackageID()
	case household.FieldHeadOfHouseholdID:
		return m.HeadOfHouseholdID()
	case household.FieldHouseholdSize:
		return m.HouseholdSize()
	case household.FieldMalesUnder18:
		return m.MalesUnder18()
	case household.FieldFemalesUnder18:
		return m.FemalesUnder18()
	case household.FieldMalesAdult:
		return m.MalesAdult()
	case household.FieldFemalesAdult:
		return m.FemalesAdult()
	case household.FieldResidencyStatusCode:
		return m.ResidencyStatusCode()
	case household.FieldDisplacementOriginGovernorate:
		return m.DisplacementOriginGovernorate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HouseholdMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case household.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case household.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case household.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case household.FieldHeadOfHouseholdID:
		return m.OldHeadOfHouseholdID(ctx)
	case household.FieldHouseholdSize:
		return m.OldHouseholdSize(ctx)
	case household.FieldMalesUnder18:
		return m.OldMalesUnder18(ctx)
	case household.FieldFemalesUnder18:
		return m.OldFemalesUnder18(ctx)
	case household.FieldMalesAdult:
		return m.OldMalesAdult(ctx)
	case household.FieldFemalesAdult:
		return m.OldFemalesAdult(ctx)
	case household.FieldResidencyStatusCode:
		return m.OldResidencyStatusCode(ctx)
	case household.FieldDisplacementOriginGovernorate:
		return m.OldDisplacementOriginGovernorate(ctx)
	}
	return nil, fmt.Errorf("unknown Household field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) SetField(name string, value ent.Value) error {
	switch name {
	case household.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case household.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case household.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case household.FieldHeadOfHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadOfHouseholdID(v)
		return nil
	case household.FieldHouseholdSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdSize(v)
		return nil
	case household.FieldMalesUnder18:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMalesUnder18(v)
		return nil
	case household.FieldFemalesUnder18:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFemalesUnder18(v)
		return nil
	case household.FieldMalesAdult:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMalesAdult(v)
		return nil
	case household.FieldFemalesAdult:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFemalesAdult(v)
		return nil
	case household.FieldResidencyStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResidencyStatusCode(v)
		return nil
	case household.FieldDisplacementOriginGovernorate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplacementOriginGovernorate(v)
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HouseholdMutation) AddedFields() []string {
	var fields []string
	if m.addhousehold_size != nil {
		fields = append(fields, household.FieldHouseholdSize)
	}
	if m.addmales_under_18 != nil {
		fields = append(fields, household.FieldMalesUnder18)
	}
	if m.addfemales_under_18 != nil {
		fields = append(fields, household.FieldFemalesUnder18)
	}
	if m.addmales_adult != nil {
		fields = append(fields, household.FieldMalesAdult)
	}
	if m.addfemales_adult != nil {
		fields = append(fields, household.FieldFemalesAdult)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HouseholdMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case household.FieldHouseholdSize:
		return m.AddedHouseholdSize()
	case household.FieldMalesUnder18:
		return m.AddedMalesUnder18()
	case household.FieldFemalesUnder18:
		return m.AddedFemalesUnder18()
	case household.FieldMalesAdult:
		return m.AddedMalesAdult()
	case household.FieldFemalesAdult:
		return m.AddedFemalesAdult()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) AddField(name string, value ent.Value) error {
	switch name {
	case household.FieldHouseholdSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHouseholdSize(v)
		return nil
	case household.FieldMalesUnder18:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMalesUnder18(v)
		return nil
	case household.FieldFemalesUnder18:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFemalesUnder18(v)
		return nil
	case household.FieldMalesAdult:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMalesAdult(v)
		return nil
	case household.FieldFemalesAdult:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFemalesAdult(v)
		return nil
	}
	return fmt.Errorf("unknown Household numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HouseholdMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(household.FieldSourcePackageID) {
		fields = append(fields, household.FieldSourcePackageID)
	}
	if m.FieldCleared(household.FieldResidencyStatusCode) {
		fields = append(fields, household.FieldResidencyStatusCode)
	}
	if m.FieldCleared(household.FieldDisplacementOriginGovernorate) {
		fields = append(fields, household.FieldDisplacementOriginGovernorate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HouseholdMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HouseholdMutation) ClearField(name string) error {
	switch name {
	case household.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case household.FieldResidencyStatusCode:
		m.ClearResidencyStatusCode()
		return nil
	case household.FieldDisplacementOriginGovernorate:
		m.ClearDisplacementOriginGovernorate()
		return nil
	}
	return fmt.Errorf("unknown Household nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HouseholdMutation) ResetField(name string) error {
	switch name {
	case household.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case household.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case household.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case household.FieldHeadOfHouseholdID:
		m.ResetHeadOfHouseholdID()
		return nil
	case household.FieldHouseholdSize:
		m.ResetHouseholdSize()
		return nil
	case household.FieldMalesUnder18:
		m.ResetMalesUnder18()
		return nil
	case household.FieldFemalesUnder18:
		m.ResetFemalesUnder18()
		return nil
	case household.FieldMalesAdult:
		m.ResetMalesAdult()
		return nil
	case household.FieldFemalesAdult:
		m.ResetFemalesAdult()
		return nil
	case household.FieldResidencyStatusCode:
		m.ResetResidencyStatusCode()
		return nil
	case household.FieldDisplacementOriginGovernorate:
		m.ResetDisplacementOriginGovernorate()
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HouseholdMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HouseholdMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HouseholdMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HouseholdMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HouseholdMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HouseholdMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HouseholdMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Household unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HouseholdMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Household edge %s", name)
}

// IdentifierSequenceMutation represents an operation that mutates the IdentifierSequence nodes in the graph.
type IdentifierSequenceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	next_value    *int64
	addnext_value *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IdentifierSequence, error)
	predicates    []predicate.IdentifierSequence
}

var _ ent.Mutation = (*IdentifierSequenceMutation)(nil)

// identifiersequenceOption allows management of the mutation configuration using functional options.
type identifiersequenceOption func(*IdentifierSequenceMutation)

// newIdentifierSequenceMutation creates new mutation for the IdentifierSequence entity.
func newIdentifierSequenceMutation(c config, op Op, opts ...identifiersequenceOption) *IdentifierSequenceMutation {
	m := &IdentifierSequenceMutation{
		config:        c,
		op:            op,
		typ:           TypeIdentifierSequence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdentifierSequenceID sets the ID field of the mutation.
func withIdentifierSequenceID(id string) identifiersequenceOption {
	return func(m *IdentifierSequenceMutation) {
		var (
			err   error
			once  sync.Once
			value *IdentifierSequence
		)
		m.oldValue = func(ctx context.Context) (*IdentifierSequence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdentifierSequence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdentifierSequence sets the old IdentifierSequence of the mutation.
func withIdentifierSequence(node *IdentifierSequence) identifiersequenceOption {
	return func(m *IdentifierSequenceMutation) {
		m.oldValue = func(context.Context) (*IdentifierSequence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdentifierSequenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdentifierSequenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IdentifierSequence entities.
func (m *IdentifierSequenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdentifierSequenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdentifierSequenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdentifierSequence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *IdentifierSequenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdentifierSequenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdentifierSequence entity.
// If the IdentifierSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentifierSequenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdentifierSequenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IdentifierSequenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IdentifierSequenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IdentifierSequence entity.
// If the IdentifierSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentifierSequenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IdentifierSequenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNextValue sets the "next_value" field.
func (m *IdentifierSequenceMutation) SetNextValue(i int64) {
	m.next_value = &i
	m.addnext_value = nil
}

// NextValue returns the value of the "next_value" field in the mutation.
func (m *IdentifierSequenceMutation) NextValue() (r int64, exists bool) {
	v := m.next_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNextValue returns the old "next_value" field's value of the IdentifierSequence entity.
// If the IdentifierSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentifierSequenceMutation) OldNextValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextValue: %w", err)
	}
	return oldValue.NextValue, nil
}

// AddNextValue adds i to the "next_value" field.
func (m *IdentifierSequenceMutation) AddNextValue(i int64) {
	if m.addnext_value != nil {
		*m.addnext_value += i
	} else {
		m.addnext_value = &i
	}
}

// AddedNextValue returns the value that was added to the "next_value" field in this mutation.
func (m *IdentifierSequenceMutation) AddedNextValue() (r int64, exists bool) {
	v := m.addnext_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextValue resets all changes to the "next_value" field.
func (m *IdentifierSequenceMutation) ResetNextValue() {
	m.next_value = nil
	m.addnext_value = nil
}

// Where appends a list predicates to the IdentifierSequenceMutation builder.
func (m *IdentifierSequenceMutation) Where(ps ...predicate.IdentifierSequence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdentifierSequenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdentifierSequenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdentifierSequence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdentifierSequenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdentifierSequenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdentifierSequence).
func (m *IdentifierSequenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdentifierSequenceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, identifiersequence.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, identifiersequence.FieldUpdatedAt)
	}
	if m.next_value != nil {
		fields = append(fields, identifiersequence.FieldNextValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdentifierSequenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case identifiersequence.FieldCreatedAt:
		return m.CreatedAt()
	case identifiersequence.FieldUpdatedAt:
		return m.UpdatedAt()
	case identifiersequence.FieldNextValue:
		return m.NextValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdentifierSequenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case identifiersequence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case identifiersequence.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case identifiersequence.FieldNextValue:
		return m.OldNextValue(ctx)
	}
	return nil, fmt.Errorf("unknown IdentifierSequence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentifierSequenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case identifiersequence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case identifiersequence.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case identifiersequence.FieldNextValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextValue(v)
		return nil
	}
	return fmt.Errorf("unknown IdentifierSequence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdentifierSequenceMutation) AddedFields() []string {
	var fields []string
	if m.addnext_value != nil {
		fields = append(fields, identifiersequence.FieldNextValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdentifierSequenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case identifiersequence.FieldNextValue:
		return m.AddedNextValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentifierSequenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case identifiersequence.FieldNextValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextValue(v)
		return nil
	}
	return fmt.Errorf("unknown IdentifierSequence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdentifierSequenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdentifierSequenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdentifierSequenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IdentifierSequence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdentifierSequenceMutation) ResetField(name string) error {
	switch name {
	case identifiersequence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case identifiersequence.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case identifiersequence.FieldNextValue:
		m.ResetNextValue()
		return nil
	}
	return fmt.Errorf("unknown IdentifierSequence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdentifierSequenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdentifierSequenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdentifierSequenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdentifierSequenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdentifierSequenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdentifierSequenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdentifierSequenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdentifierSequence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdentifierSequenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdentifierSequence edge %s", name)
}

// ImportPackageMutation represents an operation that mutates the ImportPackage nodes in the graph.
type ImportPackageMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	created_at                     *time.Time
	updated_at                     *time.Time
	package_number                 *string
	status                         *importpackage.Status
	import_method                  *importpackage.ImportMethod
	file_name                      *string
	file_size_bytes                *int64
	addfile_size_bytes             *int64
	schema_version                 *string
	manifest_created_utc           *time.Time
	exported_date_utc              *time.Time
	exported_by_user_id            *string
	device_id                      *string
	total_record_count             *int
	addtotal_record_count          *int
	entity_counts                  *map[domain.EntityType]int
	total_attachment_size_bytes    *int64
	addtotal_attachment_size_bytes *int64
	vocabulary_versions            *map[string]string
	expected_checksum              *string
	computed_checksum              *string
	signature_status               *importpackage.SignatureStatus
	receive_warnings               *[]string
	appendreceive_warnings         []string
	storage_path                   *string
	is_archived                    *bool
	archive_path                   *string
	archived_date                  *time.Time
	validation_summary             **domain.ValidationSummary
	conflict_count                 *int
	addconflict_count              *int
	unresolved_conflict_count      *int
	addunresolved_conflict_count   *int
	committed_date                 *time.Time
	commit_report                  **domain.CommitReport
	quarantined_reason             *string
	cancelled_reason               *string
	cancelled_by                   *string
	cancelled_at                   *time.Time
	received_by                    *string
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*ImportPackage, error)
	predicates                     []predicate.ImportPackage
}

var _ ent.Mutation = (*ImportPackageMutation)(nil)

// importpackageOption allows management of the mutation configuration using functional options.
type importpackageOption func(*ImportPackageMutation)

// newImportPackageMutation creates new mutation for the ImportPackage entity.
func newImportPackageMutation(c config, op Op, opts ...importpackageOption) *ImportPackageMutation {
	m := &ImportPackageMutation{
		config:        c,
		op:            op,
		typ:           TypeImportPackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportPackageID sets the ID field of the mutation.
func withImportPackageID(id uuid.UUID) importpackageOption {
	return func(m *ImportPackageMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportPackage
		)
		m.oldValue = func(ctx context.Context) (*ImportPackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportPackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportPackage sets the old ImportPackage of the mutation.
func withImportPackage(node *ImportPackage) importpackageOption {
	return func(m *ImportPackageMutation) {
		m.oldValue = func(context.Context) (*ImportPackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportPackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportPackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportPackage entities.
func (m *ImportPackageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportPackageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportPackageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportPackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ImportPackageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImportPackageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImportPackageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImportPackageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImportPackageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImportPackageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPackageNumber sets the "package_number" field.
func (m *ImportPackageMutation) SetPackageNumber(s string) {
	m.package_number = &s
}

// PackageNumber returns the value of the "package_number" field in the mutation.
func (m *ImportPackageMutation) PackageNumber() (r string, exists bool) {
	v := m.package_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageNumber returns the old "package_number" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldPackageNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageNumber: %w", err)
	}
	return oldValue.PackageNumber, nil
}

// ResetPackageNumber resets all changes to the "package_number" field.
func (m *ImportPackageMutation) ResetPackageNumber() {
	m.package_number = nil
}

// SetStatus sets the "status" field.
func (m *ImportPackageMutation) SetStatus(i importpackage.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportPackageMutation) Status() (r importpackage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldStatus(ctx context.Context) (v importpackage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportPackageMutation) ResetStatus() {
	m.status = nil
}

// SetImportMethod sets the "import_method" field.
func (m *ImportPackageMutation) SetImportMethod(im importpackage.ImportMethod) {
	m.import_method = &im
}

// ImportMethod returns the value of the "import_method" field in the mutation.
func (m *ImportPackageMutation) ImportMethod() (r importpackage.ImportMethod, exists bool) {
	v := m.import_method
	if v == nil {
		return
	}
	return *v, true
}

// OldImportMethod returns the old "import_method" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldImportMethod(ctx context.Context) (v importpackage.ImportMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportMethod: %w", err)
	}
	return oldValue.ImportMethod, nil
}

// ResetImportMethod resets all changes to the "import_method" field.
func (m *ImportPackageMutation) ResetImportMethod() {
	m.import_method = nil
}

// SetFileName sets the "file_name" field.
func (m *ImportPackageMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ImportPackageMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ImportPackageMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *ImportPackageMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *ImportPackageMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldFileSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *ImportPackageMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *ImportPackageMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *ImportPackageMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *ImportPackageMutation) SetSchemaVersion(s string) {
	m.schema_version = &s
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *ImportPackageMutation) SchemaVersion() (r string, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldSchemaVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *ImportPackageMutation) ResetSchemaVersion() {
	m.schema_version = nil
}

// SetManifestCreatedUtc sets the "manifest_created_utc" field.
func (m *ImportPackageMutation) SetManifestCreatedUtc(t time.Time) {
	m.manifest_created_utc = &t
}

// ManifestCreatedUtc returns the value of the "manifest_created_utc" field in the mutation.
func (m *ImportPackageMutation) ManifestCreatedUtc() (r time.Time, exists bool) {
	v := m.manifest_created_utc
	if v == nil {
		return
	}
	return *v, true
}

// OldManifestCreatedUtc returns the old "manifest_created_utc" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldManifestCreatedUtc(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifestCreatedUtc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifestCreatedUtc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifestCreatedUtc: %w", err)
	}
	return oldValue.ManifestCreatedUtc, nil
}

// ResetManifestCreatedUtc resets all changes to the "manifest_created_utc" field.
func (m *ImportPackageMutation) ResetManifestCreatedUtc() {
	m.manifest_created_utc = nil
}

// SetExportedDateUtc sets the "exported_date_utc" field.
func (m *ImportPackageMutation) SetExportedDateUtc(t time.Time) {
	m.exported_date_utc = &t
}

// ExportedDateUtc returns the value of the "exported_date_utc" field in the mutation.
func (m *ImportPackageMutation) ExportedDateUtc() (r time.Time, exists bool) {
	v := m.exported_date_utc
	if v == nil {
		return
	}
	return *v, true
}

// OldExportedDateUtc returns the old "exported_date_utc" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldExportedDateUtc(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExportedDateUtc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExportedDateUtc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExportedDateUtc: %w", err)
	}
	return oldValue.ExportedDateUtc, nil
}

// ResetExportedDateUtc resets all changes to the "exported_date_utc" field.
func (m *ImportPackageMutation) ResetExportedDateUtc() {
	m.exported_date_utc = nil
}

// SetExportedByUserID sets the "exported_by_user_id" field.
func (m *ImportPackageMutation) SetExportedByUserID(s string) {
	m.exported_by_user_id = &s
}

// ExportedByUserID returns the value of the "exported_by_user_id" field in the mutation.
func (m *ImportPackageMutation) ExportedByUserID() (r string, exists bool) {
	v := m.exported_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExportedByUserID returns the old "exported_by_user_id" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldExportedByUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExportedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExportedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExportedByUserID: %w", err)
	}
	return oldValue.ExportedByUserID, nil
}

// ClearExportedByUserID clears the value of the "exported_by_user_id" field.
func (m *ImportPackageMutation) ClearExportedByUserID() {
	m.exported_by_user_id = nil
	m.clearedFields[importpackage.FieldExportedByUserID] = struct{}{}
}

// ExportedByUserIDCleared returns if the "exported_by_user_id" field was cleared in this mutation.
func (m *ImportPackageMutation) ExportedByUserIDCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldExportedByUserID]
	return ok
}

// ResetExportedByUserID resets all changes to the "exported_by_user_id" field.
func (m *ImportPackageMutation) ResetExportedByUserID() {
	m.exported_by_user_id = nil
	delete(m.clearedFields, importpackage.FieldExportedByUserID)
}

// SetDeviceID sets the "device_id" field.
func (m *ImportPackageMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *ImportPackageMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *ImportPackageMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetTotalRecordCount sets the "total_record_count" field.
func (m *ImportPackageMutation) SetTotalRecordCount(i int) {
	m.total_record_count = &i
	m.addtotal_record_count = nil
}

// TotalRecordCount returns the value of the "total_record_count" field in the mutation.
func (m *ImportPackageMutation) TotalRecordCount() (r int, exists bool) {
	v := m.total_record_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecordCount returns the old "total_record_count" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldTotalRecordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecordCount: %w", err)
	}
	return oldValue.TotalRecordCount, nil
}

// AddTotalRecordCount adds i to the "total_record_count" field.
func (m *ImportPackageMutation) AddTotalRecordCount(i int) {
	if m.addtotal_record_count != nil {
		*m.addtotal_record_count += i
	} else {
		m.addtotal_record_count = &i
	}
}

// AddedTotalRecordCount returns the value that was added to the "total_record_count" field in this mutation.
func (m *ImportPackageMutation) AddedTotalRecordCount() (r int, exists bool) {
	v := m.addtotal_record_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRecordCount resets all changes to the "total_record_count" field.
func (m *ImportPackageMutation) ResetTotalRecordCount() {
	m.total_record_count = nil
	m.addtotal_record_count = nil
}

// SetEntityCounts sets the "entity_counts" field.
func (m *ImportPackageMutation) SetEntityCounts(mt map[domain.EntityType]int) {
	m.entity_counts = &mt
}

// EntityCounts returns the value of the "entity_counts" field in the mutation.
func (m *ImportPackageMutation) EntityCounts() (r map[domain.EntityType]int, exists bool) {
	v := m.entity_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityCounts returns the old "entity_counts" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldEntityCounts(ctx context.Context) (v map[domain.EntityType]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityCounts: %w", err)
	}
	return oldValue.EntityCounts, nil
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (m *ImportPackageMutation) ClearEntityCounts() {
	m.entity_counts = nil
	m.clearedFields[importpackage.FieldEntityCounts] = struct{}{}
}

// EntityCountsCleared returns if the "entity_counts" field was cleared in this mutation.
func (m *ImportPackageMutation) EntityCountsCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldEntityCounts]
	return ok
}

// ResetEntityCounts resets all changes to the "entity_counts" field.
func (m *ImportPackageMutation) ResetEntityCounts() {
	m.entity_counts = nil
	delete(m.clearedFields, importpackage.FieldEntityCounts)
}

// SetTotalAttachmentSizeBytes sets the "total_attachment_size_bytes" field.
func (m *ImportPackageMutation) SetTotalAttachmentSizeBytes(i int64) {
	m.total_attachment_size_bytes = &i
	m.addtotal_attachment_size_bytes = nil
}

// TotalAttachmentSizeBytes returns the value of the "total_attachment_size_bytes" field in the mutation.
func (m *ImportPackageMutation) TotalAttachmentSizeBytes() (r int64, exists bool) {
	v := m.total_attachment_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttachmentSizeBytes returns the old "total_attachment_size_bytes" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldTotalAttachmentSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttachmentSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttachmentSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttachmentSizeBytes: %w", err)
	}
	return oldValue.TotalAttachmentSizeBytes, nil
}

// AddTotalAttachmentSizeBytes adds i to the "total_attachment_size_bytes" field.
func (m *ImportPackageMutation) AddTotalAttachmentSizeBytes(i int64) {
	if m.addtotal_attachment_size_bytes != nil {
		*m.addtotal_attachment_size_bytes += i
	} else {
		m.addtotal_attachment_size_bytes = &i
	}
}

// AddedTotalAttachmentSizeBytes returns the value that was added to the "total_attachment_size_bytes" field in this mutation.
func (m *ImportPackageMutation) AddedTotalAttachmentSizeBytes() (r int64, exists bool) {
	v := m.addtotal_attachment_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttachmentSizeBytes resets all changes to the "total_attachment_size_bytes" field.
func (m *ImportPackageMutation) ResetTotalAttachmentSizeBytes() {
	m.total_attachment_size_bytes = nil
	m.addtotal_attachment_size_bytes = nil
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (m *ImportPackageMutation) SetVocabularyVersions(value map[string]string) {
	m.vocabulary_versions = &value
}

// VocabularyVersions returns the value of the "vocabulary_versions" field in the mutation.
func (m *ImportPackageMutation) VocabularyVersions() (r map[string]string, exists bool) {
	v := m.vocabulary_versions
	if v == nil {
		return
	}
	return *v, true
}

// OldVocabularyVersions returns the old "vocabulary_versions" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldVocabularyVersions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVocabularyVersions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVocabularyVersions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVocabularyVersions: %w", err)
	}
	return oldValue.VocabularyVersions, nil
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (m *ImportPackageMutation) ClearVocabularyVersions() {
	m.vocabulary_versions = nil
	m.clearedFields[importpackage.FieldVocabularyVersions] = struct{}{}
}

// VocabularyVersionsCleared returns if the "vocabulary_versions" field was cleared in this mutation.
func (m *ImportPackageMutation) VocabularyVersionsCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldVocabularyVersions]
	return ok
}

// ResetVocabularyVersions resets all changes to the "vocabulary_versions" field.
func (m *ImportPackageMutation) ResetVocabularyVersions() {
	m.vocabulary_versions = nil
	delete(m.clearedFields, importpackage.FieldVocabularyVersions)
}

// SetExpectedChecksum sets the "expected_checksum" field.
func (m *ImportPackageMutation) SetExpectedChecksum(s string) {
	m.expected_checksum = &s
}

// ExpectedChecksum returns the value of the "expected_checksum" field in the mutation.
func (m *ImportPackageMutation) ExpectedChecksum() (r string, exists bool) {
	v := m.expected_checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedChecksum returns the old "expected_checksum" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldExpectedChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedChecksum: %w", err)
	}
	return oldValue.ExpectedChecksum, nil
}

// ClearExpectedChecksum clears the value of the "expected_checksum" field.
func (m *ImportPackageMutation) ClearExpectedChecksum() {
	m.expected_checksum = nil
	m.clearedFields[importpackage.FieldExpectedChecksum] = struct{}{}
}

// ExpectedChecksumCleared returns if the "expected_checksum" field was cleared in this mutation.
func (m *ImportPackageMutation) ExpectedChecksumCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldExpectedChecksum]
	return ok
}

// ResetExpectedChecksum resets all changes to the "expected_checksum" field.
func (m *ImportPackageMutation) ResetExpectedChecksum() {
	m.expected_checksum = nil
	delete(m.clearedFields, importpackage.FieldExpectedChecksum)
}

// SetComputedChecksum sets the "computed_checksum" field.
func (m *ImportPackageMutation) SetComputedChecksum(s string) {
	m.computed_checksum = &s
}

// ComputedChecksum returns the value of the "computed_checksum" field in the mutation.
func (m *ImportPackageMutation) ComputedChecksum() (r string, exists bool) {
	v := m.computed_checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedChecksum returns the old "computed_checksum" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldComputedChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedChecksum: %w", err)
	}
	return oldValue.ComputedChecksum, nil
}

// ClearComputedChecksum clears the value of the "computed_checksum" field.
func (m *ImportPackageMutation) ClearComputedChecksum() {
	m.computed_checksum = nil
	m.clearedFields[importpackage.FieldComputedChecksum] = struct{}{}
}

// ComputedChecksumCleared returns if the "computed_checksum" field was cleared in this mutation.
func (m *ImportPackageMutation) ComputedChecksumCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldComputedChecksum]
	return ok
}

// ResetComputedChecksum resets all changes to the "computed_checksum" field.
func (m *ImportPackageMutation) ResetComputedChecksum() {
	m.computed_checksum = nil
	delete(m.clearedFields, importpackage.FieldComputedChecksum)
}

// SetSignatureStatus sets the "signature_status" field.
func (m *ImportPackageMutation) SetSignatureStatus(is importpackage.SignatureStatus) {
	m.signature_status = &is
}

// SignatureStatus returns the value of the "signature_status" field in the mutation.
func (m *ImportPackageMutation) SignatureStatus() (r importpackage.SignatureStatus, exists bool) {
	v := m.signature_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureStatus returns the old "signature_status" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldSignatureStatus(ctx context.Context) (v importpackage.SignatureStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureStatus: %w", err)
	}
	return oldValue.SignatureStatus, nil
}

// ResetSignatureStatus resets all changes to the "signature_status" field.
func (m *ImportPackageMutation) ResetSignatureStatus() {
	m.signature_status = nil
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (m *ImportPackageMutation) SetReceiveWarnings(s []string) {
	m.receive_warnings = &s
	m.appendreceive_warnings = nil
}

// ReceiveWarnings returns the value of the "receive_warnings" field in the mutation.
func (m *ImportPackageMutation) ReceiveWarnings() (r []string, exists bool) {
	v := m.receive_warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiveWarnings returns the old "receive_warnings" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldReceiveWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiveWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiveWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiveWarnings: %w", err)
	}
	return oldValue.ReceiveWarnings, nil
}

// AppendReceiveWarnings adds s to the "receive_warnings" field.
func (m *ImportPackageMutation) AppendReceiveWarnings(s []string) {
	m.appendreceive_warnings = append(m.appendreceive_warnings, s...)
}

// AppendedReceiveWarnings returns the list of values that were appended to the "receive_warnings" field in this mutation.
func (m *ImportPackageMutation) AppendedReceiveWarnings() ([]string, bool) {
	if len(m.appendreceive_warnings) == 0 {
		return nil, false
	}
	return m.appendreceive_warnings, true
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (m *ImportPackageMutation) ClearReceiveWarnings() {
	m.receive_warnings = nil
	m.appendreceive_warnings = nil
	m.clearedFields[importpackage.FieldReceiveWarnings] = struct{}{}
}

// ReceiveWarningsCleared returns if the "receive_warnings" field was cleared in this mutation.
func (m *ImportPackageMutation) ReceiveWarningsCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldReceiveWarnings]
	return ok
}

// ResetReceiveWarnings resets all changes to the "receive_warnings" field.
func (m *ImportPackageMutation) ResetReceiveWarnings() {
	m.receive_warnings = nil
	m.appendreceive_warnings = nil
	delete(m.clearedFields, importpackage.FieldReceiveWarnings)
}

// SetStoragePath sets the "storage_path" field.
func (m *ImportPackageMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *ImportPackageMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ClearStoragePath clears the value of the "storage_path" field.
func (m *ImportPackageMutation) ClearStoragePath() {
	m.storage_path = nil
	m.clearedFields[importpackage.FieldStoragePath] = struct{}{}
}

// StoragePathCleared returns if the "storage_path" field was cleared in this mutation.
func (m *ImportPackageMutation) StoragePathCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldStoragePath]
	return ok
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *ImportPackageMutation) ResetStoragePath() {
	m.storage_path = nil
	delete(m.clearedFields, importpackage.FieldStoragePath)
}

// SetIsArchived sets the "is_archived" field.
func (m *ImportPackageMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *ImportPackageMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *ImportPackageMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivePath sets the "archive_path" field.
func (m *ImportPackageMutation) SetArchivePath(s string) {
	m.archive_path = &s
}

// ArchivePath returns the value of the "archive_path" field in the mutation.
func (m *ImportPackageMutation) ArchivePath() (r string, exists bool) {
	v := m.archive_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivePath returns the old "archive_path" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldArchivePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivePath: %w", err)
	}
	return oldValue.ArchivePath, nil
}

// ClearArchivePath clears the value of the "archive_path" field.
func (m *ImportPackageMutation) ClearArchivePath() {
	m.archive_path = nil
	m.clearedFields[importpackage.FieldArchivePath] = struct{}{}
}

// ArchivePathCleared returns if the "archive_path" field was cleared in this mutation.
func (m *ImportPackageMutation) ArchivePathCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldArchivePath]
	return ok
}

// ResetArchivePath resets all changes to the "archive_path" field.
func (m *ImportPackageMutation) ResetArchivePath() {
	m.archive_path = nil
	delete(m.clearedFields, importpackage.FieldArchivePath)
}

// SetArchivedDate sets the "archived_date" field.
func (m *ImportPackageMutation) SetArchivedDate(t time.Time) {
	m.archived_date = &t
}

// ArchivedDate returns the value of the "archived_date" field in the mutation.
func (m *ImportPackageMutation) ArchivedDate() (r time.Time, exists bool) {
	v := m.archived_date
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedDate returns the old "archived_date" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldArchivedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedDate: %w", err)
	}
	return oldValue.ArchivedDate, nil
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (m *ImportPackageMutation) ClearArchivedDate() {
	m.archived_date = nil
	m.clearedFields[importpackage.FieldArchivedDate] = struct{}{}
}

// ArchivedDateCleared returns if the "archived_date" field was cleared in this mutation.
func (m *ImportPackageMutation) ArchivedDateCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldArchivedDate]
	return ok
}

// ResetArchivedDate resets all changes to the "archived_date" field.
func (m *ImportPackageMutation) ResetArchivedDate() {
	m.archived_date = nil
	delete(m.clearedFields, importpackage.FieldArchivedDate)
}

// SetValidationSummary sets the "validation_summary" field.
func (m *ImportPackageMutation) SetValidationSummary(ds *domain.ValidationSummary) {
	m.validation_summary = &ds
}

// ValidationSummary returns the value of the "validation_summary" field in the mutation.
func (m *ImportPackageMutation) ValidationSummary() (r *domain.ValidationSummary, exists bool) {
	v := m.validation_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationSummary returns the old "validation_summary" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldValidationSummary(ctx context.Context) (v *domain.ValidationSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationSummary: %w", err)
	}
	return oldValue.ValidationSummary, nil
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (m *ImportPackageMutation) ClearValidationSummary() {
	m.validation_summary = nil
	m.clearedFields[importpackage.FieldValidationSummary] = struct{}{}
}

// ValidationSummaryCleared returns if the "validation_summary" field was cleared in this mutation.
func (m *ImportPackageMutation) ValidationSummaryCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldValidationSummary]
	return ok
}

// ResetValidationSummary resets all changes to the "validation_summary" field.
func (m *ImportPackageMutation) ResetValidationSummary() {
	m.validation_summary = nil
	delete(m.clearedFields, importpackage.FieldValidationSummary)
}

// SetConflictCount sets the "conflict_count" field.
func (m *ImportPackageMutation) SetConflictCount(i int) {
	m.conflict_count = &i
	m.addconflict_count = nil
}

// ConflictCount returns the value of the "conflict_count" field in the mutation.
func (m *ImportPackageMutation) ConflictCount() (r int, exists bool) {
	v := m.conflict_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictCount returns the old "conflict_count" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldConflictCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictCount: %w", err)
	}
	return oldValue.ConflictCount, nil
}

// AddConflictCount adds i to the "conflict_count" field.
func (m *ImportPackageMutation) AddConflictCount(i int) {
	if m.addconflict_count != nil {
		*m.addconflict_count += i
	} else {
		m.addconflict_count = &i
	}
}

// AddedConflictCount returns the value that was added to the "conflict_count" field in this mutation.
func (m *ImportPackageMutation) AddedConflictCount() (r int, exists bool) {
	v := m.addconflict_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConflictCount resets all changes to the "conflict_count" field.
func (m *ImportPackageMutation) ResetConflictCount() {
	m.conflict_count = nil
	m.addconflict_count = nil
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (m *ImportPackageMutation) SetUnresolvedConflictCount(i int) {
	m.unresolved_conflict_count = &i
	m.addunresolved_conflict_count = nil
}

// UnresolvedConflictCount returns the value of the "unresolved_conflict_count" field in the mutation.
func (m *ImportPackageMutation) UnresolvedConflictCount() (r int, exists bool) {
	v := m.unresolved_conflict_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUnresolvedConflictCount returns the old "unresolved_conflict_count" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldUnresolvedConflictCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnresolvedConflictCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnresolvedConflictCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnresolvedConflictCount: %w", err)
	}
	return oldValue.UnresolvedConflictCount, nil
}

// AddUnresolvedConflictCount adds i to the "unresolved_conflict_count" field.
func (m *ImportPackageMutation) AddUnresolvedConflictCount(i int) {
	if m.addunresolved_conflict_count != nil {
		*m.addunresolved_conflict_count += i
	} else {
		m.addunresolved_conflict_count = &i
	}
}

// AddedUnresolvedConflictCount returns the value that was added to the "unresolved_conflict_count" field in this mutation.
func (m *ImportPackageMutation) AddedUnresolvedConflictCount() (r int, exists bool) {
	v := m.addunresolved_conflict_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnresolvedConflictCount resets all changes to the "unresolved_conflict_count" field.
func (m *ImportPackageMutation) ResetUnresolvedConflictCount() {
	m.unresolved_conflict_count = nil
	m.addunresolved_conflict_count = nil
}

// SetCommittedDate sets the "committed_date" field.
func (m *ImportPackageMutation) SetCommittedDate(t time.Time) {
	m.committed_date = &t
}

// CommittedDate returns the value of the "committed_date" field in the mutation.
func (m *ImportPackageMutation) CommittedDate() (r time.Time, exists bool) {
	v := m.committed_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedDate returns the old "committed_date" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCommittedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedDate: %w", err)
	}
	return oldValue.CommittedDate, nil
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (m *ImportPackageMutation) ClearCommittedDate() {
	m.committed_date = nil
	m.clearedFields[importpackage.FieldCommittedDate] = struct{}{}
}

// CommittedDateCleared returns if the "committed_date" field was cleared in this mutation.
func (m *ImportPackageMutation) CommittedDateCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldCommittedDate]
	return ok
}

// ResetCommittedDate resets all changes to the "committed_date" field.
func (m *ImportPackageMutation) ResetCommittedDate() {
	m.committed_date = nil
	delete(m.clearedFields, importpackage.FieldCommittedDate)
}

// SetCommitReport sets the "commit_report" field.
func (m *ImportPackageMutation) SetCommitReport(dr *domain.CommitReport) {
	m.commit_report = &dr
}

// CommitReport returns the value of the "commit_report" field in the mutation.
func (m *ImportPackageMutation) CommitReport() (r *domain.CommitReport, exists bool) {
	v := m.commit_report
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitReport returns the old "commit_report" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCommitReport(ctx context.Context) (v *domain.CommitReport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitReport: %w", err)
	}
	return oldValue.CommitReport, nil
}

// ClearCommitReport clears the value of the "commit_report" field.
func (m *ImportPackageMutation) ClearCommitReport() {
	m.commit_report = nil
	m.clearedFields[importpackage.FieldCommitReport] = struct{}{}
}

// CommitReportCleared returns if the "commit_report" field was cleared in this mutation.
func (m *ImportPackageMutation) CommitReportCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldCommitReport]
	return ok
}

// ResetCommitReport resets all changes to the "commit_report" field.
func (m *ImportPackageMutation) ResetCommitReport() {
	m.commit_report = nil
	delete(m.clearedFields, importpackage.FieldCommitReport)
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (m *ImportPackageMutation) SetQuarantinedReason(s string) {
	m.quarantined_reason = &s
}

// QuarantinedReason returns the value of the "quarantined_reason" field in the mutation.
func (m *ImportPackageMutation) QuarantinedReason() (r string, exists bool) {
	v := m.quarantined_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldQuarantinedReason returns the old "quarantined_reason" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldQuarantinedReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuarantinedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuarantinedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuarantinedReason: %w", err)
	}
	return oldValue.QuarantinedReason, nil
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (m *ImportPackageMutation) ClearQuarantinedReason() {
	m.quarantined_reason = nil
	m.clearedFields[importpackage.FieldQuarantinedReason] = struct{}{}
}

// QuarantinedReasonCleared returns if the "quarantined_reason" field was cleared in this mutation.
func (m *ImportPackageMutation) QuarantinedReasonCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldQuarantinedReason]
	return ok
}

// ResetQuarantinedReason resets all changes to the "quarantined_reason" field.
func (m *ImportPackageMutation) ResetQuarantinedReason() {
	m.quarantined_reason = nil
	delete(m.clearedFields, importpackage.FieldQuarantinedReason)
}

// SetCancelledReason sets the "cancelled_reason" field.
func (m *ImportPackageMutation) SetCancelledReason(s string) {
	m.cancelled_reason = &s
}

// CancelledReason returns the value of the "cancelled_reason" field in the mutation.
func (m *ImportPackageMutation) CancelledReason() (r string, exists bool) {
	v := m.cancelled_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledReason returns the old "cancelled_reason" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCancelledReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledReason: %w", err)
	}
	return oldValue.CancelledReason, nil
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (m *ImportPackageMutation) ClearCancelledReason() {
	m.cancelled_reason = nil
	m.clearedFields[importpackage.FieldCancelledReason] = struct{}{}
}

// CancelledReasonCleared returns if the "cancelled_reason" field was cleared in this mutation.
func (m *ImportPackageMutation) CancelledReasonCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldCancelledReason]
	return ok
}

// ResetCancelledReason resets all changes to the "cancelled_reason" field.
func (m *ImportPackageMutation) ResetCancelledReason() {
	m.cancelled_reason = nil
	delete(m.clearedFields, importpackage.FieldCancelledReason)
}

// SetCancelledBy sets the "cancelled_by" field.
func (m *ImportPackageMutation) SetCancelledBy(s string) {
	m.cancelled_by = &s
}

// CancelledBy returns the value of the "cancelled_by" field in the mutation.
func (m *ImportPackageMutation) CancelledBy() (r string, exists bool) {
	v := m.cancelled_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledBy returns the old "cancelled_by" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCancelledBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledBy: %w", err)
	}
	return oldValue.CancelledBy, nil
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (m *ImportPackageMutation) ClearCancelledBy() {
	m.cancelled_by = nil
	m.clearedFields[importpackage.FieldCancelledBy] = struct{}{}
}

// CancelledByCleared returns if the "cancelled_by" field was cleared in this mutation.
func (m *ImportPackageMutation) CancelledByCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldCancelledBy]
	return ok
}

// ResetCancelledBy resets all changes to the "cancelled_by" field.
func (m *ImportPackageMutation) ResetCancelledBy() {
	m.cancelled_by = nil
	delete(m.clearedFields, importpackage.FieldCancelledBy)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *ImportPackageMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *ImportPackageMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *ImportPackageMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[importpackage.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *ImportPackageMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[importpackage.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *ImportPackageMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, importpackage.FieldCancelledAt)
}

// SetReceivedBy sets the "received_by" field.
func (m *ImportPackageMutation) SetReceivedBy(s string) {
	m.received_by = &s
}

// ReceivedBy returns the value of the "received_by" field in the mutation.
func (m *ImportPackageMutation) ReceivedBy() (r string, exists bool) {
	v := m.received_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedBy returns the old "received_by" field's value of the ImportPackage entity.
// If the ImportPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportPackageMutation) OldReceivedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedBy: %w", err)
	}
	return oldValue.ReceivedBy, nil
}

// ResetReceivedBy resets all changes to the "received_by" field.
func (m *ImportPackageMutation) ResetReceivedBy() {
	m.received_by = nil
}

// Where appends a list predicates to the ImportPackageMutation builder.
func (m *ImportPackageMutation) Where(ps ...predicate.ImportPackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportPackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportPackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportPackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportPackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportPackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportPackage).
func (m *ImportPackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportPackageMutation) Fields() []string {
	fields := make([]string, 0, 34)
	if m.created_at != nil {
		fields = append(fields, importpackage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, importpackage.FieldUpdatedAt)
	}
	if m.package_number != nil {
		fields = append(fields, importpackage.FieldPackageNumber)
	}
	if m.status != nil {
		fields = append(fields, importpackage.FieldStatus)
	}
	if m.import_method != nil {
		fields = append(fields, importpackage.FieldImportMethod)
	}
	if m.file_name != nil {
		fields = append(fields, importpackage.FieldFileName)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, importpackage.FieldFileSizeBytes)
	}
	if m.schema_version != nil {
		fields = append(fields, importpackage.FieldSchemaVersion)
	}
	if m.manifest_created_utc != nil {
		fields = append(fields, importpackage.FieldManifestCreatedUtc)
	}
	if m.exported_date_utc != nil {
		fields = append(fields, importpackage.FieldExportedDateUtc)
	}
	if m.exported_by_user_id != nil {
		fields = append(fields, importpackage.FieldExportedByUserID)
	}
	if m.device_id != nil {
		fields = append(fields, importpackage.FieldDeviceID)
	}
	if m.total_record_count != nil {
		fields = append(fields, importpackage.FieldTotalRecordCount)
	}
	if m.entity_counts != nil {
		fields = append(fields, importpackage.FieldEntityCounts)
	}
	if m.total_attachment_size_bytes != nil {
		fields = append(fields, importpackage.FieldTotalAttachmentSizeBytes)
	}
	if m.vocabulary_versions != nil {
		fields = append(fields, importpackage.FieldVocabularyVersions)
	}
	if m.expected_checksum != nil {
		fields = append(fields, importpackage.FieldExpectedChecksum)
	}
	if m.computed_checksum != nil {
		fields = append(fields, importpackage.FieldComputedChecksum)
	}
	if m.signature_status != nil {
		fields = append(fields, importpackage.FieldSignatureStatus)
	}
	if m.receive_warnings != nil {
		fields = append(fields, importpackage.FieldReceiveWarnings)
	}
	if m.storage_path != nil {
		fields = append(fields, importpackage.FieldStoragePath)
	}
	if m.is_archived != nil {
		fields = append(fields, importpackage.FieldIsArchived)
	}
	if m.archive_path != nil {
		fields = append(fields, importpackage.FieldArchivePath)
	}
	if m.archived_date != nil {
		fields = append(fields, importpackage.FieldArchivedDate)
	}
	if m.validation_summary != nil {
		fields = append(fields, importpackage.FieldValidationSummary)
	}
	if m.conflict_count != nil {
		fields = append(fields, importpackage.FieldConflictCount)
	}
	if m.unresolved_conflict_count != nil {
		fields = append(fields, importpackage.FieldUnresolvedConflictCount)
	}
	if m.committed_date != nil {
		fields = append(fields, importpackage.FieldCommittedDate)
	}
	if m.commit_report != nil {
		fields = append(fields, importpackage.FieldCommitReport)
	}
	if m.quarantined_reason != nil {
		fields = append(fields, importpackage.FieldQuarantinedReason)
	}
	if m.cancelled_reason != nil {
		fields = append(fields, importpackage.FieldCancelledReason)
	}
	if m.cancelled_by != nil {
		fields = append(fields, importpackage.FieldCancelledBy)
	}
	if m.cancelled_at != nil {
		fields = append(fields, importpackage.FieldCancelledAt)
	}
	if m.received_by != nil {
		fields = append(fields, importpackage.FieldReceivedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportPackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importpackage.FieldCreatedAt:
		return m.CreatedAt()
	case importpackage.FieldUpdatedAt:
		return m.UpdatedAt()
	case importpackage.FieldPackageNumber:
		return m.PackageNumber()
	case importpackage.FieldStatus:
		return m.Status()
	case importpackage.FieldImportMethod:
		return m.ImportMethod()
	case importpackage.FieldFileName:
		return m.FileName()
	case importpackage.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case importpackage.FieldSchemaVersion:
		return m.SchemaVersion()
	case importpackage.FieldManifestCreatedUtc:
		return m.ManifestCreatedUtc()
	case importpackage.FieldExportedDateUtc:
		return m.ExportedDateUtc()
	case importpackage.FieldExportedByUserID:
		return m.ExportedByUserID()
	case importpackage.FieldDeviceID:
		return m.DeviceID()
	case importpackage.FieldTotalRecordCount:
		return m.TotalRecordCount()
	case importpackage.FieldEntityCounts:
		return m.EntityCounts()
	case importpackage.FieldTotalAttachmentSizeBytes:
		return m.TotalAttachmentSizeBytes()
	case importpackage.FieldVocabularyVersions:
		return m.VocabularyVersions()
	case importpackage.FieldExpectedChecksum:
		return m.ExpectedChecksum()
	case importpackage.FieldComputedChecksum:
		return m.ComputedChecksum()
	case importpackage.FieldSignatureStatus:
		return m.SignatureStatus()
	case importpackage.FieldReceiveWarnings:
		return m.ReceiveWarnings()
	case importpackage.FieldStoragePath:
		return m.StoragePath()
	case importpackage.FieldIsArchived:
		return m.IsArchived()
	case importpackage.FieldArchivePath:
		return m.ArchivePath()
	case importpackage.FieldArchivedDate:
		return m.ArchivedDate()
	case importpackage.FieldValidationSummary:
		return m.ValidationSummary()
	case importpackage.FieldConflictCount:
		return m.ConflictCount()
	case importpackage.FieldUnresolvedConflictCount:
		return m.UnresolvedConflictCount()
	case importpackage.FieldCommittedDate:
		return m.CommittedDate()
	case importpackage.FieldCommitReport:
		return m.CommitReport()
	case importpackage.FieldQuarantinedReason:
		return m.QuarantinedReason()
	case importpackage.FieldCancelledReason:
		return m.CancelledReason()
	case importpackage.FieldCancelledBy:
		return m.CancelledBy()
	case importpackage.FieldCancelledAt:
		return m.CancelledAt()
	case importpackage.FieldReceivedBy:
		return m.ReceivedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportPackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importpackage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case importpackage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case importpackage.FieldPackageNumber:
		return m.OldPackageNumber(ctx)
	case importpackage.FieldStatus:
		return m.OldStatus(ctx)
	case importpackage.FieldImportMethod:
		return m.OldImportMethod(ctx)
	case importpackage.FieldFileName:
		return m.OldFileName(ctx)
	case importpackage.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case importpackage.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case importpackage.FieldManifestCreatedUtc:
		return m.OldManifestCreatedUtc(ctx)
	case importpackage.FieldExportedDateUtc:
		return m.OldExportedDateUtc(ctx)
	case importpackage.FieldExportedByUserID:
		return m.OldExportedByUserID(ctx)
	case importpackage.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case importpackage.FieldTotalRecordCount:
		return m.OldTotalRecordCount(ctx)
	case importpackage.FieldEntityCounts:
		return m.OldEntityCounts(ctx)
	case importpackage.FieldTotalAttachmentSizeBytes:
		return m.OldTotalAttachmentSizeBytes(ctx)
	case importpackage.FieldVocabularyVersions:
		return m.OldVocabularyVersions(ctx)
	case importpackage.FieldExpectedChecksum:
		return m.OldExpectedChecksum(ctx)
	case importpackage.FieldComputedChecksum:
		return m.OldComputedChecksum(ctx)
	case importpackage.FieldSignatureStatus:
		return m.OldSignatureStatus(ctx)
	case importpackage.FieldReceiveWarnings:
		return m.OldReceiveWarnings(ctx)
	case importpackage.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case importpackage.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case importpackage.FieldArchivePath:
		return m.OldArchivePath(ctx)
	case importpackage.FieldArchivedDate:
		return m.OldArchivedDate(ctx)
	case importpackage.FieldValidationSummary:
		return m.OldValidationSummary(ctx)
	case importpackage.FieldConflictCount:
		return m.OldConflictCount(ctx)
	case importpackage.FieldUnresolvedConflictCount:
		return m.OldUnresolvedConflictCount(ctx)
	case importpackage.FieldCommittedDate:
		return m.OldCommittedDate(ctx)
	case importpackage.FieldCommitReport:
		return m.OldCommitReport(ctx)
	case importpackage.FieldQuarantinedReason:
		return m.OldQuarantinedReason(ctx)
	case importpackage.FieldCancelledReason:
		return m.OldCancelledReason(ctx)
	case importpackage.FieldCancelledBy:
		return m.OldCancelledBy(ctx)
	case importpackage.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case importpackage.FieldReceivedBy:
		return m.OldReceivedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ImportPackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportPackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importpackage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case importpackage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case importpackage.FieldPackageNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageNumber(v)
		return nil
	case importpackage.FieldStatus:
		v, ok := value.(importpackage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importpackage.FieldImportMethod:
		v, ok := value.(importpackage.ImportMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportMethod(v)
		return nil
	case importpackage.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case importpackage.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case importpackage.FieldSchemaVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case importpackage.FieldManifestCreatedUtc:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifestCreatedUtc(v)
		return nil
	case importpackage.FieldExportedDateUtc:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExportedDateUtc(v)
		return nil
	case importpackage.FieldExportedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExportedByUserID(v)
		return nil
	case importpackage.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case importpackage.FieldTotalRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecordCount(v)
		return nil
	case importpackage.FieldEntityCounts:
		v, ok := value.(map[domain.EntityType]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityCounts(v)
		return nil
	case importpackage.FieldTotalAttachmentSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttachmentSizeBytes(v)
		return nil
	case importpackage.FieldVocabularyVersions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVocabularyVersions(v)
		return nil
	case importpackage.FieldExpectedChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedChecksum(v)
		return nil
	case importpackage.FieldComputedChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedChecksum(v)
		return nil
	case importpackage.FieldSignatureStatus:
		v, ok := value.(importpackage.SignatureStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureStatus(v)
		return nil
	case importpackage.FieldReceiveWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiveWarnings(v)
		return nil
	case importpackage.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case importpackage.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case importpackage.FieldArchivePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivePath(v)
		return nil
	case importpackage.FieldArchivedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedDate(v)
		return nil
	case importpackage.FieldValidationSummary:
		v, ok := value.(*domain.ValidationSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationSummary(v)
		return nil
	case importpackage.FieldConflictCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictCount(v)
		return nil
	case importpackage.FieldUnresolvedConflictCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnresolvedConflictCount(v)
		return nil
	case importpackage.FieldCommittedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedDate(v)
		return nil
	case importpackage.FieldCommitReport:
		v, ok := value.(*domain.CommitReport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitReport(v)
		return nil
	case importpackage.FieldQuarantinedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuarantinedReason(v)
		return nil
	case importpackage.FieldCancelledReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledReason(v)
		return nil
	case importpackage.FieldCancelledBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledBy(v)
		return nil
	case importpackage.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case importpackage.FieldReceivedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ImportPackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportPackageMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size_bytes != nil {
		fields = append(fields, importpackage.FieldFileSizeBytes)
	}
	if m.addtotal_record_count != nil {
		fields = append(fields, importpackage.FieldTotalRecordCount)
	}
	if m.addtotal_attachment_size_bytes != nil {
		fields = append(fields, importpackage.FieldTotalAttachmentSizeBytes)
	}
	if m.addconflict_count != nil {
		fields = append(fields, importpackage.FieldConflictCount)
	}
	if m.addunresolved_conflict_count != nil {
		fields = append(fields, importpackage.FieldUnresolvedConflictCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportPackageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importpackage.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	case importpackage.FieldTotalRecordCount:
		return m.AddedTotalRecordCount()
	case importpackage.FieldTotalAttachmentSizeBytes:
		return m.AddedTotalAttachmentSizeBytes()
	case importpackage.FieldConflictCount:
		return m.AddedConflictCount()
	case importpackage.FieldUnresolvedConflictCount:
		return m.AddedUnresolvedConflictCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportPackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importpackage.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	case importpackage.FieldTotalRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecordCount(v)
		return nil
	case importpackage.FieldTotalAttachmentSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttachmentSizeBytes(v)
		return nil
	case importpackage.FieldConflictCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConflictCount(v)
		return nil
	case importpackage.FieldUnresolvedConflictCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnresolvedConflictCount(v)
		return nil
	}
	return fmt.Errorf("unknown ImportPackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportPackageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importpackage.FieldExportedByUserID) {
		fields = append(fields, importpackage.FieldExportedByUserID)
	}
	if m.FieldCleared(importpackage.FieldEntityCounts) {
		fields = append(fields, importpackage.FieldEntityCounts)
	}
	if m.FieldCleared(importpackage.FieldVocabularyVersions) {
		fields = append(fields, importpackage.FieldVocabularyVersions)
	}
	if m.FieldCleared(importpackage.FieldExpectedChecksum) {
		fields = append(fields, importpackage.FieldExpectedChecksum)
	}
	if m.FieldCleared(importpackage.FieldComputedChecksum) {
		fields = append(fields, importpackage.FieldComputedChecksum)
	}
	if m.FieldCleared(importpackage.FieldReceiveWarnings) {
		fields = append(fields, importpackage.FieldReceiveWarnings)
	}
	if m.FieldCleared(importpackage.FieldStoragePath) {
		fields = append(fields, importpackage.FieldStoragePath)
	}
	if m.FieldCleared(importpackage.FieldArchivePath) {
		fields = append(fields, importpackage.FieldArchivePath)
	}
	if m.FieldCleared(importpackage.FieldArchivedDate) {
		fields = append(fields, importpackage.FieldArchivedDate)
	}
	if m.FieldCleared(importpackage.FieldValidationSummary) {
		fields = append(fields, importpackage.FieldValidationSummary)
	}
	if m.FieldCleared(importpackage.FieldCommittedDate) {
		fields = append(fields, importpackage.FieldCommittedDate)
	}
	if m.FieldCleared(importpackage.FieldCommitReport) {
		fields = append(fields, importpackage.FieldCommitReport)
	}
	if m.FieldCleared(importpackage.FieldQuarantinedReason) {
		fields = append(fields, importpackage.FieldQuarantinedReason)
	}
	if m.FieldCleared(importpackage.FieldCancelledReason) {
		fields = append(fields, importpackage.FieldCancelledReason)
	}
	if m.FieldCleared(importpackage.FieldCancelledBy) {
		fields = append(fields, importpackage.FieldCancelledBy)
	}
	if m.FieldCleared(importpackage.FieldCancelledAt) {
		fields = append(fields, importpackage.FieldCancelledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportPackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportPackageMutation) ClearField(name string) error {
	switch name {
	case importpackage.FieldExportedByUserID:
		m.ClearExportedByUserID()
		return nil
	case importpackage.FieldEntityCounts:
		m.ClearEntityCounts()
		return nil
	case importpackage.FieldVocabularyVersions:
		m.ClearVocabularyVersions()
		return nil
	case importpackage.FieldExpectedChecksum:
		m.ClearExpectedChecksum()
		return nil
	case importpackage.FieldComputedChecksum:
		m.ClearComputedChecksum()
		return nil
	case importpackage.FieldReceiveWarnings:
		m.ClearReceiveWarnings()
		return nil
	case importpackage.FieldStoragePath:
		m.ClearStoragePath()
		return nil
	case importpackage.FieldArchivePath:
		m.ClearArchivePath()
		return nil
	case importpackage.FieldArchivedDate:
		m.ClearArchivedDate()
		return nil
	case importpackage.FieldValidationSummary:
		m.ClearValidationSummary()
		return nil
	case importpackage.FieldCommittedDate:
		m.ClearCommittedDate()
		return nil
	case importpackage.FieldCommitReport:
		m.ClearCommitReport()
		return nil
	case importpackage.FieldQuarantinedReason:
		m.ClearQuarantinedReason()
		return nil
	case importpackage.FieldCancelledReason:
		m.ClearCancelledReason()
		return nil
	case importpackage.FieldCancelledBy:
		m.ClearCancelledBy()
		return nil
	case importpackage.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown ImportPackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportPackageMutation) ResetField(name string) error {
	switch name {
	case importpackage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case importpackage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case importpackage.FieldPackageNumber:
		m.ResetPackageNumber()
		return nil
	case importpackage.FieldStatus:
		m.ResetStatus()
		return nil
	case importpackage.FieldImportMethod:
		m.ResetImportMethod()
		return nil
	case importpackage.FieldFileName:
		m.ResetFileName()
		return nil
	case importpackage.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case importpackage.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case importpackage.FieldManifestCreatedUtc:
		m.ResetManifestCreatedUtc()
		return nil
	case importpackage.FieldExportedDateUtc:
		m.ResetExportedDateUtc()
		return nil
	case importpackage.FieldExportedByUserID:
		m.ResetExportedByUserID()
		return nil
	case importpackage.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case importpackage.FieldTotalRecordCount:
		m.ResetTotalRecordCount()
		return nil
	case importpackage.FieldEntityCounts:
		m.ResetEntityCounts()
		return nil
	case importpackage.FieldTotalAttachmentSizeBytes:
		m.ResetTotalAttachmentSizeBytes()
		return nil
	case importpackage.FieldVocabularyVersions:
		m.ResetVocabularyVersions()
		return nil
	case importpackage.FieldExpectedChecksum:
		m.ResetExpectedChecksum()
		return nil
	case importpackage.FieldComputedChecksum:
		m.ResetComputedChecksum()
		return nil
	case importpackage.FieldSignatureStatus:
		m.ResetSignatureStatus()
		return nil
	case importpackage.FieldReceiveWarnings:
		m.ResetReceiveWarnings()
		return nil
	case importpackage.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case importpackage.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case importpackage.FieldArchivePath:
		m.ResetArchivePath()
		return nil
	case importpackage.FieldArchivedDate:
		m.ResetArchivedDate()
		return nil
	case importpackage.FieldValidationSummary:
		m.ResetValidationSummary()
		return nil
	case importpackage.FieldConflictCount:
		m.ResetConflictCount()
		return nil
	case importpackage.FieldUnresolvedConflictCount:
		m.ResetUnresolvedConflictCount()
		return nil
	case importpackage.FieldCommittedDate:
		m.ResetCommittedDate()
		return nil
	case importpackage.FieldCommitReport:
		m.ResetCommitReport()
		return nil
	case importpackage.FieldQuarantinedReason:
		m.ResetQuarantinedReason()
		return nil
	case importpackage.FieldCancelledReason:
		m.ResetCancelledReason()
		return nil
	case importpackage.FieldCancelledBy:
		m.ResetCancelledBy()
		return nil
	case importpackage.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case importpackage.FieldReceivedBy:
		m.ResetReceivedBy()
		return nil
	}
	return fmt.Errorf("unknown ImportPackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportPackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportPackageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportPackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportPackageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportPackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportPackageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportPackageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportPackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportPackageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportPackage edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	_type         *notification.Type
	user_id       *string
	title         *string
	message       *string
	resource_type *string
	resource_id   *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetResourceType sets the "resource_type" field.
func (m *NotificationMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *NotificationMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *NotificationMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[notification.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *NotificationMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *NotificationMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, notification.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *NotificationMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *NotificationMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *NotificationMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[notification.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *NotificationMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *NotificationMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, notification.FieldResourceID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.resource_type != nil {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldResourceType:
		return m.ResourceType()
	case notification.FieldResourceID:
		return m.ResourceID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldResourceType:
		return m.OldResourceType(ctx)
	case notification.FieldResourceID:
		return m.OldResourceID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case notification.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldResourceType) {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.FieldCleared(notification.FieldResourceID) {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldResourceType:
		m.ClearResourceType()
		return nil
	case notification.FieldResourceID:
		m.ClearResourceID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldResourceType:
		m.ResetResourceType()
		return nil
	case notification.FieldResourceID:
		m.ResetResourceID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PersonMutation represents an operation that mutates the Person nodes in the graph.
type PersonMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	source_package_id      *uuid.UUID
	first_name             *string
	father_name            *string
	family_name            *string
	mother_name            *string
	first_name_normalized  *string
	father_name_normalized *string
	family_name_normalized *string
	national_id            *string
	date_of_birth          *time.Time
	year_of_birth          *int
	addyear_of_birth       *int
	gender_code            *string
	nationality_code       *string
	governorate_code       *string
	phone_number           *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Person, error)
	predicates             []predicate.Person
}

var _ ent.Mutation = (*PersonMutation)(nil)

// personOption allows management of the mutation configuration using functional options.
type personOption func(*PersonMutation)

// newPersonMutation creates new mutation for the Person entity.
func newPersonMutation(c config, op Op, opts ...personOption) *PersonMutation {
	m := &PersonMutation{
		config:        c,
		op:            op,
		typ:           TypePerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonID sets the ID field of the mutation.
func withPersonID(id uuid.UUID) personOption {
	return func(m *PersonMutation) {
		var (
			err   error
			once  sync.Once
			value *Person
		)
		m.oldValue = func(ctx context.Context) (*Person, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Person.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerson sets the old Person of the mutation.
func withPerson(node *Person) personOption {
	return func(m *PersonMutation) {
		m.oldValue = func(context.Context) (*Person, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Person entities.
func (m *PersonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Person.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *PersonMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *PersonMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *PersonMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[person.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *PersonMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[person.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *PersonMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, person.FieldSourcePackageID)
}

// SetFirstName sets the "first_name" field.
func (m *PersonMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PersonMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PersonMutation) ResetFirstName() {
	m.first_name = nil
}

// SetFatherName sets the "father_name" field.
func (m *PersonMutation) SetFatherName(s string) {
	m.father_name = &s
}

// FatherName returns the value of the "father_name" field in the mutation.
func (m *PersonMutation) FatherName() (r string, exists bool) {
	v := m.father_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFatherName returns the old "father_name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFatherName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatherName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatherName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatherName: %w", err)
	}
	return oldValue.FatherName, nil
}

// ClearFatherName clears the value of the "father_name" field.
func (m *PersonMutation) ClearFatherName() {
	m.father_name = nil
	m.clearedFields[person.FieldFatherName] = struct{}{}
}

// FatherNameCleared returns if the "father_name" field was cleared in this mutation.
func (m *PersonMutation) FatherNameCleared() bool {
	_, ok := m.clearedFields[person.FieldFatherName]
	return ok
}

// ResetFatherName resets all changes to the "father_name" field.
func (m *PersonMutation) ResetFatherName() {
	m.father_name = nil
	delete(m.clearedFields, person.FieldFatherName)
}

// SetFamilyName sets the "family_name" field.
func (m *PersonMutation) SetFamilyName(s string) {
	m.family_name = &s
}

// FamilyName returns the value of the "family_name" field in the mutation.
func (m *PersonMutation) FamilyName() (r string, exists bool) {
	v := m.family_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyName returns the old "family_name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFamilyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyName: %w", err)
	}
	return oldValue.FamilyName, nil
}

// ResetFamilyName resets all changes to the "family_name" field.
func (m *PersonMutation) ResetFamilyName() {
	m.family_name = nil
}

// SetMotherName sets the "mother_name" field.
func (m *PersonMutation) SetMotherName(s string) {
	m.mother_name = &s
}

// MotherName returns the value of the "mother_name" field in the mutation.
func (m *PersonMutation) MotherName() (r string, exists bool) {
	v := m.mother_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMotherName returns the old "mother_name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldMotherName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMotherName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMotherName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMotherName: %w", err)
	}
	return oldValue.MotherName, nil
}

// ClearMotherName clears the value of the "mother_name" field.
func (m *PersonMutation) ClearMotherName() {
	m.mother_name = nil
	m.clearedFields[person.FieldMotherName] = struct{}{}
}

// MotherNameCleared returns if the "mother_name" field was cleared in this mutation.
func (m *PersonMutation) MotherNameCleared() bool {
	_, ok := m.clearedFields[person.FieldMotherName]
	return ok
}

// ResetMotherName resets all changes to the "mother_name" field.
func (m *PersonMutation) ResetMotherName() {
	m.mother_name = nil
	delete(m.clearedFields, person.FieldMotherName)
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (m *PersonMutation) SetFirstNameNormalized(s string) {
	m.first_name_normalized = &s
}

// FirstNameNormalized returns the value of the "first_name_normalized" field in the mutation.
func (m *PersonMutation) FirstNameNormalized() (r string, exists bool) {
	v := m.first_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstNameNormalized returns the old "first_name_normalized" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFirstNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstNameNormalized: %w", err)
	}
	return oldValue.FirstNameNormalized, nil
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (m *PersonMutation) ClearFirstNameNormalized() {
	m.first_name_normalized = nil
	m.clearedFields[person.FieldFirstNameNormalized] = struct{}{}
}

// FirstNameNormalizedCleared returns if the "first_name_normalized" field was cleared in this mutation.
func (m *PersonMutation) FirstNameNormalizedCleared() bool {
	_, ok := m.clearedFields[person.FieldFirstNameNormalized]
	return ok
}

// ResetFirstNameNormalized resets all changes to the "first_name_normalized" field.
func (m *PersonMutation) ResetFirstNameNormalized() {
	m.first_name_normalized = nil
	delete(m.clearedFields, person.FieldFirstNameNormalized)
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (m *PersonMutation) SetFatherNameNormalized(s string) {
	m.father_name_normalized = &s
}

// FatherNameNormalized returns the value of the "father_name_normalized" field in the mutation.
func (m *PersonMutation) FatherNameNormalized() (r string, exists bool) {
	v := m.father_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFatherNameNormalized returns the old "father_name_normalized" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFatherNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatherNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatherNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatherNameNormalized: %w", err)
	}
	return oldValue.FatherNameNormalized, nil
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (m *PersonMutation) ClearFatherNameNormalized() {
	m.father_name_normalized = nil
	m.clearedFields[person.FieldFatherNameNormalized] = struct{}{}
}

// FatherNameNormalizedCleared returns if the "father_name_normalized" field was cleared in this mutation.
func (m *PersonMutation) FatherNameNormalizedCleared() bool {
	_, ok := m.clearedFields[person.FieldFatherNameNormalized]
	return ok
}

// ResetFatherNameNormalized resets all changes to the "father_name_normalized" field.
func (m *PersonMutation) ResetFatherNameNormalized() {
	m.father_name_normalized = nil
	delete(m.clearedFields, person.FieldFatherNameNormalized)
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (m *PersonMutation) SetFamilyNameNormalized(s string) {
	m.family_name_normalized = &s
}

// FamilyNameNormalized returns the value of the "family_name_normalized" field in the mutation.
func (m *PersonMutation) FamilyNameNormalized() (r string, exists bool) {
	v := m.family_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyNameNormalized returns the old "family_name_normalized" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFamilyNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyNameNormalized: %w", err)
	}
	return oldValue.FamilyNameNormalized, nil
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (m *PersonMutation) ClearFamilyNameNormalized() {
	m.family_name_normalized = nil
	m.clearedFields[person.FieldFamilyNameNormalized] = struct{}{}
}

// FamilyNameNormalizedCleared returns if the "family_name_normalized" field was cleared in this mutation.
func (m *PersonMutation) FamilyNameNormalizedCleared() bool {
	_, ok := m.clearedFields[person.FieldFamilyNameNormalized]
	return ok
}

// ResetFamilyNameNormalized resets all changes to the "family_name_normalized" field.
func (m *PersonMutation) ResetFamilyNameNormalized() {
	m.family_name_normalized = nil
	delete(m.clearedFields, person.FieldFamilyNameNormalized)
}

// SetNationalID sets the "national_id" field.
func (m *PersonMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *PersonMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldNationalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ClearNationalID clears the value of the "national_id" field.
func (m *PersonMutation) ClearNationalID() {
	m.national_id = nil
	m.clearedFields[person.FieldNationalID] = struct{}{}
}

// NationalIDCleared returns if the "national_id" field was cleared in this mutation.
func (m *PersonMutation) NationalIDCleared() bool {
	_, ok := m.clearedFields[person.FieldNationalID]
	return ok
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *PersonMutation) ResetNationalID() {
	m.national_id = nil
	delete(m.clearedFields, person.FieldNationalID)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PersonMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PersonMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *PersonMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[person.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *PersonMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[person.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PersonMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, person.FieldDateOfBirth)
}

// SetYearOfBirth sets the "year_of_birth" field.
func (m *PersonMutation) SetYearOfBirth(i int) {
	m.year_of_birth = &i
	m.addyear_of_birth = nil
}

// YearOfBirth returns the value of the "year_of_birth" field in the mutation.
func (m *PersonMutation) YearOfBirth() (r int, exists bool) {
	v := m.year_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldYearOfBirth returns the old "year_of_birth" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldYearOfBirth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearOfBirth: %w", err)
	}
	return oldValue.YearOfBirth, nil
}

// AddYearOfBirth adds i to the "year_of_birth" field.
func (m *PersonMutation) AddYearOfBirth(i int) {
	if m.addyear_of_birth != nil {
		*m.addyear_of_birth += i
	} else {
		m.addyear_of_birth = &i
	}
}

// AddedYearOfBirth returns the value that was added to the "year_of_birth" field in this mutation.
func (m *PersonMutation) AddedYearOfBirth() (r int, exists bool) {
	v := m.addyear_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (m *PersonMutation) ClearYearOfBirth() {
	m.year_of_birth = nil
	m.addyear_of_birth = nil
	m.clearedFields[person.FieldYearOfBirth] = struct{}{}
}

// YearOfBirthCleared returns if the "year_of_birth" field was cleared in this mutation.
func (m *PersonMutation) YearOfBirthCleared() bool {
	_, ok := m.clearedFields[person.FieldYearOfBirth]
	return ok
}

// ResetYearOfBirth resets all changes to the "year_of_birth" field.
func (m *PersonMutation) ResetYearOfBirth() {
	m.year_of_birth = nil
	m.addyear_of_birth = nil
	delete(m.clearedFields, person.FieldYearOfBirth)
}

// SetGenderCode sets the "gender_code" field.
func (m *PersonMutation) SetGenderCode(s string) {
	m.gender_code = &s
}

// GenderCode returns the value of the "gender_code" field in the mutation.
func (m *PersonMutation) GenderCode() (r string, exists bool) {
	v := m.gender_code
	if v == nil {
		return
	}
	return *v, true
}

// OldGenderCode returns the old "gender_code" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldGenderCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenderCode: %w", err)
	}
	return oldValue.GenderCode, nil
}

// ClearGenderCode clears the value of the "gender_code" field.
func (m *PersonMutation) ClearGenderCode() {
	m.gender_code = nil
	m.clearedFields[person.FieldGenderCode] = struct{}{}
}

// GenderCodeCleared returns if the "gender_code" field was cleared in this mutation.
func (m *PersonMutation) GenderCodeCleared() bool {
	_, ok := m.clearedFields[person.FieldGenderCode]
	return ok
}

// ResetGenderCode resets all changes to the "gender_code" field.
func (m *PersonMutation) ResetGenderCode() {
	m.gender_code = nil
	delete(m.clearedFields, person.FieldGenderCode)
}

// SetNationalityCode sets the "nationality_code" field.
func (m *PersonMutation) SetNationalityCode(s string) {
	m.nationality_code = &s
}

// NationalityCode returns the value of the "nationality_code" field in the mutation.
func (m *PersonMutation) NationalityCode() (r string, exists bool) {
	v := m.nationality_code
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalityCode returns the old "nationality_code" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldNationalityCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalityCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalityCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalityCode: %w", err)
	}
	return oldValue.NationalityCode, nil
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (m *PersonMutation) ClearNationalityCode() {
	m.nationality_code = nil
	m.clearedFields[person.FieldNationalityCode] = struct{}{}
}

// NationalityCodeCleared returns if the "nationality_code" field was cleared in this mutation.
func (m *PersonMutation) NationalityCodeCleared() bool {
	_, ok := m.clearedFields[person.FieldNationalityCode]
	return ok
}

// ResetNationalityCode resets all changes to the "nationality_code" field.
func (m *PersonMutation) ResetNationalityCode() {
	m.nationality_code = nil
	delete(m.clearedFields, person.FieldNationalityCode)
}

// SetGovernorateCode sets the "governorate_code" field.
func (m *PersonMutation) SetGovernorateCode(s string) {
	m.governorate_code = &s
}

// GovernorateCode returns the value of the "governorate_code" field in the mutation.
func (m *PersonMutation) GovernorateCode() (r string, exists bool) {
	v := m.governorate_code
	if v == nil {
		return
	}
	return *v, true
}

// OldGovernorateCode returns the old "governorate_code" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldGovernorateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovernorateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovernorateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovernorateCode: %w", err)
	}
	return oldValue.GovernorateCode, nil
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (m *PersonMutation) ClearGovernorateCode() {
	m.governorate_code = nil
	m.clearedFields[person.FieldGovernorateCode] = struct{}{}
}

// GovernorateCodeCleared returns if the "governorate_code" field was cleared in this mutation.
func (m *PersonMutation) GovernorateCodeCleared() bool {
	_, ok := m.clearedFields[person.FieldGovernorateCode]
	return ok
}

// ResetGovernorateCode resets all changes to the "governorate_code" field.
func (m *PersonMutation) ResetGovernorateCode() {
	m.governorate_code = nil
	delete(m.clearedFields, person.FieldGovernorateCode)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *PersonMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *PersonMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *PersonMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[person.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *PersonMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[person.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *PersonMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, person.FieldPhoneNumber)
}

// Where appends a list predicates to the PersonMutation builder.
func (m *PersonMutation) Where(ps ...predicate.Person) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Person, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Person).
func (m *PersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, person.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, person.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, person.FieldSourcePackageID)
	}
	if m.first_name != nil {
		fields = append(fields, person.FieldFirstName)
	}
	if m.father_name != nil {
		fields = append(fields, person.FieldFatherName)
	}
	if m.family_name != nil {
		fields = append(fields, person.FieldFamilyName)
	}
	if m.mother_name != nil {
		fields = append(fields, person.FieldMotherName)
	}
	if m.first_name_normalized != nil {
		fields = append(fields, person.FieldFirstNameNormalized)
	}
	if m.father_name_normalized != nil {
		fields = append(fields, person.FieldFatherNameNormalized)
	}
	if m.family_name_normalized != nil {
		fields = append(fields, person.FieldFamilyNameNormalized)
	}
	if m.national_id != nil {
		fields = append(fields, person.FieldNationalID)
	}
	if m.date_of_birth != nil {
		fields = append(fields, person.FieldDateOfBirth)
	}
	if m.year_of_birth != nil {
		fields = append(fields, person.FieldYearOfBirth)
	}
	if m.gender_code != nil {
		fields = append(fields, person.FieldGenderCode)
	}
	if m.nationality_code != nil {
		fields = append(fields, person.FieldNationalityCode)
	}
	if m.governorate_code != nil {
		fields = append(fields, person.FieldGovernorateCode)
	}
	if m.phone_number != nil {
		fields = append(fields, person.FieldPhoneNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case person.FieldCreatedAt:
		return m.CreatedAt()
	case person.FieldUpdatedAt:
		return m.UpdatedAt()
	case person.FieldSourcePackageID:
		return m.SourcePackageID()
	case person.FieldFirstName:
		return m.FirstName()
	case person.FieldFatherName:
		return m.FatherName()
	case person.FieldFamilyName:
		return m.FamilyName()
	case person.FieldMotherName:
		return m.MotherName()
	case person.FieldFirstNameNormalized:
		return m.FirstNameNormalized()
	case person.FieldFatherNameNormalized:
		return m.FatherNameNormalized()
	case person.FieldFamilyNameNormalized:
		return m.FamilyNameNormalized()
	case person.FieldNationalID:
		return m.NationalID()
	case person.FieldDateOfBirth:
		return m.DateOfBirth()
	case person.FieldYearOfBirth:
		return m.YearOfBirth()
	case person.FieldGenderCode:
		return m.GenderCode()
	case person.FieldNationalityCode:
		return m.NationalityCode()
	case person.FieldGovernorateCode:
		return m.GovernorateCode()
	case person.FieldPhoneNumber:
		return m.PhoneNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case person.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case person.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case person.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case person.FieldFirstName:
		return m.OldFirstName(ctx)
	case person.FieldFatherName:
		return m.OldFatherName(ctx)
	case person.FieldFamilyName:
		return m.OldFamilyName(ctx)
	case person.FieldMotherName:
		return m.OldMotherName(ctx)
	case person.FieldFirstNameNormalized:
		return m.OldFirstNameNormalized(ctx)
	case person.FieldFatherNameNormalized:
		return m.OldFatherNameNormalized(ctx)
	case person.FieldFamilyNameNormalized:
		return m.OldFamilyNameNormalized(ctx)
	case person.FieldNationalID:
		return m.OldNationalID(ctx)
	case person.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case person.FieldYearOfBirth:
		return m.OldYearOfBirth(ctx)
	case person.FieldGenderCode:
		return m.OldGenderCode(ctx)
	case person.FieldNationalityCode:
		return m.OldNationalityCode(ctx)
	case person.FieldGovernorateCode:
		return m.OldGovernorateCode(ctx)
	case person.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Person field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case person.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case person.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case person.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case person.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case person.FieldFatherName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatherName(v)
		return nil
	case person.FieldFamilyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyName(v)
		return nil
	case person.FieldMotherName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMotherName(v)
		return nil
	case person.FieldFirstNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstNameNormalized(v)
		return nil
	case person.FieldFatherNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatherNameNormalized(v)
		return nil
	case person.FieldFamilyNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyNameNormalized(v)
		return nil
	case person.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case person.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case person.FieldYearOfBirth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearOfBirth(v)
		return nil
	case person.FieldGenderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenderCode(v)
		return nil
	case person.FieldNationalityCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalityCode(v)
		return nil
	case person.FieldGovernorateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovernorateCode(v)
		return nil
	case person.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonMutation) AddedFields() []string {
	var fields []string
	if m.addyear_of_birth != nil {
		fields = append(fields, person.FieldYearOfBirth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case person.FieldYearOfBirth:
		return m.AddedYearOfBirth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case person.FieldYearOfBirth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearOfBirth(v)
		return nil
	}
	return fmt.Errorf("unknown Person numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(person.FieldSourcePackageID) {
		fields = append(fields, person.FieldSourcePackageID)
	}
	if m.FieldCleared(person.FieldFatherName) {
		fields = append(fields, person.FieldFatherName)
	}
	if m.FieldCleared(person.FieldMotherName) {
		fields = append(fields, person.FieldMotherName)
	}
	if m.FieldCleared(person.FieldFirstNameNormalized) {
		fields = append(fields, person.FieldFirstNameNormalized)
	}
	if m.FieldCleared(person.FieldFatherNameNormalized) {
		fields = append(fields, person.FieldFatherNameNormalized)
	}
	if m.FieldCleared(person.FieldFamilyNameNormalized) {
		fields = append(fields, person.FieldFamilyNameNormalized)
	}
	if m.FieldCleared(person.FieldNationalID) {
		fields = append(fields, person.FieldNationalID)
	}
	if m.FieldCleared(person.FieldDateOfBirth) {
		fields = append(fields, person.FieldDateOfBirth)
	}
	if m.FieldCleared(person.FieldYearOfBirth) {
		fields = append(fields, person.FieldYearOfBirth)
	}
	if m.FieldCleared(person.FieldGenderCode) {
		fields = append(fields, person.FieldGenderCode)
	}
	if m.FieldCleared(person.FieldNationalityCode) {
		fields = append(fields, person.FieldNationalityCode)
	}
	if m.FieldCleared(person.FieldGovernorateCode) {
		fields = append(fields, person.FieldGovernorateCode)
	}
	if m.FieldCleared(person.FieldPhoneNumber) {
		fields = append(fields, person.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonMutation) ClearField(name string) error {
	switch name {
	case person.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case person.FieldFatherName:
		m.ClearFatherName()
		return nil
	case person.FieldMotherName:
		m.ClearMotherName()
		return nil
	case person.FieldFirstNameNormalized:
		m.ClearFirstNameNormalized()
		return nil
	case person.FieldFatherNameNormalized:
		m.ClearFatherNameNormalized()
		return nil
	case person.FieldFamilyNameNormalized:
		m.ClearFamilyNameNormalized()
		return nil
	case person.FieldNationalID:
		m.ClearNationalID()
		return nil
	case person.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case person.FieldYearOfBirth:
		m.ClearYearOfBirth()
		return nil
	case person.FieldGenderCode:
		m.ClearGenderCode()
		return nil
	case person.FieldNationalityCode:
		m.ClearNationalityCode()
		return nil
	case person.FieldGovernorateCode:
		m.ClearGovernorateCode()
		return nil
	case person.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown Person nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonMutation) ResetField(name string) error {
	switch name {
	case person.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case person.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case person.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case person.FieldFirstName:
		m.ResetFirstName()
		return nil
	case person.FieldFatherName:
		m.ResetFatherName()
		return nil
	case person.FieldFamilyName:
		m.ResetFamilyName()
		return nil
	case person.FieldMotherName:
		m.ResetMotherName()
		return nil
	case person.FieldFirstNameNormalized:
		m.ResetFirstNameNormalized()
		return nil
	case person.FieldFatherNameNormalized:
		m.ResetFatherNameNormalized()
		return nil
	case person.FieldFamilyNameNormalized:
		m.ResetFamilyNameNormalized()
		return nil
	case person.FieldNationalID:
		m.ResetNationalID()
		return nil
	case person.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case person.FieldYearOfBirth:
		m.ResetYearOfBirth()
		return nil
	case person.FieldGenderCode:
		m.ResetGenderCode()
		return nil
	case person.FieldNationalityCode:
		m.ResetNationalityCode()
		return nil
	case person.FieldGovernorateCode:
		m.ResetGovernorateCode()
		return nil
	case person.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Person unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Person edge %s", name)
}

// PersonPropertyRelationMutation represents an operation that mutates the PersonPropertyRelation nodes in the graph.
type PersonPropertyRelationMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	source_package_id  *uuid.UUID
	person_id          *uuid.UUID
	property_unit_id   *uuid.UUID
	relation_type_code *string
	ownership_share    *float64
	addownership_share *float64
	start_date         *time.Time
	notes              *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PersonPropertyRelation, error)
	predicates         []predicate.PersonPropertyRelation
}

var _ ent.Mutation = (*PersonPropertyRelationMutation)(nil)

// personpropertyrelationOption allows management of the mutation configuration using functional options.
type personpropertyrelationOption func(*PersonPropertyRelationMutation)

// newPersonPropertyRelationMutation creates new mutation for the PersonPropertyRelation entity.
func newPersonPropertyRelationMutation(c config, op Op, opts ...personpropertyrelationOption) *PersonPropertyRelationMutation {
	m := &PersonPropertyRelationMutation{
		config:        c,
		op:            op,
		typ:           TypePersonPropertyRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonPropertyRelationID sets the ID field of the mutation.
func withPersonPropertyRelationID(id uuid.UUID) personpropertyrelationOption {
	return func(m *PersonPropertyRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *PersonPropertyRelation
		)
		m.oldValue = func(ctx context.Context) (*PersonPropertyRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PersonPropertyRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonPropertyRelation sets the old PersonPropertyRelation of the mutation.
func withPersonPropertyRelation(node *PersonPropertyRelation) personpropertyrelationOption {
	return func(m *PersonPropertyRelationMutation) {
		m.oldValue = func(context.Context) (*PersonPropertyRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonPropertyRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonPropertyRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PersonPropertyRelation entities.
func (m *PersonPropertyRelationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonPropertyRelationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonPropertyRelationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PersonPropertyRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonPropertyRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonPropertyRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonPropertyRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonPropertyRelationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonPropertyRelationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonPropertyRelationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *PersonPropertyRelationMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *PersonPropertyRelationMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *PersonPropertyRelationMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[personpropertyrelation.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *PersonPropertyRelationMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[personpropertyrelation.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *PersonPropertyRelationMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, personpropertyrelation.FieldSourcePackageID)
}

// SetPersonID sets the "person_id" field.
func (m *PersonPropertyRelationMutation) SetPersonID(u uuid.UUID) {
	m.person_id = &u
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *PersonPropertyRelationMutation) PersonID() (r uuid.UUID, exists bool) {
	v := m.person_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldPersonID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *PersonPropertyRelationMutation) ResetPersonID() {
	m.person_id = nil
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (m *PersonPropertyRelationMutation) SetPropertyUnitID(u uuid.UUID) {
	m.property_unit_id = &u
}

// PropertyUnitID returns the value of the "property_unit_id" field in the mutation.
func (m *PersonPropertyRelationMutation) PropertyUnitID() (r uuid.UUID, exists bool) {
	v := m.property_unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyUnitID returns the old "property_unit_id" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldPropertyUnitID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyUnitID: %w", err)
	}
	return oldValue.PropertyUnitID, nil
}

// ResetPropertyUnitID resets all changes to the "property_unit_id" field.
func (m *PersonPropertyRelationMutation) ResetPropertyUnitID() {
	m.property_unit_id = nil
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (m *PersonPropertyRelationMutation) SetRelationTypeCode(s string) {
	m.relation_type_code = &s
}

// RelationTypeCode returns the value of the "relation_type_code" field in the mutation.
func (m *PersonPropertyRelationMutation) RelationTypeCode() (r string, exists bool) {
	v := m.relation_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationTypeCode returns the old "relation_type_code" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldRelationTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationTypeCode: %w", err)
	}
	return oldValue.RelationTypeCode, nil
}

// ResetRelationTypeCode resets all changes to the "relation_type_code" field.
func (m *PersonPropertyRelationMutation) ResetRelationTypeCode() {
	m.relation_type_code = nil
}

// SetOwnershipShare sets the "ownership_share" field.
func (m *PersonPropertyRelationMutation) SetOwnershipShare(f float64) {
	m.ownership_share = &f
	m.addownership_share = nil
}

// OwnershipShare returns the value of the "ownership_share" field in the mutation.
func (m *PersonPropertyRelationMutation) OwnershipShare() (r float64, exists bool) {
	v := m.ownership_share
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnershipShare returns the old "ownership_share" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldOwnershipShare(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnershipShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnershipShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnershipShare: %w", err)
	}
	return oldValue.OwnershipShare, nil
}

// AddOwnershipShare adds f to the "ownership_share" field.
func (m *PersonPropertyRelationMutation) AddOwnershipShare(f float64) {
	if m.addownership_share != nil {
		*m.addownership_share += f
	} else {
		m.addownership_share = &f
	}
}

// AddedOwnershipShare returns the value that was added to the "ownership_share" field in this mutation.
func (m *PersonPropertyRelationMutation) AddedOwnershipShare() (r float64, exists bool) {
	v := m.addownership_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnershipShare resets all changes to the "ownership_share" field.
func (m *PersonPropertyRelationMutation) ResetOwnershipShare() {
	m.ownership_share = nil
	m.addownership_share = nil
}

// SetStartDate sets the "start_date" field.
func (m *PersonPropertyRelationMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *PersonPropertyRelationMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *PersonPropertyRelationMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[personpropertyrelation.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *PersonPropertyRelationMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[personpropertyrelation.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *PersonPropertyRelationMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, personpropertyrelation.FieldStartDate)
}

// SetNotes sets the "notes" field.
func (m *PersonPropertyRelationMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PersonPropertyRelationMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PersonPropertyRelation entity.
// If the PersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPropertyRelationMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PersonPropertyRelationMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[personpropertyrelation.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PersonPropertyRelationMutation) NotesCleared() bool {
	_, ok := m.clearedFields[personpropertyrelation.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PersonPropertyRelationMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, personpropertyrelation.FieldNotes)
}

// Where appends a list predicates to the PersonPropertyRelationMutation builder.
func (m *PersonPropertyRelationMutation) Where(ps ...predicate.PersonPropertyRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonPropertyRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonPropertyRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PersonPropertyRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonPropertyRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonPropertyRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PersonPropertyRelation).
func (m *PersonPropertyRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonPropertyRelationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, personpropertyrelation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, personpropertyrelation.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, personpropertyrelation.FieldSourcePackageID)
	}
	if m.person_id != nil {
		fields = append(fields, personpropertyrelation.FieldPersonID)
	}
	if m.property_unit_id != nil {
		fields = append(fields, personpropertyrelation.FieldPropertyUnitID)
	}
	if m.relation_type_code != nil {
		fields = append(fields, personpropertyrelation.FieldRelationTypeCode)
	}
	if m.ownership_share != nil {
		fields = append(fields, personpropertyrelation.FieldOwnershipShare)
	}
	if m.start_date != nil {
		fields = append(fields, personpropertyrelation.FieldStartDate)
	}
	if m.notes != nil {
		fields = append(fields, personpropertyrelation.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonPropertyRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personpropertyrelation.FieldCreatedAt:
		return m.CreatedAt()
	case personpropertyrelation.FieldUpdatedAt:
		return m.UpdatedAt()
	case personpropertyrelation.FieldSourcePackageID:
		return m.SourcePackageID()
	case personpropertyrelation.FieldPersonID:
		return m.PersonID()
	case personpropertyrelation.FieldPropertyUnitID:
		return m.PropertyUnitID()
	case personpropertyrelation.FieldRelationTypeCode:
		return m.RelationTypeCode()
	case personpropertyrelation.FieldOwnershipShare:
		return m.OwnershipShare()
	case personpropertyrelation.FieldStartDate:
		return m.StartDate()
	case personpropertyrelation.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonPropertyRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personpropertyrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case personpropertyrelation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case personpropertyrelation.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case personpropertyrelation.FieldPersonID:
		return m.OldPersonID(ctx)
	case personpropertyrelation.FieldPropertyUnitID:
		return m.OldPropertyUnitID(ctx)
	case personpropertyrelation.FieldRelationTypeCode:
		return m.OldRelationTypeCode(ctx)
	case personpropertyrelation.FieldOwnershipShare:
		return m.OldOwnershipShare(ctx)
	case personpropertyrelation.FieldStartDate:
		return m.OldStartDate(ctx)
	case personpropertyrelation.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown PersonPropertyRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonPropertyRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personpropertyrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case personpropertyrelation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case personpropertyrelation.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case personpropertyrelation.FieldPersonID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	case personpropertyrelation.FieldPropertyUnitID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyUnitID(v)
		return nil
	case personpropertyrelation.FieldRelationTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationTypeCode(v)
		return nil
	case personpropertyrelation.FieldOwnershipShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnershipShare(v)
		return nil
	case personpropertyrelation.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case personpropertyrelation.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown PersonPropertyRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonPropertyRelationMutation) AddedFields() []string {
	var fields []string
	if m.addownership_share != nil {
		fields = append(fields, personpropertyrelation.FieldOwnershipShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonPropertyRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case personpropertyrelation.FieldOwnershipShare:
		return m.AddedOwnershipShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonPropertyRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case personpropertyrelation.FieldOwnershipShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnershipShare(v)
		return nil
	}
	return fmt.Errorf("unknown PersonPropertyRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonPropertyRelationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personpropertyrelation.FieldSourcePackageID) {
		fields = append(fields, personpropertyrelation.FieldSourcePackageID)
	}
	if m.FieldCleared(personpropertyrelation.FieldStartDate) {
		fields = append(fields, personpropertyrelation.FieldStartDate)
	}
	if m.FieldCleared(personpropertyrelation.FieldNotes) {
		fields = append(fields, personpropertyrelation.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonPropertyRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonPropertyRelationMutation) ClearField(name string) error {
	switch name {
	case personpropertyrelation.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case personpropertyrelation.FieldStartDate:
		m.ClearStartDate()
		return nil
	case personpropertyrelation.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown PersonPropertyRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonPropertyRelationMutation) ResetField(name string) error {
	switch name {
	case personpropertyrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case personpropertyrelation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case personpropertyrelation.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case personpropertyrelation.FieldPersonID:
		m.ResetPersonID()
		return nil
	case personpropertyrelation.FieldPropertyUnitID:
		m.ResetPropertyUnitID()
		return nil
	case personpropertyrelation.FieldRelationTypeCode:
		m.ResetRelationTypeCode()
		return nil
	case personpropertyrelation.FieldOwnershipShare:
		m.ResetOwnershipShare()
		return nil
	case personpropertyrelation.FieldStartDate:
		m.ResetStartDate()
		return nil
	case personpropertyrelation.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown PersonPropertyRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonPropertyRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonPropertyRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonPropertyRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonPropertyRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonPropertyRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonPropertyRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonPropertyRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PersonPropertyRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonPropertyRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PersonPropertyRelation edge %s", name)
}

// PropertyUnitMutation represents an operation that mutates the PropertyUnit nodes in the graph.
type PropertyUnitMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	source_package_id     *uuid.UUID
	building_id           *uuid.UUID
	unit_identifier       *string
	composite_identifier  *string
	floor_number          *int
	addfloor_number       *int
	unit_type_code        *string
	occupancy_status_code *string
	area_sqm              *float64
	addarea_sqm           *float64
	room_count            *int
	addroom_count         *int
	notes                 *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PropertyUnit, error)
	predicates            []predicate.PropertyUnit
}

var _ ent.Mutation = (*PropertyUnitMutation)(nil)

// propertyunitOption allows management of the mutation configuration using functional options.
type propertyunitOption func(*PropertyUnitMutation)

// newPropertyUnitMutation creates new mutation for the PropertyUnit entity.
func newPropertyUnitMutation(c config, op Op, opts ...propertyunitOption) *PropertyUnitMutation {
	m := &PropertyUnitMutation{
		config:        c,
		op:            op,
		typ:           TypePropertyUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPropertyUnitID sets the ID field of the mutation.
func withPropertyUnitID(id uuid.UUID) propertyunitOption {
	return func(m *PropertyUnitMutation) {
		var (
			err   error
			once  sync.Once
			value *PropertyUnit
		)
		m.oldValue = func(ctx context.Context) (*PropertyUnit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PropertyUnit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPropertyUnit sets the old PropertyUnit of the mutation.
func withPropertyUnit(node *PropertyUnit) propertyunitOption {
	return func(m *PropertyUnitMutation) {
		m.oldValue = func(context.Context) (*PropertyUnit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PropertyUnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PropertyUnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PropertyUnit entities.
func (m *PropertyUnitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PropertyUnitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PropertyUnitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PropertyUnit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PropertyUnitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PropertyUnitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PropertyUnitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PropertyUnitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PropertyUnitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PropertyUnitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *PropertyUnitMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *PropertyUnitMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *PropertyUnitMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[propertyunit.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *PropertyUnitMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *PropertyUnitMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, propertyunit.FieldSourcePackageID)
}

// SetBuildingID sets the "building_id" field.
func (m *PropertyUnitMutation) SetBuildingID(u uuid.UUID) {
	m.building_id = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *PropertyUnitMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *PropertyUnitMutation) ResetBuildingID() {
	m.building_id = nil
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (m *PropertyUnitMutation) SetUnitIdentifier(s string) {
	m.unit_identifier = &s
}

// UnitIdentifier returns the value of the "unit_identifier" field in the mutation.
func (m *PropertyUnitMutation) UnitIdentifier() (r string, exists bool) {
	v := m.unit_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitIdentifier returns the old "unit_identifier" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldUnitIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitIdentifier: %w", err)
	}
	return oldValue.UnitIdentifier, nil
}

// ResetUnitIdentifier resets all changes to the "unit_identifier" field.
func (m *PropertyUnitMutation) ResetUnitIdentifier() {
	m.unit_identifier = nil
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (m *PropertyUnitMutation) SetCompositeIdentifier(s string) {
	m.composite_identifier = &s
}

// CompositeIdentifier returns the value of the "composite_identifier" field in the mutation.
func (m *PropertyUnitMutation) CompositeIdentifier() (r string, exists bool) {
	v := m.composite_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeIdentifier returns the old "composite_identifier" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldCompositeIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeIdentifier: %w", err)
	}
	return oldValue.CompositeIdentifier, nil
}

// ResetCompositeIdentifier resets all changes to the "composite_identifier" field.
func (m *PropertyUnitMutation) ResetCompositeIdentifier() {
	m.composite_identifier = nil
}

// SetFloorNumber sets the "floor_number" field.
func (m *PropertyUnitMutation) SetFloorNumber(i int) {
	m.floor_number = &i
	m.addfloor_number = nil
}

// FloorNumber returns the value of the "floor_number" field in the mutation.
func (m *PropertyUnitMutation) FloorNumber() (r int, exists bool) {
	v := m.floor_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFloorNumber returns the old "floor_number" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldFloorNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFloorNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFloorNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFloorNumber: %w", err)
	}
	return oldValue.FloorNumber, nil
}

// AddFloorNumber adds i to the "floor_number" field.
func (m *PropertyUnitMutation) AddFloorNumber(i int) {
	if m.addfloor_number != nil {
		*m.addfloor_number += i
	} else {
		m.addfloor_number = &i
	}
}

// AddedFloorNumber returns the value that was added to the "floor_number" field in this mutation.
func (m *PropertyUnitMutation) AddedFloorNumber() (r int, exists bool) {
	v := m.addfloor_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetFloorNumber resets all changes to the "floor_number" field.
func (m *PropertyUnitMutation) ResetFloorNumber() {
	m.floor_number = nil
	m.addfloor_number = nil
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (m *PropertyUnitMutation) SetUnitTypeCode(s string) {
	m.unit_type_code = &s
}

// UnitTypeCode returns the value of the "unit_type_code" field in the mutation.
func (m *PropertyUnitMutation) UnitTypeCode() (r string, exists bool) {
	v := m.unit_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitTypeCode returns the old "unit_type_code" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldUnitTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitTypeCode: %w", err)
	}
	return oldValue.UnitTypeCode, nil
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (m *PropertyUnitMutation) ClearUnitTypeCode() {
	m.unit_type_code = nil
	m.clearedFields[propertyunit.FieldUnitTypeCode] = struct{}{}
}

// UnitTypeCodeCleared returns if the "unit_type_code" field was cleared in this mutation.
func (m *PropertyUnitMutation) UnitTypeCodeCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldUnitTypeCode]
	return ok
}

// ResetUnitTypeCode resets all changes to the "unit_type_code" field.
func (m *PropertyUnitMutation) ResetUnitTypeCode() {
	m.unit_type_code = nil
	delete(m.clearedFields, propertyunit.FieldUnitTypeCode)
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (m *PropertyUnitMutation) SetOccupancyStatusCode(s string) {
	m.occupancy_status_code = &s
}

// OccupancyStatusCode returns the value of the "occupancy_status_code" field in the mutation.
func (m *PropertyUnitMutation) OccupancyStatusCode() (r string, exists bool) {
	v := m.occupancy_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOccupancyStatusCode returns the old "occupancy_status_code" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldOccupancyStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccupancyStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccupancyStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccupancyStatusCode: %w", err)
	}
	return oldValue.OccupancyStatusCode, nil
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (m *PropertyUnitMutation) ClearOccupancyStatusCode() {
	m.occupancy_status_code = nil
	m.clearedFields[propertyunit.FieldOccupancyStatusCode] = struct{}{}
}

// OccupancyStatusCodeCleared returns if the "occupancy_status_code" field was cleared in this mutation.
func (m *PropertyUnitMutation) OccupancyStatusCodeCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldOccupancyStatusCode]
	return ok
}

// ResetOccupancyStatusCode resets all changes to the "occupancy_status_code" field.
func (m *PropertyUnitMutation) ResetOccupancyStatusCode() {
	m.occupancy_status_code = nil
	delete(m.clearedFields, propertyunit.FieldOccupancyStatusCode)
}

// SetAreaSqm sets the "area_sqm" field.
func (m *PropertyUnitMutation) SetAreaSqm(f float64) {
	m.area_sqm = &f
	m.addarea_sqm = nil
}

// AreaSqm returns the value of the "area_sqm" field in the mutation.
func (m *PropertyUnitMutation) AreaSqm() (r float64, exists bool) {
	v := m.area_sqm
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaSqm returns the old "area_sqm" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldAreaSqm(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaSqm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaSqm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaSqm: %w", err)
	}
	return oldValue.AreaSqm, nil
}

// AddAreaSqm adds f to the "area_sqm" field.
func (m *PropertyUnitMutation) AddAreaSqm(f float64) {
	if m.addarea_sqm != nil {
		*m.addarea_sqm += f
	} else {
		m.addarea_sqm = &f
	}
}

// AddedAreaSqm returns the value that was added to the "area_sqm" field in this mutation.
func (m *PropertyUnitMutation) AddedAreaSqm() (r float64, exists bool) {
	v := m.addarea_sqm
	if v == nil {
		return
	}
	return *v, true
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (m *PropertyUnitMutation) ClearAreaSqm() {
	m.area_sqm = nil
	m.addarea_sqm = nil
	m.clearedFields[propertyunit.FieldAreaSqm] = struct{}{}
}

// AreaSqmCleared returns if the "area_sqm" field was cleared in this mutation.
func (m *PropertyUnitMutation) AreaSqmCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldAreaSqm]
	return ok
}

// ResetAreaSqm resets all changes to the "area_sqm" field.
func (m *PropertyUnitMutation) ResetAreaSqm() {
	m.area_sqm = nil
	m.addarea_sqm = nil
	delete(m.clearedFields, propertyunit.FieldAreaSqm)
}

// SetRoomCount sets the "room_count" field.
func (m *PropertyUnitMutation) SetRoomCount(i int) {
	m.room_count = &i
	m.addroom_count = nil
}

// RoomCount returns the value of the "room_count" field in the mutation.
func (m *PropertyUnitMutation) RoomCount() (r int, exists bool) {
	v := m.room_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomCount returns the old "room_count" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldRoomCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomCount: %w", err)
	}
	return oldValue.RoomCount, nil
}

// AddRoomCount adds i to the "room_count" field.
func (m *PropertyUnitMutation) AddRoomCount(i int) {
	if m.addroom_count != nil {
		*m.addroom_count += i
	} else {
		m.addroom_count = &i
	}
}

// AddedRoomCount returns the value that was added to the "room_count" field in this mutation.
func (m *PropertyUnitMutation) AddedRoomCount() (r int, exists bool) {
	v := m.addroom_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearRoomCount clears the value of the "room_count" field.
func (m *PropertyUnitMutation) ClearRoomCount() {
	m.room_count = nil
	m.addroom_count = nil
	m.clearedFields[propertyunit.FieldRoomCount] = struct{}{}
}

// RoomCountCleared returns if the "room_count" field was cleared in this mutation.
func (m *PropertyUnitMutation) RoomCountCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldRoomCount]
	return ok
}

// ResetRoomCount resets all changes to the "room_count" field.
func (m *PropertyUnitMutation) ResetRoomCount() {
	m.room_count = nil
	m.addroom_count = nil
	delete(m.clearedFields, propertyunit.FieldRoomCount)
}

// SetNotes sets the "notes" field.
func (m *PropertyUnitMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PropertyUnitMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PropertyUnit entity.
// If the PropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyUnitMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PropertyUnitMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[propertyunit.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PropertyUnitMutation) NotesCleared() bool {
	_, ok := m.clearedFields[propertyunit.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PropertyUnitMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, propertyunit.FieldNotes)
}

// Where appends a list predicates to the PropertyUnitMutation builder.
func (m *PropertyUnitMutation) Where(ps ...predicate.PropertyUnit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PropertyUnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PropertyUnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PropertyUnit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PropertyUnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PropertyUnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PropertyUnit).
func (m *PropertyUnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PropertyUnitMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, propertyunit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, propertyunit.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, propertyunit.FieldSourcePackageID)
	}
	if m.building_id != nil {
		fields = append(fields, propertyunit.FieldBuildingID)
	}
	if m.unit_identifier != nil {
		fields = append(fields, propertyunit.FieldUnitIdentifier)
	}
	if m.composite_identifier != nil {
		fields = append(fields, propertyunit.FieldCompositeIdentifier)
	}
	if m.floor_number != nil {
		fields = append(fields, propertyunit.FieldFloorNumber)
	}
	if m.unit_type_code != nil {
		fields = append(fields, propertyunit.FieldUnitTypeCode)
	}
	if m.occupancy_status_code != nil {
		fields = append(fields, propertyunit.FieldOccupancyStatusCode)
	}
	if m.area_sqm != nil {
		fields = append(fields, propertyunit.FieldAreaSqm)
	}
	if m.room_count != nil {
		fields = append(fields, propertyunit.FieldRoomCount)
	}
	if m.notes != nil {
		fields = append(fields, propertyunit.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PropertyUnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case propertyunit.FieldCreatedAt:
		return m.CreatedAt()
	case propertyunit.FieldUpdatedAt:
		return m.UpdatedAt()
	case propertyunit.FieldSourcePackageID:
		return m.SourcePackageID()
	case propertyunit.FieldBuildingID:
		return m.BuildingID()
	case propertyunit.FieldUnitIdentifier:
		return m.UnitIdentifier()
	case propertyunit.FieldCompositeIdentifier:
		return m.CompositeIdentifier()
	case propertyunit.FieldFloorNumber:
		return m.FloorNumber()
	case propertyunit.FieldUnitTypeCode:
		return m.UnitTypeCode()
	case propertyunit.FieldOccupancyStatusCode:
		return m.OccupancyStatusCode()
	case propertyunit.FieldAreaSqm:
		return m.AreaSqm()
	case propertyunit.FieldRoomCount:
		return m.RoomCount()
	case propertyunit.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PropertyUnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case propertyunit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case propertyunit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case propertyunit.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case propertyunit.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case propertyunit.FieldUnitIdentifier:
		return m.OldUnitIdentifier(ctx)
	case propertyunit.FieldCompositeIdentifier:
		return m.OldCompositeIdentifier(ctx)
	case propertyunit.FieldFloorNumber:
		return m.OldFloorNumber(ctx)
	case propertyunit.FieldUnitTypeCode:
		return m.OldUnitTypeCode(ctx)
	case propertyunit.FieldOccupancyStatusCode:
		return m.OldOccupancyStatusCode(ctx)
	case propertyunit.FieldAreaSqm:
		return m.OldAreaSqm(ctx)
	case propertyunit.FieldRoomCount:
		return m.OldRoomCount(ctx)
	case propertyunit.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown PropertyUnit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyUnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case propertyunit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case propertyunit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case propertyunit.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case propertyunit.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case propertyunit.FieldUnitIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitIdentifier(v)
		return nil
	case propertyunit.FieldCompositeIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeIdentifier(v)
		return nil
	case propertyunit.FieldFloorNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFloorNumber(v)
		return nil
	case propertyunit.FieldUnitTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitTypeCode(v)
		return nil
	case propertyunit.FieldOccupancyStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccupancyStatusCode(v)
		return nil
	case propertyunit.FieldAreaSqm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaSqm(v)
		return nil
	case propertyunit.FieldRoomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomCount(v)
		return nil
	case propertyunit.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown PropertyUnit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PropertyUnitMutation) AddedFields() []string {
	var fields []string
	if m.addfloor_number != nil {
		fields = append(fields, propertyunit.FieldFloorNumber)
	}
	if m.addarea_sqm != nil {
		fields = append(fields, propertyunit.FieldAreaSqm)
	}
	if m.addroom_count != nil {
		fields = append(fields, propertyunit.FieldRoomCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PropertyUnitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case propertyunit.FieldFloorNumber:
		return m.AddedFloorNumber()
	case propertyunit.FieldAreaSqm:
		return m.AddedAreaSqm()
	case propertyunit.FieldRoomCount:
		return m.AddedRoomCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyUnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case propertyunit.FieldFloorNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFloorNumber(v)
		return nil
	case propertyunit.FieldAreaSqm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaSqm(v)
		return nil
	case propertyunit.FieldRoomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoomCount(v)
		return nil
	}
	return fmt.Errorf("unknown PropertyUnit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PropertyUnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(propertyunit.FieldSourcePackageID) {
		fields = append(fields, propertyunit.FieldSourcePackageID)
	}
	if m.FieldCleared(propertyunit.FieldUnitTypeCode) {
		fields = append(fields, propertyunit.FieldUnitTypeCode)
	}
	if m.FieldCleared(propertyunit.FieldOccupancyStatusCode) {
		fields = append(fields, propertyunit.FieldOccupancyStatusCode)
	}
	if m.FieldCleared(propertyunit.FieldAreaSqm) {
		fields = append(fields, propertyunit.FieldAreaSqm)
	}
	if m.FieldCleared(propertyunit.FieldRoomCount) {
		fields = append(fields, propertyunit.FieldRoomCount)
	}
	if m.FieldCleared(propertyunit.FieldNotes) {
		fields = append(fields, propertyunit.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PropertyUnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PropertyUnitMutation) ClearField(name string) error {
	switch name {
	case propertyunit.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case propertyunit.FieldUnitTypeCode:
		m.ClearUnitTypeCode()
		return nil
	case propertyunit.FieldOccupancyStatusCode:
		m.ClearOccupancyStatusCode()
		return nil
	case propertyunit.FieldAreaSqm:
		m.ClearAreaSqm()
		return nil
	case propertyunit.FieldRoomCount:
		m.ClearRoomCount()
		return nil
	case propertyunit.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown PropertyUnit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PropertyUnitMutation) ResetField(name string) error {
	switch name {
	case propertyunit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case propertyunit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case propertyunit.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case propertyunit.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case propertyunit.FieldUnitIdentifier:
		m.ResetUnitIdentifier()
		return nil
	case propertyunit.FieldCompositeIdentifier:
		m.ResetCompositeIdentifier()
		return nil
	case propertyunit.FieldFloorNumber:
		m.ResetFloorNumber()
		return nil
	case propertyunit.FieldUnitTypeCode:
		m.ResetUnitTypeCode()
		return nil
	case propertyunit.FieldOccupancyStatusCode:
		m.ResetOccupancyStatusCode()
		return nil
	case propertyunit.FieldAreaSqm:
		m.ResetAreaSqm()
		return nil
	case propertyunit.FieldRoomCount:
		m.ResetRoomCount()
		return nil
	case propertyunit.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown PropertyUnit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PropertyUnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PropertyUnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PropertyUnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PropertyUnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PropertyUnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PropertyUnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PropertyUnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PropertyUnit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PropertyUnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PropertyUnit edge %s", name)
}

// ReferralMutation represents an operation that mutates the Referral nodes in the graph.
type ReferralMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	source_package_id    *uuid.UUID
	claim_id             *uuid.UUID
	referral_reason_code *string
	referred_to_agency   *string
	referral_date        *time.Time
	notes                *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Referral, error)
	predicates           []predicate.Referral
}

var _ ent.Mutation = (*ReferralMutation)(nil)

// referralOption allows management of the mutation configuration using functional options.
type referralOption func(*ReferralMutation)

// newReferralMutation creates new mutation for the Referral entity.
func newReferralMutation(c config, op Op, opts ...referralOption) *ReferralMutation {
	m := &ReferralMutation{
		config:        c,
		op:            op,
		typ:           TypeReferral,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferralID sets the ID field of the mutation.
func withReferralID(id uuid.UUID) referralOption {
	return func(m *ReferralMutation) {
		var (
			err   error
			once  sync.Once
			value *Referral
		)
		m.oldValue = func(ctx context.Context) (*Referral, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Referral.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferral sets the old Referral of the mutation.
func withReferral(node *Referral) referralOption {
	return func(m *ReferralMutation) {
		m.oldValue = func(context.Context) (*Referral, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferralMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferralMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Referral entities.
func (m *ReferralMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferralMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferralMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Referral.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferralMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferralMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferralMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReferralMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReferralMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReferralMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *ReferralMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *ReferralMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *ReferralMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[referral.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *ReferralMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[referral.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *ReferralMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, referral.FieldSourcePackageID)
}

// SetClaimID sets the "claim_id" field.
func (m *ReferralMutation) SetClaimID(u uuid.UUID) {
	m.claim_id = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *ReferralMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *ReferralMutation) ResetClaimID() {
	m.claim_id = nil
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (m *ReferralMutation) SetReferralReasonCode(s string) {
	m.referral_reason_code = &s
}

// ReferralReasonCode returns the value of the "referral_reason_code" field in the mutation.
func (m *ReferralMutation) ReferralReasonCode() (r string, exists bool) {
	v := m.referral_reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralReasonCode returns the old "referral_reason_code" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldReferralReasonCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralReasonCode: %w", err)
	}
	return oldValue.ReferralReasonCode, nil
}

// ResetReferralReasonCode resets all changes to the "referral_reason_code" field.
func (m *ReferralMutation) ResetReferralReasonCode() {
	m.referral_reason_code = nil
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (m *ReferralMutation) SetReferredToAgency(s string) {
	m.referred_to_agency = &s
}

// ReferredToAgency returns the value of the "referred_to_agency" field in the mutation.
func (m *ReferralMutation) ReferredToAgency() (r string, exists bool) {
	v := m.referred_to_agency
	if v == nil {
		return
	}
	return *v, true
}

// OldReferredToAgency returns the old "referred_to_agency" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldReferredToAgency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferredToAgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferredToAgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferredToAgency: %w", err)
	}
	return oldValue.ReferredToAgency, nil
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (m *ReferralMutation) ClearReferredToAgency() {
	m.referred_to_agency = nil
	m.clearedFields[referral.FieldReferredToAgency] = struct{}{}
}

// ReferredToAgencyCleared returns if the "referred_to_agency" field was cleared in this mutation.
func (m *ReferralMutation) ReferredToAgencyCleared() bool {
	_, ok := m.clearedFields[referral.FieldReferredToAgency]
	return ok
}

// ResetReferredToAgency resets all changes to the "referred_to_agency" field.
func (m *ReferralMutation) ResetReferredToAgency() {
	m.referred_to_agency = nil
	delete(m.clearedFields, referral.FieldReferredToAgency)
}

// SetReferralDate sets the "referral_date" field.
func (m *ReferralMutation) SetReferralDate(t time.Time) {
	m.referral_date = &t
}

// ReferralDate returns the value of the "referral_date" field in the mutation.
func (m *ReferralMutation) ReferralDate() (r time.Time, exists bool) {
	v := m.referral_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralDate returns the old "referral_date" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldReferralDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralDate: %w", err)
	}
	return oldValue.ReferralDate, nil
}

// ClearReferralDate clears the value of the "referral_date" field.
func (m *ReferralMutation) ClearReferralDate() {
	m.referral_date = nil
	m.clearedFields[referral.FieldReferralDate] = struct{}{}
}

// ReferralDateCleared returns if the "referral_date" field was cleared in this mutation.
func (m *ReferralMutation) ReferralDateCleared() bool {
	_, ok := m.clearedFields[referral.FieldReferralDate]
	return ok
}

// ResetReferralDate resets all changes to the "referral_date" field.
func (m *ReferralMutation) ResetReferralDate() {
	m.referral_date = nil
	delete(m.clearedFields, referral.FieldReferralDate)
}

// SetNotes sets the "notes" field.
func (m *ReferralMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReferralMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ReferralMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[referral.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ReferralMutation) NotesCleared() bool {
	_, ok := m.clearedFields[referral.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReferralMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, referral.FieldNotes)
}

// Where appends a list predicates to the ReferralMutation builder.
func (m *ReferralMutation) Where(ps ...predicate.Referral) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferralMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferralMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Referral, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferralMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferralMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Referral).
func (m *ReferralMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferralMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, referral.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, referral.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, referral.FieldSourcePackageID)
	}
	if m.claim_id != nil {
		fields = append(fields, referral.FieldClaimID)
	}
	if m.referral_reason_code != nil {
		fields = append(fields, referral.FieldReferralReasonCode)
	}
	if m.referred_to_agency != nil {
		fields = append(fields, referral.FieldReferredToAgency)
	}
	if m.referral_date != nil {
		fields = append(fields, referral.FieldReferralDate)
	}
	if m.notes != nil {
		fields = append(fields, referral.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferralMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referral.FieldCreatedAt:
		return m.CreatedAt()
	case referral.FieldUpdatedAt:
		return m.UpdatedAt()
	case referral.FieldSourcePackageID:
		return m.SourcePackageID()
	case referral.FieldClaimID:
		return m.ClaimID()
	case referral.FieldReferralReasonCode:
		return m.ReferralReasonCode()
	case referral.FieldReferredToAgency:
		return m.ReferredToAgency()
	case referral.FieldReferralDate:
		return m.ReferralDate()
	case referral.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferralMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referral.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case referral.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case referral.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case referral.FieldClaimID:
		return m.OldClaimID(ctx)
	case referral.FieldReferralReasonCode:
		return m.OldReferralReasonCode(ctx)
	case referral.FieldReferredToAgency:
		return m.OldReferredToAgency(ctx)
	case referral.FieldReferralDate:
		return m.OldReferralDate(ctx)
	case referral.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Referral field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referral.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case referral.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case referral.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case referral.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case referral.FieldReferralReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralReasonCode(v)
		return nil
	case referral.FieldReferredToAgency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferredToAgency(v)
		return nil
	case referral.FieldReferralDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralDate(v)
		return nil
	case referral.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Referral field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferralMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferralMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Referral numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferralMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(referral.FieldSourcePackageID) {
		fields = append(fields, referral.FieldSourcePackageID)
	}
	if m.FieldCleared(referral.FieldReferredToAgency) {
		fields = append(fields, referral.FieldReferredToAgency)
	}
	if m.FieldCleared(referral.FieldReferralDate) {
		fields = append(fields, referral.FieldReferralDate)
	}
	if m.FieldCleared(referral.FieldNotes) {
		fields = append(fields, referral.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferralMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferralMutation) ClearField(name string) error {
	switch name {
	case referral.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case referral.FieldReferredToAgency:
		m.ClearReferredToAgency()
		return nil
	case referral.FieldReferralDate:
		m.ClearReferralDate()
		return nil
	case referral.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Referral nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferralMutation) ResetField(name string) error {
	switch name {
	case referral.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case referral.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case referral.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case referral.FieldClaimID:
		m.ResetClaimID()
		return nil
	case referral.FieldReferralReasonCode:
		m.ResetReferralReasonCode()
		return nil
	case referral.FieldReferredToAgency:
		m.ResetReferredToAgency()
		return nil
	case referral.FieldReferralDate:
		m.ResetReferralDate()
		return nil
	case referral.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Referral field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferralMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferralMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferralMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferralMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferralMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferralMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferralMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Referral unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferralMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Referral edge %s", name)
}

// StagingBuildingMutation represents an operation that mutates the StagingBuilding nodes in the graph.
type StagingBuildingMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingbuilding.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.BuildingRecord
	building_code       *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingBuilding, error)
	predicates          []predicate.StagingBuilding
}

var _ ent.Mutation = (*StagingBuildingMutation)(nil)

// stagingbuildingOption allows management of the mutation configuration using functional options.
type stagingbuildingOption func(*StagingBuildingMutation)

// newStagingBuildingMutation creates new mutation for the StagingBuilding entity.
func newStagingBuildingMutation(c config, op Op, opts ...stagingbuildingOption) *StagingBuildingMutation {
	m := &StagingBuildingMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingBuilding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingBuildingID sets the ID field of the mutation.
func withStagingBuildingID(id uuid.UUID) stagingbuildingOption {
	return func(m *StagingBuildingMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingBuilding
		)
		m.oldValue = func(ctx context.Context) (*StagingBuilding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingBuilding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingBuilding sets the old StagingBuilding of the mutation.
func withStagingBuilding(node *StagingBuilding) stagingbuildingOption {
	return func(m *StagingBuildingMutation) {
		m.oldValue = func(context.Context) (*StagingBuilding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingBuildingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingBuildingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingBuilding entities.
func (m *StagingBuildingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingBuildingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingBuildingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingBuilding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingBuildingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingBuildingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingBuildingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingBuildingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingBuildingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingBuildingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingBuildingMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingBuildingMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingBuildingMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingBuildingMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingBuildingMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingBuildingMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingBuildingMutation) SetValidationStatus(ss stagingbuilding.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingBuildingMutation) ValidationStatus() (r stagingbuilding.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldValidationStatus(ctx context.Context) (v stagingbuilding.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingBuildingMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingBuildingMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingBuildingMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingBuildingMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingBuildingMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingBuildingMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingbuilding.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingBuildingMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingbuilding.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingBuildingMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingbuilding.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingBuildingMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingBuildingMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingBuildingMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingBuildingMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingBuildingMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingBuildingMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingbuilding.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingBuildingMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingbuilding.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingBuildingMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingbuilding.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingBuildingMutation) SetPayload(dr *domain.BuildingRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingBuildingMutation) Payload() (r *domain.BuildingRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldPayload(ctx context.Context) (v *domain.BuildingRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingBuildingMutation) ResetPayload() {
	m.payload = nil
}

// SetBuildingCode sets the "building_code" field.
func (m *StagingBuildingMutation) SetBuildingCode(s string) {
	m.building_code = &s
}

// BuildingCode returns the value of the "building_code" field in the mutation.
func (m *StagingBuildingMutation) BuildingCode() (r string, exists bool) {
	v := m.building_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingCode returns the old "building_code" field's value of the StagingBuilding entity.
// If the StagingBuilding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingBuildingMutation) OldBuildingCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingCode: %w", err)
	}
	return oldValue.BuildingCode, nil
}

// ClearBuildingCode clears the value of the "building_code" field.
func (m *StagingBuildingMutation) ClearBuildingCode() {
	m.building_code = nil
	m.clearedFields[stagingbuilding.FieldBuildingCode] = struct{}{}
}

// BuildingCodeCleared returns if the "building_code" field was cleared in this mutation.
func (m *StagingBuildingMutation) BuildingCodeCleared() bool {
	_, ok := m.clearedFields[stagingbuilding.FieldBuildingCode]
	return ok
}

// ResetBuildingCode resets all changes to the "building_code" field.
func (m *StagingBuildingMutation) ResetBuildingCode() {
	m.building_code = nil
	delete(m.clearedFields, stagingbuilding.FieldBuildingCode)
}

// Where appends a list predicates to the StagingBuildingMutation builder.
func (m *StagingBuildingMutation) Where(ps ...predicate.StagingBuilding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingBuildingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingBuildingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingBuilding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingBuildingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingBuildingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingBuilding).
func (m *StagingBuildingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingBuildingMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, stagingbuilding.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingbuilding.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingbuilding.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingbuilding.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingbuilding.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingbuilding.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingbuilding.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingbuilding.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingbuilding.FieldPayload)
	}
	if m.building_code != nil {
		fields = append(fields, stagingbuilding.FieldBuildingCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingBuildingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingbuilding.FieldCreatedAt:
		return m.CreatedAt()
	case stagingbuilding.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingbuilding.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingbuilding.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingbuilding.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingbuilding.FieldDiagnostics:
		return m.Diagnostics()
	case stagingbuilding.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingbuilding.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingbuilding.FieldPayload:
		return m.Payload()
	case stagingbuilding.FieldBuildingCode:
		return m.BuildingCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingBuildingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingbuilding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingbuilding.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingbuilding.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingbuilding.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingbuilding.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingbuilding.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingbuilding.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingbuilding.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingbuilding.FieldPayload:
		return m.OldPayload(ctx)
	case stagingbuilding.FieldBuildingCode:
		return m.OldBuildingCode(ctx)
	}
	return nil, fmt.Errorf("unknown StagingBuilding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingBuildingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingbuilding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingbuilding.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingbuilding.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingbuilding.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingbuilding.FieldValidationStatus:
		v, ok := value.(stagingbuilding.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingbuilding.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingbuilding.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingbuilding.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingbuilding.FieldPayload:
		v, ok := value.(*domain.BuildingRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagingbuilding.FieldBuildingCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingCode(v)
		return nil
	}
	return fmt.Errorf("unknown StagingBuilding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingBuildingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingBuildingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingBuildingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingBuilding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingBuildingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingbuilding.FieldDiagnostics) {
		fields = append(fields, stagingbuilding.FieldDiagnostics)
	}
	if m.FieldCleared(stagingbuilding.FieldCommittedEntityID) {
		fields = append(fields, stagingbuilding.FieldCommittedEntityID)
	}
	if m.FieldCleared(stagingbuilding.FieldBuildingCode) {
		fields = append(fields, stagingbuilding.FieldBuildingCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingBuildingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingBuildingMutation) ClearField(name string) error {
	switch name {
	case stagingbuilding.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingbuilding.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	case stagingbuilding.FieldBuildingCode:
		m.ClearBuildingCode()
		return nil
	}
	return fmt.Errorf("unknown StagingBuilding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingBuildingMutation) ResetField(name string) error {
	switch name {
	case stagingbuilding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingbuilding.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingbuilding.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingbuilding.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingbuilding.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingbuilding.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingbuilding.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingbuilding.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingbuilding.FieldPayload:
		m.ResetPayload()
		return nil
	case stagingbuilding.FieldBuildingCode:
		m.ResetBuildingCode()
		return nil
	}
	return fmt.Errorf("unknown StagingBuilding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingBuildingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingBuildingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingBuildingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingBuildingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingBuildingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingBuildingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingBuildingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingBuilding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingBuildingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingBuilding edge %s", name)
}

// StagingClaimMutation represents an operation that mutates the StagingClaim nodes in the graph.
type StagingClaimMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingclaim.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.ClaimRecord
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingClaim, error)
	predicates          []predicate.StagingClaim
}

var _ ent.Mutation = (*StagingClaimMutation)(nil)

// stagingclaimOption allows management of the mutation configuration using functional options.
type stagingclaimOption func(*StagingClaimMutation)

// newStagingClaimMutation creates new mutation for the StagingClaim entity.
func newStagingClaimMutation(c config, op Op, opts ...stagingclaimOption) *StagingClaimMutation {
	m := &StagingClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingClaimID sets the ID field of the mutation.
func withStagingClaimID(id uuid.UUID) stagingclaimOption {
	return func(m *StagingClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingClaim
		)
		m.oldValue = func(ctx context.Context) (*StagingClaim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingClaim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingClaim sets the old StagingClaim of the mutation.
func withStagingClaim(node *StagingClaim) stagingclaimOption {
	return func(m *StagingClaimMutation) {
		m.oldValue = func(context.Context) (*StagingClaim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingClaim entities.
func (m *StagingClaimMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingClaimMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingClaimMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingClaim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingClaimMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingClaimMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingClaimMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingClaimMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingClaimMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingClaimMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingClaimMutation) SetValidationStatus(ss stagingclaim.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingClaimMutation) ValidationStatus() (r stagingclaim.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldValidationStatus(ctx context.Context) (v stagingclaim.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingClaimMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingClaimMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingClaimMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingClaimMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingClaimMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingClaimMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingclaim.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingClaimMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingclaim.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingClaimMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingclaim.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingClaimMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingClaimMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingClaimMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingClaimMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingClaimMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingClaimMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingclaim.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingClaimMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingclaim.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingClaimMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingclaim.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingClaimMutation) SetPayload(dr *domain.ClaimRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingClaimMutation) Payload() (r *domain.ClaimRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingClaim entity.
// If the StagingClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingClaimMutation) OldPayload(ctx context.Context) (v *domain.ClaimRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingClaimMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the StagingClaimMutation builder.
func (m *StagingClaimMutation) Where(ps ...predicate.StagingClaim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingClaim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingClaim).
func (m *StagingClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingClaimMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, stagingclaim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingclaim.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingclaim.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingclaim.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingclaim.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingclaim.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingclaim.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingclaim.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingclaim.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingclaim.FieldCreatedAt:
		return m.CreatedAt()
	case stagingclaim.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingclaim.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingclaim.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingclaim.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingclaim.FieldDiagnostics:
		return m.Diagnostics()
	case stagingclaim.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingclaim.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingclaim.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingclaim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingclaim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingclaim.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingclaim.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingclaim.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingclaim.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingclaim.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingclaim.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingclaim.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown StagingClaim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingclaim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingclaim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingclaim.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingclaim.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingclaim.FieldValidationStatus:
		v, ok := value.(stagingclaim.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingclaim.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingclaim.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingclaim.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingclaim.FieldPayload:
		v, ok := value.(*domain.ClaimRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown StagingClaim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingClaimMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingClaimMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingClaim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingclaim.FieldDiagnostics) {
		fields = append(fields, stagingclaim.FieldDiagnostics)
	}
	if m.FieldCleared(stagingclaim.FieldCommittedEntityID) {
		fields = append(fields, stagingclaim.FieldCommittedEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingClaimMutation) ClearField(name string) error {
	switch name {
	case stagingclaim.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingclaim.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	}
	return fmt.Errorf("unknown StagingClaim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingClaimMutation) ResetField(name string) error {
	switch name {
	case stagingclaim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingclaim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingclaim.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingclaim.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingclaim.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingclaim.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingclaim.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingclaim.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingclaim.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown StagingClaim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingClaimMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingClaimMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingClaimMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingClaimMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingClaim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingClaimMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingClaim edge %s", name)
}

// StagingDocumentMutation represents an operation that mutates the StagingDocument nodes in the graph.
type StagingDocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingdocument.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.DocumentRecord
	blob_sha256         *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingDocument, error)
	predicates          []predicate.StagingDocument
}

var _ ent.Mutation = (*StagingDocumentMutation)(nil)

// stagingdocumentOption allows management of the mutation configuration using functional options.
type stagingdocumentOption func(*StagingDocumentMutation)

// newStagingDocumentMutation creates new mutation for the StagingDocument entity.
func newStagingDocumentMutation(c config, op Op, opts ...stagingdocumentOption) *StagingDocumentMutation {
	m := &StagingDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingDocumentID sets the ID field of the mutation.
func withStagingDocumentID(id uuid.UUID) stagingdocumentOption {
	return func(m *StagingDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingDocument
		)
		m.oldValue = func(ctx context.Context) (*StagingDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingDocument sets the old StagingDocument of the mutation.
func withStagingDocument(node *StagingDocument) stagingdocumentOption {
	return func(m *StagingDocumentMutation) {
		m.oldValue = func(context.Context) (*StagingDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingDocument entities.
func (m *StagingDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingDocumentMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingDocumentMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingDocumentMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingDocumentMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingDocumentMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingDocumentMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingDocumentMutation) SetValidationStatus(ss stagingdocument.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingDocumentMutation) ValidationStatus() (r stagingdocument.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldValidationStatus(ctx context.Context) (v stagingdocument.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingDocumentMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingDocumentMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingDocumentMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingDocumentMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingDocumentMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingDocumentMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingdocument.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingDocumentMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingdocument.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingDocumentMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingdocument.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingDocumentMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingDocumentMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingDocumentMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingDocumentMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingDocumentMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingDocumentMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingdocument.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingDocumentMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingdocument.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingDocumentMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingdocument.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingDocumentMutation) SetPayload(dr *domain.DocumentRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingDocumentMutation) Payload() (r *domain.DocumentRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldPayload(ctx context.Context) (v *domain.DocumentRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingDocumentMutation) ResetPayload() {
	m.payload = nil
}

// SetBlobSha256 sets the "blob_sha256" field.
func (m *StagingDocumentMutation) SetBlobSha256(s string) {
	m.blob_sha256 = &s
}

// BlobSha256 returns the value of the "blob_sha256" field in the mutation.
func (m *StagingDocumentMutation) BlobSha256() (r string, exists bool) {
	v := m.blob_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSha256 returns the old "blob_sha256" field's value of the StagingDocument entity.
// If the StagingDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingDocumentMutation) OldBlobSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSha256: %w", err)
	}
	return oldValue.BlobSha256, nil
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (m *StagingDocumentMutation) ClearBlobSha256() {
	m.blob_sha256 = nil
	m.clearedFields[stagingdocument.FieldBlobSha256] = struct{}{}
}

// BlobSha256Cleared returns if the "blob_sha256" field was cleared in this mutation.
func (m *StagingDocumentMutation) BlobSha256Cleared() bool {
	_, ok := m.clearedFields[stagingdocument.FieldBlobSha256]
	return ok
}

// ResetBlobSha256 resets all changes to the "blob_sha256" field.
func (m *StagingDocumentMutation) ResetBlobSha256() {
	m.blob_sha256 = nil
	delete(m.clearedFields, stagingdocument.FieldBlobSha256)
}

// Where appends a list predicates to the StagingDocumentMutation builder.
func (m *StagingDocumentMutation) Where(ps ...predicate.StagingDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingDocument).
func (m *StagingDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingDocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, stagingdocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingdocument.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingdocument.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingdocument.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingdocument.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingdocument.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingdocument.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingdocument.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingdocument.FieldPayload)
	}
	if m.blob_sha256 != nil {
		fields = append(fields, stagingdocument.FieldBlobSha256)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingdocument.FieldCreatedAt:
		return m.CreatedAt()
	case stagingdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingdocument.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingdocument.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingdocument.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingdocument.FieldDiagnostics:
		return m.Diagnostics()
	case stagingdocument.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingdocument.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingdocument.FieldPayload:
		return m.Payload()
	case stagingdocument.FieldBlobSha256:
		return m.BlobSha256()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingdocument.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingdocument.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingdocument.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingdocument.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingdocument.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingdocument.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingdocument.FieldPayload:
		return m.OldPayload(ctx)
	case stagingdocument.FieldBlobSha256:
		return m.OldBlobSha256(ctx)
	}
	return nil, fmt.Errorf("unknown StagingDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingdocument.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingdocument.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingdocument.FieldValidationStatus:
		v, ok := value.(stagingdocument.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingdocument.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingdocument.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingdocument.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingdocument.FieldPayload:
		v, ok := value.(*domain.DocumentRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagingdocument.FieldBlobSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSha256(v)
		return nil
	}
	return fmt.Errorf("unknown StagingDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingdocument.FieldDiagnostics) {
		fields = append(fields, stagingdocument.FieldDiagnostics)
	}
	if m.FieldCleared(stagingdocument.FieldCommittedEntityID) {
		fields = append(fields, stagingdocument.FieldCommittedEntityID)
	}
	if m.FieldCleared(stagingdocument.FieldBlobSha256) {
		fields = append(fields, stagingdocument.FieldBlobSha256)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingDocumentMutation) ClearField(name string) error {
	switch name {
	case stagingdocument.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingdocument.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	case stagingdocument.FieldBlobSha256:
		m.ClearBlobSha256()
		return nil
	}
	return fmt.Errorf("unknown StagingDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingDocumentMutation) ResetField(name string) error {
	switch name {
	case stagingdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingdocument.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingdocument.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingdocument.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingdocument.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingdocument.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingdocument.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingdocument.FieldPayload:
		m.ResetPayload()
		return nil
	case stagingdocument.FieldBlobSha256:
		m.ResetBlobSha256()
		return nil
	}
	return fmt.Errorf("unknown StagingDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingDocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingDocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingDocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingDocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingDocument edge %s", name)
}

// StagingEvidenceMutation represents an operation that mutates the StagingEvidence nodes in the graph.
type StagingEvidenceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingevidence.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.EvidenceRecord
	blob_sha256         *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingEvidence, error)
	predicates          []predicate.StagingEvidence
}

var _ ent.Mutation = (*StagingEvidenceMutation)(nil)

// stagingevidenceOption allows management of the mutation configuration using functional options.
type stagingevidenceOption func(*StagingEvidenceMutation)

// newStagingEvidenceMutation creates new mutation for the StagingEvidence entity.
func newStagingEvidenceMutation(c config, op Op, opts ...stagingevidenceOption) *StagingEvidenceMutation {
	m := &StagingEvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingEvidenceID sets the ID field of the mutation.
func withStagingEvidenceID(id uuid.UUID) stagingevidenceOption {
	return func(m *StagingEvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingEvidence
		)
		m.oldValue = func(ctx context.Context) (*StagingEvidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingEvidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingEvidence sets the old StagingEvidence of the mutation.
func withStagingEvidence(node *StagingEvidence) stagingevidenceOption {
	return func(m *StagingEvidenceMutation) {
		m.oldValue = func(context.Context) (*StagingEvidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingEvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingEvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingEvidence entities.
func (m *StagingEvidenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingEvidenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingEvidenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingEvidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingEvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingEvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingEvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingEvidenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingEvidenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingEvidenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingEvidenceMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingEvidenceMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingEvidenceMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingEvidenceMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingEvidenceMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingEvidenceMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingEvidenceMutation) SetValidationStatus(ss stagingevidence.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingEvidenceMutation) ValidationStatus() (r stagingevidence.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldValidationStatus(ctx context.Context) (v stagingevidence.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingEvidenceMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingEvidenceMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingEvidenceMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingEvidenceMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingEvidenceMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingEvidenceMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingevidence.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingEvidenceMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingevidence.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingEvidenceMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingevidence.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingEvidenceMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingEvidenceMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingEvidenceMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingEvidenceMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingEvidenceMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingEvidenceMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingevidence.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingEvidenceMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingevidence.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingEvidenceMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingevidence.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingEvidenceMutation) SetPayload(dr *domain.EvidenceRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingEvidenceMutation) Payload() (r *domain.EvidenceRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldPayload(ctx context.Context) (v *domain.EvidenceRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingEvidenceMutation) ResetPayload() {
	m.payload = nil
}

// SetBlobSha256 sets the "blob_sha256" field.
func (m *StagingEvidenceMutation) SetBlobSha256(s string) {
	m.blob_sha256 = &s
}

// BlobSha256 returns the value of the "blob_sha256" field in the mutation.
func (m *StagingEvidenceMutation) BlobSha256() (r string, exists bool) {
	v := m.blob_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobSha256 returns the old "blob_sha256" field's value of the StagingEvidence entity.
// If the StagingEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingEvidenceMutation) OldBlobSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobSha256: %w", err)
	}
	return oldValue.BlobSha256, nil
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (m *StagingEvidenceMutation) ClearBlobSha256() {
	m.blob_sha256 = nil
	m.clearedFields[stagingevidence.FieldBlobSha256] = struct{}{}
}

// BlobSha256Cleared returns if the "blob_sha256" field was cleared in this mutation.
func (m *StagingEvidenceMutation) BlobSha256Cleared() bool {
	_, ok := m.clearedFields[stagingevidence.FieldBlobSha256]
	return ok
}

// ResetBlobSha256 resets all changes to the "blob_sha256" field.
func (m *StagingEvidenceMutation) ResetBlobSha256() {
	m.blob_sha256 = nil
	delete(m.clearedFields, stagingevidence.FieldBlobSha256)
}

// Where appends a list predicates to the StagingEvidenceMutation builder.
func (m *StagingEvidenceMutation) Where(ps ...predicate.StagingEvidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingEvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingEvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingEvidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingEvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingEvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingEvidence).
func (m *StagingEvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingEvidenceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, stagingevidence.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingevidence.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingevidence.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingevidence.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingevidence.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingevidence.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingevidence.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingevidence.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingevidence.FieldPayload)
	}
	if m.blob_sha256 != nil {
		fields = append(fields, stagingevidence.FieldBlobSha256)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingEvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingevidence.FieldCreatedAt:
		return m.CreatedAt()
	case stagingevidence.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingevidence.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingevidence.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingevidence.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingevidence.FieldDiagnostics:
		return m.Diagnostics()
	case stagingevidence.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingevidence.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingevidence.FieldPayload:
		return m.Payload()
	case stagingevidence.FieldBlobSha256:
		return m.BlobSha256()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingEvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingevidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingevidence.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingevidence.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingevidence.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingevidence.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingevidence.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingevidence.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingevidence.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingevidence.FieldPayload:
		return m.OldPayload(ctx)
	case stagingevidence.FieldBlobSha256:
		return m.OldBlobSha256(ctx)
	}
	return nil, fmt.Errorf("unknown StagingEvidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingEvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingevidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingevidence.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingevidence.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingevidence.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingevidence.FieldValidationStatus:
		v, ok := value.(stagingevidence.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingevidence.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingevidence.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingevidence.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingevidence.FieldPayload:
		v, ok := value.(*domain.EvidenceRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagingevidence.FieldBlobSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobSha256(v)
		return nil
	}
	return fmt.Errorf("unknown StagingEvidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingEvidenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingEvidenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingEvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingEvidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingEvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingevidence.FieldDiagnostics) {
		fields = append(fields, stagingevidence.FieldDiagnostics)
	}
	if m.FieldCleared(stagingevidence.FieldCommittedEntityID) {
		fields = append(fields, stagingevidence.FieldCommittedEntityID)
	}
	if m.FieldCleared(stagingevidence.FieldBlobSha256) {
		fields = append(fields, stagingevidence.FieldBlobSha256)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingEvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingEvidenceMutation) ClearField(name string) error {
	switch name {
	case stagingevidence.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingevidence.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	case stagingevidence.FieldBlobSha256:
		m.ClearBlobSha256()
		return nil
	}
	return fmt.Errorf("unknown StagingEvidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingEvidenceMutation) ResetField(name string) error {
	switch name {
	case stagingevidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingevidence.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingevidence.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingevidence.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingevidence.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingevidence.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingevidence.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingevidence.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingevidence.FieldPayload:
		m.ResetPayload()
		return nil
	case stagingevidence.FieldBlobSha256:
		m.ResetBlobSha256()
		return nil
	}
	return fmt.Errorf("unknown StagingEvidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingEvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingEvidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingEvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingEvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingEvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingEvidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingEvidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingEvidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingEvidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingEvidence edge %s", name)
}

// StagingHouseholdMutation represents an operation that mutates the StagingHousehold nodes in the graph.
type StagingHouseholdMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *staginghousehold.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.HouseholdRecord
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingHousehold, error)
	predicates          []predicate.StagingHousehold
}

var _ ent.Mutation = (*StagingHouseholdMutation)(nil)

// staginghouseholdOption allows management of the mutation configuration using functional options.
type staginghouseholdOption func(*StagingHouseholdMutation)

// newStagingHouseholdMutation creates new mutation for the StagingHousehold entity.
func newStagingHouseholdMutation(c config, op Op, opts ...staginghouseholdOption) *StagingHouseholdMutation {
	m := &StagingHouseholdMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingHousehold,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingHouseholdID sets the ID field of the mutation.
func withStagingHouseholdID(id uuid.UUID) staginghouseholdOption {
	return func(m *StagingHouseholdMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingHousehold
		)
		m.oldValue = func(ctx context.Context) (*StagingHousehold, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingHousehold.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingHousehold sets the old StagingHousehold of the mutation.
func withStagingHousehold(node *StagingHousehold) staginghouseholdOption {
	return func(m *StagingHouseholdMutation) {
		m.oldValue = func(context.Context) (*StagingHousehold, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingHouseholdMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingHouseholdMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingHousehold entities.
func (m *StagingHouseholdMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingHouseholdMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingHouseholdMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingHousehold.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingHouseholdMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingHouseholdMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingHouseholdMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingHouseholdMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingHouseholdMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingHouseholdMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingHouseholdMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingHouseholdMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingHouseholdMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingHouseholdMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingHouseholdMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingHouseholdMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingHouseholdMutation) SetValidationStatus(ss staginghousehold.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingHouseholdMutation) ValidationStatus() (r staginghousehold.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldValidationStatus(ctx context.Context) (v staginghousehold.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingHouseholdMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingHouseholdMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingHouseholdMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingHouseholdMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingHouseholdMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingHouseholdMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[staginghousehold.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingHouseholdMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[staginghousehold.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingHouseholdMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, staginghousehold.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingHouseholdMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingHouseholdMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingHouseholdMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingHouseholdMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingHouseholdMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingHouseholdMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[staginghousehold.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingHouseholdMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[staginghousehold.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingHouseholdMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, staginghousehold.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingHouseholdMutation) SetPayload(dr *domain.HouseholdRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingHouseholdMutation) Payload() (r *domain.HouseholdRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingHousehold entity.
// If the StagingHousehold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingHouseholdMutation) OldPayload(ctx context.Context) (v *domain.HouseholdRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingHouseholdMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the StagingHouseholdMutation builder.
func (m *StagingHouseholdMutation) Where(ps ...predicate.StagingHousehold) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingHouseholdMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingHouseholdMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingHousehold, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingHouseholdMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingHouseholdMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingHousehold).
func (m *StagingHouseholdMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingHouseholdMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, staginghousehold.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staginghousehold.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, staginghousehold.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, staginghousehold.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, staginghousehold.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, staginghousehold.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, staginghousehold.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, staginghousehold.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, staginghousehold.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingHouseholdMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staginghousehold.FieldCreatedAt:
		return m.CreatedAt()
	case staginghousehold.FieldUpdatedAt:
		return m.UpdatedAt()
	case staginghousehold.FieldImportPackageID:
		return m.ImportPackageID()
	case staginghousehold.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case staginghousehold.FieldValidationStatus:
		return m.ValidationStatus()
	case staginghousehold.FieldDiagnostics:
		return m.Diagnostics()
	case staginghousehold.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case staginghousehold.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case staginghousehold.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingHouseholdMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staginghousehold.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staginghousehold.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case staginghousehold.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case staginghousehold.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case staginghousehold.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case staginghousehold.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case staginghousehold.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case staginghousehold.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case staginghousehold.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown StagingHousehold field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingHouseholdMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staginghousehold.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staginghousehold.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case staginghousehold.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case staginghousehold.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case staginghousehold.FieldValidationStatus:
		v, ok := value.(staginghousehold.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case staginghousehold.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case staginghousehold.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case staginghousehold.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case staginghousehold.FieldPayload:
		v, ok := value.(*domain.HouseholdRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown StagingHousehold field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingHouseholdMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingHouseholdMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingHouseholdMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingHousehold numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingHouseholdMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staginghousehold.FieldDiagnostics) {
		fields = append(fields, staginghousehold.FieldDiagnostics)
	}
	if m.FieldCleared(staginghousehold.FieldCommittedEntityID) {
		fields = append(fields, staginghousehold.FieldCommittedEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingHouseholdMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingHouseholdMutation) ClearField(name string) error {
	switch name {
	case staginghousehold.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case staginghousehold.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	}
	return fmt.Errorf("unknown StagingHousehold nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingHouseholdMutation) ResetField(name string) error {
	switch name {
	case staginghousehold.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staginghousehold.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case staginghousehold.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case staginghousehold.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case staginghousehold.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case staginghousehold.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case staginghousehold.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case staginghousehold.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case staginghousehold.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown StagingHousehold field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingHouseholdMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingHouseholdMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingHouseholdMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingHouseholdMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingHouseholdMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingHouseholdMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingHouseholdMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingHousehold unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingHouseholdMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingHousehold edge %s", name)
}

// StagingPersonMutation represents an operation that mutates the StagingPerson nodes in the graph.
type StagingPersonMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	import_package_id      *uuid.UUID
	original_entity_id     *uuid.UUID
	validation_status      *stagingperson.ValidationStatus
	diagnostics            *[]domain.Diagnostic
	appenddiagnostics      []domain.Diagnostic
	approved_for_commit    *bool
	committed_entity_id    *uuid.UUID
	payload                **domain.PersonRecord
	first_name_normalized  *string
	father_name_normalized *string
	family_name_normalized *string
	national_id            *string
	year_of_birth          *int
	addyear_of_birth       *int
	gender_code            *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*StagingPerson, error)
	predicates             []predicate.StagingPerson
}

var _ ent.Mutation = (*StagingPersonMutation)(nil)

// stagingpersonOption allows management of the mutation configuration using functional options.
type stagingpersonOption func(*StagingPersonMutation)

// newStagingPersonMutation creates new mutation for the StagingPerson entity.
func newStagingPersonMutation(c config, op Op, opts ...stagingpersonOption) *StagingPersonMutation {
	m := &StagingPersonMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingPerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingPersonID sets the ID field of the mutation.
func withStagingPersonID(id uuid.UUID) stagingpersonOption {
	return func(m *StagingPersonMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingPerson
		)
		m.oldValue = func(ctx context.Context) (*StagingPerson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingPerson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingPerson sets the old StagingPerson of the mutation.
func withStagingPerson(node *StagingPerson) stagingpersonOption {
	return func(m *StagingPersonMutation) {
		m.oldValue = func(context.Context) (*StagingPerson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingPersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingPersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingPerson entities.
func (m *StagingPersonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingPersonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingPersonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingPerson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingPersonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingPersonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingPersonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingPersonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingPersonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingPersonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingPersonMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingPersonMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingPersonMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingPersonMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingPersonMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingPersonMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingPersonMutation) SetValidationStatus(ss stagingperson.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingPersonMutation) ValidationStatus() (r stagingperson.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldValidationStatus(ctx context.Context) (v stagingperson.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingPersonMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingPersonMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingPersonMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingPersonMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingPersonMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingPersonMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingperson.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingPersonMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingPersonMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingperson.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingPersonMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingPersonMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingPersonMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingPersonMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingPersonMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingPersonMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingperson.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingPersonMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingPersonMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingperson.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingPersonMutation) SetPayload(dr *domain.PersonRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingPersonMutation) Payload() (r *domain.PersonRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldPayload(ctx context.Context) (v *domain.PersonRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingPersonMutation) ResetPayload() {
	m.payload = nil
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (m *StagingPersonMutation) SetFirstNameNormalized(s string) {
	m.first_name_normalized = &s
}

// FirstNameNormalized returns the value of the "first_name_normalized" field in the mutation.
func (m *StagingPersonMutation) FirstNameNormalized() (r string, exists bool) {
	v := m.first_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstNameNormalized returns the old "first_name_normalized" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldFirstNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstNameNormalized: %w", err)
	}
	return oldValue.FirstNameNormalized, nil
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (m *StagingPersonMutation) ClearFirstNameNormalized() {
	m.first_name_normalized = nil
	m.clearedFields[stagingperson.FieldFirstNameNormalized] = struct{}{}
}

// FirstNameNormalizedCleared returns if the "first_name_normalized" field was cleared in this mutation.
func (m *StagingPersonMutation) FirstNameNormalizedCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldFirstNameNormalized]
	return ok
}

// ResetFirstNameNormalized resets all changes to the "first_name_normalized" field.
func (m *StagingPersonMutation) ResetFirstNameNormalized() {
	m.first_name_normalized = nil
	delete(m.clearedFields, stagingperson.FieldFirstNameNormalized)
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (m *StagingPersonMutation) SetFatherNameNormalized(s string) {
	m.father_name_normalized = &s
}

// FatherNameNormalized returns the value of the "father_name_normalized" field in the mutation.
func (m *StagingPersonMutation) FatherNameNormalized() (r string, exists bool) {
	v := m.father_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFatherNameNormalized returns the old "father_name_normalized" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldFatherNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatherNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatherNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatherNameNormalized: %w", err)
	}
	return oldValue.FatherNameNormalized, nil
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (m *StagingPersonMutation) ClearFatherNameNormalized() {
	m.father_name_normalized = nil
	m.clearedFields[stagingperson.FieldFatherNameNormalized] = struct{}{}
}

// FatherNameNormalizedCleared returns if the "father_name_normalized" field was cleared in this mutation.
func (m *StagingPersonMutation) FatherNameNormalizedCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldFatherNameNormalized]
	return ok
}

// ResetFatherNameNormalized resets all changes to the "father_name_normalized" field.
func (m *StagingPersonMutation) ResetFatherNameNormalized() {
	m.father_name_normalized = nil
	delete(m.clearedFields, stagingperson.FieldFatherNameNormalized)
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (m *StagingPersonMutation) SetFamilyNameNormalized(s string) {
	m.family_name_normalized = &s
}

// FamilyNameNormalized returns the value of the "family_name_normalized" field in the mutation.
func (m *StagingPersonMutation) FamilyNameNormalized() (r string, exists bool) {
	v := m.family_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyNameNormalized returns the old "family_name_normalized" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldFamilyNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyNameNormalized: %w", err)
	}
	return oldValue.FamilyNameNormalized, nil
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (m *StagingPersonMutation) ClearFamilyNameNormalized() {
	m.family_name_normalized = nil
	m.clearedFields[stagingperson.FieldFamilyNameNormalized] = struct{}{}
}

// FamilyNameNormalizedCleared returns if the "family_name_normalized" field was cleared in this mutation.
func (m *StagingPersonMutation) FamilyNameNormalizedCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldFamilyNameNormalized]
	return ok
}

// ResetFamilyNameNormalized resets all changes to the "family_name_normalized" field.
func (m *StagingPersonMutation) ResetFamilyNameNormalized() {
	m.family_name_normalized = nil
	delete(m.clearedFields, stagingperson.FieldFamilyNameNormalized)
}

// SetNationalID sets the "national_id" field.
func (m *StagingPersonMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *StagingPersonMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldNationalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ClearNationalID clears the value of the "national_id" field.
func (m *StagingPersonMutation) ClearNationalID() {
	m.national_id = nil
	m.clearedFields[stagingperson.FieldNationalID] = struct{}{}
}

// NationalIDCleared returns if the "national_id" field was cleared in this mutation.
func (m *StagingPersonMutation) NationalIDCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldNationalID]
	return ok
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *StagingPersonMutation) ResetNationalID() {
	m.national_id = nil
	delete(m.clearedFields, stagingperson.FieldNationalID)
}

// SetYearOfBirth sets the "year_of_birth" field.
func (m *StagingPersonMutation) SetYearOfBirth(i int) {
	m.year_of_birth = &i
	m.addyear_of_birth = nil
}

// YearOfBirth returns the value of the "year_of_birth" field in the mutation.
func (m *StagingPersonMutation) YearOfBirth() (r int, exists bool) {
	v := m.year_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldYearOfBirth returns the old "year_of_birth" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldYearOfBirth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearOfBirth: %w", err)
	}
	return oldValue.YearOfBirth, nil
}

// AddYearOfBirth adds i to the "year_of_birth" field.
func (m *StagingPersonMutation) AddYearOfBirth(i int) {
	if m.addyear_of_birth != nil {
		*m.addyear_of_birth += i
	} else {
		m.addyear_of_birth = &i
	}
}

// AddedYearOfBirth returns the value that was added to the "year_of_birth" field in this mutation.
func (m *StagingPersonMutation) AddedYearOfBirth() (r int, exists bool) {
	v := m.addyear_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (m *StagingPersonMutation) ClearYearOfBirth() {
	m.year_of_birth = nil
	m.addyear_of_birth = nil
	m.clearedFields[stagingperson.FieldYearOfBirth] = struct{}{}
}

// YearOfBirthCleared returns if the "year_of_birth" field was cleared in this mutation.
func (m *StagingPersonMutation) YearOfBirthCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldYearOfBirth]
	return ok
}

// ResetYearOfBirth resets all changes to the "year_of_birth" field.
func (m *StagingPersonMutation) ResetYearOfBirth() {
	m.year_of_birth = nil
	m.addyear_of_birth = nil
	delete(m.clearedFields, stagingperson.FieldYearOfBirth)
}

// SetGenderCode sets the "gender_code" field.
func (m *StagingPersonMutation) SetGenderCode(s string) {
	m.gender_code = &s
}

// GenderCode returns the value of the "gender_code" field in the mutation.
func (m *StagingPersonMutation) GenderCode() (r string, exists bool) {
	v := m.gender_code
	if v == nil {
		return
	}
	return *v, true
}

// OldGenderCode returns the old "gender_code" field's value of the StagingPerson entity.
// If the StagingPerson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonMutation) OldGenderCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenderCode: %w", err)
	}
	return oldValue.GenderCode, nil
}

// ClearGenderCode clears the value of the "gender_code" field.
func (m *StagingPersonMutation) ClearGenderCode() {
	m.gender_code = nil
	m.clearedFields[stagingperson.FieldGenderCode] = struct{}{}
}

// GenderCodeCleared returns if the "gender_code" field was cleared in this mutation.
func (m *StagingPersonMutation) GenderCodeCleared() bool {
	_, ok := m.clearedFields[stagingperson.FieldGenderCode]
	return ok
}

// ResetGenderCode resets all changes to the "gender_code" field.
func (m *StagingPersonMutation) ResetGenderCode() {
	m.gender_code = nil
	delete(m.clearedFields, stagingperson.FieldGenderCode)
}

// Where appends a list predicates to the StagingPersonMutation builder.
func (m *StagingPersonMutation) Where(ps ...predicate.StagingPerson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingPersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingPersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingPerson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingPersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingPersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingPerson).
func (m *StagingPersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingPersonMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, stagingperson.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingperson.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingperson.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingperson.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingperson.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingperson.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingperson.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingperson.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingperson.FieldPayload)
	}
	if m.first_name_normalized != nil {
		fields = append(fields, stagingperson.FieldFirstNameNormalized)
	}
	if m.father_name_normalized != nil {
		fields = append(fields, stagingperson.FieldFatherNameNormalized)
	}
	if m.family_name_normalized != nil {
		fields = append(fields, stagingperson.FieldFamilyNameNormalized)
	}
	if m.national_id != nil {
		fields = append(fields, stagingperson.FieldNationalID)
	}
	if m.year_of_birth != nil {
		fields = append(fields, stagingperson.FieldYearOfBirth)
	}
	if m.gender_code != nil {
		fields = append(fields, stagingperson.FieldGenderCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingPersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingperson.FieldCreatedAt:
		return m.CreatedAt()
	case stagingperson.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingperson.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingperson.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingperson.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingperson.FieldDiagnostics:
		return m.Diagnostics()
	case stagingperson.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingperson.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingperson.FieldPayload:
		return m.Payload()
	case stagingperson.FieldFirstNameNormalized:
		return m.FirstNameNormalized()
	case stagingperson.FieldFatherNameNormalized:
		return m.FatherNameNormalized()
	case stagingperson.FieldFamilyNameNormalized:
		return m.FamilyNameNormalized()
	case stagingperson.FieldNationalID:
		return m.NationalID()
	case stagingperson.FieldYearOfBirth:
		return m.YearOfBirth()
	case stagingperson.FieldGenderCode:
		return m.GenderCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingPersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingperson.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingperson.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingperson.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingperson.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingperson.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingperson.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingperson.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingperson.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingperson.FieldPayload:
		return m.OldPayload(ctx)
	case stagingperson.FieldFirstNameNormalized:
		return m.OldFirstNameNormalized(ctx)
	case stagingperson.FieldFatherNameNormalized:
		return m.OldFatherNameNormalized(ctx)
	case stagingperson.FieldFamilyNameNormalized:
		return m.OldFamilyNameNormalized(ctx)
	case stagingperson.FieldNationalID:
		return m.OldNationalID(ctx)
	case stagingperson.FieldYearOfBirth:
		return m.OldYearOfBirth(ctx)
	case stagingperson.FieldGenderCode:
		return m.OldGenderCode(ctx)
	}
	return nil, fmt.Errorf("unknown StagingPerson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingperson.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingperson.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingperson.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingperson.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingperson.FieldValidationStatus:
		v, ok := value.(stagingperson.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingperson.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingperson.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingperson.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingperson.FieldPayload:
		v, ok := value.(*domain.PersonRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagingperson.FieldFirstNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstNameNormalized(v)
		return nil
	case stagingperson.FieldFatherNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatherNameNormalized(v)
		return nil
	case stagingperson.FieldFamilyNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyNameNormalized(v)
		return nil
	case stagingperson.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case stagingperson.FieldYearOfBirth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearOfBirth(v)
		return nil
	case stagingperson.FieldGenderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenderCode(v)
		return nil
	}
	return fmt.Errorf("unknown StagingPerson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingPersonMutation) AddedFields() []string {
	var fields []string
	if m.addyear_of_birth != nil {
		fields = append(fields, stagingperson.FieldYearOfBirth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingPersonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagingperson.FieldYearOfBirth:
		return m.AddedYearOfBirth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagingperson.FieldYearOfBirth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearOfBirth(v)
		return nil
	}
	return fmt.Errorf("unknown StagingPerson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingPersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingperson.FieldDiagnostics) {
		fields = append(fields, stagingperson.FieldDiagnostics)
	}
	if m.FieldCleared(stagingperson.FieldCommittedEntityID) {
		fields = append(fields, stagingperson.FieldCommittedEntityID)
	}
	if m.FieldCleared(stagingperson.FieldFirstNameNormalized) {
		fields = append(fields, stagingperson.FieldFirstNameNormalized)
	}
	if m.FieldCleared(stagingperson.FieldFatherNameNormalized) {
		fields = append(fields, stagingperson.FieldFatherNameNormalized)
	}
	if m.FieldCleared(stagingperson.FieldFamilyNameNormalized) {
		fields = append(fields, stagingperson.FieldFamilyNameNormalized)
	}
	if m.FieldCleared(stagingperson.FieldNationalID) {
		fields = append(fields, stagingperson.FieldNationalID)
	}
	if m.FieldCleared(stagingperson.FieldYearOfBirth) {
		fields = append(fields, stagingperson.FieldYearOfBirth)
	}
	if m.FieldCleared(stagingperson.FieldGenderCode) {
		fields = append(fields, stagingperson.FieldGenderCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingPersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingPersonMutation) ClearField(name string) error {
	switch name {
	case stagingperson.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingperson.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	case stagingperson.FieldFirstNameNormalized:
		m.ClearFirstNameNormalized()
		return nil
	case stagingperson.FieldFatherNameNormalized:
		m.ClearFatherNameNormalized()
		return nil
	case stagingperson.FieldFamilyNameNormalized:
		m.ClearFamilyNameNormalized()
		return nil
	case stagingperson.FieldNationalID:
		m.ClearNationalID()
		return nil
	case stagingperson.FieldYearOfBirth:
		m.ClearYearOfBirth()
		return nil
	case stagingperson.FieldGenderCode:
		m.ClearGenderCode()
		return nil
	}
	return fmt.Errorf("unknown StagingPerson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingPersonMutation) ResetField(name string) error {
	switch name {
	case stagingperson.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingperson.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingperson.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingperson.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingperson.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingperson.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingperson.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingperson.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingperson.FieldPayload:
		m.ResetPayload()
		return nil
	case stagingperson.FieldFirstNameNormalized:
		m.ResetFirstNameNormalized()
		return nil
	case stagingperson.FieldFatherNameNormalized:
		m.ResetFatherNameNormalized()
		return nil
	case stagingperson.FieldFamilyNameNormalized:
		m.ResetFamilyNameNormalized()
		return nil
	case stagingperson.FieldNationalID:
		m.ResetNationalID()
		return nil
	case stagingperson.FieldYearOfBirth:
		m.ResetYearOfBirth()
		return nil
	case stagingperson.FieldGenderCode:
		m.ResetGenderCode()
		return nil
	}
	return fmt.Errorf("unknown StagingPerson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingPersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingPersonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingPersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingPersonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingPersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingPersonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingPersonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingPerson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingPersonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingPerson edge %s", name)
}

// StagingPersonPropertyRelationMutation represents an operation that mutates the StagingPersonPropertyRelation nodes in the graph.
type StagingPersonPropertyRelationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingpersonpropertyrelation.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.PersonPropertyRelationRecord
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingPersonPropertyRelation, error)
	predicates          []predicate.StagingPersonPropertyRelation
}

var _ ent.Mutation = (*StagingPersonPropertyRelationMutation)(nil)

// stagingpersonpropertyrelationOption allows management of the mutation configuration using functional options.
type stagingpersonpropertyrelationOption func(*StagingPersonPropertyRelationMutation)

// newStagingPersonPropertyRelationMutation creates new mutation for the StagingPersonPropertyRelation entity.
func newStagingPersonPropertyRelationMutation(c config, op Op, opts ...stagingpersonpropertyrelationOption) *StagingPersonPropertyRelationMutation {
	m := &StagingPersonPropertyRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingPersonPropertyRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingPersonPropertyRelationID sets the ID field of the mutation.
func withStagingPersonPropertyRelationID(id uuid.UUID) stagingpersonpropertyrelationOption {
	return func(m *StagingPersonPropertyRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingPersonPropertyRelation
		)
		m.oldValue = func(ctx context.Context) (*StagingPersonPropertyRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingPersonPropertyRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingPersonPropertyRelation sets the old StagingPersonPropertyRelation of the mutation.
func withStagingPersonPropertyRelation(node *StagingPersonPropertyRelation) stagingpersonpropertyrelationOption {
	return func(m *StagingPersonPropertyRelationMutation) {
		m.oldValue = func(context.Context) (*StagingPersonPropertyRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingPersonPropertyRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingPersonPropertyRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingPersonPropertyRelation entities.
func (m *StagingPersonPropertyRelationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingPersonPropertyRelationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingPersonPropertyRelationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingPersonPropertyRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingPersonPropertyRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingPersonPropertyRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingPersonPropertyRelationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingPersonPropertyRelationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingPersonPropertyRelationMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingPersonPropertyRelationMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingPersonPropertyRelationMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingPersonPropertyRelationMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingPersonPropertyRelationMutation) SetValidationStatus(ss stagingpersonpropertyrelation.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) ValidationStatus() (r stagingpersonpropertyrelation.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldValidationStatus(ctx context.Context) (v stagingpersonpropertyrelation.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingPersonPropertyRelationMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingPersonPropertyRelationMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingPersonPropertyRelationMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingPersonPropertyRelationMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingPersonPropertyRelationMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingpersonpropertyrelation.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingPersonPropertyRelationMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingpersonpropertyrelation.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingPersonPropertyRelationMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingpersonpropertyrelation.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingPersonPropertyRelationMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingPersonPropertyRelationMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingPersonPropertyRelationMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingPersonPropertyRelationMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingpersonpropertyrelation.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingPersonPropertyRelationMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingpersonpropertyrelation.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingPersonPropertyRelationMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingpersonpropertyrelation.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingPersonPropertyRelationMutation) SetPayload(dprr *domain.PersonPropertyRelationRecord) {
	m.payload = &dprr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingPersonPropertyRelationMutation) Payload() (r *domain.PersonPropertyRelationRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingPersonPropertyRelation entity.
// If the StagingPersonPropertyRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPersonPropertyRelationMutation) OldPayload(ctx context.Context) (v *domain.PersonPropertyRelationRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingPersonPropertyRelationMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the StagingPersonPropertyRelationMutation builder.
func (m *StagingPersonPropertyRelationMutation) Where(ps ...predicate.StagingPersonPropertyRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingPersonPropertyRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingPersonPropertyRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingPersonPropertyRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingPersonPropertyRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingPersonPropertyRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingPersonPropertyRelation).
func (m *StagingPersonPropertyRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingPersonPropertyRelationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingpersonpropertyrelation.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingPersonPropertyRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingpersonpropertyrelation.FieldCreatedAt:
		return m.CreatedAt()
	case stagingpersonpropertyrelation.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingpersonpropertyrelation.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingpersonpropertyrelation.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingpersonpropertyrelation.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingpersonpropertyrelation.FieldDiagnostics:
		return m.Diagnostics()
	case stagingpersonpropertyrelation.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingpersonpropertyrelation.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingpersonpropertyrelation.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingPersonPropertyRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingpersonpropertyrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingpersonpropertyrelation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingpersonpropertyrelation.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingpersonpropertyrelation.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingpersonpropertyrelation.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingpersonpropertyrelation.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingpersonpropertyrelation.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingpersonpropertyrelation.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingpersonpropertyrelation.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown StagingPersonPropertyRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPersonPropertyRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingpersonpropertyrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingpersonpropertyrelation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingpersonpropertyrelation.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingpersonpropertyrelation.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingpersonpropertyrelation.FieldValidationStatus:
		v, ok := value.(stagingpersonpropertyrelation.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingpersonpropertyrelation.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingpersonpropertyrelation.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingpersonpropertyrelation.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingpersonpropertyrelation.FieldPayload:
		v, ok := value.(*domain.PersonPropertyRelationRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown StagingPersonPropertyRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingPersonPropertyRelationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingPersonPropertyRelationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPersonPropertyRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingPersonPropertyRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingPersonPropertyRelationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingpersonpropertyrelation.FieldDiagnostics) {
		fields = append(fields, stagingpersonpropertyrelation.FieldDiagnostics)
	}
	if m.FieldCleared(stagingpersonpropertyrelation.FieldCommittedEntityID) {
		fields = append(fields, stagingpersonpropertyrelation.FieldCommittedEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingPersonPropertyRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingPersonPropertyRelationMutation) ClearField(name string) error {
	switch name {
	case stagingpersonpropertyrelation.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingpersonpropertyrelation.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	}
	return fmt.Errorf("unknown StagingPersonPropertyRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingPersonPropertyRelationMutation) ResetField(name string) error {
	switch name {
	case stagingpersonpropertyrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingpersonpropertyrelation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingpersonpropertyrelation.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingpersonpropertyrelation.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingpersonpropertyrelation.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingpersonpropertyrelation.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingpersonpropertyrelation.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingpersonpropertyrelation.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingpersonpropertyrelation.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown StagingPersonPropertyRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingPersonPropertyRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingPersonPropertyRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingPersonPropertyRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingPersonPropertyRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingPersonPropertyRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingPersonPropertyRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingPersonPropertyRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingPersonPropertyRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingPersonPropertyRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingPersonPropertyRelation edge %s", name)
}

// StagingPropertyUnitMutation represents an operation that mutates the StagingPropertyUnit nodes in the graph.
type StagingPropertyUnitMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	import_package_id          *uuid.UUID
	original_entity_id         *uuid.UUID
	validation_status          *stagingpropertyunit.ValidationStatus
	diagnostics                *[]domain.Diagnostic
	appenddiagnostics          []domain.Diagnostic
	approved_for_commit        *bool
	committed_entity_id        *uuid.UUID
	payload                    **domain.PropertyUnitRecord
	original_building_id       *uuid.UUID
	unit_identifier_normalized *string
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*StagingPropertyUnit, error)
	predicates                 []predicate.StagingPropertyUnit
}

var _ ent.Mutation = (*StagingPropertyUnitMutation)(nil)

// stagingpropertyunitOption allows management of the mutation configuration using functional options.
type stagingpropertyunitOption func(*StagingPropertyUnitMutation)

// newStagingPropertyUnitMutation creates new mutation for the StagingPropertyUnit entity.
func newStagingPropertyUnitMutation(c config, op Op, opts ...stagingpropertyunitOption) *StagingPropertyUnitMutation {
	m := &StagingPropertyUnitMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingPropertyUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingPropertyUnitID sets the ID field of the mutation.
func withStagingPropertyUnitID(id uuid.UUID) stagingpropertyunitOption {
	return func(m *StagingPropertyUnitMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingPropertyUnit
		)
		m.oldValue = func(ctx context.Context) (*StagingPropertyUnit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingPropertyUnit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingPropertyUnit sets the old StagingPropertyUnit of the mutation.
func withStagingPropertyUnit(node *StagingPropertyUnit) stagingpropertyunitOption {
	return func(m *StagingPropertyUnitMutation) {
		m.oldValue = func(context.Context) (*StagingPropertyUnit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingPropertyUnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingPropertyUnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingPropertyUnit entities.
func (m *StagingPropertyUnitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingPropertyUnitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingPropertyUnitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingPropertyUnit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingPropertyUnitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingPropertyUnitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingPropertyUnitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingPropertyUnitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingPropertyUnitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingPropertyUnitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingPropertyUnitMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingPropertyUnitMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingPropertyUnitMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingPropertyUnitMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingPropertyUnitMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingPropertyUnitMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingPropertyUnitMutation) SetValidationStatus(ss stagingpropertyunit.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingPropertyUnitMutation) ValidationStatus() (r stagingpropertyunit.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldValidationStatus(ctx context.Context) (v stagingpropertyunit.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingPropertyUnitMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingPropertyUnitMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingPropertyUnitMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingPropertyUnitMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingPropertyUnitMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingPropertyUnitMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingpropertyunit.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingPropertyUnitMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingpropertyunit.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingPropertyUnitMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingpropertyunit.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingPropertyUnitMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingPropertyUnitMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingPropertyUnitMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingPropertyUnitMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingPropertyUnitMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingPropertyUnitMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingpropertyunit.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingPropertyUnitMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingpropertyunit.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingPropertyUnitMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingpropertyunit.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingPropertyUnitMutation) SetPayload(dur *domain.PropertyUnitRecord) {
	m.payload = &dur
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingPropertyUnitMutation) Payload() (r *domain.PropertyUnitRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldPayload(ctx context.Context) (v *domain.PropertyUnitRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingPropertyUnitMutation) ResetPayload() {
	m.payload = nil
}

// SetOriginalBuildingID sets the "original_building_id" field.
func (m *StagingPropertyUnitMutation) SetOriginalBuildingID(u uuid.UUID) {
	m.original_building_id = &u
}

// OriginalBuildingID returns the value of the "original_building_id" field in the mutation.
func (m *StagingPropertyUnitMutation) OriginalBuildingID() (r uuid.UUID, exists bool) {
	v := m.original_building_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalBuildingID returns the old "original_building_id" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldOriginalBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalBuildingID: %w", err)
	}
	return oldValue.OriginalBuildingID, nil
}

// ResetOriginalBuildingID resets all changes to the "original_building_id" field.
func (m *StagingPropertyUnitMutation) ResetOriginalBuildingID() {
	m.original_building_id = nil
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (m *StagingPropertyUnitMutation) SetUnitIdentifierNormalized(s string) {
	m.unit_identifier_normalized = &s
}

// UnitIdentifierNormalized returns the value of the "unit_identifier_normalized" field in the mutation.
func (m *StagingPropertyUnitMutation) UnitIdentifierNormalized() (r string, exists bool) {
	v := m.unit_identifier_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitIdentifierNormalized returns the old "unit_identifier_normalized" field's value of the StagingPropertyUnit entity.
// If the StagingPropertyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingPropertyUnitMutation) OldUnitIdentifierNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitIdentifierNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitIdentifierNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitIdentifierNormalized: %w", err)
	}
	return oldValue.UnitIdentifierNormalized, nil
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (m *StagingPropertyUnitMutation) ClearUnitIdentifierNormalized() {
	m.unit_identifier_normalized = nil
	m.clearedFields[stagingpropertyunit.FieldUnitIdentifierNormalized] = struct{}{}
}

// UnitIdentifierNormalizedCleared returns if the "unit_identifier_normalized" field was cleared in this mutation.
func (m *StagingPropertyUnitMutation) UnitIdentifierNormalizedCleared() bool {
	_, ok := m.clearedFields[stagingpropertyunit.FieldUnitIdentifierNormalized]
	return ok
}

// ResetUnitIdentifierNormalized resets all changes to the "unit_identifier_normalized" field.
func (m *StagingPropertyUnitMutation) ResetUnitIdentifierNormalized() {
	m.unit_identifier_normalized = nil
	delete(m.clearedFields, stagingpropertyunit.FieldUnitIdentifierNormalized)
}

// Where appends a list predicates to the StagingPropertyUnitMutation builder.
func (m *StagingPropertyUnitMutation) Where(ps ...predicate.StagingPropertyUnit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingPropertyUnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingPropertyUnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingPropertyUnit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingPropertyUnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingPropertyUnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingPropertyUnit).
func (m *StagingPropertyUnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingPropertyUnitMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, stagingpropertyunit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingpropertyunit.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingpropertyunit.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingpropertyunit.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingpropertyunit.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingpropertyunit.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingpropertyunit.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingpropertyunit.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingpropertyunit.FieldPayload)
	}
	if m.original_building_id != nil {
		fields = append(fields, stagingpropertyunit.FieldOriginalBuildingID)
	}
	if m.unit_identifier_normalized != nil {
		fields = append(fields, stagingpropertyunit.FieldUnitIdentifierNormalized)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingPropertyUnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingpropertyunit.FieldCreatedAt:
		return m.CreatedAt()
	case stagingpropertyunit.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingpropertyunit.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingpropertyunit.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingpropertyunit.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingpropertyunit.FieldDiagnostics:
		return m.Diagnostics()
	case stagingpropertyunit.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingpropertyunit.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingpropertyunit.FieldPayload:
		return m.Payload()
	case stagingpropertyunit.FieldOriginalBuildingID:
		return m.OriginalBuildingID()
	case stagingpropertyunit.FieldUnitIdentifierNormalized:
		return m.UnitIdentifierNormalized()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingPropertyUnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingpropertyunit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingpropertyunit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingpropertyunit.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingpropertyunit.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingpropertyunit.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingpropertyunit.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingpropertyunit.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingpropertyunit.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingpropertyunit.FieldPayload:
		return m.OldPayload(ctx)
	case stagingpropertyunit.FieldOriginalBuildingID:
		return m.OldOriginalBuildingID(ctx)
	case stagingpropertyunit.FieldUnitIdentifierNormalized:
		return m.OldUnitIdentifierNormalized(ctx)
	}
	return nil, fmt.Errorf("unknown StagingPropertyUnit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPropertyUnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingpropertyunit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingpropertyunit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingpropertyunit.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingpropertyunit.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingpropertyunit.FieldValidationStatus:
		v, ok := value.(stagingpropertyunit.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingpropertyunit.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingpropertyunit.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingpropertyunit.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingpropertyunit.FieldPayload:
		v, ok := value.(*domain.PropertyUnitRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagingpropertyunit.FieldOriginalBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalBuildingID(v)
		return nil
	case stagingpropertyunit.FieldUnitIdentifierNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitIdentifierNormalized(v)
		return nil
	}
	return fmt.Errorf("unknown StagingPropertyUnit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingPropertyUnitMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingPropertyUnitMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingPropertyUnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingPropertyUnit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingPropertyUnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingpropertyunit.FieldDiagnostics) {
		fields = append(fields, stagingpropertyunit.FieldDiagnostics)
	}
	if m.FieldCleared(stagingpropertyunit.FieldCommittedEntityID) {
		fields = append(fields, stagingpropertyunit.FieldCommittedEntityID)
	}
	if m.FieldCleared(stagingpropertyunit.FieldUnitIdentifierNormalized) {
		fields = append(fields, stagingpropertyunit.FieldUnitIdentifierNormalized)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingPropertyUnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingPropertyUnitMutation) ClearField(name string) error {
	switch name {
	case stagingpropertyunit.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingpropertyunit.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	case stagingpropertyunit.FieldUnitIdentifierNormalized:
		m.ClearUnitIdentifierNormalized()
		return nil
	}
	return fmt.Errorf("unknown StagingPropertyUnit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingPropertyUnitMutation) ResetField(name string) error {
	switch name {
	case stagingpropertyunit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingpropertyunit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingpropertyunit.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingpropertyunit.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingpropertyunit.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingpropertyunit.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingpropertyunit.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingpropertyunit.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingpropertyunit.FieldPayload:
		m.ResetPayload()
		return nil
	case stagingpropertyunit.FieldOriginalBuildingID:
		m.ResetOriginalBuildingID()
		return nil
	case stagingpropertyunit.FieldUnitIdentifierNormalized:
		m.ResetUnitIdentifierNormalized()
		return nil
	}
	return fmt.Errorf("unknown StagingPropertyUnit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingPropertyUnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingPropertyUnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingPropertyUnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingPropertyUnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingPropertyUnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingPropertyUnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingPropertyUnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingPropertyUnit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingPropertyUnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingPropertyUnit edge %s", name)
}

// StagingReferralMutation represents an operation that mutates the StagingReferral nodes in the graph.
type StagingReferralMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingreferral.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.ReferralRecord
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingReferral, error)
	predicates          []predicate.StagingReferral
}

var _ ent.Mutation = (*StagingReferralMutation)(nil)

// stagingreferralOption allows management of the mutation configuration using functional options.
type stagingreferralOption func(*StagingReferralMutation)

// newStagingReferralMutation creates new mutation for the StagingReferral entity.
func newStagingReferralMutation(c config, op Op, opts ...stagingreferralOption) *StagingReferralMutation {
	m := &StagingReferralMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingReferral,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingReferralID sets the ID field of the mutation.
func withStagingReferralID(id uuid.UUID) stagingreferralOption {
	return func(m *StagingReferralMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingReferral
		)
		m.oldValue = func(ctx context.Context) (*StagingReferral, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingReferral.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingReferral sets the old StagingReferral of the mutation.
func withStagingReferral(node *StagingReferral) stagingreferralOption {
	return func(m *StagingReferralMutation) {
		m.oldValue = func(context.Context) (*StagingReferral, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingReferralMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingReferralMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingReferral entities.
func (m *StagingReferralMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingReferralMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingReferralMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingReferral.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingReferralMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingReferralMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingReferralMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingReferralMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingReferralMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingReferralMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingReferralMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingReferralMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingReferralMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingReferralMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingReferralMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingReferralMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingReferralMutation) SetValidationStatus(ss stagingreferral.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingReferralMutation) ValidationStatus() (r stagingreferral.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldValidationStatus(ctx context.Context) (v stagingreferral.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingReferralMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingReferralMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingReferralMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingReferralMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingReferralMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingReferralMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingreferral.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingReferralMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingreferral.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingReferralMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingreferral.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingReferralMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingReferralMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingReferralMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingReferralMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingReferralMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingReferralMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingreferral.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingReferralMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingreferral.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingReferralMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingreferral.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingReferralMutation) SetPayload(dr *domain.ReferralRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingReferralMutation) Payload() (r *domain.ReferralRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingReferral entity.
// If the StagingReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingReferralMutation) OldPayload(ctx context.Context) (v *domain.ReferralRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingReferralMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the StagingReferralMutation builder.
func (m *StagingReferralMutation) Where(ps ...predicate.StagingReferral) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingReferralMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingReferralMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingReferral, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingReferralMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingReferralMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingReferral).
func (m *StagingReferralMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingReferralMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, stagingreferral.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingreferral.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingreferral.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingreferral.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingreferral.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingreferral.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingreferral.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingreferral.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingreferral.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingReferralMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingreferral.FieldCreatedAt:
		return m.CreatedAt()
	case stagingreferral.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingreferral.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingreferral.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingreferral.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingreferral.FieldDiagnostics:
		return m.Diagnostics()
	case stagingreferral.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingreferral.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingreferral.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingReferralMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingreferral.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingreferral.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingreferral.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingreferral.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingreferral.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingreferral.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingreferral.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingreferral.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingreferral.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown StagingReferral field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingReferralMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingreferral.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingreferral.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingreferral.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingreferral.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingreferral.FieldValidationStatus:
		v, ok := value.(stagingreferral.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingreferral.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingreferral.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingreferral.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingreferral.FieldPayload:
		v, ok := value.(*domain.ReferralRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown StagingReferral field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingReferralMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingReferralMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingReferralMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingReferral numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingReferralMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingreferral.FieldDiagnostics) {
		fields = append(fields, stagingreferral.FieldDiagnostics)
	}
	if m.FieldCleared(stagingreferral.FieldCommittedEntityID) {
		fields = append(fields, stagingreferral.FieldCommittedEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingReferralMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingReferralMutation) ClearField(name string) error {
	switch name {
	case stagingreferral.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingreferral.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	}
	return fmt.Errorf("unknown StagingReferral nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingReferralMutation) ResetField(name string) error {
	switch name {
	case stagingreferral.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingreferral.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingreferral.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingreferral.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingreferral.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingreferral.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingreferral.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingreferral.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingreferral.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown StagingReferral field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingReferralMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingReferralMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingReferralMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingReferralMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingReferralMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingReferralMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingReferralMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingReferral unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingReferralMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingReferral edge %s", name)
}

// StagingSurveyMutation represents an operation that mutates the StagingSurvey nodes in the graph.
type StagingSurveyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	import_package_id   *uuid.UUID
	original_entity_id  *uuid.UUID
	validation_status   *stagingsurvey.ValidationStatus
	diagnostics         *[]domain.Diagnostic
	appenddiagnostics   []domain.Diagnostic
	approved_for_commit *bool
	committed_entity_id *uuid.UUID
	payload             **domain.SurveyRecord
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StagingSurvey, error)
	predicates          []predicate.StagingSurvey
}

var _ ent.Mutation = (*StagingSurveyMutation)(nil)

// stagingsurveyOption allows management of the mutation configuration using functional options.
type stagingsurveyOption func(*StagingSurveyMutation)

// newStagingSurveyMutation creates new mutation for the StagingSurvey entity.
func newStagingSurveyMutation(c config, op Op, opts ...stagingsurveyOption) *StagingSurveyMutation {
	m := &StagingSurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingSurveyID sets the ID field of the mutation.
func withStagingSurveyID(id uuid.UUID) stagingsurveyOption {
	return func(m *StagingSurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingSurvey
		)
		m.oldValue = func(ctx context.Context) (*StagingSurvey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingSurvey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingSurvey sets the old StagingSurvey of the mutation.
func withStagingSurvey(node *StagingSurvey) stagingsurveyOption {
	return func(m *StagingSurveyMutation) {
		m.oldValue = func(context.Context) (*StagingSurvey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingSurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingSurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingSurvey entities.
func (m *StagingSurveyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingSurveyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingSurveyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingSurvey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingSurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingSurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingSurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingSurveyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingSurveyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StagingSurveyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetImportPackageID sets the "import_package_id" field.
func (m *StagingSurveyMutation) SetImportPackageID(u uuid.UUID) {
	m.import_package_id = &u
}

// ImportPackageID returns the value of the "import_package_id" field in the mutation.
func (m *StagingSurveyMutation) ImportPackageID() (r uuid.UUID, exists bool) {
	v := m.import_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportPackageID returns the old "import_package_id" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldImportPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportPackageID: %w", err)
	}
	return oldValue.ImportPackageID, nil
}

// ResetImportPackageID resets all changes to the "import_package_id" field.
func (m *StagingSurveyMutation) ResetImportPackageID() {
	m.import_package_id = nil
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (m *StagingSurveyMutation) SetOriginalEntityID(u uuid.UUID) {
	m.original_entity_id = &u
}

// OriginalEntityID returns the value of the "original_entity_id" field in the mutation.
func (m *StagingSurveyMutation) OriginalEntityID() (r uuid.UUID, exists bool) {
	v := m.original_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEntityID returns the old "original_entity_id" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldOriginalEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEntityID: %w", err)
	}
	return oldValue.OriginalEntityID, nil
}

// ResetOriginalEntityID resets all changes to the "original_entity_id" field.
func (m *StagingSurveyMutation) ResetOriginalEntityID() {
	m.original_entity_id = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *StagingSurveyMutation) SetValidationStatus(ss stagingsurvey.ValidationStatus) {
	m.validation_status = &ss
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *StagingSurveyMutation) ValidationStatus() (r stagingsurvey.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldValidationStatus(ctx context.Context) (v stagingsurvey.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *StagingSurveyMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *StagingSurveyMutation) SetDiagnostics(d []domain.Diagnostic) {
	m.diagnostics = &d
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *StagingSurveyMutation) Diagnostics() (r []domain.Diagnostic, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldDiagnostics(ctx context.Context) (v []domain.Diagnostic, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds d to the "diagnostics" field.
func (m *StagingSurveyMutation) AppendDiagnostics(d []domain.Diagnostic) {
	m.appenddiagnostics = append(m.appenddiagnostics, d...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *StagingSurveyMutation) AppendedDiagnostics() ([]domain.Diagnostic, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *StagingSurveyMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[stagingsurvey.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *StagingSurveyMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[stagingsurvey.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *StagingSurveyMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, stagingsurvey.FieldDiagnostics)
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (m *StagingSurveyMutation) SetApprovedForCommit(b bool) {
	m.approved_for_commit = &b
}

// ApprovedForCommit returns the value of the "approved_for_commit" field in the mutation.
func (m *StagingSurveyMutation) ApprovedForCommit() (r bool, exists bool) {
	v := m.approved_for_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedForCommit returns the old "approved_for_commit" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldApprovedForCommit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedForCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedForCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedForCommit: %w", err)
	}
	return oldValue.ApprovedForCommit, nil
}

// ResetApprovedForCommit resets all changes to the "approved_for_commit" field.
func (m *StagingSurveyMutation) ResetApprovedForCommit() {
	m.approved_for_commit = nil
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (m *StagingSurveyMutation) SetCommittedEntityID(u uuid.UUID) {
	m.committed_entity_id = &u
}

// CommittedEntityID returns the value of the "committed_entity_id" field in the mutation.
func (m *StagingSurveyMutation) CommittedEntityID() (r uuid.UUID, exists bool) {
	v := m.committed_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedEntityID returns the old "committed_entity_id" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldCommittedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedEntityID: %w", err)
	}
	return oldValue.CommittedEntityID, nil
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (m *StagingSurveyMutation) ClearCommittedEntityID() {
	m.committed_entity_id = nil
	m.clearedFields[stagingsurvey.FieldCommittedEntityID] = struct{}{}
}

// CommittedEntityIDCleared returns if the "committed_entity_id" field was cleared in this mutation.
func (m *StagingSurveyMutation) CommittedEntityIDCleared() bool {
	_, ok := m.clearedFields[stagingsurvey.FieldCommittedEntityID]
	return ok
}

// ResetCommittedEntityID resets all changes to the "committed_entity_id" field.
func (m *StagingSurveyMutation) ResetCommittedEntityID() {
	m.committed_entity_id = nil
	delete(m.clearedFields, stagingsurvey.FieldCommittedEntityID)
}

// SetPayload sets the "payload" field.
func (m *StagingSurveyMutation) SetPayload(dr *domain.SurveyRecord) {
	m.payload = &dr
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StagingSurveyMutation) Payload() (r *domain.SurveyRecord, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StagingSurvey entity.
// If the StagingSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingSurveyMutation) OldPayload(ctx context.Context) (v *domain.SurveyRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StagingSurveyMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the StagingSurveyMutation builder.
func (m *StagingSurveyMutation) Where(ps ...predicate.StagingSurvey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingSurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingSurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingSurvey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingSurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingSurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingSurvey).
func (m *StagingSurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingSurveyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, stagingsurvey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingsurvey.FieldUpdatedAt)
	}
	if m.import_package_id != nil {
		fields = append(fields, stagingsurvey.FieldImportPackageID)
	}
	if m.original_entity_id != nil {
		fields = append(fields, stagingsurvey.FieldOriginalEntityID)
	}
	if m.validation_status != nil {
		fields = append(fields, stagingsurvey.FieldValidationStatus)
	}
	if m.diagnostics != nil {
		fields = append(fields, stagingsurvey.FieldDiagnostics)
	}
	if m.approved_for_commit != nil {
		fields = append(fields, stagingsurvey.FieldApprovedForCommit)
	}
	if m.committed_entity_id != nil {
		fields = append(fields, stagingsurvey.FieldCommittedEntityID)
	}
	if m.payload != nil {
		fields = append(fields, stagingsurvey.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingSurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingsurvey.FieldCreatedAt:
		return m.CreatedAt()
	case stagingsurvey.FieldUpdatedAt:
		return m.UpdatedAt()
	case stagingsurvey.FieldImportPackageID:
		return m.ImportPackageID()
	case stagingsurvey.FieldOriginalEntityID:
		return m.OriginalEntityID()
	case stagingsurvey.FieldValidationStatus:
		return m.ValidationStatus()
	case stagingsurvey.FieldDiagnostics:
		return m.Diagnostics()
	case stagingsurvey.FieldApprovedForCommit:
		return m.ApprovedForCommit()
	case stagingsurvey.FieldCommittedEntityID:
		return m.CommittedEntityID()
	case stagingsurvey.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingSurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingsurvey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingsurvey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stagingsurvey.FieldImportPackageID:
		return m.OldImportPackageID(ctx)
	case stagingsurvey.FieldOriginalEntityID:
		return m.OldOriginalEntityID(ctx)
	case stagingsurvey.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case stagingsurvey.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case stagingsurvey.FieldApprovedForCommit:
		return m.OldApprovedForCommit(ctx)
	case stagingsurvey.FieldCommittedEntityID:
		return m.OldCommittedEntityID(ctx)
	case stagingsurvey.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown StagingSurvey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingSurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingsurvey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingsurvey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stagingsurvey.FieldImportPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportPackageID(v)
		return nil
	case stagingsurvey.FieldOriginalEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEntityID(v)
		return nil
	case stagingsurvey.FieldValidationStatus:
		v, ok := value.(stagingsurvey.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case stagingsurvey.FieldDiagnostics:
		v, ok := value.([]domain.Diagnostic)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case stagingsurvey.FieldApprovedForCommit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedForCommit(v)
		return nil
	case stagingsurvey.FieldCommittedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedEntityID(v)
		return nil
	case stagingsurvey.FieldPayload:
		v, ok := value.(*domain.SurveyRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown StagingSurvey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingSurveyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingSurveyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingSurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingSurvey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingSurveyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingsurvey.FieldDiagnostics) {
		fields = append(fields, stagingsurvey.FieldDiagnostics)
	}
	if m.FieldCleared(stagingsurvey.FieldCommittedEntityID) {
		fields = append(fields, stagingsurvey.FieldCommittedEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingSurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingSurveyMutation) ClearField(name string) error {
	switch name {
	case stagingsurvey.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	case stagingsurvey.FieldCommittedEntityID:
		m.ClearCommittedEntityID()
		return nil
	}
	return fmt.Errorf("unknown StagingSurvey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingSurveyMutation) ResetField(name string) error {
	switch name {
	case stagingsurvey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingsurvey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stagingsurvey.FieldImportPackageID:
		m.ResetImportPackageID()
		return nil
	case stagingsurvey.FieldOriginalEntityID:
		m.ResetOriginalEntityID()
		return nil
	case stagingsurvey.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case stagingsurvey.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case stagingsurvey.FieldApprovedForCommit:
		m.ResetApprovedForCommit()
		return nil
	case stagingsurvey.FieldCommittedEntityID:
		m.ResetCommittedEntityID()
		return nil
	case stagingsurvey.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown StagingSurvey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingSurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingSurveyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingSurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingSurveyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingSurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingSurveyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingSurveyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingSurvey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingSurveyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingSurvey edge %s", name)
}

// SurveyMutation represents an operation that mutates the Survey nodes in the graph.
type SurveyMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	source_package_id *uuid.UUID
	building_id       *uuid.UUID
	survey_type_code  *string
	survey_date       *time.Time
	surveyor_name     *string
	notes             *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Survey, error)
	predicates        []predicate.Survey
}

var _ ent.Mutation = (*SurveyMutation)(nil)

// surveyOption allows management of the mutation configuration using functional options.
type surveyOption func(*SurveyMutation)

// newSurveyMutation creates new mutation for the Survey entity.
func newSurveyMutation(c config, op Op, opts ...surveyOption) *SurveyMutation {
	m := &SurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyID sets the ID field of the mutation.
func withSurveyID(id uuid.UUID) surveyOption {
	return func(m *SurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *Survey
		)
		m.oldValue = func(ctx context.Context) (*Survey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Survey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurvey sets the old Survey of the mutation.
func withSurvey(node *Survey) surveyOption {
	return func(m *SurveyMutation) {
		m.oldValue = func(context.Context) (*Survey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Survey entities.
func (m *SurveyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Survey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SurveyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SurveyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SurveyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourcePackageID sets the "source_package_id" field.
func (m *SurveyMutation) SetSourcePackageID(u uuid.UUID) {
	m.source_package_id = &u
}

// SourcePackageID returns the value of the "source_package_id" field in the mutation.
func (m *SurveyMutation) SourcePackageID() (r uuid.UUID, exists bool) {
	v := m.source_package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePackageID returns the old "source_package_id" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldSourcePackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePackageID: %w", err)
	}
	return oldValue.SourcePackageID, nil
}

// ClearSourcePackageID clears the value of the "source_package_id" field.
func (m *SurveyMutation) ClearSourcePackageID() {
	m.source_package_id = nil
	m.clearedFields[survey.FieldSourcePackageID] = struct{}{}
}

// SourcePackageIDCleared returns if the "source_package_id" field was cleared in this mutation.
func (m *SurveyMutation) SourcePackageIDCleared() bool {
	_, ok := m.clearedFields[survey.FieldSourcePackageID]
	return ok
}

// ResetSourcePackageID resets all changes to the "source_package_id" field.
func (m *SurveyMutation) ResetSourcePackageID() {
	m.source_package_id = nil
	delete(m.clearedFields, survey.FieldSourcePackageID)
}

// SetBuildingID sets the "building_id" field.
func (m *SurveyMutation) SetBuildingID(u uuid.UUID) {
	m.building_id = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *SurveyMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *SurveyMutation) ResetBuildingID() {
	m.building_id = nil
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (m *SurveyMutation) SetSurveyTypeCode(s string) {
	m.survey_type_code = &s
}

// SurveyTypeCode returns the value of the "survey_type_code" field in the mutation.
func (m *SurveyMutation) SurveyTypeCode() (r string, exists bool) {
	v := m.survey_type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyTypeCode returns the old "survey_type_code" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldSurveyTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyTypeCode: %w", err)
	}
	return oldValue.SurveyTypeCode, nil
}

// ResetSurveyTypeCode resets all changes to the "survey_type_code" field.
func (m *SurveyMutation) ResetSurveyTypeCode() {
	m.survey_type_code = nil
}

// SetSurveyDate sets the "survey_date" field.
func (m *SurveyMutation) SetSurveyDate(t time.Time) {
	m.survey_date = &t
}

// SurveyDate returns the value of the "survey_date" field in the mutation.
func (m *SurveyMutation) SurveyDate() (r time.Time, exists bool) {
	v := m.survey_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyDate returns the old "survey_date" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldSurveyDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyDate: %w", err)
	}
	return oldValue.SurveyDate, nil
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (m *SurveyMutation) ClearSurveyDate() {
	m.survey_date = nil
	m.clearedFields[survey.FieldSurveyDate] = struct{}{}
}

// SurveyDateCleared returns if the "survey_date" field was cleared in this mutation.
func (m *SurveyMutation) SurveyDateCleared() bool {
	_, ok := m.clearedFields[survey.FieldSurveyDate]
	return ok
}

// ResetSurveyDate resets all changes to the "survey_date" field.
func (m *SurveyMutation) ResetSurveyDate() {
	m.survey_date = nil
	delete(m.clearedFields, survey.FieldSurveyDate)
}

// SetSurveyorName sets the "surveyor_name" field.
func (m *SurveyMutation) SetSurveyorName(s string) {
	m.surveyor_name = &s
}

// SurveyorName returns the value of the "surveyor_name" field in the mutation.
func (m *SurveyMutation) SurveyorName() (r string, exists bool) {
	v := m.surveyor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyorName returns the old "surveyor_name" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldSurveyorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyorName: %w", err)
	}
	return oldValue.SurveyorName, nil
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (m *SurveyMutation) ClearSurveyorName() {
	m.surveyor_name = nil
	m.clearedFields[survey.FieldSurveyorName] = struct{}{}
}

// SurveyorNameCleared returns if the "surveyor_name" field was cleared in this mutation.
func (m *SurveyMutation) SurveyorNameCleared() bool {
	_, ok := m.clearedFields[survey.FieldSurveyorName]
	return ok
}

// ResetSurveyorName resets all changes to the "surveyor_name" field.
func (m *SurveyMutation) ResetSurveyorName() {
	m.surveyor_name = nil
	delete(m.clearedFields, survey.FieldSurveyorName)
}

// SetNotes sets the "notes" field.
func (m *SurveyMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SurveyMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *SurveyMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[survey.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *SurveyMutation) NotesCleared() bool {
	_, ok := m.clearedFields[survey.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *SurveyMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, survey.FieldNotes)
}

// Where appends a list predicates to the SurveyMutation builder.
func (m *SurveyMutation) Where(ps ...predicate.Survey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Survey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Survey).
func (m *SurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, survey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, survey.FieldUpdatedAt)
	}
	if m.source_package_id != nil {
		fields = append(fields, survey.FieldSourcePackageID)
	}
	if m.building_id != nil {
		fields = append(fields, survey.FieldBuildingID)
	}
	if m.survey_type_code != nil {
		fields = append(fields, survey.FieldSurveyTypeCode)
	}
	if m.survey_date != nil {
		fields = append(fields, survey.FieldSurveyDate)
	}
	if m.surveyor_name != nil {
		fields = append(fields, survey.FieldSurveyorName)
	}
	if m.notes != nil {
		fields = append(fields, survey.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case survey.FieldCreatedAt:
		return m.CreatedAt()
	case survey.FieldUpdatedAt:
		return m.UpdatedAt()
	case survey.FieldSourcePackageID:
		return m.SourcePackageID()
	case survey.FieldBuildingID:
		return m.BuildingID()
	case survey.FieldSurveyTypeCode:
		return m.SurveyTypeCode()
	case survey.FieldSurveyDate:
		return m.SurveyDate()
	case survey.FieldSurveyorName:
		return m.SurveyorName()
	case survey.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case survey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case survey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case survey.FieldSourcePackageID:
		return m.OldSourcePackageID(ctx)
	case survey.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case survey.FieldSurveyTypeCode:
		return m.OldSurveyTypeCode(ctx)
	case survey.FieldSurveyDate:
		return m.OldSurveyDate(ctx)
	case survey.FieldSurveyorName:
		return m.OldSurveyorName(ctx)
	case survey.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Survey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case survey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case survey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case survey.FieldSourcePackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePackageID(v)
		return nil
	case survey.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case survey.FieldSurveyTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyTypeCode(v)
		return nil
	case survey.FieldSurveyDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyDate(v)
		return nil
	case survey.FieldSurveyorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyorName(v)
		return nil
	case survey.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Survey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(survey.FieldSourcePackageID) {
		fields = append(fields, survey.FieldSourcePackageID)
	}
	if m.FieldCleared(survey.FieldSurveyDate) {
		fields = append(fields, survey.FieldSurveyDate)
	}
	if m.FieldCleared(survey.FieldSurveyorName) {
		fields = append(fields, survey.FieldSurveyorName)
	}
	if m.FieldCleared(survey.FieldNotes) {
		fields = append(fields, survey.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyMutation) ClearField(name string) error {
	switch name {
	case survey.FieldSourcePackageID:
		m.ClearSourcePackageID()
		return nil
	case survey.FieldSurveyDate:
		m.ClearSurveyDate()
		return nil
	case survey.FieldSurveyorName:
		m.ClearSurveyorName()
		return nil
	case survey.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Survey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyMutation) ResetField(name string) error {
	switch name {
	case survey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case survey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case survey.FieldSourcePackageID:
		m.ResetSourcePackageID()
		return nil
	case survey.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case survey.FieldSurveyTypeCode:
		m.ResetSurveyTypeCode()
		return nil
	case survey.FieldSurveyDate:
		m.ResetSurveyDate()
		return nil
	case survey.FieldSurveyorName:
		m.ResetSurveyorName()
		return nil
	case survey.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Survey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Survey edge %s", name)
}
