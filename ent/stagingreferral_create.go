// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/stagingreferral"
	"uhc-registry.io/registry/internal/domain"
)

// StagingReferralCreate is the builder for creating a StagingReferral entity.
type StagingReferralCreate struct {
	config
	mutation *StagingReferralMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingReferralCreate) SetCreatedAt(v time.Time) *StagingReferralCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingReferralCreate) SetNillableCreatedAt(v *time.Time) *StagingReferralCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingReferralCreate) SetUpdatedAt(v time.Time) *StagingReferralCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingReferralCreate) SetNillableUpdatedAt(v *time.Time) *StagingReferralCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingReferralCreate) SetImportPackageID(v uuid.UUID) *StagingReferralCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingReferralCreate) SetOriginalEntityID(v uuid.UUID) *StagingReferralCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingReferralCreate) SetValidationStatus(v stagingreferral.ValidationStatus) *StagingReferralCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingReferralCreate) SetNillableValidationStatus(v *stagingreferral.ValidationStatus) *StagingReferralCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingReferralCreate) SetDiagnostics(v []domain.Diagnostic) *StagingReferralCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingReferralCreate) SetApprovedForCommit(v bool) *StagingReferralCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingReferralCreate) SetNillableApprovedForCommit(v *bool) *StagingReferralCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingReferralCreate) SetCommittedEntityID(v uuid.UUID) *StagingReferralCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingReferralCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingReferralCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingReferralCreate) SetPayload(v *domain.ReferralRecord) *StagingReferralCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StagingReferralCreate) SetID(v uuid.UUID) *StagingReferralCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingReferralMutation object of the builder.
func (_c *StagingReferralCreate) Mutation() *StagingReferralMutation {
	return _c.mutation
}

// Save creates the StagingReferral in the database.
func (_c *StagingReferralCreate) Save(ctx context.Context) (*StagingReferral, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingReferralCreate) SaveX(ctx context.Context) *StagingReferral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingReferralCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingReferralCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingReferralCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingreferral.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingreferral.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingreferral.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingreferral.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingReferralCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingReferral.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingReferral.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingReferral.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingReferral.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingReferral.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingreferral.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingReferral.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingReferral.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingReferral.payload"`)}
	}
	return nil
}

func (_c *StagingReferralCreate) sqlSave(ctx context.Context) (*StagingReferral, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StagingReferralCreate) createSpec() (*StagingReferral, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingReferral{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingreferral.Table, sqlgraph.NewFieldSpec(stagingreferral.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingreferral.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingreferral.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingreferral.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingreferral.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingreferral.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingreferral.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingreferral.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingreferral.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingreferral.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingReferral.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingReferralUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingReferralCreate) OnConflict(opts ...sql.ConflictOption) *StagingReferralUpsertOne {
	_c.conflict = opts
	return &StagingReferralUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingReferralCreate) OnConflictColumns(columns ...string) *StagingReferralUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingReferralUpsertOne{
		create: _c,
	}
}

type (
	// StagingReferralUpsertOne is the builder for "upsert"-ing
	//  one StagingReferral node.
	StagingReferralUpsertOne struct {
		create *StagingReferralCreate
	}

	// StagingReferralUpsert is the "OnConflict" setter.
	StagingReferralUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingReferralUpsert) SetUpdatedAt(v time.Time) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdateUpdatedAt() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingReferralUpsert) SetValidationStatus(v stagingreferral.ValidationStatus) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdateValidationStatus() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingReferralUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdateDiagnostics() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingReferralUpsert) ClearDiagnostics() *StagingReferralUpsert {
	u.SetNull(stagingreferral.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingReferralUpsert) SetApprovedForCommit(v bool) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdateApprovedForCommit() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingReferralUpsert) SetCommittedEntityID(v uuid.UUID) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdateCommittedEntityID() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingReferralUpsert) ClearCommittedEntityID() *StagingReferralUpsert {
	u.SetNull(stagingreferral.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingReferralUpsert) SetPayload(v *domain.ReferralRecord) *StagingReferralUpsert {
	u.Set(stagingreferral.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingReferralUpsert) UpdatePayload() *StagingReferralUpsert {
	u.SetExcluded(stagingreferral.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingreferral.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingReferralUpsertOne) UpdateNewValues() *StagingReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingreferral.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingreferral.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingreferral.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingreferral.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingReferralUpsertOne) Ignore() *StagingReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingReferralUpsertOne) DoNothing() *StagingReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingReferralCreate.OnConflict
// documentation for more info.
func (u *StagingReferralUpsertOne) Update(set func(*StagingReferralUpsert)) *StagingReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingReferralUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingReferralUpsertOne) SetUpdatedAt(v time.Time) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdateUpdatedAt() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingReferralUpsertOne) SetValidationStatus(v stagingreferral.ValidationStatus) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdateValidationStatus() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingReferralUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdateDiagnostics() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingReferralUpsertOne) ClearDiagnostics() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingReferralUpsertOne) SetApprovedForCommit(v bool) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdateApprovedForCommit() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingReferralUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdateCommittedEntityID() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingReferralUpsertOne) ClearCommittedEntityID() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingReferralUpsertOne) SetPayload(v *domain.ReferralRecord) *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingReferralUpsertOne) UpdatePayload() *StagingReferralUpsertOne {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingReferralUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingReferralCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingReferralUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingReferralUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingReferralUpsertOne.ID is not supported by MySQL driver. Use StagingReferralUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingReferralUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingReferralCreateBulk is the builder for creating many StagingReferral entities in bulk.
type StagingReferralCreateBulk struct {
	config
	err      error
	builders []*StagingReferralCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingReferral entities in the database.
func (_c *StagingReferralCreateBulk) Save(ctx context.Context) ([]*StagingReferral, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingReferral, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingReferralMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StagingReferralCreateBulk) SaveX(ctx context.Context) []*StagingReferral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingReferralCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingReferralCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingReferral.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingReferralUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingReferralCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingReferralUpsertBulk {
	_c.conflict = opts
	return &StagingReferralUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingReferralCreateBulk) OnConflictColumns(columns ...string) *StagingReferralUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingReferralUpsertBulk{
		create: _c,
	}
}

// StagingReferralUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingReferral nodes.
type StagingReferralUpsertBulk struct {
	create *StagingReferralCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingreferral.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingReferralUpsertBulk) UpdateNewValues() *StagingReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingreferral.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingreferral.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingreferral.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingreferral.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingReferral.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingReferralUpsertBulk) Ignore() *StagingReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingReferralUpsertBulk) DoNothing() *StagingReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingReferralCreateBulk.OnConflict
// documentation for more info.
func (u *StagingReferralUpsertBulk) Update(set func(*StagingReferralUpsert)) *StagingReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingReferralUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingReferralUpsertBulk) SetUpdatedAt(v time.Time) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdateUpdatedAt() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingReferralUpsertBulk) SetValidationStatus(v stagingreferral.ValidationStatus) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdateValidationStatus() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingReferralUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdateDiagnostics() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingReferralUpsertBulk) ClearDiagnostics() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingReferralUpsertBulk) SetApprovedForCommit(v bool) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdateApprovedForCommit() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingReferralUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdateCommittedEntityID() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingReferralUpsertBulk) ClearCommittedEntityID() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingReferralUpsertBulk) SetPayload(v *domain.ReferralRecord) *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingReferralUpsertBulk) UpdatePayload() *StagingReferralUpsertBulk {
	return u.Update(func(s *StagingReferralUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingReferralUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingReferralCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingReferralCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingReferralUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
