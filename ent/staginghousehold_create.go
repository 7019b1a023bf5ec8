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
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/internal/domain"
)

// StagingHouseholdCreate is the builder for creating a StagingHousehold entity.
type StagingHouseholdCreate struct {
	config
	mutation *StagingHouseholdMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingHouseholdCreate) SetCreatedAt(v time.Time) *StagingHouseholdCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingHouseholdCreate) SetNillableCreatedAt(v *time.Time) *StagingHouseholdCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingHouseholdCreate) SetUpdatedAt(v time.Time) *StagingHouseholdCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingHouseholdCreate) SetNillableUpdatedAt(v *time.Time) *StagingHouseholdCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingHouseholdCreate) SetImportPackageID(v uuid.UUID) *StagingHouseholdCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingHouseholdCreate) SetOriginalEntityID(v uuid.UUID) *StagingHouseholdCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingHouseholdCreate) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingHouseholdCreate) SetNillableValidationStatus(v *staginghousehold.ValidationStatus) *StagingHouseholdCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingHouseholdCreate) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingHouseholdCreate) SetApprovedForCommit(v bool) *StagingHouseholdCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingHouseholdCreate) SetNillableApprovedForCommit(v *bool) *StagingHouseholdCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingHouseholdCreate) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingHouseholdCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingHouseholdCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingHouseholdCreate) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StagingHouseholdCreate) SetID(v uuid.UUID) *StagingHouseholdCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingHouseholdMutation object of the builder.
func (_c *StagingHouseholdCreate) Mutation() *StagingHouseholdMutation {
	return _c.mutation
}

// Save creates the StagingHousehold in the database.
func (_c *StagingHouseholdCreate) Save(ctx context.Context) (*StagingHousehold, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingHouseholdCreate) SaveX(ctx context.Context) *StagingHousehold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingHouseholdCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingHouseholdCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingHouseholdCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staginghousehold.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staginghousehold.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := staginghousehold.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := staginghousehold.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingHouseholdCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingHousehold.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingHousehold.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingHousehold.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingHousehold.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingHousehold.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := staginghousehold.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingHousehold.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingHousehold.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingHousehold.payload"`)}
	}
	return nil
}

func (_c *StagingHouseholdCreate) sqlSave(ctx context.Context) (*StagingHousehold, error) {
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

func (_c *StagingHouseholdCreate) createSpec() (*StagingHousehold, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingHousehold{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staginghousehold.Table, sqlgraph.NewFieldSpec(staginghousehold.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staginghousehold.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staginghousehold.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(staginghousehold.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(staginghousehold.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(staginghousehold.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(staginghousehold.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(staginghousehold.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(staginghousehold.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(staginghousehold.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingHousehold.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingHouseholdUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingHouseholdCreate) OnConflict(opts ...sql.ConflictOption) *StagingHouseholdUpsertOne {
	_c.conflict = opts
	return &StagingHouseholdUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingHouseholdCreate) OnConflictColumns(columns ...string) *StagingHouseholdUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingHouseholdUpsertOne{
		create: _c,
	}
}

type (
	// StagingHouseholdUpsertOne is the builder for "upsert"-ing
	//  one StagingHousehold node.
	StagingHouseholdUpsertOne struct {
		create *StagingHouseholdCreate
	}

	// StagingHouseholdUpsert is the "OnConflict" setter.
	StagingHouseholdUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingHouseholdUpsert) SetUpdatedAt(v time.Time) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdateUpdatedAt() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingHouseholdUpsert) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdateValidationStatus() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingHouseholdUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdateDiagnostics() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingHouseholdUpsert) ClearDiagnostics() *StagingHouseholdUpsert {
	u.SetNull(staginghousehold.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingHouseholdUpsert) SetApprovedForCommit(v bool) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdateApprovedForCommit() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingHouseholdUpsert) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdateCommittedEntityID() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingHouseholdUpsert) ClearCommittedEntityID() *StagingHouseholdUpsert {
	u.SetNull(staginghousehold.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingHouseholdUpsert) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdUpsert {
	u.Set(staginghousehold.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingHouseholdUpsert) UpdatePayload() *StagingHouseholdUpsert {
	u.SetExcluded(staginghousehold.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staginghousehold.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingHouseholdUpsertOne) UpdateNewValues() *StagingHouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(staginghousehold.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staginghousehold.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(staginghousehold.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(staginghousehold.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingHouseholdUpsertOne) Ignore() *StagingHouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingHouseholdUpsertOne) DoNothing() *StagingHouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingHouseholdCreate.OnConflict
// documentation for more info.
func (u *StagingHouseholdUpsertOne) Update(set func(*StagingHouseholdUpsert)) *StagingHouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingHouseholdUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingHouseholdUpsertOne) SetUpdatedAt(v time.Time) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdateUpdatedAt() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingHouseholdUpsertOne) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdateValidationStatus() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingHouseholdUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdateDiagnostics() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingHouseholdUpsertOne) ClearDiagnostics() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingHouseholdUpsertOne) SetApprovedForCommit(v bool) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdateApprovedForCommit() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingHouseholdUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdateCommittedEntityID() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingHouseholdUpsertOne) ClearCommittedEntityID() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingHouseholdUpsertOne) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingHouseholdUpsertOne) UpdatePayload() *StagingHouseholdUpsertOne {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingHouseholdUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingHouseholdCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingHouseholdUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingHouseholdUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingHouseholdUpsertOne.ID is not supported by MySQL driver. Use StagingHouseholdUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingHouseholdUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingHouseholdCreateBulk is the builder for creating many StagingHousehold entities in bulk.
type StagingHouseholdCreateBulk struct {
	config
	err      error
	builders []*StagingHouseholdCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingHousehold entities in the database.
func (_c *StagingHouseholdCreateBulk) Save(ctx context.Context) ([]*StagingHousehold, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingHousehold, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingHouseholdMutation)
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
func (_c *StagingHouseholdCreateBulk) SaveX(ctx context.Context) []*StagingHousehold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingHouseholdCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingHouseholdCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingHousehold.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingHouseholdUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingHouseholdCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingHouseholdUpsertBulk {
	_c.conflict = opts
	return &StagingHouseholdUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingHouseholdCreateBulk) OnConflictColumns(columns ...string) *StagingHouseholdUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingHouseholdUpsertBulk{
		create: _c,
	}
}

// StagingHouseholdUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingHousehold nodes.
type StagingHouseholdUpsertBulk struct {
	create *StagingHouseholdCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staginghousehold.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingHouseholdUpsertBulk) UpdateNewValues() *StagingHouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(staginghousehold.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staginghousehold.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(staginghousehold.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(staginghousehold.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingHousehold.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingHouseholdUpsertBulk) Ignore() *StagingHouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingHouseholdUpsertBulk) DoNothing() *StagingHouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingHouseholdCreateBulk.OnConflict
// documentation for more info.
func (u *StagingHouseholdUpsertBulk) Update(set func(*StagingHouseholdUpsert)) *StagingHouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingHouseholdUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingHouseholdUpsertBulk) SetUpdatedAt(v time.Time) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdateUpdatedAt() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingHouseholdUpsertBulk) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdateValidationStatus() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingHouseholdUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdateDiagnostics() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingHouseholdUpsertBulk) ClearDiagnostics() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingHouseholdUpsertBulk) SetApprovedForCommit(v bool) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdateApprovedForCommit() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingHouseholdUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdateCommittedEntityID() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingHouseholdUpsertBulk) ClearCommittedEntityID() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingHouseholdUpsertBulk) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingHouseholdUpsertBulk) UpdatePayload() *StagingHouseholdUpsertBulk {
	return u.Update(func(s *StagingHouseholdUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingHouseholdUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingHouseholdCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingHouseholdCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingHouseholdUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
