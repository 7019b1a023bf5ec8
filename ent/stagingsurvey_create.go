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
	"uhc-registry.io/registry/ent/stagingsurvey"
	"uhc-registry.io/registry/internal/domain"
)

// StagingSurveyCreate is the builder for creating a StagingSurvey entity.
type StagingSurveyCreate struct {
	config
	mutation *StagingSurveyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingSurveyCreate) SetCreatedAt(v time.Time) *StagingSurveyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingSurveyCreate) SetNillableCreatedAt(v *time.Time) *StagingSurveyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingSurveyCreate) SetUpdatedAt(v time.Time) *StagingSurveyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingSurveyCreate) SetNillableUpdatedAt(v *time.Time) *StagingSurveyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingSurveyCreate) SetImportPackageID(v uuid.UUID) *StagingSurveyCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingSurveyCreate) SetOriginalEntityID(v uuid.UUID) *StagingSurveyCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingSurveyCreate) SetValidationStatus(v stagingsurvey.ValidationStatus) *StagingSurveyCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingSurveyCreate) SetNillableValidationStatus(v *stagingsurvey.ValidationStatus) *StagingSurveyCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingSurveyCreate) SetDiagnostics(v []domain.Diagnostic) *StagingSurveyCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingSurveyCreate) SetApprovedForCommit(v bool) *StagingSurveyCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingSurveyCreate) SetNillableApprovedForCommit(v *bool) *StagingSurveyCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingSurveyCreate) SetCommittedEntityID(v uuid.UUID) *StagingSurveyCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingSurveyCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingSurveyCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingSurveyCreate) SetPayload(v *domain.SurveyRecord) *StagingSurveyCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StagingSurveyCreate) SetID(v uuid.UUID) *StagingSurveyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingSurveyMutation object of the builder.
func (_c *StagingSurveyCreate) Mutation() *StagingSurveyMutation {
	return _c.mutation
}

// Save creates the StagingSurvey in the database.
func (_c *StagingSurveyCreate) Save(ctx context.Context) (*StagingSurvey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingSurveyCreate) SaveX(ctx context.Context) *StagingSurvey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingSurveyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingSurveyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingSurveyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingsurvey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingsurvey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingsurvey.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingsurvey.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingSurveyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingSurvey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingSurvey.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingSurvey.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingSurvey.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingSurvey.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingsurvey.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingSurvey.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingSurvey.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingSurvey.payload"`)}
	}
	return nil
}

func (_c *StagingSurveyCreate) sqlSave(ctx context.Context) (*StagingSurvey, error) {
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

func (_c *StagingSurveyCreate) createSpec() (*StagingSurvey, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingSurvey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingsurvey.Table, sqlgraph.NewFieldSpec(stagingsurvey.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingsurvey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingsurvey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingsurvey.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingsurvey.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingsurvey.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingsurvey.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingsurvey.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingsurvey.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingsurvey.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingSurvey.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingSurveyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingSurveyCreate) OnConflict(opts ...sql.ConflictOption) *StagingSurveyUpsertOne {
	_c.conflict = opts
	return &StagingSurveyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingSurveyCreate) OnConflictColumns(columns ...string) *StagingSurveyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingSurveyUpsertOne{
		create: _c,
	}
}

type (
	// StagingSurveyUpsertOne is the builder for "upsert"-ing
	//  one StagingSurvey node.
	StagingSurveyUpsertOne struct {
		create *StagingSurveyCreate
	}

	// StagingSurveyUpsert is the "OnConflict" setter.
	StagingSurveyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingSurveyUpsert) SetUpdatedAt(v time.Time) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdateUpdatedAt() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingSurveyUpsert) SetValidationStatus(v stagingsurvey.ValidationStatus) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdateValidationStatus() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingSurveyUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdateDiagnostics() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingSurveyUpsert) ClearDiagnostics() *StagingSurveyUpsert {
	u.SetNull(stagingsurvey.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingSurveyUpsert) SetApprovedForCommit(v bool) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdateApprovedForCommit() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingSurveyUpsert) SetCommittedEntityID(v uuid.UUID) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdateCommittedEntityID() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingSurveyUpsert) ClearCommittedEntityID() *StagingSurveyUpsert {
	u.SetNull(stagingsurvey.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingSurveyUpsert) SetPayload(v *domain.SurveyRecord) *StagingSurveyUpsert {
	u.Set(stagingsurvey.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingSurveyUpsert) UpdatePayload() *StagingSurveyUpsert {
	u.SetExcluded(stagingsurvey.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingsurvey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingSurveyUpsertOne) UpdateNewValues() *StagingSurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingsurvey.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingsurvey.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingsurvey.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingsurvey.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingSurveyUpsertOne) Ignore() *StagingSurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingSurveyUpsertOne) DoNothing() *StagingSurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingSurveyCreate.OnConflict
// documentation for more info.
func (u *StagingSurveyUpsertOne) Update(set func(*StagingSurveyUpsert)) *StagingSurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingSurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingSurveyUpsertOne) SetUpdatedAt(v time.Time) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdateUpdatedAt() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingSurveyUpsertOne) SetValidationStatus(v stagingsurvey.ValidationStatus) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdateValidationStatus() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingSurveyUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdateDiagnostics() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingSurveyUpsertOne) ClearDiagnostics() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingSurveyUpsertOne) SetApprovedForCommit(v bool) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdateApprovedForCommit() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingSurveyUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdateCommittedEntityID() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingSurveyUpsertOne) ClearCommittedEntityID() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingSurveyUpsertOne) SetPayload(v *domain.SurveyRecord) *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingSurveyUpsertOne) UpdatePayload() *StagingSurveyUpsertOne {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingSurveyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingSurveyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingSurveyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingSurveyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingSurveyUpsertOne.ID is not supported by MySQL driver. Use StagingSurveyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingSurveyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingSurveyCreateBulk is the builder for creating many StagingSurvey entities in bulk.
type StagingSurveyCreateBulk struct {
	config
	err      error
	builders []*StagingSurveyCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingSurvey entities in the database.
func (_c *StagingSurveyCreateBulk) Save(ctx context.Context) ([]*StagingSurvey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingSurvey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingSurveyMutation)
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
func (_c *StagingSurveyCreateBulk) SaveX(ctx context.Context) []*StagingSurvey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingSurveyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingSurveyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingSurvey.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingSurveyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingSurveyCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingSurveyUpsertBulk {
	_c.conflict = opts
	return &StagingSurveyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingSurveyCreateBulk) OnConflictColumns(columns ...string) *StagingSurveyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingSurveyUpsertBulk{
		create: _c,
	}
}

// StagingSurveyUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingSurvey nodes.
type StagingSurveyUpsertBulk struct {
	create *StagingSurveyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingsurvey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingSurveyUpsertBulk) UpdateNewValues() *StagingSurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingsurvey.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingsurvey.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingsurvey.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingsurvey.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingSurvey.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingSurveyUpsertBulk) Ignore() *StagingSurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingSurveyUpsertBulk) DoNothing() *StagingSurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingSurveyCreateBulk.OnConflict
// documentation for more info.
func (u *StagingSurveyUpsertBulk) Update(set func(*StagingSurveyUpsert)) *StagingSurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingSurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingSurveyUpsertBulk) SetUpdatedAt(v time.Time) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdateUpdatedAt() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingSurveyUpsertBulk) SetValidationStatus(v stagingsurvey.ValidationStatus) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdateValidationStatus() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingSurveyUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdateDiagnostics() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingSurveyUpsertBulk) ClearDiagnostics() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingSurveyUpsertBulk) SetApprovedForCommit(v bool) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdateApprovedForCommit() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingSurveyUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdateCommittedEntityID() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingSurveyUpsertBulk) ClearCommittedEntityID() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingSurveyUpsertBulk) SetPayload(v *domain.SurveyRecord) *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingSurveyUpsertBulk) UpdatePayload() *StagingSurveyUpsertBulk {
	return u.Update(func(s *StagingSurveyUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingSurveyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingSurveyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingSurveyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingSurveyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
