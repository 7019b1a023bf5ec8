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
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/internal/domain"
)

// StagingClaimCreate is the builder for creating a StagingClaim entity.
type StagingClaimCreate struct {
	config
	mutation *StagingClaimMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingClaimCreate) SetCreatedAt(v time.Time) *StagingClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingClaimCreate) SetNillableCreatedAt(v *time.Time) *StagingClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingClaimCreate) SetUpdatedAt(v time.Time) *StagingClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingClaimCreate) SetNillableUpdatedAt(v *time.Time) *StagingClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingClaimCreate) SetImportPackageID(v uuid.UUID) *StagingClaimCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingClaimCreate) SetOriginalEntityID(v uuid.UUID) *StagingClaimCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingClaimCreate) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingClaimCreate) SetNillableValidationStatus(v *stagingclaim.ValidationStatus) *StagingClaimCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingClaimCreate) SetDiagnostics(v []domain.Diagnostic) *StagingClaimCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingClaimCreate) SetApprovedForCommit(v bool) *StagingClaimCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingClaimCreate) SetNillableApprovedForCommit(v *bool) *StagingClaimCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingClaimCreate) SetCommittedEntityID(v uuid.UUID) *StagingClaimCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingClaimCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingClaimCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingClaimCreate) SetPayload(v *domain.ClaimRecord) *StagingClaimCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StagingClaimCreate) SetID(v uuid.UUID) *StagingClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingClaimMutation object of the builder.
func (_c *StagingClaimCreate) Mutation() *StagingClaimMutation {
	return _c.mutation
}

// Save creates the StagingClaim in the database.
func (_c *StagingClaimCreate) Save(ctx context.Context) (*StagingClaim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingClaimCreate) SaveX(ctx context.Context) *StagingClaim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingClaimCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingclaim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingclaim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingclaim.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingclaim.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingClaimCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingClaim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingClaim.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingClaim.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingClaim.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingClaim.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingclaim.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingClaim.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingClaim.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingClaim.payload"`)}
	}
	return nil
}

func (_c *StagingClaimCreate) sqlSave(ctx context.Context) (*StagingClaim, error) {
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

func (_c *StagingClaimCreate) createSpec() (*StagingClaim, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingClaim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingclaim.Table, sqlgraph.NewFieldSpec(stagingclaim.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingclaim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingclaim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingclaim.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingclaim.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingclaim.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingclaim.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingclaim.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingclaim.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingclaim.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingClaim.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingClaimUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingClaimCreate) OnConflict(opts ...sql.ConflictOption) *StagingClaimUpsertOne {
	_c.conflict = opts
	return &StagingClaimUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingClaimCreate) OnConflictColumns(columns ...string) *StagingClaimUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingClaimUpsertOne{
		create: _c,
	}
}

type (
	// StagingClaimUpsertOne is the builder for "upsert"-ing
	//  one StagingClaim node.
	StagingClaimUpsertOne struct {
		create *StagingClaimCreate
	}

	// StagingClaimUpsert is the "OnConflict" setter.
	StagingClaimUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingClaimUpsert) SetUpdatedAt(v time.Time) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdateUpdatedAt() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingClaimUpsert) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdateValidationStatus() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingClaimUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdateDiagnostics() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingClaimUpsert) ClearDiagnostics() *StagingClaimUpsert {
	u.SetNull(stagingclaim.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingClaimUpsert) SetApprovedForCommit(v bool) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdateApprovedForCommit() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingClaimUpsert) SetCommittedEntityID(v uuid.UUID) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdateCommittedEntityID() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingClaimUpsert) ClearCommittedEntityID() *StagingClaimUpsert {
	u.SetNull(stagingclaim.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingClaimUpsert) SetPayload(v *domain.ClaimRecord) *StagingClaimUpsert {
	u.Set(stagingclaim.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingClaimUpsert) UpdatePayload() *StagingClaimUpsert {
	u.SetExcluded(stagingclaim.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingclaim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingClaimUpsertOne) UpdateNewValues() *StagingClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingclaim.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingclaim.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingclaim.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingclaim.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingClaimUpsertOne) Ignore() *StagingClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingClaimUpsertOne) DoNothing() *StagingClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingClaimCreate.OnConflict
// documentation for more info.
func (u *StagingClaimUpsertOne) Update(set func(*StagingClaimUpsert)) *StagingClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingClaimUpsertOne) SetUpdatedAt(v time.Time) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdateUpdatedAt() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingClaimUpsertOne) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdateValidationStatus() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingClaimUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdateDiagnostics() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingClaimUpsertOne) ClearDiagnostics() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingClaimUpsertOne) SetApprovedForCommit(v bool) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdateApprovedForCommit() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingClaimUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdateCommittedEntityID() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingClaimUpsertOne) ClearCommittedEntityID() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingClaimUpsertOne) SetPayload(v *domain.ClaimRecord) *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingClaimUpsertOne) UpdatePayload() *StagingClaimUpsertOne {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingClaimUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingClaimCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingClaimUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingClaimUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingClaimUpsertOne.ID is not supported by MySQL driver. Use StagingClaimUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingClaimUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingClaimCreateBulk is the builder for creating many StagingClaim entities in bulk.
type StagingClaimCreateBulk struct {
	config
	err      error
	builders []*StagingClaimCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingClaim entities in the database.
func (_c *StagingClaimCreateBulk) Save(ctx context.Context) ([]*StagingClaim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingClaim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingClaimMutation)
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
func (_c *StagingClaimCreateBulk) SaveX(ctx context.Context) []*StagingClaim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingClaim.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingClaimUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingClaimCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingClaimUpsertBulk {
	_c.conflict = opts
	return &StagingClaimUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingClaimCreateBulk) OnConflictColumns(columns ...string) *StagingClaimUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingClaimUpsertBulk{
		create: _c,
	}
}

// StagingClaimUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingClaim nodes.
type StagingClaimUpsertBulk struct {
	create *StagingClaimCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingclaim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingClaimUpsertBulk) UpdateNewValues() *StagingClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingclaim.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingclaim.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingclaim.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingclaim.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingClaim.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingClaimUpsertBulk) Ignore() *StagingClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingClaimUpsertBulk) DoNothing() *StagingClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingClaimCreateBulk.OnConflict
// documentation for more info.
func (u *StagingClaimUpsertBulk) Update(set func(*StagingClaimUpsert)) *StagingClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingClaimUpsertBulk) SetUpdatedAt(v time.Time) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdateUpdatedAt() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingClaimUpsertBulk) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdateValidationStatus() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingClaimUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdateDiagnostics() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingClaimUpsertBulk) ClearDiagnostics() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingClaimUpsertBulk) SetApprovedForCommit(v bool) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdateApprovedForCommit() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingClaimUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdateCommittedEntityID() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingClaimUpsertBulk) ClearCommittedEntityID() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingClaimUpsertBulk) SetPayload(v *domain.ClaimRecord) *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingClaimUpsertBulk) UpdatePayload() *StagingClaimUpsertBulk {
	return u.Update(func(s *StagingClaimUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingClaimUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingClaimCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingClaimCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingClaimUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
