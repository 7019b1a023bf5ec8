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
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/internal/domain"
)

// ConflictResolutionCreate is the builder for creating a ConflictResolution entity.
type ConflictResolutionCreate struct {
	config
	mutation *ConflictResolutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConflictResolutionCreate) SetCreatedAt(v time.Time) *ConflictResolutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableCreatedAt(v *time.Time) *ConflictResolutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConflictResolutionCreate) SetUpdatedAt(v time.Time) *ConflictResolutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableUpdatedAt(v *time.Time) *ConflictResolutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *ConflictResolutionCreate) SetImportPackageID(v uuid.UUID) *ConflictResolutionCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *ConflictResolutionCreate) SetEntityType(v conflictresolution.EntityType) *ConflictResolutionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetStagingEntityID sets the "staging_entity_id" field.
func (_c *ConflictResolutionCreate) SetStagingEntityID(v uuid.UUID) *ConflictResolutionCreate {
	_c.mutation.SetStagingEntityID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ConflictResolutionCreate) SetScore(v float64) *ConflictResolutionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSuggestedMasterID sets the "suggested_master_id" field.
func (_c *ConflictResolutionCreate) SetSuggestedMasterID(v uuid.UUID) *ConflictResolutionCreate {
	_c.mutation.SetSuggestedMasterID(v)
	return _c
}

// SetNillableSuggestedMasterID sets the "suggested_master_id" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableSuggestedMasterID(v *uuid.UUID) *ConflictResolutionCreate {
	if v != nil {
		_c.SetSuggestedMasterID(*v)
	}
	return _c
}

// SetCandidates sets the "candidates" field.
func (_c *ConflictResolutionCreate) SetCandidates(v []domain.Candidate) *ConflictResolutionCreate {
	_c.mutation.SetCandidates(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConflictResolutionCreate) SetStatus(v conflictresolution.Status) *ConflictResolutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableStatus(v *conflictresolution.Status) *ConflictResolutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *ConflictResolutionCreate) SetResolution(v conflictresolution.Resolution) *ConflictResolutionCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableResolution(v *conflictresolution.Resolution) *ConflictResolutionCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetJustification sets the "justification" field.
func (_c *ConflictResolutionCreate) SetJustification(v string) *ConflictResolutionCreate {
	_c.mutation.SetJustification(v)
	return _c
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableJustification(v *string) *ConflictResolutionCreate {
	if v != nil {
		_c.SetJustification(*v)
	}
	return _c
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (_c *ConflictResolutionCreate) SetChosenMasterID(v uuid.UUID) *ConflictResolutionCreate {
	_c.mutation.SetChosenMasterID(v)
	return _c
}

// SetNillableChosenMasterID sets the "chosen_master_id" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableChosenMasterID(v *uuid.UUID) *ConflictResolutionCreate {
	if v != nil {
		_c.SetChosenMasterID(*v)
	}
	return _c
}

// SetMergeMapping sets the "merge_mapping" field.
func (_c *ConflictResolutionCreate) SetMergeMapping(v map[string]int) *ConflictResolutionCreate {
	_c.mutation.SetMergeMapping(v)
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *ConflictResolutionCreate) SetResolvedBy(v string) *ConflictResolutionCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableResolvedBy(v *string) *ConflictResolutionCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ConflictResolutionCreate) SetResolvedAt(v time.Time) *ConflictResolutionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ConflictResolutionCreate) SetNillableResolvedAt(v *time.Time) *ConflictResolutionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConflictResolutionCreate) SetID(v uuid.UUID) *ConflictResolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConflictResolutionMutation object of the builder.
func (_c *ConflictResolutionCreate) Mutation() *ConflictResolutionMutation {
	return _c.mutation
}

// Save creates the ConflictResolution in the database.
func (_c *ConflictResolutionCreate) Save(ctx context.Context) (*ConflictResolution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConflictResolutionCreate) SaveX(ctx context.Context) *ConflictResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConflictResolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConflictResolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConflictResolutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conflictresolution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conflictresolution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := conflictresolution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConflictResolutionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConflictResolution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConflictResolution.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "ConflictResolution.import_package_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "ConflictResolution.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := conflictresolution.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StagingEntityID(); !ok {
		return &ValidationError{Name: "staging_entity_id", err: errors.New(`ent: missing required field "ConflictResolution.staging_entity_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ConflictResolution.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := conflictresolution.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConflictResolution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conflictresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := conflictresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.resolution": %w`, err)}
		}
	}
	return nil
}

func (_c *ConflictResolutionCreate) sqlSave(ctx context.Context) (*ConflictResolution, error) {
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

func (_c *ConflictResolutionCreate) createSpec() (*ConflictResolution, *sqlgraph.CreateSpec) {
	var (
		_node = &ConflictResolution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conflictresolution.Table, sqlgraph.NewFieldSpec(conflictresolution.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conflictresolution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conflictresolution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(conflictresolution.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(conflictresolution.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.StagingEntityID(); ok {
		_spec.SetField(conflictresolution.FieldStagingEntityID, field.TypeUUID, value)
		_node.StagingEntityID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(conflictresolution.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.SuggestedMasterID(); ok {
		_spec.SetField(conflictresolution.FieldSuggestedMasterID, field.TypeUUID, value)
		_node.SuggestedMasterID = &value
	}
	if value, ok := _c.mutation.Candidates(); ok {
		_spec.SetField(conflictresolution.FieldCandidates, field.TypeJSON, value)
		_node.Candidates = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conflictresolution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(conflictresolution.FieldResolution, field.TypeEnum, value)
		_node.Resolution = &value
	}
	if value, ok := _c.mutation.Justification(); ok {
		_spec.SetField(conflictresolution.FieldJustification, field.TypeString, value)
		_node.Justification = value
	}
	if value, ok := _c.mutation.ChosenMasterID(); ok {
		_spec.SetField(conflictresolution.FieldChosenMasterID, field.TypeUUID, value)
		_node.ChosenMasterID = &value
	}
	if value, ok := _c.mutation.MergeMapping(); ok {
		_spec.SetField(conflictresolution.FieldMergeMapping, field.TypeJSON, value)
		_node.MergeMapping = value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(conflictresolution.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(conflictresolution.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConflictResolution.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConflictResolutionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConflictResolutionCreate) OnConflict(opts ...sql.ConflictOption) *ConflictResolutionUpsertOne {
	_c.conflict = opts
	return &ConflictResolutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConflictResolutionCreate) OnConflictColumns(columns ...string) *ConflictResolutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConflictResolutionUpsertOne{
		create: _c,
	}
}

type (
	// ConflictResolutionUpsertOne is the builder for "upsert"-ing
	//  one ConflictResolution node.
	ConflictResolutionUpsertOne struct {
		create *ConflictResolutionCreate
	}

	// ConflictResolutionUpsert is the "OnConflict" setter.
	ConflictResolutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ConflictResolutionUpsert) SetUpdatedAt(v time.Time) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateUpdatedAt() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldUpdatedAt)
	return u
}

// SetCandidates sets the "candidates" field.
func (u *ConflictResolutionUpsert) SetCandidates(v []domain.Candidate) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldCandidates, v)
	return u
}

// UpdateCandidates sets the "candidates" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateCandidates() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldCandidates)
	return u
}

// ClearCandidates clears the value of the "candidates" field.
func (u *ConflictResolutionUpsert) ClearCandidates() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldCandidates)
	return u
}

// SetStatus sets the "status" field.
func (u *ConflictResolutionUpsert) SetStatus(v conflictresolution.Status) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateStatus() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldStatus)
	return u
}

// SetResolution sets the "resolution" field.
func (u *ConflictResolutionUpsert) SetResolution(v conflictresolution.Resolution) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldResolution, v)
	return u
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateResolution() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldResolution)
	return u
}

// ClearResolution clears the value of the "resolution" field.
func (u *ConflictResolutionUpsert) ClearResolution() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldResolution)
	return u
}

// SetJustification sets the "justification" field.
func (u *ConflictResolutionUpsert) SetJustification(v string) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldJustification, v)
	return u
}

// UpdateJustification sets the "justification" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateJustification() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldJustification)
	return u
}

// ClearJustification clears the value of the "justification" field.
func (u *ConflictResolutionUpsert) ClearJustification() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldJustification)
	return u
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (u *ConflictResolutionUpsert) SetChosenMasterID(v uuid.UUID) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldChosenMasterID, v)
	return u
}

// UpdateChosenMasterID sets the "chosen_master_id" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateChosenMasterID() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldChosenMasterID)
	return u
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (u *ConflictResolutionUpsert) ClearChosenMasterID() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldChosenMasterID)
	return u
}

// SetMergeMapping sets the "merge_mapping" field.
func (u *ConflictResolutionUpsert) SetMergeMapping(v map[string]int) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldMergeMapping, v)
	return u
}

// UpdateMergeMapping sets the "merge_mapping" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateMergeMapping() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldMergeMapping)
	return u
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (u *ConflictResolutionUpsert) ClearMergeMapping() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldMergeMapping)
	return u
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ConflictResolutionUpsert) SetResolvedBy(v string) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldResolvedBy, v)
	return u
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateResolvedBy() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldResolvedBy)
	return u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ConflictResolutionUpsert) ClearResolvedBy() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldResolvedBy)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictResolutionUpsert) SetResolvedAt(v time.Time) *ConflictResolutionUpsert {
	u.Set(conflictresolution.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsert) UpdateResolvedAt() *ConflictResolutionUpsert {
	u.SetExcluded(conflictresolution.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictResolutionUpsert) ClearResolvedAt() *ConflictResolutionUpsert {
	u.SetNull(conflictresolution.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conflictresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConflictResolutionUpsertOne) UpdateNewValues() *ConflictResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conflictresolution.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conflictresolution.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(conflictresolution.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.EntityType(); exists {
			s.SetIgnore(conflictresolution.FieldEntityType)
		}
		if _, exists := u.create.mutation.StagingEntityID(); exists {
			s.SetIgnore(conflictresolution.FieldStagingEntityID)
		}
		if _, exists := u.create.mutation.Score(); exists {
			s.SetIgnore(conflictresolution.FieldScore)
		}
		if _, exists := u.create.mutation.SuggestedMasterID(); exists {
			s.SetIgnore(conflictresolution.FieldSuggestedMasterID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConflictResolutionUpsertOne) Ignore() *ConflictResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConflictResolutionUpsertOne) DoNothing() *ConflictResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConflictResolutionCreate.OnConflict
// documentation for more info.
func (u *ConflictResolutionUpsertOne) Update(set func(*ConflictResolutionUpsert)) *ConflictResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConflictResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConflictResolutionUpsertOne) SetUpdatedAt(v time.Time) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateUpdatedAt() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCandidates sets the "candidates" field.
func (u *ConflictResolutionUpsertOne) SetCandidates(v []domain.Candidate) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetCandidates(v)
	})
}

// UpdateCandidates sets the "candidates" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateCandidates() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateCandidates()
	})
}

// ClearCandidates clears the value of the "candidates" field.
func (u *ConflictResolutionUpsertOne) ClearCandidates() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearCandidates()
	})
}

// SetStatus sets the "status" field.
func (u *ConflictResolutionUpsertOne) SetStatus(v conflictresolution.Status) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateStatus() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *ConflictResolutionUpsertOne) SetResolution(v conflictresolution.Resolution) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateResolution() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *ConflictResolutionUpsertOne) ClearResolution() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolution()
	})
}

// SetJustification sets the "justification" field.
func (u *ConflictResolutionUpsertOne) SetJustification(v string) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetJustification(v)
	})
}

// UpdateJustification sets the "justification" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateJustification() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateJustification()
	})
}

// ClearJustification clears the value of the "justification" field.
func (u *ConflictResolutionUpsertOne) ClearJustification() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearJustification()
	})
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (u *ConflictResolutionUpsertOne) SetChosenMasterID(v uuid.UUID) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetChosenMasterID(v)
	})
}

// UpdateChosenMasterID sets the "chosen_master_id" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateChosenMasterID() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateChosenMasterID()
	})
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (u *ConflictResolutionUpsertOne) ClearChosenMasterID() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearChosenMasterID()
	})
}

// SetMergeMapping sets the "merge_mapping" field.
func (u *ConflictResolutionUpsertOne) SetMergeMapping(v map[string]int) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetMergeMapping(v)
	})
}

// UpdateMergeMapping sets the "merge_mapping" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateMergeMapping() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateMergeMapping()
	})
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (u *ConflictResolutionUpsertOne) ClearMergeMapping() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearMergeMapping()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ConflictResolutionUpsertOne) SetResolvedBy(v string) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateResolvedBy() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ConflictResolutionUpsertOne) ClearResolvedBy() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictResolutionUpsertOne) SetResolvedAt(v time.Time) *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsertOne) UpdateResolvedAt() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictResolutionUpsertOne) ClearResolvedAt() *ConflictResolutionUpsertOne {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ConflictResolutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConflictResolutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConflictResolutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConflictResolutionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConflictResolutionUpsertOne.ID is not supported by MySQL driver. Use ConflictResolutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConflictResolutionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConflictResolutionCreateBulk is the builder for creating many ConflictResolution entities in bulk.
type ConflictResolutionCreateBulk struct {
	config
	err      error
	builders []*ConflictResolutionCreate
	conflict []sql.ConflictOption
}

// Save creates the ConflictResolution entities in the database.
func (_c *ConflictResolutionCreateBulk) Save(ctx context.Context) ([]*ConflictResolution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConflictResolution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConflictResolutionMutation)
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
func (_c *ConflictResolutionCreateBulk) SaveX(ctx context.Context) []*ConflictResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConflictResolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConflictResolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConflictResolution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConflictResolutionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConflictResolutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConflictResolutionUpsertBulk {
	_c.conflict = opts
	return &ConflictResolutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConflictResolutionCreateBulk) OnConflictColumns(columns ...string) *ConflictResolutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConflictResolutionUpsertBulk{
		create: _c,
	}
}

// ConflictResolutionUpsertBulk is the builder for "upsert"-ing
// a bulk of ConflictResolution nodes.
type ConflictResolutionUpsertBulk struct {
	create *ConflictResolutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conflictresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConflictResolutionUpsertBulk) UpdateNewValues() *ConflictResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conflictresolution.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conflictresolution.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(conflictresolution.FieldImportPackageID)
			}
			if _, exists := b.mutation.EntityType(); exists {
				s.SetIgnore(conflictresolution.FieldEntityType)
			}
			if _, exists := b.mutation.StagingEntityID(); exists {
				s.SetIgnore(conflictresolution.FieldStagingEntityID)
			}
			if _, exists := b.mutation.Score(); exists {
				s.SetIgnore(conflictresolution.FieldScore)
			}
			if _, exists := b.mutation.SuggestedMasterID(); exists {
				s.SetIgnore(conflictresolution.FieldSuggestedMasterID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConflictResolution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConflictResolutionUpsertBulk) Ignore() *ConflictResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConflictResolutionUpsertBulk) DoNothing() *ConflictResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConflictResolutionCreateBulk.OnConflict
// documentation for more info.
func (u *ConflictResolutionUpsertBulk) Update(set func(*ConflictResolutionUpsert)) *ConflictResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConflictResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConflictResolutionUpsertBulk) SetUpdatedAt(v time.Time) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateUpdatedAt() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCandidates sets the "candidates" field.
func (u *ConflictResolutionUpsertBulk) SetCandidates(v []domain.Candidate) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetCandidates(v)
	})
}

// UpdateCandidates sets the "candidates" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateCandidates() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateCandidates()
	})
}

// ClearCandidates clears the value of the "candidates" field.
func (u *ConflictResolutionUpsertBulk) ClearCandidates() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearCandidates()
	})
}

// SetStatus sets the "status" field.
func (u *ConflictResolutionUpsertBulk) SetStatus(v conflictresolution.Status) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateStatus() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *ConflictResolutionUpsertBulk) SetResolution(v conflictresolution.Resolution) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateResolution() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *ConflictResolutionUpsertBulk) ClearResolution() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolution()
	})
}

// SetJustification sets the "justification" field.
func (u *ConflictResolutionUpsertBulk) SetJustification(v string) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetJustification(v)
	})
}

// UpdateJustification sets the "justification" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateJustification() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateJustification()
	})
}

// ClearJustification clears the value of the "justification" field.
func (u *ConflictResolutionUpsertBulk) ClearJustification() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearJustification()
	})
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (u *ConflictResolutionUpsertBulk) SetChosenMasterID(v uuid.UUID) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetChosenMasterID(v)
	})
}

// UpdateChosenMasterID sets the "chosen_master_id" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateChosenMasterID() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateChosenMasterID()
	})
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (u *ConflictResolutionUpsertBulk) ClearChosenMasterID() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearChosenMasterID()
	})
}

// SetMergeMapping sets the "merge_mapping" field.
func (u *ConflictResolutionUpsertBulk) SetMergeMapping(v map[string]int) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetMergeMapping(v)
	})
}

// UpdateMergeMapping sets the "merge_mapping" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateMergeMapping() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateMergeMapping()
	})
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (u *ConflictResolutionUpsertBulk) ClearMergeMapping() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearMergeMapping()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ConflictResolutionUpsertBulk) SetResolvedBy(v string) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateResolvedBy() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ConflictResolutionUpsertBulk) ClearResolvedBy() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictResolutionUpsertBulk) SetResolvedAt(v time.Time) *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictResolutionUpsertBulk) UpdateResolvedAt() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictResolutionUpsertBulk) ClearResolvedAt() *ConflictResolutionUpsertBulk {
	return u.Update(func(s *ConflictResolutionUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ConflictResolutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConflictResolutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConflictResolutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConflictResolutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
