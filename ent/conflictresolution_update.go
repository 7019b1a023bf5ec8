// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/internal/domain"
)

// ConflictResolutionUpdate is the builder for updating ConflictResolution entities.
type ConflictResolutionUpdate struct {
	config
	hooks    []Hook
	mutation *ConflictResolutionMutation
}

// Where appends a list predicates to the ConflictResolutionUpdate builder.
func (_u *ConflictResolutionUpdate) Where(ps ...predicate.ConflictResolution) *ConflictResolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConflictResolutionUpdate) SetUpdatedAt(v time.Time) *ConflictResolutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *ConflictResolutionUpdate) SetCandidates(v []domain.Candidate) *ConflictResolutionUpdate {
	_u.mutation.SetCandidates(v)
	return _u
}

// AppendCandidates appends value to the "candidates" field.
func (_u *ConflictResolutionUpdate) AppendCandidates(v []domain.Candidate) *ConflictResolutionUpdate {
	_u.mutation.AppendCandidates(v)
	return _u
}

// ClearCandidates clears the value of the "candidates" field.
func (_u *ConflictResolutionUpdate) ClearCandidates() *ConflictResolutionUpdate {
	_u.mutation.ClearCandidates()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConflictResolutionUpdate) SetStatus(v conflictresolution.Status) *ConflictResolutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableStatus(v *conflictresolution.Status) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ConflictResolutionUpdate) SetResolution(v conflictresolution.Resolution) *ConflictResolutionUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableResolution(v *conflictresolution.Resolution) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *ConflictResolutionUpdate) ClearResolution() *ConflictResolutionUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetJustification sets the "justification" field.
func (_u *ConflictResolutionUpdate) SetJustification(v string) *ConflictResolutionUpdate {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableJustification(v *string) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// ClearJustification clears the value of the "justification" field.
func (_u *ConflictResolutionUpdate) ClearJustification() *ConflictResolutionUpdate {
	_u.mutation.ClearJustification()
	return _u
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (_u *ConflictResolutionUpdate) SetChosenMasterID(v uuid.UUID) *ConflictResolutionUpdate {
	_u.mutation.SetChosenMasterID(v)
	return _u
}

// SetNillableChosenMasterID sets the "chosen_master_id" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableChosenMasterID(v *uuid.UUID) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetChosenMasterID(*v)
	}
	return _u
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (_u *ConflictResolutionUpdate) ClearChosenMasterID() *ConflictResolutionUpdate {
	_u.mutation.ClearChosenMasterID()
	return _u
}

// SetMergeMapping sets the "merge_mapping" field.
func (_u *ConflictResolutionUpdate) SetMergeMapping(v map[string]int) *ConflictResolutionUpdate {
	_u.mutation.SetMergeMapping(v)
	return _u
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (_u *ConflictResolutionUpdate) ClearMergeMapping() *ConflictResolutionUpdate {
	_u.mutation.ClearMergeMapping()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ConflictResolutionUpdate) SetResolvedBy(v string) *ConflictResolutionUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableResolvedBy(v *string) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ConflictResolutionUpdate) ClearResolvedBy() *ConflictResolutionUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConflictResolutionUpdate) SetResolvedAt(v time.Time) *ConflictResolutionUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConflictResolutionUpdate) SetNillableResolvedAt(v *time.Time) *ConflictResolutionUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConflictResolutionUpdate) ClearResolvedAt() *ConflictResolutionUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConflictResolutionMutation object of the builder.
func (_u *ConflictResolutionUpdate) Mutation() *ConflictResolutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConflictResolutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConflictResolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConflictResolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConflictResolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConflictResolutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conflictresolution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConflictResolutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conflictresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := conflictresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *ConflictResolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conflictresolution.Table, conflictresolution.Columns, sqlgraph.NewFieldSpec(conflictresolution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conflictresolution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuggestedMasterIDCleared() {
		_spec.ClearField(conflictresolution.FieldSuggestedMasterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(conflictresolution.FieldCandidates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conflictresolution.FieldCandidates, value)
		})
	}
	if _u.mutation.CandidatesCleared() {
		_spec.ClearField(conflictresolution.FieldCandidates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conflictresolution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(conflictresolution.FieldResolution, field.TypeEnum, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(conflictresolution.FieldResolution, field.TypeEnum)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(conflictresolution.FieldJustification, field.TypeString, value)
	}
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(conflictresolution.FieldJustification, field.TypeString)
	}
	if value, ok := _u.mutation.ChosenMasterID(); ok {
		_spec.SetField(conflictresolution.FieldChosenMasterID, field.TypeUUID, value)
	}
	if _u.mutation.ChosenMasterIDCleared() {
		_spec.ClearField(conflictresolution.FieldChosenMasterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MergeMapping(); ok {
		_spec.SetField(conflictresolution.FieldMergeMapping, field.TypeJSON, value)
	}
	if _u.mutation.MergeMappingCleared() {
		_spec.ClearField(conflictresolution.FieldMergeMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(conflictresolution.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(conflictresolution.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(conflictresolution.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(conflictresolution.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conflictresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConflictResolutionUpdateOne is the builder for updating a single ConflictResolution entity.
type ConflictResolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConflictResolutionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConflictResolutionUpdateOne) SetUpdatedAt(v time.Time) *ConflictResolutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *ConflictResolutionUpdateOne) SetCandidates(v []domain.Candidate) *ConflictResolutionUpdateOne {
	_u.mutation.SetCandidates(v)
	return _u
}

// AppendCandidates appends value to the "candidates" field.
func (_u *ConflictResolutionUpdateOne) AppendCandidates(v []domain.Candidate) *ConflictResolutionUpdateOne {
	_u.mutation.AppendCandidates(v)
	return _u
}

// ClearCandidates clears the value of the "candidates" field.
func (_u *ConflictResolutionUpdateOne) ClearCandidates() *ConflictResolutionUpdateOne {
	_u.mutation.ClearCandidates()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConflictResolutionUpdateOne) SetStatus(v conflictresolution.Status) *ConflictResolutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableStatus(v *conflictresolution.Status) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ConflictResolutionUpdateOne) SetResolution(v conflictresolution.Resolution) *ConflictResolutionUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableResolution(v *conflictresolution.Resolution) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *ConflictResolutionUpdateOne) ClearResolution() *ConflictResolutionUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetJustification sets the "justification" field.
func (_u *ConflictResolutionUpdateOne) SetJustification(v string) *ConflictResolutionUpdateOne {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableJustification(v *string) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// ClearJustification clears the value of the "justification" field.
func (_u *ConflictResolutionUpdateOne) ClearJustification() *ConflictResolutionUpdateOne {
	_u.mutation.ClearJustification()
	return _u
}

// SetChosenMasterID sets the "chosen_master_id" field.
func (_u *ConflictResolutionUpdateOne) SetChosenMasterID(v uuid.UUID) *ConflictResolutionUpdateOne {
	_u.mutation.SetChosenMasterID(v)
	return _u
}

// SetNillableChosenMasterID sets the "chosen_master_id" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableChosenMasterID(v *uuid.UUID) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetChosenMasterID(*v)
	}
	return _u
}

// ClearChosenMasterID clears the value of the "chosen_master_id" field.
func (_u *ConflictResolutionUpdateOne) ClearChosenMasterID() *ConflictResolutionUpdateOne {
	_u.mutation.ClearChosenMasterID()
	return _u
}

// SetMergeMapping sets the "merge_mapping" field.
func (_u *ConflictResolutionUpdateOne) SetMergeMapping(v map[string]int) *ConflictResolutionUpdateOne {
	_u.mutation.SetMergeMapping(v)
	return _u
}

// ClearMergeMapping clears the value of the "merge_mapping" field.
func (_u *ConflictResolutionUpdateOne) ClearMergeMapping() *ConflictResolutionUpdateOne {
	_u.mutation.ClearMergeMapping()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ConflictResolutionUpdateOne) SetResolvedBy(v string) *ConflictResolutionUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableResolvedBy(v *string) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ConflictResolutionUpdateOne) ClearResolvedBy() *ConflictResolutionUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConflictResolutionUpdateOne) SetResolvedAt(v time.Time) *ConflictResolutionUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConflictResolutionUpdateOne) SetNillableResolvedAt(v *time.Time) *ConflictResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConflictResolutionUpdateOne) ClearResolvedAt() *ConflictResolutionUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConflictResolutionMutation object of the builder.
func (_u *ConflictResolutionUpdateOne) Mutation() *ConflictResolutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConflictResolutionUpdate builder.
func (_u *ConflictResolutionUpdateOne) Where(ps ...predicate.ConflictResolution) *ConflictResolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConflictResolutionUpdateOne) Select(field string, fields ...string) *ConflictResolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConflictResolution entity.
func (_u *ConflictResolutionUpdateOne) Save(ctx context.Context) (*ConflictResolution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConflictResolutionUpdateOne) SaveX(ctx context.Context) *ConflictResolution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConflictResolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConflictResolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConflictResolutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conflictresolution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConflictResolutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conflictresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := conflictresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ConflictResolution.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *ConflictResolutionUpdateOne) sqlSave(ctx context.Context) (_node *ConflictResolution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conflictresolution.Table, conflictresolution.Columns, sqlgraph.NewFieldSpec(conflictresolution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConflictResolution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conflictresolution.FieldID)
		for _, f := range fields {
			if !conflictresolution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conflictresolution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conflictresolution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuggestedMasterIDCleared() {
		_spec.ClearField(conflictresolution.FieldSuggestedMasterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(conflictresolution.FieldCandidates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conflictresolution.FieldCandidates, value)
		})
	}
	if _u.mutation.CandidatesCleared() {
		_spec.ClearField(conflictresolution.FieldCandidates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conflictresolution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(conflictresolution.FieldResolution, field.TypeEnum, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(conflictresolution.FieldResolution, field.TypeEnum)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(conflictresolution.FieldJustification, field.TypeString, value)
	}
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(conflictresolution.FieldJustification, field.TypeString)
	}
	if value, ok := _u.mutation.ChosenMasterID(); ok {
		_spec.SetField(conflictresolution.FieldChosenMasterID, field.TypeUUID, value)
	}
	if _u.mutation.ChosenMasterIDCleared() {
		_spec.ClearField(conflictresolution.FieldChosenMasterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MergeMapping(); ok {
		_spec.SetField(conflictresolution.FieldMergeMapping, field.TypeJSON, value)
	}
	if _u.mutation.MergeMappingCleared() {
		_spec.ClearField(conflictresolution.FieldMergeMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(conflictresolution.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(conflictresolution.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(conflictresolution.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(conflictresolution.FieldResolvedAt, field.TypeTime)
	}
	_node = &ConflictResolution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conflictresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
