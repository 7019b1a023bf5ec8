// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/claim"
	"uhc-registry.io/registry/ent/predicate"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdate) SetUpdatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimNumber sets the "claim_number" field.
func (_u *ClaimUpdate) SetClaimNumber(v string) *ClaimUpdate {
	_u.mutation.SetClaimNumber(v)
	return _u
}

// SetNillableClaimNumber sets the "claim_number" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimNumber(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimNumber(*v)
	}
	return _u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_u *ClaimUpdate) SetPropertyUnitID(v uuid.UUID) *ClaimUpdate {
	_u.mutation.SetPropertyUnitID(v)
	return _u
}

// SetNillablePropertyUnitID sets the "property_unit_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePropertyUnitID(v *uuid.UUID) *ClaimUpdate {
	if v != nil {
		_u.SetPropertyUnitID(*v)
	}
	return _u
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (_u *ClaimUpdate) SetPrimaryClaimantID(v uuid.UUID) *ClaimUpdate {
	_u.mutation.SetPrimaryClaimantID(v)
	return _u
}

// SetNillablePrimaryClaimantID sets the "primary_claimant_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePrimaryClaimantID(v *uuid.UUID) *ClaimUpdate {
	if v != nil {
		_u.SetPrimaryClaimantID(*v)
	}
	return _u
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (_u *ClaimUpdate) SetClaimTypeCode(v string) *ClaimUpdate {
	_u.mutation.SetClaimTypeCode(v)
	return _u
}

// SetNillableClaimTypeCode sets the "claim_type_code" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimTypeCode(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimTypeCode(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ClaimUpdate) SetStatusCode(v string) *ClaimUpdate {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableStatusCode(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// SetClaimedShare sets the "claimed_share" field.
func (_u *ClaimUpdate) SetClaimedShare(v float64) *ClaimUpdate {
	_u.mutation.ResetClaimedShare()
	_u.mutation.SetClaimedShare(v)
	return _u
}

// SetNillableClaimedShare sets the "claimed_share" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimedShare(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetClaimedShare(*v)
	}
	return _u
}

// AddClaimedShare adds value to the "claimed_share" field.
func (_u *ClaimUpdate) AddClaimedShare(v float64) *ClaimUpdate {
	_u.mutation.AddClaimedShare(v)
	return _u
}

// SetSubmissionDate sets the "submission_date" field.
func (_u *ClaimUpdate) SetSubmissionDate(v time.Time) *ClaimUpdate {
	_u.mutation.SetSubmissionDate(v)
	return _u
}

// SetNillableSubmissionDate sets the "submission_date" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableSubmissionDate(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetSubmissionDate(*v)
	}
	return _u
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (_u *ClaimUpdate) ClearSubmissionDate() *ClaimUpdate {
	_u.mutation.ClearSubmissionDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ClaimUpdate) SetNotes(v string) *ClaimUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableNotes(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ClaimUpdate) ClearNotes() *ClaimUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimTypeCode(); ok {
		if err := claim.ClaimTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type_code", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimedShare(); ok {
		if err := claim.ClaimedShareValidator(v); err != nil {
			return &ValidationError{Name: "claimed_share", err: fmt.Errorf(`ent: validator failed for field "Claim.claimed_share": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(claim.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyUnitID(); ok {
		_spec.SetField(claim.FieldPropertyUnitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PrimaryClaimantID(); ok {
		_spec.SetField(claim.FieldPrimaryClaimantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClaimTypeCode(); ok {
		_spec.SetField(claim.FieldClaimTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(claim.FieldStatusCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimedShare(); ok {
		_spec.SetField(claim.FieldClaimedShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClaimedShare(); ok {
		_spec.AddField(claim.FieldClaimedShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubmissionDate(); ok {
		_spec.SetField(claim.FieldSubmissionDate, field.TypeTime, value)
	}
	if _u.mutation.SubmissionDateCleared() {
		_spec.ClearField(claim.FieldSubmissionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(claim.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(claim.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdateOne) SetUpdatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimNumber sets the "claim_number" field.
func (_u *ClaimUpdateOne) SetClaimNumber(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimNumber(v)
	return _u
}

// SetNillableClaimNumber sets the "claim_number" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimNumber(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimNumber(*v)
	}
	return _u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_u *ClaimUpdateOne) SetPropertyUnitID(v uuid.UUID) *ClaimUpdateOne {
	_u.mutation.SetPropertyUnitID(v)
	return _u
}

// SetNillablePropertyUnitID sets the "property_unit_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePropertyUnitID(v *uuid.UUID) *ClaimUpdateOne {
	if v != nil {
		_u.SetPropertyUnitID(*v)
	}
	return _u
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (_u *ClaimUpdateOne) SetPrimaryClaimantID(v uuid.UUID) *ClaimUpdateOne {
	_u.mutation.SetPrimaryClaimantID(v)
	return _u
}

// SetNillablePrimaryClaimantID sets the "primary_claimant_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePrimaryClaimantID(v *uuid.UUID) *ClaimUpdateOne {
	if v != nil {
		_u.SetPrimaryClaimantID(*v)
	}
	return _u
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (_u *ClaimUpdateOne) SetClaimTypeCode(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimTypeCode(v)
	return _u
}

// SetNillableClaimTypeCode sets the "claim_type_code" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimTypeCode(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimTypeCode(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ClaimUpdateOne) SetStatusCode(v string) *ClaimUpdateOne {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableStatusCode(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// SetClaimedShare sets the "claimed_share" field.
func (_u *ClaimUpdateOne) SetClaimedShare(v float64) *ClaimUpdateOne {
	_u.mutation.ResetClaimedShare()
	_u.mutation.SetClaimedShare(v)
	return _u
}

// SetNillableClaimedShare sets the "claimed_share" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimedShare(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimedShare(*v)
	}
	return _u
}

// AddClaimedShare adds value to the "claimed_share" field.
func (_u *ClaimUpdateOne) AddClaimedShare(v float64) *ClaimUpdateOne {
	_u.mutation.AddClaimedShare(v)
	return _u
}

// SetSubmissionDate sets the "submission_date" field.
func (_u *ClaimUpdateOne) SetSubmissionDate(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetSubmissionDate(v)
	return _u
}

// SetNillableSubmissionDate sets the "submission_date" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableSubmissionDate(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetSubmissionDate(*v)
	}
	return _u
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (_u *ClaimUpdateOne) ClearSubmissionDate() *ClaimUpdateOne {
	_u.mutation.ClearSubmissionDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ClaimUpdateOne) SetNotes(v string) *ClaimUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableNotes(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ClaimUpdateOne) ClearNotes() *ClaimUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimTypeCode(); ok {
		if err := claim.ClaimTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type_code", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimedShare(); ok {
		if err := claim.ClaimedShareValidator(v); err != nil {
			return &ValidationError{Name: "claimed_share", err: fmt.Errorf(`ent: validator failed for field "Claim.claimed_share": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(claim.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyUnitID(); ok {
		_spec.SetField(claim.FieldPropertyUnitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PrimaryClaimantID(); ok {
		_spec.SetField(claim.FieldPrimaryClaimantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClaimTypeCode(); ok {
		_spec.SetField(claim.FieldClaimTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(claim.FieldStatusCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimedShare(); ok {
		_spec.SetField(claim.FieldClaimedShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClaimedShare(); ok {
		_spec.AddField(claim.FieldClaimedShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubmissionDate(); ok {
		_spec.SetField(claim.FieldSubmissionDate, field.TypeTime, value)
	}
	if _u.mutation.SubmissionDateCleared() {
		_spec.ClearField(claim.FieldSubmissionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(claim.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(claim.FieldNotes, field.TypeString)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
