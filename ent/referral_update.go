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
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/referral"
)

// ReferralUpdate is the builder for updating Referral entities.
type ReferralUpdate struct {
	config
	hooks    []Hook
	mutation *ReferralMutation
}

// Where appends a list predicates to the ReferralUpdate builder.
func (_u *ReferralUpdate) Where(ps ...predicate.Referral) *ReferralUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralUpdate) SetUpdatedAt(v time.Time) *ReferralUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *ReferralUpdate) SetClaimID(v uuid.UUID) *ReferralUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableClaimID(v *uuid.UUID) *ReferralUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (_u *ReferralUpdate) SetReferralReasonCode(v string) *ReferralUpdate {
	_u.mutation.SetReferralReasonCode(v)
	return _u
}

// SetNillableReferralReasonCode sets the "referral_reason_code" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableReferralReasonCode(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetReferralReasonCode(*v)
	}
	return _u
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (_u *ReferralUpdate) SetReferredToAgency(v string) *ReferralUpdate {
	_u.mutation.SetReferredToAgency(v)
	return _u
}

// SetNillableReferredToAgency sets the "referred_to_agency" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableReferredToAgency(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetReferredToAgency(*v)
	}
	return _u
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (_u *ReferralUpdate) ClearReferredToAgency() *ReferralUpdate {
	_u.mutation.ClearReferredToAgency()
	return _u
}

// SetReferralDate sets the "referral_date" field.
func (_u *ReferralUpdate) SetReferralDate(v time.Time) *ReferralUpdate {
	_u.mutation.SetReferralDate(v)
	return _u
}

// SetNillableReferralDate sets the "referral_date" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableReferralDate(v *time.Time) *ReferralUpdate {
	if v != nil {
		_u.SetReferralDate(*v)
	}
	return _u
}

// ClearReferralDate clears the value of the "referral_date" field.
func (_u *ReferralUpdate) ClearReferralDate() *ReferralUpdate {
	_u.mutation.ClearReferralDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReferralUpdate) SetNotes(v string) *ReferralUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableNotes(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReferralUpdate) ClearNotes() *ReferralUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ReferralMutation object of the builder.
func (_u *ReferralUpdate) Mutation() *ReferralMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferralUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferralUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralUpdate) check() error {
	if v, ok := _u.mutation.ReferralReasonCode(); ok {
		if err := referral.ReferralReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "referral_reason_code", err: fmt.Errorf(`ent: validator failed for field "Referral.referral_reason_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferralUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referral.Table, referral.Columns, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(referral.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(referral.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReferralReasonCode(); ok {
		_spec.SetField(referral.FieldReferralReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferredToAgency(); ok {
		_spec.SetField(referral.FieldReferredToAgency, field.TypeString, value)
	}
	if _u.mutation.ReferredToAgencyCleared() {
		_spec.ClearField(referral.FieldReferredToAgency, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralDate(); ok {
		_spec.SetField(referral.FieldReferralDate, field.TypeTime, value)
	}
	if _u.mutation.ReferralDateCleared() {
		_spec.ClearField(referral.FieldReferralDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(referral.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(referral.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferralUpdateOne is the builder for updating a single Referral entity.
type ReferralUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferralMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralUpdateOne) SetUpdatedAt(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *ReferralUpdateOne) SetClaimID(v uuid.UUID) *ReferralUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableClaimID(v *uuid.UUID) *ReferralUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (_u *ReferralUpdateOne) SetReferralReasonCode(v string) *ReferralUpdateOne {
	_u.mutation.SetReferralReasonCode(v)
	return _u
}

// SetNillableReferralReasonCode sets the "referral_reason_code" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableReferralReasonCode(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetReferralReasonCode(*v)
	}
	return _u
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (_u *ReferralUpdateOne) SetReferredToAgency(v string) *ReferralUpdateOne {
	_u.mutation.SetReferredToAgency(v)
	return _u
}

// SetNillableReferredToAgency sets the "referred_to_agency" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableReferredToAgency(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetReferredToAgency(*v)
	}
	return _u
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (_u *ReferralUpdateOne) ClearReferredToAgency() *ReferralUpdateOne {
	_u.mutation.ClearReferredToAgency()
	return _u
}

// SetReferralDate sets the "referral_date" field.
func (_u *ReferralUpdateOne) SetReferralDate(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetReferralDate(v)
	return _u
}

// SetNillableReferralDate sets the "referral_date" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableReferralDate(v *time.Time) *ReferralUpdateOne {
	if v != nil {
		_u.SetReferralDate(*v)
	}
	return _u
}

// ClearReferralDate clears the value of the "referral_date" field.
func (_u *ReferralUpdateOne) ClearReferralDate() *ReferralUpdateOne {
	_u.mutation.ClearReferralDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReferralUpdateOne) SetNotes(v string) *ReferralUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableNotes(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReferralUpdateOne) ClearNotes() *ReferralUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ReferralMutation object of the builder.
func (_u *ReferralUpdateOne) Mutation() *ReferralMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReferralUpdate builder.
func (_u *ReferralUpdateOne) Where(ps ...predicate.Referral) *ReferralUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferralUpdateOne) Select(field string, fields ...string) *ReferralUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Referral entity.
func (_u *ReferralUpdateOne) Save(ctx context.Context) (*Referral, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralUpdateOne) SaveX(ctx context.Context) *Referral {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferralUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralUpdateOne) check() error {
	if v, ok := _u.mutation.ReferralReasonCode(); ok {
		if err := referral.ReferralReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "referral_reason_code", err: fmt.Errorf(`ent: validator failed for field "Referral.referral_reason_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferralUpdateOne) sqlSave(ctx context.Context) (_node *Referral, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referral.Table, referral.Columns, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Referral.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referral.FieldID)
		for _, f := range fields {
			if !referral.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referral.FieldID {
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
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(referral.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(referral.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReferralReasonCode(); ok {
		_spec.SetField(referral.FieldReferralReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferredToAgency(); ok {
		_spec.SetField(referral.FieldReferredToAgency, field.TypeString, value)
	}
	if _u.mutation.ReferredToAgencyCleared() {
		_spec.ClearField(referral.FieldReferredToAgency, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralDate(); ok {
		_spec.SetField(referral.FieldReferralDate, field.TypeTime, value)
	}
	if _u.mutation.ReferralDateCleared() {
		_spec.ClearField(referral.FieldReferralDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(referral.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(referral.FieldNotes, field.TypeString)
	}
	_node = &Referral{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
