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
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/predicate"
)

// PersonPropertyRelationUpdate is the builder for updating PersonPropertyRelation entities.
type PersonPropertyRelationUpdate struct {
	config
	hooks    []Hook
	mutation *PersonPropertyRelationMutation
}

// Where appends a list predicates to the PersonPropertyRelationUpdate builder.
func (_u *PersonPropertyRelationUpdate) Where(ps ...predicate.PersonPropertyRelation) *PersonPropertyRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonPropertyRelationUpdate) SetUpdatedAt(v time.Time) *PersonPropertyRelationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *PersonPropertyRelationUpdate) SetPersonID(v uuid.UUID) *PersonPropertyRelationUpdate {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillablePersonID(v *uuid.UUID) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_u *PersonPropertyRelationUpdate) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationUpdate {
	_u.mutation.SetPropertyUnitID(v)
	return _u
}

// SetNillablePropertyUnitID sets the "property_unit_id" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillablePropertyUnitID(v *uuid.UUID) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetPropertyUnitID(*v)
	}
	return _u
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (_u *PersonPropertyRelationUpdate) SetRelationTypeCode(v string) *PersonPropertyRelationUpdate {
	_u.mutation.SetRelationTypeCode(v)
	return _u
}

// SetNillableRelationTypeCode sets the "relation_type_code" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillableRelationTypeCode(v *string) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetRelationTypeCode(*v)
	}
	return _u
}

// SetOwnershipShare sets the "ownership_share" field.
func (_u *PersonPropertyRelationUpdate) SetOwnershipShare(v float64) *PersonPropertyRelationUpdate {
	_u.mutation.ResetOwnershipShare()
	_u.mutation.SetOwnershipShare(v)
	return _u
}

// SetNillableOwnershipShare sets the "ownership_share" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillableOwnershipShare(v *float64) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetOwnershipShare(*v)
	}
	return _u
}

// AddOwnershipShare adds value to the "ownership_share" field.
func (_u *PersonPropertyRelationUpdate) AddOwnershipShare(v float64) *PersonPropertyRelationUpdate {
	_u.mutation.AddOwnershipShare(v)
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PersonPropertyRelationUpdate) SetStartDate(v time.Time) *PersonPropertyRelationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillableStartDate(v *time.Time) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *PersonPropertyRelationUpdate) ClearStartDate() *PersonPropertyRelationUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PersonPropertyRelationUpdate) SetNotes(v string) *PersonPropertyRelationUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdate) SetNillableNotes(v *string) *PersonPropertyRelationUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PersonPropertyRelationUpdate) ClearNotes() *PersonPropertyRelationUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PersonPropertyRelationMutation object of the builder.
func (_u *PersonPropertyRelationUpdate) Mutation() *PersonPropertyRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonPropertyRelationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonPropertyRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonPropertyRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonPropertyRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonPropertyRelationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personpropertyrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonPropertyRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationTypeCode(); ok {
		if err := personpropertyrelation.RelationTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type_code", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.relation_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnershipShare(); ok {
		if err := personpropertyrelation.OwnershipShareValidator(v); err != nil {
			return &ValidationError{Name: "ownership_share", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.ownership_share": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonPropertyRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personpropertyrelation.Table, personpropertyrelation.Columns, sqlgraph.NewFieldSpec(personpropertyrelation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(personpropertyrelation.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PersonID(); ok {
		_spec.SetField(personpropertyrelation.FieldPersonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PropertyUnitID(); ok {
		_spec.SetField(personpropertyrelation.FieldPropertyUnitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RelationTypeCode(); ok {
		_spec.SetField(personpropertyrelation.FieldRelationTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnershipShare(); ok {
		_spec.SetField(personpropertyrelation.FieldOwnershipShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOwnershipShare(); ok {
		_spec.AddField(personpropertyrelation.FieldOwnershipShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(personpropertyrelation.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(personpropertyrelation.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(personpropertyrelation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(personpropertyrelation.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personpropertyrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonPropertyRelationUpdateOne is the builder for updating a single PersonPropertyRelation entity.
type PersonPropertyRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonPropertyRelationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonPropertyRelationUpdateOne) SetUpdatedAt(v time.Time) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *PersonPropertyRelationUpdateOne) SetPersonID(v uuid.UUID) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillablePersonID(v *uuid.UUID) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_u *PersonPropertyRelationUpdateOne) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetPropertyUnitID(v)
	return _u
}

// SetNillablePropertyUnitID sets the "property_unit_id" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillablePropertyUnitID(v *uuid.UUID) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetPropertyUnitID(*v)
	}
	return _u
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (_u *PersonPropertyRelationUpdateOne) SetRelationTypeCode(v string) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetRelationTypeCode(v)
	return _u
}

// SetNillableRelationTypeCode sets the "relation_type_code" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillableRelationTypeCode(v *string) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetRelationTypeCode(*v)
	}
	return _u
}

// SetOwnershipShare sets the "ownership_share" field.
func (_u *PersonPropertyRelationUpdateOne) SetOwnershipShare(v float64) *PersonPropertyRelationUpdateOne {
	_u.mutation.ResetOwnershipShare()
	_u.mutation.SetOwnershipShare(v)
	return _u
}

// SetNillableOwnershipShare sets the "ownership_share" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillableOwnershipShare(v *float64) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetOwnershipShare(*v)
	}
	return _u
}

// AddOwnershipShare adds value to the "ownership_share" field.
func (_u *PersonPropertyRelationUpdateOne) AddOwnershipShare(v float64) *PersonPropertyRelationUpdateOne {
	_u.mutation.AddOwnershipShare(v)
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PersonPropertyRelationUpdateOne) SetStartDate(v time.Time) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillableStartDate(v *time.Time) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *PersonPropertyRelationUpdateOne) ClearStartDate() *PersonPropertyRelationUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PersonPropertyRelationUpdateOne) SetNotes(v string) *PersonPropertyRelationUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PersonPropertyRelationUpdateOne) SetNillableNotes(v *string) *PersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PersonPropertyRelationUpdateOne) ClearNotes() *PersonPropertyRelationUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PersonPropertyRelationMutation object of the builder.
func (_u *PersonPropertyRelationUpdateOne) Mutation() *PersonPropertyRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonPropertyRelationUpdate builder.
func (_u *PersonPropertyRelationUpdateOne) Where(ps ...predicate.PersonPropertyRelation) *PersonPropertyRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonPropertyRelationUpdateOne) Select(field string, fields ...string) *PersonPropertyRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonPropertyRelation entity.
func (_u *PersonPropertyRelationUpdateOne) Save(ctx context.Context) (*PersonPropertyRelation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonPropertyRelationUpdateOne) SaveX(ctx context.Context) *PersonPropertyRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonPropertyRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonPropertyRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonPropertyRelationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personpropertyrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonPropertyRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationTypeCode(); ok {
		if err := personpropertyrelation.RelationTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type_code", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.relation_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnershipShare(); ok {
		if err := personpropertyrelation.OwnershipShareValidator(v); err != nil {
			return &ValidationError{Name: "ownership_share", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.ownership_share": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonPropertyRelationUpdateOne) sqlSave(ctx context.Context) (_node *PersonPropertyRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personpropertyrelation.Table, personpropertyrelation.Columns, sqlgraph.NewFieldSpec(personpropertyrelation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PersonPropertyRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personpropertyrelation.FieldID)
		for _, f := range fields {
			if !personpropertyrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != personpropertyrelation.FieldID {
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
		_spec.SetField(personpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(personpropertyrelation.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PersonID(); ok {
		_spec.SetField(personpropertyrelation.FieldPersonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PropertyUnitID(); ok {
		_spec.SetField(personpropertyrelation.FieldPropertyUnitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RelationTypeCode(); ok {
		_spec.SetField(personpropertyrelation.FieldRelationTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnershipShare(); ok {
		_spec.SetField(personpropertyrelation.FieldOwnershipShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOwnershipShare(); ok {
		_spec.AddField(personpropertyrelation.FieldOwnershipShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(personpropertyrelation.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(personpropertyrelation.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(personpropertyrelation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(personpropertyrelation.FieldNotes, field.TypeString)
	}
	_node = &PersonPropertyRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personpropertyrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
