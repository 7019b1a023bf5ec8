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
	"uhc-registry.io/registry/ent/survey"
)

// SurveyUpdate is the builder for updating Survey entities.
type SurveyUpdate struct {
	config
	hooks    []Hook
	mutation *SurveyMutation
}

// Where appends a list predicates to the SurveyUpdate builder.
func (_u *SurveyUpdate) Where(ps ...predicate.Survey) *SurveyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyUpdate) SetUpdatedAt(v time.Time) *SurveyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingID sets the "building_id" field.
func (_u *SurveyUpdate) SetBuildingID(v uuid.UUID) *SurveyUpdate {
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableBuildingID(v *uuid.UUID) *SurveyUpdate {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (_u *SurveyUpdate) SetSurveyTypeCode(v string) *SurveyUpdate {
	_u.mutation.SetSurveyTypeCode(v)
	return _u
}

// SetNillableSurveyTypeCode sets the "survey_type_code" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableSurveyTypeCode(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetSurveyTypeCode(*v)
	}
	return _u
}

// SetSurveyDate sets the "survey_date" field.
func (_u *SurveyUpdate) SetSurveyDate(v time.Time) *SurveyUpdate {
	_u.mutation.SetSurveyDate(v)
	return _u
}

// SetNillableSurveyDate sets the "survey_date" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableSurveyDate(v *time.Time) *SurveyUpdate {
	if v != nil {
		_u.SetSurveyDate(*v)
	}
	return _u
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (_u *SurveyUpdate) ClearSurveyDate() *SurveyUpdate {
	_u.mutation.ClearSurveyDate()
	return _u
}

// SetSurveyorName sets the "surveyor_name" field.
func (_u *SurveyUpdate) SetSurveyorName(v string) *SurveyUpdate {
	_u.mutation.SetSurveyorName(v)
	return _u
}

// SetNillableSurveyorName sets the "surveyor_name" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableSurveyorName(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetSurveyorName(*v)
	}
	return _u
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (_u *SurveyUpdate) ClearSurveyorName() *SurveyUpdate {
	_u.mutation.ClearSurveyorName()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SurveyUpdate) SetNotes(v string) *SurveyUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableNotes(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SurveyUpdate) ClearNotes() *SurveyUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the SurveyMutation object of the builder.
func (_u *SurveyUpdate) Mutation() *SurveyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurveyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurveyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := survey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyUpdate) check() error {
	if v, ok := _u.mutation.SurveyTypeCode(); ok {
		if err := survey.SurveyTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "survey_type_code", err: fmt.Errorf(`ent: validator failed for field "Survey.survey_type_code": %w`, err)}
		}
	}
	return nil
}

func (_u *SurveyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(survey.Table, survey.Columns, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(survey.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(survey.FieldBuildingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SurveyTypeCode(); ok {
		_spec.SetField(survey.FieldSurveyTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurveyDate(); ok {
		_spec.SetField(survey.FieldSurveyDate, field.TypeTime, value)
	}
	if _u.mutation.SurveyDateCleared() {
		_spec.ClearField(survey.FieldSurveyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SurveyorName(); ok {
		_spec.SetField(survey.FieldSurveyorName, field.TypeString, value)
	}
	if _u.mutation.SurveyorNameCleared() {
		_spec.ClearField(survey.FieldSurveyorName, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(survey.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(survey.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{survey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurveyUpdateOne is the builder for updating a single Survey entity.
type SurveyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurveyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyUpdateOne) SetUpdatedAt(v time.Time) *SurveyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingID sets the "building_id" field.
func (_u *SurveyUpdateOne) SetBuildingID(v uuid.UUID) *SurveyUpdateOne {
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableBuildingID(v *uuid.UUID) *SurveyUpdateOne {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (_u *SurveyUpdateOne) SetSurveyTypeCode(v string) *SurveyUpdateOne {
	_u.mutation.SetSurveyTypeCode(v)
	return _u
}

// SetNillableSurveyTypeCode sets the "survey_type_code" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableSurveyTypeCode(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetSurveyTypeCode(*v)
	}
	return _u
}

// SetSurveyDate sets the "survey_date" field.
func (_u *SurveyUpdateOne) SetSurveyDate(v time.Time) *SurveyUpdateOne {
	_u.mutation.SetSurveyDate(v)
	return _u
}

// SetNillableSurveyDate sets the "survey_date" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableSurveyDate(v *time.Time) *SurveyUpdateOne {
	if v != nil {
		_u.SetSurveyDate(*v)
	}
	return _u
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (_u *SurveyUpdateOne) ClearSurveyDate() *SurveyUpdateOne {
	_u.mutation.ClearSurveyDate()
	return _u
}

// SetSurveyorName sets the "surveyor_name" field.
func (_u *SurveyUpdateOne) SetSurveyorName(v string) *SurveyUpdateOne {
	_u.mutation.SetSurveyorName(v)
	return _u
}

// SetNillableSurveyorName sets the "surveyor_name" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableSurveyorName(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetSurveyorName(*v)
	}
	return _u
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (_u *SurveyUpdateOne) ClearSurveyorName() *SurveyUpdateOne {
	_u.mutation.ClearSurveyorName()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SurveyUpdateOne) SetNotes(v string) *SurveyUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableNotes(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SurveyUpdateOne) ClearNotes() *SurveyUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the SurveyMutation object of the builder.
func (_u *SurveyUpdateOne) Mutation() *SurveyMutation {
	return _u.mutation
}

// Where appends a list predicates to the SurveyUpdate builder.
func (_u *SurveyUpdateOne) Where(ps ...predicate.Survey) *SurveyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurveyUpdateOne) Select(field string, fields ...string) *SurveyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Survey entity.
func (_u *SurveyUpdateOne) Save(ctx context.Context) (*Survey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyUpdateOne) SaveX(ctx context.Context) *Survey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurveyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := survey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyUpdateOne) check() error {
	if v, ok := _u.mutation.SurveyTypeCode(); ok {
		if err := survey.SurveyTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "survey_type_code", err: fmt.Errorf(`ent: validator failed for field "Survey.survey_type_code": %w`, err)}
		}
	}
	return nil
}

func (_u *SurveyUpdateOne) sqlSave(ctx context.Context) (_node *Survey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(survey.Table, survey.Columns, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Survey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, survey.FieldID)
		for _, f := range fields {
			if !survey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != survey.FieldID {
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
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(survey.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(survey.FieldBuildingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SurveyTypeCode(); ok {
		_spec.SetField(survey.FieldSurveyTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurveyDate(); ok {
		_spec.SetField(survey.FieldSurveyDate, field.TypeTime, value)
	}
	if _u.mutation.SurveyDateCleared() {
		_spec.ClearField(survey.FieldSurveyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SurveyorName(); ok {
		_spec.SetField(survey.FieldSurveyorName, field.TypeString, value)
	}
	if _u.mutation.SurveyorNameCleared() {
		_spec.ClearField(survey.FieldSurveyorName, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(survey.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(survey.FieldNotes, field.TypeString)
	}
	_node = &Survey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{survey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
