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
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPersonUpdate is the builder for updating StagingPerson entities.
type StagingPersonUpdate struct {
	config
	hooks    []Hook
	mutation *StagingPersonMutation
}

// Where appends a list predicates to the StagingPersonUpdate builder.
func (_u *StagingPersonUpdate) Where(ps ...predicate.StagingPerson) *StagingPersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPersonUpdate) SetUpdatedAt(v time.Time) *StagingPersonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPersonUpdate) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableValidationStatus(v *stagingperson.ValidationStatus) *StagingPersonUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPersonUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingPersonUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPersonUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingPersonUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPersonUpdate) ClearDiagnostics() *StagingPersonUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPersonUpdate) SetApprovedForCommit(v bool) *StagingPersonUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableApprovedForCommit(v *bool) *StagingPersonUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPersonUpdate) SetCommittedEntityID(v uuid.UUID) *StagingPersonUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPersonUpdate) ClearCommittedEntityID() *StagingPersonUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPersonUpdate) SetPayload(v *domain.PersonRecord) *StagingPersonUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_u *StagingPersonUpdate) SetFirstNameNormalized(v string) *StagingPersonUpdate {
	_u.mutation.SetFirstNameNormalized(v)
	return _u
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableFirstNameNormalized(v *string) *StagingPersonUpdate {
	if v != nil {
		_u.SetFirstNameNormalized(*v)
	}
	return _u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (_u *StagingPersonUpdate) ClearFirstNameNormalized() *StagingPersonUpdate {
	_u.mutation.ClearFirstNameNormalized()
	return _u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_u *StagingPersonUpdate) SetFatherNameNormalized(v string) *StagingPersonUpdate {
	_u.mutation.SetFatherNameNormalized(v)
	return _u
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableFatherNameNormalized(v *string) *StagingPersonUpdate {
	if v != nil {
		_u.SetFatherNameNormalized(*v)
	}
	return _u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (_u *StagingPersonUpdate) ClearFatherNameNormalized() *StagingPersonUpdate {
	_u.mutation.ClearFatherNameNormalized()
	return _u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_u *StagingPersonUpdate) SetFamilyNameNormalized(v string) *StagingPersonUpdate {
	_u.mutation.SetFamilyNameNormalized(v)
	return _u
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableFamilyNameNormalized(v *string) *StagingPersonUpdate {
	if v != nil {
		_u.SetFamilyNameNormalized(*v)
	}
	return _u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (_u *StagingPersonUpdate) ClearFamilyNameNormalized() *StagingPersonUpdate {
	_u.mutation.ClearFamilyNameNormalized()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *StagingPersonUpdate) SetNationalID(v string) *StagingPersonUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableNationalID(v *string) *StagingPersonUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *StagingPersonUpdate) ClearNationalID() *StagingPersonUpdate {
	_u.mutation.ClearNationalID()
	return _u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_u *StagingPersonUpdate) SetYearOfBirth(v int) *StagingPersonUpdate {
	_u.mutation.ResetYearOfBirth()
	_u.mutation.SetYearOfBirth(v)
	return _u
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableYearOfBirth(v *int) *StagingPersonUpdate {
	if v != nil {
		_u.SetYearOfBirth(*v)
	}
	return _u
}

// AddYearOfBirth adds value to the "year_of_birth" field.
func (_u *StagingPersonUpdate) AddYearOfBirth(v int) *StagingPersonUpdate {
	_u.mutation.AddYearOfBirth(v)
	return _u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (_u *StagingPersonUpdate) ClearYearOfBirth() *StagingPersonUpdate {
	_u.mutation.ClearYearOfBirth()
	return _u
}

// SetGenderCode sets the "gender_code" field.
func (_u *StagingPersonUpdate) SetGenderCode(v string) *StagingPersonUpdate {
	_u.mutation.SetGenderCode(v)
	return _u
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_u *StagingPersonUpdate) SetNillableGenderCode(v *string) *StagingPersonUpdate {
	if v != nil {
		_u.SetGenderCode(*v)
	}
	return _u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (_u *StagingPersonUpdate) ClearGenderCode() *StagingPersonUpdate {
	_u.mutation.ClearGenderCode()
	return _u
}

// Mutation returns the StagingPersonMutation object of the builder.
func (_u *StagingPersonUpdate) Mutation() *StagingPersonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingPersonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingPersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPersonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingperson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPersonUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingperson.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPerson.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingperson.Table, stagingperson.Columns, sqlgraph.NewFieldSpec(stagingperson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingperson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingperson.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingperson.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingperson.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingperson.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingperson.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingperson.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingperson.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingperson.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FirstNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFirstNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FirstNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFirstNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FatherNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFatherNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FatherNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFatherNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFamilyNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FamilyNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFamilyNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(stagingperson.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(stagingperson.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.YearOfBirth(); ok {
		_spec.SetField(stagingperson.FieldYearOfBirth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearOfBirth(); ok {
		_spec.AddField(stagingperson.FieldYearOfBirth, field.TypeInt, value)
	}
	if _u.mutation.YearOfBirthCleared() {
		_spec.ClearField(stagingperson.FieldYearOfBirth, field.TypeInt)
	}
	if value, ok := _u.mutation.GenderCode(); ok {
		_spec.SetField(stagingperson.FieldGenderCode, field.TypeString, value)
	}
	if _u.mutation.GenderCodeCleared() {
		_spec.ClearField(stagingperson.FieldGenderCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingperson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingPersonUpdateOne is the builder for updating a single StagingPerson entity.
type StagingPersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingPersonMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPersonUpdateOne) SetUpdatedAt(v time.Time) *StagingPersonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPersonUpdateOne) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableValidationStatus(v *stagingperson.ValidationStatus) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPersonUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingPersonUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPersonUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingPersonUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPersonUpdateOne) ClearDiagnostics() *StagingPersonUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPersonUpdateOne) SetApprovedForCommit(v bool) *StagingPersonUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPersonUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingPersonUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPersonUpdateOne) ClearCommittedEntityID() *StagingPersonUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPersonUpdateOne) SetPayload(v *domain.PersonRecord) *StagingPersonUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_u *StagingPersonUpdateOne) SetFirstNameNormalized(v string) *StagingPersonUpdateOne {
	_u.mutation.SetFirstNameNormalized(v)
	return _u
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableFirstNameNormalized(v *string) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetFirstNameNormalized(*v)
	}
	return _u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (_u *StagingPersonUpdateOne) ClearFirstNameNormalized() *StagingPersonUpdateOne {
	_u.mutation.ClearFirstNameNormalized()
	return _u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_u *StagingPersonUpdateOne) SetFatherNameNormalized(v string) *StagingPersonUpdateOne {
	_u.mutation.SetFatherNameNormalized(v)
	return _u
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableFatherNameNormalized(v *string) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetFatherNameNormalized(*v)
	}
	return _u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (_u *StagingPersonUpdateOne) ClearFatherNameNormalized() *StagingPersonUpdateOne {
	_u.mutation.ClearFatherNameNormalized()
	return _u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_u *StagingPersonUpdateOne) SetFamilyNameNormalized(v string) *StagingPersonUpdateOne {
	_u.mutation.SetFamilyNameNormalized(v)
	return _u
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableFamilyNameNormalized(v *string) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetFamilyNameNormalized(*v)
	}
	return _u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (_u *StagingPersonUpdateOne) ClearFamilyNameNormalized() *StagingPersonUpdateOne {
	_u.mutation.ClearFamilyNameNormalized()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *StagingPersonUpdateOne) SetNationalID(v string) *StagingPersonUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableNationalID(v *string) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *StagingPersonUpdateOne) ClearNationalID() *StagingPersonUpdateOne {
	_u.mutation.ClearNationalID()
	return _u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_u *StagingPersonUpdateOne) SetYearOfBirth(v int) *StagingPersonUpdateOne {
	_u.mutation.ResetYearOfBirth()
	_u.mutation.SetYearOfBirth(v)
	return _u
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableYearOfBirth(v *int) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetYearOfBirth(*v)
	}
	return _u
}

// AddYearOfBirth adds value to the "year_of_birth" field.
func (_u *StagingPersonUpdateOne) AddYearOfBirth(v int) *StagingPersonUpdateOne {
	_u.mutation.AddYearOfBirth(v)
	return _u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (_u *StagingPersonUpdateOne) ClearYearOfBirth() *StagingPersonUpdateOne {
	_u.mutation.ClearYearOfBirth()
	return _u
}

// SetGenderCode sets the "gender_code" field.
func (_u *StagingPersonUpdateOne) SetGenderCode(v string) *StagingPersonUpdateOne {
	_u.mutation.SetGenderCode(v)
	return _u
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_u *StagingPersonUpdateOne) SetNillableGenderCode(v *string) *StagingPersonUpdateOne {
	if v != nil {
		_u.SetGenderCode(*v)
	}
	return _u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (_u *StagingPersonUpdateOne) ClearGenderCode() *StagingPersonUpdateOne {
	_u.mutation.ClearGenderCode()
	return _u
}

// Mutation returns the StagingPersonMutation object of the builder.
func (_u *StagingPersonUpdateOne) Mutation() *StagingPersonMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingPersonUpdate builder.
func (_u *StagingPersonUpdateOne) Where(ps ...predicate.StagingPerson) *StagingPersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingPersonUpdateOne) Select(field string, fields ...string) *StagingPersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingPerson entity.
func (_u *StagingPersonUpdateOne) Save(ctx context.Context) (*StagingPerson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPersonUpdateOne) SaveX(ctx context.Context) *StagingPerson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingPersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPersonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingperson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPersonUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingperson.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPerson.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPersonUpdateOne) sqlSave(ctx context.Context) (_node *StagingPerson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingperson.Table, stagingperson.Columns, sqlgraph.NewFieldSpec(stagingperson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingPerson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingperson.FieldID)
		for _, f := range fields {
			if !stagingperson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingperson.FieldID {
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
		_spec.SetField(stagingperson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingperson.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingperson.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingperson.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingperson.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingperson.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingperson.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingperson.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingperson.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FirstNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFirstNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FirstNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFirstNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FatherNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFatherNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FatherNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFatherNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFamilyNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FamilyNameNormalizedCleared() {
		_spec.ClearField(stagingperson.FieldFamilyNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(stagingperson.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(stagingperson.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.YearOfBirth(); ok {
		_spec.SetField(stagingperson.FieldYearOfBirth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearOfBirth(); ok {
		_spec.AddField(stagingperson.FieldYearOfBirth, field.TypeInt, value)
	}
	if _u.mutation.YearOfBirthCleared() {
		_spec.ClearField(stagingperson.FieldYearOfBirth, field.TypeInt)
	}
	if value, ok := _u.mutation.GenderCode(); ok {
		_spec.SetField(stagingperson.FieldGenderCode, field.TypeString, value)
	}
	if _u.mutation.GenderCodeCleared() {
		_spec.ClearField(stagingperson.FieldGenderCode, field.TypeString)
	}
	_node = &StagingPerson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingperson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
