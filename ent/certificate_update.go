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
	"uhc-registry.io/registry/ent/certificate"
	"uhc-registry.io/registry/ent/predicate"
)

// CertificateUpdate is the builder for updating Certificate entities.
type CertificateUpdate struct {
	config
	hooks    []Hook
	mutation *CertificateMutation
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdate) Where(ps ...predicate.Certificate) *CertificateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificateUpdate) SetUpdatedAt(v time.Time) *CertificateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CertificateUpdate) SetCertificateNumber(v string) *CertificateUpdate {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCertificateNumber(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *CertificateUpdate) SetClaimID(v uuid.UUID) *CertificateUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableClaimID(v *uuid.UUID) *CertificateUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (_u *CertificateUpdate) SetBeneficiaryID(v uuid.UUID) *CertificateUpdate {
	_u.mutation.SetBeneficiaryID(v)
	return _u
}

// SetNillableBeneficiaryID sets the "beneficiary_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableBeneficiaryID(v *uuid.UUID) *CertificateUpdate {
	if v != nil {
		_u.SetBeneficiaryID(*v)
	}
	return _u
}

// SetIssuedDate sets the "issued_date" field.
func (_u *CertificateUpdate) SetIssuedDate(v time.Time) *CertificateUpdate {
	_u.mutation.SetIssuedDate(v)
	return _u
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableIssuedDate(v *time.Time) *CertificateUpdate {
	if v != nil {
		_u.SetIssuedDate(*v)
	}
	return _u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (_u *CertificateUpdate) ClearIssuedDate() *CertificateUpdate {
	_u.mutation.ClearIssuedDate()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *CertificateUpdate) SetStatusCode(v string) *CertificateUpdate {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableStatusCode(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *CertificateUpdate) ClearStatusCode() *CertificateUpdate {
	_u.mutation.ClearStatusCode()
	return _u
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdate) Mutation() *CertificateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CertificateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CertificateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certificate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdate) check() error {
	if v, ok := _u.mutation.CertificateNumber(); ok {
		if err := certificate.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Certificate.certificate_number": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(certificate.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BeneficiaryID(); ok {
		_spec.SetField(certificate.FieldBeneficiaryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IssuedDate(); ok {
		_spec.SetField(certificate.FieldIssuedDate, field.TypeTime, value)
	}
	if _u.mutation.IssuedDateCleared() {
		_spec.ClearField(certificate.FieldIssuedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(certificate.FieldStatusCode, field.TypeString, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(certificate.FieldStatusCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CertificateUpdateOne is the builder for updating a single Certificate entity.
type CertificateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificateUpdateOne) SetUpdatedAt(v time.Time) *CertificateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CertificateUpdateOne) SetCertificateNumber(v string) *CertificateUpdateOne {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCertificateNumber(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *CertificateUpdateOne) SetClaimID(v uuid.UUID) *CertificateUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableClaimID(v *uuid.UUID) *CertificateUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (_u *CertificateUpdateOne) SetBeneficiaryID(v uuid.UUID) *CertificateUpdateOne {
	_u.mutation.SetBeneficiaryID(v)
	return _u
}

// SetNillableBeneficiaryID sets the "beneficiary_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableBeneficiaryID(v *uuid.UUID) *CertificateUpdateOne {
	if v != nil {
		_u.SetBeneficiaryID(*v)
	}
	return _u
}

// SetIssuedDate sets the "issued_date" field.
func (_u *CertificateUpdateOne) SetIssuedDate(v time.Time) *CertificateUpdateOne {
	_u.mutation.SetIssuedDate(v)
	return _u
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableIssuedDate(v *time.Time) *CertificateUpdateOne {
	if v != nil {
		_u.SetIssuedDate(*v)
	}
	return _u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (_u *CertificateUpdateOne) ClearIssuedDate() *CertificateUpdateOne {
	_u.mutation.ClearIssuedDate()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *CertificateUpdateOne) SetStatusCode(v string) *CertificateUpdateOne {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableStatusCode(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *CertificateUpdateOne) ClearStatusCode() *CertificateUpdateOne {
	_u.mutation.ClearStatusCode()
	return _u
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdateOne) Mutation() *CertificateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdateOne) Where(ps ...predicate.Certificate) *CertificateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CertificateUpdateOne) Select(field string, fields ...string) *CertificateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Certificate entity.
func (_u *CertificateUpdateOne) Save(ctx context.Context) (*Certificate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdateOne) SaveX(ctx context.Context) *Certificate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CertificateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certificate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdateOne) check() error {
	if v, ok := _u.mutation.CertificateNumber(); ok {
		if err := certificate.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Certificate.certificate_number": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificateUpdateOne) sqlSave(ctx context.Context) (_node *Certificate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Certificate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certificate.FieldID)
		for _, f := range fields {
			if !certificate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != certificate.FieldID {
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
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(certificate.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BeneficiaryID(); ok {
		_spec.SetField(certificate.FieldBeneficiaryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IssuedDate(); ok {
		_spec.SetField(certificate.FieldIssuedDate, field.TypeTime, value)
	}
	if _u.mutation.IssuedDateCleared() {
		_spec.ClearField(certificate.FieldIssuedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(certificate.FieldStatusCode, field.TypeString, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(certificate.FieldStatusCode, field.TypeString)
	}
	_node = &Certificate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
