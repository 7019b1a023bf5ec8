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
	"uhc-registry.io/registry/ent/certificate"
)

// CertificateCreate is the builder for creating a Certificate entity.
type CertificateCreate struct {
	config
	mutation *CertificateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CertificateCreate) SetCreatedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableCreatedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CertificateCreate) SetUpdatedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableUpdatedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCertificateNumber sets the "certificate_number" field.
func (_c *CertificateCreate) SetCertificateNumber(v string) *CertificateCreate {
	_c.mutation.SetCertificateNumber(v)
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *CertificateCreate) SetClaimID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (_c *CertificateCreate) SetBeneficiaryID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetBeneficiaryID(v)
	return _c
}

// SetIssuedDate sets the "issued_date" field.
func (_c *CertificateCreate) SetIssuedDate(v time.Time) *CertificateCreate {
	_c.mutation.SetIssuedDate(v)
	return _c
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssuedDate(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetIssuedDate(*v)
	}
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *CertificateCreate) SetStatusCode(v string) *CertificateCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableStatusCode(v *string) *CertificateCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CertificateCreate) SetID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CertificateMutation object of the builder.
func (_c *CertificateCreate) Mutation() *CertificateMutation {
	return _c.mutation
}

// Save creates the Certificate in the database.
func (_c *CertificateCreate) Save(ctx context.Context) (*Certificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificateCreate) SaveX(ctx context.Context) *Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := certificate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := certificate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Certificate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Certificate.updated_at"`)}
	}
	if _, ok := _c.mutation.CertificateNumber(); !ok {
		return &ValidationError{Name: "certificate_number", err: errors.New(`ent: missing required field "Certificate.certificate_number"`)}
	}
	if v, ok := _c.mutation.CertificateNumber(); ok {
		if err := certificate.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Certificate.certificate_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "Certificate.claim_id"`)}
	}
	if _, ok := _c.mutation.BeneficiaryID(); !ok {
		return &ValidationError{Name: "beneficiary_id", err: errors.New(`ent: missing required field "Certificate.beneficiary_id"`)}
	}
	return nil
}

func (_c *CertificateCreate) sqlSave(ctx context.Context) (*Certificate, error) {
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

func (_c *CertificateCreate) createSpec() (*Certificate, *sqlgraph.CreateSpec) {
	var (
		_node = &Certificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificate.Table, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(certificate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
		_node.CertificateNumber = value
	}
	if value, ok := _c.mutation.ClaimID(); ok {
		_spec.SetField(certificate.FieldClaimID, field.TypeUUID, value)
		_node.ClaimID = value
	}
	if value, ok := _c.mutation.BeneficiaryID(); ok {
		_spec.SetField(certificate.FieldBeneficiaryID, field.TypeUUID, value)
		_node.BeneficiaryID = value
	}
	if value, ok := _c.mutation.IssuedDate(); ok {
		_spec.SetField(certificate.FieldIssuedDate, field.TypeTime, value)
		_node.IssuedDate = &value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(certificate.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Certificate.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CertificateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CertificateCreate) OnConflict(opts ...sql.ConflictOption) *CertificateUpsertOne {
	_c.conflict = opts
	return &CertificateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Certificate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CertificateCreate) OnConflictColumns(columns ...string) *CertificateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CertificateUpsertOne{
		create: _c,
	}
}

type (
	// CertificateUpsertOne is the builder for "upsert"-ing
	//  one Certificate node.
	CertificateUpsertOne struct {
		create *CertificateCreate
	}

	// CertificateUpsert is the "OnConflict" setter.
	CertificateUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificateUpsert) SetUpdatedAt(v time.Time) *CertificateUpsert {
	u.Set(certificate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateUpdatedAt() *CertificateUpsert {
	u.SetExcluded(certificate.FieldUpdatedAt)
	return u
}

// SetCertificateNumber sets the "certificate_number" field.
func (u *CertificateUpsert) SetCertificateNumber(v string) *CertificateUpsert {
	u.Set(certificate.FieldCertificateNumber, v)
	return u
}

// UpdateCertificateNumber sets the "certificate_number" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateCertificateNumber() *CertificateUpsert {
	u.SetExcluded(certificate.FieldCertificateNumber)
	return u
}

// SetClaimID sets the "claim_id" field.
func (u *CertificateUpsert) SetClaimID(v uuid.UUID) *CertificateUpsert {
	u.Set(certificate.FieldClaimID, v)
	return u
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateClaimID() *CertificateUpsert {
	u.SetExcluded(certificate.FieldClaimID)
	return u
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (u *CertificateUpsert) SetBeneficiaryID(v uuid.UUID) *CertificateUpsert {
	u.Set(certificate.FieldBeneficiaryID, v)
	return u
}

// UpdateBeneficiaryID sets the "beneficiary_id" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateBeneficiaryID() *CertificateUpsert {
	u.SetExcluded(certificate.FieldBeneficiaryID)
	return u
}

// SetIssuedDate sets the "issued_date" field.
func (u *CertificateUpsert) SetIssuedDate(v time.Time) *CertificateUpsert {
	u.Set(certificate.FieldIssuedDate, v)
	return u
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateIssuedDate() *CertificateUpsert {
	u.SetExcluded(certificate.FieldIssuedDate)
	return u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *CertificateUpsert) ClearIssuedDate() *CertificateUpsert {
	u.SetNull(certificate.FieldIssuedDate)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *CertificateUpsert) SetStatusCode(v string) *CertificateUpsert {
	u.Set(certificate.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *CertificateUpsert) UpdateStatusCode() *CertificateUpsert {
	u.SetExcluded(certificate.FieldStatusCode)
	return u
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *CertificateUpsert) ClearStatusCode() *CertificateUpsert {
	u.SetNull(certificate.FieldStatusCode)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Certificate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(certificate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CertificateUpsertOne) UpdateNewValues() *CertificateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(certificate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(certificate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Certificate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CertificateUpsertOne) Ignore() *CertificateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CertificateUpsertOne) DoNothing() *CertificateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CertificateCreate.OnConflict
// documentation for more info.
func (u *CertificateUpsertOne) Update(set func(*CertificateUpsert)) *CertificateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CertificateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificateUpsertOne) SetUpdatedAt(v time.Time) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateUpdatedAt() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCertificateNumber sets the "certificate_number" field.
func (u *CertificateUpsertOne) SetCertificateNumber(v string) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetCertificateNumber(v)
	})
}

// UpdateCertificateNumber sets the "certificate_number" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateCertificateNumber() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateCertificateNumber()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *CertificateUpsertOne) SetClaimID(v uuid.UUID) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateClaimID() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateClaimID()
	})
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (u *CertificateUpsertOne) SetBeneficiaryID(v uuid.UUID) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetBeneficiaryID(v)
	})
}

// UpdateBeneficiaryID sets the "beneficiary_id" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateBeneficiaryID() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateBeneficiaryID()
	})
}

// SetIssuedDate sets the "issued_date" field.
func (u *CertificateUpsertOne) SetIssuedDate(v time.Time) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetIssuedDate(v)
	})
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateIssuedDate() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateIssuedDate()
	})
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *CertificateUpsertOne) ClearIssuedDate() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.ClearIssuedDate()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *CertificateUpsertOne) SetStatusCode(v string) *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *CertificateUpsertOne) UpdateStatusCode() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *CertificateUpsertOne) ClearStatusCode() *CertificateUpsertOne {
	return u.Update(func(s *CertificateUpsert) {
		s.ClearStatusCode()
	})
}

// Exec executes the query.
func (u *CertificateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CertificateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CertificateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CertificateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CertificateUpsertOne.ID is not supported by MySQL driver. Use CertificateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CertificateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CertificateCreateBulk is the builder for creating many Certificate entities in bulk.
type CertificateCreateBulk struct {
	config
	err      error
	builders []*CertificateCreate
	conflict []sql.ConflictOption
}

// Save creates the Certificate entities in the database.
func (_c *CertificateCreateBulk) Save(ctx context.Context) ([]*Certificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificateMutation)
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
func (_c *CertificateCreateBulk) SaveX(ctx context.Context) []*Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Certificate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CertificateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CertificateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CertificateUpsertBulk {
	_c.conflict = opts
	return &CertificateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Certificate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CertificateCreateBulk) OnConflictColumns(columns ...string) *CertificateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CertificateUpsertBulk{
		create: _c,
	}
}

// CertificateUpsertBulk is the builder for "upsert"-ing
// a bulk of Certificate nodes.
type CertificateUpsertBulk struct {
	create *CertificateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Certificate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(certificate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CertificateUpsertBulk) UpdateNewValues() *CertificateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(certificate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(certificate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Certificate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CertificateUpsertBulk) Ignore() *CertificateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CertificateUpsertBulk) DoNothing() *CertificateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CertificateCreateBulk.OnConflict
// documentation for more info.
func (u *CertificateUpsertBulk) Update(set func(*CertificateUpsert)) *CertificateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CertificateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificateUpsertBulk) SetUpdatedAt(v time.Time) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateUpdatedAt() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCertificateNumber sets the "certificate_number" field.
func (u *CertificateUpsertBulk) SetCertificateNumber(v string) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetCertificateNumber(v)
	})
}

// UpdateCertificateNumber sets the "certificate_number" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateCertificateNumber() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateCertificateNumber()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *CertificateUpsertBulk) SetClaimID(v uuid.UUID) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateClaimID() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateClaimID()
	})
}

// SetBeneficiaryID sets the "beneficiary_id" field.
func (u *CertificateUpsertBulk) SetBeneficiaryID(v uuid.UUID) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetBeneficiaryID(v)
	})
}

// UpdateBeneficiaryID sets the "beneficiary_id" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateBeneficiaryID() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateBeneficiaryID()
	})
}

// SetIssuedDate sets the "issued_date" field.
func (u *CertificateUpsertBulk) SetIssuedDate(v time.Time) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetIssuedDate(v)
	})
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateIssuedDate() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateIssuedDate()
	})
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *CertificateUpsertBulk) ClearIssuedDate() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.ClearIssuedDate()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *CertificateUpsertBulk) SetStatusCode(v string) *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *CertificateUpsertBulk) UpdateStatusCode() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *CertificateUpsertBulk) ClearStatusCode() *CertificateUpsertBulk {
	return u.Update(func(s *CertificateUpsert) {
		s.ClearStatusCode()
	})
}

// Exec executes the query.
func (u *CertificateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CertificateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CertificateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CertificateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
