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
	"uhc-registry.io/registry/ent/referral"
)

// ReferralCreate is the builder for creating a Referral entity.
type ReferralCreate struct {
	config
	mutation *ReferralMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferralCreate) SetCreatedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableCreatedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReferralCreate) SetUpdatedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableUpdatedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *ReferralCreate) SetSourcePackageID(v uuid.UUID) *ReferralCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableSourcePackageID(v *uuid.UUID) *ReferralCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *ReferralCreate) SetClaimID(v uuid.UUID) *ReferralCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (_c *ReferralCreate) SetReferralReasonCode(v string) *ReferralCreate {
	_c.mutation.SetReferralReasonCode(v)
	return _c
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (_c *ReferralCreate) SetReferredToAgency(v string) *ReferralCreate {
	_c.mutation.SetReferredToAgency(v)
	return _c
}

// SetNillableReferredToAgency sets the "referred_to_agency" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableReferredToAgency(v *string) *ReferralCreate {
	if v != nil {
		_c.SetReferredToAgency(*v)
	}
	return _c
}

// SetReferralDate sets the "referral_date" field.
func (_c *ReferralCreate) SetReferralDate(v time.Time) *ReferralCreate {
	_c.mutation.SetReferralDate(v)
	return _c
}

// SetNillableReferralDate sets the "referral_date" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableReferralDate(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetReferralDate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReferralCreate) SetNotes(v string) *ReferralCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableNotes(v *string) *ReferralCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReferralCreate) SetID(v uuid.UUID) *ReferralCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReferralMutation object of the builder.
func (_c *ReferralCreate) Mutation() *ReferralMutation {
	return _c.mutation
}

// Save creates the Referral in the database.
func (_c *ReferralCreate) Save(ctx context.Context) (*Referral, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferralCreate) SaveX(ctx context.Context) *Referral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferralCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referral.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := referral.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferralCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Referral.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Referral.updated_at"`)}
	}
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "Referral.claim_id"`)}
	}
	if _, ok := _c.mutation.ReferralReasonCode(); !ok {
		return &ValidationError{Name: "referral_reason_code", err: errors.New(`ent: missing required field "Referral.referral_reason_code"`)}
	}
	if v, ok := _c.mutation.ReferralReasonCode(); ok {
		if err := referral.ReferralReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "referral_reason_code", err: fmt.Errorf(`ent: validator failed for field "Referral.referral_reason_code": %w`, err)}
		}
	}
	return nil
}

func (_c *ReferralCreate) sqlSave(ctx context.Context) (*Referral, error) {
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

func (_c *ReferralCreate) createSpec() (*Referral, *sqlgraph.CreateSpec) {
	var (
		_node = &Referral{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referral.Table, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referral.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(referral.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.ClaimID(); ok {
		_spec.SetField(referral.FieldClaimID, field.TypeUUID, value)
		_node.ClaimID = value
	}
	if value, ok := _c.mutation.ReferralReasonCode(); ok {
		_spec.SetField(referral.FieldReferralReasonCode, field.TypeString, value)
		_node.ReferralReasonCode = value
	}
	if value, ok := _c.mutation.ReferredToAgency(); ok {
		_spec.SetField(referral.FieldReferredToAgency, field.TypeString, value)
		_node.ReferredToAgency = value
	}
	if value, ok := _c.mutation.ReferralDate(); ok {
		_spec.SetField(referral.FieldReferralDate, field.TypeTime, value)
		_node.ReferralDate = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(referral.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Referral.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReferralUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReferralCreate) OnConflict(opts ...sql.ConflictOption) *ReferralUpsertOne {
	_c.conflict = opts
	return &ReferralUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Referral.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReferralCreate) OnConflictColumns(columns ...string) *ReferralUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReferralUpsertOne{
		create: _c,
	}
}

type (
	// ReferralUpsertOne is the builder for "upsert"-ing
	//  one Referral node.
	ReferralUpsertOne struct {
		create *ReferralCreate
	}

	// ReferralUpsert is the "OnConflict" setter.
	ReferralUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReferralUpsert) SetUpdatedAt(v time.Time) *ReferralUpsert {
	u.Set(referral.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateUpdatedAt() *ReferralUpsert {
	u.SetExcluded(referral.FieldUpdatedAt)
	return u
}

// SetClaimID sets the "claim_id" field.
func (u *ReferralUpsert) SetClaimID(v uuid.UUID) *ReferralUpsert {
	u.Set(referral.FieldClaimID, v)
	return u
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateClaimID() *ReferralUpsert {
	u.SetExcluded(referral.FieldClaimID)
	return u
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (u *ReferralUpsert) SetReferralReasonCode(v string) *ReferralUpsert {
	u.Set(referral.FieldReferralReasonCode, v)
	return u
}

// UpdateReferralReasonCode sets the "referral_reason_code" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateReferralReasonCode() *ReferralUpsert {
	u.SetExcluded(referral.FieldReferralReasonCode)
	return u
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (u *ReferralUpsert) SetReferredToAgency(v string) *ReferralUpsert {
	u.Set(referral.FieldReferredToAgency, v)
	return u
}

// UpdateReferredToAgency sets the "referred_to_agency" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateReferredToAgency() *ReferralUpsert {
	u.SetExcluded(referral.FieldReferredToAgency)
	return u
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (u *ReferralUpsert) ClearReferredToAgency() *ReferralUpsert {
	u.SetNull(referral.FieldReferredToAgency)
	return u
}

// SetReferralDate sets the "referral_date" field.
func (u *ReferralUpsert) SetReferralDate(v time.Time) *ReferralUpsert {
	u.Set(referral.FieldReferralDate, v)
	return u
}

// UpdateReferralDate sets the "referral_date" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateReferralDate() *ReferralUpsert {
	u.SetExcluded(referral.FieldReferralDate)
	return u
}

// ClearReferralDate clears the value of the "referral_date" field.
func (u *ReferralUpsert) ClearReferralDate() *ReferralUpsert {
	u.SetNull(referral.FieldReferralDate)
	return u
}

// SetNotes sets the "notes" field.
func (u *ReferralUpsert) SetNotes(v string) *ReferralUpsert {
	u.Set(referral.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ReferralUpsert) UpdateNotes() *ReferralUpsert {
	u.SetExcluded(referral.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ReferralUpsert) ClearNotes() *ReferralUpsert {
	u.SetNull(referral.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Referral.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(referral.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReferralUpsertOne) UpdateNewValues() *ReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(referral.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(referral.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(referral.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Referral.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReferralUpsertOne) Ignore() *ReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReferralUpsertOne) DoNothing() *ReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReferralCreate.OnConflict
// documentation for more info.
func (u *ReferralUpsertOne) Update(set func(*ReferralUpsert)) *ReferralUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReferralUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReferralUpsertOne) SetUpdatedAt(v time.Time) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateUpdatedAt() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *ReferralUpsertOne) SetClaimID(v uuid.UUID) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateClaimID() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateClaimID()
	})
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (u *ReferralUpsertOne) SetReferralReasonCode(v string) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferralReasonCode(v)
	})
}

// UpdateReferralReasonCode sets the "referral_reason_code" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateReferralReasonCode() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferralReasonCode()
	})
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (u *ReferralUpsertOne) SetReferredToAgency(v string) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferredToAgency(v)
	})
}

// UpdateReferredToAgency sets the "referred_to_agency" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateReferredToAgency() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferredToAgency()
	})
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (u *ReferralUpsertOne) ClearReferredToAgency() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearReferredToAgency()
	})
}

// SetReferralDate sets the "referral_date" field.
func (u *ReferralUpsertOne) SetReferralDate(v time.Time) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferralDate(v)
	})
}

// UpdateReferralDate sets the "referral_date" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateReferralDate() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferralDate()
	})
}

// ClearReferralDate clears the value of the "referral_date" field.
func (u *ReferralUpsertOne) ClearReferralDate() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearReferralDate()
	})
}

// SetNotes sets the "notes" field.
func (u *ReferralUpsertOne) SetNotes(v string) *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ReferralUpsertOne) UpdateNotes() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ReferralUpsertOne) ClearNotes() *ReferralUpsertOne {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ReferralUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReferralCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReferralUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReferralUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReferralUpsertOne.ID is not supported by MySQL driver. Use ReferralUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReferralUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReferralCreateBulk is the builder for creating many Referral entities in bulk.
type ReferralCreateBulk struct {
	config
	err      error
	builders []*ReferralCreate
	conflict []sql.ConflictOption
}

// Save creates the Referral entities in the database.
func (_c *ReferralCreateBulk) Save(ctx context.Context) ([]*Referral, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Referral, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferralMutation)
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
func (_c *ReferralCreateBulk) SaveX(ctx context.Context) []*Referral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Referral.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReferralUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReferralCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReferralUpsertBulk {
	_c.conflict = opts
	return &ReferralUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Referral.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReferralCreateBulk) OnConflictColumns(columns ...string) *ReferralUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReferralUpsertBulk{
		create: _c,
	}
}

// ReferralUpsertBulk is the builder for "upsert"-ing
// a bulk of Referral nodes.
type ReferralUpsertBulk struct {
	create *ReferralCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Referral.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(referral.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReferralUpsertBulk) UpdateNewValues() *ReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(referral.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(referral.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(referral.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Referral.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReferralUpsertBulk) Ignore() *ReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReferralUpsertBulk) DoNothing() *ReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReferralCreateBulk.OnConflict
// documentation for more info.
func (u *ReferralUpsertBulk) Update(set func(*ReferralUpsert)) *ReferralUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReferralUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReferralUpsertBulk) SetUpdatedAt(v time.Time) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateUpdatedAt() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *ReferralUpsertBulk) SetClaimID(v uuid.UUID) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateClaimID() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateClaimID()
	})
}

// SetReferralReasonCode sets the "referral_reason_code" field.
func (u *ReferralUpsertBulk) SetReferralReasonCode(v string) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferralReasonCode(v)
	})
}

// UpdateReferralReasonCode sets the "referral_reason_code" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateReferralReasonCode() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferralReasonCode()
	})
}

// SetReferredToAgency sets the "referred_to_agency" field.
func (u *ReferralUpsertBulk) SetReferredToAgency(v string) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferredToAgency(v)
	})
}

// UpdateReferredToAgency sets the "referred_to_agency" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateReferredToAgency() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferredToAgency()
	})
}

// ClearReferredToAgency clears the value of the "referred_to_agency" field.
func (u *ReferralUpsertBulk) ClearReferredToAgency() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearReferredToAgency()
	})
}

// SetReferralDate sets the "referral_date" field.
func (u *ReferralUpsertBulk) SetReferralDate(v time.Time) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetReferralDate(v)
	})
}

// UpdateReferralDate sets the "referral_date" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateReferralDate() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateReferralDate()
	})
}

// ClearReferralDate clears the value of the "referral_date" field.
func (u *ReferralUpsertBulk) ClearReferralDate() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearReferralDate()
	})
}

// SetNotes sets the "notes" field.
func (u *ReferralUpsertBulk) SetNotes(v string) *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ReferralUpsertBulk) UpdateNotes() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ReferralUpsertBulk) ClearNotes() *ReferralUpsertBulk {
	return u.Update(func(s *ReferralUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ReferralUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReferralCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReferralCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReferralUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
