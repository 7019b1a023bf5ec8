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
	"uhc-registry.io/registry/ent/identifiersequence"
)

// IdentifierSequenceCreate is the builder for creating a IdentifierSequence entity.
type IdentifierSequenceCreate struct {
	config
	mutation *IdentifierSequenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdentifierSequenceCreate) SetCreatedAt(v time.Time) *IdentifierSequenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdentifierSequenceCreate) SetNillableCreatedAt(v *time.Time) *IdentifierSequenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IdentifierSequenceCreate) SetUpdatedAt(v time.Time) *IdentifierSequenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IdentifierSequenceCreate) SetNillableUpdatedAt(v *time.Time) *IdentifierSequenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNextValue sets the "next_value" field.
func (_c *IdentifierSequenceCreate) SetNextValue(v int64) *IdentifierSequenceCreate {
	_c.mutation.SetNextValue(v)
	return _c
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_c *IdentifierSequenceCreate) SetNillableNextValue(v *int64) *IdentifierSequenceCreate {
	if v != nil {
		_c.SetNextValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IdentifierSequenceCreate) SetID(v string) *IdentifierSequenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IdentifierSequenceMutation object of the builder.
func (_c *IdentifierSequenceCreate) Mutation() *IdentifierSequenceMutation {
	return _c.mutation
}

// Save creates the IdentifierSequence in the database.
func (_c *IdentifierSequenceCreate) Save(ctx context.Context) (*IdentifierSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdentifierSequenceCreate) SaveX(ctx context.Context) *IdentifierSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdentifierSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdentifierSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdentifierSequenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := identifiersequence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := identifiersequence.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.NextValue(); !ok {
		v := identifiersequence.DefaultNextValue
		_c.mutation.SetNextValue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdentifierSequenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IdentifierSequence.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IdentifierSequence.updated_at"`)}
	}
	if _, ok := _c.mutation.NextValue(); !ok {
		return &ValidationError{Name: "next_value", err: errors.New(`ent: missing required field "IdentifierSequence.next_value"`)}
	}
	if v, ok := _c.mutation.NextValue(); ok {
		if err := identifiersequence.NextValueValidator(v); err != nil {
			return &ValidationError{Name: "next_value", err: fmt.Errorf(`ent: validator failed for field "IdentifierSequence.next_value": %w`, err)}
		}
	}
	return nil
}

func (_c *IdentifierSequenceCreate) sqlSave(ctx context.Context) (*IdentifierSequence, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IdentifierSequence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IdentifierSequenceCreate) createSpec() (*IdentifierSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &IdentifierSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(identifiersequence.Table, sqlgraph.NewFieldSpec(identifiersequence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(identifiersequence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(identifiersequence.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NextValue(); ok {
		_spec.SetField(identifiersequence.FieldNextValue, field.TypeInt64, value)
		_node.NextValue = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdentifierSequence.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdentifierSequenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IdentifierSequenceCreate) OnConflict(opts ...sql.ConflictOption) *IdentifierSequenceUpsertOne {
	_c.conflict = opts
	return &IdentifierSequenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdentifierSequenceCreate) OnConflictColumns(columns ...string) *IdentifierSequenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdentifierSequenceUpsertOne{
		create: _c,
	}
}

type (
	// IdentifierSequenceUpsertOne is the builder for "upsert"-ing
	//  one IdentifierSequence node.
	IdentifierSequenceUpsertOne struct {
		create *IdentifierSequenceCreate
	}

	// IdentifierSequenceUpsert is the "OnConflict" setter.
	IdentifierSequenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentifierSequenceUpsert) SetUpdatedAt(v time.Time) *IdentifierSequenceUpsert {
	u.Set(identifiersequence.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentifierSequenceUpsert) UpdateUpdatedAt() *IdentifierSequenceUpsert {
	u.SetExcluded(identifiersequence.FieldUpdatedAt)
	return u
}

// SetNextValue sets the "next_value" field.
func (u *IdentifierSequenceUpsert) SetNextValue(v int64) *IdentifierSequenceUpsert {
	u.Set(identifiersequence.FieldNextValue, v)
	return u
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *IdentifierSequenceUpsert) UpdateNextValue() *IdentifierSequenceUpsert {
	u.SetExcluded(identifiersequence.FieldNextValue)
	return u
}

// AddNextValue adds v to the "next_value" field.
func (u *IdentifierSequenceUpsert) AddNextValue(v int64) *IdentifierSequenceUpsert {
	u.Add(identifiersequence.FieldNextValue, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(identifiersequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdentifierSequenceUpsertOne) UpdateNewValues() *IdentifierSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(identifiersequence.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(identifiersequence.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IdentifierSequenceUpsertOne) Ignore() *IdentifierSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdentifierSequenceUpsertOne) DoNothing() *IdentifierSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdentifierSequenceCreate.OnConflict
// documentation for more info.
func (u *IdentifierSequenceUpsertOne) Update(set func(*IdentifierSequenceUpsert)) *IdentifierSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdentifierSequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentifierSequenceUpsertOne) SetUpdatedAt(v time.Time) *IdentifierSequenceUpsertOne {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentifierSequenceUpsertOne) UpdateUpdatedAt() *IdentifierSequenceUpsertOne {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNextValue sets the "next_value" field.
func (u *IdentifierSequenceUpsertOne) SetNextValue(v int64) *IdentifierSequenceUpsertOne {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.SetNextValue(v)
	})
}

// AddNextValue adds v to the "next_value" field.
func (u *IdentifierSequenceUpsertOne) AddNextValue(v int64) *IdentifierSequenceUpsertOne {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.AddNextValue(v)
	})
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *IdentifierSequenceUpsertOne) UpdateNextValue() *IdentifierSequenceUpsertOne {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.UpdateNextValue()
	})
}

// Exec executes the query.
func (u *IdentifierSequenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdentifierSequenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdentifierSequenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IdentifierSequenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IdentifierSequenceUpsertOne.ID is not supported by MySQL driver. Use IdentifierSequenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IdentifierSequenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IdentifierSequenceCreateBulk is the builder for creating many IdentifierSequence entities in bulk.
type IdentifierSequenceCreateBulk struct {
	config
	err      error
	builders []*IdentifierSequenceCreate
	conflict []sql.ConflictOption
}

// Save creates the IdentifierSequence entities in the database.
func (_c *IdentifierSequenceCreateBulk) Save(ctx context.Context) ([]*IdentifierSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IdentifierSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdentifierSequenceMutation)
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
func (_c *IdentifierSequenceCreateBulk) SaveX(ctx context.Context) []*IdentifierSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdentifierSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdentifierSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdentifierSequence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdentifierSequenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IdentifierSequenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *IdentifierSequenceUpsertBulk {
	_c.conflict = opts
	return &IdentifierSequenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdentifierSequenceCreateBulk) OnConflictColumns(columns ...string) *IdentifierSequenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdentifierSequenceUpsertBulk{
		create: _c,
	}
}

// IdentifierSequenceUpsertBulk is the builder for "upsert"-ing
// a bulk of IdentifierSequence nodes.
type IdentifierSequenceUpsertBulk struct {
	create *IdentifierSequenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(identifiersequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdentifierSequenceUpsertBulk) UpdateNewValues() *IdentifierSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(identifiersequence.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(identifiersequence.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdentifierSequence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IdentifierSequenceUpsertBulk) Ignore() *IdentifierSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdentifierSequenceUpsertBulk) DoNothing() *IdentifierSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdentifierSequenceCreateBulk.OnConflict
// documentation for more info.
func (u *IdentifierSequenceUpsertBulk) Update(set func(*IdentifierSequenceUpsert)) *IdentifierSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdentifierSequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentifierSequenceUpsertBulk) SetUpdatedAt(v time.Time) *IdentifierSequenceUpsertBulk {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentifierSequenceUpsertBulk) UpdateUpdatedAt() *IdentifierSequenceUpsertBulk {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNextValue sets the "next_value" field.
func (u *IdentifierSequenceUpsertBulk) SetNextValue(v int64) *IdentifierSequenceUpsertBulk {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.SetNextValue(v)
	})
}

// AddNextValue adds v to the "next_value" field.
func (u *IdentifierSequenceUpsertBulk) AddNextValue(v int64) *IdentifierSequenceUpsertBulk {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.AddNextValue(v)
	})
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *IdentifierSequenceUpsertBulk) UpdateNextValue() *IdentifierSequenceUpsertBulk {
	return u.Update(func(s *IdentifierSequenceUpsert) {
		s.UpdateNextValue()
	})
}

// Exec executes the query.
func (u *IdentifierSequenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IdentifierSequenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdentifierSequenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdentifierSequenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
