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
	"uhc-registry.io/registry/ent/duplicatesuppression"
)

// DuplicateSuppressionCreate is the builder for creating a DuplicateSuppression entity.
type DuplicateSuppressionCreate struct {
	config
	mutation *DuplicateSuppressionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DuplicateSuppressionCreate) SetCreatedAt(v time.Time) *DuplicateSuppressionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DuplicateSuppressionCreate) SetNillableCreatedAt(v *time.Time) *DuplicateSuppressionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *DuplicateSuppressionCreate) SetEntityType(v duplicatesuppression.EntityType) *DuplicateSuppressionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetProductionEntityID sets the "production_entity_id" field.
func (_c *DuplicateSuppressionCreate) SetProductionEntityID(v uuid.UUID) *DuplicateSuppressionCreate {
	_c.mutation.SetProductionEntityID(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *DuplicateSuppressionCreate) SetFingerprint(v string) *DuplicateSuppressionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetResolutionID sets the "resolution_id" field.
func (_c *DuplicateSuppressionCreate) SetResolutionID(v uuid.UUID) *DuplicateSuppressionCreate {
	_c.mutation.SetResolutionID(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *DuplicateSuppressionCreate) SetCreatedBy(v string) *DuplicateSuppressionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DuplicateSuppressionCreate) SetID(v uuid.UUID) *DuplicateSuppressionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DuplicateSuppressionMutation object of the builder.
func (_c *DuplicateSuppressionCreate) Mutation() *DuplicateSuppressionMutation {
	return _c.mutation
}

// Save creates the DuplicateSuppression in the database.
func (_c *DuplicateSuppressionCreate) Save(ctx context.Context) (*DuplicateSuppression, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DuplicateSuppressionCreate) SaveX(ctx context.Context) *DuplicateSuppression {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateSuppressionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateSuppressionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DuplicateSuppressionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := duplicatesuppression.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DuplicateSuppressionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DuplicateSuppression.created_at"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "DuplicateSuppression.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := duplicatesuppression.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "DuplicateSuppression.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductionEntityID(); !ok {
		return &ValidationError{Name: "production_entity_id", err: errors.New(`ent: missing required field "DuplicateSuppression.production_entity_id"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "DuplicateSuppression.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := duplicatesuppression.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "DuplicateSuppression.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResolutionID(); !ok {
		return &ValidationError{Name: "resolution_id", err: errors.New(`ent: missing required field "DuplicateSuppression.resolution_id"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "DuplicateSuppression.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := duplicatesuppression.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "DuplicateSuppression.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *DuplicateSuppressionCreate) sqlSave(ctx context.Context) (*DuplicateSuppression, error) {
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

func (_c *DuplicateSuppressionCreate) createSpec() (*DuplicateSuppression, *sqlgraph.CreateSpec) {
	var (
		_node = &DuplicateSuppression{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(duplicatesuppression.Table, sqlgraph.NewFieldSpec(duplicatesuppression.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(duplicatesuppression.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(duplicatesuppression.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.ProductionEntityID(); ok {
		_spec.SetField(duplicatesuppression.FieldProductionEntityID, field.TypeUUID, value)
		_node.ProductionEntityID = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(duplicatesuppression.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ResolutionID(); ok {
		_spec.SetField(duplicatesuppression.FieldResolutionID, field.TypeUUID, value)
		_node.ResolutionID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(duplicatesuppression.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DuplicateSuppression.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DuplicateSuppressionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DuplicateSuppressionCreate) OnConflict(opts ...sql.ConflictOption) *DuplicateSuppressionUpsertOne {
	_c.conflict = opts
	return &DuplicateSuppressionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DuplicateSuppressionCreate) OnConflictColumns(columns ...string) *DuplicateSuppressionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DuplicateSuppressionUpsertOne{
		create: _c,
	}
}

type (
	// DuplicateSuppressionUpsertOne is the builder for "upsert"-ing
	//  one DuplicateSuppression node.
	DuplicateSuppressionUpsertOne struct {
		create *DuplicateSuppressionCreate
	}

	// DuplicateSuppressionUpsert is the "OnConflict" setter.
	DuplicateSuppressionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(duplicatesuppression.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DuplicateSuppressionUpsertOne) UpdateNewValues() *DuplicateSuppressionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(duplicatesuppression.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(duplicatesuppression.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.EntityType(); exists {
			s.SetIgnore(duplicatesuppression.FieldEntityType)
		}
		if _, exists := u.create.mutation.ProductionEntityID(); exists {
			s.SetIgnore(duplicatesuppression.FieldProductionEntityID)
		}
		if _, exists := u.create.mutation.Fingerprint(); exists {
			s.SetIgnore(duplicatesuppression.FieldFingerprint)
		}
		if _, exists := u.create.mutation.ResolutionID(); exists {
			s.SetIgnore(duplicatesuppression.FieldResolutionID)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(duplicatesuppression.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DuplicateSuppressionUpsertOne) Ignore() *DuplicateSuppressionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DuplicateSuppressionUpsertOne) DoNothing() *DuplicateSuppressionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DuplicateSuppressionCreate.OnConflict
// documentation for more info.
func (u *DuplicateSuppressionUpsertOne) Update(set func(*DuplicateSuppressionUpsert)) *DuplicateSuppressionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DuplicateSuppressionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DuplicateSuppressionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DuplicateSuppressionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DuplicateSuppressionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DuplicateSuppressionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DuplicateSuppressionUpsertOne.ID is not supported by MySQL driver. Use DuplicateSuppressionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DuplicateSuppressionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DuplicateSuppressionCreateBulk is the builder for creating many DuplicateSuppression entities in bulk.
type DuplicateSuppressionCreateBulk struct {
	config
	err      error
	builders []*DuplicateSuppressionCreate
	conflict []sql.ConflictOption
}

// Save creates the DuplicateSuppression entities in the database.
func (_c *DuplicateSuppressionCreateBulk) Save(ctx context.Context) ([]*DuplicateSuppression, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DuplicateSuppression, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DuplicateSuppressionMutation)
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
func (_c *DuplicateSuppressionCreateBulk) SaveX(ctx context.Context) []*DuplicateSuppression {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateSuppressionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateSuppressionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DuplicateSuppression.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DuplicateSuppressionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DuplicateSuppressionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DuplicateSuppressionUpsertBulk {
	_c.conflict = opts
	return &DuplicateSuppressionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DuplicateSuppressionCreateBulk) OnConflictColumns(columns ...string) *DuplicateSuppressionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DuplicateSuppressionUpsertBulk{
		create: _c,
	}
}

// DuplicateSuppressionUpsertBulk is the builder for "upsert"-ing
// a bulk of DuplicateSuppression nodes.
type DuplicateSuppressionUpsertBulk struct {
	create *DuplicateSuppressionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(duplicatesuppression.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DuplicateSuppressionUpsertBulk) UpdateNewValues() *DuplicateSuppressionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(duplicatesuppression.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(duplicatesuppression.FieldCreatedAt)
			}
			if _, exists := b.mutation.EntityType(); exists {
				s.SetIgnore(duplicatesuppression.FieldEntityType)
			}
			if _, exists := b.mutation.ProductionEntityID(); exists {
				s.SetIgnore(duplicatesuppression.FieldProductionEntityID)
			}
			if _, exists := b.mutation.Fingerprint(); exists {
				s.SetIgnore(duplicatesuppression.FieldFingerprint)
			}
			if _, exists := b.mutation.ResolutionID(); exists {
				s.SetIgnore(duplicatesuppression.FieldResolutionID)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(duplicatesuppression.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DuplicateSuppression.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DuplicateSuppressionUpsertBulk) Ignore() *DuplicateSuppressionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DuplicateSuppressionUpsertBulk) DoNothing() *DuplicateSuppressionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DuplicateSuppressionCreateBulk.OnConflict
// documentation for more info.
func (u *DuplicateSuppressionUpsertBulk) Update(set func(*DuplicateSuppressionUpsert)) *DuplicateSuppressionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DuplicateSuppressionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DuplicateSuppressionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DuplicateSuppressionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DuplicateSuppressionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DuplicateSuppressionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
