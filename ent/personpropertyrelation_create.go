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
	"uhc-registry.io/registry/ent/personpropertyrelation"
)

// PersonPropertyRelationCreate is the builder for creating a PersonPropertyRelation entity.
type PersonPropertyRelationCreate struct {
	config
	mutation *PersonPropertyRelationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonPropertyRelationCreate) SetCreatedAt(v time.Time) *PersonPropertyRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonPropertyRelationCreate) SetNillableCreatedAt(v *time.Time) *PersonPropertyRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonPropertyRelationCreate) SetUpdatedAt(v time.Time) *PersonPropertyRelationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonPropertyRelationCreate) SetNillableUpdatedAt(v *time.Time) *PersonPropertyRelationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *PersonPropertyRelationCreate) SetSourcePackageID(v uuid.UUID) *PersonPropertyRelationCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *PersonPropertyRelationCreate) SetNillableSourcePackageID(v *uuid.UUID) *PersonPropertyRelationCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetPersonID sets the "person_id" field.
func (_c *PersonPropertyRelationCreate) SetPersonID(v uuid.UUID) *PersonPropertyRelationCreate {
	_c.mutation.SetPersonID(v)
	return _c
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_c *PersonPropertyRelationCreate) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationCreate {
	_c.mutation.SetPropertyUnitID(v)
	return _c
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (_c *PersonPropertyRelationCreate) SetRelationTypeCode(v string) *PersonPropertyRelationCreate {
	_c.mutation.SetRelationTypeCode(v)
	return _c
}

// SetOwnershipShare sets the "ownership_share" field.
func (_c *PersonPropertyRelationCreate) SetOwnershipShare(v float64) *PersonPropertyRelationCreate {
	_c.mutation.SetOwnershipShare(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *PersonPropertyRelationCreate) SetStartDate(v time.Time) *PersonPropertyRelationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *PersonPropertyRelationCreate) SetNillableStartDate(v *time.Time) *PersonPropertyRelationCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PersonPropertyRelationCreate) SetNotes(v string) *PersonPropertyRelationCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PersonPropertyRelationCreate) SetNillableNotes(v *string) *PersonPropertyRelationCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonPropertyRelationCreate) SetID(v uuid.UUID) *PersonPropertyRelationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PersonPropertyRelationMutation object of the builder.
func (_c *PersonPropertyRelationCreate) Mutation() *PersonPropertyRelationMutation {
	return _c.mutation
}

// Save creates the PersonPropertyRelation in the database.
func (_c *PersonPropertyRelationCreate) Save(ctx context.Context) (*PersonPropertyRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonPropertyRelationCreate) SaveX(ctx context.Context) *PersonPropertyRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonPropertyRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonPropertyRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonPropertyRelationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := personpropertyrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := personpropertyrelation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonPropertyRelationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PersonPropertyRelation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PersonPropertyRelation.updated_at"`)}
	}
	if _, ok := _c.mutation.PersonID(); !ok {
		return &ValidationError{Name: "person_id", err: errors.New(`ent: missing required field "PersonPropertyRelation.person_id"`)}
	}
	if _, ok := _c.mutation.PropertyUnitID(); !ok {
		return &ValidationError{Name: "property_unit_id", err: errors.New(`ent: missing required field "PersonPropertyRelation.property_unit_id"`)}
	}
	if _, ok := _c.mutation.RelationTypeCode(); !ok {
		return &ValidationError{Name: "relation_type_code", err: errors.New(`ent: missing required field "PersonPropertyRelation.relation_type_code"`)}
	}
	if v, ok := _c.mutation.RelationTypeCode(); ok {
		if err := personpropertyrelation.RelationTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type_code", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.relation_type_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnershipShare(); !ok {
		return &ValidationError{Name: "ownership_share", err: errors.New(`ent: missing required field "PersonPropertyRelation.ownership_share"`)}
	}
	if v, ok := _c.mutation.OwnershipShare(); ok {
		if err := personpropertyrelation.OwnershipShareValidator(v); err != nil {
			return &ValidationError{Name: "ownership_share", err: fmt.Errorf(`ent: validator failed for field "PersonPropertyRelation.ownership_share": %w`, err)}
		}
	}
	return nil
}

func (_c *PersonPropertyRelationCreate) sqlSave(ctx context.Context) (*PersonPropertyRelation, error) {
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

func (_c *PersonPropertyRelationCreate) createSpec() (*PersonPropertyRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &PersonPropertyRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personpropertyrelation.Table, sqlgraph.NewFieldSpec(personpropertyrelation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(personpropertyrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(personpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(personpropertyrelation.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.PersonID(); ok {
		_spec.SetField(personpropertyrelation.FieldPersonID, field.TypeUUID, value)
		_node.PersonID = value
	}
	if value, ok := _c.mutation.PropertyUnitID(); ok {
		_spec.SetField(personpropertyrelation.FieldPropertyUnitID, field.TypeUUID, value)
		_node.PropertyUnitID = value
	}
	if value, ok := _c.mutation.RelationTypeCode(); ok {
		_spec.SetField(personpropertyrelation.FieldRelationTypeCode, field.TypeString, value)
		_node.RelationTypeCode = value
	}
	if value, ok := _c.mutation.OwnershipShare(); ok {
		_spec.SetField(personpropertyrelation.FieldOwnershipShare, field.TypeFloat64, value)
		_node.OwnershipShare = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(personpropertyrelation.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(personpropertyrelation.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PersonPropertyRelation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonPropertyRelationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonPropertyRelationCreate) OnConflict(opts ...sql.ConflictOption) *PersonPropertyRelationUpsertOne {
	_c.conflict = opts
	return &PersonPropertyRelationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonPropertyRelationCreate) OnConflictColumns(columns ...string) *PersonPropertyRelationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonPropertyRelationUpsertOne{
		create: _c,
	}
}

type (
	// PersonPropertyRelationUpsertOne is the builder for "upsert"-ing
	//  one PersonPropertyRelation node.
	PersonPropertyRelationUpsertOne struct {
		create *PersonPropertyRelationCreate
	}

	// PersonPropertyRelationUpsert is the "OnConflict" setter.
	PersonPropertyRelationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonPropertyRelationUpsert) SetUpdatedAt(v time.Time) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdateUpdatedAt() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldUpdatedAt)
	return u
}

// SetPersonID sets the "person_id" field.
func (u *PersonPropertyRelationUpsert) SetPersonID(v uuid.UUID) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldPersonID, v)
	return u
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdatePersonID() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldPersonID)
	return u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *PersonPropertyRelationUpsert) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldPropertyUnitID, v)
	return u
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdatePropertyUnitID() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldPropertyUnitID)
	return u
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (u *PersonPropertyRelationUpsert) SetRelationTypeCode(v string) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldRelationTypeCode, v)
	return u
}

// UpdateRelationTypeCode sets the "relation_type_code" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdateRelationTypeCode() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldRelationTypeCode)
	return u
}

// SetOwnershipShare sets the "ownership_share" field.
func (u *PersonPropertyRelationUpsert) SetOwnershipShare(v float64) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldOwnershipShare, v)
	return u
}

// UpdateOwnershipShare sets the "ownership_share" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdateOwnershipShare() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldOwnershipShare)
	return u
}

// AddOwnershipShare adds v to the "ownership_share" field.
func (u *PersonPropertyRelationUpsert) AddOwnershipShare(v float64) *PersonPropertyRelationUpsert {
	u.Add(personpropertyrelation.FieldOwnershipShare, v)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *PersonPropertyRelationUpsert) SetStartDate(v time.Time) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdateStartDate() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldStartDate)
	return u
}

// ClearStartDate clears the value of the "start_date" field.
func (u *PersonPropertyRelationUpsert) ClearStartDate() *PersonPropertyRelationUpsert {
	u.SetNull(personpropertyrelation.FieldStartDate)
	return u
}

// SetNotes sets the "notes" field.
func (u *PersonPropertyRelationUpsert) SetNotes(v string) *PersonPropertyRelationUpsert {
	u.Set(personpropertyrelation.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsert) UpdateNotes() *PersonPropertyRelationUpsert {
	u.SetExcluded(personpropertyrelation.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PersonPropertyRelationUpsert) ClearNotes() *PersonPropertyRelationUpsert {
	u.SetNull(personpropertyrelation.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(personpropertyrelation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonPropertyRelationUpsertOne) UpdateNewValues() *PersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(personpropertyrelation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(personpropertyrelation.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(personpropertyrelation.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PersonPropertyRelationUpsertOne) Ignore() *PersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonPropertyRelationUpsertOne) DoNothing() *PersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonPropertyRelationCreate.OnConflict
// documentation for more info.
func (u *PersonPropertyRelationUpsertOne) Update(set func(*PersonPropertyRelationUpsert)) *PersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonPropertyRelationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonPropertyRelationUpsertOne) SetUpdatedAt(v time.Time) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdateUpdatedAt() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPersonID sets the "person_id" field.
func (u *PersonPropertyRelationUpsertOne) SetPersonID(v uuid.UUID) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetPersonID(v)
	})
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdatePersonID() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdatePersonID()
	})
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *PersonPropertyRelationUpsertOne) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetPropertyUnitID(v)
	})
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdatePropertyUnitID() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdatePropertyUnitID()
	})
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (u *PersonPropertyRelationUpsertOne) SetRelationTypeCode(v string) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetRelationTypeCode(v)
	})
}

// UpdateRelationTypeCode sets the "relation_type_code" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdateRelationTypeCode() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateRelationTypeCode()
	})
}

// SetOwnershipShare sets the "ownership_share" field.
func (u *PersonPropertyRelationUpsertOne) SetOwnershipShare(v float64) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetOwnershipShare(v)
	})
}

// AddOwnershipShare adds v to the "ownership_share" field.
func (u *PersonPropertyRelationUpsertOne) AddOwnershipShare(v float64) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.AddOwnershipShare(v)
	})
}

// UpdateOwnershipShare sets the "ownership_share" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdateOwnershipShare() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateOwnershipShare()
	})
}

// SetStartDate sets the "start_date" field.
func (u *PersonPropertyRelationUpsertOne) SetStartDate(v time.Time) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdateStartDate() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *PersonPropertyRelationUpsertOne) ClearStartDate() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.ClearStartDate()
	})
}

// SetNotes sets the "notes" field.
func (u *PersonPropertyRelationUpsertOne) SetNotes(v string) *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertOne) UpdateNotes() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PersonPropertyRelationUpsertOne) ClearNotes() *PersonPropertyRelationUpsertOne {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PersonPropertyRelationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonPropertyRelationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonPropertyRelationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PersonPropertyRelationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PersonPropertyRelationUpsertOne.ID is not supported by MySQL driver. Use PersonPropertyRelationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PersonPropertyRelationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PersonPropertyRelationCreateBulk is the builder for creating many PersonPropertyRelation entities in bulk.
type PersonPropertyRelationCreateBulk struct {
	config
	err      error
	builders []*PersonPropertyRelationCreate
	conflict []sql.ConflictOption
}

// Save creates the PersonPropertyRelation entities in the database.
func (_c *PersonPropertyRelationCreateBulk) Save(ctx context.Context) ([]*PersonPropertyRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PersonPropertyRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonPropertyRelationMutation)
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
func (_c *PersonPropertyRelationCreateBulk) SaveX(ctx context.Context) []*PersonPropertyRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonPropertyRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonPropertyRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PersonPropertyRelation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonPropertyRelationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonPropertyRelationCreateBulk) OnConflict(opts ...sql.ConflictOption) *PersonPropertyRelationUpsertBulk {
	_c.conflict = opts
	return &PersonPropertyRelationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonPropertyRelationCreateBulk) OnConflictColumns(columns ...string) *PersonPropertyRelationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonPropertyRelationUpsertBulk{
		create: _c,
	}
}

// PersonPropertyRelationUpsertBulk is the builder for "upsert"-ing
// a bulk of PersonPropertyRelation nodes.
type PersonPropertyRelationUpsertBulk struct {
	create *PersonPropertyRelationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(personpropertyrelation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonPropertyRelationUpsertBulk) UpdateNewValues() *PersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(personpropertyrelation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(personpropertyrelation.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(personpropertyrelation.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PersonPropertyRelation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PersonPropertyRelationUpsertBulk) Ignore() *PersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonPropertyRelationUpsertBulk) DoNothing() *PersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonPropertyRelationCreateBulk.OnConflict
// documentation for more info.
func (u *PersonPropertyRelationUpsertBulk) Update(set func(*PersonPropertyRelationUpsert)) *PersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonPropertyRelationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonPropertyRelationUpsertBulk) SetUpdatedAt(v time.Time) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdateUpdatedAt() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPersonID sets the "person_id" field.
func (u *PersonPropertyRelationUpsertBulk) SetPersonID(v uuid.UUID) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetPersonID(v)
	})
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdatePersonID() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdatePersonID()
	})
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *PersonPropertyRelationUpsertBulk) SetPropertyUnitID(v uuid.UUID) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetPropertyUnitID(v)
	})
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdatePropertyUnitID() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdatePropertyUnitID()
	})
}

// SetRelationTypeCode sets the "relation_type_code" field.
func (u *PersonPropertyRelationUpsertBulk) SetRelationTypeCode(v string) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetRelationTypeCode(v)
	})
}

// UpdateRelationTypeCode sets the "relation_type_code" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdateRelationTypeCode() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateRelationTypeCode()
	})
}

// SetOwnershipShare sets the "ownership_share" field.
func (u *PersonPropertyRelationUpsertBulk) SetOwnershipShare(v float64) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetOwnershipShare(v)
	})
}

// AddOwnershipShare adds v to the "ownership_share" field.
func (u *PersonPropertyRelationUpsertBulk) AddOwnershipShare(v float64) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.AddOwnershipShare(v)
	})
}

// UpdateOwnershipShare sets the "ownership_share" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdateOwnershipShare() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateOwnershipShare()
	})
}

// SetStartDate sets the "start_date" field.
func (u *PersonPropertyRelationUpsertBulk) SetStartDate(v time.Time) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdateStartDate() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *PersonPropertyRelationUpsertBulk) ClearStartDate() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.ClearStartDate()
	})
}

// SetNotes sets the "notes" field.
func (u *PersonPropertyRelationUpsertBulk) SetNotes(v string) *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PersonPropertyRelationUpsertBulk) UpdateNotes() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PersonPropertyRelationUpsertBulk) ClearNotes() *PersonPropertyRelationUpsertBulk {
	return u.Update(func(s *PersonPropertyRelationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PersonPropertyRelationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PersonPropertyRelationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonPropertyRelationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonPropertyRelationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
