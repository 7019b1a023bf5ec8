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
	"uhc-registry.io/registry/ent/survey"
)

// SurveyCreate is the builder for creating a Survey entity.
type SurveyCreate struct {
	config
	mutation *SurveyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SurveyCreate) SetCreatedAt(v time.Time) *SurveyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableCreatedAt(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SurveyCreate) SetUpdatedAt(v time.Time) *SurveyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableUpdatedAt(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *SurveyCreate) SetSourcePackageID(v uuid.UUID) *SurveyCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableSourcePackageID(v *uuid.UUID) *SurveyCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetBuildingID sets the "building_id" field.
func (_c *SurveyCreate) SetBuildingID(v uuid.UUID) *SurveyCreate {
	_c.mutation.SetBuildingID(v)
	return _c
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (_c *SurveyCreate) SetSurveyTypeCode(v string) *SurveyCreate {
	_c.mutation.SetSurveyTypeCode(v)
	return _c
}

// SetSurveyDate sets the "survey_date" field.
func (_c *SurveyCreate) SetSurveyDate(v time.Time) *SurveyCreate {
	_c.mutation.SetSurveyDate(v)
	return _c
}

// SetNillableSurveyDate sets the "survey_date" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableSurveyDate(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetSurveyDate(*v)
	}
	return _c
}

// SetSurveyorName sets the "surveyor_name" field.
func (_c *SurveyCreate) SetSurveyorName(v string) *SurveyCreate {
	_c.mutation.SetSurveyorName(v)
	return _c
}

// SetNillableSurveyorName sets the "surveyor_name" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableSurveyorName(v *string) *SurveyCreate {
	if v != nil {
		_c.SetSurveyorName(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SurveyCreate) SetNotes(v string) *SurveyCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableNotes(v *string) *SurveyCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurveyCreate) SetID(v uuid.UUID) *SurveyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SurveyMutation object of the builder.
func (_c *SurveyCreate) Mutation() *SurveyMutation {
	return _c.mutation
}

// Save creates the Survey in the database.
func (_c *SurveyCreate) Save(ctx context.Context) (*Survey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyCreate) SaveX(ctx context.Context) *Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := survey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := survey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Survey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Survey.updated_at"`)}
	}
	if _, ok := _c.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "Survey.building_id"`)}
	}
	if _, ok := _c.mutation.SurveyTypeCode(); !ok {
		return &ValidationError{Name: "survey_type_code", err: errors.New(`ent: missing required field "Survey.survey_type_code"`)}
	}
	if v, ok := _c.mutation.SurveyTypeCode(); ok {
		if err := survey.SurveyTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "survey_type_code", err: fmt.Errorf(`ent: validator failed for field "Survey.survey_type_code": %w`, err)}
		}
	}
	return nil
}

func (_c *SurveyCreate) sqlSave(ctx context.Context) (*Survey, error) {
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

func (_c *SurveyCreate) createSpec() (*Survey, *sqlgraph.CreateSpec) {
	var (
		_node = &Survey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(survey.Table, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(survey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(survey.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.BuildingID(); ok {
		_spec.SetField(survey.FieldBuildingID, field.TypeUUID, value)
		_node.BuildingID = value
	}
	if value, ok := _c.mutation.SurveyTypeCode(); ok {
		_spec.SetField(survey.FieldSurveyTypeCode, field.TypeString, value)
		_node.SurveyTypeCode = value
	}
	if value, ok := _c.mutation.SurveyDate(); ok {
		_spec.SetField(survey.FieldSurveyDate, field.TypeTime, value)
		_node.SurveyDate = &value
	}
	if value, ok := _c.mutation.SurveyorName(); ok {
		_spec.SetField(survey.FieldSurveyorName, field.TypeString, value)
		_node.SurveyorName = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(survey.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Survey.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyCreate) OnConflict(opts ...sql.ConflictOption) *SurveyUpsertOne {
	_c.conflict = opts
	return &SurveyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyCreate) OnConflictColumns(columns ...string) *SurveyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyUpsertOne{
		create: _c,
	}
}

type (
	// SurveyUpsertOne is the builder for "upsert"-ing
	//  one Survey node.
	SurveyUpsertOne struct {
		create *SurveyCreate
	}

	// SurveyUpsert is the "OnConflict" setter.
	SurveyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyUpsert) SetUpdatedAt(v time.Time) *SurveyUpsert {
	u.Set(survey.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateUpdatedAt() *SurveyUpsert {
	u.SetExcluded(survey.FieldUpdatedAt)
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *SurveyUpsert) SetBuildingID(v uuid.UUID) *SurveyUpsert {
	u.Set(survey.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateBuildingID() *SurveyUpsert {
	u.SetExcluded(survey.FieldBuildingID)
	return u
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (u *SurveyUpsert) SetSurveyTypeCode(v string) *SurveyUpsert {
	u.Set(survey.FieldSurveyTypeCode, v)
	return u
}

// UpdateSurveyTypeCode sets the "survey_type_code" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateSurveyTypeCode() *SurveyUpsert {
	u.SetExcluded(survey.FieldSurveyTypeCode)
	return u
}

// SetSurveyDate sets the "survey_date" field.
func (u *SurveyUpsert) SetSurveyDate(v time.Time) *SurveyUpsert {
	u.Set(survey.FieldSurveyDate, v)
	return u
}

// UpdateSurveyDate sets the "survey_date" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateSurveyDate() *SurveyUpsert {
	u.SetExcluded(survey.FieldSurveyDate)
	return u
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (u *SurveyUpsert) ClearSurveyDate() *SurveyUpsert {
	u.SetNull(survey.FieldSurveyDate)
	return u
}

// SetSurveyorName sets the "surveyor_name" field.
func (u *SurveyUpsert) SetSurveyorName(v string) *SurveyUpsert {
	u.Set(survey.FieldSurveyorName, v)
	return u
}

// UpdateSurveyorName sets the "surveyor_name" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateSurveyorName() *SurveyUpsert {
	u.SetExcluded(survey.FieldSurveyorName)
	return u
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (u *SurveyUpsert) ClearSurveyorName() *SurveyUpsert {
	u.SetNull(survey.FieldSurveyorName)
	return u
}

// SetNotes sets the "notes" field.
func (u *SurveyUpsert) SetNotes(v string) *SurveyUpsert {
	u.Set(survey.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateNotes() *SurveyUpsert {
	u.SetExcluded(survey.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *SurveyUpsert) ClearNotes() *SurveyUpsert {
	u.SetNull(survey.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(survey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyUpsertOne) UpdateNewValues() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(survey.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(survey.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(survey.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SurveyUpsertOne) Ignore() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyUpsertOne) DoNothing() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyCreate.OnConflict
// documentation for more info.
func (u *SurveyUpsertOne) Update(set func(*SurveyUpsert)) *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyUpsertOne) SetUpdatedAt(v time.Time) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateUpdatedAt() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingID sets the "building_id" field.
func (u *SurveyUpsertOne) SetBuildingID(v uuid.UUID) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateBuildingID() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateBuildingID()
	})
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (u *SurveyUpsertOne) SetSurveyTypeCode(v string) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyTypeCode(v)
	})
}

// UpdateSurveyTypeCode sets the "survey_type_code" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateSurveyTypeCode() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyTypeCode()
	})
}

// SetSurveyDate sets the "survey_date" field.
func (u *SurveyUpsertOne) SetSurveyDate(v time.Time) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyDate(v)
	})
}

// UpdateSurveyDate sets the "survey_date" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateSurveyDate() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyDate()
	})
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (u *SurveyUpsertOne) ClearSurveyDate() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearSurveyDate()
	})
}

// SetSurveyorName sets the "surveyor_name" field.
func (u *SurveyUpsertOne) SetSurveyorName(v string) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyorName(v)
	})
}

// UpdateSurveyorName sets the "surveyor_name" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateSurveyorName() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyorName()
	})
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (u *SurveyUpsertOne) ClearSurveyorName() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearSurveyorName()
	})
}

// SetNotes sets the "notes" field.
func (u *SurveyUpsertOne) SetNotes(v string) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateNotes() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SurveyUpsertOne) ClearNotes() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *SurveyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SurveyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SurveyUpsertOne.ID is not supported by MySQL driver. Use SurveyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SurveyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SurveyCreateBulk is the builder for creating many Survey entities in bulk.
type SurveyCreateBulk struct {
	config
	err      error
	builders []*SurveyCreate
	conflict []sql.ConflictOption
}

// Save creates the Survey entities in the database.
func (_c *SurveyCreateBulk) Save(ctx context.Context) ([]*Survey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Survey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyMutation)
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
func (_c *SurveyCreateBulk) SaveX(ctx context.Context) []*Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Survey.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyCreateBulk) OnConflict(opts ...sql.ConflictOption) *SurveyUpsertBulk {
	_c.conflict = opts
	return &SurveyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyCreateBulk) OnConflictColumns(columns ...string) *SurveyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyUpsertBulk{
		create: _c,
	}
}

// SurveyUpsertBulk is the builder for "upsert"-ing
// a bulk of Survey nodes.
type SurveyUpsertBulk struct {
	create *SurveyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(survey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyUpsertBulk) UpdateNewValues() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(survey.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(survey.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(survey.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SurveyUpsertBulk) Ignore() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyUpsertBulk) DoNothing() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyCreateBulk.OnConflict
// documentation for more info.
func (u *SurveyUpsertBulk) Update(set func(*SurveyUpsert)) *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyUpsertBulk) SetUpdatedAt(v time.Time) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateUpdatedAt() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingID sets the "building_id" field.
func (u *SurveyUpsertBulk) SetBuildingID(v uuid.UUID) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateBuildingID() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateBuildingID()
	})
}

// SetSurveyTypeCode sets the "survey_type_code" field.
func (u *SurveyUpsertBulk) SetSurveyTypeCode(v string) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyTypeCode(v)
	})
}

// UpdateSurveyTypeCode sets the "survey_type_code" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateSurveyTypeCode() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyTypeCode()
	})
}

// SetSurveyDate sets the "survey_date" field.
func (u *SurveyUpsertBulk) SetSurveyDate(v time.Time) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyDate(v)
	})
}

// UpdateSurveyDate sets the "survey_date" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateSurveyDate() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyDate()
	})
}

// ClearSurveyDate clears the value of the "survey_date" field.
func (u *SurveyUpsertBulk) ClearSurveyDate() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearSurveyDate()
	})
}

// SetSurveyorName sets the "surveyor_name" field.
func (u *SurveyUpsertBulk) SetSurveyorName(v string) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetSurveyorName(v)
	})
}

// UpdateSurveyorName sets the "surveyor_name" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateSurveyorName() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateSurveyorName()
	})
}

// ClearSurveyorName clears the value of the "surveyor_name" field.
func (u *SurveyUpsertBulk) ClearSurveyorName() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearSurveyorName()
	})
}

// SetNotes sets the "notes" field.
func (u *SurveyUpsertBulk) SetNotes(v string) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateNotes() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SurveyUpsertBulk) ClearNotes() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *SurveyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SurveyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
