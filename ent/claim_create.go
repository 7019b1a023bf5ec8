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
	"uhc-registry.io/registry/ent/claim"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimCreate) SetUpdatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableUpdatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *ClaimCreate) SetSourcePackageID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableSourcePackageID(v *uuid.UUID) *ClaimCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetClaimNumber sets the "claim_number" field.
func (_c *ClaimCreate) SetClaimNumber(v string) *ClaimCreate {
	_c.mutation.SetClaimNumber(v)
	return _c
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (_c *ClaimCreate) SetPropertyUnitID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetPropertyUnitID(v)
	return _c
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (_c *ClaimCreate) SetPrimaryClaimantID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetPrimaryClaimantID(v)
	return _c
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (_c *ClaimCreate) SetClaimTypeCode(v string) *ClaimCreate {
	_c.mutation.SetClaimTypeCode(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ClaimCreate) SetStatusCode(v string) *ClaimCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableStatusCode(v *string) *ClaimCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetClaimedShare sets the "claimed_share" field.
func (_c *ClaimCreate) SetClaimedShare(v float64) *ClaimCreate {
	_c.mutation.SetClaimedShare(v)
	return _c
}

// SetSubmissionDate sets the "submission_date" field.
func (_c *ClaimCreate) SetSubmissionDate(v time.Time) *ClaimCreate {
	_c.mutation.SetSubmissionDate(v)
	return _c
}

// SetNillableSubmissionDate sets the "submission_date" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableSubmissionDate(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetSubmissionDate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ClaimCreate) SetNotes(v string) *ClaimCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableNotes(v *string) *ClaimCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		v := claim.DefaultStatusCode
		_c.mutation.SetStatusCode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Claim.updated_at"`)}
	}
	if _, ok := _c.mutation.ClaimNumber(); !ok {
		return &ValidationError{Name: "claim_number", err: errors.New(`ent: missing required field "Claim.claim_number"`)}
	}
	if v, ok := _c.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyUnitID(); !ok {
		return &ValidationError{Name: "property_unit_id", err: errors.New(`ent: missing required field "Claim.property_unit_id"`)}
	}
	if _, ok := _c.mutation.PrimaryClaimantID(); !ok {
		return &ValidationError{Name: "primary_claimant_id", err: errors.New(`ent: missing required field "Claim.primary_claimant_id"`)}
	}
	if _, ok := _c.mutation.ClaimTypeCode(); !ok {
		return &ValidationError{Name: "claim_type_code", err: errors.New(`ent: missing required field "Claim.claim_type_code"`)}
	}
	if v, ok := _c.mutation.ClaimTypeCode(); ok {
		if err := claim.ClaimTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type_code", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "Claim.status_code"`)}
	}
	if _, ok := _c.mutation.ClaimedShare(); !ok {
		return &ValidationError{Name: "claimed_share", err: errors.New(`ent: missing required field "Claim.claimed_share"`)}
	}
	if v, ok := _c.mutation.ClaimedShare(); ok {
		if err := claim.ClaimedShareValidator(v); err != nil {
			return &ValidationError{Name: "claimed_share", err: fmt.Errorf(`ent: validator failed for field "Claim.claimed_share": %w`, err)}
		}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
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

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(claim.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
		_node.ClaimNumber = value
	}
	if value, ok := _c.mutation.PropertyUnitID(); ok {
		_spec.SetField(claim.FieldPropertyUnitID, field.TypeUUID, value)
		_node.PropertyUnitID = value
	}
	if value, ok := _c.mutation.PrimaryClaimantID(); ok {
		_spec.SetField(claim.FieldPrimaryClaimantID, field.TypeUUID, value)
		_node.PrimaryClaimantID = value
	}
	if value, ok := _c.mutation.ClaimTypeCode(); ok {
		_spec.SetField(claim.FieldClaimTypeCode, field.TypeString, value)
		_node.ClaimTypeCode = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(claim.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.ClaimedShare(); ok {
		_spec.SetField(claim.FieldClaimedShare, field.TypeFloat64, value)
		_node.ClaimedShare = value
	}
	if value, ok := _c.mutation.SubmissionDate(); ok {
		_spec.SetField(claim.FieldSubmissionDate, field.TypeTime, value)
		_node.SubmissionDate = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(claim.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Claim.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimCreate) OnConflict(opts ...sql.ConflictOption) *ClaimUpsertOne {
	_c.conflict = opts
	return &ClaimUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimCreate) OnConflictColumns(columns ...string) *ClaimUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimUpsertOne{
		create: _c,
	}
}

type (
	// ClaimUpsertOne is the builder for "upsert"-ing
	//  one Claim node.
	ClaimUpsertOne struct {
		create *ClaimCreate
	}

	// ClaimUpsert is the "OnConflict" setter.
	ClaimUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsert) SetUpdatedAt(v time.Time) *ClaimUpsert {
	u.Set(claim.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateUpdatedAt() *ClaimUpsert {
	u.SetExcluded(claim.FieldUpdatedAt)
	return u
}

// SetClaimNumber sets the "claim_number" field.
func (u *ClaimUpsert) SetClaimNumber(v string) *ClaimUpsert {
	u.Set(claim.FieldClaimNumber, v)
	return u
}

// UpdateClaimNumber sets the "claim_number" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateClaimNumber() *ClaimUpsert {
	u.SetExcluded(claim.FieldClaimNumber)
	return u
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *ClaimUpsert) SetPropertyUnitID(v uuid.UUID) *ClaimUpsert {
	u.Set(claim.FieldPropertyUnitID, v)
	return u
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *ClaimUpsert) UpdatePropertyUnitID() *ClaimUpsert {
	u.SetExcluded(claim.FieldPropertyUnitID)
	return u
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (u *ClaimUpsert) SetPrimaryClaimantID(v uuid.UUID) *ClaimUpsert {
	u.Set(claim.FieldPrimaryClaimantID, v)
	return u
}

// UpdatePrimaryClaimantID sets the "primary_claimant_id" field to the value that was provided on create.
func (u *ClaimUpsert) UpdatePrimaryClaimantID() *ClaimUpsert {
	u.SetExcluded(claim.FieldPrimaryClaimantID)
	return u
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (u *ClaimUpsert) SetClaimTypeCode(v string) *ClaimUpsert {
	u.Set(claim.FieldClaimTypeCode, v)
	return u
}

// UpdateClaimTypeCode sets the "claim_type_code" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateClaimTypeCode() *ClaimUpsert {
	u.SetExcluded(claim.FieldClaimTypeCode)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *ClaimUpsert) SetStatusCode(v string) *ClaimUpsert {
	u.Set(claim.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateStatusCode() *ClaimUpsert {
	u.SetExcluded(claim.FieldStatusCode)
	return u
}

// SetClaimedShare sets the "claimed_share" field.
func (u *ClaimUpsert) SetClaimedShare(v float64) *ClaimUpsert {
	u.Set(claim.FieldClaimedShare, v)
	return u
}

// UpdateClaimedShare sets the "claimed_share" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateClaimedShare() *ClaimUpsert {
	u.SetExcluded(claim.FieldClaimedShare)
	return u
}

// AddClaimedShare adds v to the "claimed_share" field.
func (u *ClaimUpsert) AddClaimedShare(v float64) *ClaimUpsert {
	u.Add(claim.FieldClaimedShare, v)
	return u
}

// SetSubmissionDate sets the "submission_date" field.
func (u *ClaimUpsert) SetSubmissionDate(v time.Time) *ClaimUpsert {
	u.Set(claim.FieldSubmissionDate, v)
	return u
}

// UpdateSubmissionDate sets the "submission_date" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateSubmissionDate() *ClaimUpsert {
	u.SetExcluded(claim.FieldSubmissionDate)
	return u
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (u *ClaimUpsert) ClearSubmissionDate() *ClaimUpsert {
	u.SetNull(claim.FieldSubmissionDate)
	return u
}

// SetNotes sets the "notes" field.
func (u *ClaimUpsert) SetNotes(v string) *ClaimUpsert {
	u.Set(claim.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateNotes() *ClaimUpsert {
	u.SetExcluded(claim.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ClaimUpsert) ClearNotes() *ClaimUpsert {
	u.SetNull(claim.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimUpsertOne) UpdateNewValues() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(claim.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(claim.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(claim.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClaimUpsertOne) Ignore() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimUpsertOne) DoNothing() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimCreate.OnConflict
// documentation for more info.
func (u *ClaimUpsertOne) Update(set func(*ClaimUpsert)) *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsertOne) SetUpdatedAt(v time.Time) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateUpdatedAt() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimNumber sets the "claim_number" field.
func (u *ClaimUpsertOne) SetClaimNumber(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimNumber(v)
	})
}

// UpdateClaimNumber sets the "claim_number" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateClaimNumber() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimNumber()
	})
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *ClaimUpsertOne) SetPropertyUnitID(v uuid.UUID) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetPropertyUnitID(v)
	})
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdatePropertyUnitID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdatePropertyUnitID()
	})
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (u *ClaimUpsertOne) SetPrimaryClaimantID(v uuid.UUID) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetPrimaryClaimantID(v)
	})
}

// UpdatePrimaryClaimantID sets the "primary_claimant_id" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdatePrimaryClaimantID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdatePrimaryClaimantID()
	})
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (u *ClaimUpsertOne) SetClaimTypeCode(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimTypeCode(v)
	})
}

// UpdateClaimTypeCode sets the "claim_type_code" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateClaimTypeCode() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimTypeCode()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *ClaimUpsertOne) SetStatusCode(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateStatusCode() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateStatusCode()
	})
}

// SetClaimedShare sets the "claimed_share" field.
func (u *ClaimUpsertOne) SetClaimedShare(v float64) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimedShare(v)
	})
}

// AddClaimedShare adds v to the "claimed_share" field.
func (u *ClaimUpsertOne) AddClaimedShare(v float64) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.AddClaimedShare(v)
	})
}

// UpdateClaimedShare sets the "claimed_share" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateClaimedShare() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimedShare()
	})
}

// SetSubmissionDate sets the "submission_date" field.
func (u *ClaimUpsertOne) SetSubmissionDate(v time.Time) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSubmissionDate(v)
	})
}

// UpdateSubmissionDate sets the "submission_date" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateSubmissionDate() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSubmissionDate()
	})
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (u *ClaimUpsertOne) ClearSubmissionDate() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSubmissionDate()
	})
}

// SetNotes sets the "notes" field.
func (u *ClaimUpsertOne) SetNotes(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateNotes() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ClaimUpsertOne) ClearNotes() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ClaimUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClaimUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClaimUpsertOne.ID is not supported by MySQL driver. Use ClaimUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClaimUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
	conflict []sql.ConflictOption
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
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
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Claim.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClaimUpsertBulk {
	_c.conflict = opts
	return &ClaimUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimCreateBulk) OnConflictColumns(columns ...string) *ClaimUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimUpsertBulk{
		create: _c,
	}
}

// ClaimUpsertBulk is the builder for "upsert"-ing
// a bulk of Claim nodes.
type ClaimUpsertBulk struct {
	create *ClaimCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimUpsertBulk) UpdateNewValues() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(claim.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(claim.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(claim.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClaimUpsertBulk) Ignore() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimUpsertBulk) DoNothing() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimCreateBulk.OnConflict
// documentation for more info.
func (u *ClaimUpsertBulk) Update(set func(*ClaimUpsert)) *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsertBulk) SetUpdatedAt(v time.Time) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateUpdatedAt() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimNumber sets the "claim_number" field.
func (u *ClaimUpsertBulk) SetClaimNumber(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimNumber(v)
	})
}

// UpdateClaimNumber sets the "claim_number" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateClaimNumber() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimNumber()
	})
}

// SetPropertyUnitID sets the "property_unit_id" field.
func (u *ClaimUpsertBulk) SetPropertyUnitID(v uuid.UUID) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetPropertyUnitID(v)
	})
}

// UpdatePropertyUnitID sets the "property_unit_id" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdatePropertyUnitID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdatePropertyUnitID()
	})
}

// SetPrimaryClaimantID sets the "primary_claimant_id" field.
func (u *ClaimUpsertBulk) SetPrimaryClaimantID(v uuid.UUID) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetPrimaryClaimantID(v)
	})
}

// UpdatePrimaryClaimantID sets the "primary_claimant_id" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdatePrimaryClaimantID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdatePrimaryClaimantID()
	})
}

// SetClaimTypeCode sets the "claim_type_code" field.
func (u *ClaimUpsertBulk) SetClaimTypeCode(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimTypeCode(v)
	})
}

// UpdateClaimTypeCode sets the "claim_type_code" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateClaimTypeCode() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimTypeCode()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *ClaimUpsertBulk) SetStatusCode(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateStatusCode() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateStatusCode()
	})
}

// SetClaimedShare sets the "claimed_share" field.
func (u *ClaimUpsertBulk) SetClaimedShare(v float64) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimedShare(v)
	})
}

// AddClaimedShare adds v to the "claimed_share" field.
func (u *ClaimUpsertBulk) AddClaimedShare(v float64) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.AddClaimedShare(v)
	})
}

// UpdateClaimedShare sets the "claimed_share" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateClaimedShare() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimedShare()
	})
}

// SetSubmissionDate sets the "submission_date" field.
func (u *ClaimUpsertBulk) SetSubmissionDate(v time.Time) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSubmissionDate(v)
	})
}

// UpdateSubmissionDate sets the "submission_date" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateSubmissionDate() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSubmissionDate()
	})
}

// ClearSubmissionDate clears the value of the "submission_date" field.
func (u *ClaimUpsertBulk) ClearSubmissionDate() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSubmissionDate()
	})
}

// SetNotes sets the "notes" field.
func (u *ClaimUpsertBulk) SetNotes(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateNotes() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ClaimUpsertBulk) ClearNotes() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ClaimUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClaimCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
