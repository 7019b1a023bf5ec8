// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"uhc-registry.io/registry/ent"
)

// The AuditLogFunc type is an adapter to allow the use of ordinary
// function as AuditLog mutator.
type AuditLogFunc func(context.Context, *ent.AuditLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuditLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuditLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuditLogMutation", m)
}

// The BuildingFunc type is an adapter to allow the use of ordinary
// function as Building mutator.
type BuildingFunc func(context.Context, *ent.BuildingMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f BuildingFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.BuildingMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.BuildingMutation", m)
}

// The CertificateFunc type is an adapter to allow the use of ordinary
// function as Certificate mutator.
type CertificateFunc func(context.Context, *ent.CertificateMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CertificateFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CertificateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CertificateMutation", m)
}

// The ClaimFunc type is an adapter to allow the use of ordinary
// function as Claim mutator.
type ClaimFunc func(context.Context, *ent.ClaimMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ClaimFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ClaimMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ClaimMutation", m)
}

// The ConflictResolutionFunc type is an adapter to allow the use of ordinary
// function as ConflictResolution mutator.
type ConflictResolutionFunc func(context.Context, *ent.ConflictResolutionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConflictResolutionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConflictResolutionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConflictResolutionMutation", m)
}

// The DocumentFunc type is an adapter to allow the use of ordinary
// function as Document mutator.
type DocumentFunc func(context.Context, *ent.DocumentMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DocumentFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DocumentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DocumentMutation", m)
}

// The DomainEventFunc type is an adapter to allow the use of ordinary
// function as DomainEvent mutator.
type DomainEventFunc func(context.Context, *ent.DomainEventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DomainEventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DomainEventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DomainEventMutation", m)
}

// The DuplicateSuppressionFunc type is an adapter to allow the use of ordinary
// function as DuplicateSuppression mutator.
type DuplicateSuppressionFunc func(context.Context, *ent.DuplicateSuppressionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DuplicateSuppressionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DuplicateSuppressionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DuplicateSuppressionMutation", m)
}

// The EvidenceFunc type is an adapter to allow the use of ordinary
// function as Evidence mutator.
type EvidenceFunc func(context.Context, *ent.EvidenceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EvidenceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EvidenceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EvidenceMutation", m)
}

// The HouseholdFunc type is an adapter to allow the use of ordinary
// function as Household mutator.
type HouseholdFunc func(context.Context, *ent.HouseholdMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f HouseholdFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.HouseholdMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.HouseholdMutation", m)
}

// The IdentifierSequenceFunc type is an adapter to allow the use of ordinary
// function as IdentifierSequence mutator.
type IdentifierSequenceFunc func(context.Context, *ent.IdentifierSequenceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f IdentifierSequenceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.IdentifierSequenceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.IdentifierSequenceMutation", m)
}

// The ImportPackageFunc type is an adapter to allow the use of ordinary
// function as ImportPackage mutator.
type ImportPackageFunc func(context.Context, *ent.ImportPackageMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ImportPackageFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ImportPackageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ImportPackageMutation", m)
}

// The NotificationFunc type is an adapter to allow the use of ordinary
// function as Notification mutator.
type NotificationFunc func(context.Context, *ent.NotificationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NotificationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NotificationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NotificationMutation", m)
}

// The PersonFunc type is an adapter to allow the use of ordinary
// function as Person mutator.
type PersonFunc func(context.Context, *ent.PersonMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PersonFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PersonMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PersonMutation", m)
}

// The PersonPropertyRelationFunc type is an adapter to allow the use of ordinary
// function as PersonPropertyRelation mutator.
type PersonPropertyRelationFunc func(context.Context, *ent.PersonPropertyRelationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PersonPropertyRelationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PersonPropertyRelationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PersonPropertyRelationMutation", m)
}

// The PropertyUnitFunc type is an adapter to allow the use of ordinary
// function as PropertyUnit mutator.
type PropertyUnitFunc func(context.Context, *ent.PropertyUnitMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PropertyUnitFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PropertyUnitMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PropertyUnitMutation", m)
}

// The ReferralFunc type is an adapter to allow the use of ordinary
// function as Referral mutator.
type ReferralFunc func(context.Context, *ent.ReferralMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ReferralFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ReferralMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ReferralMutation", m)
}

// The StagingBuildingFunc type is an adapter to allow the use of ordinary
// function as StagingBuilding mutator.
type StagingBuildingFunc func(context.Context, *ent.StagingBuildingMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingBuildingFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingBuildingMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingBuildingMutation", m)
}

// The StagingClaimFunc type is an adapter to allow the use of ordinary
// function as StagingClaim mutator.
type StagingClaimFunc func(context.Context, *ent.StagingClaimMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingClaimFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingClaimMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingClaimMutation", m)
}

// The StagingDocumentFunc type is an adapter to allow the use of ordinary
// function as StagingDocument mutator.
type StagingDocumentFunc func(context.Context, *ent.StagingDocumentMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingDocumentFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingDocumentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingDocumentMutation", m)
}

// The StagingEvidenceFunc type is an adapter to allow the use of ordinary
// function as StagingEvidence mutator.
type StagingEvidenceFunc func(context.Context, *ent.StagingEvidenceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingEvidenceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingEvidenceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingEvidenceMutation", m)
}

// The StagingHouseholdFunc type is an adapter to allow the use of ordinary
// function as StagingHousehold mutator.
type StagingHouseholdFunc func(context.Context, *ent.StagingHouseholdMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingHouseholdFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingHouseholdMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingHouseholdMutation", m)
}

// The StagingPersonFunc type is an adapter to allow the use of ordinary
// function as StagingPerson mutator.
type StagingPersonFunc func(context.Context, *ent.StagingPersonMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingPersonFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingPersonMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingPersonMutation", m)
}

// The StagingPersonPropertyRelationFunc type is an adapter to allow the use of ordinary
// function as StagingPersonPropertyRelation mutator.
type StagingPersonPropertyRelationFunc func(context.Context, *ent.StagingPersonPropertyRelationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingPersonPropertyRelationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingPersonPropertyRelationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingPersonPropertyRelationMutation", m)
}

// The StagingPropertyUnitFunc type is an adapter to allow the use of ordinary
// function as StagingPropertyUnit mutator.
type StagingPropertyUnitFunc func(context.Context, *ent.StagingPropertyUnitMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingPropertyUnitFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingPropertyUnitMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingPropertyUnitMutation", m)
}

// The StagingReferralFunc type is an adapter to allow the use of ordinary
// function as StagingReferral mutator.
type StagingReferralFunc func(context.Context, *ent.StagingReferralMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingReferralFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingReferralMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingReferralMutation", m)
}

// The StagingSurveyFunc type is an adapter to allow the use of ordinary
// function as StagingSurvey mutator.
type StagingSurveyFunc func(context.Context, *ent.StagingSurveyMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StagingSurveyFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StagingSurveyMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StagingSurveyMutation", m)
}

// The SurveyFunc type is an adapter to allow the use of ordinary
// function as Survey mutator.
type SurveyFunc func(context.Context, *ent.SurveyMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SurveyFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SurveyMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SurveyMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
