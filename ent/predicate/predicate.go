// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Building is the predicate function for building builders.
type Building func(*sql.Selector)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// ConflictResolution is the predicate function for conflictresolution builders.
type ConflictResolution func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DomainEvent is the predicate function for domainevent builders.
type DomainEvent func(*sql.Selector)

// DuplicateSuppression is the predicate function for duplicatesuppression builders.
type DuplicateSuppression func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// Household is the predicate function for household builders.
type Household func(*sql.Selector)

// IdentifierSequence is the predicate function for identifiersequence builders.
type IdentifierSequence func(*sql.Selector)

// ImportPackage is the predicate function for importpackage builders.
type ImportPackage func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Person is the predicate function for person builders.
type Person func(*sql.Selector)

// PersonPropertyRelation is the predicate function for personpropertyrelation builders.
type PersonPropertyRelation func(*sql.Selector)

// PropertyUnit is the predicate function for propertyunit builders.
type PropertyUnit func(*sql.Selector)

// Referral is the predicate function for referral builders.
type Referral func(*sql.Selector)

// StagingBuilding is the predicate function for stagingbuilding builders.
type StagingBuilding func(*sql.Selector)

// StagingClaim is the predicate function for stagingclaim builders.
type StagingClaim func(*sql.Selector)

// StagingDocument is the predicate function for stagingdocument builders.
type StagingDocument func(*sql.Selector)

// StagingEvidence is the predicate function for stagingevidence builders.
type StagingEvidence func(*sql.Selector)

// StagingHousehold is the predicate function for staginghousehold builders.
type StagingHousehold func(*sql.Selector)

// StagingPerson is the predicate function for stagingperson builders.
type StagingPerson func(*sql.Selector)

// StagingPersonPropertyRelation is the predicate function for stagingpersonpropertyrelation builders.
type StagingPersonPropertyRelation func(*sql.Selector)

// StagingPropertyUnit is the predicate function for stagingpropertyunit builders.
type StagingPropertyUnit func(*sql.Selector)

// StagingReferral is the predicate function for stagingreferral builders.
type StagingReferral func(*sql.Selector)

// StagingSurvey is the predicate function for stagingsurvey builders.
type StagingSurvey func(*sql.Selector)

// Survey is the predicate function for survey builders.
type Survey func(*sql.Selector)
