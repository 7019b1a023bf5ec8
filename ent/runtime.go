// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"uhc-registry.io/registry/ent/auditlog"
	"uhc-registry.io/registry/ent/building"
	"uhc-registry.io/registry/ent/certificate"
	"uhc-registry.io/registry/ent/claim"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/document"
	"uhc-registry.io/registry/ent/domainevent"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/evidence"
	"uhc-registry.io/registry/ent/household"
	"uhc-registry.io/registry/ent/identifiersequence"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/ent/notification"
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/propertyunit"
	"uhc-registry.io/registry/ent/referral"
	"uhc-registry.io/registry/ent/schema"
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/ent/stagingreferral"
	"uhc-registry.io/registry/ent/stagingsurvey"
	"uhc-registry.io/registry/ent/survey"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	buildingMixin := schema.Building{}.Mixin()
	buildingMixinFields0 := buildingMixin[0].Fields()
	_ = buildingMixinFields0
	buildingFields := schema.Building{}.Fields()
	_ = buildingFields
	// buildingDescCreatedAt is the schema descriptor for created_at field.
	buildingDescCreatedAt := buildingMixinFields0[0].Descriptor()
	// building.DefaultCreatedAt holds the default value on creation for the created_at field.
	building.DefaultCreatedAt = buildingDescCreatedAt.Default.(func() time.Time)
	// buildingDescUpdatedAt is the schema descriptor for updated_at field.
	buildingDescUpdatedAt := buildingMixinFields0[1].Descriptor()
	// building.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	building.DefaultUpdatedAt = buildingDescUpdatedAt.Default.(func() time.Time)
	// building.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	building.UpdateDefaultUpdatedAt = buildingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// buildingDescBuildingCode is the schema descriptor for building_code field.
	buildingDescBuildingCode := buildingFields[1].Descriptor()
	// building.BuildingCodeValidator is a validator for the "building_code" field. It is called by the builders before save.
	building.BuildingCodeValidator = buildingDescBuildingCode.Validators[0].(func(string) error)
	// buildingDescGovernorateCode is the schema descriptor for governorate_code field.
	buildingDescGovernorateCode := buildingFields[2].Descriptor()
	// building.GovernorateCodeValidator is a validator for the "governorate_code" field. It is called by the builders before save.
	building.GovernorateCodeValidator = buildingDescGovernorateCode.Validators[0].(func(string) error)
	// buildingDescDistrictCode is the schema descriptor for district_code field.
	buildingDescDistrictCode := buildingFields[3].Descriptor()
	// building.DistrictCodeValidator is a validator for the "district_code" field. It is called by the builders before save.
	building.DistrictCodeValidator = buildingDescDistrictCode.Validators[0].(func(string) error)
	// buildingDescSubDistrictCode is the schema descriptor for sub_district_code field.
	buildingDescSubDistrictCode := buildingFields[4].Descriptor()
	// building.SubDistrictCodeValidator is a validator for the "sub_district_code" field. It is called by the builders before save.
	building.SubDistrictCodeValidator = buildingDescSubDistrictCode.Validators[0].(func(string) error)
	// buildingDescCommunityCode is the schema descriptor for community_code field.
	buildingDescCommunityCode := buildingFields[5].Descriptor()
	// building.CommunityCodeValidator is a validator for the "community_code" field. It is called by the builders before save.
	building.CommunityCodeValidator = buildingDescCommunityCode.Validators[0].(func(string) error)
	// buildingDescNeighborhoodCode is the schema descriptor for neighborhood_code field.
	buildingDescNeighborhoodCode := buildingFields[6].Descriptor()
	// building.NeighborhoodCodeValidator is a validator for the "neighborhood_code" field. It is called by the builders before save.
	building.NeighborhoodCodeValidator = buildingDescNeighborhoodCode.Validators[0].(func(string) error)
	// buildingDescBuildingNumber is the schema descriptor for building_number field.
	buildingDescBuildingNumber := buildingFields[7].Descriptor()
	// building.BuildingNumberValidator is a validator for the "building_number" field. It is called by the builders before save.
	building.BuildingNumberValidator = buildingDescBuildingNumber.Validators[0].(func(string) error)
	// buildingDescNumberOfFloors is the schema descriptor for number_of_floors field.
	buildingDescNumberOfFloors := buildingFields[10].Descriptor()
	// building.DefaultNumberOfFloors holds the default value on creation for the number_of_floors field.
	building.DefaultNumberOfFloors = buildingDescNumberOfFloors.Default.(int)
	// building.NumberOfFloorsValidator is a validator for the "number_of_floors" field. It is called by the builders before save.
	building.NumberOfFloorsValidator = buildingDescNumberOfFloors.Validators[0].(func(int) error)
	// buildingDescNumberOfUnits is the schema descriptor for number_of_units field.
	buildingDescNumberOfUnits := buildingFields[11].Descriptor()
	// building.DefaultNumberOfUnits holds the default value on creation for the number_of_units field.
	building.DefaultNumberOfUnits = buildingDescNumberOfUnits.Default.(int)
	// building.NumberOfUnitsValidator is a validator for the "number_of_units" field. It is called by the builders before save.
	building.NumberOfUnitsValidator = buildingDescNumberOfUnits.Validators[0].(func(int) error)
	certificateMixin := schema.Certificate{}.Mixin()
	certificateMixinFields0 := certificateMixin[0].Fields()
	_ = certificateMixinFields0
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescCreatedAt is the schema descriptor for created_at field.
	certificateDescCreatedAt := certificateMixinFields0[0].Descriptor()
	// certificate.DefaultCreatedAt holds the default value on creation for the created_at field.
	certificate.DefaultCreatedAt = certificateDescCreatedAt.Default.(func() time.Time)
	// certificateDescUpdatedAt is the schema descriptor for updated_at field.
	certificateDescUpdatedAt := certificateMixinFields0[1].Descriptor()
	// certificate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	certificate.DefaultUpdatedAt = certificateDescUpdatedAt.Default.(func() time.Time)
	// certificate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	certificate.UpdateDefaultUpdatedAt = certificateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// certificateDescCertificateNumber is the schema descriptor for certificate_number field.
	certificateDescCertificateNumber := certificateFields[1].Descriptor()
	// certificate.CertificateNumberValidator is a validator for the "certificate_number" field. It is called by the builders before save.
	certificate.CertificateNumberValidator = certificateDescCertificateNumber.Validators[0].(func(string) error)
	claimMixin := schema.Claim{}.Mixin()
	claimMixinFields0 := claimMixin[0].Fields()
	_ = claimMixinFields0
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimMixinFields0[0].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescUpdatedAt is the schema descriptor for updated_at field.
	claimDescUpdatedAt := claimMixinFields0[1].Descriptor()
	// claim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claim.DefaultUpdatedAt = claimDescUpdatedAt.Default.(func() time.Time)
	// claim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claim.UpdateDefaultUpdatedAt = claimDescUpdatedAt.UpdateDefault.(func() time.Time)
	// claimDescClaimNumber is the schema descriptor for claim_number field.
	claimDescClaimNumber := claimFields[1].Descriptor()
	// claim.ClaimNumberValidator is a validator for the "claim_number" field. It is called by the builders before save.
	claim.ClaimNumberValidator = claimDescClaimNumber.Validators[0].(func(string) error)
	// claimDescClaimTypeCode is the schema descriptor for claim_type_code field.
	claimDescClaimTypeCode := claimFields[4].Descriptor()
	// claim.ClaimTypeCodeValidator is a validator for the "claim_type_code" field. It is called by the builders before save.
	claim.ClaimTypeCodeValidator = claimDescClaimTypeCode.Validators[0].(func(string) error)
	// claimDescStatusCode is the schema descriptor for status_code field.
	claimDescStatusCode := claimFields[5].Descriptor()
	// claim.DefaultStatusCode holds the default value on creation for the status_code field.
	claim.DefaultStatusCode = claimDescStatusCode.Default.(string)
	// claimDescClaimedShare is the schema descriptor for claimed_share field.
	claimDescClaimedShare := claimFields[6].Descriptor()
	// claim.ClaimedShareValidator is a validator for the "claimed_share" field. It is called by the builders before save.
	claim.ClaimedShareValidator = func() func(float64) error {
		validators := claimDescClaimedShare.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(claimed_share float64) error {
			for _, fn := range fns {
				if err := fn(claimed_share); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	conflictresolutionMixin := schema.ConflictResolution{}.Mixin()
	conflictresolutionMixinFields0 := conflictresolutionMixin[0].Fields()
	_ = conflictresolutionMixinFields0
	conflictresolutionFields := schema.ConflictResolution{}.Fields()
	_ = conflictresolutionFields
	// conflictresolutionDescCreatedAt is the schema descriptor for created_at field.
	conflictresolutionDescCreatedAt := conflictresolutionMixinFields0[0].Descriptor()
	// conflictresolution.DefaultCreatedAt holds the default value on creation for the created_at field.
	conflictresolution.DefaultCreatedAt = conflictresolutionDescCreatedAt.Default.(func() time.Time)
	// conflictresolutionDescUpdatedAt is the schema descriptor for updated_at field.
	conflictresolutionDescUpdatedAt := conflictresolutionMixinFields0[1].Descriptor()
	// conflictresolution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conflictresolution.DefaultUpdatedAt = conflictresolutionDescUpdatedAt.Default.(func() time.Time)
	// conflictresolution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conflictresolution.UpdateDefaultUpdatedAt = conflictresolutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conflictresolutionDescScore is the schema descriptor for score field.
	conflictresolutionDescScore := conflictresolutionFields[4].Descriptor()
	// conflictresolution.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	conflictresolution.ScoreValidator = func() func(float64) error {
		validators := conflictresolutionDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	documentMixin := schema.Document{}.Mixin()
	documentMixinFields0 := documentMixin[0].Fields()
	_ = documentMixinFields0
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentMixinFields0[0].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentMixinFields0[1].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescDocumentTypeCode is the schema descriptor for document_type_code field.
	documentDescDocumentTypeCode := documentFields[2].Descriptor()
	// document.DocumentTypeCodeValidator is a validator for the "document_type_code" field. It is called by the builders before save.
	document.DocumentTypeCodeValidator = documentDescDocumentTypeCode.Validators[0].(func(string) error)
	// documentDescBlobSizeBytes is the schema descriptor for blob_size_bytes field.
	documentDescBlobSizeBytes := documentFields[6].Descriptor()
	// document.DefaultBlobSizeBytes holds the default value on creation for the blob_size_bytes field.
	document.DefaultBlobSizeBytes = documentDescBlobSizeBytes.Default.(int64)
	// document.BlobSizeBytesValidator is a validator for the "blob_size_bytes" field. It is called by the builders before save.
	document.BlobSizeBytesValidator = documentDescBlobSizeBytes.Validators[0].(func(int64) error)
	domaineventMixin := schema.DomainEvent{}.Mixin()
	domaineventMixinFields0 := domaineventMixin[0].Fields()
	_ = domaineventMixinFields0
	domaineventFields := schema.DomainEvent{}.Fields()
	_ = domaineventFields
	// domaineventDescCreatedAt is the schema descriptor for created_at field.
	domaineventDescCreatedAt := domaineventMixinFields0[0].Descriptor()
	// domainevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainevent.DefaultCreatedAt = domaineventDescCreatedAt.Default.(func() time.Time)
	// domaineventDescEventType is the schema descriptor for event_type field.
	domaineventDescEventType := domaineventFields[1].Descriptor()
	// domainevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	domainevent.EventTypeValidator = domaineventDescEventType.Validators[0].(func(string) error)
	// domaineventDescAggregateType is the schema descriptor for aggregate_type field.
	domaineventDescAggregateType := domaineventFields[2].Descriptor()
	// domainevent.AggregateTypeValidator is a validator for the "aggregate_type" field. It is called by the builders before save.
	domainevent.AggregateTypeValidator = domaineventDescAggregateType.Validators[0].(func(string) error)
	// domaineventDescAggregateID is the schema descriptor for aggregate_id field.
	domaineventDescAggregateID := domaineventFields[3].Descriptor()
	// domainevent.AggregateIDValidator is a validator for the "aggregate_id" field. It is called by the builders before save.
	domainevent.AggregateIDValidator = domaineventDescAggregateID.Validators[0].(func(string) error)
	// domaineventDescCreatedBy is the schema descriptor for created_by field.
	domaineventDescCreatedBy := domaineventFields[6].Descriptor()
	// domainevent.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	domainevent.CreatedByValidator = domaineventDescCreatedBy.Validators[0].(func(string) error)
	duplicatesuppressionMixin := schema.DuplicateSuppression{}.Mixin()
	duplicatesuppressionMixinFields0 := duplicatesuppressionMixin[0].Fields()
	_ = duplicatesuppressionMixinFields0
	duplicatesuppressionFields := schema.DuplicateSuppression{}.Fields()
	_ = duplicatesuppressionFields
	// duplicatesuppressionDescCreatedAt is the schema descriptor for created_at field.
	duplicatesuppressionDescCreatedAt := duplicatesuppressionMixinFields0[0].Descriptor()
	// duplicatesuppression.DefaultCreatedAt holds the default value on creation for the created_at field.
	duplicatesuppression.DefaultCreatedAt = duplicatesuppressionDescCreatedAt.Default.(func() time.Time)
	// duplicatesuppressionDescFingerprint is the schema descriptor for fingerprint field.
	duplicatesuppressionDescFingerprint := duplicatesuppressionFields[3].Descriptor()
	// duplicatesuppression.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	duplicatesuppression.FingerprintValidator = duplicatesuppressionDescFingerprint.Validators[0].(func(string) error)
	// duplicatesuppressionDescCreatedBy is the schema descriptor for created_by field.
	duplicatesuppressionDescCreatedBy := duplicatesuppressionFields[5].Descriptor()
	// duplicatesuppression.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	duplicatesuppression.CreatedByValidator = duplicatesuppressionDescCreatedBy.Validators[0].(func(string) error)
	evidenceMixin := schema.Evidence{}.Mixin()
	evidenceMixinFields0 := evidenceMixin[0].Fields()
	_ = evidenceMixinFields0
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceMixinFields0[0].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	// evidenceDescUpdatedAt is the schema descriptor for updated_at field.
	evidenceDescUpdatedAt := evidenceMixinFields0[1].Descriptor()
	// evidence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evidence.DefaultUpdatedAt = evidenceDescUpdatedAt.Default.(func() time.Time)
	// evidence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evidence.UpdateDefaultUpdatedAt = evidenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// evidenceDescEvidenceTypeCode is the schema descriptor for evidence_type_code field.
	evidenceDescEvidenceTypeCode := evidenceFields[2].Descriptor()
	// evidence.EvidenceTypeCodeValidator is a validator for the "evidence_type_code" field. It is called by the builders before save.
	evidence.EvidenceTypeCodeValidator = evidenceDescEvidenceTypeCode.Validators[0].(func(string) error)
	// evidenceDescBlobSizeBytes is the schema descriptor for blob_size_bytes field.
	evidenceDescBlobSizeBytes := evidenceFields[8].Descriptor()
	// evidence.DefaultBlobSizeBytes holds the default value on creation for the blob_size_bytes field.
	evidence.DefaultBlobSizeBytes = evidenceDescBlobSizeBytes.Default.(int64)
	// evidence.BlobSizeBytesValidator is a validator for the "blob_size_bytes" field. It is called by the builders before save.
	evidence.BlobSizeBytesValidator = evidenceDescBlobSizeBytes.Validators[0].(func(int64) error)
	householdMixin := schema.Household{}.Mixin()
	householdMixinFields0 := householdMixin[0].Fields()
	_ = householdMixinFields0
	householdFields := schema.Household{}.Fields()
	_ = householdFields
	// householdDescCreatedAt is the schema descriptor for created_at field.
	householdDescCreatedAt := householdMixinFields0[0].Descriptor()
	// household.DefaultCreatedAt holds the default value on creation for the created_at field.
	household.DefaultCreatedAt = householdDescCreatedAt.Default.(func() time.Time)
	// householdDescUpdatedAt is the schema descriptor for updated_at field.
	householdDescUpdatedAt := householdMixinFields0[1].Descriptor()
	// household.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	household.DefaultUpdatedAt = householdDescUpdatedAt.Default.(func() time.Time)
	// household.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	household.UpdateDefaultUpdatedAt = householdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// householdDescHouseholdSize is the schema descriptor for household_size field.
	householdDescHouseholdSize := householdFields[2].Descriptor()
	// household.HouseholdSizeValidator is a validator for the "household_size" field. It is called by the builders before save.
	household.HouseholdSizeValidator = householdDescHouseholdSize.Validators[0].(func(int) error)
	// householdDescMalesUnder18 is the schema descriptor for males_under_18 field.
	householdDescMalesUnder18 := householdFields[3].Descriptor()
	// household.DefaultMalesUnder18 holds the default value on creation for the males_under_18 field.
	household.DefaultMalesUnder18 = householdDescMalesUnder18.Default.(int)
	// household.MalesUnder18Validator is a validator for the "males_under_18" field. It is called by the builders before save.
	household.MalesUnder18Validator = householdDescMalesUnder18.Validators[0].(func(int) error)
	// householdDescFemalesUnder18 is the schema descriptor for females_under_18 field.
	householdDescFemalesUnder18 := householdFields[4].Descriptor()
	// household.DefaultFemalesUnder18 holds the default value on creation for the females_under_18 field.
	household.DefaultFemalesUnder18 = householdDescFemalesUnder18.Default.(int)
	// household.FemalesUnder18Validator is a validator for the "females_under_18" field. It is called by the builders before save.
	household.FemalesUnder18Validator = householdDescFemalesUnder18.Validators[0].(func(int) error)
	// householdDescMalesAdult is the schema descriptor for males_adult field.
	householdDescMalesAdult := householdFields[5].Descriptor()
	// household.DefaultMalesAdult holds the default value on creation for the males_adult field.
	household.DefaultMalesAdult = householdDescMalesAdult.Default.(int)
	// household.MalesAdultValidator is a validator for the "males_adult" field. It is called by the builders before save.
	household.MalesAdultValidator = householdDescMalesAdult.Validators[0].(func(int) error)
	// householdDescFemalesAdult is the schema descriptor for females_adult field.
	householdDescFemalesAdult := householdFields[6].Descriptor()
	// household.DefaultFemalesAdult holds the default value on creation for the females_adult field.
	household.DefaultFemalesAdult = householdDescFemalesAdult.Default.(int)
	// household.FemalesAdultValidator is a validator for the "females_adult" field. It is called by the builders before save.
	household.FemalesAdultValidator = householdDescFemalesAdult.Validators[0].(func(int) error)
	identifiersequenceMixin := schema.IdentifierSequence{}.Mixin()
	identifiersequenceMixinFields0 := identifiersequenceMixin[0].Fields()
	_ = identifiersequenceMixinFields0
	identifiersequenceFields := schema.IdentifierSequence{}.Fields()
	_ = identifiersequenceFields
	// identifiersequenceDescCreatedAt is the schema descriptor for created_at field.
	identifiersequenceDescCreatedAt := identifiersequenceMixinFields0[0].Descriptor()
	// identifiersequence.DefaultCreatedAt holds the default value on creation for the created_at field.
	identifiersequence.DefaultCreatedAt = identifiersequenceDescCreatedAt.Default.(func() time.Time)
	// identifiersequenceDescUpdatedAt is the schema descriptor for updated_at field.
	identifiersequenceDescUpdatedAt := identifiersequenceMixinFields0[1].Descriptor()
	// identifiersequence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	identifiersequence.DefaultUpdatedAt = identifiersequenceDescUpdatedAt.Default.(func() time.Time)
	// identifiersequence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	identifiersequence.UpdateDefaultUpdatedAt = identifiersequenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// identifiersequenceDescNextValue is the schema descriptor for next_value field.
	identifiersequenceDescNextValue := identifiersequenceFields[1].Descriptor()
	// identifiersequence.DefaultNextValue holds the default value on creation for the next_value field.
	identifiersequence.DefaultNextValue = identifiersequenceDescNextValue.Default.(int64)
	// identifiersequence.NextValueValidator is a validator for the "next_value" field. It is called by the builders before save.
	identifiersequence.NextValueValidator = identifiersequenceDescNextValue.Validators[0].(func(int64) error)
	importpackageMixin := schema.ImportPackage{}.Mixin()
	importpackageMixinFields0 := importpackageMixin[0].Fields()
	_ = importpackageMixinFields0
	importpackageFields := schema.ImportPackage{}.Fields()
	_ = importpackageFields
	// importpackageDescCreatedAt is the schema descriptor for created_at field.
	importpackageDescCreatedAt := importpackageMixinFields0[0].Descriptor()
	// importpackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	importpackage.DefaultCreatedAt = importpackageDescCreatedAt.Default.(func() time.Time)
	// importpackageDescUpdatedAt is the schema descriptor for updated_at field.
	importpackageDescUpdatedAt := importpackageMixinFields0[1].Descriptor()
	// importpackage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importpackage.DefaultUpdatedAt = importpackageDescUpdatedAt.Default.(func() time.Time)
	// importpackage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importpackage.UpdateDefaultUpdatedAt = importpackageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// importpackageDescPackageNumber is the schema descriptor for package_number field.
	importpackageDescPackageNumber := importpackageFields[1].Descriptor()
	// importpackage.PackageNumberValidator is a validator for the "package_number" field. It is called by the builders before save.
	importpackage.PackageNumberValidator = importpackageDescPackageNumber.Validators[0].(func(string) error)
	// importpackageDescFileName is the schema descriptor for file_name field.
	importpackageDescFileName := importpackageFields[4].Descriptor()
	// importpackage.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	importpackage.FileNameValidator = importpackageDescFileName.Validators[0].(func(string) error)
	// importpackageDescFileSizeBytes is the schema descriptor for file_size_bytes field.
	importpackageDescFileSizeBytes := importpackageFields[5].Descriptor()
	// importpackage.FileSizeBytesValidator is a validator for the "file_size_bytes" field. It is called by the builders before save.
	importpackage.FileSizeBytesValidator = importpackageDescFileSizeBytes.Validators[0].(func(int64) error)
	// importpackageDescSchemaVersion is the schema descriptor for schema_version field.
	importpackageDescSchemaVersion := importpackageFields[6].Descriptor()
	// importpackage.SchemaVersionValidator is a validator for the "schema_version" field. It is called by the builders before save.
	importpackage.SchemaVersionValidator = importpackageDescSchemaVersion.Validators[0].(func(string) error)
	// importpackageDescDeviceID is the schema descriptor for device_id field.
	importpackageDescDeviceID := importpackageFields[10].Descriptor()
	// importpackage.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	importpackage.DeviceIDValidator = importpackageDescDeviceID.Validators[0].(func(string) error)
	// importpackageDescTotalRecordCount is the schema descriptor for total_record_count field.
	importpackageDescTotalRecordCount := importpackageFields[11].Descriptor()
	// importpackage.TotalRecordCountValidator is a validator for the "total_record_count" field. It is called by the builders before save.
	importpackage.TotalRecordCountValidator = importpackageDescTotalRecordCount.Validators[0].(func(int) error)
	// importpackageDescTotalAttachmentSizeBytes is the schema descriptor for total_attachment_size_bytes field.
	importpackageDescTotalAttachmentSizeBytes := importpackageFields[13].Descriptor()
	// importpackage.TotalAttachmentSizeBytesValidator is a validator for the "total_attachment_size_bytes" field. It is called by the builders before save.
	importpackage.TotalAttachmentSizeBytesValidator = importpackageDescTotalAttachmentSizeBytes.Validators[0].(func(int64) error)
	// importpackageDescIsArchived is the schema descriptor for is_archived field.
	importpackageDescIsArchived := importpackageFields[20].Descriptor()
	// importpackage.DefaultIsArchived holds the default value on creation for the is_archived field.
	importpackage.DefaultIsArchived = importpackageDescIsArchived.Default.(bool)
	// importpackageDescConflictCount is the schema descriptor for conflict_count field.
	importpackageDescConflictCount := importpackageFields[24].Descriptor()
	// importpackage.DefaultConflictCount holds the default value on creation for the conflict_count field.
	importpackage.DefaultConflictCount = importpackageDescConflictCount.Default.(int)
	// importpackage.ConflictCountValidator is a validator for the "conflict_count" field. It is called by the builders before save.
	importpackage.ConflictCountValidator = importpackageDescConflictCount.Validators[0].(func(int) error)
	// importpackageDescUnresolvedConflictCount is the schema descriptor for unresolved_conflict_count field.
	importpackageDescUnresolvedConflictCount := importpackageFields[25].Descriptor()
	// importpackage.DefaultUnresolvedConflictCount holds the default value on creation for the unresolved_conflict_count field.
	importpackage.DefaultUnresolvedConflictCount = importpackageDescUnresolvedConflictCount.Default.(int)
	// importpackage.UnresolvedConflictCountValidator is a validator for the "unresolved_conflict_count" field. It is called by the builders before save.
	importpackage.UnresolvedConflictCountValidator = importpackageDescUnresolvedConflictCount.Validators[0].(func(int) error)
	// importpackageDescReceivedBy is the schema descriptor for received_by field.
	importpackageDescReceivedBy := importpackageFields[32].Descriptor()
	// importpackage.ReceivedByValidator is a validator for the "received_by" field. It is called by the builders before save.
	importpackage.ReceivedByValidator = importpackageDescReceivedBy.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUserID is the schema descriptor for user_id field.
	notificationDescUserID := notificationFields[2].Descriptor()
	// notification.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notification.UserIDValidator = notificationDescUserID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	personMixin := schema.Person{}.Mixin()
	personMixinFields0 := personMixin[0].Fields()
	_ = personMixinFields0
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescCreatedAt is the schema descriptor for created_at field.
	personDescCreatedAt := personMixinFields0[0].Descriptor()
	// person.DefaultCreatedAt holds the default value on creation for the created_at field.
	person.DefaultCreatedAt = personDescCreatedAt.Default.(func() time.Time)
	// personDescUpdatedAt is the schema descriptor for updated_at field.
	personDescUpdatedAt := personMixinFields0[1].Descriptor()
	// person.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	person.DefaultUpdatedAt = personDescUpdatedAt.Default.(func() time.Time)
	// person.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	person.UpdateDefaultUpdatedAt = personDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personDescFirstName is the schema descriptor for first_name field.
	personDescFirstName := personFields[1].Descriptor()
	// person.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	person.FirstNameValidator = personDescFirstName.Validators[0].(func(string) error)
	// personDescFamilyName is the schema descriptor for family_name field.
	personDescFamilyName := personFields[3].Descriptor()
	// person.FamilyNameValidator is a validator for the "family_name" field. It is called by the builders before save.
	person.FamilyNameValidator = personDescFamilyName.Validators[0].(func(string) error)
	personpropertyrelationMixin := schema.PersonPropertyRelation{}.Mixin()
	personpropertyrelationMixinFields0 := personpropertyrelationMixin[0].Fields()
	_ = personpropertyrelationMixinFields0
	personpropertyrelationFields := schema.PersonPropertyRelation{}.Fields()
	_ = personpropertyrelationFields
	// personpropertyrelationDescCreatedAt is the schema descriptor for created_at field.
	personpropertyrelationDescCreatedAt := personpropertyrelationMixinFields0[0].Descriptor()
	// personpropertyrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	personpropertyrelation.DefaultCreatedAt = personpropertyrelationDescCreatedAt.Default.(func() time.Time)
	// personpropertyrelationDescUpdatedAt is the schema descriptor for updated_at field.
	personpropertyrelationDescUpdatedAt := personpropertyrelationMixinFields0[1].Descriptor()
	// personpropertyrelation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	personpropertyrelation.DefaultUpdatedAt = personpropertyrelationDescUpdatedAt.Default.(func() time.Time)
	// personpropertyrelation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	personpropertyrelation.UpdateDefaultUpdatedAt = personpropertyrelationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personpropertyrelationDescRelationTypeCode is the schema descriptor for relation_type_code field.
	personpropertyrelationDescRelationTypeCode := personpropertyrelationFields[3].Descriptor()
	// personpropertyrelation.RelationTypeCodeValidator is a validator for the "relation_type_code" field. It is called by the builders before save.
	personpropertyrelation.RelationTypeCodeValidator = personpropertyrelationDescRelationTypeCode.Validators[0].(func(string) error)
	// personpropertyrelationDescOwnershipShare is the schema descriptor for ownership_share field.
	personpropertyrelationDescOwnershipShare := personpropertyrelationFields[4].Descriptor()
	// personpropertyrelation.OwnershipShareValidator is a validator for the "ownership_share" field. It is called by the builders before save.
	personpropertyrelation.OwnershipShareValidator = func() func(float64) error {
		validators := personpropertyrelationDescOwnershipShare.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(ownership_share float64) error {
			for _, fn := range fns {
				if err := fn(ownership_share); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	propertyunitMixin := schema.PropertyUnit{}.Mixin()
	propertyunitMixinFields0 := propertyunitMixin[0].Fields()
	_ = propertyunitMixinFields0
	propertyunitFields := schema.PropertyUnit{}.Fields()
	_ = propertyunitFields
	// propertyunitDescCreatedAt is the schema descriptor for created_at field.
	propertyunitDescCreatedAt := propertyunitMixinFields0[0].Descriptor()
	// propertyunit.DefaultCreatedAt holds the default value on creation for the created_at field.
	propertyunit.DefaultCreatedAt = propertyunitDescCreatedAt.Default.(func() time.Time)
	// propertyunitDescUpdatedAt is the schema descriptor for updated_at field.
	propertyunitDescUpdatedAt := propertyunitMixinFields0[1].Descriptor()
	// propertyunit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	propertyunit.DefaultUpdatedAt = propertyunitDescUpdatedAt.Default.(func() time.Time)
	// propertyunit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	propertyunit.UpdateDefaultUpdatedAt = propertyunitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// propertyunitDescUnitIdentifier is the schema descriptor for unit_identifier field.
	propertyunitDescUnitIdentifier := propertyunitFields[2].Descriptor()
	// propertyunit.UnitIdentifierValidator is a validator for the "unit_identifier" field. It is called by the builders before save.
	propertyunit.UnitIdentifierValidator = propertyunitDescUnitIdentifier.Validators[0].(func(string) error)
	// propertyunitDescCompositeIdentifier is the schema descriptor for composite_identifier field.
	propertyunitDescCompositeIdentifier := propertyunitFields[3].Descriptor()
	// propertyunit.CompositeIdentifierValidator is a validator for the "composite_identifier" field. It is called by the builders before save.
	propertyunit.CompositeIdentifierValidator = propertyunitDescCompositeIdentifier.Validators[0].(func(string) error)
	// propertyunitDescFloorNumber is the schema descriptor for floor_number field.
	propertyunitDescFloorNumber := propertyunitFields[4].Descriptor()
	// propertyunit.DefaultFloorNumber holds the default value on creation for the floor_number field.
	propertyunit.DefaultFloorNumber = propertyunitDescFloorNumber.Default.(int)
	referralMixin := schema.Referral{}.Mixin()
	referralMixinFields0 := referralMixin[0].Fields()
	_ = referralMixinFields0
	referralFields := schema.Referral{}.Fields()
	_ = referralFields
	// referralDescCreatedAt is the schema descriptor for created_at field.
	referralDescCreatedAt := referralMixinFields0[0].Descriptor()
	// referral.DefaultCreatedAt holds the default value on creation for the created_at field.
	referral.DefaultCreatedAt = referralDescCreatedAt.Default.(func() time.Time)
	// referralDescUpdatedAt is the schema descriptor for updated_at field.
	referralDescUpdatedAt := referralMixinFields0[1].Descriptor()
	// referral.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	referral.DefaultUpdatedAt = referralDescUpdatedAt.Default.(func() time.Time)
	// referral.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	referral.UpdateDefaultUpdatedAt = referralDescUpdatedAt.UpdateDefault.(func() time.Time)
	// referralDescReferralReasonCode is the schema descriptor for referral_reason_code field.
	referralDescReferralReasonCode := referralFields[2].Descriptor()
	// referral.ReferralReasonCodeValidator is a validator for the "referral_reason_code" field. It is called by the builders before save.
	referral.ReferralReasonCodeValidator = referralDescReferralReasonCode.Validators[0].(func(string) error)
	stagingbuildingMixin := schema.StagingBuilding{}.Mixin()
	stagingbuildingMixinFields0 := stagingbuildingMixin[0].Fields()
	_ = stagingbuildingMixinFields0
	stagingbuildingMixinFields1 := stagingbuildingMixin[1].Fields()
	_ = stagingbuildingMixinFields1
	stagingbuildingFields := schema.StagingBuilding{}.Fields()
	_ = stagingbuildingFields
	// stagingbuildingDescCreatedAt is the schema descriptor for created_at field.
	stagingbuildingDescCreatedAt := stagingbuildingMixinFields0[0].Descriptor()
	// stagingbuilding.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingbuilding.DefaultCreatedAt = stagingbuildingDescCreatedAt.Default.(func() time.Time)
	// stagingbuildingDescUpdatedAt is the schema descriptor for updated_at field.
	stagingbuildingDescUpdatedAt := stagingbuildingMixinFields0[1].Descriptor()
	// stagingbuilding.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingbuilding.DefaultUpdatedAt = stagingbuildingDescUpdatedAt.Default.(func() time.Time)
	// stagingbuilding.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingbuilding.UpdateDefaultUpdatedAt = stagingbuildingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingbuildingDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingbuildingDescApprovedForCommit := stagingbuildingMixinFields1[4].Descriptor()
	// stagingbuilding.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingbuilding.DefaultApprovedForCommit = stagingbuildingDescApprovedForCommit.Default.(bool)
	stagingclaimMixin := schema.StagingClaim{}.Mixin()
	stagingclaimMixinFields0 := stagingclaimMixin[0].Fields()
	_ = stagingclaimMixinFields0
	stagingclaimMixinFields1 := stagingclaimMixin[1].Fields()
	_ = stagingclaimMixinFields1
	stagingclaimFields := schema.StagingClaim{}.Fields()
	_ = stagingclaimFields
	// stagingclaimDescCreatedAt is the schema descriptor for created_at field.
	stagingclaimDescCreatedAt := stagingclaimMixinFields0[0].Descriptor()
	// stagingclaim.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingclaim.DefaultCreatedAt = stagingclaimDescCreatedAt.Default.(func() time.Time)
	// stagingclaimDescUpdatedAt is the schema descriptor for updated_at field.
	stagingclaimDescUpdatedAt := stagingclaimMixinFields0[1].Descriptor()
	// stagingclaim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingclaim.DefaultUpdatedAt = stagingclaimDescUpdatedAt.Default.(func() time.Time)
	// stagingclaim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingclaim.UpdateDefaultUpdatedAt = stagingclaimDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingclaimDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingclaimDescApprovedForCommit := stagingclaimMixinFields1[4].Descriptor()
	// stagingclaim.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingclaim.DefaultApprovedForCommit = stagingclaimDescApprovedForCommit.Default.(bool)
	stagingdocumentMixin := schema.StagingDocument{}.Mixin()
	stagingdocumentMixinFields0 := stagingdocumentMixin[0].Fields()
	_ = stagingdocumentMixinFields0
	stagingdocumentMixinFields1 := stagingdocumentMixin[1].Fields()
	_ = stagingdocumentMixinFields1
	stagingdocumentFields := schema.StagingDocument{}.Fields()
	_ = stagingdocumentFields
	// stagingdocumentDescCreatedAt is the schema descriptor for created_at field.
	stagingdocumentDescCreatedAt := stagingdocumentMixinFields0[0].Descriptor()
	// stagingdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingdocument.DefaultCreatedAt = stagingdocumentDescCreatedAt.Default.(func() time.Time)
	// stagingdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	stagingdocumentDescUpdatedAt := stagingdocumentMixinFields0[1].Descriptor()
	// stagingdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingdocument.DefaultUpdatedAt = stagingdocumentDescUpdatedAt.Default.(func() time.Time)
	// stagingdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingdocument.UpdateDefaultUpdatedAt = stagingdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingdocumentDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingdocumentDescApprovedForCommit := stagingdocumentMixinFields1[4].Descriptor()
	// stagingdocument.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingdocument.DefaultApprovedForCommit = stagingdocumentDescApprovedForCommit.Default.(bool)
	stagingevidenceMixin := schema.StagingEvidence{}.Mixin()
	stagingevidenceMixinFields0 := stagingevidenceMixin[0].Fields()
	_ = stagingevidenceMixinFields0
	stagingevidenceMixinFields1 := stagingevidenceMixin[1].Fields()
	_ = stagingevidenceMixinFields1
	stagingevidenceFields := schema.StagingEvidence{}.Fields()
	_ = stagingevidenceFields
	// stagingevidenceDescCreatedAt is the schema descriptor for created_at field.
	stagingevidenceDescCreatedAt := stagingevidenceMixinFields0[0].Descriptor()
	// stagingevidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingevidence.DefaultCreatedAt = stagingevidenceDescCreatedAt.Default.(func() time.Time)
	// stagingevidenceDescUpdatedAt is the schema descriptor for updated_at field.
	stagingevidenceDescUpdatedAt := stagingevidenceMixinFields0[1].Descriptor()
	// stagingevidence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingevidence.DefaultUpdatedAt = stagingevidenceDescUpdatedAt.Default.(func() time.Time)
	// stagingevidence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingevidence.UpdateDefaultUpdatedAt = stagingevidenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingevidenceDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingevidenceDescApprovedForCommit := stagingevidenceMixinFields1[4].Descriptor()
	// stagingevidence.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingevidence.DefaultApprovedForCommit = stagingevidenceDescApprovedForCommit.Default.(bool)
	staginghouseholdMixin := schema.StagingHousehold{}.Mixin()
	staginghouseholdMixinFields0 := staginghouseholdMixin[0].Fields()
	_ = staginghouseholdMixinFields0
	staginghouseholdMixinFields1 := staginghouseholdMixin[1].Fields()
	_ = staginghouseholdMixinFields1
	staginghouseholdFields := schema.StagingHousehold{}.Fields()
	_ = staginghouseholdFields
	// staginghouseholdDescCreatedAt is the schema descriptor for created_at field.
	staginghouseholdDescCreatedAt := staginghouseholdMixinFields0[0].Descriptor()
	// staginghousehold.DefaultCreatedAt holds the default value on creation for the created_at field.
	staginghousehold.DefaultCreatedAt = staginghouseholdDescCreatedAt.Default.(func() time.Time)
	// staginghouseholdDescUpdatedAt is the schema descriptor for updated_at field.
	staginghouseholdDescUpdatedAt := staginghouseholdMixinFields0[1].Descriptor()
	// staginghousehold.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staginghousehold.DefaultUpdatedAt = staginghouseholdDescUpdatedAt.Default.(func() time.Time)
	// staginghousehold.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staginghousehold.UpdateDefaultUpdatedAt = staginghouseholdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staginghouseholdDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	staginghouseholdDescApprovedForCommit := staginghouseholdMixinFields1[4].Descriptor()
	// staginghousehold.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	staginghousehold.DefaultApprovedForCommit = staginghouseholdDescApprovedForCommit.Default.(bool)
	stagingpersonMixin := schema.StagingPerson{}.Mixin()
	stagingpersonMixinFields0 := stagingpersonMixin[0].Fields()
	_ = stagingpersonMixinFields0
	stagingpersonMixinFields1 := stagingpersonMixin[1].Fields()
	_ = stagingpersonMixinFields1
	stagingpersonFields := schema.StagingPerson{}.Fields()
	_ = stagingpersonFields
	// stagingpersonDescCreatedAt is the schema descriptor for created_at field.
	stagingpersonDescCreatedAt := stagingpersonMixinFields0[0].Descriptor()
	// stagingperson.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingperson.DefaultCreatedAt = stagingpersonDescCreatedAt.Default.(func() time.Time)
	// stagingpersonDescUpdatedAt is the schema descriptor for updated_at field.
	stagingpersonDescUpdatedAt := stagingpersonMixinFields0[1].Descriptor()
	// stagingperson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingperson.DefaultUpdatedAt = stagingpersonDescUpdatedAt.Default.(func() time.Time)
	// stagingperson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingperson.UpdateDefaultUpdatedAt = stagingpersonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingpersonDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingpersonDescApprovedForCommit := stagingpersonMixinFields1[4].Descriptor()
	// stagingperson.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingperson.DefaultApprovedForCommit = stagingpersonDescApprovedForCommit.Default.(bool)
	stagingpersonpropertyrelationMixin := schema.StagingPersonPropertyRelation{}.Mixin()
	stagingpersonpropertyrelationMixinFields0 := stagingpersonpropertyrelationMixin[0].Fields()
	_ = stagingpersonpropertyrelationMixinFields0
	stagingpersonpropertyrelationMixinFields1 := stagingpersonpropertyrelationMixin[1].Fields()
	_ = stagingpersonpropertyrelationMixinFields1
	stagingpersonpropertyrelationFields := schema.StagingPersonPropertyRelation{}.Fields()
	_ = stagingpersonpropertyrelationFields
	// stagingpersonpropertyrelationDescCreatedAt is the schema descriptor for created_at field.
	stagingpersonpropertyrelationDescCreatedAt := stagingpersonpropertyrelationMixinFields0[0].Descriptor()
	// stagingpersonpropertyrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingpersonpropertyrelation.DefaultCreatedAt = stagingpersonpropertyrelationDescCreatedAt.Default.(func() time.Time)
	// stagingpersonpropertyrelationDescUpdatedAt is the schema descriptor for updated_at field.
	stagingpersonpropertyrelationDescUpdatedAt := stagingpersonpropertyrelationMixinFields0[1].Descriptor()
	// stagingpersonpropertyrelation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingpersonpropertyrelation.DefaultUpdatedAt = stagingpersonpropertyrelationDescUpdatedAt.Default.(func() time.Time)
	// stagingpersonpropertyrelation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingpersonpropertyrelation.UpdateDefaultUpdatedAt = stagingpersonpropertyrelationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingpersonpropertyrelationDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingpersonpropertyrelationDescApprovedForCommit := stagingpersonpropertyrelationMixinFields1[4].Descriptor()
	// stagingpersonpropertyrelation.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingpersonpropertyrelation.DefaultApprovedForCommit = stagingpersonpropertyrelationDescApprovedForCommit.Default.(bool)
	stagingpropertyunitMixin := schema.StagingPropertyUnit{}.Mixin()
	stagingpropertyunitMixinFields0 := stagingpropertyunitMixin[0].Fields()
	_ = stagingpropertyunitMixinFields0
	stagingpropertyunitMixinFields1 := stagingpropertyunitMixin[1].Fields()
	_ = stagingpropertyunitMixinFields1
	stagingpropertyunitFields := schema.StagingPropertyUnit{}.Fields()
	_ = stagingpropertyunitFields
	// stagingpropertyunitDescCreatedAt is the schema descriptor for created_at field.
	stagingpropertyunitDescCreatedAt := stagingpropertyunitMixinFields0[0].Descriptor()
	// stagingpropertyunit.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingpropertyunit.DefaultCreatedAt = stagingpropertyunitDescCreatedAt.Default.(func() time.Time)
	// stagingpropertyunitDescUpdatedAt is the schema descriptor for updated_at field.
	stagingpropertyunitDescUpdatedAt := stagingpropertyunitMixinFields0[1].Descriptor()
	// stagingpropertyunit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingpropertyunit.DefaultUpdatedAt = stagingpropertyunitDescUpdatedAt.Default.(func() time.Time)
	// stagingpropertyunit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingpropertyunit.UpdateDefaultUpdatedAt = stagingpropertyunitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingpropertyunitDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingpropertyunitDescApprovedForCommit := stagingpropertyunitMixinFields1[4].Descriptor()
	// stagingpropertyunit.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingpropertyunit.DefaultApprovedForCommit = stagingpropertyunitDescApprovedForCommit.Default.(bool)
	stagingreferralMixin := schema.StagingReferral{}.Mixin()
	stagingreferralMixinFields0 := stagingreferralMixin[0].Fields()
	_ = stagingreferralMixinFields0
	stagingreferralMixinFields1 := stagingreferralMixin[1].Fields()
	_ = stagingreferralMixinFields1
	stagingreferralFields := schema.StagingReferral{}.Fields()
	_ = stagingreferralFields
	// stagingreferralDescCreatedAt is the schema descriptor for created_at field.
	stagingreferralDescCreatedAt := stagingreferralMixinFields0[0].Descriptor()
	// stagingreferral.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingreferral.DefaultCreatedAt = stagingreferralDescCreatedAt.Default.(func() time.Time)
	// stagingreferralDescUpdatedAt is the schema descriptor for updated_at field.
	stagingreferralDescUpdatedAt := stagingreferralMixinFields0[1].Descriptor()
	// stagingreferral.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingreferral.DefaultUpdatedAt = stagingreferralDescUpdatedAt.Default.(func() time.Time)
	// stagingreferral.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingreferral.UpdateDefaultUpdatedAt = stagingreferralDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingreferralDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingreferralDescApprovedForCommit := stagingreferralMixinFields1[4].Descriptor()
	// stagingreferral.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingreferral.DefaultApprovedForCommit = stagingreferralDescApprovedForCommit.Default.(bool)
	stagingsurveyMixin := schema.StagingSurvey{}.Mixin()
	stagingsurveyMixinFields0 := stagingsurveyMixin[0].Fields()
	_ = stagingsurveyMixinFields0
	stagingsurveyMixinFields1 := stagingsurveyMixin[1].Fields()
	_ = stagingsurveyMixinFields1
	stagingsurveyFields := schema.StagingSurvey{}.Fields()
	_ = stagingsurveyFields
	// stagingsurveyDescCreatedAt is the schema descriptor for created_at field.
	stagingsurveyDescCreatedAt := stagingsurveyMixinFields0[0].Descriptor()
	// stagingsurvey.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingsurvey.DefaultCreatedAt = stagingsurveyDescCreatedAt.Default.(func() time.Time)
	// stagingsurveyDescUpdatedAt is the schema descriptor for updated_at field.
	stagingsurveyDescUpdatedAt := stagingsurveyMixinFields0[1].Descriptor()
	// stagingsurvey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingsurvey.DefaultUpdatedAt = stagingsurveyDescUpdatedAt.Default.(func() time.Time)
	// stagingsurvey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingsurvey.UpdateDefaultUpdatedAt = stagingsurveyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingsurveyDescApprovedForCommit is the schema descriptor for approved_for_commit field.
	stagingsurveyDescApprovedForCommit := stagingsurveyMixinFields1[4].Descriptor()
	// stagingsurvey.DefaultApprovedForCommit holds the default value on creation for the approved_for_commit field.
	stagingsurvey.DefaultApprovedForCommit = stagingsurveyDescApprovedForCommit.Default.(bool)
	surveyMixin := schema.Survey{}.Mixin()
	surveyMixinFields0 := surveyMixin[0].Fields()
	_ = surveyMixinFields0
	surveyFields := schema.Survey{}.Fields()
	_ = surveyFields
	// surveyDescCreatedAt is the schema descriptor for created_at field.
	surveyDescCreatedAt := surveyMixinFields0[0].Descriptor()
	// survey.DefaultCreatedAt holds the default value on creation for the created_at field.
	survey.DefaultCreatedAt = surveyDescCreatedAt.Default.(func() time.Time)
	// surveyDescUpdatedAt is the schema descriptor for updated_at field.
	surveyDescUpdatedAt := surveyMixinFields0[1].Descriptor()
	// survey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	survey.DefaultUpdatedAt = surveyDescUpdatedAt.Default.(func() time.Time)
	// survey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	survey.UpdateDefaultUpdatedAt = surveyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// surveyDescSurveyTypeCode is the schema descriptor for survey_type_code field.
	surveyDescSurveyTypeCode := surveyFields[2].Descriptor()
	// survey.SurveyTypeCodeValidator is a validator for the "survey_type_code" field. It is called by the builders before save.
	survey.SurveyTypeCodeValidator = surveyDescSurveyTypeCode.Validators[0].(func(string) error)
}
