// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// BuildingsColumns holds the columns for the "buildings" table.
	BuildingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "building_code", Type: field.TypeString, Unique: true},
		{Name: "governorate_code", Type: field.TypeString},
		{Name: "district_code", Type: field.TypeString},
		{Name: "sub_district_code", Type: field.TypeString},
		{Name: "community_code", Type: field.TypeString},
		{Name: "neighborhood_code", Type: field.TypeString},
		{Name: "building_number", Type: field.TypeString},
		{Name: "building_type_code", Type: field.TypeString, Nullable: true},
		{Name: "occupancy_status_code", Type: field.TypeString, Nullable: true},
		{Name: "number_of_floors", Type: field.TypeInt, Default: 0},
		{Name: "number_of_units", Type: field.TypeInt, Default: 0},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// BuildingsTable holds the schema information for the "buildings" table.
	BuildingsTable = &schema.Table{
		Name:       "buildings",
		Columns:    BuildingsColumns,
		PrimaryKey: []*schema.Column{BuildingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "building_governorate_code_district_code",
				Unique:  false,
				Columns: []*schema.Column{BuildingsColumns[5], BuildingsColumns[6]},
			},
		},
	}
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "certificate_number", Type: field.TypeString, Unique: true},
		{Name: "claim_id", Type: field.TypeUUID},
		{Name: "beneficiary_id", Type: field.TypeUUID},
		{Name: "issued_date", Type: field.TypeTime, Nullable: true},
		{Name: "status_code", Type: field.TypeString, Nullable: true},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "certificate_beneficiary_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[5]},
			},
			{
				Name:    "certificate_claim_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[4]},
			},
		},
	}
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "claim_number", Type: field.TypeString, Unique: true},
		{Name: "property_unit_id", Type: field.TypeUUID},
		{Name: "primary_claimant_id", Type: field.TypeUUID},
		{Name: "claim_type_code", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeString, Default: "draft_pending_submission"},
		{Name: "claimed_share", Type: field.TypeFloat64},
		{Name: "submission_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claim_property_unit_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[5]},
			},
			{
				Name:    "claim_primary_claimant_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[6]},
			},
			{
				Name:    "claim_status_code",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[8]},
			},
		},
	}
	// ConflictResolutionsColumns holds the columns for the "conflict_resolutions" table.
	ConflictResolutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"person", "building", "property_unit"}},
		{Name: "staging_entity_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "suggested_master_id", Type: field.TypeUUID, Nullable: true},
		{Name: "candidates", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UNRESOLVED", "RESOLVED"}, Default: "UNRESOLVED"},
		{Name: "resolution", Type: field.TypeEnum, Nullable: true, Enums: []string{"MERGE", "LINK_TO_EXISTING", "KEEP_SEPARATE", "CREATE_NEW"}},
		{Name: "justification", Type: field.TypeString, Nullable: true},
		{Name: "chosen_master_id", Type: field.TypeUUID, Nullable: true},
		{Name: "merge_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ConflictResolutionsTable holds the schema information for the "conflict_resolutions" table.
	ConflictResolutionsTable = &schema.Table{
		Name:       "conflict_resolutions",
		Columns:    ConflictResolutionsColumns,
		PrimaryKey: []*schema.Column{ConflictResolutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conflictresolution_import_package_id_entity_type_staging_entity_id",
				Unique:  true,
				Columns: []*schema.Column{ConflictResolutionsColumns[3], ConflictResolutionsColumns[4], ConflictResolutionsColumns[5]},
			},
			{
				Name:    "conflictresolution_import_package_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConflictResolutionsColumns[3], ConflictResolutionsColumns[9]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "claim_id", Type: field.TypeUUID},
		{Name: "document_type_code", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "blob_sha256", Type: field.TypeString, Nullable: true},
		{Name: "blob_path", Type: field.TypeString, Nullable: true},
		{Name: "blob_size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_claim_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_blob_sha256",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7]},
			},
		},
	}
	// DomainEventsColumns holds the columns for the "domain_events" table.
	DomainEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "aggregate_type", Type: field.TypeString},
		{Name: "aggregate_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED", "CANCELLED"}, Default: "PENDING"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
	}
	// DomainEventsTable holds the schema information for the "domain_events" table.
	DomainEventsTable = &schema.Table{
		Name:       "domain_events",
		Columns:    DomainEventsColumns,
		PrimaryKey: []*schema.Column{DomainEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainevent_aggregate_type_aggregate_id",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[3], DomainEventsColumns[4]},
			},
			{
				Name:    "domainevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[2]},
			},
			{
				Name:    "domainevent_status",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[6]},
			},
			{
				Name:    "domainevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[1]},
			},
		},
	}
	// DuplicateSuppressionsColumns holds the columns for the "duplicate_suppressions" table.
	DuplicateSuppressionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"person", "building", "property_unit"}},
		{Name: "production_entity_id", Type: field.TypeUUID},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "resolution_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeString},
	}
	// DuplicateSuppressionsTable holds the schema information for the "duplicate_suppressions" table.
	DuplicateSuppressionsTable = &schema.Table{
		Name:       "duplicate_suppressions",
		Columns:    DuplicateSuppressionsColumns,
		PrimaryKey: []*schema.Column{DuplicateSuppressionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "duplicatesuppression_entity_type_production_entity_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{DuplicateSuppressionsColumns[2], DuplicateSuppressionsColumns[3], DuplicateSuppressionsColumns[4]},
			},
		},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "person_id", Type: field.TypeUUID},
		{Name: "evidence_type_code", Type: field.TypeString},
		{Name: "document_number", Type: field.TypeString, Nullable: true},
		{Name: "issued_date", Type: field.TypeTime, Nullable: true},
		{Name: "issuing_authority", Type: field.TypeString, Nullable: true},
		{Name: "blob_sha256", Type: field.TypeString, Nullable: true},
		{Name: "blob_path", Type: field.TypeString, Nullable: true},
		{Name: "blob_size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_person_id",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[4]},
			},
			{
				Name:    "evidence_blob_sha256",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[9]},
			},
		},
	}
	// HouseholdsColumns holds the columns for the "households" table.
	HouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "head_of_household_id", Type: field.TypeUUID},
		{Name: "household_size", Type: field.TypeInt},
		{Name: "males_under_18", Type: field.TypeInt, Default: 0},
		{Name: "females_under_18", Type: field.TypeInt, Default: 0},
		{Name: "males_adult", Type: field.TypeInt, Default: 0},
		{Name: "females_adult", Type: field.TypeInt, Default: 0},
		{Name: "residency_status_code", Type: field.TypeString, Nullable: true},
		{Name: "displacement_origin_governorate", Type: field.TypeString, Nullable: true},
	}
	// HouseholdsTable holds the schema information for the "households" table.
	HouseholdsTable = &schema.Table{
		Name:       "households",
		Columns:    HouseholdsColumns,
		PrimaryKey: []*schema.Column{HouseholdsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "household_head_of_household_id",
				Unique:  false,
				Columns: []*schema.Column{HouseholdsColumns[4]},
			},
		},
	}
	// IdentifierSequencesColumns holds the columns for the "identifier_sequences" table.
	IdentifierSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "next_value", Type: field.TypeInt64, Default: 1},
	}
	// IdentifierSequencesTable holds the schema information for the "identifier_sequences" table.
	IdentifierSequencesTable = &schema.Table{
		Name:       "identifier_sequences",
		Columns:    IdentifierSequencesColumns,
		PrimaryKey: []*schema.Column{IdentifierSequencesColumns[0]},
	}
	// ImportPackagesColumns holds the columns for the "import_packages" table.
	ImportPackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "package_number", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALIDATING", "VALIDATED", "INVALID", "DETECTING_DUPLICATES", "REVIEWING_CONFLICTS", "READY_TO_COMMIT", "COMMITTING", "COMPLETED", "PARTIALLY_COMPLETED", "COMMIT_FAILED", "CANCELLED", "QUARANTINED"}, Default: "PENDING"},
		{Name: "import_method", Type: field.TypeEnum, Enums: []string{"MANUAL", "NETWORK_SYNC", "WATCHED_FOLDER"}, Default: "MANUAL"},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size_bytes", Type: field.TypeInt64},
		{Name: "schema_version", Type: field.TypeString},
		{Name: "manifest_created_utc", Type: field.TypeTime},
		{Name: "exported_date_utc", Type: field.TypeTime},
		{Name: "exported_by_user_id", Type: field.TypeString, Nullable: true},
		{Name: "device_id", Type: field.TypeString},
		{Name: "total_record_count", Type: field.TypeInt},
		{Name: "entity_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "total_attachment_size_bytes", Type: field.TypeInt64},
		{Name: "vocabulary_versions", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_checksum", Type: field.TypeString, Nullable: true},
		{Name: "computed_checksum", Type: field.TypeString, Nullable: true},
		{Name: "signature_status", Type: field.TypeEnum, Enums: []string{"NONE", "VALID", "INVALID"}, Default: "NONE"},
		{Name: "receive_warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "storage_path", Type: field.TypeString, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archive_path", Type: field.TypeString, Nullable: true},
		{Name: "archived_date", Type: field.TypeTime, Nullable: true},
		{Name: "validation_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "conflict_count", Type: field.TypeInt, Default: 0},
		{Name: "unresolved_conflict_count", Type: field.TypeInt, Default: 0},
		{Name: "committed_date", Type: field.TypeTime, Nullable: true},
		{Name: "commit_report", Type: field.TypeJSON, Nullable: true},
		{Name: "quarantined_reason", Type: field.TypeString, Nullable: true},
		{Name: "cancelled_reason", Type: field.TypeString, Nullable: true},
		{Name: "cancelled_by", Type: field.TypeString, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "received_by", Type: field.TypeString},
	}
	// ImportPackagesTable holds the schema information for the "import_packages" table.
	ImportPackagesTable = &schema.Table{
		Name:       "import_packages",
		Columns:    ImportPackagesColumns,
		PrimaryKey: []*schema.Column{ImportPackagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importpackage_status",
				Unique:  false,
				Columns: []*schema.Column{ImportPackagesColumns[4]},
			},
			{
				Name:    "importpackage_device_id",
				Unique:  false,
				Columns: []*schema.Column{ImportPackagesColumns[12]},
			},
			{
				Name:    "importpackage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportPackagesColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"PACKAGE_RECEIVED", "PACKAGE_QUARANTINED", "PACKAGE_VALIDATED", "PACKAGE_INVALID", "CONFLICTS_PENDING_REVIEW", "PACKAGE_COMMITTED", "PACKAGE_COMMIT_FAILED"}},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[8]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[1]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// PersonsColumns holds the columns for the "persons" table.
	PersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "father_name", Type: field.TypeString, Nullable: true},
		{Name: "family_name", Type: field.TypeString},
		{Name: "mother_name", Type: field.TypeString, Nullable: true},
		{Name: "first_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "father_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "family_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "year_of_birth", Type: field.TypeInt, Nullable: true},
		{Name: "gender_code", Type: field.TypeString, Nullable: true},
		{Name: "nationality_code", Type: field.TypeString, Nullable: true},
		{Name: "governorate_code", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
	}
	// PersonsTable holds the schema information for the "persons" table.
	PersonsTable = &schema.Table{
		Name:       "persons",
		Columns:    PersonsColumns,
		PrimaryKey: []*schema.Column{PersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "person_governorate_code_national_id",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[16], PersonsColumns[11]},
			},
			{
				Name:    "person_national_id",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[11]},
			},
			{
				Name:    "person_year_of_birth_gender_code",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[13], PersonsColumns[14]},
			},
		},
	}
	// PersonPropertyRelationsColumns holds the columns for the "person_property_relations" table.
	PersonPropertyRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "person_id", Type: field.TypeUUID},
		{Name: "property_unit_id", Type: field.TypeUUID},
		{Name: "relation_type_code", Type: field.TypeString},
		{Name: "ownership_share", Type: field.TypeFloat64},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// PersonPropertyRelationsTable holds the schema information for the "person_property_relations" table.
	PersonPropertyRelationsTable = &schema.Table{
		Name:       "person_property_relations",
		Columns:    PersonPropertyRelationsColumns,
		PrimaryKey: []*schema.Column{PersonPropertyRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "personpropertyrelation_person_id",
				Unique:  false,
				Columns: []*schema.Column{PersonPropertyRelationsColumns[4]},
			},
			{
				Name:    "personpropertyrelation_property_unit_id",
				Unique:  false,
				Columns: []*schema.Column{PersonPropertyRelationsColumns[5]},
			},
		},
	}
	// PropertyUnitsColumns holds the columns for the "property_units" table.
	PropertyUnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "building_id", Type: field.TypeUUID},
		{Name: "unit_identifier", Type: field.TypeString},
		{Name: "composite_identifier", Type: field.TypeString, Unique: true},
		{Name: "floor_number", Type: field.TypeInt, Default: 0},
		{Name: "unit_type_code", Type: field.TypeString, Nullable: true},
		{Name: "occupancy_status_code", Type: field.TypeString, Nullable: true},
		{Name: "area_sqm", Type: field.TypeFloat64, Nullable: true},
		{Name: "room_count", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// PropertyUnitsTable holds the schema information for the "property_units" table.
	PropertyUnitsTable = &schema.Table{
		Name:       "property_units",
		Columns:    PropertyUnitsColumns,
		PrimaryKey: []*schema.Column{PropertyUnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "propertyunit_building_id",
				Unique:  false,
				Columns: []*schema.Column{PropertyUnitsColumns[4]},
			},
		},
	}
	// ReferralsColumns holds the columns for the "referrals" table.
	ReferralsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "claim_id", Type: field.TypeUUID},
		{Name: "referral_reason_code", Type: field.TypeString},
		{Name: "referred_to_agency", Type: field.TypeString, Nullable: true},
		{Name: "referral_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// ReferralsTable holds the schema information for the "referrals" table.
	ReferralsTable = &schema.Table{
		Name:       "referrals",
		Columns:    ReferralsColumns,
		PrimaryKey: []*schema.Column{ReferralsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "referral_claim_id",
				Unique:  false,
				Columns: []*schema.Column{ReferralsColumns[4]},
			},
		},
	}
	// StagingBuildingsColumns holds the columns for the "staging_buildings" table.
	StagingBuildingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "building_code", Type: field.TypeString, Nullable: true},
	}
	// StagingBuildingsTable holds the schema information for the "staging_buildings" table.
	StagingBuildingsTable = &schema.Table{
		Name:       "staging_buildings",
		Columns:    StagingBuildingsColumns,
		PrimaryKey: []*schema.Column{StagingBuildingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingbuilding_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingBuildingsColumns[3], StagingBuildingsColumns[4]},
			},
			{
				Name:    "stagingbuilding_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingBuildingsColumns[3], StagingBuildingsColumns[5]},
			},
			{
				Name:    "stagingbuilding_building_code",
				Unique:  false,
				Columns: []*schema.Column{StagingBuildingsColumns[10]},
			},
		},
	}
	// StagingClaimsColumns holds the columns for the "staging_claims" table.
	StagingClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
	}
	// StagingClaimsTable holds the schema information for the "staging_claims" table.
	StagingClaimsTable = &schema.Table{
		Name:       "staging_claims",
		Columns:    StagingClaimsColumns,
		PrimaryKey: []*schema.Column{StagingClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingclaim_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingClaimsColumns[3], StagingClaimsColumns[4]},
			},
			{
				Name:    "stagingclaim_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingClaimsColumns[3], StagingClaimsColumns[5]},
			},
		},
	}
	// StagingDocumentsColumns holds the columns for the "staging_documents" table.
	StagingDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "blob_sha256", Type: field.TypeString, Nullable: true},
	}
	// StagingDocumentsTable holds the schema information for the "staging_documents" table.
	StagingDocumentsTable = &schema.Table{
		Name:       "staging_documents",
		Columns:    StagingDocumentsColumns,
		PrimaryKey: []*schema.Column{StagingDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingdocument_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingDocumentsColumns[3], StagingDocumentsColumns[4]},
			},
			{
				Name:    "stagingdocument_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingDocumentsColumns[3], StagingDocumentsColumns[5]},
			},
			{
				Name:    "stagingdocument_blob_sha256",
				Unique:  false,
				Columns: []*schema.Column{StagingDocumentsColumns[10]},
			},
		},
	}
	// StagingEvidencesColumns holds the columns for the "staging_evidences" table.
	StagingEvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "blob_sha256", Type: field.TypeString, Nullable: true},
	}
	// StagingEvidencesTable holds the schema information for the "staging_evidences" table.
	StagingEvidencesTable = &schema.Table{
		Name:       "staging_evidences",
		Columns:    StagingEvidencesColumns,
		PrimaryKey: []*schema.Column{StagingEvidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingevidence_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingEvidencesColumns[3], StagingEvidencesColumns[4]},
			},
			{
				Name:    "stagingevidence_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingEvidencesColumns[3], StagingEvidencesColumns[5]},
			},
			{
				Name:    "stagingevidence_blob_sha256",
				Unique:  false,
				Columns: []*schema.Column{StagingEvidencesColumns[10]},
			},
		},
	}
	// StagingHouseholdsColumns holds the columns for the "staging_households" table.
	StagingHouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
	}
	// StagingHouseholdsTable holds the schema information for the "staging_households" table.
	StagingHouseholdsTable = &schema.Table{
		Name:       "staging_households",
		Columns:    StagingHouseholdsColumns,
		PrimaryKey: []*schema.Column{StagingHouseholdsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staginghousehold_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingHouseholdsColumns[3], StagingHouseholdsColumns[4]},
			},
			{
				Name:    "staginghousehold_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingHouseholdsColumns[3], StagingHouseholdsColumns[5]},
			},
		},
	}
	// StagingPersonsColumns holds the columns for the "staging_persons" table.
	StagingPersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "first_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "father_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "family_name_normalized", Type: field.TypeString, Nullable: true},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "year_of_birth", Type: field.TypeInt, Nullable: true},
		{Name: "gender_code", Type: field.TypeString, Nullable: true},
	}
	// StagingPersonsTable holds the schema information for the "staging_persons" table.
	StagingPersonsTable = &schema.Table{
		Name:       "staging_persons",
		Columns:    StagingPersonsColumns,
		PrimaryKey: []*schema.Column{StagingPersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingperson_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingPersonsColumns[3], StagingPersonsColumns[4]},
			},
			{
				Name:    "stagingperson_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingPersonsColumns[3], StagingPersonsColumns[5]},
			},
			{
				Name:    "stagingperson_national_id",
				Unique:  false,
				Columns: []*schema.Column{StagingPersonsColumns[13]},
			},
		},
	}
	// StagingPersonPropertyRelationsColumns holds the columns for the "staging_person_property_relations" table.
	StagingPersonPropertyRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
	}
	// StagingPersonPropertyRelationsTable holds the schema information for the "staging_person_property_relations" table.
	StagingPersonPropertyRelationsTable = &schema.Table{
		Name:       "staging_person_property_relations",
		Columns:    StagingPersonPropertyRelationsColumns,
		PrimaryKey: []*schema.Column{StagingPersonPropertyRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingpersonpropertyrelation_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingPersonPropertyRelationsColumns[3], StagingPersonPropertyRelationsColumns[4]},
			},
			{
				Name:    "stagingpersonpropertyrelation_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingPersonPropertyRelationsColumns[3], StagingPersonPropertyRelationsColumns[5]},
			},
		},
	}
	// StagingPropertyUnitsColumns holds the columns for the "staging_property_units" table.
	StagingPropertyUnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "original_building_id", Type: field.TypeUUID},
		{Name: "unit_identifier_normalized", Type: field.TypeString, Nullable: true},
	}
	// StagingPropertyUnitsTable holds the schema information for the "staging_property_units" table.
	StagingPropertyUnitsTable = &schema.Table{
		Name:       "staging_property_units",
		Columns:    StagingPropertyUnitsColumns,
		PrimaryKey: []*schema.Column{StagingPropertyUnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingpropertyunit_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingPropertyUnitsColumns[3], StagingPropertyUnitsColumns[4]},
			},
			{
				Name:    "stagingpropertyunit_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingPropertyUnitsColumns[3], StagingPropertyUnitsColumns[5]},
			},
			{
				Name:    "stagingpropertyunit_original_building_id",
				Unique:  false,
				Columns: []*schema.Column{StagingPropertyUnitsColumns[10]},
			},
		},
	}
	// StagingReferralsColumns holds the columns for the "staging_referrals" table.
	StagingReferralsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
	}
	// StagingReferralsTable holds the schema information for the "staging_referrals" table.
	StagingReferralsTable = &schema.Table{
		Name:       "staging_referrals",
		Columns:    StagingReferralsColumns,
		PrimaryKey: []*schema.Column{StagingReferralsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingreferral_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingReferralsColumns[3], StagingReferralsColumns[4]},
			},
			{
				Name:    "stagingreferral_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingReferralsColumns[3], StagingReferralsColumns[5]},
			},
		},
	}
	// StagingSurveysColumns holds the columns for the "staging_surveys" table.
	StagingSurveysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "import_package_id", Type: field.TypeUUID},
		{Name: "original_entity_id", Type: field.TypeUUID},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"PENDING", "VALID", "WARNING", "INVALID", "SKIPPED"}, Default: "PENDING"},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_for_commit", Type: field.TypeBool, Default: false},
		{Name: "committed_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
	}
	// StagingSurveysTable holds the schema information for the "staging_surveys" table.
	StagingSurveysTable = &schema.Table{
		Name:       "staging_surveys",
		Columns:    StagingSurveysColumns,
		PrimaryKey: []*schema.Column{StagingSurveysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingsurvey_import_package_id_original_entity_id",
				Unique:  true,
				Columns: []*schema.Column{StagingSurveysColumns[3], StagingSurveysColumns[4]},
			},
			{
				Name:    "stagingsurvey_import_package_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{StagingSurveysColumns[3], StagingSurveysColumns[5]},
			},
		},
	}
	// SurveysColumns holds the columns for the "surveys" table.
	SurveysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "building_id", Type: field.TypeUUID},
		{Name: "survey_type_code", Type: field.TypeString},
		{Name: "survey_date", Type: field.TypeTime, Nullable: true},
		{Name: "surveyor_name", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// SurveysTable holds the schema information for the "surveys" table.
	SurveysTable = &schema.Table{
		Name:       "surveys",
		Columns:    SurveysColumns,
		PrimaryKey: []*schema.Column{SurveysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "survey_building_id",
				Unique:  false,
				Columns: []*schema.Column{SurveysColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		BuildingsTable,
		CertificatesTable,
		ClaimsTable,
		ConflictResolutionsTable,
		DocumentsTable,
		DomainEventsTable,
		DuplicateSuppressionsTable,
		EvidencesTable,
		HouseholdsTable,
		IdentifierSequencesTable,
		ImportPackagesTable,
		NotificationsTable,
		PersonsTable,
		PersonPropertyRelationsTable,
		PropertyUnitsTable,
		ReferralsTable,
		StagingBuildingsTable,
		StagingClaimsTable,
		StagingDocumentsTable,
		StagingEvidencesTable,
		StagingHouseholdsTable,
		StagingPersonsTable,
		StagingPersonPropertyRelationsTable,
		StagingPropertyUnitsTable,
		StagingReferralsTable,
		StagingSurveysTable,
		SurveysTable,
	}
)

func init() {
}
