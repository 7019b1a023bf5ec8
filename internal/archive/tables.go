// Package archive reads and writes .uhc package containers.
//
// A .uhc file is a self-contained embedded-relational archive (SQLite)
// produced by a field-collection device. It carries one manifest row, one
// data table per entity type, and a content-addressed attachment_blobs
// table. The package opens containers read-only through the pure-Go
// ncruces/go-sqlite3 driver; nothing here touches PostgreSQL.
package archive

import "uhc-registry.io/registry/internal/domain"

// ColumnKind drives canonical checksum encoding and row scanning.
type ColumnKind int

// Column kinds. Times travel as RFC3339 UTC text and are canonicalised as
// strings; scalars are encoded little-endian.
const (
	KindText ColumnKind = iota
	KindInt
	KindReal
	KindBlob
)

// Column is one declared archive column.
type Column struct {
	Name string
	Kind ColumnKind
}

// TableManifest and TableAttachmentBlobs are the non-entity archive tables.
const (
	TableManifest        = "manifest"
	TableAttachmentBlobs = "attachment_blobs"
)

// entityColumns declares, per entity table, the schema order the exporter
// writes and the checksum canonicalisation consumes. Changing an order here
// is a wire-format break.
var entityColumns = map[domain.EntityType][]Column{
	domain.EntityBuilding: {
		{Name: "id", Kind: KindText},
		{Name: "governorate_code", Kind: KindText},
		{Name: "district_code", Kind: KindText},
		{Name: "sub_district_code", Kind: KindText},
		{Name: "community_code", Kind: KindText},
		{Name: "neighborhood_code", Kind: KindText},
		{Name: "building_number", Kind: KindText},
		{Name: "building_type_code", Kind: KindText},
		{Name: "occupancy_status_code", Kind: KindText},
		{Name: "number_of_floors", Kind: KindInt},
		{Name: "number_of_units", Kind: KindInt},
		{Name: "address", Kind: KindText},
		{Name: "latitude", Kind: KindReal},
		{Name: "longitude", Kind: KindReal},
		{Name: "notes", Kind: KindText},
	},
	domain.EntityPropertyUnit: {
		{Name: "id", Kind: KindText},
		{Name: "building_id", Kind: KindText},
		{Name: "unit_identifier", Kind: KindText},
		{Name: "floor_number", Kind: KindInt},
		{Name: "unit_type_code", Kind: KindText},
		{Name: "occupancy_status_code", Kind: KindText},
		{Name: "area_sqm", Kind: KindReal},
		{Name: "room_count", Kind: KindInt},
		{Name: "notes", Kind: KindText},
	},
	domain.EntityPerson: {
		{Name: "id", Kind: KindText},
		{Name: "first_name", Kind: KindText},
		{Name: "father_name", Kind: KindText},
		{Name: "family_name", Kind: KindText},
		{Name: "mother_name", Kind: KindText},
		{Name: "national_id", Kind: KindText},
		{Name: "date_of_birth", Kind: KindText},
		{Name: "gender_code", Kind: KindText},
		{Name: "nationality_code", Kind: KindText},
		{Name: "governorate_code", Kind: KindText},
		{Name: "phone_number", Kind: KindText},
	},
	domain.EntityHousehold: {
		{Name: "id", Kind: KindText},
		{Name: "head_of_household_id", Kind: KindText},
		{Name: "household_size", Kind: KindInt},
		{Name: "males_under_18", Kind: KindInt},
		{Name: "females_under_18", Kind: KindInt},
		{Name: "males_adult", Kind: KindInt},
		{Name: "females_adult", Kind: KindInt},
		{Name: "residency_status_code", Kind: KindText},
		{Name: "displacement_origin_governorate", Kind: KindText},
	},
	domain.EntityPersonPropertyRelation: {
		{Name: "id", Kind: KindText},
		{Name: "person_id", Kind: KindText},
		{Name: "property_unit_id", Kind: KindText},
		{Name: "relation_type_code", Kind: KindText},
		{Name: "ownership_share", Kind: KindReal},
		{Name: "start_date", Kind: KindText},
		{Name: "notes", Kind: KindText},
	},
	domain.EntityEvidence: {
		{Name: "id", Kind: KindText},
		{Name: "person_id", Kind: KindText},
		{Name: "evidence_type_code", Kind: KindText},
		{Name: "document_number", Kind: KindText},
		{Name: "issued_date", Kind: KindText},
		{Name: "issuing_authority", Kind: KindText},
		{Name: "blob_sha256", Kind: KindText},
		{Name: "blob_size_bytes", Kind: KindInt},
		{Name: "file_name", Kind: KindText},
		{Name: "content_type", Kind: KindText},
		{Name: "notes", Kind: KindText},
	},
	domain.EntitySurvey: {
		{Name: "id", Kind: KindText},
		{Name: "building_id", Kind: KindText},
		{Name: "survey_type_code", Kind: KindText},
		{Name: "survey_date", Kind: KindText},
		{Name: "surveyor_name", Kind: KindText},
		{Name: "notes", Kind: KindText},
	},
	domain.EntityClaim: {
		{Name: "id", Kind: KindText},
		{Name: "property_unit_id", Kind: KindText},
		{Name: "primary_claimant_id", Kind: KindText},
		{Name: "claim_type_code", Kind: KindText},
		{Name: "status_code", Kind: KindText},
		{Name: "claimed_share", Kind: KindReal},
		{Name: "submission_date", Kind: KindText},
		{Name: "notes", Kind: KindText},
	},
	domain.EntityDocument: {
		{Name: "id", Kind: KindText},
		{Name: "claim_id", Kind: KindText},
		{Name: "document_type_code", Kind: KindText},
		{Name: "title", Kind: KindText},
		{Name: "blob_sha256", Kind: KindText},
		{Name: "blob_size_bytes", Kind: KindInt},
		{Name: "file_name", Kind: KindText},
		{Name: "content_type", Kind: KindText},
	},
	domain.EntityReferral: {
		{Name: "id", Kind: KindText},
		{Name: "claim_id", Kind: KindText},
		{Name: "referral_reason_code", Kind: KindText},
		{Name: "referred_to_agency", Kind: KindText},
		{Name: "referral_date", Kind: KindText},
		{Name: "notes", Kind: KindText},
	},
}

// attachmentColumns is the attachment_blobs declaration; id is the
// lowercase sha256 hex of content.
var attachmentColumns = []Column{
	{Name: "id", Kind: KindText},
	{Name: "size_bytes", Kind: KindInt},
	{Name: "content", Kind: KindBlob},
}

// manifestColumns is the manifest declaration. The manifest is excluded
// from the content checksum (the checksum column would be self-referential).
var manifestColumns = []Column{
	{Name: "package_id", Kind: KindText},
	{Name: "schema_version", Kind: KindText},
	{Name: "created_utc", Kind: KindText},
	{Name: "exported_date_utc", Kind: KindText},
	{Name: "exported_by_user_id", Kind: KindText},
	{Name: "device_id", Kind: KindText},
	{Name: "total_record_count", Kind: KindInt},
	{Name: "building_count", Kind: KindInt},
	{Name: "property_unit_count", Kind: KindInt},
	{Name: "person_count", Kind: KindInt},
	{Name: "household_count", Kind: KindInt},
	{Name: "person_property_relation_count", Kind: KindInt},
	{Name: "evidence_count", Kind: KindInt},
	{Name: "survey_count", Kind: KindInt},
	{Name: "claim_count", Kind: KindInt},
	{Name: "document_count", Kind: KindInt},
	{Name: "referral_count", Kind: KindInt},
	{Name: "total_attachment_size_bytes", Kind: KindInt},
	{Name: "vocabulary_versions", Kind: KindText},
	{Name: "checksum", Kind: KindText},
	{Name: "digital_signature", Kind: KindText},
}

// checksumTables lists every data table in the fixed order the content
// checksum walks them: entity tables in topological order, attachments last.
func checksumTables() []string {
	tables := make([]string, 0, len(domain.EntityOrder)+1)
	for _, et := range domain.EntityOrder {
		tables = append(tables, et.ArchiveTable())
	}
	return append(tables, TableAttachmentBlobs)
}

// columnsFor returns the declared columns of a data table.
func columnsFor(table string) []Column {
	if table == TableAttachmentBlobs {
		return attachmentColumns
	}
	for et, cols := range entityColumns {
		if et.ArchiveTable() == table {
			return cols
		}
	}
	return nil
}
