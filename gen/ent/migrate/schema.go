// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardScansColumns holds the columns for the "card_scans" table.
	CardScansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "qr_payload", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "captured_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CardScansTable holds the schema information for the "card_scans" table.
	CardScansTable = &schema.Table{
		Name:       "card_scans",
		Columns:    CardScansColumns,
		PrimaryKey: []*schema.Column{CardScansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_scans_contacts_scans",
				Columns:    []*schema.Column{CardScansColumns[6]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "card_scans_profiles_scans",
				Columns:    []*schema.Column{CardScansColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cardscan_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{CardScansColumns[7], CardScansColumns[4]},
			},
			{
				Name:    "cardscan_profile_id_captured_at",
				Unique:  false,
				Columns: []*schema.Column{CardScansColumns[7], CardScansColumns[5]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "job_title", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_profiles_contacts",
				Columns:    []*schema.Column{ContactsColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[11], ContactsColumns[9]},
			},
			{
				Name:    "contact_profile_id_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[11], ContactsColumns[3]},
			},
		},
	}
	// CreditEntriesColumns holds the columns for the "credit_entries" table.
	CreditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "scan_id", Type: field.TypeUUID, Nullable: true},
		{Name: "delta", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CreditEntriesTable holds the schema information for the "credit_entries" table.
	CreditEntriesTable = &schema.Table{
		Name:       "credit_entries",
		Columns:    CreditEntriesColumns,
		PrimaryKey: []*schema.Column{CreditEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_entries_profiles_credits",
				Columns:    []*schema.Column{CreditEntriesColumns[5]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "creditentry_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CreditEntriesColumns[5], CreditEntriesColumns[4]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "llm_used", Type: field.TypeBool, Default: false},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "scan_id", Type: field.TypeUUID},
		{Name: "contact_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_card_scans_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[9]},
				RefColumns: []*schema.Column{CardScansColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_contacts_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11], ExtractJobColumns[3], ExtractJobColumns[1]},
			},
			{
				Name:    "extractjob_scan_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[9]},
			},
			{
				Name:    "extractjob_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "locale", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardScansTable,
		ContactsTable,
		CreditEntriesTable,
		ExtractJobTable,
		ProfilesTable,
	}
)

func init() {
	CardScansTable.ForeignKeys[0].RefTable = ContactsTable
	CardScansTable.ForeignKeys[1].RefTable = ProfilesTable
	CardScansTable.Annotation = &entsql.Annotation{
		Table: "card_scans",
	}
	ContactsTable.ForeignKeys[0].RefTable = ProfilesTable
	ContactsTable.Annotation = &entsql.Annotation{
		Table: "contacts",
	}
	CreditEntriesTable.ForeignKeys[0].RefTable = ProfilesTable
	CreditEntriesTable.Annotation = &entsql.Annotation{
		Table: "credit_entries",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = CardScansTable
	ExtractJobTable.ForeignKeys[1].RefTable = ContactsTable
	ExtractJobTable.ForeignKeys[2].RefTable = ProfilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
