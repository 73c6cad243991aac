package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/constants"
	"github.com/lbeckmann/cardvault/db/ent/schema/utils"
)

type CardScan struct {
	ent.Schema
}

func (CardScan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "card_scans"},
	}
}

func (CardScan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("contact_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source").NotEmpty().
			Validate(utils.EnumValidator(constants.ScanSources...)),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("qr_payload").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Time("captured_at").Default(time.Now),
	}
}

func (CardScan) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY scans -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("scans").
			Field("profile_id").
			Required().
			Unique(),
		// OPTIONAL: MANY scans -> ONE contact
		edge.From("contact", Contact.Type).
			Ref("scans").
			Field("contact_id").
			Unique(),
		// ONE scan -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (CardScan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "content_hash").Unique(),
		index.Fields("profile_id", "captured_at"),
	}
}
