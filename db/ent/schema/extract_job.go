package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("scan_id", uuid.UUID{}),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("contact_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Bool("llm_used").Default(false),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("model_name").Optional().Nillable(),
		field.JSON("model_params", json.RawMessage{}).
			Optional(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", CardScan.Type).
			Ref("jobs").
			Field("scan_id").
			Unique().
			Required(),
		edge.From("profile", Profile.Type).
			Ref("jobs").
			Field("profile_id").
			Unique().
			Required(),
		edge.From("contact", Contact.Type).
			Ref("jobs").
			Field("contact_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "started_at"),
		index.Fields("scan_id"),
		index.Fields("contact_id"),
	}
}
