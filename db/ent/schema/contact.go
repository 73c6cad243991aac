package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Contact struct{ ent.Schema }

func (Contact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contacts"},
	}
}

func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("name").Optional().Nillable(),
		field.String("company").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("job_title").Optional().Nillable(),
		field.String("website").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("outcome").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY contacts -> ONE profile (FK: contacts.profile_id)
		edge.From("profile", Profile.Type).
			Ref("contacts").
			Field("profile_id").
			Required().
			Unique(),
		// ONE contact -> MANY scans
		edge.To("scans", CardScan.Type),
		// ONE contact -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
		index.Fields("profile_id", "email"),
	}
}
