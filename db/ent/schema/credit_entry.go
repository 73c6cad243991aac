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

type CreditEntry struct{ ent.Schema }

func (CreditEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "credit_entries"},
	}
}

func (CreditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("scan_id", uuid.UUID{}).Optional().Nillable(),
		// positive for grants, negative for debits
		field.Int("delta"),
		field.String("reason").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (CreditEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("credits").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (CreditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
	}
}
