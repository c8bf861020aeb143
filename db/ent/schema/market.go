package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Market maps to the public.markets table. Rows are seeded out-of-band; the
// pipeline only ever reads them.
type Market struct{ ent.Schema }

func (Market) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "markets"},
	}
}

func (Market) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("handle").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("name").NotEmpty(),
		field.String("location").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Market) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("promotions", Promotion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
