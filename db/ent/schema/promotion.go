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
)

type Promotion struct{ ent.Schema }

func (Promotion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "promotions"},
	}
}

func (Promotion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define the composite unique index
		field.UUID("market_id", uuid.UUID{}),
		field.String("title").Optional(),
		field.Time("start_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.Time("end_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Promotion) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY promotions -> ONE market (FK: promotions.market_id)
		edge.From("market", Market.Type).
			Ref("promotions").
			Field("market_id").
			Required().
			Unique(),
		// ONE promotion -> MANY posts
		edge.To("posts", Post.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Promotion) Indexes() []ent.Index {
	return []ent.Index{
		// natural key: at most one promotion per market and validity window
		index.Fields("market_id", "start_date", "end_date").Unique(),
		index.Fields("start_date", "end_date"),
	}
}
