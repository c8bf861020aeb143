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

type Post struct{ ent.Schema }

func (Post) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "posts"},
	}
}

func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("promotion_id", uuid.UUID{}),
		// external social-media post identifier; the re-run dedup boundary
		field.String("code").
			NotEmpty().
			Unique(),
		field.String("caption").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("published_at"),
		field.Time("extracted_at").Default(time.Now),
	}
}

func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY posts -> ONE promotion (FK: posts.promotion_id)
		edge.From("promotion", Promotion.Type).
			Ref("posts").
			Field("promotion_id").
			Required().
			Unique(),
		// ONE post -> MANY products
		edge.To("products", Product.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Post) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("promotion_id"),
		index.Fields("published_at"),
	}
}
