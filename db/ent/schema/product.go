package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/db/ent/schema/utils"
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("post_id", uuid.UUID{}),
		field.String("description").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("category").
			Default(string(constants.Other)).
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY products -> ONE post (FK: products.post_id)
		edge.From("post", Post.Type).
			Ref("products").
			Field("post_id").
			Required().
			Unique(),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id"),
		index.Fields("category"),
	}
}
