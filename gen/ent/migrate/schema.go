// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MarketsColumns holds the columns for the "markets" table.
	MarketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "handle", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "name", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MarketsTable holds the schema information for the "markets" table.
	MarketsTable = &schema.Table{
		Name:       "markets",
		Columns:    MarketsColumns,
		PrimaryKey: []*schema.Column{MarketsColumns[0]},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "caption", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "promotion_id", Type: field.TypeUUID},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "posts_promotions_posts",
				Columns:    []*schema.Column{PostsColumns[6]},
				RefColumns: []*schema.Column{PromotionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "post_promotion_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[6]},
			},
			{
				Name:    "post_published_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[4]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "category", Type: field.TypeString, Default: "Other"},
		{Name: "post_id", Type: field.TypeUUID},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_posts_products",
				Columns:    []*schema.Column{ProductsColumns[4]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_post_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[4]},
			},
			{
				Name:    "product_category",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[3]},
			},
		},
	}
	// PromotionsColumns holds the columns for the "promotions" table.
	PromotionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "end_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "market_id", Type: field.TypeUUID},
	}
	// PromotionsTable holds the schema information for the "promotions" table.
	PromotionsTable = &schema.Table{
		Name:       "promotions",
		Columns:    PromotionsColumns,
		PrimaryKey: []*schema.Column{PromotionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "promotions_markets_promotions",
				Columns:    []*schema.Column{PromotionsColumns[6]},
				RefColumns: []*schema.Column{MarketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promotion_market_id_start_date_end_date",
				Unique:  true,
				Columns: []*schema.Column{PromotionsColumns[6], PromotionsColumns[2], PromotionsColumns[3]},
			},
			{
				Name:    "promotion_start_date_end_date",
				Unique:  false,
				Columns: []*schema.Column{PromotionsColumns[2], PromotionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MarketsTable,
		PostsTable,
		ProductsTable,
		PromotionsTable,
	}
)

func init() {
	MarketsTable.Annotation = &entsql.Annotation{
		Table: "markets",
	}
	PostsTable.ForeignKeys[0].RefTable = PromotionsTable
	PostsTable.Annotation = &entsql.Annotation{
		Table: "posts",
	}
	ProductsTable.ForeignKeys[0].RefTable = PostsTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	PromotionsTable.ForeignKeys[0].RefTable = MarketsTable
	PromotionsTable.Annotation = &entsql.Annotation{
		Table: "promotions",
	}
}
