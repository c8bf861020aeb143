// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/promowatch/promo-tracker/db/ent/schema"
	"github.com/promowatch/promo-tracker/gen/ent/market"
	"github.com/promowatch/promo-tracker/gen/ent/post"
	"github.com/promowatch/promo-tracker/gen/ent/product"
	"github.com/promowatch/promo-tracker/gen/ent/promotion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	marketFields := schema.Market{}.Fields()
	_ = marketFields
	// marketDescHandle is the schema descriptor for handle field.
	marketDescHandle := marketFields[1].Descriptor()
	// market.HandleValidator is a validator for the "handle" field. It is called by the builders before save.
	market.HandleValidator = marketDescHandle.Validators[0].(func(string) error)
	// marketDescName is the schema descriptor for name field.
	marketDescName := marketFields[2].Descriptor()
	// market.NameValidator is a validator for the "name" field. It is called by the builders before save.
	market.NameValidator = marketDescName.Validators[0].(func(string) error)
	// marketDescCreatedAt is the schema descriptor for created_at field.
	marketDescCreatedAt := marketFields[4].Descriptor()
	// market.DefaultCreatedAt holds the default value on creation for the created_at field.
	market.DefaultCreatedAt = marketDescCreatedAt.Default.(func() time.Time)
	// marketDescUpdatedAt is the schema descriptor for updated_at field.
	marketDescUpdatedAt := marketFields[5].Descriptor()
	// market.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	market.DefaultUpdatedAt = marketDescUpdatedAt.Default.(func() time.Time)
	// market.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	market.UpdateDefaultUpdatedAt = marketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// marketDescID is the schema descriptor for id field.
	marketDescID := marketFields[0].Descriptor()
	// market.DefaultID holds the default value on creation for the id field.
	market.DefaultID = marketDescID.Default.(func() uuid.UUID)
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescCode is the schema descriptor for code field.
	postDescCode := postFields[2].Descriptor()
	// post.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	post.CodeValidator = postDescCode.Validators[0].(func(string) error)
	// postDescExtractedAt is the schema descriptor for extracted_at field.
	postDescExtractedAt := postFields[6].Descriptor()
	// post.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	post.DefaultExtractedAt = postDescExtractedAt.Default.(func() time.Time)
	// postDescID is the schema descriptor for id field.
	postDescID := postFields[0].Descriptor()
	// post.DefaultID holds the default value on creation for the id field.
	post.DefaultID = postDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescDescription is the schema descriptor for description field.
	productDescDescription := productFields[2].Descriptor()
	// product.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	product.DescriptionValidator = productDescDescription.Validators[0].(func(string) error)
	// productDescCategory is the schema descriptor for category field.
	productDescCategory := productFields[4].Descriptor()
	// product.DefaultCategory holds the default value on creation for the category field.
	product.DefaultCategory = productDescCategory.Default.(string)
	// product.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	product.CategoryValidator = productDescCategory.Validators[0].(func(string) error)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	promotionFields := schema.Promotion{}.Fields()
	_ = promotionFields
	// promotionDescCreatedAt is the schema descriptor for created_at field.
	promotionDescCreatedAt := promotionFields[5].Descriptor()
	// promotion.DefaultCreatedAt holds the default value on creation for the created_at field.
	promotion.DefaultCreatedAt = promotionDescCreatedAt.Default.(func() time.Time)
	// promotionDescUpdatedAt is the schema descriptor for updated_at field.
	promotionDescUpdatedAt := promotionFields[6].Descriptor()
	// promotion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promotion.DefaultUpdatedAt = promotionDescUpdatedAt.Default.(func() time.Time)
	// promotion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promotion.UpdateDefaultUpdatedAt = promotionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// promotionDescID is the schema descriptor for id field.
	promotionDescID := promotionFields[0].Descriptor()
	// promotion.DefaultID holds the default value on creation for the id field.
	promotion.DefaultID = promotionDescID.Default.(func() uuid.UUID)
}
