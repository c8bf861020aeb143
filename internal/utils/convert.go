package utils

import (
	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/internal/entity"
)

func ToMarket(e *ent.Market) *entity.Market {
	return &entity.Market{
		ID:        e.ID,
		Handle:    e.Handle,
		Name:      e.Name,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPromotion(e *ent.Promotion) *entity.Promotion {
	return &entity.Promotion{
		ID:        e.ID,
		MarketID:  e.MarketID,
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPost(e *ent.Post) *entity.Post {
	return &entity.Post{
		ID:          e.ID,
		PromotionID: e.PromotionID,
		Code:        e.Code,
		Caption:     e.Caption,
		OCRText:     e.OcrText,
		PublishedAt: e.PublishedAt,
		ExtractedAt: e.ExtractedAt,
	}
}

func ToProduct(e *ent.Product) *entity.Product {
	return &entity.Product{
		ID:          e.ID,
		PostID:      e.PostID,
		Description: e.Description,
		Price:       e.Price,
		Category:    e.Category,
	}
}
