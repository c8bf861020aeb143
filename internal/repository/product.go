package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/gen/ent/product"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/utils"
)

// CreateProductRequest wraps parameters for creating a product row.
type CreateProductRequest struct {
	PostID      uuid.UUID
	Description string
	Price       float64
	Category    string
}

type ProductRepository interface {
	Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Product, error)
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepository{
		client: client,
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	p, err := r.client.Product.Create().
		SetPostID(req.PostID).
		SetDescription(req.Description).
		SetPrice(req.Price).
		SetCategory(req.Category).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product", "post_id", req.PostID, "error", err)
		return nil, err
	}
	return utils.ToProduct(p), nil
}

func (r *productRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Product, error) {
	products, err := r.client.Product.Query().
		Where(product.PostID(postID)).
		Order(product.ByDescription()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Product, len(products))
	for i, p := range products {
		result[i] = utils.ToProduct(p)
	}
	return result, nil
}
