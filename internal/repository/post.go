package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/gen/ent/post"
	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/utils"
)

// CreatePostRequest wraps parameters for creating a post row.
type CreatePostRequest struct {
	PromotionID uuid.UUID
	Code        string
	Caption     string
	OCRText     string
	PublishedAt time.Time
	ExtractedAt time.Time
}

type PostRepository interface {
	// FindByCode looks up a post by its unique external code.
	// Returns common.ErrNotFound when absent.
	FindByCode(ctx context.Context, code string) (*entity.Post, error)
	Create(ctx context.Context, req *CreatePostRequest) (*entity.Post, error)
	ListByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*entity.Post, error)
}

type postRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPostRepository(client *ent.Client, logger *slog.Logger) PostRepository {
	return &postRepository{
		client: client,
		logger: logger,
	}
}

func (r *postRepository) FindByCode(ctx context.Context, code string) (*entity.Post, error) {
	p, err := r.client.Post.Query().
		Where(post.Code(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToPost(p), nil
}

func (r *postRepository) Create(ctx context.Context, req *CreatePostRequest) (*entity.Post, error) {
	extractedAt := req.ExtractedAt
	if extractedAt.IsZero() {
		extractedAt = time.Now().UTC()
	}
	builder := r.client.Post.Create().
		SetPromotionID(req.PromotionID).
		SetCode(req.Code).
		SetPublishedAt(req.PublishedAt).
		SetExtractedAt(extractedAt)
	if req.Caption != "" {
		builder = builder.SetCaption(req.Caption)
	}
	if req.OCRText != "" {
		builder = builder.SetOcrText(req.OCRText)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create post", "code", req.Code, "error", err)
		return nil, err
	}
	return utils.ToPost(p), nil
}

func (r *postRepository) ListByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*entity.Post, error) {
	posts, err := r.client.Post.Query().
		Where(post.PromotionID(promotionID)).
		Order(post.ByPublishedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Post, len(posts))
	for i, p := range posts {
		result[i] = utils.ToPost(p)
	}
	return result, nil
}
