package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/promos"
	"github.com/promowatch/promo-tracker/internal/repository"
	"github.com/promowatch/promo-tracker/internal/utils"
)

type PersistStage struct {
	Markets    repository.MarketRepository
	Promotions repository.PromotionRepository
	Posts      repository.PostRepository
	Products   repository.ProductRepository
	Logger     *slog.Logger
}

func NewPersistStage(
	markets repository.MarketRepository,
	promotions repository.PromotionRepository,
	posts repository.PostRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) *PersistStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &PersistStage{
		Markets:    markets,
		Promotions: promotions,
		Posts:      posts,
		Products:   products,
		Logger:     logger,
	}
}

// PersistResult counts what the stage did. Skipped posts are posts whose code
// already existed; re-running the same input yields zero created rows.
type PersistResult struct {
	PromotionsCreated int
	PromotionsReused  int
	PostsCreated      int
	PostsSkipped      int
	ProductsCreated   int
	Errors            []StageError
}

// Run writes candidate promotions with failure isolation at promotion
// granularity: one failed candidate is recorded and the rest still persist.
// Markets are curated out-of-band, so an unknown market name is a hard
// failure for that candidate, never an implicit create.
func (s *PersistStage) Run(ctx context.Context, candidates []promos.CandidatePromotion) PersistResult {
	var res PersistResult
	for _, cand := range candidates {
		if err := s.persistOne(ctx, cand, &res); err != nil {
			res.Errors = append(res.Errors, StageError{
				Stage:   constants.StagePersist,
				Subject: fmt.Sprintf("%s %s..%s", cand.MarketName, utils.ISODate(cand.StartDate), utils.ISODate(cand.EndDate)),
				Err:     err.Error(),
			})
		}
	}
	s.Logger.Info("persist.done",
		"candidates", len(candidates),
		"promotions_created", res.PromotionsCreated,
		"promotions_reused", res.PromotionsReused,
		"posts_created", res.PostsCreated,
		"posts_skipped", res.PostsSkipped,
		"products_created", res.ProductsCreated,
		"errors", len(res.Errors),
	)
	return res
}

func (s *PersistStage) persistOne(ctx context.Context, cand promos.CandidatePromotion, res *PersistResult) error {
	market, err := s.Markets.FindByName(ctx, cand.MarketName)
	if err != nil {
		if errors.Is(err, common.ErrMarketNotFound) {
			return fmt.Errorf("market %q not registered", cand.MarketName)
		}
		return fmt.Errorf("market lookup %q: %w", cand.MarketName, err)
	}

	promo, err := s.Promotions.FindByWindow(ctx, market.ID, cand.StartDate, cand.EndDate)
	switch {
	case err == nil:
		res.PromotionsReused++
	case errors.Is(err, common.ErrNotFound):
		promo, err = s.Promotions.Create(ctx, &repository.CreatePromotionRequest{
			MarketID:  market.ID,
			Title:     cand.Title,
			StartDate: cand.StartDate,
			EndDate:   cand.EndDate,
		})
		if err != nil {
			return fmt.Errorf("create promotion: %w", err)
		}
		res.PromotionsCreated++
	default:
		return fmt.Errorf("promotion lookup: %w", err)
	}

	for _, post := range cand.Posts {
		if _, err := s.Posts.FindByCode(ctx, post.Code); err == nil {
			res.PostsSkipped++
			continue
		} else if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("post lookup %s: %w", post.Code, err)
		}

		created, err := s.Posts.Create(ctx, &repository.CreatePostRequest{
			PromotionID: promo.ID,
			Code:        post.Code,
			Caption:     post.Caption,
			OCRText:     post.Text,
			PublishedAt: post.PublishedAt,
			ExtractedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create post %s: %w", post.Code, err)
		}
		res.PostsCreated++

		for _, prod := range post.Products {
			_, err := s.Products.Create(ctx, &repository.CreateProductRequest{
				PostID:      created.ID,
				Description: prod.Description,
				Price:       utils.ParsePrice(prod.Price),
				Category:    string(prod.Category),
			})
			if err != nil {
				return fmt.Errorf("create product %q: %w", prod.Description, err)
			}
			res.ProductsCreated++
		}
	}
	return nil
}
