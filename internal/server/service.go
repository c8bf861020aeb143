package server

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	promospb "github.com/promowatch/promo-tracker/gen/proto/promos/v1"
	"github.com/promowatch/promo-tracker/internal/repository"
)

type PromosService struct {
	promospb.UnimplementedPromosServiceServer
	markets    repository.MarketRepository
	promotions repository.PromotionRepository
	logger     *zap.Logger
}

func NewPromosService(markets repository.MarketRepository, promotions repository.PromotionRepository, logger *zap.Logger) *PromosService {
	return &PromosService{markets: markets, promotions: promotions, logger: logger}
}

// CreateMarket registers a supermarket account. Markets are curated through
// this surface only; the ingestion pipeline never creates them.
func (s *PromosService) CreateMarket(ctx context.Context, req *promospb.CreateMarketRequest) (*promospb.CreateMarketResponse, error) {
	if req.GetHandle() == "" {
		return nil, status.Error(codes.InvalidArgument, "handle is required")
	}
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	m, err := s.markets.CreateMarket(ctx, req.GetHandle(), req.GetName(), req.GetLocation())
	if err != nil {
		s.logger.Warn("create market failed", zap.String("handle", req.GetHandle()), zap.Error(err))
		return nil, status.Error(codes.Internal, "create market failed")
	}
	return &promospb.CreateMarketResponse{Market: toPBMarket(m)}, nil
}

func (s *PromosService) ListMarkets(ctx context.Context, _ *promospb.ListMarketsRequest) (*promospb.ListMarketsResponse, error) {
	ms, err := s.markets.ListMarkets(ctx)
	if err != nil {
		s.logger.Warn("list markets failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list markets failed")
	}
	out := make([]*promospb.Market, 0, len(ms))
	for _, m := range ms {
		out = append(out, toPBMarket(m))
	}
	return &promospb.ListMarketsResponse{Markets: out}, nil
}

func (s *PromosService) ListPromotions(ctx context.Context, req *promospb.ListPromotionsRequest) (*promospb.ListPromotionsResponse, error) {
	marketID, err := uuid.Parse(req.GetMarketId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "market_id must be a UUID")
	}

	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}

	fromPtr, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	toPtr, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	promos, err := s.promotions.ListByMarket(ctx, marketID, fromPtr, toPtr)
	if err != nil {
		s.logger.Warn("list promotions failed", zap.String("market_id", marketID.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "list promotions failed")
	}

	out := make([]*promospb.Promotion, 0, len(promos))
	for _, p := range promos {
		out = append(out, toPBPromotion(p))
	}
	return &promospb.ListPromotionsResponse{Promotions: out}, nil
}
