package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/promowatch/promo-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	markets    repository.MarketRepository
	promotions repository.PromotionRepository
	posts      repository.PostRepository
	products   repository.ProductRepository
	logger     *slog.Logger
}

func NewService(
	markets repository.MarketRepository,
	promotions repository.PromotionRepository,
	posts repository.PostRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		markets:    markets,
		promotions: promotions,
		posts:      posts,
		products:   products,
		logger:     logger,
	}
}

// ExportPromotionsXLSX returns an XLSX workbook (as bytes) of every product in
// promotions overlapping the given date window, one row per product.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all promotions of all markets.
func (s *Service) ExportPromotionsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	markets, err := s.markets.ListMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Promotions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Market",
		"Promotion",
		"Start Date",
		"End Date",
		"Post Code",
		"Product",
		"Price",
		"Category",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	for _, m := range markets {
		promos, err := s.promotions.ListByMarket(ctx, m.ID, fromDate, toDate)
		if err != nil {
			return nil, fmt.Errorf("query promotions for %s: %w", m.Handle, err)
		}
		for _, p := range promos {
			title := p.Title
			if title == "" {
				title = "—"
			}
			posts, err := s.posts.ListByPromotion(ctx, p.ID)
			if err != nil {
				return nil, fmt.Errorf("query posts: %w", err)
			}
			for _, post := range posts {
				products, err := s.products.ListByPost(ctx, post.ID)
				if err != nil {
					return nil, fmt.Errorf("query products: %w", err)
				}
				for _, prod := range products {
					write(1, row, m.Name)
					write(2, row, title)
					write(3, row, p.StartDate.Format("2006-01-02"))
					write(4, row, p.EndDate.Format("2006-01-02"))
					write(5, row, post.Code)
					write(6, row, truncate(prod.Description, 140))
					write(7, row, prod.Price)
					write(8, row, prod.Category)
					row++
				}
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // market
	_ = f.SetColWidth(sheet, "B", "B", 28) // promotion
	_ = f.SetColWidth(sheet, "C", "D", 12) // dates
	_ = f.SetColWidth(sheet, "E", "E", 14) // post code
	_ = f.SetColWidth(sheet, "F", "F", 48) // product
	_ = f.SetColWidth(sheet, "G", "G", 10) // price
	_ = f.SetColWidth(sheet, "H", "H", 14) // category

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
