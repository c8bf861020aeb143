package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/export"
	"github.com/promowatch/promo-tracker/internal/llm/openai"
	"github.com/promowatch/promo-tracker/internal/notifier"
	"github.com/promowatch/promo-tracker/internal/ocr"
	processor "github.com/promowatch/promo-tracker/internal/pipeline"
	"github.com/promowatch/promo-tracker/internal/repository"
	"github.com/promowatch/promo-tracker/internal/scraper"
)

func main() {
	var (
		dateFlag   = flag.String("date", "", "target date YYYY-MM-DD (default: today UTC)")
		inmem      = flag.Bool("inmem", false, "use an in-memory sqlite database instead of DB_URL")
		skipNotify = flag.Bool("skip-notify", false, "do not send the mail digest")
		outPath    = flag.String("out", "", "write an XLSX of the target date's promotions to this path")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	target := time.Now().UTC()
	if *dateFlag != "" {
		t, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			logger.Error("invalid -date, want YYYY-MM-DD", "arg", *dateFlag, "error", err)
			os.Exit(2)
		}
		target = t
	}

	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		logger.Error("DB_URL is required (or pass -inmem)")
		os.Exit(2)
	}
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(2)
	}
	if !*skipNotify {
		if err := cfg.ValidateMail(); err != nil {
			logger.Error("mail config invalid (pass -skip-notify to run without the digest)", "error", err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	markets := repository.NewMarketRepository(db.Client, logger)
	promotions := repository.NewPromotionRepository(db.Client, logger)
	posts := repository.NewPostRepository(db.Client, logger)
	products := repository.NewProductRepository(db.Client, logger)

	scrapeClient := scraper.NewClient(cfg.Scraper, logger)
	ocrx := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.Lang,
		TessdataDir:         cfg.OCR.TessdataDir,
		WorkDir:             cfg.OCR.WorkDir,
		EnableTSVConfidence: true,
		PSM:                 6,
	}, logger)
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	var notify processor.Notifier
	if !*skipNotify {
		notify = notifier.NewService(markets, promotions, posts, products,
			notifier.NewSMTPMailer(cfg.Mail), logger)
	}

	p := processor.NewProcessor(
		markets,
		processor.NewScrapeStage(scrapeClient, scrapeClient, ocrx, logger),
		processor.NewExtractStage(extractor, logger),
		processor.NewPersistStage(markets, promotions, posts, products, logger),
		notify,
		logger,
	)

	report, err := p.Run(ctx, processor.RunOptions{
		TargetDate: target,
		SkipNotify: *skipNotify,
	})
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	printSummary(report)

	if *outPath != "" {
		svc := export.NewService(markets, promotions, posts, products, logger)
		data, err := svc.ExportPromotionsXLSX(ctx, &target, &target)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			logger.Error("write xlsx", "path", *outPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", *outPath, len(data))
	}

	if !report.Success {
		os.Exit(1)
	}
}

func printSummary(r processor.RunReport) {
	fmt.Printf("run %s: %d markets, %d posts fetched, %d catalogs\n",
		r.TargetDate.Format("2006-01-02"), r.Markets, r.PostsFetched, r.CatalogPosts)
	fmt.Printf("extracted %d candidates, %d after merge (tokens: %d prompt / %d completion)\n",
		r.Candidates, r.Merged, r.PromptTokens, r.CompletionTokens)
	fmt.Printf("persisted: %d promotions created, %d reused, %d posts created, %d skipped, %d products\n",
		r.PromotionsCreated, r.PromotionsReused, r.PostsCreated, r.PostsSkipped, r.ProductsCreated)
	if r.NotifySent {
		fmt.Println("digest sent")
	}
	for _, e := range r.Errors {
		fmt.Printf("error %s\n", e)
	}
	fmt.Printf("done in %s, success=%v\n", r.Duration.Round(time.Millisecond), r.Success)
}
