package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/promowatch/promo-tracker/internal/classifier"
	"github.com/promowatch/promo-tracker/internal/ocr"
)

// runocr is a debug tool: OCR one catalog image and report whether the
// classifier would keep it.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ocrx := ocr.NewExtractor(ocr.Config{
		Tesseract:           os.Getenv("TESSERACT_BIN"),
		TesseractLang:       os.Getenv("TESSERACT_LANG"),
		TessdataDir:         os.Getenv("TESSDATA_PREFIX"),
		EnableTSVConfidence: true,
		PSM:                 6,
	}, logger)

	start := time.Now()
	res, err := ocrx.Extract(ctx, path)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("ocr OK",
		"path", path,
		"method", res.Method,
		"language", res.Language,
		"confidence", res.Confidence,
		"warnings", len(res.Warnings),
		"is_catalog", classifier.IsCatalog(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	os.Stdout.WriteString(res.Text + "\n")
}
