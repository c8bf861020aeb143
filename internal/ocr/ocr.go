package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/promowatch/promo-tracker/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "por"

	TessdataDir         string
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	WorkDir string // scratch dir for downloaded images, default os.TempDir()
}

type ExtractionResult struct {
	Text       string
	Method     string // "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "por"
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract runs tesseract on an image file.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting ocr extraction", "path", path, "ext", ext)
	if !constants.IsImageExt(ext) {
		e.logger.Error("unsupported ocr extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	res, err := e.extractImage(ctx, path)
	res.Duration = time.Since(start)
	return res, err
}

// ExtractBytes writes the image to a scratch file and runs Extract on it.
// ext is the image extension without the dot ("jpg", "png", ...).
func (e *Extractor) ExtractBytes(ctx context.Context, data []byte, ext string) (ExtractionResult, error) {
	ext = constants.NormalizeExt(ext)
	if !constants.IsImageExt(ext) {
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	f, err := os.CreateTemp(e.cfg.WorkDir, "promo-ocr-*."+ext)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("ocr scratch file: %w", err)
	}
	path := f.Name()
	defer func() {
		_ = os.Remove(path)
	}()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return ExtractionResult{}, fmt.Errorf("ocr scratch write: %w", err)
	}
	if err := f.Close(); err != nil {
		return ExtractionResult{}, fmt.Errorf("ocr scratch close: %w", err)
	}
	return e.Extract(ctx, path)
}
