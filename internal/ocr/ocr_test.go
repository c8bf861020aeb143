package ocr

import (
	"context"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout map[string]string // keyed by last arg ("stdout" run vs "tsv" run)
	err    error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	key := "text"
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return []byte(s.stdout[key]), nil, nil
}

func TestExtractImageNormalizesAndScores(t *testing.T) {
	r := &stubRunner{stdout: map[string]string{
		"text": "OFERTA  VALIDA\r\n\r\n\r\nARROZ 5KG  R$ 22,90\n____\nCARNE BOVINA R$ 39,90\n",
	}}
	e := NewExtractor(Config{}, nil)
	e.runner = r

	res, err := e.Extract(context.Background(), "/tmp/folheto.jpg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Contains(res.Text, "\r") {
		t.Errorf("CRLF not normalized: %q", res.Text)
	}
	if strings.Contains(res.Text, "____") {
		t.Errorf("box noise not stripped: %q", res.Text)
	}
	if !strings.Contains(res.Text, "ARROZ 5KG R$ 22,90") {
		t.Errorf("double spaces not collapsed: %q", res.Text)
	}
	if res.Method != "image-ocr" {
		t.Errorf("method = %q", res.Method)
	}
	if res.Language != "por" {
		t.Errorf("language = %q, want por", res.Language)
	}
	// currency + amount markers present, so heuristic should clear the base
	if res.Confidence <= 0.2 {
		t.Errorf("confidence = %v, want > 0.2", res.Confidence)
	}
}

func TestExtractRejectsNonImage(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &stubRunner{}
	if _, err := e.Extract(context.Background(), "/tmp/catalog.pdf"); err == nil {
		t.Fatal("expected error for pdf input")
	}
}

func TestTSVConfidenceBlend(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tOFERTA",
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tARROZ",
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t-1\t",
	}, "\n")
	r := &stubRunner{stdout: map[string]string{
		"text": "OFERTA ARROZ R$ 9,99",
		"tsv":  tsv,
	}}
	e := NewExtractor(Config{EnableTSVConfidence: true, PSM: 6}, nil)
	e.runner = r

	res, err := e.Extract(context.Background(), "/tmp/folheto.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// mean word conf is 0.8; blended with heuristic it must stay well above it alone
	if res.Confidence < 0.6 || res.Confidence > 1.0 {
		t.Errorf("confidence = %v, want in [0.6, 1.0]", res.Confidence)
	}
	if len(r.calls) != 2 {
		t.Fatalf("expected 2 tesseract invocations, got %d", len(r.calls))
	}
	last := r.calls[1]
	if last[len(last)-1] != "tsv" {
		t.Errorf("second call missing tsv mode: %v", last)
	}
}
