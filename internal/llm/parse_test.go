package llm

import (
	"testing"
	"time"

	"github.com/promowatch/promo-tracker/constants"
)

func testRequest() ExtractRequest {
	return ExtractRequest{
		MarketName:   "Mercado Bom",
		MarketHandle: "mercadobom",
		TargetDate:   time.Date(2025, 1, 15, 13, 45, 0, 0, time.UTC),
		Posts: []SourcePost{
			{Code: "AAA111", Text: "arroz R$ 19,90", PublishedAt: time.Date(2025, 1, 14, 9, 0, 0, 0, time.UTC)},
			{Code: "BBB222", Text: "detergente R$ 2,49"},
		},
		AllowedCategories: constants.AsStringSlice(),
	}
}

func TestParseCandidates_WellFormed(t *testing.T) {
	raw := []byte(`[
		{
			"market_name": "Mercado Bom",
			"title": "Ofertas da semana",
			"start_date": "15/01/2025",
			"end_date": "20/01/2025",
			"posts": [
				{"post_code": "AAA111", "products": [
					{"description": "Arroz tipo 1 5kg", "price": "R$ 19,90", "category": "Grocery"}
				]},
				{"post_code": "BBB222", "products": [
					{"description": "Detergente 500ml", "price": "R$ 2,49", "category": "Cleaning"}
				]}
			]
		}
	]`)

	cands, err := ParseCandidates(raw, testRequest(), nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	c := cands[0]
	if c.StartDate.Format("2006-01-02") != "2025-01-15" || c.EndDate.Format("2006-01-02") != "2025-01-20" {
		t.Errorf("unexpected window: %s .. %s", c.StartDate, c.EndDate)
	}
	if len(c.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(c.Posts))
	}
	// re-association restored the original OCR text and publish time
	if c.Posts[0].Text != "arroz R$ 19,90" {
		t.Errorf("post not re-associated: %+v", c.Posts[0])
	}
	if c.Posts[0].PublishedAt.IsZero() {
		t.Error("publish time lost in re-association")
	}
	if c.Posts[1].Products[0].Category != constants.Cleaning {
		t.Errorf("category = %s, want Cleaning", c.Posts[1].Products[0].Category)
	}
}

func TestParseCandidates_FencedResponse(t *testing.T) {
	raw := []byte("```json\n[{\"posts\": [{\"post_code\": \"AAA111\"}]}]\n```")
	cands, err := ParseCandidates(raw, testRequest(), nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if len(cands) != 1 || len(cands[0].Posts) != 1 {
		t.Fatalf("unexpected result: %+v", cands)
	}
}

func TestParseCandidates_NotAnArray(t *testing.T) {
	for _, raw := range []string{
		`{"posts": []}`,
		`I could not find any promotions in the text.`,
		``,
	} {
		if _, err := ParseCandidates([]byte(raw), testRequest(), nil); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseCandidates_DateFallbacks(t *testing.T) {
	req := testRequest()

	// absent dates: target date start, one-day duration
	cands, err := ParseCandidates([]byte(`[{"posts": [{"post_code": "AAA111"}]}]`), req, nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if got := cands[0].StartDate.Format("2006-01-02"); got != "2025-01-15" {
		t.Errorf("start = %s, want target date", got)
	}
	if got := cands[0].EndDate.Format("2006-01-02"); got != "2025-01-16" {
		t.Errorf("end = %s, want target date + 1", got)
	}

	// malformed dates fail closed to the target date with zero duration
	cands, err = ParseCandidates(
		[]byte(`[{"start_date": "semana toda", "end_date": "??", "posts": [{"post_code": "AAA111"}]}]`), req, nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if !cands[0].StartDate.Equal(cands[0].EndDate) {
		t.Errorf("expected zero-duration window, got %s..%s", cands[0].StartDate, cands[0].EndDate)
	}
	if got := cands[0].StartDate.Format("2006-01-02"); got != "2025-01-15" {
		t.Errorf("start = %s, want target date", got)
	}
}

func TestParseCandidates_UnknownPostCodeDropped(t *testing.T) {
	raw := []byte(`[{"posts": [
		{"post_code": "AAA111"},
		{"post_code": "HALLUCINATED"}
	]}]`)
	cands, err := ParseCandidates(raw, testRequest(), nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if len(cands[0].Posts) != 1 || cands[0].Posts[0].Code != "AAA111" {
		t.Errorf("expected only the known post, got %+v", cands[0].Posts)
	}
}

func TestParseCandidates_UnknownCategoryFallsBackToOther(t *testing.T) {
	raw := []byte(`[{"posts": [{"post_code": "AAA111", "products": [
		{"description": "Pilha AA", "price": "R$ 9,99", "category": "Eletrônicos"}
	]}]}]`)
	cands, err := ParseCandidates(raw, testRequest(), nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if got := cands[0].Posts[0].Products[0].Category; got != constants.Other {
		t.Errorf("category = %s, want Other", got)
	}
}

func TestParseCandidates_NumericPriceCoerced(t *testing.T) {
	raw := []byte(`[{"posts": [{"post_code": "AAA111", "products": [
		{"description": "Banana prata kg", "price": 5.99, "category": "Produce"}
	]}]}]`)
	cands, err := ParseCandidates(raw, testRequest(), nil)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if got := cands[0].Posts[0].Products[0].Price; got != "5.99" {
		t.Errorf("price = %q, want \"5.99\"", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"[]", "[]"},
		{"```json\n[]\n```", "[]"},
		{"```\n[1]\n```", "[1]"},
		{"  ```json\n[]\n```  ", "[]"},
	}
	for _, c := range cases {
		if got := StripCodeFences(c.in); got != c.want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
