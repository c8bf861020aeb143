package promos

import (
	"testing"
	"time"

	"github.com/promowatch/promo-tracker/internal/utils"
)

func day(s string) time.Time {
	t, err := utils.ParseYMD(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMergeByPeriod_SameWindowMerges(t *testing.T) {
	in := []CandidatePromotion{
		{
			MarketName: "Mercado Bom",
			Title:      "Ofertas da semana",
			StartDate:  day("2025-01-15"),
			EndDate:    day("2025-01-20"),
			Posts:      []CandidatePost{{Code: "A1"}},
		},
		{
			MarketName: "Mercado Bom",
			StartDate:  day("2025-01-15"),
			EndDate:    day("2025-01-20"),
			Posts:      []CandidatePost{{Code: "A2"}, {Code: "A3"}},
		},
	}

	out := MergeByPeriod(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 merged promotion, got %d", len(out))
	}
	if len(out[0].Posts) != 3 {
		t.Errorf("expected 3 posts after merge, got %d", len(out[0].Posts))
	}
	if out[0].Title != "Ofertas da semana" {
		t.Errorf("title lost in merge: %q", out[0].Title)
	}
}

func TestMergeByPeriod_OverlappingWindowsStaySeparate(t *testing.T) {
	in := []CandidatePromotion{
		{MarketName: "Mercado Bom", StartDate: day("2025-01-15"), EndDate: day("2025-01-20")},
		{MarketName: "Mercado Bom", StartDate: day("2025-01-15"), EndDate: day("2025-01-21")},
	}

	out := MergeByPeriod(in)
	if len(out) != 2 {
		t.Fatalf("overlapping-but-distinct windows must not merge: got %d", len(out))
	}
}

func TestMergeByPeriod_DifferentMarketsStaySeparate(t *testing.T) {
	in := []CandidatePromotion{
		{MarketName: "Mercado Bom", StartDate: day("2025-01-15"), EndDate: day("2025-01-20")},
		{MarketName: "Super Preço", StartDate: day("2025-01-15"), EndDate: day("2025-01-20")},
	}

	out := MergeByPeriod(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 promotions, got %d", len(out))
	}
}

func TestMergeByPeriod_Idempotent(t *testing.T) {
	in := []CandidatePromotion{
		{MarketName: "A", StartDate: day("2025-01-01"), EndDate: day("2025-01-02"), Posts: []CandidatePost{{Code: "P1"}}},
		{MarketName: "A", StartDate: day("2025-01-01"), EndDate: day("2025-01-02"), Posts: []CandidatePost{{Code: "P2"}}},
		{MarketName: "B", StartDate: day("2025-01-01"), EndDate: day("2025-01-02"), Posts: []CandidatePost{{Code: "P3"}}},
	}

	once := MergeByPeriod(in)
	twice := MergeByPeriod(once)

	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].MarketName != twice[i].MarketName || len(once[i].Posts) != len(twice[i].Posts) {
			t.Errorf("entry %d changed on re-merge: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestMergeByPeriod_DoesNotMutateInput(t *testing.T) {
	in := []CandidatePromotion{
		{MarketName: "A", StartDate: day("2025-01-01"), EndDate: day("2025-01-02"), Posts: []CandidatePost{{Code: "P1"}}},
		{MarketName: "A", StartDate: day("2025-01-01"), EndDate: day("2025-01-02"), Posts: []CandidatePost{{Code: "P2"}}},
	}

	_ = MergeByPeriod(in)
	if len(in[0].Posts) != 1 {
		t.Fatalf("input mutated: first candidate has %d posts", len(in[0].Posts))
	}
}
