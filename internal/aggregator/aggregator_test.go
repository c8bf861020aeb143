package aggregator

import (
	"strings"
	"testing"
)

func TestGroupByMarket_SingleMarket(t *testing.T) {
	posts := []CatalogPost{
		{Code: "AAA111", MarketHandle: "mercadobom", MarketName: "Mercado Bom", Text: "arroz R$ 19,90"},
		{Code: "BBB222", MarketHandle: "mercadobom", MarketName: "Mercado Bom", Text: "feijão R$ 7,49"},
		{Code: "CCC333", MarketHandle: "mercadobom", MarketName: "Mercado Bom", Text: "leite R$ 4,99"},
	}

	blocks := GroupByMarket(posts)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.MarketHandle != "mercadobom" || b.MarketName != "Mercado Bom" {
		t.Errorf("unexpected market: %+v", b)
	}
	if len(b.Posts) != 3 {
		t.Errorf("expected 3 posts, got %d", len(b.Posts))
	}

	// every post code appears as a delimiter
	for _, p := range posts {
		want := PostDelimiter + " " + p.Code
		if !strings.Contains(b.Text, want) {
			t.Errorf("block text missing delimiter %q", want)
		}
	}

	// post order is preserved
	i1 := strings.Index(b.Text, "AAA111")
	i2 := strings.Index(b.Text, "BBB222")
	i3 := strings.Index(b.Text, "CCC333")
	if !(i1 < i2 && i2 < i3) {
		t.Errorf("post order not preserved: %d %d %d", i1, i2, i3)
	}
}

func TestGroupByMarket_MultipleMarkets(t *testing.T) {
	posts := []CatalogPost{
		{Code: "A1", MarketHandle: "m1", MarketName: "Market One", Text: "x"},
		{Code: "B1", MarketHandle: "m2", MarketName: "Market Two", Text: "y"},
		{Code: "A2", MarketHandle: "m1", MarketName: "Market One", Text: "z"},
	}

	blocks := GroupByMarket(posts)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	// first-seen market order
	if blocks[0].MarketHandle != "m1" || blocks[1].MarketHandle != "m2" {
		t.Errorf("unexpected block order: %s, %s", blocks[0].MarketHandle, blocks[1].MarketHandle)
	}
	if len(blocks[0].Posts) != 2 || len(blocks[1].Posts) != 1 {
		t.Errorf("unexpected grouping: %d, %d", len(blocks[0].Posts), len(blocks[1].Posts))
	}
	if strings.Contains(blocks[1].Text, "A1") || strings.Contains(blocks[1].Text, "z") {
		t.Errorf("cross-market leakage in block text: %q", blocks[1].Text)
	}
}

func TestGroupByMarket_Empty(t *testing.T) {
	if blocks := GroupByMarket(nil); len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
}
