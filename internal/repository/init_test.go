package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/promowatch/promo-tracker/internal/common"
)

func TestInitDatabaseInMemory(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := InitDatabase(ctx, &common.Config{}, true, logger)
	if err != nil {
		t.Fatalf("InitDatabase: %v", err)
	}
	defer db.Cleanup()

	markets := NewMarketRepository(db.Client, logger)

	created, err := markets.CreateMarket(ctx, "mercadobom", "Mercado Bom Preço", "Fortaleza")
	if err != nil {
		t.Fatalf("CreateMarket: %v", err)
	}

	found, err := markets.FindByHandle(ctx, "mercadobom")
	if err != nil {
		t.Fatalf("FindByHandle: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("FindByHandle returned id %s, want %s", found.ID, created.ID)
	}
	if found.Name != "Mercado Bom Preço" {
		t.Errorf("FindByHandle returned name %q", found.Name)
	}

	if _, err := markets.FindByName(ctx, "nope"); !errors.Is(err, common.ErrMarketNotFound) {
		t.Errorf("FindByName(unknown) error = %v, want ErrMarketNotFound", err)
	}
}
