package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/internal/common"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres pool or, when inmem is set,
// an in-memory SQLite database with the schema migrated. The in-memory mode is
// for local runs and demos; the scheduled pipeline always talks to Postgres.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:promotracker?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			return nil, err
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			logger.Error("failed to create in-memory schema", "error", err)
			return nil, err
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}
