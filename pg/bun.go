// Package pg opens the bun database over a pgx pool and holds shared
// PostgreSQL helpers: query hooks and error details for logging.
package pg

import (
	"github.com/code19m/errx"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rise-and-shine/docview/pg/hooks"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bunotel"
)

// NewBunDB creates a new Bun database connection with the provided configuration.
func NewBunDB(cfg Config) (*bun.DB, error) {
	pool, err := NewPool(cfg)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	sqldb := stdlib.OpenDBFromPool(pool)

	bunDB := bun.NewDB(sqldb, pgdialect.New())
	applyHooks(bunDB, cfg)

	return bunDB, nil
}

// applyHooks adds the query logging hook and the OpenTelemetry hook.
// Query logging only prints every statement when debug is set; failed and slow
// queries are always reported.
func applyHooks(db *bun.DB, cfg Config) {
	db.AddQueryHook(
		hooks.NewDebugHook(
			hooks.WithVerbose(cfg.Debug),
			hooks.WithSlowQueryThreshold(cfg.SlowQueryThreshold),
		),
	)

	db.AddQueryHook(bunotel.NewQueryHook(bunotel.WithDBName(cfg.Database)))
}
