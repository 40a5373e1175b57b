// Package pg manages the PostgreSQL connection pool and schema
// migrations.
//
// Connect builds a pgxpool.Pool from environment configuration and
// retries transient startup failures. Migrate applies goose SQL
// migrations from the configured directory, routing goose output
// through the application logger.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
package pg
