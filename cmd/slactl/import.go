package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spec-kit/sla-dashboard/internal/config"
	"github.com/spec-kit/sla-dashboard/internal/loader"
	"github.com/spec-kit/sla-dashboard/internal/observability"
	"github.com/spec-kit/sla-dashboard/internal/persistence"
	"github.com/spec-kit/sla-dashboard/internal/repository"
	"github.com/spec-kit/sla-dashboard/internal/service"
)

func runImport(args []string, stdout io.Writer) error {
	fs := newFlagSet("import", stdout)
	dataDir := fs.String("data-dir", "data", "directory holding datacenters.csv and tickets.csv")
	dsn := fs.String("dsn", os.Getenv("POSTGRES_DSN"), "Postgres DSN; empty validates only")
	replace := fs.Bool("replace", false, "replace existing rows instead of seeding empty tables")
	migrate := fs.Bool("migrate", true, "apply SQL migrations before importing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dsn == "" {
		ds, err := loader.LoadDir(*dataDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d datacenters, %d tickets (validated, not stored)\n", *dataDir, len(ds.Datacenters), len(ds.Tickets))
		return nil
	}

	logger, err := observability.NewLogger(config.LoggerConfig{Level: "warn"})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, config.PostgresConfig{DSN: *dsn, MaxConns: 2, MinConns: 1}, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if *migrate {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
			return err
		}
	}

	seed := service.NewSeedService(service.SeedDependencies{
		TicketRepo:     repository.NewTicketRepository(pg.PoolHandle()),
		DatacenterRepo: repository.NewDatacenterRepository(pg.PoolHandle()),
		Logger:         logger,
	})
	load := seed.Ensure
	if *replace {
		load = seed.Reload
	}
	result, err := load(ctx, *dataDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "stored %d datacenters, %d tickets\n", result.Datacenters, result.Tickets)
	return nil
}
