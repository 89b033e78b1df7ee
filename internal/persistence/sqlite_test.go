package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/config"
)

func TestNewSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.db")

	db, err := NewSQLite(ctx, config.SQLiteConfig{Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	var n int
	if err := db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM advisor_runs`).Scan(&n); err != nil {
		t.Fatalf("advisor_runs missing: %v", err)
	}

	// Reopening an existing database must not fail on the schema.
	again, err := NewSQLite(ctx, config.SQLiteConfig{Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	again.Close()
}

func TestNilHandlesReportUnconfigured(t *testing.T) {
	ctx := context.Background()
	var s *SQLite
	if err := s.Ping(ctx); err == nil {
		t.Error("nil sqlite should fail ping")
	}
	var p *Postgres
	if err := p.Ping(ctx); err == nil {
		t.Error("nil postgres should fail ping")
	}
	var r *Redis
	if err := r.Ping(ctx); err == nil {
		t.Error("nil redis should fail ping")
	}
	if _, err := r.MarkOnce(ctx, "k", 0); err == nil {
		t.Error("nil redis should fail MarkOnce")
	}
	if err := r.Forget(ctx, "k"); err == nil {
		t.Error("nil redis should fail Forget")
	}
}

func TestNewPostgresRequiresDSN(t *testing.T) {
	if _, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
