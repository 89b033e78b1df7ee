package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// AdvisorRunRepository stores the summarization audit trail.
type AdvisorRunRepository interface {
	Create(ctx context.Context, run *domain.AdvisorRun) error
	ListRecent(ctx context.Context, limit int) ([]domain.AdvisorRun, error)
}

// Fixed-width timestamps keep lexical order equal to time order.
const runTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type advisorRunRepository struct {
	db *sql.DB
}

// NewAdvisorRunRepository builds the repository over a SQLite handle.
func NewAdvisorRunRepository(db *sql.DB) AdvisorRunRepository {
	return &advisorRunRepository{db: db}
}

func (r *advisorRunRepository) Create(ctx context.Context, run *domain.AdvisorRun) error {
	const query = `
        INSERT INTO advisor_runs (id, ts, endpoint, dc_id, latency_ms, status, detail)
        VALUES (?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Timestamp.UTC().Format(runTimestampLayout),
		run.Endpoint,
		run.DcID,
		run.LatencyMs,
		string(run.Status),
		run.Detail,
	)
	return err
}

// ListRecent returns the newest runs first.
func (r *advisorRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.AdvisorRun, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
        SELECT id, ts, endpoint, dc_id, latency_ms, status, detail
        FROM advisor_runs ORDER BY ts DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdvisorRun
	for rows.Next() {
		var (
			run    domain.AdvisorRun
			ts     string
			status string
		)
		if err := rows.Scan(&run.ID, &ts, &run.Endpoint, &run.DcID, &run.LatencyMs, &status, &run.Detail); err != nil {
			return nil, err
		}
		run.Timestamp, err = time.Parse(runTimestampLayout, ts)
		if err != nil {
			return nil, err
		}
		run.Status = domain.AdvisorRunStatus(status)
		result = append(result, run)
	}
	return result, rows.Err()
}
