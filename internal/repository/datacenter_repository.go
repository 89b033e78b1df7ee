package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// DatacenterRepository manages datacenter persistence.
type DatacenterRepository interface {
	List(ctx context.Context) ([]domain.Datacenter, error)
	GetByID(ctx context.Context, dcID string) (*domain.Datacenter, error)
	Count(ctx context.Context) (int, error)
	Replace(ctx context.Context, dcs []domain.Datacenter) error
}

type datacenterRepository struct {
	pool *pgxpool.Pool
}

// NewDatacenterRepository builds the repository.
func NewDatacenterRepository(pool *pgxpool.Pool) DatacenterRepository {
	return &datacenterRepository{pool: pool}
}

func (r *datacenterRepository) List(ctx context.Context) ([]domain.Datacenter, error) {
	rows, err := r.pool.Query(ctx, `SELECT dc_id, region, area_sqft, manager FROM datacenters ORDER BY dc_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Datacenter
	for rows.Next() {
		var dc domain.Datacenter
		if err := rows.Scan(&dc.DcID, &dc.Region, &dc.AreaSqft, &dc.Manager); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

func (r *datacenterRepository) GetByID(ctx context.Context, dcID string) (*domain.Datacenter, error) {
	var dc domain.Datacenter
	err := r.pool.QueryRow(ctx, `SELECT dc_id, region, area_sqft, manager FROM datacenters WHERE dc_id=$1`, dcID).
		Scan(&dc.DcID, &dc.Region, &dc.AreaSqft, &dc.Manager)
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

func (r *datacenterRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM datacenters`).Scan(&n)
	return n, err
}

func (r *datacenterRepository) Replace(ctx context.Context, dcs []domain.Datacenter) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM datacenters`); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		for _, dc := range dcs {
			batch.Queue(`INSERT INTO datacenters (dc_id, region, area_sqft, manager) VALUES ($1,$2,$3,$4)`,
				dc.DcID, dc.Region, dc.AreaSqft, dc.Manager)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
