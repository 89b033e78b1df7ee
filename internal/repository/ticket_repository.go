package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Count(ctx context.Context) (int, error)
	Replace(ctx context.Context, tickets []domain.Ticket) error
}

var ticketColumns = []string{"ticket_id", "dc_id", "doc_category", "created_at", "due_date", "owner", "status", "priority"}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// List returns every ticket in insertion order.
func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT ticket_id, dc_id, doc_category, created_at, due_date, owner, status, priority
        FROM tickets ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT ticket_id, dc_id, doc_category, created_at, due_date, owner, status, priority
        FROM tickets WHERE ticket_id=$1`
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&n)
	return n, err
}

// Replace swaps the table content for tickets in a single transaction.
func (r *ticketRepository) Replace(ctx context.Context, tickets []domain.Ticket) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM tickets`); err != nil {
			return err
		}
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"tickets"}, ticketColumns,
			pgx.CopyFromSlice(len(tickets), func(i int) ([]any, error) {
				t := tickets[i]
				return []any{t.ID, t.DcID, t.DocCategory, t.CreatedAt, t.DueDate, t.Owner, string(t.Status), string(t.Priority)}, nil
			}))
		return err
	})
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.DcID,
		&ticket.DocCategory,
		&ticket.CreatedAt,
		&ticket.DueDate,
		&ticket.Owner,
		&ticket.Status,
		&ticket.Priority,
	)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		ticket.CreatedAt = ticket.CreatedAt.UTC()
		ticket.DueDate = ticket.DueDate.UTC()
		result = append(result, ticket)
	}
	return result, rows.Err()
}
