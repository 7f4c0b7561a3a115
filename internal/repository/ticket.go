package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, event_id, user_id, code, state, issued_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Master.ExecContext(
		ctx, query, t.ID, t.EventID, t.UserID, t.Code, t.State, t.IssuedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique violation on code: negligible odds, but the constraint
			// is the second line of defense. The issuer retries with a
			// fresh code.
			return domain.ErrCodeCollision
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

// Redeem flips a ticket from issued to redeemed as one conditional update.
// Two scanners racing on the same code both reach the database, but the
// state predicate lets exactly one of them affect a row.
//
// On the losing path the ticket is returned alongside ErrTicketAlreadyRedeemed
// so the caller can report the original redemption time.
//
// Runs without the retry wrapper: replaying the update after an ambiguous
// failure would misreport a fresh win as an already-used ticket.
func (r *TicketRepository) Redeem(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `UPDATE tickets
			  SET state = $2, redeemed_at = now()
			  WHERE code = $1 AND state = $3
			  RETURNING id, event_id, user_id, code, state, issued_at, redeemed_at`

	var t domain.Ticket
	err := r.db.Master.QueryRowContext(
		ctx, query, code, domain.TicketStateRedeemed, domain.TicketStateIssued,
	).Scan(&t.ID, &t.EventID, &t.UserID, &t.Code, &t.State, &t.IssuedAt, &t.RedeemedAt)
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("redeem ticket: %w", err)
	}

	// Zero rows: the code is unknown or the ticket was already redeemed.
	ticket, err := r.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return nil, domain.ErrInvalidCode
		}
		return nil, fmt.Errorf("classify redeem: %w", err)
	}

	return ticket, domain.ErrTicketAlreadyRedeemed
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `SELECT id, event_id, user_id, code, state, issued_at, redeemed_at
			  FROM tickets
			  WHERE code=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("get ticket by code: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(&t.ID, &t.EventID, &t.UserID, &t.Code, &t.State, &t.IssuedAt, &t.RedeemedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, user_id, code, state, issued_at, redeemed_at
			  FROM tickets
			  WHERE user_id = $1
			  ORDER BY issued_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.EventID, &t.UserID, &t.Code, &t.State, &t.IssuedAt, &t.RedeemedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, user_id, code, state, issued_at, redeemed_at
			  FROM tickets
			  WHERE event_id = $1
			  ORDER BY issued_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.EventID, &t.UserID, &t.Code, &t.State, &t.IssuedAt, &t.RedeemedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
