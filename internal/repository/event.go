package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, location, event_date, price_cents, seating_enabled, max_tickets, tickets_issued, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Location, e.EventDate,
		e.PriceCents, e.SeatingEnabled, e.MaxTickets, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, name, location, event_date, price_cents, seating_enabled,
					max_tickets, tickets_issued, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Location, &e.EventDate, &e.PriceCents,
		&e.SeatingEnabled, &e.MaxTickets, &e.TicketsIssued, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, name, location, event_date, price_cents, seating_enabled,
					max_tickets, tickets_issued, created_at, updated_at
			  FROM events
			  ORDER BY event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Location, &e.EventDate, &e.PriceCents,
			&e.SeatingEnabled, &e.MaxTickets, &e.TicketsIssued, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &domain.EventDetails{
		Event:            *event,
		TicketsRemaining: event.MaxTickets - event.TicketsIssued,
	}, nil
}

// TryReserveSlot claims one ticket slot with a single conditional increment.
// The capacity check and the write are one statement, so two concurrent
// purchases can never both pass a check that only one is allowed to pass.
//
// Runs without the retry wrapper: replaying the increment after an ambiguous
// failure could claim two slots for one purchase.
func (r *EventRepository) TryReserveSlot(ctx context.Context, eventID string) error {
	query := `UPDATE events
			  SET tickets_issued = tickets_issued + 1, updated_at = now()
			  WHERE id = $1 AND tickets_issued < max_tickets`
	res, err := r.db.Master.ExecContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve slot rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// Zero rows: either the event does not exist or it is sold out.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, eventID).Scan(&exists); err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return domain.ErrEventNotFound
	}

	return domain.ErrCapacityExceeded
}

// ReleaseSlot is the compensating decrement for a reservation whose ticket
// row could not be written. The floor condition keeps the counter from going
// negative if a release is ever replayed.
func (r *EventRepository) ReleaseSlot(ctx context.Context, eventID string) error {
	query := `UPDATE events
			  SET tickets_issued = tickets_issued - 1, updated_at = now()
			  WHERE id = $1 AND tickets_issued > 0`
	res, err := r.db.Master.ExecContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release slot rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("release slot: nothing to release for event %s", eventID)
	}

	return nil
}

// ListCapacityDrift returns events whose tickets_issued counter disagrees
// with the number of ticket rows on record.
func (r *EventRepository) ListCapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error) {
	query := `SELECT e.id, e.tickets_issued, COUNT(t.id)
			  FROM events e
			  LEFT JOIN tickets t ON t.event_id = e.id
			  GROUP BY e.id
			  HAVING e.tickets_issued <> COUNT(t.id)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list capacity drift: %w", err)
	}
	defer rows.Close()

	var res []*domain.CapacityDrift
	for rows.Next() {
		var d domain.CapacityDrift
		if err = rows.Scan(&d.EventID, &d.TicketsIssued, &d.TicketRows); err != nil {
			return nil, fmt.Errorf("scan capacity drift: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
