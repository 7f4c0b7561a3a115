package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticketgate/TicketGate/internal/domain"
)

func ticketColumns() []string {
	return []string{"id", "event_id", "user_id", "code", "state", "issued_at", "redeemed_at"}
}

func TestTicketRepository_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	ticket := &domain.Ticket{
		ID:       "t1",
		EventID:  "e1",
		UserID:   "u1",
		Code:     "code-1",
		State:    domain.TicketStateIssued,
		IssuedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(ticket.ID, ticket.EventID, ticket.UserID, ticket.Code, ticket.State, ticket.IssuedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), ticket)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_Create_CodeCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	ticket := &domain.Ticket{
		ID:       "t1",
		EventID:  "e1",
		UserID:   "u1",
		Code:     "dup-code",
		State:    domain.TicketStateIssued,
		IssuedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(ticket.ID, ticket.EventID, ticket.UserID, ticket.Code, ticket.State, ticket.IssuedAt).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "tickets_code_key"})

	err := repo.Create(context.Background(), ticket)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeCollision)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_Redeem_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	issuedAt := time.Now().Add(-time.Hour)
	redeemedAt := time.Now()

	mock.ExpectQuery("UPDATE tickets").
		WithArgs("code-1", domain.TicketStateRedeemed, domain.TicketStateIssued).
		WillReturnRows(sqlmock.NewRows(ticketColumns()).
			AddRow("t1", "e1", "u1", "code-1", domain.TicketStateRedeemed, issuedAt, redeemedAt))

	ticket, err := repo.Redeem(context.Background(), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "t1", ticket.ID)
	assert.Equal(t, domain.TicketStateRedeemed, ticket.State)
	require.NotNil(t, ticket.RedeemedAt)
	assert.WithinDuration(t, redeemedAt, *ticket.RedeemedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_Redeem_AlreadyRedeemed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	issuedAt := time.Now().Add(-2 * time.Hour)
	redeemedAt := time.Now().Add(-time.Hour)

	// Conditional update loses, the follow-up lookup finds a redeemed ticket.
	mock.ExpectQuery("UPDATE tickets").
		WithArgs("code-1", domain.TicketStateRedeemed, domain.TicketStateIssued).
		WillReturnRows(sqlmock.NewRows(ticketColumns()))
	mock.ExpectQuery("SELECT id, event_id, user_id, code, state, issued_at, redeemed_at").
		WithArgs("code-1").
		WillReturnRows(sqlmock.NewRows(ticketColumns()).
			AddRow("t1", "e1", "u1", "code-1", domain.TicketStateRedeemed, issuedAt, redeemedAt))

	ticket, err := repo.Redeem(context.Background(), "code-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketAlreadyRedeemed)
	require.NotNil(t, ticket)
	require.NotNil(t, ticket.RedeemedAt)
	assert.WithinDuration(t, redeemedAt, *ticket.RedeemedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_Redeem_InvalidCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	mock.ExpectQuery("UPDATE tickets").
		WithArgs("bogus", domain.TicketStateRedeemed, domain.TicketStateIssued).
		WillReturnRows(sqlmock.NewRows(ticketColumns()))
	mock.ExpectQuery("SELECT id, event_id, user_id, code, state, issued_at, redeemed_at").
		WithArgs("bogus").
		WillReturnRows(sqlmock.NewRows(ticketColumns()))

	ticket, err := repo.Redeem(context.Background(), "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.Nil(t, ticket)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_GetByCode_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	mock.ExpectQuery("SELECT id, event_id, user_id, code, state, issued_at, redeemed_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(ticketColumns()))

	ticket, err := repo.GetByCode(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
	assert.Nil(t, ticket)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)

	issuedAt := time.Now()

	mock.ExpectQuery("SELECT id, event_id, user_id, code, state, issued_at, redeemed_at").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(ticketColumns()).
			AddRow("t1", "e1", "u1", "code-1", domain.TicketStateIssued, issuedAt, nil).
			AddRow("t2", "e2", "u1", "code-2", domain.TicketStateRedeemed, issuedAt, issuedAt))

	tickets, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "t1", tickets[0].ID)
	assert.Nil(t, tickets[0].RedeemedAt)
	assert.Equal(t, "t2", tickets[1].ID)
	assert.NotNil(t, tickets[1].RedeemedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
