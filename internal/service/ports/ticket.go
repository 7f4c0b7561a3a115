package ports

import (
	"context"

	"github.com/ticketgate/TicketGate/internal/domain"
)

type TicketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) error
	Redeem(ctx context.Context, code string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
}
