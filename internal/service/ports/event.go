package ports

import (
	"context"

	"github.com/ticketgate/TicketGate/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	TryReserveSlot(ctx context.Context, eventID string) error
	ReleaseSlot(ctx context.Context, eventID string) error
	ListCapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error)
}
