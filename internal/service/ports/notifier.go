package ports

import (
	"context"

	"github.com/ticketgate/TicketGate/internal/domain"
)

type OpsNotifier interface {
	NotifyTicketIssued(ctx context.Context, ticket *domain.Ticket, event *domain.Event)
	NotifySoldOut(ctx context.Context, event *domain.Event)
	NotifyCapacityDrift(ctx context.Context, drift *domain.CapacityDrift)
}
