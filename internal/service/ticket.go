package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// codeAttempts bounds the retry loop on redemption-code collisions.
const codeAttempts = 3

type TicketService struct {
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
	notifier   ports.OpsNotifier
	logger     logger.Logger
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	notifier ports.OpsNotifier,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Issue reserves a capacity slot and persists a ticket with a fresh
// redemption code. The reservation is the only gate: each call is an
// independent purchase, dedup per user is a policy of the calling layer.
func (s *TicketService) Issue(ctx context.Context, eventID, userID string) (*domain.Ticket, error) {
	if err := s.eventRepo.TryReserveSlot(ctx, eventID); err != nil {
		return nil, err
	}

	// The slot is claimed. From here every exit that does not leave a
	// ticket row behind must release the slot, or the counter and the
	// rows diverge.
	var createErr error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		ticket := &domain.Ticket{
			ID:       uuid.New().String(),
			EventID:  eventID,
			UserID:   userID,
			Code:     uuid.New().String(),
			State:    domain.TicketStateIssued,
			IssuedAt: time.Now().UTC(),
		}

		createErr = s.ticketRepo.Create(ctx, ticket)
		if createErr == nil {
			s.logger.Info("ticket issued",
				logger.String("ticket_id", ticket.ID),
				logger.String("event_id", eventID),
				logger.String("user_id", userID),
			)

			go s.afterIssue(context.WithoutCancel(ctx), ticket)

			return ticket, nil
		}
		if !errors.Is(createErr, domain.ErrCodeCollision) {
			break
		}

		s.logger.Warn("redemption code collision, retrying",
			logger.String("event_id", eventID),
			logger.Int("attempt", attempt+1),
		)
	}

	s.release(ctx, eventID)

	return nil, fmt.Errorf("create ticket: %w", createErr)
}

// Redeem transitions a ticket to redeemed exactly once. On
// ErrTicketAlreadyRedeemed the ticket is returned as well, carrying the
// original redemption time.
func (s *TicketService) Redeem(ctx context.Context, code string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.Redeem(ctx, code)
	if err != nil {
		return ticket, err
	}

	s.logger.Info("ticket redeemed",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", ticket.EventID),
		logger.String("user_id", ticket.UserID),
	)

	return ticket, nil
}

func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	return s.ticketRepo.ListByUser(ctx, userID)
}

func (s *TicketService) release(ctx context.Context, eventID string) {
	if err := s.eventRepo.ReleaseSlot(ctx, eventID); err != nil {
		// The reconciler sweep will surface the stuck slot.
		s.logger.Error("failed to release reserved slot",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *TicketService) afterIssue(ctx context.Context, ticket *domain.Ticket) {
	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", ticket.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyTicketIssued(ctx, ticket, event)

	if event.TicketsIssued >= event.MaxTickets {
		s.notifier.NotifySoldOut(ctx, event)
	}
}

// CapacityDrift is the reconciler entry point: it reports events whose
// issuance counter and ticket rows disagree. The sweep never repairs,
// the compensating decrement in Issue is the repair path.
func (s *TicketService) CapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error) {
	drift, err := s.eventRepo.ListCapacityDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("list capacity drift: %w", err)
	}

	for _, d := range drift {
		go s.notifier.NotifyCapacityDrift(context.WithoutCancel(ctx), d)
	}

	return drift, nil
}
