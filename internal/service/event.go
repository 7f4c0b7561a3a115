package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.MaxTickets <= 0 {
		return nil, fmt.Errorf("%w: max_tickets must be positive", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Location:       input.Location,
		EventDate:      input.EventDate,
		PriceCents:     input.PriceCents,
		SeatingEnabled: input.SeatingEnabled,
		MaxTickets:     input.MaxTickets,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
