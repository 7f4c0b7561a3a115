package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/service/ports/mocks"
)

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:       "Concert",
		Location:   "Arena",
		EventDate:  time.Now().Add(24 * time.Hour),
		PriceCents: 2500,
		MaxTickets: 100,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Concert", event.Name)
	assert.Equal(t, 100, event.MaxTickets)
	assert.Equal(t, 0, event.TicketsIssued)
}

func TestEventService_CreateEvent_NameRequired(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validEventInput()
	input.Name = ""

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_MaxTicketsPositive(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validEventInput()
	input.MaxTickets = 0

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_NegativePrice(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validEventInput()
	input.PriceCents = -1

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_PastDate(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validEventInput()
	input.EventDate = time.Now().Add(-time.Hour)

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	details := &domain.EventDetails{
		Event:            domain.Event{ID: "e1", MaxTickets: 100, TicketsIssued: 40},
		TicketsRemaining: 60,
	}
	repo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)

	result, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 60, result.TicketsRemaining)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.Event{
		{ID: "e1", Name: "Concert"},
		{ID: "e2", Name: "Theatre"},
	}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
