package dto

import (
	"time"

	"github.com/ticketgate/TicketGate/internal/domain"
)

type EventResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	EventDate      string `json:"eventDate"`
	PriceCents     int64  `json:"priceCents"`
	SeatingEnabled bool   `json:"seatingEnabled"`
	MaxTickets     int    `json:"maxTickets"`
	TicketsIssued  int    `json:"ticketsIssued"`
	CreatedAt      string `json:"createdAt"`
}

type EventDetailsResponse struct {
	Event            EventResponse `json:"event"`
	TicketsRemaining int           `json:"ticketsRemaining"`
}

type TicketResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"eventId"`
	UserID     string  `json:"userId"`
	Code       string  `json:"code"`
	State      string  `json:"state"`
	IssuedAt   string  `json:"issuedAt"`
	RedeemedAt *string `json:"redeemedAt,omitempty"`
}

// RedeemedTicketResponse is the gate-side view: the code is deliberately
// omitted so a scan response can never be replayed as a scannable artifact.
type RedeemedTicketResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"eventId"`
	UserID     string `json:"userId"`
	RedeemedAt string `json:"redeemedAt"`
}

type RedeemResponse struct {
	Message string                 `json:"message"`
	Ticket  RedeemedTicketResponse `json:"ticket"`
}

type AlreadyRedeemedResponse struct {
	Error      string `json:"error"`
	RedeemedAt string `json:"redeemedAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Location:       e.Location,
		EventDate:      e.EventDate.Format(time.RFC3339),
		PriceCents:     e.PriceCents,
		SeatingEnabled: e.SeatingEnabled,
		MaxTickets:     e.MaxTickets,
		TicketsIssued:  e.TicketsIssued,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:            ToEventResponse(&d.Event),
		TicketsRemaining: d.TicketsRemaining,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:       t.ID,
		EventID:  t.EventID,
		UserID:   t.UserID,
		Code:     t.Code,
		State:    string(t.State),
		IssuedAt: t.IssuedAt.Format(time.RFC3339),
	}
	if t.RedeemedAt != nil {
		redeemedAt := t.RedeemedAt.Format(time.RFC3339)
		resp.RedeemedAt = &redeemedAt
	}
	return resp
}

func ToRedeemResponse(message string, t *domain.Ticket) RedeemResponse {
	resp := RedeemResponse{
		Message: message,
		Ticket: RedeemedTicketResponse{
			ID:      t.ID,
			EventID: t.EventID,
			UserID:  t.UserID,
		},
	}
	if t.RedeemedAt != nil {
		resp.Ticket.RedeemedAt = t.RedeemedAt.Format(time.RFC3339)
	}
	return resp
}
