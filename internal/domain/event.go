package domain

import "time"

type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	EventDate      time.Time `json:"eventDate"`
	PriceCents     int64     `json:"priceCents"`
	SeatingEnabled bool      `json:"seatingEnabled"`
	MaxTickets     int       `json:"maxTickets"`
	TicketsIssued  int       `json:"ticketsIssued"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type EventDetails struct {
	Event            Event `json:"event"`
	TicketsRemaining int   `json:"ticketsRemaining"`
}

type CreateEventInput struct {
	Name           string
	Location       string
	EventDate      time.Time
	PriceCents     int64
	SeatingEnabled bool
	MaxTickets     int
}

// CapacityDrift reports an event whose issuance counter disagrees with the
// number of ticket rows on record.
type CapacityDrift struct {
	EventID       string
	TicketsIssued int
	TicketRows    int
}
