package domain

import "time"

type TicketState string

const (
	TicketStateIssued   TicketState = "issued"
	TicketStateRedeemed TicketState = "redeemed"
)

type Ticket struct {
	ID         string      `json:"id"`
	EventID    string      `json:"eventId"`
	UserID     string      `json:"userId"`
	Code       string      `json:"code"`
	State      TicketState `json:"state"`
	IssuedAt   time.Time   `json:"issuedAt"`
	RedeemedAt *time.Time  `json:"redeemedAt"`
}
