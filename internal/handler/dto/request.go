package dto

type CreateEventRequest struct {
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location"`
	EventDate      string `json:"eventDate" binding:"required"`
	PriceCents     int64  `json:"priceCents"`
	SeatingEnabled bool   `json:"seatingEnabled"`
	MaxTickets     int    `json:"maxTickets" binding:"required,gt=0"`
}

type IssueTicketRequest struct {
	EventID string `json:"eventId" binding:"required,uuid"`
	UserID  string `json:"userId" binding:"required"`
}
