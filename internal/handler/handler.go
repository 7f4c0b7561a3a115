package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const redeemedMessage = "Ticket valid — enjoy the event!"

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type TicketSvc interface {
	Issue(ctx context.Context, eventID, userID string) (*domain.Ticket, error)
	Redeem(ctx context.Context, code string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
}

type Handler struct {
	eventService  EventSvc
	ticketService TicketSvc
}

func NewHandler(eventService EventSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		eventService:  eventService,
		ticketService: ticketService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid eventDate format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:           req.Name,
		Location:       req.Location,
		EventDate:      eventDate,
		PriceCents:     req.PriceCents,
		SeatingEnabled: req.SeatingEnabled,
		MaxTickets:     req.MaxTickets,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Tickets

func (h *Handler) IssueTicket(c *ginext.Context) {
	var req dto.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.ticketService.Issue(c.Request.Context(), req.EventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) RedeemTicket(c *ginext.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing ticket code"})
		return
	}

	ticket, err := h.ticketService.Redeem(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrTicketAlreadyRedeemed) && ticket != nil && ticket.RedeemedAt != nil {
			c.Set("error", err.Error())
			c.JSON(http.StatusConflict, dto.AlreadyRedeemedResponse{
				Error:      err.Error(),
				RedeemedAt: ticket.RedeemedAt.Format(time.RFC3339),
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRedeemResponse(redeemedMessage, ticket))
}

func (h *Handler) ListUserTickets(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	tickets, err := h.ticketService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrInvalidCode),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrTicketAlreadyRedeemed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
