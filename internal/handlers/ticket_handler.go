package handlers

import (
	"net/http"
	"strconv"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TicketHandler handles ticket-related HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// GetTickets handles GET /api/tickets?draw_id=&status=
func (h *TicketHandler) GetTickets(c *gin.Context) {
	var drawID *int
	if raw := c.Query("draw_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid draw_id"})
			return
		}
		drawID = &id
	}
	status := models.TicketStatus(c.Query("status"))

	tickets, err := h.ticketService.GetTickets(c.Request.Context(), drawID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, tickets)
}

// BuyTicketRequest is the payload for POST /api/buy_ticket. Numbers is not
// bound required: an empty or absent list must reach the validator so the
// caller gets INVALID_NUMBERS, not a generic binding error.
type BuyTicketRequest struct {
	DrawID  int   `json:"draw_id" binding:"required"`
	Numbers []int `json:"numbers"`
}

// BuyTicket handles POST /api/buy_ticket
func (h *TicketHandler) BuyTicket(c *gin.Context) {
	var request BuyTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	purchase, err := h.ticketService.BuyTicket(c.Request.Context(), models.DefaultAccountID, request.DrawID, request.Numbers)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, purchase)
}

// UpdateTicketRequest is the payload for PUT /api/tickets/:id. Numbers is
// validated by the service, see BuyTicketRequest.
type UpdateTicketRequest struct {
	Numbers []int `json:"numbers"`
}

// UpdateTicket handles PUT /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	var request UpdateTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	ticket, err := h.ticketService.UpdateTicketNumbers(c.Request.Context(), id, request.Numbers)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, ticket)
}
