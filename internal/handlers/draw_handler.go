package handlers

import (
	"net/http"
	"strconv"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// GetDraws handles GET /api/draws
func (h *DrawHandler) GetDraws(c *gin.Context) {
	draws, err := h.drawService.GetAllDraws(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, draws)
}

// GetDrawByID handles GET /api/draws/:id
func (h *DrawHandler) GetDrawByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	draw, err := h.drawService.GetDrawByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, draw)
}

// CreateDrawRequest is the payload for POST /api/admin/draws
type CreateDrawRequest struct {
	Title        string `json:"title" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Cost         int    `json:"cost"`
	Image        string `json:"image"`
	TimeLeft     string `json:"time_left"`
	NumbersCount int    `json:"numbers_count"`
	ButtonText   string `json:"button_text"`
}

// CreateDraw handles POST /api/admin/draws
func (h *DrawHandler) CreateDraw(c *gin.Context) {
	var request CreateDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	draw, err := h.drawService.CreateDraw(c.Request.Context(), services.CreateDrawInput{
		Title:        request.Title,
		Category:     models.DrawType(request.Category),
		Cost:         request.Cost,
		Image:        request.Image,
		TimeLeft:     request.TimeLeft,
		NumbersCount: request.NumbersCount,
		ButtonText:   request.ButtonText,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, draw)
}

// UpdateDrawRequest is the payload for PUT /api/admin/draws/:id. Absent
// fields leave the stored value untouched.
type UpdateDrawRequest struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	Cost         *int    `json:"cost"`
	Image        *string `json:"image"`
	TimeLeft     *string `json:"time_left"`
	NumbersCount *int    `json:"numbers_count"`
	ButtonText   *string `json:"button_text"`
}

// UpdateDraw handles PUT /api/admin/draws/:id
func (h *DrawHandler) UpdateDraw(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	var request UpdateDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input := services.UpdateDrawInput{
		Title:        request.Title,
		Cost:         request.Cost,
		Image:        request.Image,
		TimeLeft:     request.TimeLeft,
		NumbersCount: request.NumbersCount,
		ButtonText:   request.ButtonText,
	}
	if request.Category != nil {
		category := models.DrawType(*request.Category)
		input.Category = &category
	}
	draw, err := h.drawService.UpdateDraw(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, draw)
}

// DeleteDraw handles DELETE /api/admin/draws/:id
func (h *DrawHandler) DeleteDraw(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	if err := h.drawService.DeleteDraw(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// ConductDrawRequest is the payload for POST /api/admin/conduct_draw
type ConductDrawRequest struct {
	DrawID int `json:"draw_id" binding:"required"`
}

// ConductDraw handles POST /api/admin/conduct_draw
func (h *DrawHandler) ConductDraw(c *gin.Context) {
	var request ConductDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	result, err := h.drawService.ConductDraw(c.Request.Context(), request.DrawID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}
