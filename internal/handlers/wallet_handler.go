package handlers

import (
	"net/http"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance-related HTTP requests
type WalletHandler struct {
	walletService services.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService services.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetBalance handles GET /api/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletService.GetBalance(c.Request.Context(), models.DefaultAccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"balance": balance})
}

// UpdateBalanceRequest is the payload for POST /api/admin/update_balance
type UpdateBalanceRequest struct {
	Balance *float64 `json:"balance" binding:"required"`
}

// UpdateBalance handles POST /api/admin/update_balance
func (h *WalletHandler) UpdateBalance(c *gin.Context) {
	var request UpdateBalanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.walletService.SetBalance(c.Request.Context(), models.DefaultAccountID, *request.Balance); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"balance": *request.Balance})
}
