package handlers

import (
	"net/http"

	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BannerHandler handles banner listing requests
type BannerHandler struct {
	bannerService services.BannerService
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService services.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// GetBanners handles GET /api/banners
func (h *BannerHandler) GetBanners(c *gin.Context) {
	banners, err := h.bannerService.GetBanners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, banners)
}
