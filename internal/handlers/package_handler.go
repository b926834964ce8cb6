package handlers

import (
	"net/http"
	"strconv"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PackageHandler handles package-related HTTP requests
type PackageHandler struct {
	packageService services.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageService services.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// GetPackages handles GET /api/admin/packages
func (h *PackageHandler) GetPackages(c *gin.Context) {
	packages, err := h.packageService.GetPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, packages)
}

// CreatePackageRequest is the payload for POST /api/admin/packages
type CreatePackageRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Price    int    `json:"price"`
}

// CreatePackage handles POST /api/admin/packages
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var request CreatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	pkg, err := h.packageService.CreatePackage(c.Request.Context(), services.CreatePackageInput{
		Name:     request.Name,
		Category: models.PackageCategory(request.Category),
		Price:    request.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, pkg)
}

// UpdatePackageRequest is the payload for PUT /api/admin/packages/:id
type UpdatePackageRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    *int    `json:"price"`
}

// UpdatePackage handles PUT /api/admin/packages/:id
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	var request UpdatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input := services.UpdatePackageInput{
		Name:  request.Name,
		Price: request.Price,
	}
	if request.Category != nil {
		category := models.PackageCategory(*request.Category)
		input.Category = &category
	}
	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, pkg)
}

// DeletePackage handles DELETE /api/admin/packages/:id
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}
	if err := h.packageService.DeletePackage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// BuyPackageRequest is the payload for POST /api/buy_package
type BuyPackageRequest struct {
	PackageType string `json:"package_type" binding:"required"`
}

// BuyPackage handles POST /api/buy_package
func (h *PackageHandler) BuyPackage(c *gin.Context) {
	var request BuyPackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	purchase, err := h.packageService.BuyPackage(c.Request.Context(), models.DefaultAccountID, models.PackageType(request.PackageType))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, purchase)
}
