package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// RegisterAssetRoutes registers routes related to assets.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := &assetHandler{assetService: assetService}

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
	}
}

// createAsset godoc
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse "Invalid body or unknown account"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List assets
// @Tags assets
// @Produce json
// @Success 200 {array} dto.AssetResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}
