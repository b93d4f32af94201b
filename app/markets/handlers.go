package markets

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stakehouse/parlay/app/api"
	"github.com/stakehouse/parlay/models"
)

// Handler handles HTTP requests for market supply
type Handler struct {
	service Service
}

// NewHandler creates a new markets handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMarkets godoc
// @Summary List markets
// @Description List the markets available to the parlay builder; the live flag is false when the fallback set is served
// @Tags markets
// @Produce json
// @Success 200 {object} api.Response{data=MarketListResponse}
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	list, err := h.service.GetMarkets(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch markets")
		return
	}

	api.ListResponse(c, "Markets retrieved successfully", list, len(list.Markets))
}

// GetMarket godoc
// @Summary Get a market
// @Description Get one market by id
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=models.Market}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id} [get]
func (h *Handler) GetMarket(c *gin.Context) {
	market, err := h.service.GetMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch market")
		return
	}

	api.SuccessResponse(c, 200, "Market retrieved successfully", market)
}

// Refresh godoc
// @Summary Refresh the market list
// @Description Drop the cached market list so the next read refetches from the source
// @Tags markets
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/v1/markets/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		api.InternalErrorResponse(c, "Failed to refresh markets")
		return
	}

	api.SuccessResponse(c, 200, "Market list refreshed", nil)
}
